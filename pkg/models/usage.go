package models

// SymbolKey builds the composite key used by UsageIndex.BySymbol: the owning
// file joined with the symbol name.
func SymbolKey(file, name string) string {
	return file + ":" + name
}

// UsageIndex holds the reverse-lookup structures derived from a RepoMap.
// It is rebuilt fresh on every call and never mutated after construction.
type UsageIndex struct {
	// BySymbol maps SymbolKey(owningFile, symbolName) to the set of files
	// that import that symbol. Default imports are tracked under the target
	// file's basename as a heuristic stand-in; this is a documented
	// approximation, not a precise binding.
	BySymbol map[string]*StringSet `json:"by_symbol"`

	// ByFile maps a file to the set of files that import anything from it,
	// regardless of which symbol or import kind.
	ByFile map[string]*StringSet `json:"by_file"`

	// ExportsByFile maps a file to the set of names it exports.
	ExportsByFile map[string]*StringSet `json:"exports_by_file"`
}

// NewUsageIndex creates an empty index with all maps allocated.
func NewUsageIndex() *UsageIndex {
	return &UsageIndex{
		BySymbol:      make(map[string]*StringSet),
		ByFile:        make(map[string]*StringSet),
		ExportsByFile: make(map[string]*StringSet),
	}
}

// AddSymbolUsage records that importer imports the named symbol from file.
func (idx *UsageIndex) AddSymbolUsage(file, name, importer string) {
	key := SymbolKey(file, name)
	set, ok := idx.BySymbol[key]
	if !ok {
		set = NewStringSet()
		idx.BySymbol[key] = set
	}
	set.Add(importer)
}

// AddFileUsage records that importer imports something from file.
func (idx *UsageIndex) AddFileUsage(file, importer string) {
	set, ok := idx.ByFile[file]
	if !ok {
		set = NewStringSet()
		idx.ByFile[file] = set
	}
	set.Add(importer)
}

// SymbolUsed reports whether any file imports the named symbol from file.
func (idx *UsageIndex) SymbolUsed(file, name string) bool {
	return idx.BySymbol[SymbolKey(file, name)].Len() > 0
}

// FileImported reports whether any file imports anything from file.
func (idx *UsageIndex) FileImported(file string) bool {
	return idx.ByFile[file].Len() > 0
}

// Exports returns the export name set for file; a missing entry reads as
// empty rather than an error.
func (idx *UsageIndex) Exports(file string) *StringSet {
	return idx.ExportsByFile[file]
}
