package models

import "sort"

// RepoMap is the engine's sole input: per-file export/import facts produced
// by an upstream static scanner. The engine never reads source text itself.
type RepoMap struct {
	Files map[string]FileRecord `json:"files"`
}

// FileRecord holds the extracted facts for a single file.
type FileRecord struct {
	Symbols SymbolTable   `json:"symbols"`
	Imports []ImportEntry `json:"imports,omitempty"`
}

// SymbolTable groups the symbol lists extracted from a file. Upstream
// scanners may omit any of these; absent lists are treated as empty.
type SymbolTable struct {
	Exports   []ExportEntry   `json:"exports,omitempty"`
	Classes   []ClassEntry    `json:"classes,omitempty"`
	Functions []FunctionEntry `json:"functions,omitempty"`
}

// ExportEntry is a symbol exported from a file.
type ExportEntry struct {
	Name string `json:"name"`
	Kind string `json:"kind,omitempty"` // function, class, const, type, ...
	Line int    `json:"line,omitempty"`
}

// ClassEntry is a class declaration, exported or not.
type ClassEntry struct {
	Name     string `json:"name"`
	Exported bool   `json:"exported"`
	Line     int    `json:"line,omitempty"`
}

// FunctionEntry is a function declaration, exported or not.
type FunctionEntry struct {
	Name     string `json:"name"`
	Exported bool   `json:"exported"`
	Line     int    `json:"line,omitempty"`
}

// ImportKind classifies how an import binds names.
type ImportKind string

const (
	ImportNamed     ImportKind = "named"
	ImportDefault   ImportKind = "default"
	ImportNamespace ImportKind = "namespace"
)

// ImportEntry is a single import statement.
type ImportEntry struct {
	Source string     `json:"source"`          // specifier as written
	Kind   ImportKind `json:"kind"`            // named, default, namespace
	Names  []string   `json:"names,omitempty"` // bound names for named imports
}

// FileKeys returns the map's file paths in sorted order for deterministic
// iteration.
func (m *RepoMap) FileKeys() []string {
	if m == nil || len(m.Files) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m.Files))
	for k := range m.Files {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Has reports whether the map contains the given file key.
func (m *RepoMap) Has(file string) bool {
	if m == nil {
		return false
	}
	_, ok := m.Files[file]
	return ok
}

// Len returns the number of files in the map.
func (m *RepoMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.Files)
}
