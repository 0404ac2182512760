package analyzer

import (
	"path"
	"strings"

	"github.com/panbanda/xref/pkg/models"
)

// UsageAnalyzer builds reverse-lookup indexes over a repo map: which files
// import a given symbol, which files depend on a given file, and what each
// file exports.
type UsageAnalyzer struct {
	resolver *Resolver
	onFile   func()
}

// UsageOption is a functional option for configuring UsageAnalyzer.
type UsageOption func(*UsageAnalyzer)

// WithUsageResolver sets the import resolver used during index building.
func WithUsageResolver(r *Resolver) UsageOption {
	return func(a *UsageAnalyzer) {
		if r != nil {
			a.resolver = r
		}
	}
}

// WithUsageProgress sets a callback invoked once per file during pass 2.
func WithUsageProgress(onFile func()) UsageOption {
	return func(a *UsageAnalyzer) {
		a.onFile = onFile
	}
}

// NewUsageAnalyzer creates a usage analyzer with a default resolver.
func NewUsageAnalyzer(opts ...UsageOption) *UsageAnalyzer {
	a := &UsageAnalyzer{resolver: NewResolver()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// BuildIndex derives a UsageIndex from the repo map in two passes: the
// export registry first, then import resolution. A nil or empty map yields
// empty index structures rather than an error.
//
// Named imports index each name from the entry's explicit names list.
// Default imports have no reliable name, so the target file's basename
// (extension stripped) stands in; callers must not treat default-import
// symbol tracking as precise. Namespace imports record only the file-level
// dependency since the symbols actually used cannot be known without
// deeper parsing.
func (a *UsageAnalyzer) BuildIndex(repo *models.RepoMap) *models.UsageIndex {
	idx := models.NewUsageIndex()
	if repo == nil || len(repo.Files) == 0 {
		return idx
	}

	for _, file := range repo.FileKeys() {
		names := models.NewStringSet()
		for _, exp := range repo.Files[file].Symbols.Exports {
			names.Add(exp.Name)
		}
		idx.ExportsByFile[file] = names
	}

	for _, importer := range repo.FileKeys() {
		for _, imp := range repo.Files[importer].Imports {
			target, ok := a.resolver.Resolve(repo, importer, imp.Source)
			if !ok {
				continue
			}
			idx.AddFileUsage(target, importer)

			switch imp.Kind {
			case models.ImportNamed:
				for _, name := range imp.Names {
					idx.AddSymbolUsage(target, name, importer)
				}
			case models.ImportDefault:
				idx.AddSymbolUsage(target, baseNameWithoutExt(target), importer)
			case models.ImportNamespace:
				// File-level dependency only; recorded above.
			}
		}
		if a.onFile != nil {
			a.onFile()
		}
	}

	return idx
}

// FindUsages returns the sorted list of files importing the named symbol
// from file.
func (a *UsageAnalyzer) FindUsages(idx *models.UsageIndex, file, symbol string) []string {
	if idx == nil {
		return nil
	}
	return idx.BySymbol[models.SymbolKey(file, symbol)].Values()
}

// baseNameWithoutExt returns the file's basename with its extension
// stripped, the heuristic stand-in name for default imports.
func baseNameWithoutExt(file string) string {
	base := path.Base(normalizePath(file))
	return strings.TrimSuffix(base, path.Ext(base))
}
