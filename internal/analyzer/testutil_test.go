package analyzer

import "github.com/panbanda/xref/pkg/models"

// Fixture helpers shared by the analyzer tests.

func repoOf(files map[string]models.FileRecord) *models.RepoMap {
	return &models.RepoMap{Files: files}
}

func exporting(names ...string) models.SymbolTable {
	table := models.SymbolTable{}
	for _, n := range names {
		table.Exports = append(table.Exports, models.ExportEntry{Name: n, Kind: "function"})
	}
	return table
}

func namedImport(source string, names ...string) models.ImportEntry {
	return models.ImportEntry{Source: source, Kind: models.ImportNamed, Names: names}
}

func defaultImport(source string) models.ImportEntry {
	return models.ImportEntry{Source: source, Kind: models.ImportDefault}
}

func namespaceImport(source string) models.ImportEntry {
	return models.ImportEntry{Source: source, Kind: models.ImportNamespace}
}

func importing(entries ...models.ImportEntry) models.FileRecord {
	return models.FileRecord{Imports: entries}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
