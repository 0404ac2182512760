package analyzer

import (
	"strings"

	"github.com/panbanda/xref/pkg/models"
)

// DefaultEntryPoints are basenames (extension stripped, compared
// case-insensitively) assumed to be invoked externally rather than
// imported; their exports are never flagged.
var DefaultEntryPoints = []string{"index", "main", "app", "server", "cli", "bin"}

// UnusedAnalyzer finds exported symbols nothing imports.
type UnusedAnalyzer struct {
	entryPoints map[string]struct{}
	usage       *UsageAnalyzer
}

// UnusedOption is a functional option for configuring UnusedAnalyzer.
type UnusedOption func(*UnusedAnalyzer)

// WithEntryPoints overrides the entry-point basename set.
func WithEntryPoints(names []string) UnusedOption {
	return func(a *UnusedAnalyzer) {
		if len(names) == 0 {
			return
		}
		a.entryPoints = make(map[string]struct{}, len(names))
		for _, n := range names {
			a.entryPoints[strings.ToLower(n)] = struct{}{}
		}
	}
}

// WithUnusedUsageAnalyzer sets the usage analyzer used when no index is
// supplied to Analyze.
func WithUnusedUsageAnalyzer(u *UsageAnalyzer) UnusedOption {
	return func(a *UnusedAnalyzer) {
		if u != nil {
			a.usage = u
		}
	}
}

// NewUnusedAnalyzer creates an unused-export analyzer with defaults.
func NewUnusedAnalyzer(opts ...UnusedOption) *UnusedAnalyzer {
	a := &UnusedAnalyzer{usage: NewUsageAnalyzer()}
	WithEntryPoints(DefaultEntryPoints)(a)
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze flags exported symbols with no importers. Passing a nil index
// builds one internally.
//
// Grading: a symbol with importers is never flagged. An unused symbol in a
// file nothing imports is MEDIUM (the whole file looks unreferenced, but
// resolution gaps such as dynamic or external consumption keep it below
// HIGH). An unused symbol in a file that is imported is LOW (it may be
// consumed through a namespace import this engine cannot verify per-symbol).
func (a *UnusedAnalyzer) Analyze(repo *models.RepoMap, idx *models.UsageIndex) *models.UnusedExportAnalysis {
	if idx == nil {
		idx = a.usage.BuildIndex(repo)
	}

	analysis := &models.UnusedExportAnalysis{
		Findings: make([]models.Finding, 0),
		Summary:  models.NewFindingSummary(),
	}
	if repo == nil {
		return analysis
	}

	for _, file := range repo.FileKeys() {
		if a.isEntryPoint(file) {
			continue
		}
		fileImported := idx.FileImported(file)
		for _, exp := range repo.Files[file].Symbols.Exports {
			if idx.SymbolUsed(file, exp.Name) {
				continue
			}
			certainty := models.CertaintyLow
			if !fileImported {
				certainty = models.CertaintyMedium
			}
			finding := models.Finding{
				File:      file,
				Name:      exp.Name,
				Line:      exp.Line,
				Kind:      exp.Kind,
				Certainty: certainty,
			}
			analysis.Findings = append(analysis.Findings, finding)
			analysis.Summary.Add(finding)
		}
	}

	return analysis
}

// isEntryPoint checks the file's basename, extension stripped, against the
// configured entry-point set.
func (a *UnusedAnalyzer) isEntryPoint(file string) bool {
	_, ok := a.entryPoints[strings.ToLower(baseNameWithoutExt(file))]
	return ok
}
