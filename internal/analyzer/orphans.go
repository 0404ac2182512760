package analyzer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/panbanda/xref/pkg/models"
)

// DefaultInfraSuffixes are class-name suffixes with strong structural
// signal: classes named like this are wired-up machinery, so one with zero
// usage anywhere is almost certainly dead.
var DefaultInfraSuffixes = []string{
	"Client", "Connection", "Pool", "Service", "Provider", "Manager",
	"Factory", "Repository", "Gateway", "Adapter", "Handler", "Broker",
	"Queue", "Cache", "Store", "Transport", "Channel", "Socket",
	"Server", "Database",
}

// DefaultFactoryPrefixes are function-name prefixes that mark constructors
// and wiring helpers. The rune following the prefix must be upper case so
// that e.g. "newest" or "initial" never match.
var DefaultFactoryPrefixes = []string{
	"create", "make", "build", "new", "init", "setup", "connect",
}

// OrphanAnalyzer flags exported infrastructure classes and factory
// functions with zero detected usage.
type OrphanAnalyzer struct {
	suffixes []string
	prefixes []string
	usage    *UsageAnalyzer
}

// OrphanOption is a functional option for configuring OrphanAnalyzer.
type OrphanOption func(*OrphanAnalyzer)

// WithInfraSuffixes overrides the infrastructure class suffix list.
func WithInfraSuffixes(suffixes []string) OrphanOption {
	return func(a *OrphanAnalyzer) {
		if len(suffixes) > 0 {
			a.suffixes = suffixes
		}
	}
}

// WithFactoryPrefixes overrides the factory function prefix list.
func WithFactoryPrefixes(prefixes []string) OrphanOption {
	return func(a *OrphanAnalyzer) {
		if len(prefixes) > 0 {
			a.prefixes = prefixes
		}
	}
}

// WithOrphanUsageAnalyzer sets the usage analyzer used when no index is
// supplied to Analyze.
func WithOrphanUsageAnalyzer(u *UsageAnalyzer) OrphanOption {
	return func(a *OrphanAnalyzer) {
		if u != nil {
			a.usage = u
		}
	}
}

// NewOrphanAnalyzer creates an orphan analyzer with the default name
// conventions.
func NewOrphanAnalyzer(opts ...OrphanOption) *OrphanAnalyzer {
	a := &OrphanAnalyzer{
		suffixes: DefaultInfraSuffixes,
		prefixes: DefaultFactoryPrefixes,
		usage:    NewUsageAnalyzer(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze flags exported classes matching infrastructure suffixes and
// exported functions matching factory prefixes that have zero symbol usage
// and zero file-level dependents. Both conditions are required: a symbol
// reachable only through a namespace import of its file keeps a file-level
// dependent and is not flagged. Findings are always HIGH because the name
// conventions already trade recall for precision.
func (a *OrphanAnalyzer) Analyze(repo *models.RepoMap, idx *models.UsageIndex) *models.OrphanAnalysis {
	if idx == nil {
		idx = a.usage.BuildIndex(repo)
	}

	analysis := &models.OrphanAnalysis{
		Findings: make([]models.Finding, 0),
		Summary:  models.NewFindingSummary(),
	}
	if repo == nil {
		return analysis
	}

	for _, file := range repo.FileKeys() {
		record := repo.Files[file]
		fileImported := idx.FileImported(file)

		for _, class := range record.Symbols.Classes {
			if !class.Exported || !a.hasInfraSuffix(class.Name) {
				continue
			}
			if idx.SymbolUsed(file, class.Name) || fileImported {
				continue
			}
			finding := models.Finding{
				File:      file,
				Name:      class.Name,
				Line:      class.Line,
				Kind:      "class",
				Type:      models.OrphanInfrastructure,
				Certainty: models.CertaintyHigh,
			}
			analysis.Findings = append(analysis.Findings, finding)
			analysis.Summary.Add(finding)
		}

		for _, fn := range record.Symbols.Functions {
			if !fn.Exported || !a.hasFactoryPrefix(fn.Name) {
				continue
			}
			if idx.SymbolUsed(file, fn.Name) || fileImported {
				continue
			}
			finding := models.Finding{
				File:      file,
				Name:      fn.Name,
				Line:      fn.Line,
				Kind:      "function",
				Type:      models.OrphanFactory,
				Certainty: models.CertaintyHigh,
			}
			analysis.Findings = append(analysis.Findings, finding)
			analysis.Summary.Add(finding)
		}
	}

	return analysis
}

func (a *OrphanAnalyzer) hasInfraSuffix(name string) bool {
	for _, suffix := range a.suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

func (a *OrphanAnalyzer) hasFactoryPrefix(name string) bool {
	for _, prefix := range a.prefixes {
		if !strings.HasPrefix(name, prefix) || len(name) <= len(prefix) {
			continue
		}
		r, _ := utf8.DecodeRuneInString(name[len(prefix):])
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
