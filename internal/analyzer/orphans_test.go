package analyzer

import (
	"testing"

	"github.com/panbanda/xref/pkg/models"
)

func classRecord(name string, exported bool) models.FileRecord {
	return models.FileRecord{Symbols: models.SymbolTable{
		Classes: []models.ClassEntry{{Name: name, Exported: exported, Line: 3}},
	}}
}

func funcRecord(name string, exported bool) models.FileRecord {
	return models.FileRecord{Symbols: models.SymbolTable{
		Functions: []models.FunctionEntry{{Name: name, Exported: exported, Line: 7}},
	}}
}

func TestAnalyzeOrphanedInfrastructureClass(t *testing.T) {
	repo := repoOf(map[string]models.FileRecord{
		"src/infrastructure/BaseService.js": classRecord("BaseService", true),
	})

	analysis := NewOrphanAnalyzer().Analyze(repo, nil)

	if len(analysis.Findings) != 1 {
		t.Fatalf("findings = %v, want exactly one", analysis.Findings)
	}
	f := analysis.Findings[0]
	if f.Type != models.OrphanInfrastructure || f.Certainty != models.CertaintyHigh {
		t.Errorf("finding = %+v, want infrastructure/HIGH", f)
	}
	if f.Name != "BaseService" || f.Kind != "class" {
		t.Errorf("finding identity = %+v", f)
	}
}

func TestAnalyzeOrphanSuffixMatching(t *testing.T) {
	tests := []struct {
		name    string
		class   string
		flagged bool
	}{
		{"Client suffix", "HttpClient", true},
		{"Pool suffix", "ConnectionPool", true},
		{"Database suffix", "UserDatabase", true},
		{"no structural suffix", "Helper", false},
		{"suffix mid-name only", "ServiceRegistryList", false},
	}

	a := NewOrphanAnalyzer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repoOf(map[string]models.FileRecord{
				"src/x.ts": classRecord(tt.class, true),
			})
			got := a.Analyze(repo, nil)
			if (len(got.Findings) > 0) != tt.flagged {
				t.Errorf("class %q flagged=%v, want %v", tt.class, len(got.Findings) > 0, tt.flagged)
			}
		})
	}
}

func TestAnalyzeOrphanFactoryPrefixes(t *testing.T) {
	tests := []struct {
		name    string
		fn      string
		flagged bool
	}{
		{"create", "createWidget", true},
		{"make", "makeThing", true},
		{"build", "buildPipeline", true},
		{"new", "newSession", true},
		{"init", "initDatabase", true},
		{"setup", "setupRoutes", true},
		{"connect", "connectBroker", true},
		{"lowercase after prefix", "newest", false},
		{"prefix alone", "create", false},
		{"ordinary word", "initialize", false},
		{"no prefix", "handleThing", false},
	}

	a := NewOrphanAnalyzer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repoOf(map[string]models.FileRecord{
				"src/x.ts": funcRecord(tt.fn, true),
			})
			got := a.Analyze(repo, nil)
			if (len(got.Findings) > 0) != tt.flagged {
				t.Errorf("function %q flagged=%v, want %v", tt.fn, len(got.Findings) > 0, tt.flagged)
			}
			for _, f := range got.Findings {
				if f.Type != models.OrphanFactory || f.Certainty != models.CertaintyHigh {
					t.Errorf("finding = %+v, want factory/HIGH", f)
				}
			}
		})
	}
}

func TestAnalyzeOrphanRequiresExported(t *testing.T) {
	repo := repoOf(map[string]models.FileRecord{
		"src/a.ts": classRecord("SecretService", false),
		"src/b.ts": funcRecord("createThing", false),
	})

	if got := NewOrphanAnalyzer().Analyze(repo, nil); len(got.Findings) != 0 {
		t.Errorf("unexported symbols flagged: %v", got.Findings)
	}
}

func TestAnalyzeOrphanSuppressedByAnyUsage(t *testing.T) {
	// Symbol-level usage suppresses.
	used := repoOf(map[string]models.FileRecord{
		"src/svc.ts": classRecord("AuthService", true),
		"src/app.ts": importing(namedImport("./svc", "AuthService")),
	})
	if got := NewOrphanAnalyzer().Analyze(used, nil); len(got.Findings) != 0 {
		t.Errorf("symbol-used class flagged: %v", got.Findings)
	}

	// A namespace import of the file alone suppresses too: both zero symbol
	// usage and zero file-level dependents are required.
	viaNamespace := repoOf(map[string]models.FileRecord{
		"src/svc.ts": classRecord("AuthService", true),
		"src/app.ts": importing(namespaceImport("./svc")),
	})
	if got := NewOrphanAnalyzer().Analyze(viaNamespace, nil); len(got.Findings) != 0 {
		t.Errorf("namespace-imported class flagged: %v", got.Findings)
	}
}

func TestAnalyzeOrphanCustomConventions(t *testing.T) {
	repo := repoOf(map[string]models.FileRecord{
		"src/a.ts": classRecord("EventSink", true),
		"src/b.ts": funcRecord("spawnWorker", true),
	})

	a := NewOrphanAnalyzer(
		WithInfraSuffixes([]string{"Sink"}),
		WithFactoryPrefixes([]string{"spawn"}),
	)
	got := a.Analyze(repo, nil)
	if len(got.Findings) != 2 {
		t.Errorf("findings = %v, want both custom conventions to match", got.Findings)
	}
}

func TestAnalyzeOrphanNilMap(t *testing.T) {
	got := NewOrphanAnalyzer().Analyze(nil, nil)
	if got == nil || len(got.Findings) != 0 {
		t.Errorf("nil map should yield empty analysis, got %+v", got)
	}
}
