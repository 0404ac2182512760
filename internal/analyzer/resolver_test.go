package analyzer

import (
	"testing"

	"github.com/panbanda/xref/pkg/models"
)

func TestResolve(t *testing.T) {
	repo := repoOf(map[string]models.FileRecord{
		"src/lib/util.ts":       {},
		"src/lib/data.js":       {},
		"src/lib/store/index.ts": {},
		"src/app.ts":            {},
	})

	tests := []struct {
		name      string
		importer  string
		specifier string
		want      string
		wantOK    bool
	}{
		{"bare specifier is external", "src/app.ts", "react", "", false},
		{"scoped package is external", "src/app.ts", "@scope/pkg", "", false},
		{"exact match", "src/app.ts", "./lib/util.ts", "src/lib/util.ts", true},
		{"extension appended", "src/app.ts", "./lib/util", "src/lib/util.ts", true},
		{"extension order respects list", "src/app.ts", "./lib/data", "src/lib/data.js", true},
		{"directory index fallback", "src/app.ts", "./lib/store", "src/lib/store/index.ts", true},
		{"parent traversal", "src/lib/util.ts", "../app", "src/app.ts", true},
		{"missing target", "src/app.ts", "./lib/missing", "", false},
		{"empty specifier", "src/app.ts", "", "", false},
		{"backslash importer normalized", "src\\app.ts", "./lib/util", "src/lib/util.ts", true},
	}

	r := NewResolver()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Resolve(repo, tt.importer, tt.specifier)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Resolve(%q, %q) = (%q, %v), want (%q, %v)",
					tt.importer, tt.specifier, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestResolveDeterministic(t *testing.T) {
	repo := repoOf(map[string]models.FileRecord{
		"src/a.ts": {},
		"src/b.ts": {},
	})
	r := NewResolver()

	first, firstOK := r.Resolve(repo, "src/a.ts", "./b")
	for i := 0; i < 10; i++ {
		got, ok := r.Resolve(repo, "src/a.ts", "./b")
		if got != first || ok != firstOK {
			t.Fatalf("resolution not deterministic: (%q, %v) vs (%q, %v)", got, ok, first, firstOK)
		}
	}
}

func TestResolveCustomExtensions(t *testing.T) {
	repo := repoOf(map[string]models.FileRecord{
		"src/config.json": {},
	})
	r := NewResolver(WithExtensions([]string{".json"}))

	got, ok := r.Resolve(repo, "src/app.ts", "./config")
	if !ok || got != "src/config.json" {
		t.Errorf("Resolve with custom extensions = (%q, %v), want (src/config.json, true)", got, ok)
	}
}

func TestResolveNilMap(t *testing.T) {
	r := NewResolver()
	if got, ok := r.Resolve(nil, "src/a.ts", "./b"); ok || got != "" {
		t.Errorf("Resolve on nil map = (%q, %v), want empty", got, ok)
	}
}
