package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"
)

const testMap = `{
  "files": {
    "src/app.js": {
      "symbols": {"exports": [], "classes": [], "functions": []},
      "imports": [
        {"source": "./lib", "kind": "named", "names": ["helper"]},
        {"source": "./util", "kind": "default"}
      ]
    },
    "src/lib.js": {
      "symbols": {
        "exports": [
          {"name": "helper", "kind": "function", "line": 1},
          {"name": "forgotten", "kind": "function", "line": 9}
        ],
        "classes": [],
        "functions": []
      },
      "imports": [{"source": "./util", "kind": "named", "names": ["util"]}]
    },
    "src/util.js": {
      "symbols": {
        "exports": [{"name": "util", "kind": "function", "line": 1}],
        "classes": [],
        "functions": []
      },
      "imports": [{"source": "./lib", "kind": "named", "names": ["helper"]}]
    }
  }
}`

func writeTestMap(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "repomap.json")
	if err := os.WriteFile(path, []byte(testMap), 0o644); err != nil {
		t.Fatalf("failed to write test map: %v", err)
	}
	return path
}

func newTestApp(cmd *cli.Command) *cli.App {
	return &cli.App{
		Name:     "xref",
		Metadata: make(map[string]interface{}),
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "text"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}},
			&cli.BoolFlag{Name: "no-cache"},
			&cli.BoolFlag{Name: "verbose"},
		},
		Commands: []*cli.Command{cmd},
	}
}

// TestGetMapPath verifies map path handling from CLI arguments.
func TestGetMapPath(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "no args defaults to repomap.json", args: []string{}, expected: "repomap.json"},
		{name: "explicit path", args: []string{"maps/out.json"}, expected: "maps/out.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := &cli.App{
				Action: func(c *cli.Context) error {
					if got := getMapPath(c); got != tt.expected {
						t.Errorf("getMapPath() = %q, want %q", got, tt.expected)
					}
					return nil
				},
			}
			args := append([]string{"test"}, tt.args...)
			_ = app.Run(args)
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in       string
		maxLen   int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly-10", 10, "exactly-10"},
		{"this is a long string", 10, "this is..."},
		{"abcdef", 3, "abc"},
	}

	for _, tt := range tests {
		if got := truncate(tt.in, tt.maxLen); got != tt.expected {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.expected)
		}
	}
}

// TestUnusedCommandE2E tests the unused command end-to-end.
func TestUnusedCommandE2E(t *testing.T) {
	mapPath := writeTestMap(t)
	outPath := filepath.Join(t.TempDir(), "out.json")

	app := newTestApp(unusedCmd())
	err := app.Run([]string{"xref", "-f", "json", "-o", outPath, "unused", mapPath})
	if err != nil {
		t.Fatalf("unused command failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if !containsStr(string(data), "forgotten") {
		t.Errorf("output missing expected finding, got: %s", data)
	}
}

// TestCyclesCommandE2E tests the cycles command end-to-end.
func TestCyclesCommandE2E(t *testing.T) {
	mapPath := writeTestMap(t)
	outPath := filepath.Join(t.TempDir(), "out.json")

	app := newTestApp(cyclesCmd())
	err := app.Run([]string{"xref", "-f", "json", "-o", outPath, "cycles", mapPath})
	if err != nil {
		t.Fatalf("cycles command failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	// lib and util import each other.
	if !containsStr(string(data), "src/lib.js") || !containsStr(string(data), "src/util.js") {
		t.Errorf("output missing expected cycle, got: %s", data)
	}
}

// TestGraphCommandE2E tests the graph command with metrics end-to-end.
func TestGraphCommandE2E(t *testing.T) {
	mapPath := writeTestMap(t)
	outPath := filepath.Join(t.TempDir(), "out.json")

	app := newTestApp(graphCmd())
	err := app.Run([]string{"xref", "-f", "json", "-o", outPath, "graph", "--metrics", mapPath})
	if err != nil {
		t.Fatalf("graph command failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if !containsStr(string(data), "pagerank") {
		t.Errorf("output missing metrics, got: %s", data)
	}
}

// TestUsagesCommandE2E tests the usages command end-to-end.
func TestUsagesCommandE2E(t *testing.T) {
	mapPath := writeTestMap(t)
	outPath := filepath.Join(t.TempDir(), "out.json")

	app := newTestApp(usagesCmd())
	err := app.Run([]string{"xref", "-f", "json", "-o", outPath, "usages", mapPath, "src/lib.js", "helper"})
	if err != nil {
		t.Fatalf("usages command failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if !containsStr(string(data), "src/app.js") {
		t.Errorf("output missing expected usage, got: %s", data)
	}
}

// TestUsagesCommandMissingArgs verifies argument validation.
func TestUsagesCommandMissingArgs(t *testing.T) {
	app := newTestApp(usagesCmd())
	if err := app.Run([]string{"xref", "usages"}); err == nil {
		t.Error("usages with no args should fail")
	}
}

// TestAnalyzeCommandE2E tests the combined analyze command end-to-end.
func TestAnalyzeCommandE2E(t *testing.T) {
	mapPath := writeTestMap(t)
	outPath := filepath.Join(t.TempDir(), "out.json")

	app := newTestApp(analyzeCmd())
	err := app.Run([]string{"xref", "-f", "json", "-o", outPath, "--no-cache", "analyze", mapPath})
	if err != nil {
		t.Fatalf("analyze command failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	for _, want := range []string{"unused", "orphans", "cycles", "metrics"} {
		if !containsStr(string(data), want) {
			t.Errorf("output missing %q section, got: %s", want, data)
		}
	}
}

// TestValidateCommandE2E tests the validate command end-to-end.
func TestValidateCommandE2E(t *testing.T) {
	mapPath := writeTestMap(t)

	app := newTestApp(validateCmd())
	if err := app.Run([]string{"xref", "validate", mapPath}); err != nil {
		t.Fatalf("validate command failed: %v", err)
	}
}

// TestValidateCommandRejectsBadMap verifies schema rejection.
func TestValidateCommandRejectsBadMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"files": {"a.js": {"imports": [{"kind": "named"}]}}}`), 0o644); err != nil {
		t.Fatalf("failed to write bad map: %v", err)
	}

	app := newTestApp(validateCmd())
	if err := app.Run([]string{"xref", "validate", path}); err == nil {
		t.Error("validate should reject a map missing import sources")
	}
}

// TestInitCommandE2E tests config file generation.
func TestInitCommandE2E(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "xref.toml")

	app := newTestApp(initCmd())
	if err := app.Run([]string{"xref", "init", "-o", outPath}); err != nil {
		t.Fatalf("init command failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read generated config: %v", err)
	}
	if !containsStr(string(data), "Xref CLI Configuration") {
		t.Errorf("generated config missing header, got: %s", data)
	}

	// Refuses to overwrite without --force.
	if err := app.Run([]string{"xref", "init", "-o", outPath}); err == nil {
		t.Error("init should refuse to overwrite without --force")
	}
	if err := app.Run([]string{"xref", "init", "-o", outPath, "--force"}); err != nil {
		t.Errorf("init --force failed: %v", err)
	}
}

// TestVersionVariable verifies version variables are defined.
func TestVersionVariable(t *testing.T) {
	// These are set via ldflags at build time
	if version == "" {
		t.Error("version variable should have a default value")
	}
}

func containsStr(haystack, needle string) bool {
	return strings.Contains(haystack, needle)
}
