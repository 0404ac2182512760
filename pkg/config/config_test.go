package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, []string{".ts", ".tsx", ".js", ".jsx", ".mjs", ".cjs"}, cfg.Resolver.Extensions)
	assert.Contains(t, cfg.Detectors.EntryPoints, "index")
	assert.Contains(t, cfg.Detectors.EntryPoints, "main")
	assert.Len(t, cfg.Detectors.InfraSuffixes, 20)
	assert.Len(t, cfg.Detectors.FactoryPrefixes, 7)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, ".xref/cache", cfg.Cache.Dir)
	assert.Equal(t, 24, cfg.Cache.TTL)
	assert.Equal(t, "text", cfg.Output.Format)
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "xref.toml")
	content := `
[resolver]
extensions = [".ts", ".js"]

[detectors]
entry_points = ["index", "worker"]

[cache]
enabled = false
ttl = 48

[output]
format = "json"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{".ts", ".js"}, cfg.Resolver.Extensions)
	assert.Equal(t, []string{"index", "worker"}, cfg.Detectors.EntryPoints)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, 48, cfg.Cache.TTL)
	assert.Equal(t, "json", cfg.Output.Format)

	// Untouched sections keep their defaults.
	assert.Len(t, cfg.Detectors.InfraSuffixes, 20)
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "xref.yaml")
	content := `
output:
  format: markdown
  verbose: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.Output.Format)
	assert.True(t, cfg.Output.Verbose)
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "xref.json")
	content := `{"detectors": {"factory_prefixes": ["spawn"]}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"spawn"}, cfg.Detectors.FactoryPrefixes)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadOrDefaultFindsConfig(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(cwd)

	content := `
[output]
format = "yaml"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".xref.toml"), []byte(content), 0o644))

	cfg := LoadOrDefault()
	assert.Equal(t, "yaml", cfg.Output.Format)
}

func TestLoadOrDefaultFallsBack(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(cwd)

	cfg := LoadOrDefault()
	assert.Equal(t, "text", cfg.Output.Format)
	assert.True(t, cfg.Cache.Enabled)
}
