package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all configuration options for xref.
type Config struct {
	// Import resolution settings
	Resolver ResolverConfig `koanf:"resolver"`

	// Detector conventions
	Detectors DetectorConfig `koanf:"detectors"`

	// Cache settings
	Cache CacheConfig `koanf:"cache"`

	// Output settings
	Output OutputConfig `koanf:"output"`
}

// ResolverConfig controls how import specifiers map to files.
type ResolverConfig struct {
	// Extensions tried, in order, when an import omits one.
	Extensions []string `koanf:"extensions"`
}

// DetectorConfig holds the naming conventions the detectors key on.
type DetectorConfig struct {
	// EntryPoints are basenames (without extension, case-insensitive)
	// whose exports are never reported as unused.
	EntryPoints []string `koanf:"entry_points"`

	// InfraSuffixes mark exported classes as infrastructure.
	InfraSuffixes []string `koanf:"infra_suffixes"`

	// FactoryPrefixes mark exported functions as factories.
	FactoryPrefixes []string `koanf:"factory_prefixes"`
}

// CacheConfig controls caching behavior.
type CacheConfig struct {
	Enabled bool   `koanf:"enabled"`
	Dir     string `koanf:"dir"`
	TTL     int    `koanf:"ttl"` // TTL in hours
}

// OutputConfig controls output formatting.
type OutputConfig struct {
	Format  string `koanf:"format"` // text, json, markdown, toon, yaml
	Color   bool   `koanf:"color"`
	Verbose bool   `koanf:"verbose"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Resolver: ResolverConfig{
			Extensions: []string{".ts", ".tsx", ".js", ".jsx", ".mjs", ".cjs"},
		},
		Detectors: DetectorConfig{
			EntryPoints: []string{"index", "main", "app", "server", "cli", "bin"},
			InfraSuffixes: []string{
				"Client", "Connection", "Pool", "Service", "Provider", "Manager",
				"Factory", "Repository", "Gateway", "Adapter", "Handler", "Broker",
				"Queue", "Cache", "Store", "Transport", "Channel", "Socket",
				"Server", "Database",
			},
			FactoryPrefixes: []string{
				"create", "make", "build", "new", "init", "setup", "connect",
			},
		},
		Cache: CacheConfig{
			Enabled: true,
			Dir:     ".xref/cache",
			TTL:     24,
		},
		Output: OutputConfig{
			Format:  "text",
			Color:   true,
			Verbose: false,
		},
	}
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	var parser koanf.Parser
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".toml":
		parser = toml.Parser()
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		parser = toml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault tries to load config from standard locations or returns defaults.
func LoadOrDefault() *Config {
	configNames := []string{
		"xref.toml",
		"xref.yaml",
		"xref.yml",
		"xref.json",
		".xref.toml",
		".xref.yaml",
		".xref.yml",
		".xref.json",
	}

	searchDirs := []string{".", ".xref"}

	for _, dir := range searchDirs {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				cfg, err := Load(path)
				if err == nil {
					return cfg
				}
			}
		}
	}

	return DefaultConfig()
}
