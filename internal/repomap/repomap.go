// Package repomap loads and validates repo map JSON, the engine's input.
//
// Validation is deliberately shallow: it rejects structurally invalid input
// (wrong types, unknown import kinds) but lets merely-absent optional fields
// through, since upstream scanners are expected to omit them and the engine
// degrades absent fields to empty results.
package repomap

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/panbanda/xref/pkg/models"
)

//go:embed schema.json
var schemaJSON []byte

const schemaID = "repomap.schema.json"

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			schemaErr = fmt.Errorf("decoding embedded schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaID, doc); err != nil {
			schemaErr = fmt.Errorf("registering schema: %w", err)
			return
		}
		schema, schemaErr = compiler.Compile(schemaID)
	})
	return schema, schemaErr
}

// Validate checks raw repo map JSON against the embedded schema.
func Validate(data []byte) error {
	sch, err := compiledSchema()
	if err != nil {
		return err
	}
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("repo map is not valid JSON: %w", err)
	}
	if err := sch.Validate(instance); err != nil {
		return fmt.Errorf("repo map failed validation: %w", err)
	}
	return nil
}

// Parse validates and decodes raw repo map JSON.
func Parse(data []byte) (*models.RepoMap, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}
	var m models.RepoMap
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding repo map: %w", err)
	}
	return &m, nil
}

// Load reads, validates, and decodes a repo map file. The raw bytes are
// returned alongside the parsed map so callers can derive cache keys from
// the exact content.
func Load(path string) (*models.RepoMap, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading repo map %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, nil, err
	}
	return m, data, nil
}
