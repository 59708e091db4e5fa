package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// The schema and default config ship inside the binary; they are the two
// structural preconditions of every run and have no fallback.
var (
	//go:embed desc.json
	schemaAsset []byte

	//go:embed pset.json
	defaultAsset []byte
)

// Structural validators for the embedded assets. The schema asset must be an
// array of unique, non-empty key names; the default asset must be an object.
var (
	schemaAssetSchema = jsonschema.MustCompileString("desc-structure.json", `{
		"type": "array",
		"items": {"type": "string", "minLength": 1},
		"uniqueItems": true
	}`)

	defaultAssetSchema = jsonschema.MustCompileString("pset-structure.json", `{
		"type": "object"
	}`)
)

// loadSchema decodes the embedded schema asset into the set of recognized
// configuration keys.
func loadSchema() (map[string]struct{}, error) {
	var doc any
	if err := json.Unmarshal(schemaAsset, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	if err := schemaAssetSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}

	names := doc.([]any)
	schema := make(map[string]struct{}, len(names))
	for _, name := range names {
		schema[name.(string)] = struct{}{}
	}
	return schema, nil
}

// loadDefaultConfig decodes the embedded default config. Numbers are kept as
// json.Number so scalar coercion preserves their literal form.
func loadDefaultConfig() (map[string]any, error) {
	var doc any
	if err := json.Unmarshal(defaultAsset, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDefaultConfig, err)
	}
	if err := defaultAssetSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDefaultConfig, err)
	}

	values := make(map[string]any)
	decoder := json.NewDecoder(bytes.NewReader(defaultAsset))
	decoder.UseNumber()
	if err := decoder.Decode(&values); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDefaultConfig, err)
	}
	return values, nil
}
