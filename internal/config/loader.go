package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// loadConfigFile reads and parses one configuration file. The parser is
// chosen by extension; discovery only matches known extensions, so any other
// extension here is a programmer error.
//
// Under strict mode every problem is returned as an error. Otherwise a
// malformed or non-mapping file is warned and treated as empty, and unknown
// keys are warned and dropped individually while the rest of the mapping
// stays usable.
func (c *Config) loadConfigFile(path string, strict bool) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if strict {
			return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
		}
		c.diags.Warnf("ignoring '%s' because it is unreadable: %v", path, err)
		return map[string]any{}, nil
	}

	var doc any
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // preserve number literals for scalar coercion
		err = decoder.Decode(&doc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	case ".toml":
		err = toml.Unmarshal(data, &doc)
	default:
		panic(fmt.Sprintf("config: unsupported config file extension %q for '%s'", ext, path))
	}
	if err != nil {
		if strict {
			return nil, fmt.Errorf("failed to parse config file '%s': %w", path, err)
		}
		c.diags.Warnf("ignoring '%s' because it is malformed: %v", path, err)
		return map[string]any{}, nil
	}

	values, ok := normalizeMapping(doc)
	if !ok {
		if strict {
			return nil, fmt.Errorf("config file '%s' is not a mapping: %v", path, doc)
		}
		c.diags.Warnf("ignoring '%s' because it is not a mapping: %v", path, doc)
		return map[string]any{}, nil
	}

	if err := c.filterUnknownKeys(values, path, strict); err != nil {
		return nil, err
	}
	return values, nil
}

// filterUnknownKeys drops every key not present in the schema. Strict mode
// turns the first unknown key into an error instead.
func (c *Config) filterUnknownKeys(values map[string]any, origin string, strict bool) error {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if _, ok := c.schema[key]; ok {
			continue
		}
		if strict {
			return fmt.Errorf("unknown key %q in %s", key, origin)
		}
		c.diags.Warnf("ignoring unknown key %q from %s", key, origin)
		delete(values, key)
	}
	return nil
}

// normalizeMapping accepts the top-level parse result and returns it as a
// string-keyed map.
func normalizeMapping(doc any) (map[string]any, bool) {
	switch m := doc.(type) {
	case map[string]any:
		return m, true
	case map[string]string:
		values := make(map[string]any, len(m))
		for key, value := range m {
			values[key] = value
		}
		return values, true
	default:
		return nil, false
	}
}
