package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(t *testing.T, schema ...string) *Config {
	t.Helper()
	c := &Config{
		diags:  newDiagnostics(nil),
		schema: make(map[string]struct{}, len(schema)),
		used:   make(map[string]struct{}),
	}
	for _, key := range schema {
		c.schema[key] = struct{}{}
	}
	return c
}

func TestLoadConfigFile(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("JSON", func(t *testing.T) {
		path := filepath.Join(tmpDir, "pset.json")
		writeFile(t, path, `{"font-size": 12, "problems": [1, 2]}`)

		c := newTestConfig(t, "font-size", "problems")
		values, err := c.loadConfigFile(path, false)
		require.NoError(t, err)
		assert.Len(t, values, 2)
		assert.Equal(t, "12", mustStringify(t, values["font-size"]))
	})

	t.Run("YAML", func(t *testing.T) {
		path := filepath.Join(tmpDir, "pset.yaml")
		writeFile(t, path, "font-size: 12\nmargin: 2cm\n")

		c := newTestConfig(t, "font-size", "margin")
		values, err := c.loadConfigFile(path, false)
		require.NoError(t, err)
		assert.Equal(t, "2cm", values["margin"])
	})

	t.Run("TOML", func(t *testing.T) {
		path := filepath.Join(tmpDir, "pset.toml")
		writeFile(t, path, "margin = \"2cm\"\nproblems = [\"1\", \"2\"]\n")

		c := newTestConfig(t, "margin", "problems")
		values, err := c.loadConfigFile(path, false)
		require.NoError(t, err)
		assert.Equal(t, "2cm", values["margin"])
	})

	t.Run("MalformedBecomesEmpty", func(t *testing.T) {
		path := filepath.Join(tmpDir, "broken.json")
		writeFile(t, path, `{"font-size": `)

		c := newTestConfig(t, "font-size")
		values, err := c.loadConfigFile(path, false)
		require.NoError(t, err)
		assert.Empty(t, values)
		require.Len(t, c.diags.Messages(), 1)
		assert.Contains(t, c.diags.Messages()[0], "malformed")
	})

	t.Run("MalformedIsFatalWhenStrict", func(t *testing.T) {
		path := filepath.Join(tmpDir, "broken-strict.json")
		writeFile(t, path, `{"font-size": `)

		c := newTestConfig(t, "font-size")
		_, err := c.loadConfigFile(path, true)
		assert.Error(t, err)
	})

	t.Run("NonMappingBecomesEmpty", func(t *testing.T) {
		path := filepath.Join(tmpDir, "list.json")
		writeFile(t, path, `[1, 2, 3]`)

		c := newTestConfig(t, "font-size")
		values, err := c.loadConfigFile(path, false)
		require.NoError(t, err)
		assert.Empty(t, values)
		require.Len(t, c.diags.Messages(), 1)
		assert.Contains(t, c.diags.Messages()[0], "not a mapping")
	})

	t.Run("UnknownKeysDroppedPartially", func(t *testing.T) {
		path := filepath.Join(tmpDir, "partial.json")
		writeFile(t, path, `{"font-size": 12, "fontsize": 12}`)

		c := newTestConfig(t, "font-size")
		values, err := c.loadConfigFile(path, false)
		require.NoError(t, err)

		// The unknown key is dropped; the rest of the mapping stays usable.
		assert.Len(t, values, 1)
		assert.Contains(t, values, "font-size")
		require.Len(t, c.diags.Messages(), 1)
		assert.Contains(t, c.diags.Messages()[0], `unknown key "fontsize"`)
	})

	t.Run("UnknownKeysFatalWhenStrict", func(t *testing.T) {
		path := filepath.Join(tmpDir, "strict.json")
		writeFile(t, path, `{"fontsize": 12}`)

		c := newTestConfig(t, "font-size")
		_, err := c.loadConfigFile(path, true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown key "fontsize"`)
	})

	t.Run("UnsupportedExtensionPanics", func(t *testing.T) {
		path := filepath.Join(tmpDir, "pset.ini")
		writeFile(t, path, "")

		c := newTestConfig(t)
		assert.Panics(t, func() {
			_, _ = c.loadConfigFile(path, false)
		})
	})
}

func mustStringify(t *testing.T, raw any) string {
	t.Helper()
	s, err := stringifyScalar(raw)
	require.NoError(t, err)
	return s
}
