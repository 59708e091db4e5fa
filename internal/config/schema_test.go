package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedAssets(t *testing.T) {
	t.Run("SchemaLoads", func(t *testing.T) {
		schema, err := loadSchema()
		require.NoError(t, err)
		assert.NotEmpty(t, schema)
		assert.Contains(t, schema, "font-size")
		assert.Contains(t, schema, "problems")
	})

	t.Run("DefaultDefinesEverySchemaKey", func(t *testing.T) {
		schema, err := loadSchema()
		require.NoError(t, err)
		defaults, err := loadDefaultConfig()
		require.NoError(t, err)

		// The default source is the only one guaranteed to define every key,
		// so lookups always terminate successfully in practice.
		for key := range schema {
			assert.Contains(t, defaults, key)
		}
		for key := range defaults {
			assert.Contains(t, schema, key)
		}
	})

	t.Run("SchemaValidationRejectsNonArray", func(t *testing.T) {
		var doc any = map[string]any{"not": "an array"}
		assert.Error(t, schemaAssetSchema.Validate(doc))
	})

	t.Run("SchemaValidationRejectsNonStringItems", func(t *testing.T) {
		var doc any = []any{"fine", 42.0}
		assert.Error(t, schemaAssetSchema.Validate(doc))
	})
}

func TestBuilder(t *testing.T) {
	t.Run("EmbeddedDefaultsLoadWithZeroWarnings", func(t *testing.T) {
		cfg, err := NewBuilder().
			WithoutDiscovery().
			WithArgs(nil).
			Build()
		require.NoError(t, err)
		assert.Empty(t, cfg.Warnings())
	})

	t.Run("UnknownKeyInDefaultsIsFatal", func(t *testing.T) {
		_, err := NewBuilder().
			WithSchema("known").
			WithDefaults(map[string]any{"known": 1, "bogus": 2}).
			WithoutDiscovery().
			WithArgs(nil).
			Build()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDefaultConfig)
		assert.Contains(t, err.Error(), `"bogus"`)
	})

	t.Run("SourceOrder", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, ".pset.yaml"), "margin: 2cm\n")

		cfg, err := NewBuilder().
			WithSchema("margin").
			WithDefaults(map[string]any{"margin": "1in"}).
			WithStartDir(dir).
			WithArgs([]string{"--margin", "3pt"}).
			Build()
		require.NoError(t, err)

		require.GreaterOrEqual(t, len(cfg.sources), 3)
		assert.Equal(t, originCLI, cfg.sources[0].Origin)
		assert.False(t, cfg.sources[0].Strict)

		last := cfg.sources[len(cfg.sources)-1]
		assert.Equal(t, originDefault, last.Origin)
		assert.True(t, last.Strict)
	})
}
