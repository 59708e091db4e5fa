package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "pset")
		require.NoError(t, os.WriteFile(base+".yml",
			[]byte("margin: 1in\nproblems:\n  - 1\n  - 2\n"), 0644))

		require.NoError(t, convert(base))

		out, err := os.ReadFile(base + ".json")
		require.NoError(t, err)
		assert.JSONEq(t, `{"margin": "1in", "problems": [1, 2]}`, string(out))
		assert.True(t, len(out) > 0 && out[len(out)-1] == '\n')
	})

	t.Run("MissingSource", func(t *testing.T) {
		assert.Error(t, convert(filepath.Join(t.TempDir(), "absent")))
	})

	t.Run("MalformedSource", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "pset")
		require.NoError(t, os.WriteFile(base+".yml", []byte("{unbalanced"), 0644))

		err := convert(base)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse")
	})
}
