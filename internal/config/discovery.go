package config

import (
	"os"
	"path/filepath"
)

// Candidate filenames are the base names crossed with the extensions, in
// this priority order. The first existing candidate wins per directory;
// equivalent files with lower-priority extensions are not loaded.
var (
	configBases      = []string{".pset", "pset"}
	configExtensions = []string{"yaml", "yml", "json", "toml"}
)

// discoverConfigFiles walks from startDir up to and including the filesystem
// root and records at most one config file per directory. The returned paths
// are ordered nearest directory first, which is also their precedence order.
func discoverConfigFiles(startDir string) ([]string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}
	// Canonicalize so the parent-of-root termination check is reliable even
	// when startDir is reached through a symlink.
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		dir = resolved
	}

	var paths []string
	for {
		if path, ok := findConfigFile(dir); ok {
			paths = append(paths, path)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// The root is its own parent; it has been processed.
			return paths, nil
		}
		dir = parent
	}
}

// findConfigFile probes the candidate filenames in priority order and
// returns the first regular file that exists in dir.
func findConfigFile(dir string) (string, bool) {
	for _, base := range configBases {
		for _, ext := range configExtensions {
			candidate := filepath.Join(dir, base+"."+ext)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, true
			}
		}
	}
	return "", false
}
