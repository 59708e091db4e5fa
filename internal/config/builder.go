package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Builder provides a fluent interface for assembling a resolved Config.
type Builder struct {
	args       []string
	startDir   string
	logger     *zap.Logger
	schemaKeys []string
	defaults   map[string]any
	discover   bool
}

// NewBuilder creates a builder with the process arguments and discovery from
// the current working directory.
func NewBuilder() *Builder {
	return &Builder{
		args:     os.Args[1:],
		discover: true,
	}
}

// WithArgs sets the command-line arguments.
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// WithStartDir sets the directory the upward file discovery starts from.
// The default is the current working directory.
func (b *Builder) WithStartDir(dir string) *Builder {
	b.startDir = dir
	return b
}

// WithLogger sets the logger warnings are written to. Without one the
// warnings are still recorded in the sink but not emitted.
func (b *Builder) WithLogger(logger *zap.Logger) *Builder {
	b.logger = logger
	return b
}

// WithSchema replaces the embedded schema asset with an explicit key set.
func (b *Builder) WithSchema(keys ...string) *Builder {
	b.schemaKeys = keys
	return b
}

// WithDefaults replaces the embedded default config. The values are held to
// the same strictness as the embedded asset: an unknown key is fatal.
func (b *Builder) WithDefaults(values map[string]any) *Builder {
	b.defaults = values
	return b
}

// WithoutDiscovery disables the upward config file search.
func (b *Builder) WithoutDiscovery() *Builder {
	b.discover = false
	return b
}

// Build loads the schema, the strict default source, the discovered override
// files, and the command-line source, and returns the read-only Config.
// Schema and default-source problems are fatal; everything else degrades to
// warnings in the diagnostic sink.
func (b *Builder) Build() (*Config, error) {
	c := &Config{
		diags: newDiagnostics(b.logger),
		used:  make(map[string]struct{}),
	}

	if b.schemaKeys != nil {
		c.schema = make(map[string]struct{}, len(b.schemaKeys))
		for _, key := range b.schemaKeys {
			c.schema[key] = struct{}{}
		}
	} else {
		schema, err := loadSchema()
		if err != nil {
			return nil, err
		}
		c.schema = schema
	}

	defaults := b.defaults
	if defaults == nil {
		loaded, err := loadDefaultConfig()
		if err != nil {
			return nil, err
		}
		defaults = loaded
	}
	if err := c.filterUnknownKeys(defaults, originDefault, true); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDefaultConfig, err)
	}

	c.sources = append(c.sources, Source{
		Origin: originCLI,
		Values: c.parseArgs(b.args),
	})

	if b.discover {
		startDir := b.startDir
		if startDir == "" {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to resolve working directory: %w", err)
			}
			startDir = cwd
		}

		paths, err := discoverConfigFiles(startDir)
		if err != nil {
			return nil, fmt.Errorf("config file discovery failed: %w", err)
		}
		for _, path := range paths {
			values, err := c.loadConfigFile(path, false)
			if err != nil {
				return nil, err
			}
			c.sources = append(c.sources, Source{Origin: path, Values: values})
		}
	}

	c.sources = append(c.sources, Source{
		Origin: originDefault,
		Values: defaults,
		Strict: true,
	})

	return c, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Config {
	cfg, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("config build failed: %v", err))
	}
	return cfg
}
