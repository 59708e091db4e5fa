package config

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrSchemaInvalid reports a missing or malformed schema asset.
	ErrSchemaInvalid = errors.New("schema asset is invalid")
	// ErrDefaultConfig reports a problem loading the built-in default config.
	ErrDefaultConfig = errors.New("default config is invalid")
)

// Config holds the resolved configuration layers. It is immutable after
// Build; lookups only append to the diagnostic sink.
type Config struct {
	schema  map[string]struct{}
	sources []Source // precedence order: CLI, discovered near to far, default
	diags   *diagnostics

	mu   sync.Mutex
	used map[string]struct{}
}

// coercion converts a raw source value to a typed value. A nil result with a
// nil error means the value coerced to the explicit-absent marker.
type coercion func(raw any) (any, error)

// lookup walks the sources in precedence order and returns the first value
// for key that coerces successfully. A coercion failure at a non-strict
// source is warned and the walk continues; at the strict default source it is
// a programmer error, since the default asset is maintained with the code.
func (c *Config) lookup(key string, coerce coercion) (any, bool) {
	c.markUsed(key)

	for _, src := range c.sources {
		raw, ok := src.Values[key]
		if !ok {
			continue
		}
		if raw == nil {
			// Explicit empty marker (e.g. a bare --flag): the lookup
			// terminates here with the absent value.
			return nil, false
		}

		typed, err := coerce(raw)
		if err != nil {
			if src.Strict {
				panic(fmt.Sprintf("config: default value for key %q does not coerce: %v", key, err))
			}
			c.diags.Warnf("ignoring value %v for key %q from %s: %v", raw, key, src.Origin, err)
			continue
		}
		if typed == nil {
			return nil, false
		}
		return typed, true
	}

	return nil, false
}

func (c *Config) markUsed(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.used[key] = struct{}{}
}

// Warnf records a warning in the diagnostic sink. Duplicate messages are
// reported once.
func (c *Config) Warnf(format string, args ...any) {
	c.diags.Warnf(format, args...)
}

// Warnings returns every distinct warning recorded so far, in order.
func (c *Config) Warnings() []string {
	return c.diags.Messages()
}

// Ignored marks key as consumed and warns if any override source actually
// set it, naming the reason the value has no effect. Defaulted keys the user
// never touched stay silent.
func (c *Config) Ignored(key, reason string) {
	c.markUsed(key)

	for _, src := range c.sources {
		if src.Strict {
			continue
		}
		if _, ok := src.Values[key]; ok {
			c.diags.Warnf("ignoring key %q from %s: %s", key, src.Origin, reason)
			return
		}
	}
}

// WarnUnused reports every schema key that no getter requested during the
// run. Stale keys in the schema or in override files surface here.
func (c *Config) WarnUnused() {
	c.mu.Lock()
	used := make(map[string]struct{}, len(c.used))
	for key := range c.used {
		used[key] = struct{}{}
	}
	c.mu.Unlock()

	keys := make([]string, 0, len(c.schema))
	for key := range c.schema {
		if _, ok := used[key]; !ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		c.diags.Warnf("config key %q is recognized but was never used", key)
	}
}
