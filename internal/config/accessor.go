package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Bool resolves key as a boolean. Booleans pass through; anything else is
// stringified and matched case-insensitively against the usual synonyms
// (y/yes/true/on/1 and n/no/false/off/0). ok is false when the key is absent
// everywhere or every candidate value fails to coerce.
func (c *Config) Bool(key string) (bool, bool) {
	typed, ok := c.lookup(key, coerceBool)
	if !ok {
		return false, false
	}
	return typed.(bool), true
}

// String resolves key as a string, stringifying any scalar value.
func (c *Config) String(key string) (string, bool) {
	typed, ok := c.lookup(key, func(raw any) (any, error) {
		return stringifyScalar(raw)
	})
	if !ok {
		return "", false
	}
	return typed.(string), true
}

// Enum resolves key as a string that must be a member of allowed.
func (c *Config) Enum(key string, allowed []string) (string, bool) {
	typed, ok := c.lookup(key, func(raw any) (any, error) {
		s, err := stringifyScalar(raw)
		if err != nil {
			return nil, err
		}
		if !containsString(allowed, s) {
			return nil, fmt.Errorf("%q is not one of %v", s, allowed)
		}
		return s, nil
	})
	if !ok {
		return "", false
	}
	return typed.(string), true
}

// StringList resolves key as a sequence with every element stringified.
func (c *Config) StringList(key string) ([]string, bool) {
	typed, ok := c.lookup(key, func(raw any) (any, error) {
		seq, err := sequenceOf(raw)
		if err != nil {
			return nil, err
		}
		out := make([]string, 0, len(seq))
		for _, element := range seq {
			s, err := stringifyScalar(element)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
		return out, nil
	})
	if !ok {
		return nil, false
	}
	return typed.([]string), true
}

// EnumList resolves key as a sequence of members of allowed, preserving
// order with first-occurrence semantics. Duplicates (when unique is set) and
// non-members are warned and skipped rather than failing the whole value.
// A nil allowed set skips the membership check.
func (c *Config) EnumList(key string, allowed []string, unique bool) ([]string, bool) {
	typed, ok := c.lookup(key, func(raw any) (any, error) {
		seq, err := sequenceOf(raw)
		if err != nil {
			return nil, err
		}
		out := make([]string, 0, len(seq))
		seen := make(map[string]struct{}, len(seq))
		for _, element := range seq {
			s, err := stringifyScalar(element)
			if err != nil {
				return nil, err
			}
			if _, dup := seen[s]; dup && unique {
				c.diags.Warnf("ignoring duplicate value %q for key %q", s, key)
				continue
			}
			if allowed != nil && !containsString(allowed, s) {
				c.diags.Warnf("ignoring value %q for key %q: not one of %v", s, key, allowed)
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
		return out, nil
	})
	if !ok {
		return nil, false
	}
	return typed.([]string), true
}

// EnumEnumMap resolves key as a mapping whose keys must be members of
// allowedKeys and whose values must be members of allowedValues. Offending
// entries are warned and skipped; an already-assigned key is never
// overwritten. Entries are processed in sorted key order so warnings are
// deterministic.
func (c *Config) EnumEnumMap(key string, allowedKeys, allowedValues []string) (map[string]string, bool) {
	typed, ok := c.lookup(key, func(raw any) (any, error) {
		entries, err := mappingOf(raw)
		if err != nil {
			return nil, err
		}

		type entry struct {
			key   string
			value any
		}
		stringified := make([]entry, 0, len(entries))
		for rawKey, rawValue := range entries {
			s, err := stringifyScalar(rawKey)
			if err != nil {
				return nil, fmt.Errorf("mapping key: %w", err)
			}
			stringified = append(stringified, entry{key: s, value: rawValue})
		}
		sort.Slice(stringified, func(i, j int) bool { return stringified[i].key < stringified[j].key })

		out := make(map[string]string, len(stringified))
		for _, e := range stringified {
			if !containsString(allowedKeys, e.key) {
				c.diags.Warnf("ignoring entry %q for key %q: not one of %v", e.key, key, allowedKeys)
				continue
			}
			value, err := stringifyScalar(e.value)
			if err != nil {
				return nil, fmt.Errorf("mapping value for %q: %w", e.key, err)
			}
			if !containsString(allowedValues, value) {
				c.diags.Warnf("ignoring value %q for entry %q of key %q: not one of %v",
					value, e.key, key, allowedValues)
				continue
			}
			if _, assigned := out[e.key]; assigned {
				c.diags.Warnf("ignoring repeated entry %q for key %q", e.key, key)
				continue
			}
			out[e.key] = value
		}
		return out, nil
	})
	if !ok {
		return nil, false
	}
	return typed.(map[string]string), true
}

// coerceBool implements the boolean coercion.
func coerceBool(raw any) (any, error) {
	if b, ok := raw.(bool); ok {
		return b, nil
	}
	s, err := stringifyScalar(raw)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(s) {
	case "y", "yes", "true", "on", "1":
		return true, nil
	case "n", "no", "false", "off", "0":
		return false, nil
	}
	return nil, fmt.Errorf("%q is not a boolean", s)
}

// stringifyScalar converts a scalar raw value to its string form, using a
// weakly-typed decode so numbers and booleans keep their literal rendering.
func stringifyScalar(raw any) (string, error) {
	switch raw.(type) {
	case []any, []string, map[string]any, map[string]string:
		return "", fmt.Errorf("expected a scalar, got %T", raw)
	}

	var s string
	if err := mapstructure.WeakDecode(raw, &s); err != nil {
		return "", fmt.Errorf("cannot convert %T to string: %v", raw, err)
	}
	return s, nil
}

// sequenceOf normalizes a raw sequence value to []any.
func sequenceOf(raw any) ([]any, error) {
	switch seq := raw.(type) {
	case []any:
		return seq, nil
	case []string:
		out := make([]any, len(seq))
		for i, s := range seq {
			out[i] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected a list, got %T", raw)
	}
}

// mappingOf normalizes a raw mapping value to map[string]any.
func mappingOf(raw any) (map[string]any, error) {
	entries, ok := normalizeMapping(raw)
	if !ok {
		return nil, fmt.Errorf("expected a mapping, got %T", raw)
	}
	return entries, nil
}

func containsString(values []string, s string) bool {
	for _, value := range values {
		if value == s {
			return true
		}
	}
	return false
}
