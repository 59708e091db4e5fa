package config

import "strings"

const (
	flagPrefix   = "--"
	mapSeparator = "="
)

// parseArgs builds the command-line source from the raw argument list.
//
// An argument starting with the flag prefix begins a new key and flushes the
// values accumulated for the previous one. Values before the first flag are
// dropped with a warning. An accumulated run is interpreted by shape: zero
// values is an explicit empty marker, one value is a scalar string, and two
// or more values become either a mapping (every value is subkey=value form)
// or a list of strings (no value is). Mixed forms cannot be merged, so the
// whole run is dropped with one warning. A repeated flag starts a fresh run
// and silently overwrites the earlier binding.
func (c *Config) parseArgs(args []string) map[string]any {
	values := make(map[string]any)

	var key string
	var run []string
	started := false

	flush := func() {
		if !started {
			return
		}
		if value, ok := c.interpretRun(key, run); ok {
			values[key] = value
		}
	}

	for _, arg := range args {
		if strings.HasPrefix(arg, flagPrefix) {
			flush()
			key = strings.TrimPrefix(arg, flagPrefix)
			run = nil
			started = true
			continue
		}
		if !started {
			c.diags.Warnf("ignoring command-line value %q given before any %skey flag", arg, flagPrefix)
			continue
		}
		run = append(run, arg)
	}
	flush()

	for key := range values {
		if _, ok := c.schema[key]; !ok {
			c.diags.Warnf("ignoring unknown key %q from %s", key, originCLI)
			delete(values, key)
		}
	}
	return values
}

// interpretRun converts one accumulated value run into its raw value.
func (c *Config) interpretRun(key string, run []string) (any, bool) {
	switch len(run) {
	case 0:
		return nil, true // explicit empty marker
	case 1:
		return run[0], true
	}

	mapForm := strings.Contains(run[0], mapSeparator)
	for _, value := range run[1:] {
		if strings.Contains(value, mapSeparator) != mapForm {
			c.diags.Warnf("ignoring command-line setting of key %q due to inconsistent values %q and %q",
				key, run[0], value)
			return nil, false
		}
	}

	if mapForm {
		mapping := make(map[string]string, len(run))
		for _, value := range run {
			subkey, val, _ := strings.Cut(value, mapSeparator)
			mapping[subkey] = val
		}
		return mapping, true
	}

	return append([]string(nil), run...), true
}
