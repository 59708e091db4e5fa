package config

// Source is one ordered configuration layer: an origin label used in
// diagnostics, the raw values it defines, and its strictness. Problems in a
// strict source (parse failures, unknown keys, coercion failures) are fatal;
// in a non-strict source they degrade to warnings.
//
// Raw values are untyped as parsed: nil (an explicit empty marker), scalars
// (string, bool, number, json.Number), sequences ([]any, []string), or
// mappings (map[string]any, map[string]string). Typing happens at lookup
// time in the accessor.
type Source struct {
	Origin string
	Values map[string]any
	Strict bool
}

// Origin labels for the non-file sources.
const (
	originCLI     = "command line"
	originDefault = "default config"
)
