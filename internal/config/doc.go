// Package config resolves layered problem-set configuration: an embedded
// default config, override files discovered from the working directory up to
// the filesystem root, and command-line arguments, in that order of
// increasing precedence.
//
// Every source is validated against an embedded schema of recognized keys.
// The default source is strict: any problem loading it is fatal. Discovered
// files and command-line arguments are non-strict: malformed content, unknown
// keys, and values that fail type coercion degrade to warnings and the next
// source is consulted instead.
//
// Typed getters (Bool, String, Enum, StringList, EnumList, EnumEnumMap) walk
// the sources in precedence order and return the first value that coerces to
// the requested type, together with an ok flag; ok is false when no source
// supplies a usable value. Lookups have no side effects beyond the
// append-only diagnostic sink, so a built Config is read-only and safe to
// query from any call site in any order.
package config
