// Package document assembles the LaTeX problem-set template from resolved
// configuration values. It is a pure consumer of the config accessor: every
// optional block is decided by a typed getter and the blocks concatenate in
// a fixed order.
package document

import (
	"fmt"
	"sort"
)

// Template variables the user can reference from marginals and headers, the
// conditional switches, and the macros the generator knows how to define.
var (
	templateVariables = []string{"name", "assignment", "class", "duedate"}
	ifNames           = []string{"clearpage"}
	macroNames        = []string{"problem", "solution", "maybeclearpage"}

	marginalContents  = buildMarginalContents()
	marginalPositions = []string{"lhead", "chead", "rhead", "lfoot", "cfoot", "rfoot"}
)

// listStyles maps a display form like "(a)" to its enumitem label like
// "(\alph*)". Computed once at init; immutable afterwards.
var (
	listStyles     = buildListStyles()
	listStyleNames = sortedKeys(listStyles)
)

// macroArgs holds the LaTeX macro argument placeholders #1..#9.
var macroArgs = buildMacroArgs()

func buildMarginalContents() []string {
	contents := make([]string, 0, len(templateVariables)+1)
	contents = append(contents, templateVariables...)
	return append(contents, "pagenumber")
}

func buildListStyles() map[string]string {
	formats := []string{"(%s)", "%s)", "%s."}
	counters := map[string]string{
		"a": `\alph*`,
		"A": `\Alph*`,
		"i": `\roman*`,
		"I": `\Roman*`,
		"1": `\arabic*`,
	}

	styles := make(map[string]string, len(formats)*len(counters))
	for _, format := range formats {
		for key, counter := range counters {
			styles[fmt.Sprintf(format, key)] = fmt.Sprintf(format, counter)
		}
	}
	return styles
}

func buildMacroArgs() []string {
	args := make([]string, 0, 9)
	for i := 1; i <= 9; i++ {
		args = append(args, fmt.Sprintf("#%d", i))
	}
	return args
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
