package document

import "fmt"

// macroKind enumerates the autogenerated macros. Each kind carries its own
// definition, so selecting a handler is a compile-time switch rather than a
// name-keyed registry.
type macroKind int

const (
	macroProblem macroKind = iota
	macroSolution
	macroMaybeClearpage
)

var macroKindsByName = map[string]macroKind{
	"problem":        macroProblem,
	"solution":       macroSolution,
	"maybeclearpage": macroMaybeClearpage,
}

func (m macroKind) name() string {
	switch m {
	case macroProblem:
		return "problem"
	case macroSolution:
		return "solution"
	case macroMaybeClearpage:
		return "maybeclearpage"
	}
	panic(fmt.Sprintf("document: unknown macro kind %d", m))
}

// argCount returns the number of arguments the macro declaration takes.
func (m macroKind) argCount() int {
	if m == macroProblem {
		return 1
	}
	return 0
}

// definition returns the macro body.
func (m macroKind) definition() string {
	switch m {
	case macroProblem:
		return fmt.Sprintf(`\section*{%s}`, macroArgs[0])
	case macroSolution:
		return `\hrulefill`
	case macroMaybeClearpage:
		return `\ifclearpage\clearpage\fi`
	}
	panic(fmt.Sprintf("document: unknown macro kind %d", m))
}

// declaration renders the full \newcommand line for the macro.
func (m macroKind) declaration() string {
	line := fmt.Sprintf(`\newcommand{\%s}`, m.name())
	if n := m.argCount(); n >= 1 {
		line += fmt.Sprintf("[%d]", n)
	}
	return line + "{" + m.definition() + "}"
}
