package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortByOrder(t *testing.T) {
	t.Run("OrderedFirstThenAlphabetical", func(t *testing.T) {
		items := []string{"cfoot", "zeta", "lhead", "alpha", "rhead"}
		order := []string{"lhead", "rhead", "cfoot"}

		assert.Equal(t,
			[]string{"lhead", "rhead", "cfoot", "alpha", "zeta"},
			sortByOrder(items, order))
	})

	t.Run("EmptyOrderIsAlphabetical", func(t *testing.T) {
		assert.Equal(t,
			[]string{"a", "b", "c"},
			sortByOrder([]string{"c", "a", "b"}, nil))
	})

	t.Run("InputIsNotMutated", func(t *testing.T) {
		items := []string{"b", "a"}
		_ = sortByOrder(items, nil)
		assert.Equal(t, []string{"b", "a"}, items)
	})
}

func TestCombineBlocks(t *testing.T) {
	t.Run("BlankLineBetweenGroups", func(t *testing.T) {
		got := combineBlocks([][]string{
			{"one", "two"},
			{"three"},
		})
		assert.Equal(t, "one\ntwo\n\nthree", got)
	})

	t.Run("SingleGroup", func(t *testing.T) {
		assert.Equal(t, "one", combineBlocks([][]string{{"one"}}))
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, "", combineBlocks(nil))
	})
}

func TestListStyles(t *testing.T) {
	// Three bracket forms times five counters.
	assert.Len(t, listStyles, 15)
	assert.Equal(t, `(\alph*)`, listStyles["(a)"])
	assert.Equal(t, `\Roman*.`, listStyles["I."])
	assert.Equal(t, `\arabic*)`, listStyles["1)"])

	assert.Len(t, listStyleNames, len(listStyles))
	assert.Contains(t, listStyleNames, "(A)")
}

func TestMacroDeclarations(t *testing.T) {
	assert.Equal(t, `\newcommand{\problem}[1]{\section*{#1}}`,
		macroProblem.declaration())
	assert.Equal(t, `\newcommand{\solution}{\hrulefill}`,
		macroSolution.declaration())
	assert.Equal(t, `\newcommand{\maybeclearpage}{\ifclearpage\clearpage\fi}`,
		macroMaybeClearpage.declaration())

	for _, name := range macroNames {
		kind, ok := macroKindsByName[name]
		assert.True(t, ok)
		assert.Equal(t, name, kind.name())
	}
}
