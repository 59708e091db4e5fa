package document

import (
	"sort"
	"strings"
)

// sortByOrder returns items sorted by their position in order. Items not in
// order sort after those that are, alphabetically among themselves.
func sortByOrder(items, order []string) []string {
	rank := func(item string) int {
		for i, candidate := range order {
			if candidate == item {
				return i
			}
		}
		return len(order)
	}

	sorted := append([]string(nil), items...)
	sort.Slice(sorted, func(i, j int) bool {
		ri, rj := rank(sorted[i]), rank(sorted[j])
		if ri != rj {
			return ri < rj
		}
		return sorted[i] < sorted[j]
	})
	return sorted
}

// combineBlocks joins groups of lines into one text, separating consecutive
// groups with a blank line.
func combineBlocks(groups [][]string) string {
	var lines []string
	for i, group := range groups {
		if i != 0 {
			lines = append(lines, "")
		}
		lines = append(lines, group...)
	}
	return strings.Join(lines, "\n")
}
