package document

import (
	"fmt"
	"sort"
	"strings"

	"pset/internal/config"
)

// Generate renders the complete problem-set document from the resolved
// configuration. Blocks are emitted in a fixed order: document class and
// packages, if/variable/macro declarations, preamble blocks, then the body.
func Generate(cfg *config.Config) string {
	documentClass := "article"
	var classOptions []string
	var packages []string

	if size, ok := cfg.Enum("font-size", []string{"10", "11", "12"}); ok {
		classOptions = append(classOptions, size+"pt")
	}

	if on, _ := cfg.Bool("fancy-math"); on {
		packages = append(packages, "amsmath", "amssymb")
	}
	if indent, _ := cfg.Bool("indent-paragraphs"); !indent {
		packages = append(packages, "parskip")
	}

	var preambleBlocks [][]string

	// Variables, ifs and macros referenced anywhere in the document collect
	// here; their declaration blocks are assembled at the end.
	variables := make(map[string]struct{})
	ifs := make(map[string]struct{})
	macros := make(map[string]struct{})

	if on, _ := cfg.Bool("clearpage-option"); on {
		ifs["clearpage"] = struct{}{}
		macros["maybeclearpage"] = struct{}{}
	}
	if on, _ := cfg.Bool("problem-macro"); on {
		macros["problem"] = struct{}{}
	}
	if on, _ := cfg.Bool("solution-macro"); on {
		macros["solution"] = struct{}{}
	}

	if on, _ := cfg.Bool("fancy-marginals"); on {
		packages = append(packages, "fancyhdr")
		order, _ := cfg.EnumList("marginal-position-order", nil, true)

		var pageStyles []string
		if block := marginalStyleBlock(cfg, "primary-marginals", "primary", order, variables); block != nil {
			preambleBlocks = append(preambleBlocks, block)
		}
		pageStyles = append(pageStyles, `\pagestyle{primary}`)

		if on, _ := cfg.Bool("use-firstpage-marginals"); on {
			if block := marginalStyleBlock(cfg, "firstpage-marginals", "first", order, variables); block != nil {
				preambleBlocks = append(preambleBlocks, block)
			}
			pageStyles = append(pageStyles, `\thispagestyle{first}`)
		} else {
			cfg.Ignored("firstpage-marginals", "use-firstpage-marginals was set to false")
		}
		preambleBlocks = append(preambleBlocks, pageStyles)
	} else {
		cfg.Ignored("firstpage-marginals", "fancy-marginals was set to false")
		cfg.Ignored("primary-marginals", "fancy-marginals was set to false")
	}

	if on, _ := cfg.Bool("fancy-page-layout"); on {
		packages = append(packages, "geometry")
		margin, _ := cfg.String("margin")
		preambleBlocks = append(preambleBlocks, []string{
			fmt.Sprintf(`\geometry{margin=%s}`, margin),
		})
	} else {
		cfg.Ignored("margin", "fancy-page-layout was set to false")
	}

	if on, _ := cfg.Bool("fancy-lists"); on {
		packages = append(packages, "enumitem")
		if block := listSettingsBlock(cfg); block != nil {
			preambleBlocks = append(preambleBlocks, block)
		}
	} else {
		cfg.Ignored("list-number-style", "fancy-lists was set to false")
	}

	var bodyBlocks [][]string
	bodyBlocks = append(bodyBlocks, []string{`\begin{document}`})

	if on, _ := cfg.Bool("use-firstpage-header"); on {
		if block := firstpageHeaderBlock(cfg, variables); block != nil {
			bodyBlocks = append(bodyBlocks, block)
		}
	}

	problems, _ := cfg.StringList("problems")
	for i, problem := range problems {
		var block []string
		if i != 0 {
			if _, ok := macros["maybeclearpage"]; ok {
				block = append(block, `\maybeclearpage`)
			} else if on, _ := cfg.Bool("clearpage"); on {
				block = append(block, `\clearpage`)
			}
		}
		if _, ok := macros["problem"]; ok {
			block = append(block, fmt.Sprintf(`\problem{%s}`, problem))
		} else {
			block = append(block, fmt.Sprintf(`\section*{%s}`, problem))
		}
		bodyBlocks = append(bodyBlocks, block)

		if _, ok := macros["solution"]; ok {
			bodyBlocks = append(bodyBlocks, []string{`\solution`})
		}
	}

	bodyBlocks = append(bodyBlocks, []string{`\end{document}`})

	// With packages, variables, ifs and macros collected, the aggregate
	// declaration blocks can be assembled.
	var aggregateBlocks [][]string

	classDecl := `\documentclass`
	if len(classOptions) > 0 {
		classDecl += "[" + strings.Join(classOptions, ",") + "]"
	}
	classDecl += "{" + documentClass + "}"

	packageBlock := []string{classDecl}
	for _, pkg := range packages {
		packageBlock = append(packageBlock, fmt.Sprintf(`\usepackage{%s}`, pkg))
	}
	aggregateBlocks = append(aggregateBlocks, packageBlock)

	ifOrder, _ := cfg.EnumList("if-order", ifNames, false)
	sortedIfs := sortByOrder(setToSlice(ifs), ifOrder)

	var ifBlock []string
	for _, name := range sortedIfs {
		ifBlock = append(ifBlock, fmt.Sprintf(`\newif\if%s`, name))
	}
	if len(ifBlock) > 0 {
		aggregateBlocks = append(aggregateBlocks, ifBlock)
	}

	variableOrder, _ := cfg.EnumList("variable-order", templateVariables, false)
	var variableBlock []string
	for _, variable := range sortByOrder(setToSlice(variables), variableOrder) {
		value, _ := cfg.String(variable)
		variableBlock = append(variableBlock, fmt.Sprintf(`\newcommand{\%s}{%s}`, variable, value))
	}
	if len(variableBlock) > 0 {
		aggregateBlocks = append(aggregateBlocks, variableBlock)
	}

	var switchBlock []string
	for _, name := range sortedIfs {
		state := "false"
		if on, _ := cfg.Bool(name); on {
			state = "true"
		}
		switchBlock = append(switchBlock, fmt.Sprintf(`\%s%s`, name, state))
	}
	if len(switchBlock) > 0 {
		aggregateBlocks = append(aggregateBlocks, switchBlock)
	}

	macroOrder, _ := cfg.EnumList("macro-list", macroNames, false)
	var macroBlock []string
	for _, name := range sortByOrder(setToSlice(macros), macroOrder) {
		macroBlock = append(macroBlock, macroKindsByName[name].declaration())
	}
	if len(macroBlock) > 0 {
		aggregateBlocks = append(aggregateBlocks, macroBlock)
	}

	var groups [][]string
	groups = append(groups, aggregateBlocks...)
	groups = append(groups, preambleBlocks...)
	groups = append(groups, bodyBlocks...)
	return combineBlocks(groups)
}

// marginalStyleBlock builds one \fancypagestyle declaration from a
// position-to-content mapping, with positions ordered by the configured
// marginal position order.
func marginalStyleBlock(cfg *config.Config, key, styleName string, order []string, variables map[string]struct{}) []string {
	entries, ok := cfg.EnumEnumMap(key, marginalPositions, marginalContents)
	if !ok || len(entries) == 0 {
		return nil
	}

	positions := make([]string, 0, len(entries))
	for position := range entries {
		positions = append(positions, position)
	}
	positions = sortByOrder(positions, order)

	block := []string{
		fmt.Sprintf(`\fancypagestyle{%s}{`, styleName),
		`  \fancyhf{}`,
	}
	for _, position := range positions {
		content := formatMarginal(entries[position], variables)
		block = append(block, fmt.Sprintf(`  \%s{%s}`, position, content))
	}
	return append(block, `}`)
}

// listSettingsBlock emits \setlist lines for up to four enumerate levels.
func listSettingsBlock(cfg *config.Config) []string {
	styles, ok := cfg.EnumList("list-number-style", listStyleNames, false)
	if !ok {
		return nil
	}

	const maxLevels = 4
	var block []string
	for level, style := range styles {
		if level >= maxLevels {
			cfg.Warnf("last %d elements of list-number-style were ignored (only %d are allowed)",
				len(styles)-maxLevels, maxLevels)
			break
		}
		block = append(block, fmt.Sprintf(`\setlist[enumerate,%d]{label=%s}`, level+1, listStyles[style]))
	}
	return block
}

// firstpageHeaderBlock renders the flushright header of the first page.
func firstpageHeaderBlock(cfg *config.Config, variables map[string]struct{}) []string {
	contents, _ := cfg.EnumList("firstpage-header", marginalContents, false)
	if len(contents) == 0 {
		return nil
	}

	block := []string{`\begin{flushright}`}
	for i, content := range contents {
		line := "  " + formatMarginal(content, variables)
		if i != len(contents)-1 {
			line += ` \\`
		}
		block = append(block, line)
	}
	return append(block, `\end{flushright}`)
}

// formatMarginal renders one marginal content reference. Template variables
// are recorded so their \newcommand definitions are emitted later.
func formatMarginal(content string, variables map[string]struct{}) string {
	for _, variable := range templateVariables {
		if content == variable {
			variables[content] = struct{}{}
			return `\` + content
		}
	}
	if content == "pagenumber" {
		return `\thepage{} of \pageref{LastPage}`
	}
	// Contents are filtered by the enum coercions before they get here.
	panic(fmt.Sprintf("document: unknown marginal content %q", content))
}

func setToSlice(set map[string]struct{}) []string {
	items := make([]string, 0, len(set))
	for item := range set {
		items = append(items, item)
	}
	sort.Strings(items)
	return items
}
