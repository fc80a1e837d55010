package reindent

import "strings"

// expandTabs replaces each tab with spaces up to the next multiple of width
// columns, counting columns from the start of the string. Matches the
// tab-stop semantics outlines are authored against, so a lone tab and
// width spaces produce the same level.
func expandTabs(s string, width int) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	col := 0
	for _, r := range s {
		switch r {
		case '\t':
			n := width - col%width
			for i := 0; i < n; i++ {
				b.WriteByte(' ')
			}
			col += n
		case '\n':
			b.WriteRune(r)
			col = 0
		default:
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}

// splitIndent separates a tab-expanded line into its leading space run and
// the remaining content.
func splitIndent(line string) (leading, rest string) {
	i := 0
	for i < len(line) && line[i] == ' ' {
		i++
	}
	return line[:i], line[i:]
}

// resolveIndent expands tabs in a raw content line and derives its nesting
// level from the leading whitespace width: level = leading columns divided
// by indentSize, rounded down. The returned content is the line with the
// leading whitespace removed; marker unification is the caller's step.
// Whitespace-only lines are short-circuited upstream and never passed here.
func resolveIndent(raw string, indentSize int) (level int, content string) {
	expanded := expandTabs(raw, indentSize)
	leading, rest := splitIndent(expanded)
	return len(leading) / indentSize, rest
}
