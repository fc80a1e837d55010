package reindent

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
)

// dashPrefix matches the canonical "- " marker produced by UnifyMarkers,
// rewritten to the configured bullet symbol in document-bullet output.
var dashPrefix = regexp.MustCompile(`^-\s+`)

// renderer turns the document's lines into final text in one target
// convention. Rendering is stateless across lines; the only inputs are the
// line values and the options.
type renderer interface {
	render(lines []string, opts Options) string
}

// Compile-time interface implementation checks.
var (
	_ renderer = (*markdownRenderer)(nil)
	_ renderer = (*chatRenderer)(nil)
	_ renderer = (*documentRenderer)(nil)
	_ renderer = (*plainRenderer)(nil)
	_ renderer = (*outlineRenderer)(nil)
)

// isBlankLine reports whether the line is empty or whitespace-only. Blank
// lines are preserved as empty output lines and skip marker/indent logic.
func isBlankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}

// rtrim removes trailing whitespace when enabled.
func rtrim(line string, enabled bool) string {
	if enabled {
		return strings.TrimRight(line, " \t")
	}
	return line
}

// markdownRenderer emits level*IndentSize literal spaces followed by the
// unified content.
type markdownRenderer struct{}

func (markdownRenderer) render(lines []string, opts Options) string {
	out := make([]string, 0, len(lines))
	for _, raw := range lines {
		if isBlankLine(raw) {
			out = append(out, "")
			continue
		}
		level, rest := resolveIndent(raw, opts.IndentSize)
		rest = UnifyMarkers(rest)
		line := strings.Repeat(" ", opts.IndentSize*level) + rest
		out = append(out, rtrim(line, opts.TrimTrailingWhitespace))
	}
	return strings.Join(out, "\n")
}

// chatRenderer renders like Markdown and, when ChatWrapCodeblock is set,
// wraps the whole result in a fence so the destination's auto-reformatting
// cannot flatten the indentation.
type chatRenderer struct{}

func (chatRenderer) render(lines []string, opts Options) string {
	result := markdownRenderer{}.render(lines, opts)
	if opts.ChatWrapCodeblock {
		result = "```\n" + result + "\n```"
	}
	return result
}

// documentRenderer emits level literal tabs followed by the unified content
// with the canonical "- " marker rewritten to the configured bullet symbol.
// Document editors detect nesting from tabs, so tabs stay tabs here.
type documentRenderer struct{}

func (documentRenderer) render(lines []string, opts Options) string {
	out := make([]string, 0, len(lines))
	for _, raw := range lines {
		if isBlankLine(raw) {
			out = append(out, "")
			continue
		}
		level, rest := resolveIndent(raw, opts.IndentSize)
		rest = UnifyMarkers(rest)
		rest = dashPrefix.ReplaceAllString(rest, opts.DocumentBulletSymbol+" ")
		line := strings.Repeat("\t", level) + rest
		out = append(out, rtrim(line, opts.TrimTrailingWhitespace))
	}
	return strings.Join(out, "\n")
}

// plainRenderer only expands tabs and optionally right-trims. Markers and
// leading whitespace pass through verbatim.
type plainRenderer struct{}

func (plainRenderer) render(lines []string, opts Options) string {
	out := make([]string, 0, len(lines))
	for _, raw := range lines {
		out = append(out, rtrim(expandTabs(raw, opts.IndentSize), opts.TrimTrailingWhitespace))
	}
	return strings.Join(out, "\n")
}

// OutlineItem is one non-blank line of the structured outline: its nesting
// level and its unified, whitespace-stripped content.
type OutlineItem struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// outlineRenderer serializes the document as an ordered JSON array of
// OutlineItem records, blank lines excluded.
type outlineRenderer struct{}

func (outlineRenderer) render(lines []string, opts Options) string {
	items := make([]OutlineItem, 0, len(lines))
	for _, raw := range lines {
		if isBlankLine(raw) {
			continue
		}
		level, rest := resolveIndent(raw, opts.IndentSize)
		items = append(items, OutlineItem{Level: level, Text: UnifyMarkers(rest)})
	}
	return marshalOutline(items)
}

// marshalOutline renders items as indented JSON with non-ASCII text left
// unescaped, matching the outline's role as a human-inspectable format.
func marshalOutline(items []OutlineItem) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		// Encoding a slice of plain strings and ints cannot fail.
		return "[]"
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
