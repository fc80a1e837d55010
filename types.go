package reindent

import (
	"fmt"
	"strings"
)

// SourceKind identifies where the pasted text came from and selects the
// source-specific pre-clean rule.
type SourceKind string

// Source kinds.
const (
	SourceAuto           SourceKind = "auto"     // no pre-clean
	SourceChatTool       SourceKind = "chat"     // Slack-style chat client
	SourceDocumentEditor SourceKind = "document" // Google-Docs-style editor
	SourceMarkdownNotes  SourceKind = "markdown" // Obsidian-style Markdown notes
	SourceMarkdownChat   SourceKind = "chatgpt"  // Markdown produced by a chat assistant
)

// TargetKind identifies the output rendering convention.
type TargetKind string

// Target kinds.
const (
	TargetMarkdown          TargetKind = "markdown" // space-indented, unified markers
	TargetChatSafe          TargetKind = "chat"     // Markdown, optionally fence-wrapped
	TargetDocumentBullet    TargetKind = "document" // tab-indented, bullet symbol
	TargetPlain             TargetKind = "plain"    // tab expansion and trimming only
	TargetStructuredOutline TargetKind = "outline"  // JSON array of {level, text}
)

// Document bullet symbols accepted by Options.DocumentBulletSymbol.
const (
	BulletDot    = "•"
	BulletHyphen = "-"
)

// IndentSizes lists the accepted Options.IndentSize values.
var IndentSizes = []int{2, 3, 4, 8}

// Options configures a single conversion. The zero value is not usable;
// start from DefaultOptions.
type Options struct {
	Source SourceKind
	Target TargetKind

	// IndentSize is the tab-stop width and the space count per nesting
	// level. One of 2, 3, 4, 8.
	IndentSize int

	CollapseBlankLines     bool // collapse runs of 3+ newlines to 2
	TrimTrailingWhitespace bool // right-trim each rendered line
	KeepCodeFences         bool // pass ``` blocks through verbatim
	ChatWrapCodeblock      bool // wrap chat-safe output in a ``` fence

	// DocumentBulletSymbol replaces the unified "- " marker in
	// document-bullet output. BulletDot or BulletHyphen.
	DocumentBulletSymbol string

	ConvertSmartQuotes bool // fold typographic quotes/dashes to ASCII
}

// DefaultOptions returns the options the interactive tool ships with:
// Markdown output, two-space indent, all cleanups enabled.
func DefaultOptions() Options {
	return Options{
		Source:                 SourceAuto,
		Target:                 TargetMarkdown,
		IndentSize:             2,
		CollapseBlankLines:     true,
		TrimTrailingWhitespace: true,
		KeepCodeFences:         true,
		ChatWrapCodeblock:      true,
		DocumentBulletSymbol:   BulletDot,
		ConvertSmartQuotes:     true,
	}
}

// Validate checks that every option field holds an accepted value.
func (o Options) Validate() error {
	if !isValidSourceKind(o.Source) {
		return fmt.Errorf("%w: %q", ErrInvalidSourceKind, o.Source)
	}
	if !isValidTargetKind(o.Target) {
		return fmt.Errorf("%w: %q", ErrInvalidTargetKind, o.Target)
	}
	if !isValidIndentSize(o.IndentSize) {
		return fmt.Errorf("%w: %d (must be one of 2, 3, 4, 8)", ErrInvalidIndentSize, o.IndentSize)
	}
	if o.DocumentBulletSymbol != BulletDot && o.DocumentBulletSymbol != BulletHyphen {
		return fmt.Errorf("%w: %q (must be %q or %q)", ErrInvalidBulletSymbol, o.DocumentBulletSymbol, BulletDot, BulletHyphen)
	}
	return nil
}

// ParseSourceKind maps a user-facing name to a SourceKind. Accepts the
// canonical names plus the tool names users actually type (case-insensitive).
func ParseSourceKind(s string) (SourceKind, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return SourceAuto, nil
	case "chat", "slack":
		return SourceChatTool, nil
	case "document", "gdocs", "docs":
		return SourceDocumentEditor, nil
	case "markdown", "md", "obsidian":
		return SourceMarkdownNotes, nil
	case "chatgpt":
		return SourceMarkdownChat, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSourceKind, s)
}

// ParseTargetKind maps a user-facing name to a TargetKind (case-insensitive).
func ParseTargetKind(s string) (TargetKind, error) {
	switch strings.ToLower(s) {
	case "markdown", "md", "obsidian", "":
		return TargetMarkdown, nil
	case "chat", "slack":
		return TargetChatSafe, nil
	case "document", "gdocs", "docs":
		return TargetDocumentBullet, nil
	case "plain", "text":
		return TargetPlain, nil
	case "outline", "json":
		return TargetStructuredOutline, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTargetKind, s)
}

// isValidSourceKind checks if s is a known source kind.
func isValidSourceKind(s SourceKind) bool {
	switch s {
	case SourceAuto, SourceChatTool, SourceDocumentEditor, SourceMarkdownNotes, SourceMarkdownChat:
		return true
	}
	return false
}

// isValidTargetKind checks if t is a known target kind.
func isValidTargetKind(t TargetKind) bool {
	switch t {
	case TargetMarkdown, TargetChatSafe, TargetDocumentBullet, TargetPlain, TargetStructuredOutline:
		return true
	}
	return false
}

// isValidIndentSize checks if n is an accepted indent width.
func isValidIndentSize(n int) bool {
	for _, s := range IndentSizes {
		if n == s {
			return true
		}
	}
	return false
}
