package reindent

import (
	"regexp"
	"strings"
)

// quoteRun matches one or more block-quote markers at the start of a line,
// as chat clients stack them when quotes are forwarded.
var quoteRun = regexp.MustCompile(`(?m)^>+\s?`)

// preCleaner applies a narrow, source-specific fixup before line
// processing. These are best-effort heuristics for known paste artifacts,
// not a general parser; unknown sources pass through unchanged.
type preCleaner interface {
	preClean(text string, source SourceKind) string
}

type sourcePreCleaner struct{}

var _ preCleaner = (*sourcePreCleaner)(nil)

func (sourcePreCleaner) preClean(text string, source SourceKind) string {
	switch source {
	case SourceChatTool:
		// Chat clients flatten indentation beyond repair; normalize
		// stacked quote markers to a single "> " and leave the rest.
		return quoteRun.ReplaceAllString(text, "> ")
	case SourceDocumentEditor:
		// Document editors export bullets as "•" followed by a tab.
		return strings.ReplaceAll(text, "•\t", "- ")
	default:
		// Markdown-like sources and Auto need no fixup.
		return text
	}
}
