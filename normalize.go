package reindent

import "strings"

// Zero-width characters that are invisible but corrupt indent and length
// calculations: zero-width space, non-joiner, joiner, and the BOM used as a
// zero-width no-break space.
var zeroWidthReplacer = strings.NewReplacer(
	"​", "", // zero-width space
	"‌", "", // zero-width non-joiner
	"‍", "", // zero-width joiner
	"\uFEFF", "", // zero-width no-break space / BOM
)

// Typographic glyphs folded to ASCII when Options.ConvertSmartQuotes is set.
var smartQuoteReplacer = strings.NewReplacer(
	"“", `"`, // left double quotation mark
	"”", `"`, // right double quotation mark
	"„", `"`, // double low-9 quotation mark
	"′", "'", // prime
	"’", "'", // right single quotation mark
	"‘", "'", // left single quotation mark
	"‛", "'", // single high-reversed-9 quotation mark
	"‹", "<", // single left-pointing angle quotation mark
	"›", ">", // single right-pointing angle quotation mark
)

// Normalize canonicalizes line endings and whitespace:
// CRLF and bare CR become LF, NBSP becomes a regular space, the full-width
// space becomes two regular spaces (preserving approximate visual width),
// and zero-width characters are removed. With convertSmartQuotes set, a
// fixed table of typographic quote/dash glyphs is folded to ASCII.
//
// Normalize is total: it never fails, including on the empty string.
func Normalize(text string, convertSmartQuotes bool) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, " ", " ")
	text = strings.ReplaceAll(text, "　", "  ")
	text = zeroWidthReplacer.Replace(text)
	if convertSmartQuotes {
		text = smartQuoteReplacer.Replace(text)
	}
	return text
}
