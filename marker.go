package reindent

import "regexp"

// Precompiled marker patterns. Both operate on a line whose leading
// whitespace has already been stripped.
var (
	// Bullet glyphs seen in pastes from chat clients and document
	// editors: ASCII hyphen/asterisk plus the common Unicode bullet and
	// dash variants.
	bulletMarker = regexp.MustCompile(`^[-*•‣⁃∙◦・·⁌⁍−–—―]\s+`)

	// Numbered markers: digits, a single letter, or a roman-numeral-like
	// token, followed by "." or ")" and whitespace. Single-letter words
	// followed by a period ("A. ") also match; in outline text such
	// tokens are list markers far more often than abbreviations.
	numberMarker = regexp.MustCompile(`^(\d+|[a-zA-Z]|[ivxIVX]+)[.)]\s+`)
)

// UnifyMarkers rewrites the leading list marker of a single content line
// into canonical form: any recognized bullet glyph becomes "- ", and a
// numbered marker keeps its token but normalizes the separator to "." with
// exactly one following space ("a)" -> "a. "). The bullet rule runs first;
// at most one rewrite applies. Lines matching neither pattern pass through
// unchanged. UnifyMarkers is idempotent.
func UnifyMarkers(line string) string {
	if bulletMarker.MatchString(line) {
		return bulletMarker.ReplaceAllString(line, "- ")
	}
	if numberMarker.MatchString(line) {
		return numberMarker.ReplaceAllString(line, "$1. ")
	}
	return line
}
