package reindent

import (
	"fmt"
	"regexp"
	"strings"
)

// blankRun matches three or more consecutive newlines, collapsed to exactly
// two when Options.CollapseBlankLines is set.
var blankRun = regexp.MustCompile(`\n{3,}`)

// Converter orchestrates the conversion pipeline. The zero value is not
// usable; create one with NewConverter. A Converter holds no per-call
// state, so it is safe for concurrent use.
type Converter struct {
	preCleaner preCleaner
	renderers  map[TargetKind]renderer
}

// NewConverter creates a Converter with the standard pipeline stages.
func NewConverter() *Converter {
	return &Converter{
		preCleaner: sourcePreCleaner{},
		renderers: map[TargetKind]renderer{
			TargetMarkdown:          markdownRenderer{},
			TargetChatSafe:          chatRenderer{},
			TargetDocumentBullet:    documentRenderer{},
			TargetPlain:             plainRenderer{},
			TargetStructuredOutline: outlineRenderer{},
		},
	}
}

// defaultConverter backs the package-level Convert.
var defaultConverter = NewConverter()

// Convert reformats text with the default Converter. See Converter.Convert.
func Convert(text string, opts Options) (string, error) {
	return defaultConverter.Convert(text, opts)
}

// Convert runs the full pipeline: normalization, source pre-clean, fence
// extraction, per-line marker/indent processing, target rendering,
// blank-line collapsing, and fence restoration.
//
// Only options that would corrupt the arithmetic are rejected (IndentSize,
// DocumentBulletSymbol). An unrecognized Source gets no pre-clean and an
// unrecognized Target falls back to a verbatim line-join; neither is an
// error. Empty input produces empty output ("[]" for the structured
// outline target).
func (c *Converter) Convert(text string, opts Options) (string, error) {
	if !isValidIndentSize(opts.IndentSize) {
		return "", fmt.Errorf("%w: %d (must be one of 2, 3, 4, 8)", ErrInvalidIndentSize, opts.IndentSize)
	}
	if opts.Target == TargetDocumentBullet &&
		opts.DocumentBulletSymbol != BulletDot && opts.DocumentBulletSymbol != BulletHyphen {
		return "", fmt.Errorf("%w: %q (must be %q or %q)", ErrInvalidBulletSymbol, opts.DocumentBulletSymbol, BulletDot, BulletHyphen)
	}

	text = Normalize(text, opts.ConvertSmartQuotes)
	text = c.preCleaner.preClean(text, opts.Source)

	// Extracted blocks survive every later stage untouched; the vault is
	// local to this call.
	var vault *fenceVault
	if opts.KeepCodeFences {
		text, vault = extractFences(text)
	}

	lines := strings.Split(text, "\n")

	var result string
	if r, ok := c.renderers[opts.Target]; ok {
		result = r.render(lines, opts)
	} else {
		result = strings.Join(lines, "\n")
	}

	if opts.CollapseBlankLines {
		result = blankRun.ReplaceAllString(result, "\n\n")
	}

	// Restore last so collapsing and trimming never touch protected
	// content.
	if opts.KeepCodeFences {
		result = vault.restore(result)
	}

	return result, nil
}
