package reindent

import (
	"fmt"
	"regexp"
	"strconv"
)

// Precompiled fence patterns.
var (
	// A fenced block is the shortest span from one ``` to the next,
	// including both delimiters. An unterminated fence never matches and
	// its content flows through normal line processing.
	fencedBlock = regexp.MustCompile("(?s)```.*?```")

	// Placeholder token grammar. The prefix does not occur in natural
	// text; if a pathological input already contains a token-shaped
	// substring, restoration semantics are undefined (known limitation).
	placeholderToken = regexp.MustCompile(`__CODEBLOCK_(\d+)__`)
)

// fenceVault holds fenced code blocks extracted from one document, keyed by
// discovery order. It lives for a single conversion and is never shared.
type fenceVault struct {
	blocks []string
}

// extractFences replaces every balanced fenced block with a numbered
// placeholder token and stores the original text, fences included, in the
// returned vault. Numbering restarts at zero for each call.
func extractFences(text string) (string, *fenceVault) {
	v := &fenceVault{}
	out := fencedBlock.ReplaceAllStringFunc(text, func(block string) string {
		token := fmt.Sprintf("__CODEBLOCK_%d__", len(v.blocks))
		v.blocks = append(v.blocks, block)
		return token
	})
	return out, v
}

// restore substitutes every placeholder token with its stored block in a
// single pass over the token grammar, avoiding repeated whole-string
// replacement for documents with many blocks. Tokens with no stored block
// are left untouched.
func (v *fenceVault) restore(text string) string {
	if v == nil || len(v.blocks) == 0 {
		return text
	}
	return placeholderToken.ReplaceAllStringFunc(text, func(token string) string {
		m := placeholderToken.FindStringSubmatch(token)
		n, err := strconv.Atoi(m[1])
		if err != nil || n >= len(v.blocks) {
			return token
		}
		return v.blocks[n]
	})
}
