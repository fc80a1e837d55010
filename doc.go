// Package reindent reformats hierarchically-indented outline text so it
// survives copy-paste between chat clients, document editors, and Markdown
// tools that each mangle indentation and bullet glyphs differently.
//
// # Quick Start
//
// Convert text with the package-level function:
//
//	out, err := reindent.Convert(text, reindent.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(out)
//
// # Conversion Pipeline
//
// Each conversion runs these stages in order:
//
//  1. Unicode/whitespace normalization (line endings, NBSP, zero-width
//     characters, optional smart-quote folding)
//  2. Source-specific pre-clean (e.g. collapsing chat block-quote runs)
//  3. Fenced code block extraction (``` regions replaced by placeholders)
//  4. Per-line bullet/number marker unification and indent-level inference
//  5. Target rendering (Markdown, chat-safe, tab-bulleted, plain, or a
//     structured JSON outline)
//  6. Blank-line collapsing, then fence restoration
//
// Fenced code blocks reappear byte-for-byte in the output when
// Options.KeepCodeFences is set.
//
// # Configuration
//
// Options selects the paste source, the output target, and the formatting
// knobs:
//
//	out, err := reindent.Convert(text, reindent.Options{
//	    Source:               reindent.SourceChatTool,
//	    Target:               reindent.TargetDocumentBullet,
//	    IndentSize:           4,
//	    DocumentBulletSymbol: "•",
//	})
//
// Every conversion is a pure function of (text, Options): no state is shared
// between calls, so a single Converter is safe for concurrent use.
package reindent
