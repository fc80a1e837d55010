package main

import (
	"fmt"
	"io"
)

// printUsage prints the top-level usage message.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `reindent - reformat pasted outlines between chat tools, document editors, and Markdown notes

Usage:
  reindent [convert] [flags] [input]
  reindent help [command]
  reindent version

Commands:
  convert   Convert outline text (default command)
  help      Show help for a command
  version   Show version information

Input may be a file, a directory, or "-" for stdin. With no input
argument, text is read from stdin and written to stdout.

Run 'reindent help convert' for conversion flags.
`)
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprint(w, `Convert outline text for a paste target.

Usage:
  reindent [convert] [flags] [input]

Examples:
  reindent -t slack notes.txt
  reindent -s gdocs -t markdown -o out.md pasted.txt
  reindent -t json --indent 4 outline.md
  pbpaste | reindent -t slack | pbcopy
  reindent -t markdown -o converted/ notes/

Flags:
  -s, --source string     paste source: auto, slack, gdocs, obsidian, chatgpt (default auto)
  -t, --target string     output target: markdown, slack, gdocs, plain, json (default markdown)
      --indent int        indent width: 2, 3, 4, 8 (default 2)
      --bullet string     gdocs bullet symbol: • or - (default •)
  -o, --output string     output file, or directory for directory input
  -w, --workers int       parallel workers for directory input (0 = auto)
  -c, --config string     profile name or path
  -q, --quiet             only show errors
  -v, --verbose           show per-file timing

      --no-collapse       keep runs of blank lines
      --no-trim           keep trailing whitespace
      --no-fences         reformat inside fenced code blocks
      --no-wrap           do not wrap slack output in a code fence
      --no-smart-quotes   keep typographic quotes
`)
}

// runHelp prints help for a specific command, or general usage.
func runHelp(args []string, deps *Dependencies) {
	if len(args) == 0 {
		printUsage(deps.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(deps.Stdout)
	case "version":
		fmt.Fprintln(deps.Stdout, "Usage: reindent version")
	default:
		fmt.Fprintf(deps.Stdout, "Unknown command %q.\n\n", args[0])
		printUsage(deps.Stdout)
	}
}
