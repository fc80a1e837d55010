package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// conversionFlags holds the flags that map onto reindent.Options.
// The cleanup toggles default to on, so only the negations are exposed.
type conversionFlags struct {
	source string
	target string
	indent int
	bullet string

	noCollapse    bool
	noTrim        bool
	noFences      bool
	noWrap        bool
	noSmartQuotes bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common     commonFlags
	conversion conversionFlags
	output     string
	workers    int
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "profile name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file timing")
}

// addConversionFlags adds conversion option flags to a FlagSet.
func addConversionFlags(fs *flag.FlagSet, f *conversionFlags) {
	fs.StringVarP(&f.source, "source", "s", "", "paste source: auto, slack, gdocs, obsidian, chatgpt")
	fs.StringVarP(&f.target, "target", "t", "", "output target: markdown, slack, gdocs, plain, json")
	fs.IntVar(&f.indent, "indent", 0, "indent width: 2, 3, 4, 8 (0 = default)")
	fs.StringVar(&f.bullet, "bullet", "", "gdocs bullet symbol: • or -")

	fs.BoolVar(&f.noCollapse, "no-collapse", false, "keep runs of blank lines")
	fs.BoolVar(&f.noTrim, "no-trim", false, "keep trailing whitespace")
	fs.BoolVar(&f.noFences, "no-fences", false, "reformat inside ``` code blocks")
	fs.BoolVar(&f.noWrap, "no-wrap", false, "do not wrap slack output in a ``` fence")
	fs.BoolVar(&f.noSmartQuotes, "no-smart-quotes", false, "keep typographic quotes")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers for directory input (0 = auto)")

	addCommonFlags(fs, &f.common)
	addConversionFlags(fs, &f.conversion)

	fs.Usage = func() { printConvertUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
