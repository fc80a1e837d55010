package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(run(os.Args[1:], DefaultDeps()))
}

// run dispatches to a command and returns the process exit code.
// A first argument that is not a known command is treated as convert input,
// so `reindent notes.txt` and `reindent -t slack < notes.txt` both work.
func run(args []string, deps *Dependencies) int {
	if len(args) > 0 {
		switch args[0] {
		case "version":
			fmt.Fprintf(deps.Stdout, "reindent %s\n", Version)
			return ExitSuccess
		case "help":
			runHelp(args[1:], deps)
			return ExitSuccess
		case "convert":
			args = args[1:]
		}
	}

	err := runConvert(args, deps)
	if err != nil {
		fmt.Fprintln(deps.Stderr, err)
	}
	return exitCodeFor(err)
}
