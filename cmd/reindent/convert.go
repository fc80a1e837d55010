package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	reindent "github.com/mikan/reindent"
	"github.com/mikan/reindent/internal/config"
	"github.com/mikan/reindent/internal/fileutil"
	"github.com/mikan/reindent/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrReadInput          = errors.New("failed to read input")
	ErrWriteOutput        = errors.New("failed to write output")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrOutputRequired     = errors.New("directory input needs a directory output")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// maxWorkers bounds the -w flag; conversions are cheap, so more workers
// than this only adds scheduling noise.
const maxWorkers = 32

// Accepted names, echoed in hints when a kind flag does not parse.
var (
	sourceNames = []string{"auto", "slack", "gdocs", "obsidian", "chatgpt"}
	targetNames = []string{"markdown", "slack", "gdocs", "plain", "json"}
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// runConvert orchestrates the conversion process.
func runConvert(args []string, deps *Dependencies) error {
	flags, positional, err := parseConvertFlags(args)
	if err != nil {
		return err
	}

	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	// Load configuration
	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				paths := configSearchPaths(flags.common.config)
				return fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(paths))
			}
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge defaults, config, and CLI flags (CLI wins)
	opts, err := buildOptions(flags, cfg)
	if err != nil {
		return err
	}

	inputPath := resolveInputPath(positional, cfg)
	if inputPath == "" {
		return convertStream(deps, flags, opts)
	}

	info, err := os.Stat(inputPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	outputDir := resolveOutputDir(flags.output, cfg)

	if !info.IsDir() {
		return convertSingle(inputPath, flags, opts, deps)
	}

	// Directory input: mirror the tree into the output directory.
	if outputDir != "" {
		if outInfo, statErr := os.Stat(outputDir); statErr == nil && !outInfo.IsDir() {
			return fmt.Errorf("%w: %s is a file", ErrOutputRequired, outputDir)
		}
	}

	files, err := discoverFiles(inputPath, outputDir, opts.Target)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no text files found in %s", inputPath)
	}

	results := convertBatch(files, opts, resolveWorkers(flags.workers, len(files)))

	failed := printResults(results, flags.common.quiet, flags.common.verbose, deps)
	if failed > 0 {
		return fmt.Errorf("%d conversion(s) failed", failed)
	}
	return nil
}

// buildOptions layers the conversion options: library defaults, then the
// config profile, then CLI flags.
func buildOptions(flags *convertFlags, cfg *config.Config) (reindent.Options, error) {
	opts := reindent.DefaultOptions()
	conv := cfg.Conversion

	var err error
	if conv.Source != "" {
		if opts.Source, err = reindent.ParseSourceKind(conv.Source); err != nil {
			return opts, fmt.Errorf("config: %w%s", err, hints.ForUnknownKind(sourceNames))
		}
	}
	if conv.Target != "" {
		if opts.Target, err = reindent.ParseTargetKind(conv.Target); err != nil {
			return opts, fmt.Errorf("config: %w%s", err, hints.ForUnknownKind(targetNames))
		}
	}
	if conv.IndentSize != 0 {
		opts.IndentSize = conv.IndentSize
	}
	if conv.BulletSymbol != "" {
		opts.DocumentBulletSymbol = conv.BulletSymbol
	}
	if conv.CollapseBlankLines != nil {
		opts.CollapseBlankLines = *conv.CollapseBlankLines
	}
	if conv.TrimTrailingWhitespace != nil {
		opts.TrimTrailingWhitespace = *conv.TrimTrailingWhitespace
	}
	if conv.KeepCodeFences != nil {
		opts.KeepCodeFences = *conv.KeepCodeFences
	}
	if conv.ChatWrapCodeblock != nil {
		opts.ChatWrapCodeblock = *conv.ChatWrapCodeblock
	}
	if conv.ConvertSmartQuotes != nil {
		opts.ConvertSmartQuotes = *conv.ConvertSmartQuotes
	}

	// CLI flags override config
	cf := flags.conversion
	if cf.source != "" {
		if opts.Source, err = reindent.ParseSourceKind(cf.source); err != nil {
			return opts, fmt.Errorf("%w%s", err, hints.ForUnknownKind(sourceNames))
		}
	}
	if cf.target != "" {
		if opts.Target, err = reindent.ParseTargetKind(cf.target); err != nil {
			return opts, fmt.Errorf("%w%s", err, hints.ForUnknownKind(targetNames))
		}
	}
	if cf.indent != 0 {
		opts.IndentSize = cf.indent
	}
	if cf.bullet != "" {
		opts.DocumentBulletSymbol = cf.bullet
	}
	if cf.noCollapse {
		opts.CollapseBlankLines = false
	}
	if cf.noTrim {
		opts.TrimTrailingWhitespace = false
	}
	if cf.noFences {
		opts.KeepCodeFences = false
	}
	if cf.noWrap {
		opts.ChatWrapCodeblock = false
	}
	if cf.noSmartQuotes {
		opts.ConvertSmartQuotes = false
	}

	// Fail on bad values here, before any file I/O.
	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

// configSearchPaths lists where a profile name is looked up, mirroring the
// config package's search order, so the not-found hint can say where to
// create the file. A path argument is returned as-is.
func configSearchPaths(nameOrPath string) []string {
	if fileutil.IsFilePath(nameOrPath) {
		return []string{nameOrPath}
	}
	paths := []string{nameOrPath + ".yaml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "reindent", nameOrPath+".yaml"))
	}
	return paths
}

// resolveInputPath determines the input path from args or config.
// Empty means read from stdin; "-" is an explicit stdin marker.
func resolveInputPath(args []string, cfg *config.Config) string {
	if len(args) > 0 {
		if args[0] == "-" {
			return ""
		}
		return args[0]
	}
	return cfg.Input.DefaultDir
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// resolveWorkers picks the worker count for a batch.
func resolveWorkers(flagWorkers, fileCount int) int {
	n := flagWorkers
	if n == 0 {
		n = 4
	}
	if n > fileCount {
		n = fileCount
	}
	return n
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > maxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, maxWorkers)
	}
	return nil
}

// convertStream reads all of stdin, converts it, and writes to stdout or
// the -o path.
func convertStream(deps *Dependencies, flags *convertFlags, opts reindent.Options) error {
	data, err := io.ReadAll(deps.Stdin)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	out, err := reindent.Convert(string(data), opts)
	if err != nil {
		return err
	}

	return writeOutput(out, flags.output, deps)
}

// convertSingle converts one file and writes to the -o path or stdout.
func convertSingle(inputPath string, flags *convertFlags, opts reindent.Options, deps *Dependencies) error {
	content, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	out, err := reindent.Convert(string(content), opts)
	if err != nil {
		return err
	}

	return writeOutput(out, flags.output, deps)
}

// writeOutput sends converted text to a file or, with no path, to stdout.
func writeOutput(out, path string, deps *Dependencies) error {
	if path == "" {
		_, err := io.WriteString(deps.Stdout, out)
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
		}
	}
	// #nosec G306 -- converted text is meant to be readable
	if err := os.WriteFile(path, []byte(out), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// textExtensions are the file types picked up from directory input.
var textExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
}

// outputExt returns the file extension matching a target kind.
func outputExt(target reindent.TargetKind) string {
	switch target {
	case reindent.TargetStructuredOutline:
		return ".json"
	case reindent.TargetDocumentBullet, reindent.TargetPlain:
		return ".txt"
	default:
		return ".md"
	}
}

// discoverFiles finds all text files to convert under inputPath.
func discoverFiles(inputPath, outputDir string, target reindent.TargetKind) ([]FileToConvert, error) {
	var files []FileToConvert
	err := filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !textExtensions[filepath.Ext(path)] {
			return nil
		}
		outPath := resolveOutputPath(path, outputDir, inputPath, target)
		files = append(files, FileToConvert{InputPath: path, OutputPath: outPath})
		return nil
	})
	return files, err
}

// resolveOutputPath determines the output path for one input file. When the
// computed path would overwrite the input (same extension, same directory),
// an ".out" segment is inserted before the extension.
func resolveOutputPath(inputPath, outputDir, baseInputDir string, target reindent.TargetKind) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)
	name := base + outputExt(target)

	var out string
	switch {
	case outputDir == "":
		out = filepath.Join(filepath.Dir(inputPath), name)
	case baseInputDir != "":
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			out = filepath.Join(outputDir, filepath.Dir(relPath), name)
		} else {
			out = filepath.Join(outputDir, name)
		}
	default:
		out = filepath.Join(outputDir, name)
	}

	if out == inputPath {
		out = filepath.Join(filepath.Dir(out), base+".out"+outputExt(target))
	}
	return out
}

// convertBatch processes files concurrently. The conversion core holds no
// shared state, so workers share one Converter without locking.
func convertBatch(files []FileToConvert, opts reindent.Options, workers int) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	conv := reindent.NewConverter()
	results := make([]ConversionResult, len(files))
	jobs := make(chan int, len(files))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = convertFile(conv, files[idx], opts)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(conv *reindent.Converter, f FileToConvert, opts reindent.Options) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadInput, err)
		result.Duration = time.Since(start)
		return result
	}

	out, err := conv.Convert(string(content), opts)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
		result.Duration = time.Since(start)
		return result
	}

	// #nosec G306 -- converted text is meant to be readable
	if err := os.WriteFile(f.OutputPath, []byte(out), filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	result.Duration = time.Since(start)
	return result
}

// printResults outputs conversion results and returns the failure count.
func printResults(results []ConversionResult, quiet, verbose bool, deps *Dependencies) int {
	var succeeded, failed int

	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		succeeded++
		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(deps.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(deps.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(deps.Stdout, "\n%d succeeded, %d failed\n", succeeded, failed)
	}

	return failed
}
