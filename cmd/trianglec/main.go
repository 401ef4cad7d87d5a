// Command trianglec compiles a Triangle source file to a TAM object file
// (spec.md section 6), grounded on the teacher's cmd/funxy/main.go raw-
// os.Args command dispatch style (no flag-parsing library).
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/triangle-lang/trianglec/internal/cache"
	"github.com/triangle-lang/trianglec/internal/codegen"
	"github.com/triangle-lang/trianglec/internal/config"
	"github.com/triangle-lang/trianglec/internal/lexer"
	"github.com/triangle-lang/trianglec/internal/pipeline"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: trianglec <source-file> [-o output-file]")
		os.Exit(2)
	}
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, colorError(os.Stderr, err.Error()))
		os.Exit(1)
	}
}

func run(args []string) error {
	sourcePath, outputPath := parseArgs(args)
	if sourcePath == "" {
		return fmt.Errorf("no source file given")
	}

	cfg, err := config.Load(config.DefaultConfigFile)
	if err != nil {
		return fmt.Errorf("loading %s: %w", config.DefaultConfigFile, err)
	}

	if outputPath == "" {
		trimmed := strings.TrimSuffix(sourcePath, config.SourceFileExt)
		outputPath = trimmed + cfg.ObjectFileExt
	}

	source, err := os.ReadFile(sourcePath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", sourcePath, err)
	}

	object, fromCache, err := compile(sourcePath, string(source), cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, object, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}

	suffix := ""
	if fromCache {
		suffix = " (cache hit)"
	}
	fmt.Fprintf(os.Stdout, "%s -> %s (%s)%s\n", sourcePath, outputPath, humanize.Bytes(uint64(len(object))), suffix)
	return nil
}

// compile runs the standard pipeline over source, consulting and populating
// the incremental compile cache first when cfg enables it.
func compile(sourcePath, source string, cfg *config.Config) (object []byte, fromCache bool, err error) {
	var c *cache.Cache
	var key string
	if cfg.CacheEnabled {
		c, err = cache.Open(cfg.CachePath)
		if err != nil {
			return nil, false, fmt.Errorf("opening cache: %w", err)
		}
		defer c.Close()

		key = cache.Key(source)
		if hit, ok, lookupErr := c.Lookup(key); lookupErr == nil && ok {
			return hit, true, nil
		}
	}

	ctx := pipeline.NewContext(sourcePath, source, lexer.New(source))
	ctx.CodegenOptions = codegen.Options{
		MaxDisplayDepth: cfg.MaxNestingDepth,
		EmitHelperBlock: cfg.ShouldEmitHelperBlock(),
	}
	result := pipeline.Standard().Run(ctx)
	if result.Failed() {
		return nil, false, formatDiagnostics(sourcePath, result.Errors)
	}

	if cfg.CacheEnabled {
		if err := c.Store(key, result.Object); err != nil {
			return nil, false, fmt.Errorf("storing cache entry: %w", err)
		}
	}
	return result.Object, false, nil
}

func formatDiagnostics(sourcePath string, errs []error) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d error(s)", sourcePath, len(errs))
	for _, e := range errs {
		fmt.Fprintf(&b, "\n  %s", e)
	}
	return fmt.Errorf("%s", b.String())
}

func parseArgs(args []string) (source, output string) {
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-o":
			if i+1 < len(args) {
				output = args[i+1]
				i++
			}
		default:
			if source == "" {
				source = args[i]
			}
		}
	}
	return source, output
}

// colorError wraps msg in red ANSI codes only when f is attached to a real
// terminal (spec's ambient CLI diagnostics: never color piped output).
func colorError(f *os.File, msg string) string {
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return msg
	}
	return "\x1b[31m" + msg + "\x1b[0m"
}
