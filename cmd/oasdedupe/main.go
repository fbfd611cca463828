// Command oasdedupe merges duplicate schema definitions in an OpenAPI 2.0
// document and normalizes array-valued "type" fields.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/erraggy/oasdedupe"
	"github.com/erraggy/oasdedupe/dedupe"
	"github.com/erraggy/oasdedupe/internal/cliutil"
	"github.com/erraggy/oasdedupe/parser"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// cliFlags contains the command's flag values
type cliFlags struct {
	quiet        bool
	renameDotted bool
	debug        bool
	showVersion  bool
}

// setupFlags creates and configures the command's FlagSet.
// Returns the FlagSet and a cliFlags struct with bound flag variables.
func setupFlags(out io.Writer) (*flag.FlagSet, *cliFlags) {
	fs := flag.NewFlagSet("oasdedupe", flag.ContinueOnError)
	fs.SetOutput(out)
	flags := &cliFlags{}

	fs.BoolVar(&flags.quiet, "q", false, "quiet mode: suppress the progress report")
	fs.BoolVar(&flags.quiet, "quiet", false, "quiet mode: suppress the progress report")
	fs.BoolVar(&flags.renameDotted, "rename-dotted", false, "also rename dotted definitions without a plain counterpart to PascalCase")
	fs.BoolVar(&flags.debug, "debug", false, "enable debug logging to stderr")
	fs.BoolVar(&flags.showVersion, "v", false, "print version and exit")
	fs.BoolVar(&flags.showVersion, "version", false, "print version and exit")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oasdedupe [flags] <input-file> <output-file>\n\n")
		cliutil.Writef(fs.Output(), "Merge duplicate schema definitions in an OpenAPI 2.0 document.\n\n")
		cliutil.Writef(fs.Output(), "Definitions with dotted names (e.g. \"Pet.Tag\") that also exist under the\n")
		cliutil.Writef(fs.Output(), "dot-stripped name (\"PetTag\") are removed, and every \"#/definitions/\" reference\n")
		cliutil.Writef(fs.Output(), "is rewritten onto the plain name. Array-valued \"type\" fields are collapsed to\n")
		cliutil.Writef(fs.Output(), "a single scalar (string > number > integer > first element).\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  oasdedupe swagger.json fixed.json\n")
		cliutil.Writef(fs.Output(), "  oasdedupe -q api.yaml cleaned.yaml\n")
		cliutil.Writef(fs.Output(), "  oasdedupe --rename-dotted swagger.json fixed.json\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Output preserves the input format (JSON or YAML)\n")
		cliutil.Writef(fs.Output(), "  - Residual duplicates are reported as warnings; output is still written\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Completed successfully (even when nothing needed fixing)\n")
		cliutil.Writef(fs.Output(), "  1    Wrong arguments, unreadable input, or a processing error\n")
	}

	return fs, flags
}

// run executes the command and returns the process exit code.
// All reporting, including usage and errors, goes to out (stdout in main).
func run(args []string, out io.Writer) int {
	fs, flags := setupFlags(out)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if flags.showVersion {
		cliutil.Writef(out, "oasdedupe v%s\n", oasdedupe.Version())
		return 0
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return 1
	}

	if err := process(fs.Arg(0), fs.Arg(1), flags, out); err != nil {
		cliutil.Writef(out, "Error: %v\n", err)
		return 1
	}
	return 0
}

// process runs the full pipeline: parse, dedupe, report, write.
func process(inputPath, outputPath string, flags *cliFlags, out io.Writer) error {
	var logger parser.Logger
	if flags.debug {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		logger = parser.NewSlogAdapter(slog.New(handler))
	}

	startTime := time.Now()

	p := parser.New()
	p.Logger = logger
	parseResult, err := p.Parse(inputPath)
	if err != nil {
		return fmt.Errorf("parsing file: %w", err)
	}

	d := dedupe.New()
	d.RenameDotted = flags.renameDotted
	d.Logger = logger
	result, err := d.DedupeParsed(*parseResult)
	if err != nil {
		return fmt.Errorf("deduplicating: %w", err)
	}
	totalTime := time.Since(startTime)

	if !flags.quiet {
		printReport(out, inputPath, parseResult, result, totalTime)
	}

	data, err := parser.MarshalDocument(result.Document, result.SourceFormat)
	if err != nil {
		return fmt.Errorf("marshaling fixed document: %w", err)
	}
	if err := os.WriteFile(outputPath, data, 0600); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}

	if !flags.quiet {
		cliutil.Writef(out, "\nOutput written to: %s\n", outputPath)
	}
	return nil
}

// printReport writes the human-readable progress report.
func printReport(out io.Writer, inputPath string, parseResult *parser.ParseResult, result *dedupe.Result, totalTime time.Duration) {
	cliutil.Writef(out, "OpenAPI Definition Deduplicator\n")
	cliutil.Writef(out, "===============================\n\n")
	cliutil.Writef(out, "oasdedupe version: %s\n", oasdedupe.Version())
	cliutil.Writef(out, "Specification: %s\n", inputPath)
	cliutil.Writef(out, "Source Size: %s\n", parser.FormatBytes(parseResult.SourceSize))
	cliutil.Writef(out, "Definitions: %d\n", result.DefinitionCount)
	cliutil.Writef(out, "Total Time: %v\n\n", totalTime)

	if !result.HasDuplicates() {
		cliutil.Writef(out, "No duplicate definitions found\n")
	} else {
		cliutil.Writef(out, "Duplicate pairs (%d):\n", len(result.Pairs))
		for _, pair := range result.Pairs {
			cliutil.Writef(out, "\nProcessing: %s vs %s\n", pair.Dotted, pair.Plain)
			cliutil.Writef(out, "  %s: %d reference(s), %d description(s)\n", pair.Dotted, pair.DottedRefs, pair.DottedDescriptions)
			cliutil.Writef(out, "  %s: %d reference(s), %d description(s)\n", pair.Plain, pair.PlainRefs, pair.PlainDescriptions)
			if pair.Equivalent {
				cliutil.Writef(out, "  Schemas are equivalent (ignoring descriptions)\n")
			} else {
				cliutil.Writef(out, "  Schemas differ beyond descriptions\n")
			}
			if pair.Pruned {
				cliutil.Writef(out, "  Removed %s, keeping %s\n", pair.Dotted, pair.Kept)
				cliutil.Writef(out, "  Updated %d reference(s) from %s to %s\n", pair.RewrittenRefs, pair.Dotted, pair.Kept)
			}
		}
		cliutil.Writef(out, "\n")
	}

	if len(result.Renames) > 0 {
		cliutil.Writef(out, "Renamed dotted definitions (%d):\n", len(result.Renames))
		for _, rename := range result.Renames {
			cliutil.Writef(out, "  - %s -> %s (%d reference(s) updated)\n", rename.From, rename.To, rename.RewrittenRefs)
		}
		cliutil.Writef(out, "\n")
	}

	cliutil.Writef(out, "Type array fixes: %d\n", len(result.TypeFixes))
	for _, fix := range result.TypeFixes {
		cliutil.Writef(out, "  - %s\n", fix.String())
	}

	if len(result.Warnings) > 0 {
		cliutil.Writef(out, "\nWarnings (%d):\n", len(result.Warnings))
		for _, warning := range result.Warnings {
			cliutil.Writef(out, "  - %s\n", warning)
		}
	}

	cliutil.Writef(out, "\n")
	if result.Clean() {
		cliutil.Writef(out, "✓ All duplicates successfully removed\n")
	} else {
		cliutil.Writef(out, "⚠ %d duplicate pair(s) remain:\n", len(result.Residual))
		for _, pair := range result.Residual {
			cliutil.Writef(out, "  %s vs %s\n", pair.Dotted, pair.Plain)
		}
	}
}
