/*
Plifront scans a PL/I preprocessor source file and reports, line by line,
whether each line is blank, a plain source line, a valid preprocessor
directive, or a malformed one. It is the front end of the preprocessing
pipeline; it does not expand anything.

Usage:

	plifront [flags] INPUT_FILE

INPUT_FILE must carry a recognized source extension (.pli or .pp unless
overridden in the config file). Files with any other extension are rejected
with a warning before scanning starts.

The flags are:

	--version
		Print the current version of plifront and exit.

	-r, --report PATH
		Write the run report to PATH. Defaults to INPUT_FILE with ".log"
		appended.

	-o, --out PATH
		Also copy the source lines to PATH, unchanged. This is the seam
		where the future expansion stage will plug in; for now the copy
		is verbatim.

	-c, --config PATH
		Read tool configuration (extensions, report path, verbosity)
		from the given TOML file.

	-v, --verbose
		Mirror each line's verdict to stderr while scanning.

	-n, --dry-run
		Do not write any files; print the report to stdout instead.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mkarlsen/plifront"
	"github.com/mkarlsen/plifront/internal/config"
	"github.com/mkarlsen/plifront/internal/gate"
	"github.com/mkarlsen/plifront/internal/report"
	"github.com/spf13/pflag"
)

const version = "0.1.0"

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitInputError indicates a rejected or unreadable input file or
	// bad command line.
	ExitInputError

	// ExitRunError indicates a failure while scanning or writing output.
	ExitRunError
)

var (
	flagVersion = pflag.Bool("version", false, "Print the current version of plifront and exit.")
	flagReport  = pflag.StringP("report", "r", "", "Write the run report to the given path.")
	flagOut     = pflag.StringP("out", "o", "", "Copy the source lines, unchanged, to the given path.")
	flagConfig  = pflag.StringP("config", "c", "", "Read tool configuration from the given TOML file.")
	flagVerbose = pflag.BoolP("verbose", "v", false, "Mirror each line's verdict to stderr.")
	flagDryRun  = pflag.BoolP("dry-run", "n", false, "Do not write any files; print the report to stdout.")
)

func main() {
	pflag.Parse()

	if *flagVersion {
		fmt.Printf("plifront v%s\n", version)
		return
	}

	args := pflag.Args()
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "Expected exactly one input file\nDo -h for help.\n")
		os.Exit(ExitInputError)
	}
	input := args[0]

	var cfg config.Config
	if *flagConfig != "" {
		var err error
		cfg, err = config.Load(*flagConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(ExitInputError)
		}
	}

	verbose := cfg.Verbose
	if pflag.Lookup("verbose").Changed {
		verbose = *flagVerbose
	}
	reportPath := cfg.Report
	if pflag.Lookup("report").Changed {
		reportPath = *flagReport
	}
	if reportPath == "" {
		reportPath = input + ".log"
	}

	if err := gate.New(cfg.Extensions...).Check(input); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		os.Exit(ExitInputError)
	}

	src, err := os.Open(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open input: %v\n", err)
		os.Exit(ExitInputError)
	}
	defer src.Close()

	reportDst := io.Writer(os.Stdout)
	var out io.Writer
	if !*flagDryRun {
		reportFile, err := os.Create(reportPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "create report: %v\n", err)
			os.Exit(ExitRunError)
		}
		defer reportFile.Close()
		reportDst = reportFile

		if *flagOut != "" {
			outFile, err := os.Create(*flagOut)
			if err != nil {
				fmt.Fprintf(os.Stderr, "create output: %v\n", err)
				os.Exit(ExitRunError)
			}
			defer outFile.Close()
			out = outFile
		}
	}

	if err := run(src, reportDst, out, input, verbose); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(ExitRunError)
	}
}

// run drives the scan: one pass over src, every line reported, faults noted
// but never fatal.
func run(src io.Reader, reportDst, out io.Writer, input string, verbose bool) error {
	w := report.NewWriter(reportDst)
	if err := w.Begin(input); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	lines := plifront.NewScanner(src)
	for lines.Scan() {
		res := lines.Result()
		if err := w.Line(res); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "line %d: %s\n", res.LineNumber, res.Verdict)
		}
		if out != nil {
			// Pass-through until the expansion stage exists.
			if _, err := fmt.Fprintln(out, lines.Text()); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}
	}
	if err := lines.Err(); err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}

	return w.Finish()
}
