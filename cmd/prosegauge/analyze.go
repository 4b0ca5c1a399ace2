package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	flag "github.com/spf13/pflag"

	"github.com/prosegauge/prosegauge/internal/analysis"
	"github.com/prosegauge/prosegauge/internal/config"
	"github.com/prosegauge/prosegauge/internal/discovery"
	"github.com/prosegauge/prosegauge/internal/input"
	vlog "github.com/prosegauge/prosegauge/internal/log"
	"github.com/prosegauge/prosegauge/internal/output"
)

// samplePassage is the built-in demonstration passage analyzed by --sample
// and substituted when user input yields no analyzable words.
const samplePassage = "The implementation of artificial intelligence technologies requires comprehensive " +
	"understanding of algorithmic processes and computational methodologies. Modern " +
	"systems utilize sophisticated machine learning frameworks to analyze complex " +
	"data patterns and generate predictive models. Organizations must consider " +
	"ethical implications while developing these advanced technological solutions " +
	"for real-world applications and user interactions."

const bannerText = `=================================================================
    PROFESSIONAL LANGUAGE IMPROVEMENT & PASSAGE ANALYSIS SYSTEM
    Purpose: Text Analysis and Writing Enhancement Tool
=================================================================
`

type analyzeOptions struct {
	configPath string
	format     string
	noColor    bool
	quiet      bool
	verbose    bool
	sample     bool
}

// runAnalyze implements the "analyze" subcommand.
func runAnalyze(args []string) int {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	var opts analyzeOptions

	fs.StringVarP(&opts.configPath, "config", "c", "", "Override config file path")
	fs.StringVarP(&opts.format, "format", "f", "", "Output format: text, json (defaults from config)")
	fs.BoolVar(&opts.noColor, "no-color", false, "Disable ANSI colors")
	fs.BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress the banner and notices")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Show config and files on stderr")
	fs.BoolVar(&opts.sample, "sample", false, "Analyze the built-in demonstration passage")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: prosegauge analyze [flags] [files...]\n\n"+
			"Analyze text passages for vocabulary, sentence structure, and complexity.\n\n"+
			"Files can be paths, directories (walked recursively for passage files),\n"+
			"or glob patterns. With no file arguments, reads from stdin if piped,\n"+
			"otherwise discovers passage files from the config source patterns.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	// --quiet suppresses verbose
	if opts.quiet {
		opts.verbose = false
	}

	logger := &vlog.Logger{Enabled: opts.verbose, W: os.Stderr}

	cfg, cfgPath, err := loadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "prosegauge: %v\n", err)
		return 2
	}
	if cfgPath != "" {
		logger.Printf("config: %s", cfgPath)
	}

	if opts.format == "" {
		opts.format = cfg.Format
	}
	if opts.format != "text" && opts.format != "json" {
		fmt.Fprintf(os.Stderr, "prosegauge: unknown format %q (supported: text, json)\n", opts.format)
		return 2
	}
	if !cfg.ColorEnabled() {
		opts.noColor = true
	}
	if cfg.QuietEnabled() {
		opts.quiet = true
	}

	fileArgs := fs.Args()

	if opts.sample {
		if len(fileArgs) > 0 {
			fmt.Fprintf(os.Stderr, "prosegauge: --sample takes no file arguments\n")
			return 2
		}
		return analyzePassage(samplePassage, "sample passage", opts)
	}

	if len(fileArgs) > 0 {
		files, err := input.ResolveFiles(fileArgs, input.ResolveOpts{Ignore: cfg.Ignore})
		if err != nil {
			fmt.Fprintf(os.Stderr, "prosegauge: %v\n", err)
			return 2
		}
		return analyzeFiles(files, opts, logger)
	}

	if isStdinPipe() {
		return analyzeStdin(opts)
	}

	return analyzeDiscovered(cfg, opts, logger)
}

// analyzeDiscovered finds passage files from the config source patterns.
// When nothing is found it falls back to the demonstration passage, the
// same recovery used for empty input.
func analyzeDiscovered(cfg *config.Config, opts analyzeOptions, logger *vlog.Logger) int {
	files, err := discovery.Discover(discovery.Options{
		Patterns: cfg.Sources,
		Ignore:   cfg.Ignore,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "prosegauge: %v\n", err)
		return 2
	}

	if len(files) == 0 {
		if !opts.quiet {
			fmt.Fprintf(os.Stderr, "prosegauge: no passage files found, analyzing the sample passage\n")
		}
		return analyzePassage(samplePassage, "sample passage", opts)
	}

	logger.Printf("discovered %d passage files", len(files))
	return analyzeFiles(files, opts, logger)
}

// analyzeStdin reads one passage from stdin. Input with no analyzable
// words falls back to the demonstration passage once.
func analyzeStdin(opts analyzeOptions) int {
	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "prosegauge: reading stdin: %v\n", err)
		return 2
	}

	report, err := analysis.Run(string(raw))
	if errors.Is(err, analysis.ErrEmptyVocabulary) {
		if !opts.quiet {
			fmt.Fprintf(os.Stderr, "prosegauge: no analyzable words in input, analyzing the sample passage\n")
		}
		return analyzePassage(samplePassage, "sample passage", opts)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "prosegauge: %v\n", err)
		return 2
	}

	return writeResults([]output.Result{{Report: report}}, opts)
}

// analyzePassage analyzes a single in-memory passage.
func analyzePassage(raw, source string, opts analyzeOptions) int {
	report, err := analysis.Run(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "prosegauge: %v\n", err)
		return 2
	}
	return writeResults([]output.Result{{Source: source, Report: report}}, opts)
}

// analyzeFiles analyzes each resolved passage file. Files that cannot be
// read or contain no analyzable words are reported on stderr and skipped.
func analyzeFiles(files []string, opts analyzeOptions, logger *vlog.Logger) int {
	if len(files) == 0 {
		return 0
	}

	var bar *progressbar.ProgressBar
	if len(files) > 1 && !opts.quiet {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetDescription("analyzing"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	var results []output.Result
	failed := 0
	for _, path := range files {
		logger.Printf("passage: %s", path)

		raw, err := input.ReadPassage(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "prosegauge: %v\n", err)
			failed++
		} else {
			report, err := analysis.Run(raw)
			if err != nil {
				fmt.Fprintf(os.Stderr, "prosegauge: %s: %v\n", path, err)
				failed++
			} else {
				results = append(results, output.Result{Source: path, Report: report})
			}
		}

		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	logger.Printf("analyzed %d of %d files", len(results), len(files))

	if len(results) == 0 {
		return 2
	}
	if code := writeResults(results, opts); code != 0 {
		return code
	}
	if failed > 0 {
		return 1
	}
	return 0
}

// writeResults renders reports to stdout in the selected format.
func writeResults(results []output.Result, opts analyzeOptions) int {
	var formatter output.Formatter
	switch opts.format {
	case "json":
		formatter = &output.JSONFormatter{}
	default:
		formatter = &output.TextFormatter{Color: !opts.noColor}
		if !opts.quiet {
			fmt.Print(bannerText)
		}
	}

	if err := formatter.Format(os.Stdout, results); err != nil {
		fmt.Fprintf(os.Stderr, "prosegauge: error writing output: %v\n", err)
		return 2
	}
	return 0
}
