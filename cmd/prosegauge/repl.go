package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/c-bata/go-prompt"
	flag "github.com/spf13/pflag"

	"github.com/prosegauge/prosegauge/internal/analysis"
	"github.com/prosegauge/prosegauge/internal/output"
)

// repl holds the interactive session state. Format and color can be
// switched per session without restarting.
type repl struct {
	format  string
	noColor bool
}

// runRepl implements the "repl" subcommand.
func runRepl(args []string) int {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	var (
		configPath string
		format     string
		noColor    bool
	)

	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.StringVarP(&format, "format", "f", "", "Output format: text, json (defaults from config)")
	fs.BoolVar(&noColor, "no-color", false, "Disable ANSI colors")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: prosegauge repl [flags]\n\n"+
			"Start an interactive prompt. Each entered line is analyzed as a passage.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "prosegauge: repl takes no arguments\n")
		return 2
	}

	cfg, _, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "prosegauge: %v\n", err)
		return 2
	}

	if format == "" {
		format = cfg.Format
	}
	if format != "text" && format != "json" {
		fmt.Fprintf(os.Stderr, "prosegauge: unknown format %q (supported: text, json)\n", format)
		return 2
	}
	if !cfg.ColorEnabled() {
		noColor = true
	}

	r := &repl{format: format, noColor: noColor}

	fmt.Println("Prosegauge Interactive Analysis")
	fmt.Println()
	r.printHelp()
	fmt.Println()

	p := prompt.New(
		r.executor,
		r.completer,
		prompt.OptionPrefix("prosegauge >> "),
		prompt.OptionTitle("prosegauge"),
	)
	p.Run()
	return 0
}

func (r *repl) printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  <passage>              - Analyze the entered text")
	fmt.Println("  :sample                - Analyze the built-in sample passage")
	fmt.Println("  :format text|json      - Switch output format")
	fmt.Println("  :help                  - Show this help")
	fmt.Println("  :quit                  - Exit")
}

var replCommands = []prompt.Suggest{
	{Text: ":sample", Description: "Analyze the built-in sample passage"},
	{Text: ":format", Description: "Switch output format (text or json)"},
	{Text: ":help", Description: "Show help"},
	{Text: ":quit", Description: "Exit"},
}

// completer suggests commands only while a command prefix is being typed,
// so ordinary passage text gets no popup.
func (r *repl) completer(d prompt.Document) []prompt.Suggest {
	word := d.GetWordBeforeCursor()
	if !strings.HasPrefix(word, ":") {
		return nil
	}
	return prompt.FilterHasPrefix(replCommands, word, true)
}

func (r *repl) executor(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	if strings.HasPrefix(line, ":") {
		r.command(line)
		return
	}

	r.analyze(line)
}

func (r *repl) command(line string) {
	parts := strings.Fields(line)
	switch parts[0] {
	case ":quit", ":q", ":exit":
		os.Exit(0)
	case ":help":
		r.printHelp()
	case ":sample":
		r.analyze(samplePassage)
	case ":format":
		if len(parts) != 2 || (parts[1] != "text" && parts[1] != "json") {
			fmt.Println("usage: :format text|json")
			return
		}
		r.format = parts[1]
		fmt.Printf("format set to %s\n", r.format)
	default:
		fmt.Printf("unknown command %q (try :help)\n", parts[0])
	}
}

func (r *repl) analyze(raw string) {
	report, err := analysis.Run(raw)
	if errors.Is(err, analysis.ErrEmptyVocabulary) {
		fmt.Println("no analyzable words in input (try :sample)")
		return
	}
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	var formatter output.Formatter
	if r.format == "json" {
		formatter = &output.JSONFormatter{}
	} else {
		formatter = &output.TextFormatter{Color: !r.noColor}
	}
	if err := formatter.Format(os.Stdout, []output.Result{{Report: report}}); err != nil {
		fmt.Printf("error writing output: %v\n", err)
	}
}
