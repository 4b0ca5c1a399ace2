package main

import (
	"fmt"
	"os"
	"runtime/debug"

	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	prosegauge "github.com/prosegauge/prosegauge"
	"github.com/prosegauge/prosegauge/internal/config"
)

func main() {
	os.Exit(run())
}

const usageText = `Usage: prosegauge <command> [flags] [files...]

Commands:
  analyze   Analyze text passages for vocabulary and complexity
  metrics   List available metrics or rank passage files
  repl      Interactive analysis prompt
  help      Show help for advice tiers and topics
  init      Generate a default .prosegauge.yml config file
  version   Print version and exit

Global flags:
  -h, --help      Show this help

Run 'prosegauge <command> --help' for more information on a command.
`

func run() int {
	// Handle no arguments: print usage, exit 0.
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	// Handle global flags before subcommand dispatch.
	first := os.Args[1]

	switch first {
	case "--help", "-h":
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	// Dispatch to subcommand.
	switch first {
	case "analyze":
		return runAnalyze(os.Args[2:])
	case "metrics":
		return runMetrics(os.Args[2:])
	case "repl":
		return runRepl(os.Args[2:])
	case "help":
		return runHelp(os.Args[2:])
	case "init":
		return runInit(os.Args[2:])
	case "version":
		printVersion()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "prosegauge: unknown command %q\n\n%s", first, usageText)
		return 2
	}
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("prosegauge %s\n", version)
}

// runInit implements the "init" subcommand: generate .prosegauge.yml.
func runInit(args []string) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: prosegauge init\n\n"+
			"Generate a default .prosegauge.yml config file in the current directory.\n")
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "prosegauge: init takes no arguments\n")
		return 2
	}

	const configFile = ".prosegauge.yml"

	// Check if config file already exists.
	if _, err := os.Stat(configFile); err == nil {
		fmt.Fprintf(os.Stderr, "prosegauge: %s already exists\n", configFile)
		return 2
	}

	cfg := config.DumpDefaults()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "prosegauge: marshalling config: %v\n", err)
		return 2
	}

	if err := os.WriteFile(configFile, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "prosegauge: writing %s: %v\n", configFile, err)
		return 2
	}

	fmt.Fprintf(os.Stderr, "prosegauge: created %s\n", configFile)
	return 0
}

// isStdinPipe returns true if stdin is a pipe (not a terminal).
func isStdinPipe() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// loadConfig loads configuration by either using the specified path or
// discovering a config file from the current directory. It returns the
// merged config, the path that was loaded (empty if defaults only), and
// any error.
func loadConfig(configPath string) (*config.Config, string, error) {
	defaults := config.Defaults()

	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, "", err
		}
		return config.Merge(defaults, loaded), configPath, nil
	}

	// Try to discover a config file.
	cwd, err := os.Getwd()
	if err != nil {
		return config.Merge(defaults, nil), "", nil
	}

	discovered, err := config.Discover(cwd)
	if err != nil {
		return config.Merge(defaults, nil), "", nil
	}

	if discovered == "" {
		return config.Merge(defaults, nil), "", nil
	}

	loaded, err := config.Load(discovered)
	if err != nil {
		return nil, "", err
	}

	return config.Merge(defaults, loaded), discovered, nil
}

const helpUsageText = `Usage: prosegauge help <topic>

Topics:
  advice [id|tier]   Show advice tier documentation
`

// runHelp implements the "help" subcommand.
func runHelp(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, helpUsageText)
		return 0
	}

	switch args[0] {
	case "advice":
		return runHelpAdvice(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "prosegauge: help: unknown topic %q\n", args[0])
		return 2
	}
}

// runHelpAdvice implements "help advice [id|tier]".
func runHelpAdvice(args []string) int {
	if len(args) == 0 {
		return listAllAdvice()
	}
	return showAdvice(args[0])
}

func listAllAdvice() int {
	docs, err := prosegauge.ListAdvice()
	if err != nil {
		fmt.Fprintf(os.Stderr, "prosegauge: %v\n", err)
		return 2
	}

	for _, d := range docs {
		fmt.Printf("%-8s %-14s %s\n", d.ID, d.Name, d.Description)
	}
	return 0
}

func showAdvice(query string) int {
	content, err := prosegauge.LookupAdvice(query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "prosegauge: %v\n", err)
		return 2
	}
	fmt.Print(content)
	return 0
}
