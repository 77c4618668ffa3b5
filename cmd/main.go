// ShortClass is a build-time CLI that assigns short, collision-free
// replacement identifiers to (scope, name) pairs, such as CSS class names.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/eduardolat/shortclass/internal/config"
	"github.com/eduardolat/shortclass/internal/rename"
	"github.com/eduardolat/shortclass/internal/version"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// ASCII art banner for the CLI
const banner = `
 ____  _                _    ____ _               
/ ___|| |__   ___  _ __| |_ / ___| | __ _ ___ ___ 
\___ \| '_ \ / _ \| '__| __| |   | |/ _' / __/ __|
 ___) | | | | (_) | |  | |_| |___| | (_| \__ \__ \
|____/|_| |_|\___/|_|   \__|\____|_|\__,_|___/___/
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("shortclass", flag.ContinueOnError)
	flags.SetOutput(stderr)

	// Define CLI flags
	configPath := flags.String("config", "", "Path to the configuration file (defaults apply when empty)")
	inputPath := flags.String("input", "", "Path to the lookup request file (default: stdin)")
	outputPath := flags.String("output", config.DefaultOutputPath, "Path to the manifest file to write")
	dryRun := flags.Bool("dry-run", false, "Resolve names without writing the manifest")
	showVersion := flags.Bool("version", false, "Show version information and exit")
	debug := flags.Bool("debug", false, "Enable debug logging (most verbose)")
	quiet := flags.Bool("quiet", false, "Show only warnings and errors")
	silent := flags.Bool("silent", false, "Show only errors (most quiet)")

	flags.Usage = func() {
		fmt.Fprint(stderr, banner)
		fmt.Fprintf(stderr, "\nShort Identifier Generator\n\n")
		fmt.Fprintf(stderr, "Usage:\n")
		fmt.Fprintf(stderr, "  shortclass [options]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		flags.PrintDefaults()
		fmt.Fprintf(stderr, "\nInput Format:\n")
		fmt.Fprintf(stderr, "  One request per line: <scope> <name>\n")
		fmt.Fprintf(stderr, "  The name is the last field; lines starting with # are ignored.\n")
		fmt.Fprintf(stderr, "\nLog Levels:\n")
		fmt.Fprintf(stderr, "  (default)   Show info, warnings, and errors\n")
		fmt.Fprintf(stderr, "  --debug     Show all messages including every assignment\n")
		fmt.Fprintf(stderr, "  --quiet     Show only warnings and errors\n")
		fmt.Fprintf(stderr, "  --silent    Show only errors\n")
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  shortclass --input names.txt                 # Use default settings\n")
		fmt.Fprintf(stderr, "  shortclass --config shortclass.config.yaml   # Use custom alphabet/prefix\n")
		fmt.Fprintf(stderr, "  bundler --list-classes | shortclass --dry-run --debug\n")
		fmt.Fprintf(stderr, "\nExit Codes:\n")
		fmt.Fprintf(stderr, "  0  Success\n")
		fmt.Fprintf(stderr, "  1  Failure (invalid configuration, unreadable input or unwritable manifest)\n")
	}

	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return ExitSuccess
		}
		return ExitFailure
	}

	// Show version and exit
	if *showVersion {
		fmt.Fprint(stdout, banner)
		fmt.Fprintf(stdout, "Version: %s\n", version.Version)
		fmt.Fprintf(stdout, "Commit:  %s\n", version.Commit)
		fmt.Fprintf(stdout, "Built:   %s\n", version.Date)
		fmt.Fprintln(stdout)
		return ExitSuccess
	}

	// Setup logger with hierarchy: debug > default > quiet > silent
	var logLevel slog.Level
	switch {
	case *debug:
		logLevel = slog.LevelDebug
	case *silent:
		logLevel = slog.LevelError
	case *quiet:
		logLevel = slog.LevelWarn
	default:
		logLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	logger.Info("ShortClass starting",
		"version", version.Version,
		"config", *configPath,
		"output", *outputPath,
		"dry_run", *dryRun)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load configuration",
			"path", *configPath,
			"error", err)
		return ExitFailure
	}

	logger.Info("configuration loaded",
		"alphabet_size", len([]rune(cfg.GetAlphabet())),
		"prefix", cfg.Prefix,
		"suffix", cfg.Suffix,
		"random_prefix_length", cfg.RandomPrefixLength,
		"last_id", cfg.LastID)

	input := stdin
	if *inputPath != "" {
		f, err := os.Open(*inputPath)
		if err != nil {
			logger.Error("failed to open input",
				"path", *inputPath,
				"error", err)
			return ExitFailure
		}
		defer f.Close()
		input = f
	}

	// Setup context with signal handling
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	renamer := rename.New(cfg, logger, *dryRun)
	result, err := renamer.Run(ctx, input, *outputPath)
	if err != nil {
		logger.Error("rename failed", "error", err)
		return ExitFailure
	}

	if result.DiscardedLines > 0 {
		logger.Warn("some input lines were discarded",
			"discarded_lines", result.DiscardedLines)
	}

	logger.Info("rename complete",
		"requests", result.Requests,
		"assigned", result.Assigned,
		"reused", result.Reused,
		"last_id", result.LastID)
	return ExitSuccess
}
