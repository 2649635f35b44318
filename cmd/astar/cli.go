package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Exit codes.
const (
	exitFailure     = 1
	exitUsage       = 2
	exitUnreachable = 3
)

// config holds the parsed command line.
type config struct {
	Paths       []string
	Format      string
	LogLevel    string
	LogFormat   string
	Concurrency int
}

// parseArgs processes command-line arguments. It returns the
// configuration, whether the program should exit cleanly, or an
// ExitError.
func parseArgs(args []string, output io.Writer) (*config, bool, error) {
	flagSet := flag.NewFlagSet("astar", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
astar - find cheapest paths across grid scenarios.

Usage:
  astar [options] PATH...

Arguments:
  PATH
    A scenario .hcl file or a directory containing them.

Options:
`)
		flagSet.PrintDefaults()
	}
	formatFlag := flagSet.String("format", "text", "Output format. Options: 'text', 'mermaid' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	concurrencyFlag := flagSet.Int("concurrency", 0, "Number of scenarios searched at once. 0 means one per CPU.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: exitUsage, Message: err.Error()}
	}
	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil, false, &ExitError{Code: exitUsage, Message: "no scenario paths given"}
	}

	cfg := &config{
		Paths:       flagSet.Args(),
		Format:      strings.ToLower(*formatFlag),
		LogLevel:    strings.ToLower(*logLevelFlag),
		LogFormat:   strings.ToLower(*logFormatFlag),
		Concurrency: *concurrencyFlag,
	}
	if _, ok := writers[cfg.Format]; !ok {
		return nil, false, &ExitError{Code: exitUsage, Message: "invalid format: must be 'text', 'mermaid' or 'json'"}
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: exitUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, false, &ExitError{Code: exitUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	if cfg.Concurrency < 0 {
		return nil, false, &ExitError{Code: exitUsage, Message: "invalid concurrency: must not be negative"}
	}
	if cfg.Concurrency == 0 {
		cfg.Concurrency = runtime.GOMAXPROCS(0)
	}
	return cfg, false, nil
}

// newLogger creates a logger writing to w. It does not set the
// global logger.
func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
