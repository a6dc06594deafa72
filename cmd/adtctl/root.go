package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/adtkit/adt/printer"
	"github.com/joshuapare/adtkit/cmd/adtctl/logger"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	noColor bool
	charset string
	logDir  string
)

var rootCmd = &cobra.Command{
	Use:   "adtctl",
	Short: "Build and inspect general trees and positional lists",
	Long: `adtctl drives the adtkit data structures from the command line.
It builds general trees and positional lists from arguments, applies
deletions, unlinks and searches, and prints the result as text or JSON.`,
	Version:           "0.1.0",
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output and debug logging to stderr")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&charset, "charset", "", "Transcode output (latin1, windows-1252, cp437, cp850)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Write JSON debug logs to this directory")
}

// setup applies the global flags before any subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	configureStyles(noColor)

	var err error
	switch {
	case logDir != "":
		err = logger.Init(logger.Options{Enabled: true, LogDir: logDir, Level: slog.LevelDebug})
	case verbose:
		err = logger.Init(logger.Options{Enabled: true, Writer: os.Stderr, Level: slog.LevelDebug})
	default:
		err = logger.Init(logger.Options{Enabled: false})
	}
	if err != nil {
		return err
	}

	logger.Info("command started", "command", cmd.CommandPath(), "args", args)
	return nil
}

// run executes the root command with args and returns the exit code. The
// log file opened by setup is closed before returning.
func run(args []string) int {
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if err != nil {
		logger.Error("command failed", "error", err)
		printError("%v\n", err)
	}
	if cerr := logger.Close(); cerr != nil {
		printError("closing log: %v\n", cerr)
	}
	if err != nil {
		return 1
	}
	return 0
}

func execute() {
	os.Exit(run(os.Args[1:]))
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// printerOptions maps the global flags onto printer options.
func printerOptions() (printer.Options, error) {
	opts := printer.DefaultOptions()
	if jsonOut {
		opts.Format = printer.FormatJSON
	}

	enc, err := printer.Charset(charset)
	if err != nil {
		return opts, err
	}
	opts.Encoding = enc
	return opts, nil
}
