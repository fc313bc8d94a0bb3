package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/nbtkit/cmd/nbtctl/logger"
	"github.com/joshuapare/nbtkit/internal/config"
	"github.com/joshuapare/nbtkit/pkg/nbt"
	"github.com/joshuapare/nbtkit/pkg/types"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	noColor    bool
	configPath string
	logFile    string
	logLevel   string
)

// Test seams for the interactive prompt.
var (
	stdin       io.Reader = os.Stdin
	interactive           = func() bool {
		fd := os.Stdin.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
)

// numbers formats byte counts with thousands separators.
var numbers = message.NewPrinter(language.English)

var rootCmd = &cobra.Command{
	Use:   "nbtctl",
	Short: "Inspect and repair tagged binary player files",
	Long: `nbtctl decodes gzip, zlib or uncompressed tagged binary tree files with
byte-exact spans. It ranks the elements of a list (a player's inventory by
default) by encoded size and can cut a single element out of the file without
re-encoding anything else.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			color.NoColor = true
		}
		return initLogging()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Config file (default: $"+config.EnvVar+")")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write a JSON debug log to this file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

func initLogging() error {
	if logFile == "" {
		return nil
	}
	level, err := logger.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	return logger.Init(logger.Options{Enabled: true, Path: logFile, Level: level})
}

// loadOptions merges the config file with command-line overrides. Commands
// apply their own flags on top of the result.
func loadOptions() (nbt.Options, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nbt.Options{}, err
	}
	opts := nbt.DefaultOptions()
	opts.Target = nbt.ParsePath(cfg.Target)
	opts.AppendRootTerminator = cfg.AppendRootTerminator
	opts.CreateBackup = cfg.Backup
	opts.Format = cfg.Format()
	opts.Level = cfg.Compression.Level
	opts.Limits = types.Limits{MaxDepth: cfg.Limits.MaxDepth}
	logger.Debug("options loaded", "config", configPath, "target", cfg.Target,
		"format", opts.Format.String(), "level", opts.Level)
	return opts, nil
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
	fmt.Fprintf(os.Stderr, color.RedString("Error: ")+format, args...)
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

// bytesCount renders n with thousands separators.
func bytesCount(n int) string {
	return numbers.Sprintf("%d", n)
}
