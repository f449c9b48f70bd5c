package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/joshuapare/edidkit/internal/config"
	"github.com/joshuapare/edidkit/internal/logger"
	"github.com/joshuapare/edidkit/pkg/edid"
)

var (
	// Global flags
	verbose       bool
	quiet         bool
	jsonOut       bool
	noColor       bool
	configPath    string
	devicePath    string
	inputEncoding string

	// cfg is loaded before every command; tests use the defaults.
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "edidctl",
	Short: "Override the screen size a monitor reports to Windows",
	Long: `edidctl reads a monitor's EDID from a registry export, changes the
physical screen size it reports and writes the EDID_OVERRIDE .reg files that
install or remove the edited block.

Export the monitor key first:
  reg export "HKLM\SYSTEM\CurrentControlSet\Enum\DISPLAY\DELA0B1" monitor.reg`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Close()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/edidkit/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&devicePath, "device", "", `Monitor instance path to use when the export holds several (e.g. DISPLAY\DELA0B1\5&2d9c&0&UID4352)`)
	rootCmd.PersistentFlags().StringVar(&inputEncoding, "encoding", "", "Input encoding when the file has no BOM (UTF-8, UTF-16LE, Windows-1252)")
}

// setup loads the config file and starts logging.
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = c

	opts := logger.Options{
		Enabled:    cfg.Logs.Enabled,
		LogDir:     cfg.Logs.Directory,
		Level:      parseLevel(cfg.Logs.Level),
		MaxSizeMB:  cfg.Logs.MaxSizeMB,
		MaxAgeDays: cfg.Logs.MaxAgeDays,
		MaxBackups: cfg.Logs.MaxBackups,
		Compress:   cfg.Logs.Compress,
	}
	if verbose && !quiet {
		opts.Stderr = os.Stderr
		opts.StderrLevel = slog.LevelDebug
	}
	if err := logger.Init(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}
	logger.Debug("edidctl starting", "command", cmd.Name(), "config", cfg.Path)
	return nil
}

func parseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openSession loads the EDID from a registry export using the global flags.
func openSession(path string) (*edid.Session, error) {
	enc := inputEncoding
	if enc == "" {
		enc = cfg.Defaults.InputEncoding
	}
	printVerbose("Reading export: %s\n", path)
	s, err := edid.OpenFile(path, edid.OpenOptions{InputEncoding: enc, DevicePath: devicePath})
	if err != nil {
		return nil, fmt.Errorf("failed to load EDID: %w", err)
	}
	printVerbose("Device: %s (EDID %s)\n", s.DevicePath(), s.Header())
	return s, nil
}

// colorEnabled reports whether stdout should receive ANSI styling.
func colorEnabled() bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
