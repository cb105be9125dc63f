// Command msaview is a terminal viewer for multiple sequence alignments:
// residue grid, sequence names, column ruler and per-column conservation
// chart, kept in scroll lockstep with mouse and keyboard panning.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/aabdoo23/Protomatic-sub001/internal/config"
	"github.com/aabdoo23/Protomatic-sub001/internal/viewer"
)

// version can be overridden at build time with -ldflags "-X main.version=..."
var version = "0.1.0"

var (
	configFlag      string
	logFileFlag     string
	logLevelFlag    string
	verboseFlag     bool
	sensitivityFlag float64
	nameWidthFlag   int
)

var rootCmd = &cobra.Command{
	Use:     "msaview <alignment.fasta>",
	Short:   "Browse a multiple sequence alignment in the terminal",
	Args:    cobra.ExactArgs(1),
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, closeLog, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer closeLog()

		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read alignment: %w", err)
		}
		logger.Info("starting viewer", "path", path, "bytes", len(data),
			"sensitivity", cfg.Sensitivity, "name_col_width", cfg.NameColWidth)

		m := viewer.New(string(data), viewer.Options{
			Title:        path,
			Sensitivity:  cfg.Sensitivity,
			NameColWidth: cfg.NameColWidth,
		})
		if err := viewer.Run(m); err != nil {
			logger.Error("viewer exited", "err", err)
			return err
		}
		return nil
	},
}

// loadConfig merges the optional config file with CLI flags; flags override
// config values when provided.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, err
	}
	if logFileFlag != "" {
		cfg.LogFile = logFileFlag
	}
	if logLevelFlag != "" {
		cfg.LogLevel = logLevelFlag
	}
	if sensitivityFlag > 0 {
		cfg.Sensitivity = sensitivityFlag
	}
	if nameWidthFlag > 0 {
		cfg.NameColWidth = nameWidthFlag
	}
	return cfg, nil
}

// newLogger builds the viewer logger. While the TUI owns the terminal,
// logs go to the configured file only; without one they are discarded.
func newLogger(cfg *config.Config) (*log.Logger, func(), error) {
	out := io.Discard
	closeLog := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeLog = func() { _ = f.Close() }
	}
	logger := log.New(out)
	logger.SetLevel(parseLevel(cfg.LogLevel))
	if verboseFlag {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeLog, nil
}

func parseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "info", "":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to msaview.yaml (optional)")
	rootCmd.PersistentFlags().StringVar(&logFileFlag, "log-file", "", "append logs to this file")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "enable verbose (debug) logging")
	rootCmd.Flags().Float64Var(&sensitivityFlag, "sensitivity", 0, "drag-to-pan sensitivity (columns per cell)")
	rootCmd.Flags().IntVar(&nameWidthFlag, "name-width", 0, "sequence name column width")
	rootCmd.AddCommand(infoCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
