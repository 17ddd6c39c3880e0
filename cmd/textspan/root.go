package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	flagConfig   string
	flagLocale   string
	flagLogLevel string
	flagPretty   bool

	cfg    config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "textspan",
	Short: "Textspan - Unicode boundary location and text statistics",
	Long: `Textspan analyzes text line by line.

It can:
- locate character, word, sentence, and line-break boundaries in
  code-point coordinates
- locate words only, skipping whitespace and punctuation
- compute general text statistics (lines, characters, whitespace)
- compute LaTeX word-count statistics (words, commands, environments)

Input is read from the given files, or from stdin when no file (or "-")
is given, and split into lines. Results are printed as JSON.`,
	Version:           version,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "config file (default: .textspan.yaml or .textspan.toml)")
	rootCmd.PersistentFlags().StringVarP(&flagLocale, "locale", "l", "", "locale identifier (default: platform locale)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&flagPretty, "pretty", false, "indent JSON output")

	rootCmd.AddCommand(boundariesCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(latexCmd)
}

// setup loads the config file and builds the logger before any
// subcommand runs. Flags win over config file values.
func setup(cmd *cobra.Command, args []string) error {
	path := flagConfig
	if path == "" {
		path = findConfig()
	}
	if path != "" {
		loaded, err := loadConfig(path)
		if err != nil {
			return fmt.Errorf("load config %s: %w", path, err)
		}
		cfg = *loaded
	}
	if flagLocale != "" {
		cfg.Locale = flagLocale
	}
	if cmd.Flags().Changed("log-level") || cfg.LogLevel == "" {
		cfg.LogLevel = flagLogLevel
	}

	var err error
	logger, err = newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	if path != "" {
		logger.Debug("config loaded", zap.String("path", path))
	}
	return nil
}

// newLogger builds a terminal-style zap logger writing to stderr.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}
