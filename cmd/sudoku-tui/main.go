package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/sudoku-tui/internal/config"
	"svw.info/sudoku-tui/internal/controller"
	"svw.info/sudoku-tui/internal/domain"
	"svw.info/sudoku-tui/internal/source"
	"svw.info/sudoku-tui/internal/tui"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sudoku-tui:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var flags config.Config
	var configPath string

	cmd := &cobra.Command{
		Use:           "sudoku-tui",
		Short:         "Terminal Sudoku client for the generator service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			explicit := cmd.Flags().Changed("config")
			path := configPath
			if path == "" {
				path = config.DefaultPath()
			}
			cfg, err := config.Load(path, explicit)
			if err != nil {
				return err
			}
			cfg.ApplyEnv()
			overlay(&cfg, flags)
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, closeLog, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer closeLog()

			src := source.NewHTTP(cfg.BaseURL, cfg.APIKey, logger)
			ctrl := controller.New(src)
			ui := tui.New(ctrl, logger, domain.ParseDifficulty(cfg.Difficulty))

			logger.Info("starting", "base_url", cfg.BaseURL, "difficulty", domain.ParseDifficulty(cfg.Difficulty).String())
			return ui.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/sudoku-tui/config.toml)")
	cmd.Flags().StringVar(&flags.BaseURL, "base-url", "", "puzzle service base URL")
	cmd.Flags().StringVar(&flags.APIKey, "api-key", "", "puzzle service API key")
	cmd.Flags().StringVar(&flags.Difficulty, "difficulty", "", "easy|medium|hard")
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", "", "debug|info|warn|error")
	cmd.Flags().StringVar(&flags.LogFile, "log-file", "", "write logs here instead of discarding them")
	return cmd
}

// overlay applies non-empty flag values on top of file/env config.
func overlay(cfg *config.Config, flags config.Config) {
	if flags.BaseURL != "" {
		cfg.BaseURL = flags.BaseURL
	}
	if flags.APIKey != "" {
		cfg.APIKey = flags.APIKey
	}
	if flags.Difficulty != "" {
		cfg.Difficulty = flags.Difficulty
	}
	if flags.LogLevel != "" {
		cfg.LogLevel = flags.LogLevel
	}
	if flags.LogFile != "" {
		cfg.LogFile = flags.LogFile
	}
}

// newLogger builds a text slog. Once termbox owns the terminal we
// cannot write to stdout, so without a log file everything is
// discarded.
func newLogger(cfg config.Config) (*slog.Logger, func(), error) {
	lvl := slog.LevelInfo
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}

	var w io.Writer = io.Discard
	closeLog := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("log file: %w", err)
		}
		w = f
		closeLog = func() { _ = f.Close() }
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), closeLog, nil
}
