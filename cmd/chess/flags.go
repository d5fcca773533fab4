// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

var (
	// Initial game settings, changeable from the console before start
	gameMode   = flag.Int("mode", int(config.SinglePlayer), "Game mode: 1 = against the computer, 2 = two players")
	difficulty = flag.Int("difficulty", int(config.Easy), "Computer difficulty 1-5 (search depth)")
	userColour = flag.String("colour", chess.White.String(), "Colour played against the computer: white or black")

	// Output options
	colourMode = flag.String("color", "auto", "Coloured output: auto, always or never")
	saveDir    = flag.String("savedir", "", "Directory for relative save and load paths")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbosity = flag.Int("verbose", 0, "Log verbosity: 0 = off, 1 = info, 2 = debug")
	jsonLogs  = flag.Bool("jsonlogs", false, "Write log records as JSON")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config, isTerminal bool) error {
	if err := applySettingsFlags(cfg); err != nil {
		return err
	}
	if err := applyOutputFlags(cfg, isTerminal); err != nil {
		return err
	}
	cfg.Verbosity = *verbosity
	cfg.JSONLogs = *jsonLogs
	return cfg.Validate()
}

// applySettingsFlags configures the settings of the first game.
func applySettingsFlags(cfg *config.Config) error {
	cfg.Settings.Mode = config.GameMode(*gameMode)
	cfg.Settings.Difficulty = config.Difficulty(*difficulty)

	c, ok := chess.ParseColour(*userColour)
	if !ok {
		return fmt.Errorf("-colour %q: %w", *userColour, errors.ErrInvalidConfig)
	}
	cfg.Settings.UserColour = c
	return nil
}

// applyOutputFlags configures colour and the save directory.
func applyOutputFlags(cfg *config.Config, isTerminal bool) error {
	switch *colourMode {
	case "auto":
		cfg.Output.Colour = isTerminal
	case "always":
		cfg.Output.Colour = true
	case "never":
		cfg.Output.Colour = false
	default:
		return fmt.Errorf("-color %q: %w", *colourMode, errors.ErrInvalidConfig)
	}
	cfg.Output.SaveDir = *saveDir
	return nil
}
