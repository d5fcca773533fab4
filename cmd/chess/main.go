// chess is a console chess game against the computer or a second player.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/console"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg, term.IsTerminal(int(os.Stdout.Fd()))); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	setupLogFile(cfg)

	if err := console.New(cfg, os.Stdin).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
		if cfg.Verbosity == 0 {
			cfg.Verbosity = 1
		}
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
		if cfg.Verbosity == 0 {
			cfg.Verbosity = 1
		}
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play chess on the console.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nSettings commands:\n")
	fmt.Fprintf(os.Stderr, "  game_mode <1|2>      1 = against the computer, 2 = two players\n")
	fmt.Fprintf(os.Stderr, "  difficulty <1-5>     computer strength\n")
	fmt.Fprintf(os.Stderr, "  user_color <0|1>     0 = black, 1 = white\n")
	fmt.Fprintf(os.Stderr, "  load <file>          resume a saved game\n")
	fmt.Fprintf(os.Stderr, "  default, print_settings, start, quit\n")
	fmt.Fprintf(os.Stderr, "\nGame commands:\n")
	fmt.Fprintf(os.Stderr, "  move <r,C> to <r,C>  e.g. move <2,E> to <4,E>\n")
	fmt.Fprintf(os.Stderr, "  get_moves <r,C>      list destinations (^ capture, * threatened)\n")
	fmt.Fprintf(os.Stderr, "  save <file>, undo, reset, fen, quit\n")
}
