package config

import (
	"io"
	"os"
)

// OutputConfig holds settings related to console output.
type OutputConfig struct {
	// Out receives the board, prompts and game messages.
	Out io.Writer

	// Colour enables ANSI colours for pieces and check messages.
	Colour bool

	// SaveDir is prepended to relative save and load paths.
	SaveDir string
}

// NewOutputConfig creates an OutputConfig writing to stdout without colour.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Out: os.Stdout,
	}
}
