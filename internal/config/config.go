// Package config provides game settings and program configuration.
package config

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Config holds all program configuration. Each front end builds one from
// its flags and passes it down explicitly.
type Config struct {
	// Settings used when a new game starts.
	Settings Settings

	Output *OutputConfig
	Server *ServerConfig
	Batch  *BatchConfig

	// Verbosity: 0 = no logging, 1 = info, 2 = debug.
	Verbosity int

	// LogFile receives log records.
	LogFile io.Writer

	// JSONLogs writes log records as JSON lines instead of console text.
	JSONLogs bool
}

// NewConfig creates a new Config with default values. Logging is off.
func NewConfig() *Config {
	return &Config{
		Settings: DefaultSettings(),
		Output:   NewOutputConfig(),
		Server:   NewServerConfig(),
		Batch:    NewBatchConfig(),
		LogFile:  io.Discard,
	}
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if err := c.Settings.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	return c.Batch.Validate()
}

// Level returns the log level for the configured verbosity.
func (c *Config) Level() zerolog.Level {
	switch {
	case c.Verbosity <= 0:
		return zerolog.Disabled
	case c.Verbosity == 1:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}

// Logger builds the logger described by the configuration.
func (c *Config) Logger() zerolog.Logger {
	if c.Level() == zerolog.Disabled || c.LogFile == nil {
		return zerolog.Nop()
	}
	w := c.LogFile
	if !c.JSONLogs {
		w = zerolog.ConsoleWriter{Out: c.LogFile, NoColor: !c.Output.Colour, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(c.Level()).With().Timestamp().Logger()
}

// SetOutput sets the writer for game output.
func (c *Config) SetOutput(w io.Writer) {
	c.Output.Out = w
}
