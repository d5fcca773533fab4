package config

import (
	"io"
	"time"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithGameMode sets the game mode.
func (b *ConfigBuilder) WithGameMode(mode GameMode) *ConfigBuilder {
	b.cfg.Settings.Mode = mode
	return b
}

// WithDifficulty sets the computer difficulty.
func (b *ConfigBuilder) WithDifficulty(d Difficulty) *ConfigBuilder {
	b.cfg.Settings.Difficulty = d
	return b
}

// WithUserColour sets the colour played by the human in single player mode.
func (b *ConfigBuilder) WithUserColour(c chess.Colour) *ConfigBuilder {
	b.cfg.Settings.UserColour = c
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.Output.Out = w
	return b
}

// WithColour enables coloured output.
func (b *ConfigBuilder) WithColour(enabled bool) *ConfigBuilder {
	b.cfg.Output.Colour = enabled
	return b
}

// WithSaveDir sets the directory for relative save paths.
func (b *ConfigBuilder) WithSaveDir(dir string) *ConfigBuilder {
	b.cfg.Output.SaveDir = dir
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithLogFile sets the log destination.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithJSONLogs switches log records to JSON.
func (b *ConfigBuilder) WithJSONLogs(enabled bool) *ConfigBuilder {
	b.cfg.JSONLogs = enabled
	return b
}

// WithListenAddr sets the SSH listen address.
func (b *ConfigBuilder) WithListenAddr(addr string) *ConfigBuilder {
	b.cfg.Server.Addr = addr
	return b
}

// WithHostKeyFile sets the SSH host key file.
func (b *ConfigBuilder) WithHostKeyFile(path string) *ConfigBuilder {
	b.cfg.Server.HostKeyFile = path
	return b
}

// WithIdleTimeout sets the SSH idle timeout.
func (b *ConfigBuilder) WithIdleTimeout(d time.Duration) *ConfigBuilder {
	b.cfg.Server.IdleTimeout = d
	return b
}

// WithWorkers sets the number of batch workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Batch.Workers = n
	return b
}

// WithDepth sets the batch search depth override.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Batch.Depth = depth
	return b
}
