package config

import (
	"fmt"
	"runtime"
	"time"

	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// ServerConfig holds settings for the SSH front end.
type ServerConfig struct {
	// Addr is the listen address, host:port.
	Addr string

	// HostKeyFile is a PEM private key. Empty means an ephemeral key.
	HostKeyFile string

	// IdleTimeout closes sessions without input for this long. Zero
	// disables it.
	IdleTimeout time.Duration
}

// NewServerConfig creates a ServerConfig listening on port 2222.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:        ":2222",
		IdleTimeout: 30 * time.Minute,
	}
}

// Validate checks the server settings.
func (s *ServerConfig) Validate() error {
	if s.Addr == "" {
		return fmt.Errorf("empty listen address: %w", errors.ErrInvalidConfig)
	}
	if s.IdleTimeout < 0 {
		return fmt.Errorf("negative idle timeout %v: %w", s.IdleTimeout, errors.ErrInvalidConfig)
	}
	return nil
}

// BatchConfig holds settings for the batch advisor.
type BatchConfig struct {
	// Workers is the number of games searched in parallel.
	Workers int

	// Depth overrides the difficulty stored in each save file when > 0.
	Depth int
}

// NewBatchConfig creates a BatchConfig with one worker per CPU.
func NewBatchConfig() *BatchConfig {
	return &BatchConfig{
		Workers: runtime.NumCPU(),
	}
}

// Validate checks the batch settings.
func (b *BatchConfig) Validate() error {
	if b.Workers < 1 {
		return fmt.Errorf("workers %d: %w", b.Workers, errors.ErrInvalidConfig)
	}
	if b.Depth < 0 || b.Depth > int(MaxDifficulty) {
		return fmt.Errorf("depth %d not in [0, %d]: %w", b.Depth, MaxDifficulty, errors.ErrInvalidConfig)
	}
	return nil
}
