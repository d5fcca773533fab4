// chess-ssh serves the console chess game to SSH clients. Every session
// plays its own game.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gliderlabs/ssh"

	"github.com/lgbarn/minimax-chess-go/internal/config"
)

const programVersion = "0.1.0"

var (
	listenAddr  = flag.String("addr", ":2222", "Listen address")
	hostKeyFile = flag.String("hostkey", "", "PEM host key file (default: ephemeral key)")
	idleTimeout = flag.Duration("idle", 30*time.Minute, "Close sessions idle for this long (0 = never)")
	saveDir     = flag.String("savedir", "", "Directory for relative save and load paths")
	verbosity   = flag.Int("verbose", 1, "Log verbosity: 0 = off, 1 = info, 2 = debug")
	jsonLogs    = flag.Bool("jsonlogs", false, "Write log records as JSON")
	version     = flag.Bool("version", false, "Show version")
)

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("chess-ssh version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfigBuilder().
		WithListenAddr(*listenAddr).
		WithHostKeyFile(*hostKeyFile).
		WithIdleTimeout(*idleTimeout).
		WithSaveDir(*saveDir).
		WithVerbosity(*verbosity).
		WithJSONLogs(*jsonLogs).
		WithLogFile(os.Stderr).
		Build()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	logger := cfg.Logger()

	srv, err := newServer(cfg)
	if err != nil {
		logger.Fatal().Err(err).Str("hostkey", cfg.Server.HostKeyFile).Msg("cannot load host key")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn().Err(err).Msg("shutdown")
		}
	}()

	logger.Info().Str("addr", cfg.Server.Addr).Msg("listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("server stopped")
	}
	logger.Info().Msg("server closed")
}

// newServer builds the SSH server for cfg without starting it.
func newServer(cfg *config.Config) (*ssh.Server, error) {
	srv := &ssh.Server{
		Addr:        cfg.Server.Addr,
		IdleTimeout: cfg.Server.IdleTimeout,
		Handler:     handler(cfg),
	}
	if cfg.Server.HostKeyFile != "" {
		if err := srv.SetOption(ssh.HostKeyFile(cfg.Server.HostKeyFile)); err != nil {
			return nil, err
		}
	}
	return srv, nil
}
