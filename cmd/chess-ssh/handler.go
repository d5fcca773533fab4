package main

import (
	"io"
	"strings"
	"time"

	"github.com/gliderlabs/ssh"
	"golang.org/x/term"

	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/console"
)

// handler returns the session handler. Each session gets a copy of base
// with output directed to the client.
func handler(base *config.Config) ssh.Handler {
	root := base.Logger()
	return func(s ssh.Session) {
		logger := root.With().
			Str("user", s.User()).
			Str("remote", s.RemoteAddr().String()).
			Logger()

		_, _, isPty := s.Pty()
		in, out := sessionIO(s, isPty)
		cfg := sessionConfig(base, out, isPty)

		start := time.Now()
		logger.Info().Bool("pty", isPty).Msg("session opened")

		err := console.New(cfg, in).Run()
		if err != nil {
			logger.Warn().Err(err).Msg("session input")
		}
		logger.Info().Dur("elapsed", time.Since(start)).Msg("session closed")

		code := 0
		if err != nil {
			code = 1
		}
		_ = s.Exit(code)
	}
}

// sessionConfig copies base for one client writing to out. Colour is only
// used on a pty.
func sessionConfig(base *config.Config, out io.Writer, colour bool) *config.Config {
	cfg := *base
	output := *base.Output
	output.Out = out
	output.Colour = colour
	cfg.Output = &output
	return &cfg
}

// sessionIO returns the command source and output sink for a session. A
// pty gets line editing and echo from a term.Terminal; other sessions use
// the raw stream.
func sessionIO(rw io.ReadWriter, isPty bool) (io.Reader, io.Writer) {
	if !isPty {
		return rw, rw
	}
	t := term.NewTerminal(rw, "")
	return &lineReader{t: t}, t
}

// lineReader adapts term.Terminal.ReadLine to io.Reader, one line per
// newline-terminated chunk.
type lineReader struct {
	t   *term.Terminal
	buf strings.Reader
}

func (r *lineReader) Read(p []byte) (int, error) {
	if r.buf.Len() == 0 {
		line, err := r.t.ReadLine()
		if err != nil {
			return 0, err
		}
		r.buf.Reset(line + "\n")
	}
	return r.buf.Read(p)
}
