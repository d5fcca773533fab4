// Package session ties game settings to a running game. A Session decides
// whose turn it is, plays the computer's moves, keeps the undo history at a
// fixed visible length and persists games to the save file format.
package session

import (
	"fmt"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	chesserrors "github.com/lgbarn/minimax-chess-go/internal/errors"
	"github.com/lgbarn/minimax-chess-go/internal/search"
)

// Session is one game together with the settings it was started with.
// It is not safe for concurrent use.
type Session struct {
	ID       uuid.UUID
	Name     string
	Settings config.Settings

	// Saved is true when the game has not changed since it was last saved
	// or loaded.
	Saved bool

	game     *engine.Game
	searcher *search.Searcher
	logger   zerolog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used by the session and its searcher.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// WithName overrides the generated game name.
func WithName(name string) Option {
	return func(s *Session) {
		s.Name = name
	}
}

func withID(id uuid.UUID) Option {
	return func(s *Session) {
		s.ID = id
	}
}

func newSession(settings config.Settings, opts []Option) (*Session, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		ID:       uuid.New(),
		Name:     petname.Generate(2, "-"),
		Settings: settings,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With().Str("game", s.Name).Logger()
	s.searcher = search.NewSearcher(search.WithLogger(s.logger))
	return s, nil
}

// New starts a game from the initial position.
func New(settings config.Settings, opts ...Option) (*Session, error) {
	s, err := newSession(settings, opts)
	if err != nil {
		return nil, err
	}
	if s.game, err = engine.NewGame(settings.HistoryCapacity()); err != nil {
		return nil, err
	}
	s.logger.Info().
		Str("id", s.ID.String()).
		Stringer("mode", settings.Mode).
		Stringer("difficulty", settings.Difficulty).
		Stringer("user", settings.UserColour).
		Msg("new game")
	return s, nil
}

// Game returns the underlying game.
func (s *Session) Game() *engine.Game {
	return s.game
}

// Restart replaces the game with a fresh one using the same settings.
func (s *Session) Restart() error {
	g, err := engine.NewGame(s.Settings.HistoryCapacity())
	if err != nil {
		return err
	}
	s.game = g
	s.Saved = false
	s.logger.Info().Msg("game restarted")
	return nil
}

// SetSettings changes the settings of a running game. The history log is
// resized for the new difficulty, which clears it.
func (s *Session) SetSettings(settings config.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	if settings.HistoryCapacity() != s.game.HistoryCap() {
		board := s.game.Board()
		g, err := engine.NewGameFromBoard(&board, s.game.CurrentPlayer(), settings.HistoryCapacity())
		if err != nil {
			return err
		}
		s.game = g
	}
	s.Settings = settings
	return nil
}

// IsUserTurn reports whether a human should move next. In two player mode
// this is always true.
func (s *Session) IsUserTurn() bool {
	if s.Settings.Mode == config.TwoPlayer {
		return true
	}
	return s.game.CurrentPlayer() == s.Settings.UserColour
}

// trim keeps the undo history at config.VisibleHistory entries.
func (s *Session) trim() {
	s.game.TrimHistory(config.VisibleHistory)
}

// Move plays a move for the current player.
func (s *Session) Move(from, to chess.Square) (engine.MoveResult, error) {
	res, err := s.game.ApplyMove(from, to)
	s.trim()
	if err != nil {
		return res, err
	}
	s.Saved = false
	return res, nil
}

// Undo takes back the newest move.
func (s *Session) Undo() (engine.HistoryEntry, error) {
	e, err := s.game.UndoMove()
	if err != nil {
		return e, err
	}
	s.Saved = false
	return e, nil
}

// ComputerTurn searches at the configured difficulty and plays the move it
// finds.
func (s *Session) ComputerTurn() (chess.Move, error) {
	depth := s.Settings.Difficulty.Depth()
	m, err := s.searcher.SuggestMove(s.game, depth)
	if err != nil {
		return chess.Move{}, chesserrors.Wrap(err, "computer turn")
	}
	if _, err := s.game.ApplyMove(m.From, m.To); err != nil {
		return chess.Move{}, fmt.Errorf("computer move %v: %w", m, err)
	}
	s.trim()
	s.Saved = false
	s.logger.Info().
		Str("move", m.String()).
		Int("depth", depth).
		Int("nodes", s.searcher.Nodes()).
		Msg("computer moved")
	return m, nil
}

// Outcome reports whether the game continues, is drawn or is lost by the
// player to move.
func (s *Session) Outcome() engine.Outcome {
	return s.game.CheckWinner()
}
