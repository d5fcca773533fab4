package search

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	chesserrors "github.com/lgbarn/minimax-chess-go/internal/errors"
)

// Terminal scores. They do not depend on the ply at which the game ends.
const (
	MateScore = 1000
	DrawScore = 0
)

// Result is a move together with its minimax value, scored for the player
// who started the search. Move is the zero Move at leaf and terminal nodes.
type Result struct {
	Move  chess.Move
	Value int
}

// Searcher runs minimax searches. A Searcher may be reused but not shared
// between goroutines.
type Searcher struct {
	logger zerolog.Logger
	nodes  int
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithLogger sets the logger used for search statistics.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Searcher) {
		s.logger = l
	}
}

// NewSearcher creates a Searcher. By default it does not log.
func NewSearcher(opts ...Option) *Searcher {
	s := &Searcher{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Nodes returns the number of positions visited by the last search.
func (s *Searcher) Nodes() int {
	return s.nodes
}

// Minimax searches depth plies ahead with fail-soft alpha-beta pruning.
// Moves are played on g with ForceApply and taken back with ForceUndo, so g
// must have at least depth free history slots and must not be touched by
// anything else until Minimax returns.
func (s *Searcher) Minimax(g *engine.Game, depth, alpha, beta int, maximizing bool) Result {
	s.nodes++

	if depth <= 0 {
		switch g.CheckWinner() {
		case engine.CurrentPlayerLoses:
			return terminal(engine.CurrentPlayerLoses, maximizing)
		case engine.Draw:
			return terminal(engine.Draw, maximizing)
		}
		favoured := g.CurrentPlayer()
		if !maximizing {
			favoured = g.OtherPlayer()
		}
		board := g.Board()
		return Result{Value: Material(&board, favoured)}
	}

	moves := g.LegalMoves()
	if len(moves) == 0 {
		if g.IsCurrentPlayerChecked() {
			return terminal(engine.CurrentPlayerLoses, maximizing)
		}
		return terminal(engine.Draw, maximizing)
	}

	best := Result{Value: math.MaxInt}
	if maximizing {
		best.Value = math.MinInt
	}

	for _, m := range moves {
		g.ForceApply(m.From, m.To)
		child := s.Minimax(g, depth-1, alpha, beta, !maximizing)
		g.ForceUndo()

		if maximizing {
			if child.Value > best.Value {
				best = Result{Move: m, Value: child.Value}
			}
			if best.Value > alpha {
				alpha = best.Value
			}
		} else {
			if child.Value < best.Value {
				best = Result{Move: m, Value: child.Value}
			}
			if best.Value < beta {
				beta = best.Value
			}
		}

		if beta <= alpha {
			return best
		}
	}
	return best
}

func terminal(outcome engine.Outcome, maximizing bool) Result {
	if outcome == engine.Draw {
		return Result{Value: DrawScore}
	}
	if maximizing {
		return Result{Value: -MateScore}
	}
	return Result{Value: MateScore}
}

// Search runs Minimax from the current position with the widest bounds.
// It fails with ErrInvalidConfig for a depth below one, ErrHistoryFull when
// g cannot hold depth more moves, and ErrNoLegalMoves when the player to
// move has no move.
func (s *Searcher) Search(g *engine.Game, depth int) (Result, error) {
	if depth < 1 {
		return Result{}, fmt.Errorf("search depth %d: %w", depth, chesserrors.ErrInvalidConfig)
	}
	if free := g.HistoryFree(); free < depth {
		return Result{}, fmt.Errorf("search depth %d needs %d free history slots, have %d: %w",
			depth, depth, free, chesserrors.ErrHistoryFull)
	}
	if !g.HasLegalMove() {
		return Result{}, chesserrors.ErrNoLegalMoves
	}

	s.nodes = 0
	start := time.Now()
	res := s.Minimax(g, depth, math.MinInt, math.MaxInt, true)

	s.logger.Debug().
		Str("player", g.CurrentPlayer().String()).
		Int("depth", depth).
		Int("nodes", s.nodes).
		Int("value", res.Value).
		Str("move", res.Move.String()).
		Dur("elapsed", time.Since(start)).
		Msg("search finished")
	return res, nil
}

// SuggestMove returns the best move for the player to move, searching depth
// plies ahead.
func (s *Searcher) SuggestMove(g *engine.Game, depth int) (chess.Move, error) {
	res, err := s.Search(g, depth)
	if err != nil {
		return chess.Move{}, err
	}
	return res.Move, nil
}

// SuggestMove is a convenience wrapper around a non-logging Searcher.
func SuggestMove(g *engine.Game, depth int) (chess.Move, error) {
	return NewSearcher().SuggestMove(g, depth)
}
