package worker

import (
	"github.com/rs/zerolog"

	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/hashing"
	"github.com/lgbarn/minimax-chess-go/internal/search"
	"github.com/lgbarn/minimax-chess-go/internal/session"
)

// AdvisorOption configures an Advisor.
type AdvisorOption func(*advisor)

type advisor struct {
	cache *hashing.ThreadSafePositionCache
}

// WithCache shares search results between games reaching the same position.
func WithCache(cache *hashing.ThreadSafePositionCache) AdvisorOption {
	return func(a *advisor) {
		a.cache = cache
	}
}

// Advisor returns a ProcessFunc that loads a save file and suggests a move
// for the player to move. A depth above zero overrides the difficulty stored
// in the file.
func Advisor(depth int, logger zerolog.Logger, opts ...AdvisorOption) ProcessFunc {
	a := &advisor{}
	for _, opt := range opts {
		opt(a)
	}

	return func(item WorkItem) Advice {
		adv := Advice{Path: item.Path, Index: item.Index}
		log := logger.With().Str("path", item.Path).Logger()

		sess, err := session.LoadFile(item.Path, session.WithLogger(log))
		if err != nil {
			adv.Err = err
			log.Info().Err(err).Msg("load failed")
			return adv
		}
		g := sess.Game()
		adv.GameID = sess.ID.String()
		adv.GameName = sess.Name
		adv.ToMove = g.CurrentPlayer()
		board := g.Board()
		adv.FEN = board.FEN(adv.ToMove)
		adv.Depth = sess.Settings.Difficulty.Depth()
		if depth > 0 {
			adv.Depth = depth
		}

		adv.Outcome = g.CheckWinner()
		if adv.Outcome != engine.Continue {
			return adv
		}

		if a.cache != nil {
			if hit, ok := a.cache.Lookup(&board, adv.ToMove, adv.Depth); ok {
				adv.Move, adv.Value, adv.Nodes = hit.Move, hit.Value, hit.Nodes
				adv.Cached = true
				log.Debug().Str("move", hit.Move.String()).Msg("cache hit")
				return adv
			}
		}

		s := search.NewSearcher(search.WithLogger(log))
		res, err := s.Search(g, adv.Depth)
		if err != nil {
			adv.Err = err
			return adv
		}
		adv.Move = res.Move
		adv.Value = res.Value
		adv.Nodes = s.Nodes()
		if a.cache != nil {
			a.cache.Store(&board, adv.ToMove, adv.Depth, hashing.Result{Move: adv.Move, Value: adv.Value, Nodes: adv.Nodes})
		}
		log.Info().Str("move", res.Move.String()).Int("value", res.Value).Msg("advice ready")
		return adv
	}
}
