package search

import (
	"bytes"
	"math"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	chesserrors "github.com/lgbarn/minimax-chess-go/internal/errors"
	"github.com/lgbarn/minimax-chess-go/internal/testutil"
)

func mustGame(t *testing.T, fen string, capacity int) *engine.Game {
	t.Helper()
	board, toMove := testutil.MustFEN(t, fen)
	g, err := engine.NewGameFromBoard(board, toMove, capacity)
	if err != nil {
		t.Fatalf("NewGameFromBoard: %v", err)
	}
	return g
}

// exhaustive is minimax without pruning, used as the reference value.
func exhaustive(g *engine.Game, depth int, maximizing bool) int {
	if depth <= 0 {
		switch g.CheckWinner() {
		case engine.CurrentPlayerLoses:
			if maximizing {
				return -MateScore
			}
			return MateScore
		case engine.Draw:
			return DrawScore
		}
		favoured := g.CurrentPlayer()
		if !maximizing {
			favoured = g.OtherPlayer()
		}
		board := g.Board()
		return Material(&board, favoured)
	}

	moves := g.LegalMoves()
	if len(moves) == 0 {
		if !g.IsCurrentPlayerChecked() {
			return DrawScore
		}
		if maximizing {
			return -MateScore
		}
		return MateScore
	}

	best := math.MaxInt
	if maximizing {
		best = math.MinInt
	}
	for _, m := range moves {
		g.ForceApply(m.From, m.To)
		v := exhaustive(g, depth-1, !maximizing)
		g.ForceUndo()
		if (maximizing && v > best) || (!maximizing && v < best) {
			best = v
		}
	}
	return best
}

func TestMaterial(t *testing.T) {
	board := chess.NewInitialBoard()
	testutil.AssertEqual(t, Material(board, chess.White), 0)

	board, _ = testutil.MustFEN(t, testutil.HangingQueenFEN)
	testutil.AssertEqual(t, Material(board, chess.White), -4)
	testutil.AssertEqual(t, Material(board, chess.Black), 4)

	testutil.AssertEqual(t, PieceValue(chess.B(chess.King)), 100)
	testutil.AssertEqual(t, PieceValue(chess.W(chess.Knight)), 3)
	testutil.AssertEqual(t, PieceValue(chess.Empty), 0)
}

func TestSuggestMove(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		want  chess.Move
		value int
	}{
		{
			name:  "mate in one at depth 1",
			fen:   testutil.MateInOneFEN,
			depth: 1,
			want:  chess.Move{From: chess.Sq(0, 0), To: chess.Sq(7, 0)},
			value: MateScore,
		},
		{
			name:  "mate in one at depth 2",
			fen:   testutil.MateInOneFEN,
			depth: 2,
			want:  chess.Move{From: chess.Sq(0, 0), To: chess.Sq(7, 0)},
			value: MateScore,
		},
		{
			name:  "take the hanging queen",
			fen:   testutil.HangingQueenFEN,
			depth: 1,
			want:  chess.Move{From: chess.Sq(1, 3), To: chess.Sq(4, 3)},
			value: 5,
		},
		{
			name:  "take the hanging queen at depth 2",
			fen:   testutil.HangingQueenFEN,
			depth: 2,
			want:  chess.Move{From: chess.Sq(1, 3), To: chess.Sq(4, 3)},
			value: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGame(t, tt.fen, 8)
			res, err := NewSearcher().Search(g, tt.depth)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, res.Move, tt.want)
			testutil.AssertEqual(t, res.Value, tt.value)

			m, err := SuggestMove(g, tt.depth)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, m, tt.want)
		})
	}
}

func TestPruningMatchesExhaustive(t *testing.T) {
	tests := []struct {
		fen   string
		depth int
	}{
		{testutil.MiddlegameFEN, 2},
		{chess.InitialFEN, 2},
		{testutil.HangingQueenFEN, 3},
		{"8/2k5/3p4/p2P1p2/P2P1P2/8/3K4/8 w - - 0 1", 3},
	}
	for _, tt := range tests {
		t.Run(tt.fen, func(t *testing.T) {
			g := mustGame(t, tt.fen, 8)
			s := NewSearcher()
			res, err := s.Search(g, tt.depth)
			testutil.AssertNoError(t, err)
			pruned := s.Nodes()

			want := exhaustive(g, tt.depth, true)
			testutil.AssertEqual(t, res.Value, want)
			testutil.AssertTrue(t, pruned > 1, "nodes = %d", pruned)
		})
	}
}

func TestSearchLeavesGameUnchanged(t *testing.T) {
	g := mustGame(t, testutil.MiddlegameFEN, 4)
	board := g.Board()

	_, err := NewSearcher().Search(g, 2)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, g.Board(), board)
	testutil.AssertEqual(t, g.CurrentPlayer(), chess.White)
	testutil.AssertEqual(t, g.HistoryLen(), 0)
}

func TestSearchErrors(t *testing.T) {
	t.Run("depth below one", func(t *testing.T) {
		g := mustGame(t, chess.InitialFEN, 8)
		_, err := SuggestMove(g, 0)
		testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidConfig)
	})

	t.Run("history too small", func(t *testing.T) {
		g := mustGame(t, chess.InitialFEN, 2)
		_, err := SuggestMove(g, 3)
		testutil.AssertErrorIs(t, err, chesserrors.ErrHistoryFull)
	})

	t.Run("stalemate", func(t *testing.T) {
		g := mustGame(t, testutil.StalemateFEN, 8)
		_, err := SuggestMove(g, 1)
		testutil.AssertErrorIs(t, err, chesserrors.ErrNoLegalMoves)
	})

	t.Run("checkmate", func(t *testing.T) {
		g := mustGame(t, testutil.BackRankMateFEN, 8)
		_, err := SuggestMove(g, 2)
		testutil.AssertErrorIs(t, err, chesserrors.ErrNoLegalMoves)
	})
}

func TestMinimaxTerminalScores(t *testing.T) {
	s := NewSearcher()

	mated := mustGame(t, testutil.BackRankMateFEN, 4)
	testutil.AssertEqual(t, s.Minimax(mated, 3, math.MinInt, math.MaxInt, true).Value, -MateScore)
	testutil.AssertEqual(t, s.Minimax(mated, 0, math.MinInt, math.MaxInt, false).Value, MateScore)

	stalemate := mustGame(t, testutil.StalemateFEN, 4)
	testutil.AssertEqual(t, s.Minimax(stalemate, 2, math.MinInt, math.MaxInt, true).Value, DrawScore)
}

func TestSearchLogsStatistics(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	g := mustGame(t, testutil.HangingQueenFEN, 4)
	_, err := NewSearcher(WithLogger(logger)).Search(g, 1)
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, buf.String(), `"message":"search finished"`)
	testutil.AssertContains(t, buf.String(), `"depth":1`)
}
