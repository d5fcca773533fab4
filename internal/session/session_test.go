package session

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	chesserrors "github.com/lgbarn/minimax-chess-go/internal/errors"
	"github.com/lgbarn/minimax-chess-go/internal/testutil"
)

// newFromFEN starts a session on an arbitrary position.
func newFromFEN(t *testing.T, settings config.Settings, fen string) *Session {
	t.Helper()
	s, err := New(settings)
	testutil.AssertNoError(t, err)
	board, toMove := testutil.MustFEN(t, fen)
	s.game, err = engine.NewGameFromBoard(board, toMove, settings.HistoryCapacity())
	testutil.AssertNoError(t, err)
	return s
}

func TestNew(t *testing.T) {
	s, err := New(config.DefaultSettings())
	testutil.AssertNoError(t, err)

	testutil.AssertTrue(t, s.ID != uuid.Nil, "session id should be set")
	testutil.AssertTrue(t, s.Name != "", "session name should be set")
	testutil.AssertFalse(t, s.Saved)
	testutil.AssertEqual(t, s.Game().Board(), *chess.NewInitialBoard())
	testutil.AssertEqual(t, s.Game().CurrentPlayer(), chess.White)
	testutil.AssertEqual(t, s.Game().HistoryCap(), config.HistoryCapacity(config.Easy.Depth()))

	other, err := New(config.DefaultSettings(), WithName("quiet-heron"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, other.Name, "quiet-heron")
	testutil.AssertTrue(t, other.ID != s.ID, "ids should differ")
}

func TestNewInvalidSettings(t *testing.T) {
	_, err := New(config.Settings{Mode: config.SinglePlayer, Difficulty: 9})
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidConfig)
}

func TestIsUserTurn(t *testing.T) {
	tests := []struct {
		name     string
		settings config.Settings
		before   bool
		after    bool
	}{
		{"two player", config.Settings{Mode: config.TwoPlayer, Difficulty: config.Easy}, true, true},
		{"user white", config.Settings{Mode: config.SinglePlayer, Difficulty: config.Easy, UserColour: chess.White}, true, false},
		{"user black", config.Settings{Mode: config.SinglePlayer, Difficulty: config.Easy, UserColour: chess.Black}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.settings)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, s.IsUserTurn(), tt.before)
			s.Game().ForceApply(chess.Sq(1, 4), chess.Sq(3, 4))
			testutil.AssertEqual(t, s.IsUserTurn(), tt.after)
		})
	}
}

func TestMoveTrimsHistory(t *testing.T) {
	s, err := New(config.Settings{Mode: config.TwoPlayer, Difficulty: config.Amateur})
	testutil.AssertNoError(t, err)

	shuffle := []chess.Move{
		{From: chess.Sq(0, 1), To: chess.Sq(2, 2)},
		{From: chess.Sq(7, 1), To: chess.Sq(5, 2)},
		{From: chess.Sq(2, 2), To: chess.Sq(0, 1)},
		{From: chess.Sq(5, 2), To: chess.Sq(7, 1)},
	}
	for i := 0; i < 3; i++ {
		for _, m := range shuffle {
			res, err := s.Move(m.From, m.To)
			testutil.AssertNoError(t, err, "move %v", m)
			testutil.AssertEqual(t, res, engine.Moved)
			testutil.AssertTrue(t, s.Game().HistoryLen() <= config.VisibleHistory)
		}
	}
	testutil.AssertEqual(t, s.Game().HistoryLen(), config.VisibleHistory)
	testutil.AssertEqual(t, s.Game().Board(), *chess.NewInitialBoard())
}

func TestMoveError(t *testing.T) {
	s, err := New(config.DefaultSettings())
	testutil.AssertNoError(t, err)
	s.Saved = true

	_, err = s.Move(chess.Sq(1, 4), chess.Sq(4, 4))
	testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalMove)
	testutil.AssertTrue(t, s.Saved, "failed move should not mark the game changed")
	testutil.AssertEqual(t, s.Game().HistoryLen(), 0)

	_, err = s.Move(chess.Sq(6, 4), chess.Sq(4, 4))
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidPiece)
}

func TestUndo(t *testing.T) {
	s, err := New(config.DefaultSettings())
	testutil.AssertNoError(t, err)

	_, err = s.Undo()
	testutil.AssertErrorIs(t, err, chesserrors.ErrNoHistory)

	_, err = s.Move(chess.Sq(1, 4), chess.Sq(3, 4))
	testutil.AssertNoError(t, err)
	s.Saved = true

	e, err := s.Undo()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, e.Move(), chess.Move{From: chess.Sq(1, 4), To: chess.Sq(3, 4)})
	testutil.AssertFalse(t, s.Saved)
	testutil.AssertEqual(t, s.Game().Board(), *chess.NewInitialBoard())
}

func TestComputerTurnMateInOne(t *testing.T) {
	settings := config.Settings{Mode: config.SinglePlayer, Difficulty: config.Amateur, UserColour: chess.Black}
	s := newFromFEN(t, settings, testutil.MateInOneFEN)
	testutil.AssertFalse(t, s.IsUserTurn())

	m, err := s.ComputerTurn()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m, chess.Move{From: chess.Sq(0, 0), To: chess.Sq(7, 0)})
	testutil.AssertEqual(t, s.Outcome(), engine.CurrentPlayerLoses)
	testutil.AssertTrue(t, s.IsUserTurn())
}

func TestComputerTurnNoMoves(t *testing.T) {
	settings := config.Settings{Mode: config.SinglePlayer, Difficulty: config.Easy, UserColour: chess.White}
	s := newFromFEN(t, settings, testutil.StalemateFEN)

	_, err := s.ComputerTurn()
	testutil.AssertErrorIs(t, err, chesserrors.ErrNoLegalMoves)
	testutil.AssertEqual(t, s.Outcome(), engine.Draw)
}

func TestComputerTurnKeepsCapacity(t *testing.T) {
	for d := config.MinDifficulty; d <= config.Moderate; d++ {
		t.Run(d.String(), func(t *testing.T) {
			settings := config.Settings{Mode: config.SinglePlayer, Difficulty: d, UserColour: chess.Black}
			s, err := New(settings)
			testutil.AssertNoError(t, err)
			for i := 0; i < 5; i++ {
				_, err := s.ComputerTurn()
				testutil.AssertNoError(t, err, "computer turn %d", i)
				if s.Outcome() != engine.Continue {
					return
				}
				moves := s.Game().LegalMoves()
				_, err = s.Move(moves[0].From, moves[0].To)
				testutil.AssertNoError(t, err)
				testutil.AssertTrue(t, s.Game().HistoryLen() <= config.VisibleHistory)
				if s.Outcome() != engine.Continue {
					return
				}
			}
		})
	}
}

func TestRestart(t *testing.T) {
	s, err := New(config.DefaultSettings())
	testutil.AssertNoError(t, err)
	_, err = s.Move(chess.Sq(1, 4), chess.Sq(3, 4))
	testutil.AssertNoError(t, err)
	id := s.ID

	testutil.AssertNoError(t, s.Restart())
	testutil.AssertEqual(t, s.Game().Board(), *chess.NewInitialBoard())
	testutil.AssertEqual(t, s.Game().HistoryLen(), 0)
	testutil.AssertEqual(t, s.ID, id)
}

func TestSetSettings(t *testing.T) {
	s, err := New(config.DefaultSettings())
	testutil.AssertNoError(t, err)
	_, err = s.Move(chess.Sq(1, 4), chess.Sq(3, 4))
	testutil.AssertNoError(t, err)
	board := s.Game().Board()

	hard := config.Settings{Mode: config.SinglePlayer, Difficulty: config.Hard, UserColour: chess.Black}
	testutil.AssertNoError(t, s.SetSettings(hard))
	testutil.AssertEqual(t, s.Settings, hard)
	testutil.AssertEqual(t, s.Game().HistoryCap(), hard.HistoryCapacity())
	testutil.AssertEqual(t, s.Game().Board(), board)
	testutil.AssertEqual(t, s.Game().CurrentPlayer(), chess.Black)

	err = s.SetSettings(config.Settings{Mode: 0, Difficulty: config.Easy})
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidConfig)
	testutil.AssertEqual(t, s.Settings, hard)
}

func TestSessionLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	settings := config.Settings{Mode: config.SinglePlayer, Difficulty: config.Amateur, UserColour: chess.Black}
	s, err := New(settings, WithLogger(logger), WithName("brave-otter"))
	testutil.AssertNoError(t, err)
	_, err = s.ComputerTurn()
	testutil.AssertNoError(t, err)

	out := buf.String()
	testutil.AssertContains(t, out, `"message":"new game"`)
	testutil.AssertContains(t, out, `"message":"computer moved"`)
	testutil.AssertContains(t, out, `"message":"search finished"`)
	testutil.AssertEqual(t, strings.Count(out, `"game":"brave-otter"`), strings.Count(out, "\n"))
}
