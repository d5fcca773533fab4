package testutil

import (
	"testing"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

// MustBoard builds a board from eight rows of eight letters written from
// rank 8 down to rank 1, in the board serialization alphabet ('_' for an
// empty square, lowercase white, uppercase black). Spaces are ignored.
// It calls t.Fatal on malformed input.
func MustBoard(t testing.TB, rows ...string) *chess.Board {
	t.Helper()
	if len(rows) != chess.Rows {
		t.Fatalf("MustBoard: got %d rows, want %d", len(rows), chess.Rows)
	}
	b := chess.NewBoard()
	for i, line := range rows {
		row := chess.Rows - 1 - i
		col := 0
		for j := 0; j < len(line); j++ {
			if line[j] == ' ' {
				continue
			}
			p, ok := chess.PieceFromLetter(line[j])
			if !ok || col >= chess.Cols {
				t.Fatalf("MustBoard: bad row %d %q", row+1, line)
			}
			b.Set(chess.Sq(row, col), p)
			col++
		}
		if col != chess.Cols {
			t.Fatalf("MustBoard: row %d %q has %d cells", row+1, line, col)
		}
	}
	return b
}

// MustFEN parses a FEN string, calling t.Fatal on error.
func MustFEN(t testing.TB, fen string) (*chess.Board, chess.Colour) {
	t.Helper()
	b, toMove, err := chess.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return b, toMove
}

// Common positions. None of them involve castling, en passant or promotion.
const (
	// BackRankMateFEN: black to move is mated by the rook on a8.
	BackRankMateFEN = "R5k1/5ppp/8/8/8/8/5PPP/6K1 b - - 0 1"

	// StalemateFEN: black to move has no legal move and is not in check.
	StalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"

	// MateInOneFEN: white to move mates with Ra8.
	MateInOneFEN = "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1"

	// MiddlegameFEN is a quiet position with pieces of every kind.
	MiddlegameFEN = "r1bqk2r/ppp2ppp/2np1n2/2b1p3/2B1P3/2NP1N2/PPP2PPP/R1BQK2R w - - 0 1"

	// HangingQueenFEN: white to move can capture an undefended queen on d5.
	HangingQueenFEN = "4k3/8/8/3q4/8/8/3R4/4K3 w - - 0 1"
)
