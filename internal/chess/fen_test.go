package chess

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	chesserrors "github.com/lgbarn/minimax-chess-go/internal/errors"
)

func TestFEN(t *testing.T) {
	tests := []struct {
		name   string
		board  func() *Board
		toMove Colour
		want   string
	}{
		{
			name:   "initial position",
			board:  NewInitialBoard,
			toMove: White,
			want:   InitialFEN,
		},
		{
			name: "kings only, black to move",
			board: func() *Board {
				b := NewBoard()
				b.Set(Sq(0, 4), W(King))
				b.Set(Sq(7, 4), B(King))
				return b
			},
			toMove: Black,
			want:   "4k3/8/8/8/8/8/8/4K3 b - - 0 1",
		},
		{
			name: "after e4",
			board: func() *Board {
				b := NewInitialBoard()
				b.Set(Sq(1, 4), Empty)
				b.Set(Sq(3, 4), W(Pawn))
				return b
			},
			toMove: Black,
			want:   "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.board()
			if got := b.FEN(tt.toMove); got != tt.want {
				t.Errorf("FEN() = %q; want %q", got, tt.want)
			}

			parsed, toMove, err := ParseFEN(tt.want)
			if err != nil {
				t.Fatalf("ParseFEN(%q) error: %v", tt.want, err)
			}
			if toMove != tt.toMove {
				t.Errorf("ParseFEN side = %v; want %v", toMove, tt.toMove)
			}
			if diff := cmp.Diff(b, parsed); diff != "" {
				t.Errorf("ParseFEN mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseFENErrors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"too few ranks", "8/8/8/8/8/8/8 w - - 0 1"},
		{"bad piece", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w - - 0 1"},
		{"rank too long", "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"},
		{"rank too short", "rnbqkbn/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"},
		{"bad side", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x - - 0 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := ParseFEN(tt.fen); !errors.Is(err, chesserrors.ErrInvalidFEN) {
				t.Errorf("ParseFEN(%q) error = %v; want ErrInvalidFEN", tt.fen, err)
			}
		})
	}
}
