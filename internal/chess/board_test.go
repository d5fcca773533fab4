package chess

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	chesserrors "github.com/lgbarn/minimax-chess-go/internal/errors"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			if got := b.Get(Sq(row, col)); got != Empty {
				t.Errorf("Get(%v) = %v; want Empty", Sq(row, col), got)
			}
		}
	}
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewInitialBoard()

	tests := []struct {
		name  string
		sq    Square
		piece Piece
	}{
		{"white rook a1", Sq(0, 0), W(Rook)},
		{"white knight b1", Sq(0, 1), W(Knight)},
		{"white bishop c1", Sq(0, 2), W(Bishop)},
		{"white queen d1", Sq(0, 3), W(Queen)},
		{"white king e1", Sq(0, 4), W(King)},
		{"white rook h1", Sq(0, 7), W(Rook)},
		{"white pawn a2", Sq(1, 0), W(Pawn)},
		{"white pawn h2", Sq(1, 7), W(Pawn)},
		{"black pawn e7", Sq(6, 4), B(Pawn)},
		{"black queen d8", Sq(7, 3), B(Queen)},
		{"black king e8", Sq(7, 4), B(King)},
		{"black knight g8", Sq(7, 6), B(Knight)},
		{"empty e3", Sq(2, 4), Empty},
		{"empty d5", Sq(4, 3), Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Get(tt.sq); got != tt.piece {
				t.Errorf("Get(%v) = %v; want %v", tt.sq, got, tt.piece)
			}
		})
	}
}

func TestBoardGetSet(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		b := NewBoard()
		b.Set(Sq(3, 4), B(Knight))
		if got := b.Get(Sq(3, 4)); got != B(Knight) {
			t.Errorf("Get(<4,E>) = %v; want black knight", got)
		}
	})

	t.Run("invalid squares", func(t *testing.T) {
		b := NewInitialBoard()
		b.Set(Sq(8, 0), W(Queen))
		b.Set(Sq(-1, 3), W(Queen))
		if got := b.Get(Sq(0, 8)); got != Empty {
			t.Errorf("Get(<1,I>) = %v; want Empty", got)
		}
		if diff := cmp.Diff(NewInitialBoard(), b); diff != "" {
			t.Errorf("Set on invalid square changed board (-want +got):\n%s", diff)
		}
	})
}

func TestSquare(t *testing.T) {
	tests := []struct {
		sq        Square
		valid     bool
		str       string
		algebraic string
		mirror    Square
	}{
		{Sq(0, 0), true, "<1,A>", "a1", Sq(7, 7)},
		{Sq(1, 4), true, "<2,E>", "e2", Sq(6, 3)},
		{Sq(7, 7), true, "<8,H>", "h8", Sq(0, 0)},
		{Sq(8, 0), false, "<9,A>", "a9", Sq(-1, 7)},
		{Sq(0, -1), false, "<1,@>", "`1", Sq(7, 8)},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if got := tt.sq.Valid(); got != tt.valid {
				t.Errorf("Valid() = %v; want %v", got, tt.valid)
			}
			if got := tt.sq.String(); got != tt.str {
				t.Errorf("String() = %q; want %q", got, tt.str)
			}
			if got := tt.sq.Algebraic(); got != tt.algebraic {
				t.Errorf("Algebraic() = %q; want %q", got, tt.algebraic)
			}
			if got := tt.sq.Mirror(); got != tt.mirror {
				t.Errorf("Mirror() = %v; want %v", got, tt.mirror)
			}
		})
	}
}

func TestColouredPieces(t *testing.T) {
	for kind := Pawn; kind < NumPieceKinds; kind++ {
		w, b := W(kind), B(kind)
		if ExtractPiece(w) != kind || ExtractPiece(b) != kind {
			t.Errorf("ExtractPiece lost kind %v", kind)
		}
		if !IsColour(w, White) || IsColour(w, Black) {
			t.Errorf("%v: IsColour wrong for white piece", kind)
		}
		if !IsColour(b, Black) || IsColour(b, White) {
			t.Errorf("%v: IsColour wrong for black piece", kind)
		}
		if Invert(w) != b || Invert(b) != w {
			t.Errorf("Invert(%v) did not swap colours", kind)
		}
		if got := w.String(); got != kind.String() {
			t.Errorf("W(%v).String() = %q; want %q", kind, got, kind.String())
		}
	}
	if IsColour(Empty, White) || IsColour(Empty, Black) {
		t.Error("Empty should have no colour")
	}
	if Invert(Empty) != Empty {
		t.Error("Invert(Empty) != Empty")
	}
}

func TestLetters(t *testing.T) {
	tests := []struct {
		piece  Piece
		letter byte
	}{
		{W(Pawn), 'm'},
		{W(Bishop), 'b'},
		{W(Rook), 'r'},
		{W(Knight), 'n'},
		{W(Queen), 'q'},
		{W(King), 'k'},
		{B(Pawn), 'M'},
		{B(Bishop), 'B'},
		{B(King), 'K'},
		{Empty, '_'},
	}
	for _, tt := range tests {
		if got := Letter(tt.piece); got != tt.letter {
			t.Errorf("Letter(%v) = %c; want %c", tt.piece, got, tt.letter)
		}
		got, ok := PieceFromLetter(tt.letter)
		if !ok || got != tt.piece {
			t.Errorf("PieceFromLetter(%c) = %v, %v; want %v, true", tt.letter, got, ok, tt.piece)
		}
	}
	if _, ok := PieceFromLetter('p'); ok {
		t.Error("PieceFromLetter('p') succeeded; pawns are 'm'")
	}
}

func TestRotateAndInvert(t *testing.T) {
	b := NewBoard()
	b.Set(Sq(0, 4), W(King))
	b.Set(Sq(1, 0), W(Pawn))
	b.Set(Sq(6, 6), B(Knight))

	rotated := b.Copy()
	rotated.RotateAndInvert()

	want := NewBoard()
	want.Set(Sq(7, 3), B(King))
	want.Set(Sq(6, 7), B(Pawn))
	want.Set(Sq(1, 1), W(Knight))
	if diff := cmp.Diff(want, rotated); diff != "" {
		t.Errorf("RotateAndInvert mismatch (-want +got):\n%s", diff)
	}

	rotated.RotateAndInvert()
	if diff := cmp.Diff(b, rotated); diff != "" {
		t.Errorf("RotateAndInvert twice is not identity (-want +got):\n%s", diff)
	}

	initial := NewInitialBoard()
	initial.RotateAndInvert()
	initial.Set(Sq(0, 3), W(Queen))
	initial.Set(Sq(0, 4), W(King))
	initial.Set(Sq(7, 3), B(Queen))
	initial.Set(Sq(7, 4), B(King))
	if diff := cmp.Diff(NewInitialBoard(), initial); diff != "" {
		t.Errorf("initial position should be mirror-symmetric apart from king and queen (-want +got):\n%s", diff)
	}
}

func TestFindKing(t *testing.T) {
	b := NewInitialBoard()
	if sq, ok := b.FindKing(White); !ok || sq != Sq(0, 4) {
		t.Errorf("FindKing(White) = %v, %v; want <1,E>, true", sq, ok)
	}
	if sq, ok := b.FindKing(Black); !ok || sq != Sq(7, 4) {
		t.Errorf("FindKing(Black) = %v, %v; want <8,E>, true", sq, ok)
	}
	if _, ok := NewBoard().FindKing(White); ok {
		t.Error("FindKing on empty board succeeded")
	}
}

func TestBoardString(t *testing.T) {
	want := strings.Join([]string{
		"8| R N B Q K B N R |",
		"7| M M M M M M M M |",
		"6| _ _ _ _ _ _ _ _ |",
		"5| _ _ _ _ _ _ _ _ |",
		"4| _ _ _ _ _ _ _ _ |",
		"3| _ _ _ _ _ _ _ _ |",
		"2| m m m m m m m m |",
		"1| r n b q k b n r |",
		"  -----------------",
		"   A B C D E F G H",
		"",
	}, "\n")
	if diff := cmp.Diff(want, NewInitialBoard().String()); diff != "" {
		t.Errorf("String() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRowLine(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		b := NewInitialBoard()
		got := NewBoard()
		for row := 0; row < Rows; row++ {
			idx, cells, err := ParseRowLine(b.RowLine(row))
			if err != nil {
				t.Fatalf("ParseRowLine(%q) error: %v", b.RowLine(row), err)
			}
			if idx != row {
				t.Errorf("row index = %d; want %d", idx, row)
			}
			got.SetRow(idx, cells)
		}
		if diff := cmp.Diff(b, got); diff != "" {
			t.Errorf("rows mismatch (-want +got):\n%s", diff)
		}
	})

	bad := []string{
		"",
		"9| _ _ _ _ _ _ _ _ |",
		"1| _ _ _ _ _ _ _ |",
		"1| _ _ _ _ _ _ _ p |",
		"1 _ _ _ _ _ _ _ _",
		"1| __ _ _ _ _ _ _ _ |",
	}
	for _, line := range bad {
		if _, _, err := ParseRowLine(line); !errors.Is(err, chesserrors.ErrInvalidPiece) {
			t.Errorf("ParseRowLine(%q) error = %v; want ErrInvalidPiece", line, err)
		}
	}
}

func TestMove(t *testing.T) {
	m := Move{From: Sq(1, 4), To: Sq(3, 4)}
	if got := m.String(); got != "<2,E> to <4,E>" {
		t.Errorf("String() = %q", got)
	}
	if got := m.UCI(); got != "e2e4" {
		t.Errorf("UCI() = %q; want e2e4", got)
	}
}
