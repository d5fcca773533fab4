package chess

import (
	"fmt"
	"strings"

	chesserrors "github.com/lgbarn/minimax-chess-go/internal/errors"
)

// Board is the 8x8 grid of cells, indexed [row][col]. The zero value is an
// empty board.
type Board struct {
	Squares [Rows][Cols]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board holding the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < Cols; col++ {
		b.Squares[0][col] = W(backRank[col])
		b.Squares[1][col] = W(Pawn)
		b.Squares[Rows-2][col] = B(Pawn)
		b.Squares[Rows-1][col] = B(backRank[col])
	}
}

// Get returns the piece on a square, or Empty if the square is off the board.
func (b *Board) Get(s Square) Piece {
	if !s.Valid() {
		return Empty
	}
	return b.Squares[s.Row][s.Col]
}

// Set places a piece on a square. Set on an invalid square is a no-op.
func (b *Board) Set(s Square, p Piece) {
	if !s.Valid() {
		return
	}
	b.Squares[s.Row][s.Col] = p
}

// IsEmpty reports whether the square holds no piece.
func (b *Board) IsEmpty(s Square) bool {
	return b.Get(s) == Empty
}

// Copy returns an independent copy of the board.
func (b *Board) Copy() *Board {
	c := *b
	return &c
}

// RotateAndInvert rotates the board by 180 degrees and swaps the colour of
// every piece. Applying it twice restores the original board.
func (b *Board) RotateAndInvert() {
	for row := 0; row < Rows/2; row++ {
		for col := 0; col < Cols; col++ {
			s := Sq(row, col)
			m := s.Mirror()
			b.Squares[s.Row][s.Col], b.Squares[m.Row][m.Col] =
				Invert(b.Squares[m.Row][m.Col]), Invert(b.Squares[s.Row][s.Col])
		}
	}
}

// FindKing returns the square of the king of the given colour.
func (b *Board) FindKing(c Colour) (Square, bool) {
	king := MakeColouredPiece(c, King)
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			if b.Squares[row][col] == king {
				return Sq(row, col), true
			}
		}
	}
	return Square{}, false
}

// Piece letters. Lowercase is white, uppercase is black.
const (
	EmptyLetter = '_'
)

var kindLetters = map[Piece]byte{
	Pawn:   'm',
	Knight: 'n',
	Bishop: 'b',
	Rook:   'r',
	Queen:  'q',
	King:   'k',
}

// Letter returns the board-serialization letter of a coloured piece:
// lowercase for white, uppercase for black and '_' for Empty.
func Letter(p Piece) byte {
	if p == Empty {
		return EmptyLetter
	}
	l, ok := kindLetters[ExtractPiece(p)]
	if !ok {
		return '?'
	}
	if ExtractColour(p) == Black {
		l -= 'a' - 'A'
	}
	return l
}

// PieceFromLetter is the inverse of Letter.
func PieceFromLetter(l byte) (Piece, bool) {
	if l == EmptyLetter {
		return Empty, true
	}
	colour := White
	if l >= 'A' && l <= 'Z' {
		colour = Black
		l += 'a' - 'A'
	}
	for kind, kl := range kindLetters {
		if kl == l {
			return MakeColouredPiece(colour, kind), true
		}
	}
	return Empty, false
}

// Board text layout.
const (
	FooterRule  = "  -----------------"
	FooterFiles = "   A B C D E F G H"
)

// RowLine formats one board row as "8| R N B Q K B N R |".
func (b *Board) RowLine(row int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d| ", row+1)
	for col := 0; col < Cols; col++ {
		sb.WriteByte(Letter(b.Squares[row][col]))
		sb.WriteByte(' ')
	}
	sb.WriteByte('|')
	return sb.String()
}

// String returns the board printed from rank 8 down to rank 1, followed by
// the file letters.
func (b *Board) String() string {
	var sb strings.Builder
	for row := Rows - 1; row >= 0; row-- {
		sb.WriteString(b.RowLine(row))
		sb.WriteByte('\n')
	}
	sb.WriteString(FooterRule)
	sb.WriteByte('\n')
	sb.WriteString(FooterFiles)
	sb.WriteByte('\n')
	return sb.String()
}

// ParseRowLine parses a line produced by RowLine. It returns the 0-based
// row index and the eight cells.
func ParseRowLine(line string) (int, [Cols]Piece, error) {
	var cells [Cols]Piece

	rank, rest, ok := strings.Cut(strings.TrimSpace(line), "|")
	if !ok || len(rank) != 1 || rank[0] < '1' || rank[0] > '8' {
		return 0, cells, fmt.Errorf("%w: bad row label in %q", chesserrors.ErrInvalidPiece, line)
	}
	rest = strings.TrimSuffix(strings.TrimSpace(rest), "|")
	fields := strings.Fields(rest)
	if len(fields) != Cols {
		return 0, cells, fmt.Errorf("%w: want %d cells, got %d", chesserrors.ErrInvalidPiece, Cols, len(fields))
	}
	for col, f := range fields {
		if len(f) != 1 {
			return 0, cells, fmt.Errorf("%w: %q", chesserrors.ErrInvalidPiece, f)
		}
		p, ok := PieceFromLetter(f[0])
		if !ok {
			return 0, cells, fmt.Errorf("%w: %q", chesserrors.ErrInvalidPiece, f)
		}
		cells[col] = p
	}
	return int(rank[0] - '1'), cells, nil
}

// SetRow replaces all cells of a row.
func (b *Board) SetRow(row int, cells [Cols]Piece) {
	if row < 0 || row >= Rows {
		return
	}
	b.Squares[row] = cells
}
