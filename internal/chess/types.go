// Package chess provides the board model: colours, pieces, squares, moves
// and the 8x8 board itself.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the lowercase name of a colour, as used in game messages
// and save files.
func (c Colour) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ParseColour converts "white" or "black" to a Colour.
func ParseColour(s string) (Colour, bool) {
	switch s {
	case "white":
		return White, true
	case "black":
		return Black, true
	}
	return White, false
}

// Piece represents a chess piece. The kind occupies the high bits and the
// colour the low bit; see MakeColouredPiece.
type Piece int

const (
	Empty Piece = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceKinds
)

// String returns the lowercase name of a piece kind.
func (p Piece) String() string {
	names := []string{"empty", "pawn", "knight", "bishop", "rook", "queen", "king"}
	k := ExtractPiece(p)
	if p < NumPieceKinds {
		k = p
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value. White is colour zero,
// so MakeColouredPiece(White, Empty) == Empty.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
// The result is meaningless for Empty.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece kind from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}

// IsColour reports whether p is a piece of colour c. Empty is neither colour.
func IsColour(p Piece, c Colour) bool {
	return p != Empty && ExtractColour(p) == c
}

// Invert swaps the colour of a coloured piece. Empty is unchanged.
func Invert(p Piece) Piece {
	if p == Empty {
		return Empty
	}
	return MakeColouredPiece(ExtractColour(p).Opposite(), ExtractPiece(p))
}

// Board dimensions.
const (
	BoardSize = 8
	Rows      = BoardSize
	Cols      = BoardSize
)

// Square is a (row, column) pair. Row 0 is the rank nearest the white
// start position and column 0 is file A.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{row, col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < Rows && s.Col >= 0 && s.Col < Cols
}

// Mirror returns the square under a 180 degree board rotation.
func (s Square) Mirror() Square {
	return Square{Row: Rows - 1 - s.Row, Col: Cols - 1 - s.Col}
}

// String formats the square as "<row,COL>" with a 1-based row and a file
// letter, e.g. "<2,E>".
func (s Square) String() string {
	return fmt.Sprintf("<%d,%c>", s.Row+1, 'A'+rune(s.Col))
}

// Algebraic returns the square in lowercase algebraic notation, e.g. "e2".
func (s Square) Algebraic() string {
	return fmt.Sprintf("%c%d", 'a'+rune(s.Col), s.Row+1)
}

// ParseAlgebraic parses a square such as "e2".
func ParseAlgebraic(s string) (Square, bool) {
	if len(s) != 2 {
		return Square{}, false
	}
	sq := Square{Row: int(s[1] - '1'), Col: int(s[0] - 'a')}
	return sq, sq.Valid()
}

// Move is an (origin, destination) pair.
type Move struct {
	From Square
	To   Square
}

// String formats the move as "<r,C> to <r,C>".
func (m Move) String() string {
	return m.From.String() + " to " + m.To.String()
}

// UCI returns the move in coordinate notation, e.g. "e2e4".
func (m Move) UCI() string {
	return m.From.Algebraic() + m.To.Algebraic()
}
