package chess

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	chesserrors "github.com/lgbarn/minimax-chess-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position, with
// castling rights cleared since castling is not played.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// FEN piece characters (uppercase, always English).
var fenPieceChars = map[Piece]byte{
	Pawn:   'P',
	Knight: 'N',
	Bishop: 'B',
	Rook:   'R',
	Queen:  'Q',
	King:   'K',
}

// fenLetter returns the FEN letter for a coloured piece. FEN uses uppercase
// for white, the opposite of the board serialization alphabet.
func fenLetter(p Piece) byte {
	l, ok := fenPieceChars[ExtractPiece(p)]
	if !ok {
		return '?'
	}
	if ExtractColour(p) == Black {
		l = byte(unicode.ToLower(rune(l)))
	}
	return l
}

// FEN returns the position in Forsyth-Edwards Notation. Castling and en
// passant fields are always "-".
func (b *Board) FEN(toMove Colour) string {
	var sb strings.Builder
	for row := Rows - 1; row >= 0; row-- {
		empty := 0
		for col := 0; col < Cols; col++ {
			p := b.Squares[row][col]
			if p == Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(fenLetter(p))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
	side := "w"
	if toMove == Black {
		side = "b"
	}
	fmt.Fprintf(&sb, " %s - - 0 1", side)
	return sb.String()
}

// ParseFEN parses the placement and side-to-move fields of a FEN string.
// Remaining fields are accepted and ignored.
func ParseFEN(fen string) (*Board, Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, White, fmt.Errorf("empty FEN string: %w", chesserrors.ErrInvalidFEN)
	}

	board := NewBoard()
	if err := parsePlacement(board, parts[0]); err != nil {
		return nil, White, err
	}

	toMove := White
	if len(parts) >= 2 {
		switch parts[1] {
		case "w":
		case "b":
			toMove = Black
		default:
			return nil, White, fmt.Errorf("invalid side to move: %s: %w", parts[1], chesserrors.ErrInvalidFEN)
		}
	}
	return board, toMove, nil
}

func parsePlacement(board *Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != Rows {
		return fmt.Errorf("want %d ranks, got %d: %w", Rows, len(ranks), chesserrors.ErrInvalidFEN)
	}

	for i, rank := range ranks {
		row := Rows - 1 - i
		col := 0
		for _, c := range rank {
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			kind := Empty
			for k, l := range fenPieceChars {
				if rune(l) == unicode.ToUpper(c) {
					kind = k
					break
				}
			}
			if kind == Empty {
				return fmt.Errorf("invalid piece character: %c: %w", c, chesserrors.ErrInvalidFEN)
			}
			if col >= Cols {
				return fmt.Errorf("position out of bounds: %w", chesserrors.ErrInvalidFEN)
			}
			colour := White
			if unicode.IsLower(c) {
				colour = Black
			}
			board.Squares[row][col] = MakeColouredPiece(colour, kind)
			col++
		}
		if col != Cols {
			return fmt.Errorf("rank %d has %d files: %w", row+1, col, chesserrors.ErrInvalidFEN)
		}
	}
	return nil
}
