package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// IsSquareAttacked returns true if any piece of colour by has a pseudo-legal
// move onto s. Attacks by black are found by mirroring the board and scanning
// white pieces.
func IsSquareAttacked(board *chess.Board, s chess.Square, by chess.Colour) bool {
	if !s.Valid() {
		return false
	}
	if by == chess.White {
		return attackedByWhite(board, s)
	}

	var attacked bool
	withMirroredBoard(board, func() {
		attacked = attackedByWhite(board, s.Mirror())
	})
	return attacked
}

func attackedByWhite(board *chess.Board, s chess.Square) bool {
	for row := 0; row < chess.Rows; row++ {
		for col := 0; col < chess.Cols; col++ {
			from := chess.Sq(row, col)
			if !chess.IsColour(board.Get(from), chess.White) {
				continue
			}
			grid := PseudoLegalMoves(board, from)
			if grid[s.Row][s.Col] {
				return true
			}
		}
	}
	return false
}

// IsKingThreatened returns true if the given colour's king is attacked.
// A board without that king is never in check.
func IsKingThreatened(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.FindKing(colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// IsPieceThreatened returns true if the piece on s is attacked by the
// opposite colour. An empty square is never threatened.
func IsPieceThreatened(board *chess.Board, s chess.Square) bool {
	p := board.Get(s)
	if p == chess.Empty {
		return false
	}
	return IsSquareAttacked(board, s, chess.ExtractColour(p).Opposite())
}
