// Package search suggests moves with a depth-bounded minimax search using
// alpha-beta pruning.
package search

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// Material values per piece kind.
var pieceValues = [chess.NumPieceKinds]int{
	chess.Empty:  0,
	chess.Pawn:   1,
	chess.Knight: 3,
	chess.Bishop: 3,
	chess.Rook:   5,
	chess.Queen:  9,
	chess.King:   100,
}

// PieceValue returns the material value of a piece of either colour.
func PieceValue(p chess.Piece) int {
	kind := chess.ExtractPiece(p)
	if kind < 0 || kind >= chess.NumPieceKinds {
		return 0
	}
	return pieceValues[kind]
}

// Material returns the material balance of the board from the point of view
// of favoured: its material minus the opponent's.
func Material(board *chess.Board, favoured chess.Colour) int {
	score := 0
	for row := 0; row < chess.Rows; row++ {
		for col := 0; col < chess.Cols; col++ {
			p := board.Squares[row][col]
			if p == chess.Empty {
				continue
			}
			if chess.ExtractColour(p) == favoured {
				score += PieceValue(p)
			} else {
				score -= PieceValue(p)
			}
		}
	}
	return score
}
