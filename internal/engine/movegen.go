// Package engine provides move generation, threat detection and the
// reversible game state built on top of them.
package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// MoveGrid marks the destinations reachable from a square, indexed
// [row][col].
type MoveGrid [chess.Rows][chess.Cols]bool

// Count returns the number of marked destinations.
func (g *MoveGrid) Count() int {
	n := 0
	for row := range g {
		for col := range g[row] {
			if g[row][col] {
				n++
			}
		}
	}
	return n
}

// Rotate rotates the grid by 180 degrees in place.
func (g *MoveGrid) Rotate() {
	for row := 0; row < chess.Rows/2; row++ {
		for col := 0; col < chess.Cols; col++ {
			m := chess.Sq(row, col).Mirror()
			g[row][col], g[m.Row][m.Col] = g[m.Row][m.Col], g[row][col]
		}
	}
}

var (
	knightOffsets = [][2]int{{1, -2}, {2, -1}, {-1, -2}, {-2, -1}, {1, 2}, {2, 1}, {-1, 2}, {-2, 1}}
	kingOffsets   = [][2]int{{1, -1}, {1, 0}, {1, 1}, {-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}}
	bishopRays    = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	rookRays      = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
)

// withMirroredBoard runs fn with the board rotated by 180 degrees and its
// colours inverted. The board is restored on every exit path from fn.
func withMirroredBoard(board *chess.Board, fn func()) {
	board.RotateAndInvert()
	defer board.RotateAndInvert()
	fn()
}

// PseudoLegalMoves returns the destinations the piece on s can reach by its
// movement pattern, ignoring whether the move exposes its own king. Black
// pieces are handled by mirroring the board and reusing the white rules.
// An empty square yields an empty grid.
func PseudoLegalMoves(board *chess.Board, s chess.Square) MoveGrid {
	var grid MoveGrid
	p := board.Get(s)
	if p == chess.Empty {
		return grid
	}

	if chess.ExtractColour(p) == chess.White {
		whitePieceMoves(board, &grid, s)
		return grid
	}

	withMirroredBoard(board, func() {
		whitePieceMoves(board, &grid, s.Mirror())
	})
	grid.Rotate()
	return grid
}

// whitePieceMoves fills grid with the pseudo-legal moves of the white piece
// on s.
func whitePieceMoves(board *chess.Board, grid *MoveGrid, s chess.Square) {
	switch chess.ExtractPiece(board.Get(s)) {
	case chess.Pawn:
		whitePawnMoves(board, grid, s)
	case chess.Knight:
		offsetMoves(board, grid, s, knightOffsets)
	case chess.Bishop:
		rayMoves(board, grid, s, bishopRays)
	case chess.Rook:
		rayMoves(board, grid, s, rookRays)
	case chess.Queen:
		rayMoves(board, grid, s, bishopRays)
		rayMoves(board, grid, s, rookRays)
	case chess.King:
		offsetMoves(board, grid, s, kingOffsets)
	}
}

// whitePawnMoves: one step forward onto an empty square, two from the
// second rank when both squares are empty, and diagonal captures.
func whitePawnMoves(board *chess.Board, grid *MoveGrid, s chess.Square) {
	one := chess.Sq(s.Row+1, s.Col)
	if one.Valid() && board.IsEmpty(one) {
		grid[one.Row][one.Col] = true

		two := chess.Sq(s.Row+2, s.Col)
		if s.Row == 1 && board.IsEmpty(two) {
			grid[two.Row][two.Col] = true
		}
	}

	for _, dc := range []int{1, -1} {
		d := chess.Sq(s.Row+1, s.Col+dc)
		if d.Valid() && chess.IsColour(board.Get(d), chess.Black) {
			grid[d.Row][d.Col] = true
		}
	}
}

func rayMoves(board *chess.Board, grid *MoveGrid, s chess.Square, rays [][2]int) {
	for _, ray := range rays {
		for d := chess.Sq(s.Row+ray[0], s.Col+ray[1]); d.Valid(); d = chess.Sq(d.Row+ray[0], d.Col+ray[1]) {
			p := board.Get(d)
			if p == chess.Empty {
				grid[d.Row][d.Col] = true
				continue
			}
			if chess.IsColour(p, chess.Black) {
				grid[d.Row][d.Col] = true
			}
			break
		}
	}
}

func offsetMoves(board *chess.Board, grid *MoveGrid, s chess.Square, offsets [][2]int) {
	for _, off := range offsets {
		d := chess.Sq(s.Row+off[0], s.Col+off[1])
		if d.Valid() && !chess.IsColour(board.Get(d), chess.White) {
			grid[d.Row][d.Col] = true
		}
	}
}
