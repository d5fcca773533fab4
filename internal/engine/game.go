package engine

import (
	"fmt"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	chesserrors "github.com/lgbarn/minimax-chess-go/internal/errors"
)

// MoveResult reports how a successful ApplyMove changed the board.
type MoveResult int

const (
	Moved    MoveResult = iota // The piece moved to an empty square
	Captured                   // The piece captured an opposing piece
)

// String returns the result name.
func (r MoveResult) String() string {
	if r == Captured {
		return "captured"
	}
	return "moved"
}

// Outcome is the result of CheckWinner.
type Outcome int

const (
	Continue           Outcome = iota // The current player has a legal move
	Draw                              // No legal move and not in check
	CurrentPlayerLoses                // No legal move while in check
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Draw:
		return "draw"
	case CurrentPlayerLoses:
		return "current-player-loses"
	}
	return "unknown"
}

// Game owns a board, the player to move, both players' check flags and the
// history log. A Game is not safe for concurrent use, and a search running on
// it must not be interleaved with any other call.
type Game struct {
	board        chess.Board
	current      chess.Colour
	whiteChecked bool
	blackChecked bool
	history      *History
}

// NewGame creates a game in the standard starting position with a history
// log of the given capacity.
func NewGame(capacity int) (*Game, error) {
	return NewGameFromBoard(chess.NewInitialBoard(), chess.White, capacity)
}

// NewGameFromBoard creates a game from an arbitrary position. Both check
// flags are computed from the board and the history starts empty.
func NewGameFromBoard(board *chess.Board, toMove chess.Colour, capacity int) (*Game, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("history capacity %d: %w", capacity, chesserrors.ErrInvalidConfig)
	}
	g := &Game{
		board:   *board,
		current: toMove,
		history: NewHistory(capacity),
	}
	g.updateCheckFlags()
	return g, nil
}

// Board returns a copy of the current board.
func (g *Game) Board() chess.Board {
	return g.board
}

// Piece returns the piece on a square.
func (g *Game) Piece(s chess.Square) chess.Piece {
	return g.board.Get(s)
}

// CurrentPlayer returns the colour to move.
func (g *Game) CurrentPlayer() chess.Colour {
	return g.current
}

// OtherPlayer returns the colour not to move.
func (g *Game) OtherPlayer() chess.Colour {
	return g.current.Opposite()
}

// IsChecked returns the cached check flag of a colour.
func (g *Game) IsChecked(c chess.Colour) bool {
	if c == chess.White {
		return g.whiteChecked
	}
	return g.blackChecked
}

// IsCurrentPlayerChecked returns the check flag of the player to move.
func (g *Game) IsCurrentPlayerChecked() bool {
	return g.IsChecked(g.current)
}

// IsOwnPiece reports whether s holds a piece of the player to move.
func (g *Game) IsOwnPiece(s chess.Square) bool {
	return chess.IsColour(g.board.Get(s), g.current)
}

// HistoryLen returns the number of moves that can be undone.
func (g *Game) HistoryLen() int { return g.history.Len() }

// HistoryCap returns the capacity of the history log.
func (g *Game) HistoryCap() int { return g.history.Cap() }

// HistoryFree returns how many more moves fit in the history log.
func (g *Game) HistoryFree() int { return g.history.Free() }

// History returns the logged moves from oldest to newest.
func (g *Game) History() []HistoryEntry { return g.history.Entries() }

// LastMove returns the most recent history entry.
func (g *Game) LastMove() (HistoryEntry, bool) { return g.history.Last() }

// TrimHistory drops the oldest entries until at most limit remain and
// returns how many were dropped.
func (g *Game) TrimHistory(limit int) int {
	dropped := 0
	for g.history.Len() > limit && g.history.DropOldest() {
		dropped++
	}
	return dropped
}

func (g *Game) updateCheckFlags() {
	g.whiteChecked = IsKingThreatened(&g.board, chess.White)
	g.blackChecked = IsKingThreatened(&g.board, chess.Black)
}

// move relocates a piece, switches the player and recomputes both check
// flags. The returned entry reverses it through unmove.
func (g *Game) move(from, to chess.Square) HistoryEntry {
	e := HistoryEntry{
		From:         from,
		To:           to,
		Captured:     g.board.Get(to),
		WhiteChecked: g.whiteChecked,
		BlackChecked: g.blackChecked,
	}
	g.board.Set(to, g.board.Get(from))
	g.board.Set(from, chess.Empty)
	g.current = g.current.Opposite()
	g.updateCheckFlags()
	return e
}

func (g *Game) unmove(e HistoryEntry) {
	g.board.Set(e.From, g.board.Get(e.To))
	g.board.Set(e.To, e.Captured)
	g.current = g.current.Opposite()
	g.whiteChecked = e.WhiteChecked
	g.blackChecked = e.BlackChecked
}

// ForceApply plays a move without any legality check and logs it. It panics
// if the history log is full, which means the log was sized too small for
// the caller.
func (g *Game) ForceApply(from, to chess.Square) {
	if g.history.IsFull() {
		panic(fmt.Errorf("force apply %v -> %v: %w (capacity %d)", from, to, chesserrors.ErrHistoryFull, g.history.Cap()))
	}
	g.history.Push(g.move(from, to))
}

// ForceUndo reverses the newest logged move, restoring the check flags
// recorded with it. It panics on an empty history.
func (g *Game) ForceUndo() HistoryEntry {
	e, ok := g.history.Pop()
	if !ok {
		panic(fmt.Errorf("force undo: %w", chesserrors.ErrNoHistory))
	}
	g.unmove(e)
	return e
}

// AnnotatedMoves returns the annotation grid for the piece on s, which may
// belong to either player.
func (g *Game) AnnotatedMoves(s chess.Square) (AnnotatedMoves, error) {
	if !s.Valid() {
		return AnnotatedMoves{}, &chesserrors.MoveError{Err: chesserrors.ErrInvalidSquare, From: s}
	}
	if g.board.IsEmpty(s) {
		return AnnotatedMoves{}, &chesserrors.MoveError{Err: chesserrors.ErrInvalidPiece, From: s}
	}
	return g.annotate(s), nil
}

// ApplyMove plays a legal move of the current player. Errors are MoveErrors
// wrapping ErrInvalidSquare, ErrInvalidPiece, ErrIllegalMove, ErrKingThreat
// or ErrHistoryFull; on error the game is unchanged.
func (g *Game) ApplyMove(from, to chess.Square) (MoveResult, error) {
	fail := func(err error) (MoveResult, error) {
		return Moved, &chesserrors.MoveError{Err: err, From: from, To: to}
	}

	if !from.Valid() || !to.Valid() {
		return fail(chesserrors.ErrInvalidSquare)
	}
	if !g.IsOwnPiece(from) {
		return fail(chesserrors.ErrInvalidPiece)
	}

	moves := g.annotate(from)
	kind := moves.At(to)
	switch kind {
	case Invalid:
		return fail(chesserrors.ErrIllegalMove)
	case KingThreat:
		return fail(chesserrors.ErrKingThreat)
	}
	if g.history.IsFull() {
		return fail(chesserrors.ErrHistoryFull)
	}

	g.ForceApply(from, to)
	if kind.IsCapture() {
		return Captured, nil
	}
	return Moved, nil
}

// UndoMove reverses the newest logged move.
func (g *Game) UndoMove() (HistoryEntry, error) {
	if g.history.IsEmpty() {
		return HistoryEntry{}, chesserrors.ErrNoHistory
	}
	return g.ForceUndo(), nil
}

// LegalMoves returns every legal move of the current player. Origins are
// visited column by column and rows within a column, and destinations of
// each origin in the same order.
func (g *Game) LegalMoves() []chess.Move {
	var out []chess.Move
	for col := 0; col < chess.Cols; col++ {
		for row := 0; row < chess.Rows; row++ {
			from := chess.Sq(row, col)
			if !g.IsOwnPiece(from) {
				continue
			}
			moves := g.annotate(from)
			for dc := 0; dc < chess.Cols; dc++ {
				for dr := 0; dr < chess.Rows; dr++ {
					if moves[dr][dc].IsLegal() {
						out = append(out, chess.Move{From: from, To: chess.Sq(dr, dc)})
					}
				}
			}
		}
	}
	return out
}

// HasLegalMove reports whether the current player can move at all.
func (g *Game) HasLegalMove() bool {
	for row := 0; row < chess.Rows; row++ {
		for col := 0; col < chess.Cols; col++ {
			from := chess.Sq(row, col)
			if !g.IsOwnPiece(from) {
				continue
			}
			moves := g.annotate(from)
			if moves.HasLegal() {
				return true
			}
		}
	}
	return false
}

// CheckWinner reports whether the game continues, is drawn, or is lost by
// the player to move.
func (g *Game) CheckWinner() Outcome {
	if g.HasLegalMove() {
		return Continue
	}
	if g.IsCurrentPlayerChecked() {
		return CurrentPlayerLoses
	}
	return Draw
}
