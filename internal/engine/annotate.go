package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// MoveKind annotates a candidate destination with its tactical meaning.
type MoveKind int

const (
	Invalid          MoveKind = iota // Not reachable by the piece
	Valid                            // Quiet move
	Capture                          // Captures an opposing piece
	Threat                           // The moved piece can be captured afterwards
	CaptureAndThreat                 // Both Capture and Threat
	KingThreat                       // Leaves or places the mover's king in check
)

// String returns a short name for the annotation.
func (k MoveKind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case Valid:
		return "valid"
	case Capture:
		return "capture"
	case Threat:
		return "threat"
	case CaptureAndThreat:
		return "capture-and-threat"
	case KingThreat:
		return "king-threat"
	}
	return "unknown"
}

// IsLegal reports whether a move with this annotation may be played.
func (k MoveKind) IsLegal() bool {
	return k != Invalid && k != KingThreat
}

// IsCapture reports whether the move captures.
func (k MoveKind) IsCapture() bool {
	return k == Capture || k == CaptureAndThreat
}

// Marker returns the console suffix for a legal move: "^" for a capture,
// "*" for a threat and "*^" for both.
func (k MoveKind) Marker() string {
	switch k {
	case Capture:
		return "^"
	case Threat:
		return "*"
	case CaptureAndThreat:
		return "*^"
	}
	return ""
}

// AnnotatedMoves holds one annotation per destination, indexed [row][col].
type AnnotatedMoves [chess.Rows][chess.Cols]MoveKind

// At returns the annotation of a destination. Squares off the board are
// Invalid.
func (a *AnnotatedMoves) At(s chess.Square) MoveKind {
	if !s.Valid() {
		return Invalid
	}
	return a[s.Row][s.Col]
}

// Legal returns the legal destinations in row-major order.
func (a *AnnotatedMoves) Legal() []chess.Square {
	var out []chess.Square
	for row := 0; row < chess.Rows; row++ {
		for col := 0; col < chess.Cols; col++ {
			if a[row][col].IsLegal() {
				out = append(out, chess.Sq(row, col))
			}
		}
	}
	return out
}

// HasLegal reports whether any destination is legal.
func (a *AnnotatedMoves) HasLegal() bool {
	for row := range a {
		for col := range a[row] {
			if a[row][col].IsLegal() {
				return true
			}
		}
	}
	return false
}

// annotate classifies every pseudo-legal destination of the piece on s by
// playing it on the board and taking it back. The history log is not
// touched.
func (g *Game) annotate(s chess.Square) AnnotatedMoves {
	var out AnnotatedMoves
	grid := PseudoLegalMoves(&g.board, s)

	for row := 0; row < chess.Rows; row++ {
		for col := 0; col < chess.Cols; col++ {
			if !grid[row][col] {
				continue
			}
			out[row][col] = g.classify(s, chess.Sq(row, col))
		}
	}
	return out
}

func (g *Game) classify(from, to chess.Square) MoveKind {
	mover := chess.ExtractColour(g.board.Get(from))
	captures := !g.board.IsEmpty(to)

	e := g.move(from, to)
	kingThreat := g.IsChecked(mover)
	pieceThreat := IsPieceThreatened(&g.board, to)
	g.unmove(e)

	switch {
	case kingThreat:
		return KingThreat
	case captures && pieceThreat:
		return CaptureAndThreat
	case captures:
		return Capture
	case pieceThreat:
		return Threat
	}
	return Valid
}
