// Package errors provides sentinel errors and error types for the chess engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidSquare indicates a square outside the 8x8 board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidPiece indicates the square does not hold a piece the caller may use.
	ErrInvalidPiece = errors.New("invalid piece")

	// ErrIllegalMove indicates a destination the piece cannot reach.
	ErrIllegalMove = errors.New("illegal move")

	// ErrKingThreat indicates a move that would leave the mover's king in check.
	ErrKingThreat = errors.New("move leaves king threatened")

	// ErrNoHistory indicates an undo with an empty history log.
	ErrNoHistory = errors.New("no history")

	// ErrHistoryFull indicates the history log has no free slot.
	ErrHistoryFull = errors.New("history full")

	// ErrNoLegalMoves indicates the side to move has nothing to play.
	ErrNoLegalMoves = errors.New("no legal moves")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidSave indicates a malformed save file.
	ErrInvalidSave = errors.New("invalid save file")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")
)

// Square is the minimal square shape MoveError needs for formatting.
// It is satisfied by chess.Square without importing it.
type Square interface {
	String() string
}

// MoveError wraps a move failure with the squares involved.
type MoveError struct {
	Err  error  // The underlying error
	From Square // Origin square (may be nil)
	To   Square // Destination square (may be nil)
}

// Error returns a formatted error message including the move squares.
func (e *MoveError) Error() string {
	var parts []string
	if e.From != nil {
		parts = append(parts, "from "+e.From.String())
	}
	if e.To != nil {
		parts = append(parts, "to "+e.To.String())
	}

	context := "move"
	if len(parts) > 0 {
		context = "move " + strings.Join(parts, " ")
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// SaveError represents a save/load failure with file location context.
type SaveError struct {
	Err  error  // The underlying error
	Path string // Save file path (if known)
	Line int    // Line number (1-based, 0 if not applicable)
	Got  string // Offending text (if any)
}

// Error returns a formatted error message with location and context.
func (e *SaveError) Error() string {
	var parts []string

	if e.Path != "" {
		loc := e.Path
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
		}
		parts = append(parts, loc)
	} else if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "save error"
}

// Unwrap returns the underlying error.
func (e *SaveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
