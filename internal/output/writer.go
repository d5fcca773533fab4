// Package output formats batch advisor results as text or JSON.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/worker"
)

// AdviceWriter is the interface for writing advisor results.
// Different implementations handle different output formats (text, JSON).
type AdviceWriter interface {
	// WriteAdvice writes a single result to the output.
	WriteAdvice(adv worker.Advice) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// Format selects an AdviceWriter implementation.
type Format int

const (
	FormatText      Format = iota
	FormatJSON             // One JSON array of all results
	FormatJSONLines        // One JSON object per line
)

// NewWriter returns the AdviceWriter for format.
func NewWriter(w io.Writer, format Format) AdviceWriter {
	switch format {
	case FormatJSON:
		return NewJSONWriter(w)
	case FormatJSONLines:
		return NewJSONWriterSingle(w)
	}
	return NewTextWriter(w)
}

// WriteAll writes every result through aw and closes it. It returns the
// number of results carrying an error.
func WriteAll(aw AdviceWriter, results []worker.Advice) (int, error) {
	failed := 0
	for _, adv := range results {
		if adv.Err != nil {
			failed++
		}
		if err := aw.WriteAdvice(adv); err != nil {
			return failed, err
		}
	}
	return failed, aw.Close()
}

// TextWriter writes one line per result.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteAdvice writes a result line.
func (tw *TextWriter) WriteAdvice(adv worker.Advice) error {
	var err error
	switch {
	case adv.Err != nil:
		_, err = fmt.Fprintf(tw.w, "%s: error: %v\n", adv.Path, adv.Err)
	case adv.Outcome == engine.Draw:
		_, err = fmt.Fprintf(tw.w, "%s: draw, %s has no legal move\n", adv.Path, adv.ToMove)
	case adv.Outcome == engine.CurrentPlayerLoses:
		_, err = fmt.Fprintf(tw.w, "%s: checkmate, %s wins\n", adv.Path, adv.ToMove.Opposite())
	default:
		_, err = fmt.Fprintf(tw.w, "%s: %s to move: %s (%s) value %d, depth %d, %d nodes\n",
			adv.Path, adv.ToMove, adv.Move, adv.Move.UCI(), adv.Value, adv.Depth, adv.Nodes)
	}
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}
