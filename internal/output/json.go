package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/worker"
)

// JSONAdvice represents an advisor result in JSON format.
type JSONAdvice struct {
	Path     string    `json:"path"`
	GameID   string    `json:"gameId,omitempty"`
	GameName string    `json:"gameName,omitempty"`
	FEN      string    `json:"fen,omitempty"`
	ToMove   string    `json:"toMove,omitempty"`
	Outcome  string    `json:"outcome,omitempty"`
	Depth    int       `json:"depth,omitempty"`
	Move     *JSONMove `json:"move,omitempty"`
	Value    int       `json:"value,omitempty"`
	Nodes    int       `json:"nodes,omitempty"`
	Cached   bool      `json:"cached,omitempty"`
	Error    string    `json:"error,omitempty"`
}

// JSONMove represents a suggested move in JSON format.
type JSONMove struct {
	From string `json:"from"` // e.g. "<2,E>"
	To   string `json:"to"`
	UCI  string `json:"uci"`
}

// JSONOutput holds multiple results for array output.
type JSONOutput struct {
	Results []*JSONAdvice `json:"results"`
}

// AdviceToJSON converts an advisor result to JSON format.
func AdviceToJSON(adv worker.Advice) *JSONAdvice {
	ja := &JSONAdvice{Path: adv.Path}
	if adv.Err != nil {
		ja.Error = adv.Err.Error()
		return ja
	}

	ja.GameID = adv.GameID
	ja.GameName = adv.GameName
	ja.FEN = adv.FEN
	ja.ToMove = adv.ToMove.String()
	ja.Outcome = adv.Outcome.String()
	if adv.Outcome == engine.Continue {
		ja.Depth = adv.Depth
		ja.Move = &JSONMove{
			From: adv.Move.From.String(),
			To:   adv.Move.To.String(),
			UCI:  adv.Move.UCI(),
		}
		ja.Value = adv.Value
		ja.Nodes = adv.Nodes
		ja.Cached = adv.Cached
	}
	return ja
}

// JSONWriter writes results in JSON format.
// It buffers results and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	results []*JSONAdvice
	single  bool // If true, write each result immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches results and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:       w,
		results: make([]*JSONAdvice, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each result
// immediately, one object per line.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteAdvice buffers a result for JSON output (or writes immediately in
// single mode).
func (jw *JSONWriter) WriteAdvice(adv worker.Advice) error {
	if jw.single {
		return json.NewEncoder(jw.w).Encode(AdviceToJSON(adv))
	}

	jw.results = append(jw.results, AdviceToJSON(adv))
	return nil
}

// Flush writes all buffered results as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.results) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Results: jw.results})

	// Clear buffer after writing
	jw.results = jw.results[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
