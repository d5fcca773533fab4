package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// HistoryEntry records everything needed to reverse one move.
type HistoryEntry struct {
	From     chess.Square
	To       chess.Square
	Captured chess.Piece

	// Check flags of both players immediately before the move.
	WhiteChecked bool
	BlackChecked bool
}

// Move returns the move the entry records.
func (e HistoryEntry) Move() chess.Move {
	return chess.Move{From: e.From, To: e.To}
}

// History is a fixed-capacity log of history entries backed by a ring
// buffer. Push and Pop work at the newest end, DropOldest at the other.
type History struct {
	entries []HistoryEntry
	start   int
	size    int
}

// NewHistory creates an empty log holding at most capacity entries.
func NewHistory(capacity int) *History {
	if capacity < 0 {
		capacity = 0
	}
	return &History{entries: make([]HistoryEntry, capacity)}
}

// Cap returns the capacity of the log.
func (h *History) Cap() int { return len(h.entries) }

// Len returns the number of entries in the log.
func (h *History) Len() int { return h.size }

// IsEmpty reports whether the log holds no entries.
func (h *History) IsEmpty() bool { return h.size == 0 }

// IsFull reports whether another Push would fail.
func (h *History) IsFull() bool { return h.size == len(h.entries) }

// Free returns the number of entries that can still be pushed.
func (h *History) Free() int { return len(h.entries) - h.size }

// Push appends an entry. It returns false when the log is full.
func (h *History) Push(e HistoryEntry) bool {
	if h.IsFull() {
		return false
	}
	h.entries[(h.start+h.size)%len(h.entries)] = e
	h.size++
	return true
}

// Last returns the newest entry.
func (h *History) Last() (HistoryEntry, bool) {
	if h.size == 0 {
		return HistoryEntry{}, false
	}
	return h.entries[(h.start+h.size-1)%len(h.entries)], true
}

// Pop removes and returns the newest entry.
func (h *History) Pop() (HistoryEntry, bool) {
	e, ok := h.Last()
	if ok {
		h.size--
	}
	return e, ok
}

// DropOldest removes the oldest entry. It returns false when the log is empty.
func (h *History) DropOldest() bool {
	if h.size == 0 {
		return false
	}
	h.entries[h.start] = HistoryEntry{}
	h.start = (h.start + 1) % len(h.entries)
	h.size--
	return true
}

// Entries returns the entries from oldest to newest.
func (h *History) Entries() []HistoryEntry {
	out := make([]HistoryEntry, 0, h.size)
	for i := 0; i < h.size; i++ {
		out = append(out, h.entries[(h.start+i)%len(h.entries)])
	}
	return out
}
