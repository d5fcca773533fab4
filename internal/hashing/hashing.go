// Package hashing provides position hashing and a cache of search results
// keyed by position.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

// pieceSlots covers every coloured piece encoding up to a black king.
const pieceSlots = (int(chess.King)<<chess.PieceShift | int(chess.Black)) + 1

var (
	zobristPieces [chess.Rows * chess.Cols][pieceSlots]uint64
	zobristBlack  uint64
)

func init() {
	// Fixed seed so hashes are stable between runs.
	r := rand.New(rand.NewSource(0x5eed)) //nolint:gosec // G404: not used for security
	for sq := range zobristPieces {
		for p := range zobristPieces[sq] {
			zobristPieces[sq][p] = r.Uint64()
		}
	}
	zobristBlack = r.Uint64()
}

// GenerateZobristHash returns the Zobrist hash of a position with toMove
// to play. Empty squares contribute nothing.
func GenerateZobristHash(b *chess.Board, toMove chess.Colour) uint64 {
	var hash uint64
	for row := 0; row < chess.Rows; row++ {
		for col := 0; col < chess.Cols; col++ {
			if p := b.Squares[row][col]; p != chess.Empty {
				hash ^= zobristPieces[row*chess.Cols+col][p]
			}
		}
	}
	if toMove == chess.Black {
		hash ^= zobristBlack
	}
	return hash
}

// Result is a cached search result.
type Result struct {
	Move  chess.Move
	Value int
	Nodes int
}

// entry stores the full position so hash collisions never return a wrong
// result.
type entry struct {
	squares [chess.Rows][chess.Cols]chess.Piece
	toMove  chess.Colour
	depth   int
	result  Result
}

// PositionCache remembers search results by position and depth.
type PositionCache struct {
	// table maps a Zobrist hash to the entries sharing it
	table map[uint64][]entry
	// maxCapacity limits stored entries (0 = unlimited)
	maxCapacity int
	size        int
	hits        int
}

// NewPositionCache creates a new cache. maxCapacity of 0 means unlimited
// capacity.
func NewPositionCache(maxCapacity int) *PositionCache {
	return &PositionCache{
		table:       make(map[uint64][]entry),
		maxCapacity: maxCapacity,
	}
}

func (e *entry) matches(b *chess.Board, toMove chess.Colour, depth int) bool {
	return e.squares == b.Squares && e.toMove == toMove && e.depth == depth
}

// Lookup returns the result stored for the position searched at depth.
func (c *PositionCache) Lookup(b *chess.Board, toMove chess.Colour, depth int) (Result, bool) {
	hash := GenerateZobristHash(b, toMove)
	for i := range c.table[hash] {
		if e := &c.table[hash][i]; e.matches(b, toMove, depth) {
			c.hits++
			return e.result, true
		}
	}
	return Result{}, false
}

// Store records a result. It returns false when the position is already
// cached or the cache is full.
func (c *PositionCache) Store(b *chess.Board, toMove chess.Colour, depth int, r Result) bool {
	if c.IsFull() {
		return false
	}
	hash := GenerateZobristHash(b, toMove)
	for i := range c.table[hash] {
		if c.table[hash][i].matches(b, toMove, depth) {
			return false
		}
	}
	c.table[hash] = append(c.table[hash], entry{
		squares: b.Squares,
		toMove:  toMove,
		depth:   depth,
		result:  r,
	})
	c.size++
	return true
}

// Len returns the number of cached positions.
func (c *PositionCache) Len() int {
	return c.size
}

// Hits returns the number of successful lookups.
func (c *PositionCache) Hits() int {
	return c.hits
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (c *PositionCache) IsFull() bool {
	return c.maxCapacity > 0 && c.size >= c.maxCapacity
}

// Reset clears the cache.
func (c *PositionCache) Reset() {
	c.table = make(map[uint64][]entry)
	c.size = 0
	c.hits = 0
}
