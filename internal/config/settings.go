package config

import (
	"fmt"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// GameMode selects whether the computer plays one side.
type GameMode int

const (
	SinglePlayer GameMode = 1 // Human against the computer
	TwoPlayer    GameMode = 2 // Two humans
)

// String returns "1-player" or "2-player".
func (m GameMode) String() string {
	return fmt.Sprintf("%d-player", int(m))
}

// Difficulty is the computer's strength, which is also its search depth.
type Difficulty int

const (
	Amateur Difficulty = iota + 1
	Easy
	Moderate
	Hard
	Expert

	MinDifficulty = Amateur
	MaxDifficulty = Expert
)

var difficultyNames = map[Difficulty]string{
	Amateur:  "amateur",
	Easy:     "easy",
	Moderate: "moderate",
	Hard:     "hard",
	Expert:   "expert",
}

// String returns the lowercase difficulty name.
func (d Difficulty) String() string {
	if name, ok := difficultyNames[d]; ok {
		return name
	}
	return fmt.Sprintf("difficulty(%d)", int(d))
}

// Valid reports whether d is between MinDifficulty and MaxDifficulty.
func (d Difficulty) Valid() bool {
	return d >= MinDifficulty && d <= MaxDifficulty
}

// Depth returns the search depth used at this difficulty.
func (d Difficulty) Depth() int {
	return int(d)
}

// ParseDifficulty converts a difficulty name back to a Difficulty. Unknown
// names yield Amateur and false.
func ParseDifficulty(name string) (Difficulty, bool) {
	for d, n := range difficultyNames {
		if n == name {
			return d, true
		}
	}
	return Amateur, false
}

// History sizing. The log keeps VisibleHistory moves for undo and needs
// room for one search on top of that.
const (
	VisibleHistory    = 6
	SimulationReserve = 1
)

// HistoryCapacity returns the history log capacity needed to keep
// VisibleHistory undoable moves and still run a search of the given depth.
func HistoryCapacity(depth int) int {
	return VisibleHistory + SimulationReserve + depth
}

// Settings are the per-game choices made before a game starts.
type Settings struct {
	Mode       GameMode
	Difficulty Difficulty
	UserColour chess.Colour
}

// DefaultSettings returns single player, easy, user plays white.
func DefaultSettings() Settings {
	return Settings{
		Mode:       SinglePlayer,
		Difficulty: Easy,
		UserColour: chess.White,
	}
}

// HistoryCapacity returns the history capacity for a game with these
// settings.
func (s Settings) HistoryCapacity() int {
	return HistoryCapacity(s.Difficulty.Depth())
}

// Validate checks mode and difficulty.
func (s Settings) Validate() error {
	if s.Mode != SinglePlayer && s.Mode != TwoPlayer {
		return fmt.Errorf("game mode %d: %w", int(s.Mode), errors.ErrInvalidConfig)
	}
	if !s.Difficulty.Valid() {
		return fmt.Errorf("difficulty %d not in [%d, %d]: %w",
			int(s.Difficulty), MinDifficulty, MaxDifficulty, errors.ErrInvalidConfig)
	}
	if s.UserColour != chess.White && s.UserColour != chess.Black {
		return fmt.Errorf("user colour %d: %w", int(s.UserColour), errors.ErrInvalidConfig)
	}
	return nil
}
