package session

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	chesserrors "github.com/lgbarn/minimax-chess-go/internal/errors"
)

// Save file keys.
const (
	settingsHeader = "SETTINGS:"
	keyGameMode    = "GAME_MODE"
	keyDifficulty  = "DIFFICULTY"
	keyUserColour  = "USER_COLOR"
	keyGameID      = "GAME_ID"
	keyGameName    = "GAME_NAME"
)

// WriteSettings writes the settings block of a save file. Difficulty and
// user colour are only written for single player games.
func WriteSettings(w io.Writer, s config.Settings) error {
	var sb strings.Builder
	sb.WriteString(settingsHeader + "\n")
	fmt.Fprintf(&sb, "%s: %s\n", keyGameMode, s.Mode)
	if s.Mode == config.SinglePlayer {
		fmt.Fprintf(&sb, "%s: %s\n", keyDifficulty, s.Difficulty)
		fmt.Fprintf(&sb, "%s: %s\n", keyUserColour, s.UserColour)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// Save writes the game in the save file format.
func (s *Session) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, s.game.CurrentPlayer())
	if err := WriteSettings(bw, s.Settings); err != nil {
		return err
	}
	fmt.Fprintf(bw, "%s: %s\n", keyGameID, s.ID)
	if s.Name != "" {
		fmt.Fprintf(bw, "%s: %s\n", keyGameName, s.Name)
	}
	board := s.game.Board()
	bw.WriteString(board.String())
	return bw.Flush()
}

// SaveFile writes the game to path and marks the session saved.
func (s *Session) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &chesserrors.SaveError{Err: err, Path: path}
	}
	if err := s.Save(f); err != nil {
		f.Close()
		return &chesserrors.SaveError{Err: err, Path: path}
	}
	if err := f.Close(); err != nil {
		return &chesserrors.SaveError{Err: err, Path: path}
	}
	s.Saved = true
	s.logger.Info().Str("path", path).Msg("game saved")
	return nil
}

// lineReader numbers the lines of a save file.
type lineReader struct {
	sc   *bufio.Scanner
	line int
	path string
}

func (r *lineReader) next() (string, bool) {
	for r.sc.Scan() {
		r.line++
		text := strings.TrimRight(r.sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		return text, true
	}
	return "", false
}

func (r *lineReader) fail(got, format string, args ...interface{}) error {
	return &chesserrors.SaveError{
		Err:  chesserrors.Wrapf(chesserrors.ErrInvalidSave, format, args...),
		Path: r.path,
		Line: r.line,
		Got:  got,
	}
}

// value splits "KEY: value" and reports whether the key matched.
func value(line, key string) (string, bool) {
	k, v, ok := strings.Cut(line, ":")
	if !ok || strings.TrimSpace(k) != key {
		return "", false
	}
	return strings.TrimSpace(v), true
}

// Load reads a game in the save file format. Both check flags are computed
// from the loaded board and the history starts empty. An unknown difficulty
// loads as amateur. A missing game id is replaced by a new one.
func Load(rd io.Reader, opts ...Option) (*Session, error) {
	return load(rd, "", opts)
}

// LoadFile reads a save file from disk.
func LoadFile(path string, opts ...Option) (*Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &chesserrors.SaveError{Err: err, Path: path}
	}
	defer f.Close()
	return load(f, path, opts)
}

func load(rd io.Reader, path string, opts []Option) (*Session, error) {
	r := &lineReader{sc: bufio.NewScanner(rd), path: path}

	line, ok := r.next()
	if !ok {
		return nil, r.fail("", "missing current player")
	}
	toMove, ok := chess.ParseColour(strings.TrimSpace(line))
	if !ok {
		return nil, r.fail(line, "current player")
	}

	if line, ok = r.next(); !ok || strings.TrimSpace(line) != settingsHeader {
		return nil, r.fail(line, "expected %s", settingsHeader)
	}

	settings := config.DefaultSettings()
	line, _ = r.next()
	mode, ok := value(line, keyGameMode)
	if !ok {
		return nil, r.fail(line, "expected %s", keyGameMode)
	}
	switch mode {
	case config.SinglePlayer.String():
		settings.Mode = config.SinglePlayer
	case config.TwoPlayer.String():
		settings.Mode = config.TwoPlayer
	default:
		return nil, r.fail(mode, "game mode")
	}

	if settings.Mode == config.SinglePlayer {
		line, _ = r.next()
		name, ok := value(line, keyDifficulty)
		if !ok {
			return nil, r.fail(line, "expected %s", keyDifficulty)
		}
		settings.Difficulty, _ = config.ParseDifficulty(name)

		line, _ = r.next()
		colour, ok := value(line, keyUserColour)
		if !ok {
			return nil, r.fail(line, "expected %s", keyUserColour)
		}
		settings.UserColour = chess.Black
		if colour == chess.White.String() {
			settings.UserColour = chess.White
		}
	}

	var id uuid.UUID
	var name string
	for {
		if line, ok = r.next(); !ok {
			return nil, r.fail("", "missing board")
		}
		if v, ok := value(line, keyGameID); ok {
			parsed, err := uuid.Parse(v)
			if err != nil {
				return nil, r.fail(v, "game id: %v", err)
			}
			id = parsed
			continue
		}
		if v, ok := value(line, keyGameName); ok {
			name = v
			continue
		}
		break
	}

	board := chess.NewBoard()
	for want := chess.Rows - 1; want >= 0; want-- {
		if want < chess.Rows-1 {
			if line, ok = r.next(); !ok {
				return nil, r.fail("", "missing rank %d", want+1)
			}
		}
		row, cells, err := chess.ParseRowLine(line)
		if err != nil {
			return nil, r.fail(line, "%v", err)
		}
		if row != want {
			return nil, r.fail(line, "expected rank %d", want+1)
		}
		board.SetRow(row, cells)
	}
	if err := r.sc.Err(); err != nil {
		return nil, &chesserrors.SaveError{Err: err, Path: path, Line: r.line}
	}

	var stored []Option
	if id != uuid.Nil {
		stored = append(stored, withID(id))
	}
	if name != "" {
		stored = append(stored, WithName(name))
	}
	s, err := newSession(settings, append(stored, opts...))
	if err != nil {
		return nil, err
	}
	if s.game, err = engine.NewGameFromBoard(board, toMove, settings.HistoryCapacity()); err != nil {
		return nil, err
	}
	s.Saved = true
	s.logger.Info().Str("id", s.ID.String()).Str("path", path).Msg("game loaded")
	return s, nil
}
