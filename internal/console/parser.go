// Package console implements the text front end: a command parser and a
// read/print loop that drives a game session over an io.Reader and an
// io.Writer.
package console

import (
	"strconv"
	"strings"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

// CommandType identifies a console command.
type CommandType int

const (
	CmdInvalid CommandType = iota
	CmdQuit

	// Settings state
	CmdGameMode
	CmdDifficulty
	CmdUserColour
	CmdLoad
	CmdDefault
	CmdPrintSettings
	CmdStart

	// Game state
	CmdMove
	CmdGetMoves
	CmdSave
	CmdUndo
	CmdReset
	CmdFEN
)

// MoveSeparator is the word between the two cells of a move command.
const MoveSeparator = "to"

var commandNames = map[string]CommandType{
	"quit":           CmdQuit,
	"game_mode":      CmdGameMode,
	"difficulty":     CmdDifficulty,
	"user_color":     CmdUserColour,
	"load":           CmdLoad,
	"default":        CmdDefault,
	"print_settings": CmdPrintSettings,
	"start":          CmdStart,
	"move":           CmdMove,
	"get_moves":      CmdGetMoves,
	"save":           CmdSave,
	"undo":           CmdUndo,
	"reset":          CmdReset,
	"fen":            CmdFEN,
}

// Command is a parsed console line. ValidArg reports whether the arguments
// the command needs were present and well formed; the argument fields are
// meaningful only then.
type Command struct {
	Type     CommandType
	ValidArg bool

	Arg      int          // game_mode, difficulty, user_color
	Path     string       // load, save
	From, To chess.Square // move, get_moves (From only)
}

// offBoard marks a cell that had the right shape but unusable contents.
var offBoard = chess.Square{Row: -1, Col: -1}

// parseCell parses "<r,C>" with a 1-based row and an uppercase file letter.
// A token with the <..,..> shape but other contents yields an off-board
// square so the caller reports a bad position rather than a bad command.
func parseCell(tok string) (chess.Square, bool) {
	if len(tok) < 3 || tok[0] != '<' || tok[len(tok)-1] != '>' {
		return chess.Square{}, false
	}
	if strings.Count(tok[1:len(tok)-1], ",") != 1 {
		return chess.Square{}, false
	}
	if len(tok) != 5 || tok[2] != ',' || tok[1] < '0' || tok[1] > '9' {
		return offBoard, true
	}
	return chess.Square{Row: int(tok[1] - '1'), Col: int(tok[3]) - 'A'}, true
}

// Parse parses one input line. Unknown commands yield CmdInvalid. Tokens
// past the ones a command needs are ignored.
func Parse(line string) Command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{Type: CmdInvalid}
	}
	typ, ok := commandNames[fields[0]]
	if !ok {
		return Command{Type: CmdInvalid}
	}
	cmd := Command{Type: typ}
	args := fields[1:]

	switch typ {
	case CmdGameMode, CmdDifficulty, CmdUserColour:
		if len(args) == 0 {
			return cmd
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return cmd
		}
		cmd.Arg = n

	case CmdLoad, CmdSave:
		if len(args) == 0 {
			return cmd
		}
		cmd.Path = args[0]

	case CmdMove:
		if len(args) < 3 || args[1] != MoveSeparator {
			return cmd
		}
		from, ok := parseCell(args[0])
		if !ok {
			return cmd
		}
		to, ok := parseCell(args[2])
		if !ok {
			return cmd
		}
		cmd.From, cmd.To = from, to

	case CmdGetMoves:
		if len(args) == 0 {
			return cmd
		}
		from, ok := parseCell(args[0])
		if !ok {
			return cmd
		}
		cmd.From = from
	}

	cmd.ValidArg = true
	return cmd
}
