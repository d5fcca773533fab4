package console

import (
	"bufio"
	"errors"
	"io"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	chesserrors "github.com/lgbarn/minimax-chess-go/internal/errors"
	"github.com/lgbarn/minimax-chess-go/internal/session"
)

// Console messages.
const (
	msgTitle          = " Chess\n-------"
	msgSettingsPrompt = "Specify game settings or type 'start' to begin a game with the current settings:"
	msgInvalidCommand = "ERROR: invalid command"
	msgWrongMode      = "Wrong game mode"
	msgWrongLevel     = "Wrong difficulty level. The value should be between 1 to 5"
	msgWrongColour    = "Wrong user color. The value should be 0 or 1"
	msgDefaults       = "All settings reset to default"
	msgLoadFailed     = "Error: File doesn't exist or cannot be opened"
	msgStarting       = "Starting game..."
	msgExiting        = "Exiting..."
	msgRestarting     = "Restarting..."
	msgBadPosition    = "Invalid position on the board"
	msgNotYourPiece   = "The specified position does not contain your piece"
	msgNoPiece        = "The specified position does not contain a player piece"
	msgIllegalMove    = "Illegal move"
	msgStillThreat    = "Illegal move: king is still threatened"
	msgWillThreat     = "Illegal move: king will be threatened"
	msgEmptyHistory   = "Empty history, no move to undo"
	msgSaveFailed     = "File cannot be created or modified"
	msgDraw           = "The game ends in a draw"
)

// state is the next phase of the console loop.
type state int

const (
	stateSettings state = iota
	stateGame
	stateQuit
)

// Console runs the text front end. A Console serves one user and is not
// safe for concurrent use.
type Console struct {
	cfg    *config.Config
	in     *bufio.Scanner
	out    *printer
	logger zerolog.Logger

	settings     config.Settings
	sess         *session.Session
	loaded       bool
	boardChanged bool
}

// New creates a console reading commands from in and writing to
// cfg.Output.Out.
func New(cfg *config.Config, in io.Reader) *Console {
	return &Console{
		cfg:      cfg,
		in:       bufio.NewScanner(in),
		out:      newPrinter(cfg.Output.Out, cfg.Output.Colour),
		logger:   cfg.Logger(),
		settings: cfg.Settings,
	}
}

// Session returns the current game session, or nil before the first game.
func (c *Console) Session() *session.Session {
	return c.sess
}

// readLine returns the next input line, or false at end of input.
func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

// Run executes the console until the user quits, the game ends or input
// runs out. It returns only input errors.
func (c *Console) Run() error {
	c.out.println(msgTitle)

	st := stateSettings
	for st != stateQuit {
		switch st {
		case stateSettings:
			st = c.runSettings()
		case stateGame:
			st = c.runGame()
		}
	}
	return c.in.Err()
}

func (c *Console) quit() state {
	c.out.println(msgExiting)
	return stateQuit
}

func (c *Console) invalid() {
	c.out.colourf(c.out.alert, msgInvalidCommand)
}

// path resolves a save path against the configured save directory.
func (c *Console) path(p string) string {
	if c.cfg.Output.SaveDir == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.cfg.Output.SaveDir, p)
}

func (c *Console) runSettings() state {
	c.out.println(msgSettingsPrompt)

	for {
		line, ok := c.readLine()
		if !ok {
			return c.quit()
		}
		cmd := Parse(line)

		switch cmd.Type {
		case CmdGameMode:
			if cmd.ValidArg && (cmd.Arg == int(config.SinglePlayer) || cmd.Arg == int(config.TwoPlayer)) {
				c.settings.Mode = config.GameMode(cmd.Arg)
				c.out.printf("Game mode is set to %s\n", c.settings.Mode)
			} else {
				c.out.println(msgWrongMode)
			}

		case CmdDifficulty:
			switch d := config.Difficulty(cmd.Arg); {
			case c.settings.Mode != config.SinglePlayer:
				c.invalid()
			case cmd.ValidArg && d.Valid():
				c.settings.Difficulty = d
				c.out.printf("Difficulty level is set to %s\n", d)
			default:
				c.out.println(msgWrongLevel)
			}

		case CmdUserColour:
			switch {
			case c.settings.Mode != config.SinglePlayer:
				c.invalid()
			case cmd.ValidArg && (cmd.Arg == 0 || cmd.Arg == 1):
				c.settings.UserColour = chess.Black
				if cmd.Arg == 1 {
					c.settings.UserColour = chess.White
				}
				c.out.printf("User color is set to %s\n", c.settings.UserColour)
			default:
				c.out.println(msgWrongColour)
			}

		case CmdLoad:
			if !cmd.ValidArg {
				c.invalid()
				break
			}
			sess, err := session.LoadFile(c.path(cmd.Path), session.WithLogger(c.logger))
			if err != nil {
				c.logger.Info().Err(err).Msg("load failed")
				c.out.println(msgLoadFailed)
				break
			}
			c.sess = sess
			c.loaded = true
			c.settings = sess.Settings

		case CmdDefault:
			c.settings = config.DefaultSettings()
			c.out.println(msgDefaults)

		case CmdPrintSettings:
			if err := session.WriteSettings(c.out.out, c.settings); err != nil {
				c.logger.Warn().Err(err).Msg("print settings failed")
			}

		case CmdQuit:
			return c.quit()

		case CmdStart:
			c.out.println(msgStarting)
			return stateGame

		default:
			c.invalid()
		}
	}
}

// startGame creates the session for the game state, or applies the current
// settings to a loaded one.
func (c *Console) startGame() error {
	if c.loaded && c.sess != nil {
		return c.sess.SetSettings(c.settings)
	}
	sess, err := session.New(c.settings, session.WithLogger(c.logger))
	if err != nil {
		return err
	}
	c.sess = sess
	return nil
}

func (c *Console) runGame() state {
	if err := c.startGame(); err != nil {
		c.out.colourf(c.out.alert, "ERROR: %v", err)
		return stateSettings
	}
	c.loaded = false
	c.boardChanged = false

	if c.sess.IsUserTurn() {
		c.out.board(c.sess.Game().Board())
	}

	for {
		if !c.sess.IsUserTurn() {
			if st, done := c.computerMove(); done {
				return st
			}
			continue
		}

		if c.boardChanged {
			c.out.board(c.sess.Game().Board())
			c.boardChanged = false
		}
		c.out.printf("Enter your move (%s player):\n", c.sess.Game().CurrentPlayer())

		line, ok := c.readLine()
		if !ok {
			return c.quit()
		}
		cmd := Parse(line)

		switch cmd.Type {
		case CmdMove:
			if st, done := c.move(cmd); done {
				return st
			}
		case CmdGetMoves:
			c.getMoves(cmd)
		case CmdUndo:
			c.undo()
		case CmdSave:
			c.save(cmd)
		case CmdFEN:
			g := c.sess.Game()
			b := g.Board()
			c.out.println(b.FEN(g.CurrentPlayer()))
		case CmdReset:
			c.out.println(msgRestarting)
			c.sess = nil
			return stateSettings
		case CmdQuit:
			return c.quit()
		default:
			c.invalid()
		}
	}
}

// changed reports the position after a move. It returns true with the next
// state when the game is over.
func (c *Console) changed() (state, bool) {
	c.boardChanged = true
	g := c.sess.Game()

	switch c.sess.Outcome() {
	case engine.Draw:
		c.out.colourf(c.out.notice, msgDraw)
		c.logger.Info().Msg("game drawn")
		return stateQuit, true
	case engine.CurrentPlayerLoses:
		c.out.colourf(c.out.notice, "Checkmate! %s player wins the game", g.OtherPlayer())
		c.logger.Info().Str("winner", g.OtherPlayer().String()).Msg("checkmate")
		return stateQuit, true
	}

	if g.IsCurrentPlayerChecked() {
		c.out.colourf(c.out.warn, "Check: %s king is threatened", g.CurrentPlayer())
	}
	return stateGame, false
}

func (c *Console) move(cmd Command) (state, bool) {
	if !cmd.ValidArg {
		c.invalid()
		return stateGame, false
	}

	_, err := c.sess.Move(cmd.From, cmd.To)
	switch {
	case err == nil:
		return c.changed()
	case errors.Is(err, chesserrors.ErrInvalidSquare):
		c.out.println(msgBadPosition)
	case errors.Is(err, chesserrors.ErrInvalidPiece):
		c.out.println(msgNotYourPiece)
	case errors.Is(err, chesserrors.ErrIllegalMove):
		c.out.println(msgIllegalMove)
	case errors.Is(err, chesserrors.ErrKingThreat):
		if c.sess.Game().IsCurrentPlayerChecked() {
			c.out.println(msgStillThreat)
		} else {
			c.out.println(msgWillThreat)
		}
	default:
		c.out.colourf(c.out.alert, "ERROR: %v", err)
	}
	return stateGame, false
}

func (c *Console) getMoves(cmd Command) {
	if !cmd.ValidArg {
		c.invalid()
		return
	}
	moves, err := c.sess.Game().AnnotatedMoves(cmd.From)
	switch {
	case err == nil:
		c.out.moves(moves)
	case errors.Is(err, chesserrors.ErrInvalidSquare):
		c.out.println(msgBadPosition)
	default:
		c.out.println(msgNoPiece)
	}
}

// undo takes back up to two moves, one per player.
func (c *Console) undo() {
	if c.sess.Game().HistoryLen() == 0 {
		c.out.println(msgEmptyHistory)
		return
	}
	for i := 0; i < 2; i++ {
		e, err := c.sess.Undo()
		if err != nil {
			break
		}
		c.out.printf("Undo move for %s player: %s -> %s\n", c.sess.Game().CurrentPlayer(), e.To, e.From)
	}
	c.out.board(c.sess.Game().Board())
	c.boardChanged = false
}

func (c *Console) save(cmd Command) {
	if !cmd.ValidArg {
		c.invalid()
		return
	}
	if err := c.sess.SaveFile(c.path(cmd.Path)); err != nil {
		c.logger.Info().Err(err).Msg("save failed")
		c.out.println(msgSaveFailed)
		return
	}
	c.out.printf("Game saved to: %s\n", cmd.Path)
}

func (c *Console) computerMove() (state, bool) {
	m, err := c.sess.ComputerTurn()
	if err != nil {
		c.out.colourf(c.out.alert, "ERROR: %v", err)
		return stateQuit, true
	}
	piece := chess.ExtractPiece(c.sess.Game().Piece(m.To))
	c.out.printf("Computer: move %s at %s to %s\n", piece, m.From, m.To)
	return c.changed()
}
