package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
)

// printer writes console output, colouring pieces and alerts when enabled.
type printer struct {
	out io.Writer

	white  *color.Color
	black  *color.Color
	frame  *color.Color
	warn   *color.Color
	alert  *color.Color
	notice *color.Color
}

func newPrinter(out io.Writer, enabled bool) *printer {
	p := &printer{
		out:    out,
		white:  color.New(color.FgHiWhite, color.Bold),
		black:  color.New(color.FgHiRed, color.Bold),
		frame:  color.New(color.FgHiBlack),
		warn:   color.New(color.FgYellow),
		alert:  color.New(color.FgRed, color.Bold),
		notice: color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{p.white, p.black, p.frame, p.warn, p.alert, p.notice} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *printer) println(s string) {
	io.WriteString(p.out, s+"\n")
}

// colourf writes a whole line in colour c.
func (p *printer) colourf(c *color.Color, format string, args ...interface{}) {
	io.WriteString(p.out, c.Sprintf(format, args...)+"\n")
}

// cell returns the coloured letter of a square's piece.
func (p *printer) cell(piece chess.Piece) string {
	l := string(chess.Letter(piece))
	switch {
	case piece == chess.Empty:
		return p.frame.Sprint(l)
	case chess.IsColour(piece, chess.White):
		return p.white.Sprint(l)
	default:
		return p.black.Sprint(l)
	}
}

// board prints the board in the save file layout.
func (p *printer) board(b chess.Board) {
	var sb strings.Builder
	for row := chess.Rows - 1; row >= 0; row-- {
		fmt.Fprintf(&sb, "%d| ", row+1)
		for col := 0; col < chess.Cols; col++ {
			sb.WriteString(p.cell(b.Squares[row][col]))
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(chess.FooterRule + "\n")
	sb.WriteString(chess.FooterFiles + "\n")
	io.WriteString(p.out, sb.String())
}

// moves prints the legal destinations of an annotation grid, one per line
// in row-major order, each followed by its marker.
func (p *printer) moves(a engine.AnnotatedMoves) {
	for _, s := range a.Legal() {
		p.println(s.String() + a.At(s).Marker())
	}
}
