package session

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/vancomm/minesweeper-cli/internal/mines"
	"github.com/vancomm/minesweeper-cli/internal/scores"
)

// View selects how covered cells and mines are drawn.
type View int

const (
	Playing View = iota // covered cells hidden
	Defeat              // everything open, mines in red
	Victory             // everything open, mines in cyan
)

type Renderer struct {
	w io.Writer

	covered    *color.Color
	zero       *color.Color
	number     *color.Color
	exploded   *color.Color
	defused    *color.Color
	headerEven *color.Color
	headerOdd  *color.Color
	alert      *color.Color
}

func NewRenderer(w io.Writer, noColor bool) *Renderer {
	r := &Renderer{
		w:          w,
		covered:    color.New(color.Reset),
		zero:       color.New(color.FgGreen),
		number:     color.New(color.FgYellow),
		exploded:   color.New(color.FgRed, color.Bold),
		defused:    color.New(color.FgCyan, color.Bold),
		headerEven: color.New(color.FgBlack, color.Bold),
		headerOdd:  color.New(color.FgWhite, color.Bold),
		alert:      color.New(color.FgRed, color.Bold),
	}
	if noColor {
		for _, c := range []*color.Color{
			r.covered, r.zero, r.number, r.exploded,
			r.defused, r.headerEven, r.headerOdd, r.alert,
		} {
			c.DisableColor()
		}
	}
	return r
}

// Board draws b. The grid is never mutated for display: in the end-of-game
// views every mine is shown whether or not its cell was revealed.
func (r *Renderer) Board(b *mines.Board, view View) {
	r.header(b.Columns)
	for row := range b.Rows {
		fmt.Fprintf(r.w, "\n%2d|", row)
		for column := range b.Columns {
			c := b.Cell(row, column)
			switch {
			case view == Defeat && c.Mine:
				r.square(r.exploded, "M")
			case view == Victory && c.Mine:
				r.square(r.defused, "X")
			case view == Playing && !c.Revealed:
				r.square(r.covered, "x")
			case c.Adjacent == 0:
				r.square(r.zero, "0")
			default:
				r.square(r.number, strconv.Itoa(c.Adjacent))
			}
		}
	}
	fmt.Fprintln(r.w)
}

func (r *Renderer) header(columns int) {
	fmt.Fprint(r.w, "\n\n  _")
	for i := range columns {
		c := r.headerEven
		if i%2 == 1 {
			c = r.headerOdd
		}
		c.Fprint(r.w, strconv.Itoa(i))
		if i < 10 {
			fmt.Fprint(r.w, "_")
		}
	}
}

func (r *Renderer) square(c *color.Color, s string) {
	c.Fprint(r.w, s+" ")
}

func (r *Renderer) Alert(msg string) {
	r.alert.Fprintln(r.w, msg)
}

// Scores prints the high score table, one entry per stored record.
func (r *Renderer) Scores(records []scores.Record) {
	fmt.Fprintln(r.w, "___HIGH_SCORES___")
	fmt.Fprintf(r.w, "_Difficulties:_%d_\n", len(records))
	for i, rec := range records {
		time, moves := "--", "--"
		if !rec.IsSentinel() {
			time = strconv.FormatFloat(rec.Seconds, 'f', 2, 64)
			moves = strconv.Itoa(rec.Moves)
		}
		fmt.Fprintf(r.w, "Level %d (%s): TIME: %s\n\tMoves: %s\n\tBoard: %dx%d\n\tMines: %d\n",
			i+1, rec.Difficulty.Name(), time, moves,
			rec.Difficulty.Rows, rec.Difficulty.Columns, rec.Difficulty.MineCount,
		)
	}
}
