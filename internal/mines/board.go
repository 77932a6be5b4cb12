package mines

import (
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log *logrus.Logger = logrus.New()

type Status int

const (
	InPlay Status = iota
	Lost
	Won
)

func (s Status) String() string {
	switch s {
	case InPlay:
		return "in play"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Outcome is the immediate result of a single reveal.
type Outcome int

const (
	Continue Outcome = iota
	Loss
)

func (o Outcome) String() string {
	if o == Loss {
		return "loss"
	}
	return "continue"
}

type Board struct {
	Difficulty
	cells   []Cell // row-major
	moves   int
	covered int // covered cells that are not mines
	status  Status
}

func newBoard(d Difficulty) *Board {
	return &Board{
		Difficulty: d,
		cells:      make([]Cell, d.Cells()),
		covered:    d.Cells() - d.MineCount,
	}
}

// NewBoard creates a board for d with mines placed uniformly at random.
// Placement draws a random cell and redraws while it already holds a mine;
// this terminates because d leaves at least one safe cell.
func NewBoard(d Difficulty, r *rand.Rand) (*Board, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	b := newBoard(d)

	rows, columns, mineCount := d.Unpack()
	for range mineCount {
		i := b.index(r.IntN(rows), r.IntN(columns))
		for b.cells[i].Mine {
			i = b.index(r.IntN(rows), r.IntN(columns))
		}
		b.cells[i].Mine = true
	}
	b.countAdjacent()

	Log.WithFields(logrus.Fields{
		"difficulty": d.String(),
	}).Debug("board created")

	return b, nil
}

// NewBoardWithMines creates a board for d with mines at exactly the given
// points.
func NewBoardWithMines(d Difficulty, mines []Point) (*Board, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if len(mines) != d.MineCount {
		return nil, fmt.Errorf(
			"%d mines given for %s", len(mines), d,
		)
	}
	b := newBoard(d)
	for _, p := range mines {
		if !d.InBounds(p.Row, p.Column) {
			return nil, fmt.Errorf("mine %s outside %s", p, d)
		}
		i := b.index(p.Row, p.Column)
		if b.cells[i].Mine {
			return nil, fmt.Errorf("mine %s given twice", p)
		}
		b.cells[i].Mine = true
	}
	b.countAdjacent()
	return b, nil
}

func (b *Board) index(row, column int) int {
	return row*b.Columns + column
}

func (b *Board) countAdjacent() {
	for row := range b.Rows {
		for column := range b.Columns {
			c := &b.cells[b.index(row, column)]
			if c.Mine {
				c.Adjacent = 0
				continue
			}
			n := 0
			for _, d := range neighbourhood {
				r, cl := row+d[0], column+d[1]
				if b.InBounds(r, cl) && b.cells[b.index(r, cl)].Mine {
					n++
				}
			}
			c.Adjacent = n
		}
	}
}

// Cell returns a copy of the cell at row, column. The coordinates must be in
// bounds.
func (b *Board) Cell(row, column int) Cell {
	return b.cells[b.index(row, column)]
}

func (b *Board) MineAt(row, column int) bool {
	return b.cells[b.index(row, column)].Mine
}

func (b *Board) Moves() int {
	return b.moves
}

func (b *Board) Status() Status {
	return b.status
}

// Solved reports whether every cell that is not a mine has been revealed.
func (b *Board) Solved() bool {
	return b.covered == 0
}

// Reveal plays one move at row, column, which the caller has checked to be in
// bounds. Hitting a mine loses the game and leaves the grid untouched,
// including the mine's own cover. Any other cell is opened together with its
// zero-adjacency region.
//
// Once the game is over Reveal changes nothing and does not count the move.
func (b *Board) Reveal(row, column int) Outcome {
	switch b.status {
	case Lost:
		return Loss
	case Won:
		return Continue
	}
	if !b.InBounds(row, column) {
		panic(fmt.Sprintf("mines: reveal at %s outside %s",
			Point{row, column}, b.Difficulty))
	}

	b.moves++
	if b.MineAt(row, column) {
		b.status = Lost
		Log.WithFields(logrus.Fields{
			"row": row, "column": column, "moves": b.moves,
		}).Debug("mine hit")
		return Loss
	}

	opened := b.floodReveal(row, column)
	if b.Solved() {
		b.status = Won
	}
	Log.WithFields(logrus.Fields{
		"row": row, "column": column, "moves": b.moves,
		"opened": opened, "status": b.status.String(),
	}).Debug("cell revealed")
	return Continue
}
