package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type Cell struct {
	Mine     bool
	Revealed bool
	Adjacent int // mined neighbours; always 0 for a mine
}

func (c Cell) String() string {
	switch {
	case c.Revealed:
		return strconv.Itoa(c.Adjacent)
	case c.Mine:
		return "*"
	default:
		return "-"
	}
}

type Point struct {
	Row, Column int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Column)
}

// neighbourhood lists the Chebyshev-1 offsets around a cell, the cell itself
// included.
var neighbourhood = [9][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 0}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// String dumps the grid with mines visible. Meant for logs and tests, not
// for players.
func (b *Board) String() string {
	var s strings.Builder
	for row := range b.Rows {
		for column := range b.Columns {
			fmt.Fprint(&s, b.cells[b.index(row, column)].String()+" ")
		}
		fmt.Fprint(&s, "\n")
	}
	return s.String()
}
