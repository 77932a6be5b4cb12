package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCelltodo(t *testing.T) {
	std := newCelltodo(8)
	_, ok := std.pop()
	assert.False(t, ok)

	for _, i := range []int{5, 2, 7} {
		std.add(i)
	}
	for _, want := range []int{5, 2} {
		i, ok := std.pop()
		require.True(t, ok)
		assert.Equal(t, want, i)
	}
	std.add(0)
	for _, want := range []int{7, 0} {
		i, ok := std.pop()
		require.True(t, ok)
		assert.Equal(t, want, i)
	}
	_, ok = std.pop()
	assert.False(t, ok)

	// a drained queue can be reused
	std.add(3)
	i, ok := std.pop()
	require.True(t, ok)
	assert.Equal(t, 3, i)
}

// expectedRegion is a straightforward recursive flood fill over a copy of
// the revealed flags.
func expectedRegion(b *Board, row, column int) map[Point]bool {
	seen := make(map[Point]bool)
	var visit func(r, c int)
	visit = func(r, c int) {
		p := Point{r, c}
		if !b.InBounds(r, c) || seen[p] || b.Cell(r, c).Revealed || b.MineAt(r, c) {
			return
		}
		seen[p] = true
		if b.Cell(r, c).Adjacent == 0 {
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					visit(r+dr, c+dc)
				}
			}
		}
	}
	visit(row, column)
	return seen
}

func revealedSet(b *Board) map[Point]bool {
	set := make(map[Point]bool)
	for row := range b.Rows {
		for column := range b.Columns {
			if b.Cell(row, column).Revealed {
				set[Point{row, column}] = true
			}
		}
	}
	return set
}

func TestFloodStopsAtBorder(t *testing.T) {
	d := Difficulty{Rows: 3, Columns: 7, MineCount: 3}
	b, err := NewBoardWithMines(d, []Point{{0, 3}, {1, 3}, {2, 3}})
	require.NoError(t, err)

	assert.Equal(t, Continue, b.Reveal(1, 0))

	for row := range d.Rows {
		for column := range d.Columns {
			want := column <= 2
			assert.Equal(t, want, b.Cell(row, column).Revealed,
				"cell %d:%d\n%s", row, column, b)
		}
	}
	assert.False(t, b.Solved())
	assert.Equal(t, InPlay, b.Status())
}

func TestFloodNumberedCellOpensAlone(t *testing.T) {
	d := Difficulty{Rows: 3, Columns: 7, MineCount: 3}
	b, err := NewBoardWithMines(d, []Point{{0, 3}, {1, 3}, {2, 3}})
	require.NoError(t, err)

	b.Reveal(1, 4)
	assert.Equal(t, map[Point]bool{{1, 4}: true}, revealedSet(b))
}

func TestFloodMatchesRecursiveReference(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		d    Difficulty
	}{
		{name: "8x8(10)", d: Easy},
		{name: "16x16(40)", d: Intermediate},
		{name: "16x30(99)", d: Expert},
		{name: "40x60(100)", d: Difficulty{Rows: 40, Columns: 60, MineCount: 100}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			r := rand.New(rand.NewPCG(1, 2))
			for range 20 {
				b, err := NewBoard(test.d, r)
				require.NoError(t, err)

				for b.Status() == InPlay {
					row, column := r.IntN(b.Rows), r.IntN(b.Columns)
					if b.MineAt(row, column) || b.Cell(row, column).Revealed {
						continue
					}
					before := revealedSet(b)
					want := expectedRegion(b, row, column)
					for p := range before {
						want[p] = true
					}

					b.Reveal(row, column)
					require.Equal(t, want, revealedSet(b), "reveal %d:%d\n%s", row, column, b)
				}
			}
		})
	}
}

func TestFloodLargeOpenBoard(t *testing.T) {
	// a single mine in a corner: one reveal opens everything else
	d := Difficulty{Rows: 99, Columns: 100, MineCount: 1}
	b, err := NewBoardWithMines(d, []Point{{98, 99}})
	require.NoError(t, err)

	assert.Equal(t, Continue, b.Reveal(0, 0))
	assert.True(t, b.Solved())
	assert.Equal(t, Won, b.Status())
	assert.Len(t, revealedSet(b), d.Cells()-1)
}
