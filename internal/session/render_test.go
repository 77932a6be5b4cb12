package session

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper-cli/internal/mines"
	"github.com/vancomm/minesweeper-cli/internal/scores"
)

// wallBoard is 3x7 with a column of mines at column 3.
func wallBoard(t *testing.T) *mines.Board {
	t.Helper()
	b, err := mines.NewBoardWithMines(
		mines.Difficulty{Rows: 3, Columns: 7, MineCount: 3},
		[]mines.Point{{Row: 0, Column: 3}, {Row: 1, Column: 3}, {Row: 2, Column: 3}},
	)
	require.NoError(t, err)
	return b
}

func TestRenderViews(t *testing.T) {
	tests := []struct {
		name  string
		view  View
		lines []string
	}{
		{
			name: "playing",
			view: Playing,
			lines: []string{
				"  _0_1_2_3_4_5_6_",
				" 0|0 0 2 x x x x ",
				" 1|0 0 3 x x x x ",
				" 2|0 0 2 x x x x ",
			},
		},
		{
			name: "defeat",
			view: Defeat,
			lines: []string{
				"  _0_1_2_3_4_5_6_",
				" 0|0 0 2 M 2 0 0 ",
				" 1|0 0 3 M 3 0 0 ",
				" 2|0 0 2 M 2 0 0 ",
			},
		},
		{
			name: "victory",
			view: Victory,
			lines: []string{
				"  _0_1_2_3_4_5_6_",
				" 0|0 0 2 X 2 0 0 ",
				" 1|0 0 3 X 3 0 0 ",
				" 2|0 0 2 X 2 0 0 ",
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b := wallBoard(t)
			b.Reveal(1, 0)

			var buf bytes.Buffer
			NewRenderer(&buf, true).Board(b, test.view)

			// two blank lines, header, rows, trailing newline
			have := strings.Split(buf.String(), "\n")
			require.Len(t, have, 3+len(test.lines))
			assert.Equal(t, []string{"", ""}, have[:2])
			assert.Equal(t, test.lines, have[2:2+len(test.lines)])
			assert.Equal(t, "", have[len(have)-1])
		})
	}
}

func TestRenderDoesNotMutateBoard(t *testing.T) {
	b := wallBoard(t)
	b.Reveal(1, 3)

	var buf bytes.Buffer
	NewRenderer(&buf, true).Board(b, Defeat)
	assert.False(t, b.Cell(1, 3).Revealed)
	assert.False(t, b.Cell(0, 0).Revealed)
}

func TestRenderWideHeader(t *testing.T) {
	b, err := mines.NewBoardWithMines(
		mines.Difficulty{Rows: 1, Columns: 12, MineCount: 1},
		[]mines.Point{{Row: 0, Column: 11}},
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	NewRenderer(&buf, true).Board(b, Playing)
	assert.Contains(t, buf.String(), "  _0_1_2_3_4_5_6_7_8_9_1011\n")
	assert.Contains(t, buf.String(), " 0|x x x x x x x x x x x x \n")
}

func TestRenderScores(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf, true).Scores([]scores.Record{
		{Moves: 14, Seconds: 41.257, Difficulty: mines.Easy},
		scores.Sentinel(mines.Intermediate),
	})

	assert.Equal(t, "___HIGH_SCORES___\n"+
		"_Difficulties:_2_\n"+
		"Level 1 (Easy): TIME: 41.26\n\tMoves: 14\n\tBoard: 8x8\n\tMines: 10\n"+
		"Level 2 (Intermediate): TIME: --\n\tMoves: --\n\tBoard: 16x16\n\tMines: 40\n",
		buf.String())
}
