package mines

import (
	"fmt"
	"slices"
)

// Difficulty describes the shape of a board and how many mines it holds.
// It is a value type: two difficulties are the same iff all fields match.
type Difficulty struct {
	Rows, Columns, MineCount int
}

var (
	Easy         = Difficulty{Rows: 8, Columns: 8, MineCount: 10}
	Intermediate = Difficulty{Rows: 16, Columns: 16, MineCount: 40}
	Expert       = Difficulty{Rows: 16, Columns: 30, MineCount: 99}
)

var (
	presets     = [...]Difficulty{Easy, Intermediate, Expert}
	presetNames = [...]string{"Easy", "Intermediate", "Expert"}
)

// PresetCount is the number of canonical difficulties, indexed 1..PresetCount.
const PresetCount = len(presets)

// Presets returns the canonical difficulties in index order.
func Presets() []Difficulty {
	return slices.Clone(presets[:])
}

// FromPreset returns the preset difficulty with the given 1-based index.
func FromPreset(index int) (Difficulty, error) {
	if index < 1 || index > PresetCount {
		return Difficulty{}, fmt.Errorf(
			"%w: %d (want 1..%d)", ErrInvalidPreset, index, PresetCount,
		)
	}
	return presets[index-1], nil
}

func (d Difficulty) Unpack() (rows int, columns int, mineCount int) {
	return d.Rows, d.Columns, d.MineCount
}

func (d Difficulty) Cells() int {
	return d.Rows * d.Columns
}

func (d Difficulty) Equal(other Difficulty) bool {
	return d == other
}

func (d Difficulty) InBounds(row, column int) bool {
	return 0 <= row && row < d.Rows && 0 <= column && column < d.Columns
}

// PresetIndex reports the 1-based preset index of d. Custom difficulties
// report false.
func (d Difficulty) PresetIndex() (int, bool) {
	for i, p := range presets {
		if d.Equal(p) {
			return i + 1, true
		}
	}
	return 0, false
}

// Validate checks that d describes a playable board: positive dimensions
// and at least one mine while leaving at least one safe cell.
func (d Difficulty) Validate() error {
	switch {
	case d.Rows <= 0:
		return &InvalidDifficultyError{d, "rows must be positive"}
	case d.Columns <= 0:
		return &InvalidDifficultyError{d, "columns must be positive"}
	case d.MineCount <= 0:
		return &InvalidDifficultyError{d, "mine count must be positive"}
	case d.MineCount >= d.Cells():
		return &InvalidDifficultyError{d, "mine count must be less than the number of cells"}
	}
	return nil
}

func (d Difficulty) Name() string {
	if i, ok := d.PresetIndex(); ok {
		return presetNames[i-1]
	}
	return "Custom"
}

func (d Difficulty) String() string {
	return fmt.Sprintf("%dx%d(%d)", d.Rows, d.Columns, d.MineCount)
}
