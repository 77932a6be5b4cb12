package mines

import (
	"errors"
	"fmt"
)

var ErrInvalidPreset = errors.New("invalid preset difficulty")

type InvalidDifficultyError struct {
	Difficulty Difficulty
	reason     string
}

// [InvalidDifficultyError] implements [error]
func (e *InvalidDifficultyError) Error() string {
	return fmt.Sprintf("invalid difficulty %s: %s", e.Difficulty, e.reason)
}
