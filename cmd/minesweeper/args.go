package main

import (
	"errors"
	"fmt"

	"github.com/gorilla/schema"
	"github.com/vancomm/minesweeper-cli/internal/mines"
)

// maxCells bounds custom boards so they still fit a terminal.
const maxCells = 10000

type presetArgs struct {
	Preset int `schema:"preset,required"`
}

type customArgs struct {
	Rows      int `schema:"rows,required"`
	Columns   int `schema:"columns,required"`
	MineCount int `schema:"mine_count,required"`
}

// usageError is an argument problem to be reported to the user as is.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func usagef(format string, a ...any) error {
	return &usageError{msg: fmt.Sprintf(format, a...)}
}

var decoder = func() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec
}()

// decode fills dst from src, returning the keys that failed to convert.
func decode(dst any, src map[string][]string) (map[string]bool, error) {
	err := decoder.Decode(dst, src)
	if err == nil {
		return nil, nil
	}
	var multi schema.MultiError
	if !errors.As(err, &multi) {
		return nil, err
	}
	failed := make(map[string]bool, len(multi))
	for key := range multi {
		failed[key] = true
	}
	return failed, nil
}

// difficultyFromArgs picks the difficulty from the positional arguments:
// none for Easy, a preset index, or rows, columns and mine count.
func difficultyFromArgs(args []string) (mines.Difficulty, error) {
	switch len(args) {
	case 0:
		return mines.FromPreset(1)
	case 1:
		var params presetArgs
		failed, err := decode(&params, map[string][]string{"preset": {args[0]}})
		if err != nil {
			return mines.Difficulty{}, err
		}
		if failed["preset"] || params.Preset < 1 || params.Preset > mines.PresetCount {
			return mines.Difficulty{}, usagef("Usage: minesweeper [difficulty=1,2,3]")
		}
		return mines.FromPreset(params.Preset)
	case 3:
		return customDifficulty(args)
	default:
		return mines.Difficulty{}, usagef("Usage: minesweeper [rows] [columns] [num_mines]")
	}
}

func customDifficulty(args []string) (mines.Difficulty, error) {
	var params customArgs
	failed, err := decode(&params, map[string][]string{
		"rows":       {args[0]},
		"columns":    {args[1]},
		"mine_count": {args[2]},
	})
	if err != nil {
		return mines.Difficulty{}, err
	}

	if failed["rows"] || params.Rows <= 0 {
		return mines.Difficulty{}, usagef("%q is not a valid row size", args[0])
	}
	if failed["columns"] || params.Columns <= 0 {
		return mines.Difficulty{}, usagef("%q is not a valid column size", args[1])
	}
	if params.Rows >= maxCells || params.Columns >= maxCells ||
		params.Rows*params.Columns >= maxCells {
		return mines.Difficulty{}, usagef("Dimensions %dx%d are not valid", params.Rows, params.Columns)
	}
	if failed["mine_count"] || params.MineCount <= 0 {
		return mines.Difficulty{}, usagef("%q is not a valid amount of mines", args[2])
	}

	d := mines.Difficulty{Rows: params.Rows, Columns: params.Columns, MineCount: params.MineCount}
	if err := d.Validate(); err != nil {
		return mines.Difficulty{}, usagef(
			"Amount of mines is not valid for given dimensions %dx%d", params.Rows, params.Columns,
		)
	}
	return d, nil
}
