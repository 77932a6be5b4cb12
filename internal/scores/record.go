package scores

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/vancomm/minesweeper-cli/internal/mines"
)

// Record is one finished game: how many moves it took and how long.
type Record struct {
	Moves      int
	Seconds    float64
	Difficulty mines.Difficulty
}

// Sentinel returns the "no score yet" record for d. Any real time beats it.
func Sentinel(d mines.Difficulty) Record {
	return Record{
		Moves:      math.MaxInt32,
		Seconds:    math.MaxFloat64,
		Difficulty: d,
	}
}

func (r Record) IsSentinel() bool {
	return r.Moves == math.MaxInt32 && r.Seconds == math.MaxFloat64
}

func (r Record) String() string {
	if r.IsSentinel() {
		return fmt.Sprintf("%s: no score", r.Difficulty)
	}
	return fmt.Sprintf("%s: %d moves, %.2fs", r.Difficulty, r.Moves, r.Seconds)
}

// diskRecord mirrors the record layout of scores.bin, padding included:
// int32 moves, 4 bytes padding, float64 seconds, int32 rows, int32 columns,
// int32 mine count, 4 bytes padding.
type diskRecord struct {
	Moves     int32
	_         [4]byte
	Seconds   float64
	Rows      int32
	Columns   int32
	MineCount int32
	_         [4]byte
}

var (
	byteOrder  = binary.NativeEndian
	headerSize = int64(binary.Size(int32(0)))
	recordSize = int64(binary.Size(diskRecord{}))
)

func toDisk(r Record) diskRecord {
	return diskRecord{
		Moves:     int32(min(r.Moves, math.MaxInt32)),
		Seconds:   r.Seconds,
		Rows:      int32(r.Difficulty.Rows),
		Columns:   int32(r.Difficulty.Columns),
		MineCount: int32(r.Difficulty.MineCount),
	}
}

func (dr diskRecord) record() Record {
	return Record{
		Moves:   int(dr.Moves),
		Seconds: dr.Seconds,
		Difficulty: mines.Difficulty{
			Rows:      int(dr.Rows),
			Columns:   int(dr.Columns),
			MineCount: int(dr.MineCount),
		},
	}
}
