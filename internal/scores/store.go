// Package scores keeps the best time for every preset difficulty in a small
// fixed-record binary file.
//
// File format:
//
//	[int32 number of difficulties n]
//	[record for difficulty 1]
//	...
//	[record for difficulty n]
//
// Records are stored in preset order and use the native byte order of the
// machine that wrote them. The file carries no version; it has to be deleted
// whenever the presets change. There is no locking either: when two games
// finish at once, the last writer wins.
package scores

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/vancomm/minesweeper-cli/internal/mines"
)

var Log *logrus.Logger = logrus.New()

var (
	ErrCorruptFile = errors.New("corrupt score file")
	ErrNotTracked  = errors.New("difficulty is not tracked")
)

type Store struct {
	fs      afero.Fs
	path    string
	corrupt bool
}

// New returns a store backed by the file at path on fs. Nothing is read or
// written until the first call.
func New(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Lookup is the result of comparing a finished game against the store.
type Lookup struct {
	Tracked bool // false for custom difficulties
	NewBest bool
	Best    Record // stored record before the comparison
}

// EnsureExists creates the score file filled with sentinel records unless it
// is already there.
func (s *Store) EnsureExists() (created bool, err error) {
	if _, err := s.fs.Stat(s.path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("unable to stat score file: %w", err)
	}

	var buf bytes.Buffer
	presets := mines.Presets()
	if err := binary.Write(&buf, byteOrder, int32(len(presets))); err != nil {
		return false, err
	}
	for _, d := range presets {
		if err := binary.Write(&buf, byteOrder, toDisk(Sentinel(d))); err != nil {
			return false, err
		}
	}

	if err := afero.WriteFile(s.fs, s.path, buf.Bytes(), 0o644); err != nil {
		return false, fmt.Errorf("unable to create score file: %w", err)
	}

	Log.WithFields(logrus.Fields{
		"path":         s.path,
		"difficulties": len(presets),
	}).Info("created score file")

	return true, nil
}

// Lookup compares candidate with the stored best for its difficulty. Custom
// difficulties are reported as untracked without touching the file.
func (s *Store) Lookup(candidate Record) (Lookup, error) {
	if _, ok := candidate.Difficulty.PresetIndex(); !ok {
		return Lookup{}, nil
	}
	best, err := s.Best(candidate.Difficulty)
	if err != nil {
		return Lookup{}, err
	}
	return Lookup{
		Tracked: true,
		NewBest: candidate.Seconds < best.Seconds,
		Best:    best,
	}, nil
}

// Best returns the stored record for d.
func (s *Store) Best(d mines.Difficulty) (Record, error) {
	if _, ok := d.PresetIndex(); !ok {
		return Record{}, fmt.Errorf("%w: %s", ErrNotTracked, d)
	}
	records, err := s.All()
	if err != nil {
		return Record{}, err
	}
	for _, r := range records {
		if r.Difficulty.Equal(d) {
			return r, nil
		}
	}
	return Record{}, s.corruption(fmt.Errorf("no record for %s", d))
}

// All returns every stored record in file order.
func (s *Store) All() (records []Record, err error) {
	if _, err := s.EnsureExists(); err != nil {
		return nil, err
	}
	f, err := s.fs.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("unable to open score file: %w", err)
	}
	defer f.Close()

	n, err := s.readHeader(f)
	if err != nil {
		return nil, err
	}
	records = make([]Record, 0, n)
	for range n {
		var dr diskRecord
		if err := s.readRecord(f, &dr); err != nil {
			return nil, err
		}
		records = append(records, dr.record())
	}
	return records, nil
}

// Update overwrites the stored record for r's difficulty with r. It does not
// compare times; callers check with [Store.Lookup] first. Custom
// difficulties are ignored.
func (s *Store) Update(r Record) (err error) {
	if s.corrupt {
		return fmt.Errorf("%w: refusing to write %s", ErrCorruptFile, s.path)
	}
	if _, ok := r.Difficulty.PresetIndex(); !ok {
		return nil
	}
	if _, err := s.EnsureExists(); err != nil {
		return err
	}

	f, err := s.fs.OpenFile(s.path, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("unable to open score file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("unable to close score file: %w", cerr)
		}
	}()

	n, err := s.readHeader(f)
	if err != nil {
		return err
	}
	for range n {
		var dr diskRecord
		if err := s.readRecord(f, &dr); err != nil {
			return err
		}
		if !dr.record().Difficulty.Equal(r.Difficulty) {
			continue
		}
		if _, err := f.Seek(-recordSize, io.SeekCurrent); err != nil {
			return fmt.Errorf("unable to seek score file: %w", err)
		}
		if err := binary.Write(f, byteOrder, toDisk(r)); err != nil {
			return fmt.Errorf("unable to write score file: %w", err)
		}
		Log.WithFields(logrus.Fields{
			"difficulty": r.Difficulty.String(),
			"moves":      r.Moves,
			"seconds":    r.Seconds,
		}).Info("best score updated")
		return nil
	}
	return s.corruption(fmt.Errorf("no record for %s", r.Difficulty))
}

// readHeader reads the record count and checks it against the presets and
// the file size.
func (s *Store) readHeader(f afero.File) (int, error) {
	info, err := f.Stat()
	if err != nil {
		return 0, fmt.Errorf("unable to stat score file: %w", err)
	}

	var n int32
	if err := binary.Read(f, byteOrder, &n); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, s.corruption(fmt.Errorf("missing header"))
		}
		return 0, fmt.Errorf("unable to read score file: %w", err)
	}
	if int(n) != mines.PresetCount {
		return 0, s.corruption(fmt.Errorf(
			"%d records stored, want %d", n, mines.PresetCount,
		))
	}
	if want := headerSize + int64(n)*recordSize; info.Size() != want {
		return 0, s.corruption(fmt.Errorf(
			"file is %d bytes, want %d", info.Size(), want,
		))
	}
	return int(n), nil
}

func (s *Store) readRecord(f afero.File, dr *diskRecord) error {
	if err := binary.Read(f, byteOrder, dr); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return s.corruption(fmt.Errorf("truncated record"))
		}
		return fmt.Errorf("unable to read score file: %w", err)
	}
	return nil
}

// corruption marks the store as corrupt, which blocks further writes, and
// wraps err with [ErrCorruptFile].
func (s *Store) corruption(err error) error {
	s.corrupt = true
	Log.WithFields(logrus.Fields{
		"path":  s.path,
		"error": err,
	}).Warn("score file is corrupt")
	return fmt.Errorf("%w %s: %w", ErrCorruptFile, s.path, err)
}
