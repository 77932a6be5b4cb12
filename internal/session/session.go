// Package session runs one interactive game in a terminal: it draws the
// board, reads moves, times the game and records winning times.
package session

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-cli/internal/mines"
	"github.com/vancomm/minesweeper-cli/internal/scores"
)

const (
	rowPrompt    = "\n\nEnter the row of the space you want to hit: "
	rowRetry     = "Incorrect selection. Enter row: "
	columnPrompt = "\nEnter the column of the space you want to hit: "
	columnRetry  = "Incorrect selection. Enter column: "
)

type Session struct {
	ID uuid.UUID

	board  *mines.Board
	store  *scores.Store
	out    io.Writer
	render *Renderer
	prompt *Prompter
	log    *logrus.Entry
	now    func() time.Time
}

// Result describes how a session ended. A session abandoned before the game
// finished keeps the [mines.InPlay] status.
type Result struct {
	Status  mines.Status
	Moves   int
	Seconds float64
	NewBest bool
}

func (r Result) Abandoned() bool {
	return r.Status == mines.InPlay
}

func New(
	log *logrus.Logger,
	board *mines.Board,
	store *scores.Store,
	in io.Reader,
	out io.Writer,
	noColor bool,
) *Session {
	id := uuid.New()
	return &Session{
		ID:     id,
		board:  board,
		store:  store,
		out:    out,
		render: NewRenderer(out, noColor),
		prompt: NewPrompter(in, out),
		log: log.WithFields(logrus.Fields{
			"session":    id.String(),
			"difficulty": board.Difficulty.String(),
		}),
		now: time.Now,
	}
}

// Play runs the game until it is won, lost or input runs out. Problems with
// the score file are reported to the player and logged but do not fail the
// session.
func (s *Session) Play() (Result, error) {
	start := s.now()
	s.log.Info("game started")

	for {
		s.render.Board(s.board, Playing)

		row, err := s.prompt.Int(rowPrompt, rowRetry, s.board.Rows)
		if err != nil {
			return s.abandon(start, err)
		}
		column, err := s.prompt.Int(columnPrompt, columnRetry, s.board.Columns)
		if err != nil {
			return s.abandon(start, err)
		}

		if s.board.Reveal(row, column) == mines.Loss {
			result := s.result(start)
			s.render.Board(s.board, Defeat)
			fmt.Fprintf(s.out, "\nYou hit a mine! %d move%s and %.1f seconds. Game Over\n",
				result.Moves, plural(result.Moves), result.Seconds)
			s.log.WithFields(logrus.Fields{
				"moves":   result.Moves,
				"seconds": result.Seconds,
			}).Info("game lost")
			return result, nil
		}

		if s.board.Status() == mines.Won {
			result := s.result(start)
			s.render.Board(s.board, Victory)
			fmt.Fprintf(s.out, "\nYou won in %d move%s and %.1f seconds! Congratulations!\n",
				result.Moves, plural(result.Moves), result.Seconds)
			s.log.WithFields(logrus.Fields{
				"moves":   result.Moves,
				"seconds": result.Seconds,
			}).Info("game won")

			result.NewBest = s.record(scores.Record{
				Moves:      result.Moves,
				Seconds:    result.Seconds,
				Difficulty: s.board.Difficulty,
			})
			return result, nil
		}
	}
}

func (s *Session) result(start time.Time) Result {
	return Result{
		Status:  s.board.Status(),
		Moves:   s.board.Moves(),
		Seconds: s.now().Sub(start).Seconds(),
	}
}

func (s *Session) abandon(start time.Time, err error) (Result, error) {
	result := s.result(start)
	s.log.WithFields(logrus.Fields{
		"moves":   result.Moves,
		"seconds": result.Seconds,
	}).Info("game abandoned")
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(s.out)
		return result, nil
	}
	return result, fmt.Errorf("unable to read move: %w", err)
}

// record compares a winning game with the stored best, saves it when it is
// better and prints the score table. It reports whether rec was saved.
func (s *Session) record(rec scores.Record) (saved bool) {
	defer fmt.Fprintln(s.out, "Thank you for playing!")

	lookup, err := s.store.Lookup(rec)
	if err != nil {
		fmt.Fprintln(s.out, "Error opening score file.")
		s.log.WithError(err).Error("unable to look up best score")
		return false
	}

	switch {
	case !lookup.Tracked:
		fmt.Fprintln(s.out, "Custom difficulties are not supported for high scores.")
	case lookup.NewBest:
		s.render.Alert("New High Score!")
		if err := s.store.Update(rec); err != nil {
			fmt.Fprintln(s.out, "Error saving score file.")
			s.log.WithError(err).Error("unable to save best score")
		} else {
			saved = true
		}
	}

	records, err := s.store.All()
	if err != nil {
		fmt.Fprintln(s.out, "Error opening score file.")
		s.log.WithError(err).Error("unable to read scores")
		return saved
	}
	s.render.Scores(records)
	return saved
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
