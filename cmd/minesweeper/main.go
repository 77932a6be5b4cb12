package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/vancomm/minesweeper-cli/internal/config"
	"github.com/vancomm/minesweeper-cli/internal/mines"
	"github.com/vancomm/minesweeper-cli/internal/scores"
	"github.com/vancomm/minesweeper-cli/internal/session"
)

const (
	exitOK       = 0
	exitUsage    = 1
	exitInternal = 2
)

var log = logrus.New()

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("minesweeper", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: minesweeper [flags] [difficulty=1,2,3 | rows columns num_mines]")
		flags.PrintDefaults()
	}
	config.Flags(flags)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	log, err = config.NewLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitInternal
	}
	mines.Log = log
	scores.Log = log
	log.WithFields(cfg.Fields()).Debug("configuration loaded")

	d, err := difficultyFromArgs(flags.Args())
	if err != nil {
		var usage *usageError
		if errors.As(err, &usage) {
			fmt.Fprintln(stderr, usage.msg)
			return exitUsage
		}
		log.WithError(err).Error("unable to select difficulty")
		fmt.Fprintln(stderr, err)
		return exitInternal
	}

	board, err := mines.NewBoard(d, createRand())
	if err != nil {
		log.WithError(err).Error("unable to create board")
		fmt.Fprintln(stderr, err)
		return exitInternal
	}

	store := scores.New(afero.NewOsFs(), cfg.ScoresFile)
	s := session.New(log, board, store, stdin, stdout, cfg.NoColor)
	if _, err := s.Play(); err != nil {
		log.WithError(err).Error("session failed")
		fmt.Fprintln(stderr, err)
		return exitInternal
	}
	return exitOK
}
