package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPlaysGame(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.bin")

	var stdout, stderr bytes.Buffer
	// one mine on a 1x2 board: the first move either loses or wins
	code := run(
		[]string{"--scores-file", path, "--no-color", "1", "2", "1"},
		strings.NewReader("0 0\n"), &stdout, &stderr,
	)
	require.Equal(t, exitOK, code, stderr.String())

	out := stdout.String()
	if strings.Contains(out, "Game Over") {
		assert.Contains(t, out, "You hit a mine! 1 move")
		assert.NoFileExists(t, path)
	} else {
		assert.Contains(t, out, "Congratulations!")
		assert.Contains(t, out, "Custom difficulties are not supported for high scores.")
		assert.FileExists(t, path)
	}
}

func TestRunAbandoned(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.bin")

	var stdout, stderr bytes.Buffer
	code := run([]string{"--scores-file", path, "--no-color"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout.String(), "Enter the row of the space you want to hit: ")
	assert.NoFileExists(t, path)
}

func TestRunInvalid(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		stderr string
	}{
		{"bad preset", []string{"7"}, "Usage: minesweeper [difficulty=1,2,3]"},
		{"bad custom", []string{"3", "3", "9"}, "Amount of mines is not valid for given dimensions 3x3"},
		{"unknown flag", []string{"--bogus"}, "unknown flag: --bogus"},
		{"bad log level", []string{"--log-level", "loud"}, "not a valid logrus Level"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(test.args, strings.NewReader(""), &stdout, &stderr)
			assert.Equal(t, exitUsage, code)
			assert.Contains(t, stderr.String(), test.stderr)
			assert.Empty(t, stdout.String())
		})
	}
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--help"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stderr.String(), "--scores-file")
}
