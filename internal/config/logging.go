package config

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

const (
	logMaxSizeMB  = 5
	logMaxBackups = 3
	logMaxAgeDays = 28
)

// NewLogger builds the process logger. The terminal belongs to the game, so
// entries only reach stderr in development mode; otherwise they go to the
// rotated log file, if one is configured, and nowhere else.
func NewLogger(c *Config, stderr io.Writer) (*logrus.Logger, error) {
	log := logrus.New()

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}

	if c.Development {
		level = logrus.DebugLevel
		log.SetOutput(stderr)
		log.SetFormatter(&logrus.TextFormatter{ForceColors: !c.NoColor})
	} else {
		log.SetOutput(io.Discard)
	}
	log.SetLevel(level)

	if c.LogFile != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   c.LogFile,
			MaxSize:    logMaxSizeMB,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAgeDays,
			Level:      level,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return nil, fmt.Errorf("unable to open log file %s: %w", c.LogFile, err)
		}
		log.AddHook(hook)
	}

	return log, nil
}
