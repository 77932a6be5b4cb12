package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "MINESWEEPER"

type Config struct {
	ScoresFile  string
	LogFile     string
	LogLevel    string
	NoColor     bool
	Development bool
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"scores_file": c.ScoresFile,
		"log_file":    c.LogFile,
		"log_level":   c.LogLevel,
		"no_color":    c.NoColor,
		"development": c.Development,
	}
}

// Flags registers every option on fs. Each flag can also be set through an
// environment variable, e.g. --scores-file through MINESWEEPER_SCORES_FILE,
// or through the file given with --config.
func Flags(fs *pflag.FlagSet) {
	fs.String("scores-file", "scores.bin", "high score file")
	fs.String("log-file", "", "write logs to this file, rotated by size")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
	fs.Bool("no-color", false, "disable colored output")
	fs.Bool("development", false, "log at debug level to stderr")
	fs.StringP("config", "c", "", "config file path (json, yaml or toml)")
}

// Load resolves the configuration from, in order of precedence, flags set
// on the command line, environment variables, the config file and flag
// defaults. fs must have been set up with [Flags] and parsed.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("development", EnvPrefix+"_DEVELOPMENT", "DEVELOPMENT"); err != nil {
		return nil, err
	}
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("unable to bind flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}

	config := &Config{
		ScoresFile:  v.GetString("scores-file"),
		LogFile:     v.GetString("log-file"),
		LogLevel:    v.GetString("log-level"),
		NoColor:     v.GetBool("no-color"),
		Development: v.GetBool("development"),
	}

	if config.ScoresFile == "" {
		return nil, fmt.Errorf("scores file path is empty")
	}
	if _, err := logrus.ParseLevel(config.LogLevel); err != nil {
		return nil, err
	}

	return config, nil
}
