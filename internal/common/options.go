// Package common holds the option and logger plumbing shared by the CLI
// commands.
package common

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"trainingcopilot/models"
	"trainingcopilot/pkg/corpus"
)

// NewLogger builds the JSON logger every command uses. --quiet raises
// the level so only errors come through.
func NewLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// LoadOptions resolves the effective options: built-in defaults, then the
// optional config file, then any explicit flags.
func LoadOptions(c *cli.Context) (models.Options, error) {
	opts, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return opts, err
	}

	if c.IsSet("endpoint") {
		opts.Endpoint = c.String("endpoint")
	}
	if c.IsSet("model") {
		opts.Model = c.String("model")
	}
	if c.IsSet("db") {
		opts.DBPath = c.String("db")
	}
	if c.IsSet("port") {
		opts.Port = c.Int("port")
	}
	if c.IsSet("theme") {
		theme := models.Theme(c.String("theme"))
		if theme != models.ThemeLight && theme != models.ThemeDark {
			return opts, fmt.Errorf("unknown theme: %q", c.String("theme"))
		}
		opts.Theme = theme
	}
	return opts, nil
}

// OpenStore opens the corpus at the configured path, or the default
// location next to the binary when none is set.
func OpenStore(opts models.Options) (*corpus.Store, error) {
	if opts.DBPath != "" {
		return corpus.OpenPath(opts.DBPath)
	}
	return corpus.Open()
}
