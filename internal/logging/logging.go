// Package logging builds the CLI logger
package logging

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/KirkDiggler/rpg-entities/errors"
)

// ParseLevel parses debug, info, warn, error or fatal
func ParseLevel(raw string) (log.Level, error) {
	lvl, err := log.ParseLevel(raw)
	if err != nil {
		return 0, errors.InvalidArgumentf("unknown log level %q", raw).
			WithMeta("allowed", []string{"debug", "info", "warn", "error", "fatal"})
	}
	return lvl, nil
}

// New returns a logger writing key/value lines to w
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		Level:  lvl,
		Prefix: "statblock",
	}), nil
}
