// Package config loads statblock settings from the environment
package config

import (
	stderrors "errors"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/rpg-entities/entities/codec"
	"github.com/KirkDiggler/rpg-entities/errors"
	"github.com/KirkDiggler/rpg-entities/internal/logging"
)

// Prefix is prepended to every variable name
const Prefix = "STATBLOCK_"

// DefaultEnvFile is read when no env file is given
const DefaultEnvFile = ".env"

// Config holds the CLI defaults. Command-line flags take precedence.
type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Strict   bool   `env:"STRICT" envDefault:"false"`
	Indent   int    `env:"INDENT" envDefault:"2"`
	Format   string `env:"FORMAT" envDefault:"auto"`
}

// Load reads the env files, missing ones are skipped, then parses the
// environment
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to load env file %s", f)
		}
	}
	return Parse()
}

// Parse reads Config from the environment only
func Parse() (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: Prefix}); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every setting
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		vb.InvalidField(Prefix+"LOG_LEVEL", errors.GetMessage(err))
	}
	if c.Indent < 0 || c.Indent > 8 {
		vb.Fieldf(Prefix+"INDENT", "must be between 0 and 8, got %d", c.Indent)
	}
	if _, err := codec.ParseFormat(c.Format); err != nil {
		vb.InvalidField(Prefix+"FORMAT", errors.GetMessage(err))
	}
	return vb.Build()
}

// IndentString returns the indent unit used for pretty output
func (c *Config) IndentString() string {
	return strings.Repeat(" ", c.Indent)
}
