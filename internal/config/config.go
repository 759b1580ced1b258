// Package config loads cliffcalc settings.
//
// Priority is flags > CLIFFCALC_* environment variables > defaults: the
// environment is decoded first and its values become the flag defaults.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/katalvlaran/clifford/algebra"
	"github.com/katalvlaran/clifford/batch"
)

// EnvPrefix prefixes every environment variable read by Parse.
const EnvPrefix = "CLIFFCALC_"

// ErrInvalid marks a configuration that parsed but cannot be run.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full cliffcalc configuration.
type Config struct {
	Algebra  string `env:"ALGEBRA" envDefault:"pga3"`
	Op       string `env:"OP" envDefault:"mul"`
	Left     string `env:"LEFT"`
	Right    string `env:"RIGHT"`
	JSON     bool   `env:"JSON"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Workers  int    `env:"WORKERS" envDefault:"0"`
}

// Validate checks the fields that do not need an algebra to be resolved.
func (c Config) Validate() error {
	if _, err := algebra.Lookup(c.Algebra); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := batch.ParseOp(c.Op); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if strings.TrimSpace(c.Left) == "" {
		return fmt.Errorf("%w: -left is required", ErrInvalid)
	}
	if strings.TrimSpace(c.Right) == "" {
		return fmt.Errorf("%w: -right is required", ErrInvalid)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers cannot be negative: %d", ErrInvalid, c.Workers)
	}

	return nil
}

// Parse reads the environment, then args, then validates.
// Flag errors (including -h) are returned as-is; usage goes to stderr.
func Parse(program string, args []string, stderr io.Writer) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("%w: parse env: %w", ErrInvalid, err)
	}

	fs := flag.NewFlagSet(program, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Algebra, "algebra", cfg.Algebra,
		"Algebra name: one of "+strings.Join(algebra.Names(), ", ")+".")
	fs.StringVar(&cfg.Op, "op", cfg.Op, "Operation: add, inner, outer, mul or geometric.")
	fs.StringVar(&cfg.Left, "left", cfg.Left, "Left operand, comma-separated coefficients in slot order.")
	fs.StringVar(&cfg.Right, "right", cfg.Right, "Right operands, ';'-separated coefficient lists.")
	fs.BoolVar(&cfg.JSON, "json", cfg.JSON, "Output results as JSON.")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error.")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Concurrent evaluations (0 = GOMAXPROCS).")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("%w: unexpected arguments %q", ErrInvalid, fs.Args())
	}
	cfg.Op = strings.ToLower(strings.TrimSpace(cfg.Op))
	if err := cfg.Validate(); err != nil {
		fs.Usage()
		return Config{}, err
	}

	return cfg, nil
}
