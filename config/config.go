// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/coderodde/pctree/learn"
)

// ErrInvalid wraps every validation and parse failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the complete pct configuration.
type Config struct {
	Algorithm     string `yaml:"algorithm" validate:"required,algorithm"`
	OptimalLimit  int    `yaml:"optimal_limit" validate:"gte=1,lte=63"`
	Samples       int    `yaml:"samples" validate:"gte=1"`
	Seed          int64  `yaml:"seed"`
	MaxNodes      int    `yaml:"max_nodes" validate:"gte=0"`
	MaxPartitions int    `yaml:"max_partitions" validate:"gte=0"`
	Workers       int    `yaml:"workers" validate:"gte=1,lte=256"`

	Log   LogConfig   `yaml:"log"`
	Store StoreConfig `yaml:"store"`
}

// LogConfig selects the CLI log handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// StoreConfig points at the BadgerDB directory learned trees go to.
type StoreConfig struct {
	Path       string `yaml:"path"`
	SyncWrites bool   `yaml:"sync_writes"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("algorithm", func(fl validator.FieldLevel) bool {
		_, err := learn.ParseAlgorithm(fl.Field().String())
		return err == nil
	})
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Algorithm:     learn.Optimal.String(),
		OptimalLimit:  8,
		Samples:       learn.DefaultSamples,
		Seed:          learn.DefaultSeed,
		MaxNodes:      learn.DefaultMaxNodes,
		MaxPartitions: learn.DefaultMaxPartitions,
		Workers:       4,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Parse decodes YAML over Default and validates the result. Unknown keys
// are rejected.
func Parse(data []byte) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return c, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}

	return c, nil
}

// Load reads path (Default when path is empty), applies PCT_* environment
// overrides and validates.
func Load(path string) (Config, error) {
	c := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("config: read %s: %w", path, err)
		}
		if c, err = Parse(data); err != nil {
			return c, fmt.Errorf("%s: %w", path, err)
		}
	}
	if err := ApplyEnv(&c, os.LookupEnv); err != nil {
		return c, err
	}
	if err := c.Validate(); err != nil {
		return c, err
	}

	return c, nil
}

// ApplyEnv overrides c from environment variables:
//
//	PCT_ALGORITHM, PCT_WORKERS, PCT_SEED, PCT_SAMPLES,
//	PCT_LOG_LEVEL, PCT_LOG_FORMAT, PCT_STORE_PATH
//
// lookup is usually os.LookupEnv.
func ApplyEnv(c *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup("PCT_ALGORITHM"); ok {
		c.Algorithm = v
	}
	if v, ok := lookup("PCT_LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := lookup("PCT_LOG_FORMAT"); ok {
		c.Log.Format = v
	}
	if v, ok := lookup("PCT_STORE_PATH"); ok {
		c.Store.Path = v
	}
	ints := []struct {
		name string
		dst  *int
	}{
		{"PCT_WORKERS", &c.Workers},
		{"PCT_SAMPLES", &c.Samples},
	}
	for _, e := range ints {
		if v, ok := lookup(e.name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %s: %w", ErrInvalid, e.name, err)
			}
			*e.dst = n
		}
	}
	if v, ok := lookup("PCT_SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: PCT_SEED: %w", ErrInvalid, err)
		}
		c.Seed = n
	}

	return nil
}

// Validate checks every field against its tag.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// AlgorithmFor returns the algorithm used for an alphabet of the given
// size. Optimal falls back to Greedy above OptimalLimit symbols; fellBack
// reports whether that happened.
func (c Config) AlgorithmFor(alphabetSize int) (alg learn.Algorithm, fellBack bool, err error) {
	alg, err = learn.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if alg == learn.Optimal && alphabetSize > c.OptimalLimit {
		return learn.Greedy, true, nil
	}

	return alg, false, nil
}

// LearnerFor builds the learner for an alphabet of the given size from c.
// Each extra function receives the resolved algorithm and returns options
// appended after the configured ones.
func (c Config) LearnerFor(alphabetSize int, logger *slog.Logger, extra ...func(learn.Algorithm) []learn.Option) (*learn.Learner, error) {
	alg, fellBack, err := c.AlgorithmFor(alphabetSize)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if fellBack {
		logger.Warn("alphabet too large for the optimal learner, using greedy",
			slog.Int("symbols", alphabetSize),
			slog.Int("optimal_limit", c.OptimalLimit),
		)
	}
	opts := []learn.Option{
		learn.WithAlgorithm(alg),
		learn.WithSamples(c.Samples),
		learn.WithSeed(c.Seed),
		learn.WithMaxNodes(c.MaxNodes),
		learn.WithMaxPartitions(c.MaxPartitions),
		learn.WithLogger(logger),
	}

	for _, fn := range extra {
		opts = append(opts, fn(alg)...)
	}

	return learn.New(opts...)
}

// SlogLevel maps Log.Level to a slog.Level; unknown names map to Info.
func (c Config) SlogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
