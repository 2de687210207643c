// Package config loads gridwalk settings from an optional .env file, an
// optional YAML file and GRIDWALK_* environment variables, in that order of
// increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/pathfinder"
	"github.com/katalvlaran/gridwalk/search"
)

// ErrInvalidConfig wraps every load and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix prefixes every environment override.
const EnvPrefix = "GRIDWALK_"

// Config holds the settings of one gridwalk invocation.
type Config struct {
	Columns     int           `yaml:"columns"`     // grid width, ignored when Layout is set
	Rows        int           `yaml:"rows"`        // grid height, ignored when Layout is set
	Algorithm   string        `yaml:"algorithm"`   // selector name, see pathfinder.Algorithms
	Delay       time.Duration `yaml:"delay"`       // pause after every step, e.g. "15ms"
	Boundaries  bool          `yaml:"boundaries"`  // false wraps around the edges
	Diagonal    bool          `yaml:"diagonal"`    // 8-neighborhoods
	Traversable string        `yaml:"traversable"` // "empty" or "wall"
	Seed        int64         `yaml:"seed"`        // random source for mazes and marker placement
	Layout      string        `yaml:"layout"`      // optional ASCII grid, see grid.Parse
	Maze        bool          `yaml:"maze"`        // carve a maze before running Algorithm
	Animate     bool          `yaml:"animate"`     // print a frame after every step
	LogLevel    string        `yaml:"log_level"`   // zap level name
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Columns:     30,
		Rows:        20,
		Algorithm:   string(pathfinder.AStar),
		Boundaries:  true,
		Traversable: grid.Empty.String(),
		Seed:        1,
		LogLevel:    "info",
	}
}

// Load builds a Config from Default, then envFiles (".env" when none are
// given; missing files are skipped), then the YAML file at path (skipped
// when path is empty), then GRIDWALK_* variables. The result is validated.
//
// Variables already present in the environment are never overwritten by
// .env files, matching godotenv.Load.
func Load(path string, envFiles ...string) (Config, error) {
	if err := loadEnvFiles(envFiles); err != nil {
		return Config{}, err
	}

	cfg := Default()
	if path != "" {
		if err := cfg.decodeFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("%w: env file %s: %v", ErrInvalidConfig, f, err)
		}
	}
	return nil
}

func (c *Config) decodeFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	return nil
}

// applyEnv overrides fields from variables found by lookup.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(EnvPrefix + key)
		return strings.TrimSpace(v), ok
	}
	var err error
	setInt := func(key string, dst *int) {
		if v, ok := get(key); ok && err == nil {
			var n int
			if n, err = strconv.Atoi(v); err != nil {
				err = fmt.Errorf("%w: %s%s=%q is not an integer", ErrInvalidConfig, EnvPrefix, key, v)
				return
			}
			*dst = n
		}
	}
	setBool := func(key string, dst *bool) {
		if v, ok := get(key); ok && err == nil {
			var b bool
			if b, err = strconv.ParseBool(v); err != nil {
				err = fmt.Errorf("%w: %s%s=%q is not a boolean", ErrInvalidConfig, EnvPrefix, key, v)
				return
			}
			*dst = b
		}
	}
	setString := func(key string, dst *string) {
		if v, ok := get(key); ok {
			*dst = v
		}
	}

	setInt("COLUMNS", &c.Columns)
	setInt("ROWS", &c.Rows)
	setString("ALGORITHM", &c.Algorithm)
	setBool("BOUNDARIES", &c.Boundaries)
	setBool("DIAGONAL", &c.Diagonal)
	setString("TRAVERSABLE", &c.Traversable)
	setString("LAYOUT", &c.Layout)
	setBool("MAZE", &c.Maze)
	setBool("ANIMATE", &c.Animate)
	setString("LOG_LEVEL", &c.LogLevel)
	if err != nil {
		return err
	}

	if v, ok := get("DELAY"); ok {
		d, perr := time.ParseDuration(v)
		if perr != nil {
			return fmt.Errorf("%w: %sDELAY=%q: %v", ErrInvalidConfig, EnvPrefix, v, perr)
		}
		c.Delay = d
	}
	if v, ok := get("SEED"); ok {
		n, perr := strconv.ParseInt(v, 10, 64)
		if perr != nil {
			return fmt.Errorf("%w: %sSEED=%q is not an integer", ErrInvalidConfig, EnvPrefix, v)
		}
		c.Seed = n
	}
	return nil
}

// Validate checks every field and reports the first problem wrapped in
// ErrInvalidConfig.
func (c Config) Validate() error {
	if c.Layout == "" && (c.Columns <= 0 || c.Rows <= 0) {
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Columns, c.Rows)
	}
	if c.Layout != "" {
		if _, err := grid.Parse(c.Layout); err != nil {
			return fmt.Errorf("%w: layout: %v", ErrInvalidConfig, err)
		}
	}
	if _, err := pathfinder.ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Delay < 0 {
		return fmt.Errorf("%w: delay cannot be negative (%v)", ErrInvalidConfig, c.Delay)
	}
	if _, err := c.TraversableType(); err != nil {
		return err
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
	}
	return nil
}

// AlgorithmName returns the parsed algorithm, or AStar when it is invalid.
func (c Config) AlgorithmName() pathfinder.Algorithm {
	a, err := pathfinder.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return pathfinder.AStar
	}
	return a
}

// TraversableType parses Traversable; only empty and wall are accepted.
func (c Config) TraversableType() (grid.CellType, error) {
	t, err := grid.ParseCellType(c.Traversable)
	if err != nil {
		return grid.Empty, fmt.Errorf("%w: traversable: %v", ErrInvalidConfig, err)
	}
	if t != grid.Empty && t != grid.Wall {
		return grid.Empty, fmt.Errorf("%w: traversable must be empty or wall, got %v", ErrInvalidConfig, t)
	}
	return t, nil
}

// Level returns the parsed log level, defaulting to info.
func (c Config) Level() zapcore.Level {
	l, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}
	return l
}

// SearchOptions translates the run settings into search options.
func (c Config) SearchOptions() []search.Option {
	t, _ := c.TraversableType()
	return []search.Option{
		search.WithTraversable(t),
		search.WithBoundaries(c.Boundaries),
		search.WithDiagonal(c.Diagonal),
		search.WithDelay(c.Delay),
		search.WithSeed(c.Seed),
	}
}
