package game

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/plus3/tetris2048/engine"
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Environment variables read by ConfigFromEnv.
const (
	EnvHeight       = "TETRIS2048_HEIGHT"
	EnvWidth        = "TETRIS2048_WIDTH"
	EnvFallInterval = "TETRIS2048_FALL_INTERVAL"
	EnvFourChance   = "TETRIS2048_FOUR_CHANCE"
	EnvShapes       = "TETRIS2048_SHAPES"
	EnvSeed         = "TETRIS2048_SEED"
)

// Config holds the tunables of a session.
type Config struct {
	Height       int
	Width        int
	FallInterval time.Duration
	FourChance   float64
	// Shapes is the pool of shape tags pieces are drawn from, e.g. "IOZ".
	Shapes string
	Seed   uint64
}

// DefaultConfig returns a 20x12 board dropping one row every 250ms and
// drawing from all seven shapes.
func DefaultConfig() Config {
	return Config{
		Height:       20,
		Width:        12,
		FallInterval: 250 * time.Millisecond,
		FourChance:   engine.DefaultFourChance,
		Shapes:       "IOZSJLT",
		Seed:         1,
	}
}

// Dims returns the board dimensions.
func (c Config) Dims() engine.Dims {
	return engine.Dims{Height: c.Height, Width: c.Width}
}

// Validate reports the first problem with c.
func (c Config) Validate() error {
	if c.Height <= 0 {
		return fmt.Errorf("%w: height %d must be positive", ErrInvalidConfig, c.Height)
	}
	if c.Width < engine.ShapeI.Size() {
		return fmt.Errorf("%w: width %d cannot hold an I piece", ErrInvalidConfig, c.Width)
	}
	if c.FallInterval <= 0 {
		return fmt.Errorf("%w: fall interval %s must be positive", ErrInvalidConfig, c.FallInterval)
	}
	if c.FourChance < 0 || c.FourChance > 1 {
		return fmt.Errorf("%w: four chance %v outside [0, 1]", ErrInvalidConfig, c.FourChance)
	}
	if c.Shapes == "" {
		return fmt.Errorf("%w: empty shape pool", ErrInvalidConfig)
	}
	if _, err := engine.ParseShapes(c.Shapes); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// ConfigFromEnv overlays the TETRIS2048_* variables found by lookup onto
// base. os.LookupEnv is the usual lookup.
func ConfigFromEnv(base Config, lookup func(string) (string, bool)) (Config, error) {
	cfg := base

	ints := []struct {
		key string
		dst *int
	}{
		{EnvHeight, &cfg.Height},
		{EnvWidth, &cfg.Width},
	}
	for _, v := range ints {
		raw, ok := lookup(v.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return base, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, v.key, err)
		}
		*v.dst = n
	}

	if raw, ok := lookup(EnvFallInterval); ok {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return base, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvFallInterval, err)
		}
		cfg.FallInterval = d
	}
	if raw, ok := lookup(EnvFourChance); ok {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return base, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvFourChance, err)
		}
		cfg.FourChance = f
	}
	if raw, ok := lookup(EnvShapes); ok {
		cfg.Shapes = raw
	}
	if raw, ok := lookup(EnvSeed); ok {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return base, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvSeed, err)
		}
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}
