// Package config loads signalscene settings from the environment.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/caarlos0/env/v11"
)

var ErrInvalid = errors.New("invalid config")

// Config holds the settings shared by every command. Command line flags
// override these values.
type Config struct {
	FPS      int           `env:"SIGNALSCENE_FPS"      envDefault:"60"`
	Duration time.Duration `env:"SIGNALSCENE_DURATION" envDefault:"10s"`
	OutDir   string        `env:"SIGNALSCENE_OUT_DIR"  envDefault:"frames"`
	Scenes   []string      `env:"SIGNALSCENE_SCENES"   envSeparator:","`
	Seed     uint64        `env:"SIGNALSCENE_SEED"     envDefault:"1"`
	Size     int           `env:"SIGNALSCENE_SIZE"     envDefault:"512"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalid, c.FPS)
	case c.Duration <= 0:
		return fmt.Errorf("%w: duration must be positive, got %v", ErrInvalid, c.Duration)
	case c.Size <= 0:
		return fmt.Errorf("%w: size must be positive, got %d", ErrInvalid, c.Size)
	}
	return nil
}

// FrameInterval is the wall time between frames.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// FrameMillis is FrameInterval in clock milliseconds.
func (c Config) FrameMillis() float64 {
	return 1000 / float64(c.FPS)
}

// Frames is the number of frames in Duration, rounded up.
func (c Config) Frames() int {
	return int(math.Ceil(c.Duration.Seconds() * float64(c.FPS)))
}
