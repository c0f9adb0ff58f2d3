// Package config loads process configuration from the environment and flags.
package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/ayusman/ambidraw/internal/capture"
	"github.com/ayusman/ambidraw/internal/geometry"
)

// Config holds the ambidraw service configuration.
type Config struct {
	Addr        string  `env:"AMBIDRAW_ADDR" envDefault:":8080"`
	DBPath      string  `env:"AMBIDRAW_DB_PATH"`
	StaticDir   string  `env:"AMBIDRAW_STATIC_DIR"`
	CanvasWidth float64 `env:"AMBIDRAW_CANVAS_WIDTH" envDefault:"800"`
	SidePolicy  string  `env:"AMBIDRAW_SIDE_POLICY" envDefault:"latest"`

	CornerWindow int     `env:"AMBIDRAW_CORNER_WINDOW" envDefault:"5"`
	CornerAngle  float64 `env:"AMBIDRAW_CORNER_ANGLE" envDefault:"30"`
	CornerSkip   int     `env:"AMBIDRAW_CORNER_SKIP" envDefault:"10"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads the environment, then lets flags in args override it.
func Load(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "sqlite attempt archive path (empty disables archiving)")
	fs.StringVar(&cfg.StaticDir, "web", cfg.StaticDir, "directory of static web files")
	fs.Float64Var(&cfg.CanvasWidth, "canvas-width", cfg.CanvasWidth, "default canvas width in pixels")
	fs.StringVar(&cfg.SidePolicy, "side-policy", cfg.SidePolicy, "contact side rule: latest or first")
	fs.IntVar(&cfg.CornerWindow, "corner-window", cfg.CornerWindow, "corner detection window in points")
	fs.Float64Var(&cfg.CornerAngle, "corner-angle", cfg.CornerAngle, "corner detection angle in degrees")
	fs.IntVar(&cfg.CornerSkip, "corner-skip", cfg.CornerSkip, "points skipped after a detected corner")
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr is required")
	}
	if c.CanvasWidth <= 0 {
		return fmt.Errorf("canvas width must be positive, got %v", c.CanvasWidth)
	}
	if _, err := capture.ParseSidePolicy(c.SidePolicy); err != nil {
		return err
	}
	if c.CornerWindow < 1 {
		return fmt.Errorf("corner window must be at least 1, got %d", c.CornerWindow)
	}
	if c.CornerAngle <= 0 || c.CornerAngle >= 180 {
		return fmt.Errorf("corner angle must be in (0, 180), got %v", c.CornerAngle)
	}
	if c.CornerSkip < 0 {
		return fmt.Errorf("corner skip must not be negative, got %d", c.CornerSkip)
	}
	return nil
}

// Policy returns the parsed side policy. Call after Validate.
func (c Config) Policy() capture.SidePolicy {
	p, _ := capture.ParseSidePolicy(c.SidePolicy)
	return p
}

// Corners returns the corner detection settings.
func (c Config) Corners() geometry.CornerConfig {
	return geometry.CornerConfig{
		Window:         c.CornerWindow,
		AngleThreshold: c.CornerAngle,
		SkipAhead:      c.CornerSkip,
	}
}
