package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/san-kum/siqnastee/internal/sketch"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTitle    = "siqnastee"
	DefaultWidth    = 1024
	DefaultHeight   = 768
	DefaultFPS      = 60
	DefaultPinColor = "#000000"
	DefaultLogLevel = "info"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Title      string  `yaml:"title"`
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	CellWidth  float32 `yaml:"cell_width"`
	CellHeight float32 `yaml:"cell_height"`
	FontSize   float32 `yaml:"font_size"`
	Policy     string  `yaml:"policy"`
	Touch      string  `yaml:"touch"`
	PinColor   string  `yaml:"pin_color"`
	Seed       int64   `yaml:"seed"`
	FPS        int     `yaml:"fps"`
	LogLevel   string  `yaml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		Title:      DefaultTitle,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		CellWidth:  sketch.DefaultCellWidth,
		CellHeight: sketch.DefaultCellHeight,
		FontSize:   sketch.DefaultFontSize,
		Policy:     sketch.RandomUnlessPinned.String(),
		Touch:      sketch.TouchRandom.String(),
		PinColor:   DefaultPinColor,
		FPS:        DefaultFPS,
		LogLevel:   DefaultLogLevel,
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of base, so keys missing from the file keep
// the values of base.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the fields a frontend cannot run without. A zero-size
// window is accepted and yields an empty grid.
func (c *Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%w: window size must not be negative, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if !finitePositive(c.CellWidth) || !finitePositive(c.CellHeight) {
		return fmt.Errorf("%w: cell size must be positive, got %gx%g", ErrInvalidConfig, c.CellWidth, c.CellHeight)
	}
	cells := math.Ceil(float64(c.Width)/float64(c.CellWidth)) * math.Ceil(float64(c.Height)/float64(c.CellHeight))
	if cells > sketch.MaxCells {
		return fmt.Errorf("%w: %gx%g cells over a %dx%d window exceed %d cells",
			ErrInvalidConfig, c.CellWidth, c.CellHeight, c.Width, c.Height, sketch.MaxCells)
	}
	if _, err := sketch.ParsePolicy(c.Policy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := sketch.ParseTouchMode(c.Touch); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := sketch.ParseHex(c.PinColor); err != nil {
		return fmt.Errorf("%w: pin_color: %w", ErrInvalidConfig, err)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.FPS)
	}
	return nil
}

func finitePositive(v float32) bool {
	return v > 0 && !math.IsInf(float64(v), 1)
}

// Options converts the config into sketch options.
func (c *Config) Options() (sketch.Options, error) {
	if err := c.Validate(); err != nil {
		return sketch.Options{}, err
	}
	policy, _ := sketch.ParsePolicy(c.Policy)
	touch, _ := sketch.ParseTouchMode(c.Touch)
	pin, _ := sketch.ParseHex(c.PinColor)
	return sketch.Options{
		CellWidth:  c.CellWidth,
		CellHeight: c.CellHeight,
		FontSize:   c.FontSize,
		Policy:     policy,
		Touch:      touch,
		PinColor:   pin,
		Seed:       c.Seed,
	}, nil
}
