package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gogpu/gg"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/gridfit/internal/waves"
)

const (
	DefaultTheme        = "basin"
	DefaultPreset       = "default"
	DefaultFrameRate    = 30
	DefaultVictoryDelay = time.Second
	DefaultAddr         = ":8080"
	DefaultTermScale    = 0.08
	DefaultTermGrid     = 16.0
)

// ErrInvalid indicates a configuration value outside its valid range.
var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Theme        string        `yaml:"theme" env:"GRIDFIT_THEME"`
	FrameRate    int           `yaml:"frame_rate" env:"GRIDFIT_FRAME_RATE"`
	VictoryDelay time.Duration `yaml:"victory_delay" env:"GRIDFIT_VICTORY_DELAY"`
	Log          LogConfig     `yaml:"log" envPrefix:"GRIDFIT_LOG_"`
	Waves        WavesConfig   `yaml:"waves" envPrefix:"GRIDFIT_WAVES_"`
	Server       ServerConfig  `yaml:"server" envPrefix:"GRIDFIT_SERVER_"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"LEVEL"`
	Format string `yaml:"format" env:"FORMAT"`
	// File receives TUI logs; empty discards them.
	File string `yaml:"file" env:"FILE"`
}

type WavesConfig struct {
	Preset        string       `yaml:"preset" env:"PRESET"`
	Step          float64      `yaml:"step" env:"STEP"`
	GridSpacing   float64      `yaml:"grid_spacing" env:"GRID_SPACING"`
	TerminalScale float64      `yaml:"terminal_scale" env:"TERMINAL_SCALE"`
	TerminalGrid  float64      `yaml:"terminal_grid" env:"TERMINAL_GRID"`
	Bands         []BandConfig `yaml:"bands,omitempty"`
}

type BandConfig struct {
	Baseline  float64 `yaml:"baseline"`
	Frequency float64 `yaml:"frequency"`
	Amplitude float64 `yaml:"amplitude"`
	Speed     float64 `yaml:"speed"`
	// Color is #RRGGBBAA.
	Color string `yaml:"color"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr" env:"ADDR"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
	MaxTicks        int           `yaml:"max_ticks" env:"MAX_TICKS"`
	MaxWidth        int           `yaml:"max_width" env:"MAX_WIDTH"`
	MaxHeight       int           `yaml:"max_height" env:"MAX_HEIGHT"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme:        DefaultTheme,
		FrameRate:    DefaultFrameRate,
		VictoryDelay: DefaultVictoryDelay,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Waves: WavesConfig{
			Preset:        DefaultPreset,
			Step:          waves.DefaultStep,
			GridSpacing:   waves.DefaultGridSpacing,
			TerminalScale: DefaultTermScale,
			TerminalGrid:  DefaultTermGrid,
		},
		Server: ServerConfig{
			Addr:            DefaultAddr,
			ShutdownTimeout: 10 * time.Second,
			MaxTicks:        2000,
			MaxWidth:        3840,
			MaxHeight:       2160,
		},
	}
}

// Load reads path (if non-empty) over the defaults, then applies GRIDFIT_*
// environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first out-of-range value.
func (c *Config) Validate() error {
	if c.FrameRate <= 0 || c.FrameRate > 240 {
		return fmt.Errorf("%w: frame_rate %d not in 1..240", ErrInvalid, c.FrameRate)
	}
	if c.VictoryDelay < 0 {
		return fmt.Errorf("%w: victory_delay %s is negative", ErrInvalid, c.VictoryDelay)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.Log.Format)
	}
	if c.Waves.Step <= 0 {
		return fmt.Errorf("%w: waves step must be positive", ErrInvalid)
	}
	if c.Waves.GridSpacing < 0 || c.Waves.TerminalGrid < 0 {
		return fmt.Errorf("%w: grid spacing must not be negative", ErrInvalid)
	}
	if c.Waves.TerminalScale <= 0 {
		return fmt.Errorf("%w: terminal_scale must be positive", ErrInvalid)
	}
	if len(c.Waves.Bands) == 0 && GetPreset(c.Waves.Preset) == nil {
		return fmt.Errorf("%w: unknown waves preset %q", ErrInvalid, c.Waves.Preset)
	}
	for i, b := range c.Waves.Bands {
		if !validHex(b.Color) {
			return fmt.Errorf("%w: band %d color %q", ErrInvalid, i, b.Color)
		}
	}
	if c.Server.MaxTicks <= 0 || c.Server.MaxWidth <= 0 || c.Server.MaxHeight <= 0 {
		return fmt.Errorf("%w: server limits must be positive", ErrInvalid)
	}
	return nil
}

// BandSet returns the explicit bands if any, else the preset's.
func (w WavesConfig) BandSet() []waves.Band {
	src := w.Bands
	if len(src) == 0 {
		src = GetPreset(w.Preset)
	}
	out := make([]waves.Band, 0, len(src))
	for _, b := range src {
		out = append(out, waves.Band{
			Baseline:  b.Baseline,
			Frequency: b.Frequency,
			Amplitude: b.Amplitude,
			Speed:     b.Speed,
			Color:     gg.Hex(b.Color),
		})
	}
	return out
}

func validHex(s string) bool {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, c := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return false
		}
	}
	return true
}
