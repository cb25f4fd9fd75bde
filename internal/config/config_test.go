package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/gridfit/internal/waves"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "basin", cfg.Theme)
	assert.Equal(t, 30, cfg.FrameRate)
	assert.Equal(t, time.Second, cfg.VictoryDelay)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridfit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
theme: drought
frame_rate: 60
victory_delay: 250ms
waves:
  preset: calm
`), 0o644))
	t.Setenv("GRIDFIT_FRAME_RATE", "24")
	t.Setenv("GRIDFIT_LOG_LEVEL", "debug")
	t.Setenv("GRIDFIT_SERVER_ADDR", ":9090")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "drought", cfg.Theme)
	assert.Equal(t, 24, cfg.FrameRate)
	assert.Equal(t, 250*time.Millisecond, cfg.VictoryDelay)
	assert.Equal(t, "calm", cfg.Waves.Preset)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, waves.DefaultStep, cfg.Waves.Step)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("GRIDFIT_FRAME_RATE", "0")
	_, err := Load("")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoad_BadEnv(t *testing.T) {
	t.Setenv("GRIDFIT_VICTORY_DELAY", "soon")
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Theme = "monsoon"
	cfg.Waves.Bands = []BandConfig{{Baseline: 0.4, Frequency: 0.01, Amplitude: 20, Speed: 0.1, Color: "#ffffff10"}}
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"log level", func(c *Config) { c.Log.Level = "loud" }},
		{"log format", func(c *Config) { c.Log.Format = "xml" }},
		{"negative delay", func(c *Config) { c.VictoryDelay = -time.Second }},
		{"step", func(c *Config) { c.Waves.Step = 0 }},
		{"preset", func(c *Config) { c.Waves.Preset = "tsunami" }},
		{"band color", func(c *Config) { c.Waves.Bands = []BandConfig{{Color: "teal"}} }},
		{"terminal scale", func(c *Config) { c.Waves.TerminalScale = 0 }},
		{"server limits", func(c *Config) { c.Server.MaxTicks = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestBandSet(t *testing.T) {
	bands := DefaultConfig().Waves.BandSet()
	require.Len(t, bands, len(waves.DefaultBands))
	for i, b := range bands {
		want := waves.DefaultBands[i]
		assert.Equal(t, want.Baseline, b.Baseline)
		assert.Equal(t, want.Amplitude, b.Amplitude)
		assert.InDelta(t, want.Color.A, b.Color.A, 0.005)
		assert.InDelta(t, want.Color.G, b.Color.G, 0.005)
	}
}

func TestPresets(t *testing.T) {
	assert.Equal(t, []string{"calm", "default", "surge"}, ListPresets())
	assert.Nil(t, GetPreset("nonexistent"))

	p := GetPreset("calm")
	p[0].Amplitude = 999
	assert.NotEqual(t, 999.0, Presets["calm"][0].Amplitude)
}
