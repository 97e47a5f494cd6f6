package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/transgrid/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	assert.Equal(t, grid.MinSize, cfg.Grid.MinSize)
	assert.Equal(t, grid.MaxSize, cfg.Grid.MaxSize)
	assert.Equal(t, grid.DefaultValueBound, cfg.Grid.ValueBound)
	assert.Zero(t, cfg.Grid.Seed)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 120*time.Millisecond, cfg.FrameInterval())
	assert.Equal(t, 2*time.Second, cfg.ToastDuration())
	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Grid, cfg.Grid)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().UI, cfg.UI)
}

func TestConfig_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "transgrid.yaml")

	cfg := Default()
	cfg.Grid.MaxSize = 6
	cfg.Grid.Seed = 99
	cfg.UI.FrameInterval = "40ms"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, loaded.Grid.MaxSize)
	assert.Equal(t, int64(99), loaded.Grid.Seed)
	assert.Equal(t, 40*time.Millisecond, loaded.FrameInterval())
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transgrid.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, grid.MaxSize, cfg.Grid.MaxSize)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("grid: [unclosed"), 0644))
	_, err := Load(bad)
	require.ErrorContains(t, err, "failed to parse config")

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("grid:\n  max_size: 1\n"), 0644))
	_, err = Load(invalid)
	require.ErrorContains(t, err, "grid.max_size")
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("TRANSGRID_LOG_LEVEL", "warn")
	t.Setenv("TRANSGRID_SEED", "12")
	t.Setenv("TRANSGRID_LOG_FILE", "/tmp/transgrid.log")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, int64(12), cfg.Grid.Seed)
	assert.Equal(t, "/tmp/transgrid.log", cfg.Logging.File)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative min", func(c *Config) { c.Grid.MinSize = -1 }},
		{"max not above min", func(c *Config) { c.Grid.MaxSize = c.Grid.MinSize }},
		{"zero bound", func(c *Config) { c.Grid.ValueBound = 0 }},
		{"zero cell width", func(c *Config) { c.UI.CellWidth = 0 }},
		{"unknown level", func(c *Config) { c.Logging.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestConfig_DurationFallbacks(t *testing.T) {
	cfg := Default()
	cfg.UI.FrameInterval = "soon"
	cfg.UI.ToastDuration = "-1s"

	assert.Equal(t, defaultFrameInterval, cfg.FrameInterval())
	assert.Equal(t, defaultToastDuration, cfg.ToastDuration())
}

func TestConfig_GenerateOptions(t *testing.T) {
	cfg := Default()
	cfg.Grid.Seed = 5
	cfg.Grid.ValueBound = 10

	a, err := grid.Generate(4, cfg.GenerateOptions()...)
	require.NoError(t, err)
	b, err := grid.Generate(4, cfg.GenerateOptions()...)
	require.NoError(t, err)
	assert.Equal(t, a.Values(), b.Values())
	for _, v := range a.Values() {
		assert.Less(t, v, 10)
	}
}
