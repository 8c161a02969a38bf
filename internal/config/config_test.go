package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/mandel/internal/grid"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, grid.Full, cfg.Region)
	assert.Equal(t, 512, cfg.Cols)
	assert.Equal(t, 512, cfg.Rows)
	assert.Equal(t, 20, cfg.Budget)
	assert.Equal(t, "cpu", cfg.Backend)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mandel.yaml")
	data := []byte("region_name: seahorse_valley\nbudget: 300\nbackend: serial\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 300, cfg.Budget)
	assert.Equal(t, "serial", cfg.Backend)
	assert.Equal(t, DefaultDensity, cfg.Cols, "unset fields keep defaults")

	r, err := cfg.ResolveRegion()
	require.NoError(t, err)
	assert.Equal(t, grid.SeahorseValley, r)
}

func TestLoad_ExplicitRegion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mandel.yaml")
	data := []byte("region:\n  xmin: -1\n  xmax: 1\n  ymin: -0.5\n  ymax: 0.5\ncols: 20\nrows: 10\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	g, err := cfg.Grid()
	require.NoError(t, err)
	assert.Equal(t, 200, g.Len())
	assert.Equal(t, complex(1, 0.5), g.Point(9, 19))
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"zero budget", "budget: 0\n"},
		{"negative workers", "workers: -2\n"},
		{"unknown backend", "backend: gpu\n"},
		{"unknown region", "region_name: atlantis\n"},
		{"reversed region", "region: {xmin: 1, xmax: -1, ymin: 0, ymax: 1}\n"},
		{"bad yaml", "budget: [1, 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "mandel.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mandel.yaml")
	cfg := DefaultConfig()
	cfg.Budget = 77
	cfg.Workers = 3

	require.NoError(t, Save(path, cfg))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestPresets(t *testing.T) {
	assert.NotEmpty(t, ListPresets())
	for _, name := range ListPresets() {
		cfg := GetPreset(name)
		require.NotNil(t, cfg, name)
		assert.NoError(t, cfg.Validate(), name)
	}

	assert.Nil(t, GetPreset("nonexistent"))

	full := GetPreset("original")
	require.NotNil(t, full)
	assert.Equal(t, grid.Full, full.Region)
	assert.Equal(t, 6000, full.Cols)
	assert.Equal(t, 6000, full.Rows)
	assert.Equal(t, 75, full.Budget)

	zoom := GetPreset("recursion")
	require.NotNil(t, zoom)
	r, err := zoom.ResolveRegion()
	require.NoError(t, err)
	assert.Equal(t, grid.Region{XMin: -1.8, XMax: -1.74, YMin: -0.025, YMax: 0.025}, r)
	assert.Equal(t, 2048, zoom.Cols)
	assert.Equal(t, 100, zoom.Budget)

	cfg := GetPreset("quick")
	cfg.Budget = 1
	assert.Equal(t, 50, GetPreset("quick").Budget, "presets must be copied")
}
