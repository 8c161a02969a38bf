package config

import (
	"sort"

	"github.com/san-kum/mandel/internal/grid"
)

var Presets = map[string]*Config{
	"quick": {
		Region: grid.Full, Cols: 160, Rows: 120, Budget: 50, Backend: "cpu",
	},
	"classic": {
		Region: grid.Full, Cols: 512, Rows: 512, Budget: 20, Backend: "cpu",
	},
	"original": {
		Region: grid.Full, Cols: 6000, Rows: 6000, Budget: 75, Backend: "cpu",
	},
	"recursion": {
		RegionName: "recursion", Region: grid.Recursion,
		Cols: 2048, Rows: 2048, Budget: 100, Backend: "cpu",
	},
	"detailed": {
		Region: grid.Full, Cols: 1920, Rows: 1080, Budget: 500, Backend: "cpu",
	},
	"seahorse": {
		RegionName: "seahorse_valley", Region: grid.SeahorseValley,
		Cols: 1920, Rows: 1080, Budget: 1000, Backend: "cpu",
	},
	"elephant": {
		RegionName: "elephant_valley", Region: grid.ElephantValley,
		Cols: 1280, Rows: 1024, Budget: 1000, Backend: "cpu",
	},
	"spiral": {
		RegionName: "spiral_minibrot", Region: grid.SpiralMinibrot,
		Cols: 1024, Rows: 1024, Budget: 2000, Backend: "cpu",
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
