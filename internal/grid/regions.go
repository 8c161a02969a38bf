package grid

import (
	"fmt"
	"sort"
)

type Region struct {
	XMin float64 `yaml:"xmin" json:"xmin"`
	XMax float64 `yaml:"xmax" json:"xmax"`
	YMin float64 `yaml:"ymin" json:"ymin"`
	YMax float64 `yaml:"ymax" json:"ymax"`
}

// Classic views of the set.
var (
	// Full shows the whole set.
	Full = Region{XMin: -2, XMax: 0.5, YMin: -1.5, YMax: 1.5}

	// SeahorseValley has dense filaments and repeating curls.
	SeahorseValley = Region{XMin: -0.8, XMax: -0.7, YMin: 0.05, YMax: 0.15}

	// Recursion is a zoom on the period-3 minibrot near -1.76 on the real axis.
	Recursion = Region{XMin: -1.8, XMax: -1.74, YMin: -0.025, YMax: 0.025}

	// ElephantValley has a large bulb with trunk-like tendrils.
	ElephantValley = Region{XMin: -1.85, XMax: -1.75, YMin: -0.10, YMax: -0.02}

	SpiralMinibrot       = Region{XMin: -0.7435, XMax: -0.7420, YMin: 0.1310, YMax: 0.1325}
	TripleSpiral         = Region{XMin: -0.7480, XMax: -0.7450, YMin: 0.0950, YMax: 0.0980}
	ValleyOfTheDragon    = Region{XMin: -0.7400, XMax: -0.7350, YMin: 0.1800, YMax: 0.1850}
	MinibrotInMiniSpiral = Region{XMin: -1.7390, XMax: -1.7375, YMin: -0.0235, YMax: -0.0220}
)

var regions = map[string]Region{
	"full":                    Full,
	"recursion":               Recursion,
	"seahorse_valley":         SeahorseValley,
	"elephant_valley":         ElephantValley,
	"spiral_minibrot":         SpiralMinibrot,
	"triple_spiral":           TripleSpiral,
	"valley_of_the_dragon":    ValleyOfTheDragon,
	"minibrot_in_mini_spiral": MinibrotInMiniSpiral,
}

// LookupRegion returns the named region.
func LookupRegion(name string) (Region, error) {
	r, ok := regions[name]
	if !ok {
		return Region{}, fmt.Errorf("unknown region: %s (available: %v)", name, RegionNames())
	}
	return r, nil
}

// RegionNames lists the named regions in sorted order.
func RegionNames() []string {
	names := make([]string, 0, len(regions))
	for name := range regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r Region) Width() float64  { return r.XMax - r.XMin }
func (r Region) Height() float64 { return r.YMax - r.YMin }

// Center returns the midpoint of the region.
func (r Region) Center() complex128 {
	return complex((r.XMin+r.XMax)/2, (r.YMin+r.YMax)/2)
}
