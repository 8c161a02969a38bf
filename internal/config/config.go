package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/mandel/internal/compute"
	"github.com/san-kum/mandel/internal/escape"
	"github.com/san-kum/mandel/internal/grid"
)

const (
	DefaultDensity = 512
	DefaultBudget  = escape.DefaultBudget
	DefaultWorkers = 0
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	// RegionName selects a named region; Region is used when it is empty.
	RegionName string      `yaml:"region_name,omitempty"`
	Region     grid.Region `yaml:"region"`
	Cols       int         `yaml:"cols"`
	Rows       int         `yaml:"rows"`
	Budget     int         `yaml:"budget"`
	Backend    string      `yaml:"backend"`
	Workers    int         `yaml:"workers"`
}

func DefaultConfig() *Config {
	return &Config{
		Region:  grid.Full,
		Cols:    DefaultDensity,
		Rows:    DefaultDensity,
		Budget:  DefaultBudget,
		Backend: compute.DefaultBackend,
		Workers: DefaultWorkers,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
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

// ResolveRegion returns the named region if set, else the explicit one.
func (c *Config) ResolveRegion() (grid.Region, error) {
	if c.RegionName != "" {
		return grid.LookupRegion(c.RegionName)
	}
	return c.Region, nil
}

// Grid builds the sampling grid described by the config.
func (c *Config) Grid() (grid.Grid, error) {
	r, err := c.ResolveRegion()
	if err != nil {
		return grid.Grid{}, err
	}
	return grid.FromRegion(r, c.Cols, c.Rows)
}

func (c *Config) Validate() error {
	if c.Budget <= 0 {
		return fmt.Errorf("%w: budget must be positive, got %d", ErrInvalidConfig, c.Budget)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Workers)
	}
	if _, err := compute.NewBackend(c.Backend, c.Workers); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.Grid(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
