// Package config handles generator configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all generator settings.
type Config struct {
	Sampler SamplerConfig `yaml:"sampler"`
	Hull    HullConfig    `yaml:"hull"`
	Morph   MorphConfig   `yaml:"morph"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// SamplerConfig controls the random point cloud.
type SamplerConfig struct {
	Radius float32 `yaml:"radius"` // Half-extent of the sampling cube
	Count  int     `yaml:"count"`  // Points drawn before duplicate rejection
	Seed   uint64  `yaml:"seed"`   // 0 picks a random seed per run
}

// HullConfig holds the subdivision safety caps.
type HullConfig struct {
	MaxDepth        int     `yaml:"max_depth"`
	MaxFaces        int     `yaml:"max_faces"`
	CoplanarEpsilon float32 `yaml:"coplanar_epsilon"`
}

// MorphConfig controls the sphere projection.
type MorphConfig struct {
	Radius float32 `yaml:"radius"` // 0 uses the sampler radius
}

// ExportConfig controls where meshes are written.
type ExportConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"` // obj or stl
	Name   string `yaml:"name"`   // File name prefix
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Sampler: SamplerConfig{
			Radius: 100,
			Count:  2000,
			Seed:   0,
		},
		Hull: HullConfig{
			MaxDepth:        4096,
			MaxFaces:        1 << 22,
			CoplanarEpsilon: 1e-6,
		},
		Morph: MorphConfig{
			Radius: 0,
		},
		Export: ExportConfig{
			Dir:    ".",
			Format: "obj",
			Name:   "pcg",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// MorphRadius returns the sphere radius for the morph target.
func (c *Config) MorphRadius() float32 {
	if c.Morph.Radius > 0 {
		return c.Morph.Radius
	}
	return c.Sampler.Radius
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Sampler.Radius <= 0 {
		errs = append(errs, fmt.Errorf("sampler.radius must be positive, got %v", c.Sampler.Radius))
	}
	if c.Sampler.Count < 0 {
		errs = append(errs, fmt.Errorf("sampler.count must not be negative, got %d", c.Sampler.Count))
	}
	if c.Hull.MaxDepth <= 0 {
		errs = append(errs, fmt.Errorf("hull.max_depth must be positive, got %d", c.Hull.MaxDepth))
	}
	if c.Hull.MaxFaces <= 0 {
		errs = append(errs, fmt.Errorf("hull.max_faces must be positive, got %d", c.Hull.MaxFaces))
	}
	if c.Hull.CoplanarEpsilon < 0 {
		errs = append(errs, fmt.Errorf("hull.coplanar_epsilon must not be negative, got %v", c.Hull.CoplanarEpsilon))
	}
	if c.Morph.Radius < 0 {
		errs = append(errs, fmt.Errorf("morph.radius must not be negative, got %v", c.Morph.Radius))
	}
	switch c.Export.Format {
	case "obj", "stl":
	default:
		errs = append(errs, fmt.Errorf("export.format must be obj or stl, got %q", c.Export.Format))
	}
	return errors.Join(errs...)
}
