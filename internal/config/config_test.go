package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Sampler.Radius != 100 {
		t.Errorf("expected radius 100, got %v", cfg.Sampler.Radius)
	}
	if cfg.Sampler.Count != 2000 {
		t.Errorf("expected count 2000, got %d", cfg.Sampler.Count)
	}
	if cfg.Hull.MaxDepth != 4096 {
		t.Errorf("expected max depth 4096, got %d", cfg.Hull.MaxDepth)
	}
	if cfg.Export.Format != "obj" {
		t.Errorf("expected export format obj, got %s", cfg.Export.Format)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestMorphRadius(t *testing.T) {
	cfg := Default()
	if got := cfg.MorphRadius(); got != 100 {
		t.Errorf("expected morph radius to follow sampler radius, got %v", got)
	}

	cfg.Morph.Radius = 42
	if got := cfg.MorphRadius(); got != 42 {
		t.Errorf("expected explicit morph radius 42, got %v", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"radius", func(c *Config) { c.Sampler.Radius = 0 }, "sampler.radius"},
		{"count", func(c *Config) { c.Sampler.Count = -1 }, "sampler.count"},
		{"depth", func(c *Config) { c.Hull.MaxDepth = 0 }, "hull.max_depth"},
		{"faces", func(c *Config) { c.Hull.MaxFaces = -5 }, "hull.max_faces"},
		{"morph", func(c *Config) { c.Morph.Radius = -1 }, "morph.radius"},
		{"format", func(c *Config) { c.Export.Format = "fbx" }, "export.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected %q in %q", tt.want, err.Error())
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "hullgen.yaml")

	yamlContent := `
sampler:
  radius: 50
  count: 500
  seed: 1234

hull:
  max_depth: 128
  max_faces: 10000

morph:
  radius: 75

export:
  dir: "out"
  format: "stl"
  name: "blob"

logging:
  level: "debug"
  log_file: "hullgen.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Sampler.Radius != 50 || cfg.Sampler.Count != 500 || cfg.Sampler.Seed != 1234 {
		t.Errorf("unexpected sampler config: %+v", cfg.Sampler)
	}
	if cfg.Hull.MaxDepth != 128 || cfg.Hull.MaxFaces != 10000 {
		t.Errorf("unexpected hull config: %+v", cfg.Hull)
	}
	// Not in the file, keeps its default.
	if cfg.Hull.CoplanarEpsilon != 1e-6 {
		t.Errorf("expected default coplanar epsilon, got %v", cfg.Hull.CoplanarEpsilon)
	}
	if cfg.Morph.Radius != 75 {
		t.Errorf("expected morph radius 75, got %v", cfg.Morph.Radius)
	}
	if cfg.Export.Dir != "out" || cfg.Export.Format != "stl" || cfg.Export.Name != "blob" {
		t.Errorf("unexpected export config: %+v", cfg.Export)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "hullgen.log" {
		t.Errorf("unexpected logging config: %+v", cfg.Logging)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"bad syntax", "sampler:\n  radius: not a number\n  invalid syntax here\n"},
		{"unknown key", "hull:\n  max_dept: 10\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tmpDir, strings.ReplaceAll(tt.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}
			if err := loadFromFile(Default(), path); err == nil {
				t.Error("expected error loading invalid YAML, got nil")
			}
		})
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("empty file should load: %v", err)
	}
	if cfg.Sampler.Count != 2000 {
		t.Errorf("expected defaults to survive, got count %d", cfg.Sampler.Count)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/hullgen.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "hullgen.yaml")

	cfg := Default()
	cfg.Sampler.Seed = 99
	cfg.Export.Format = "stl"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Sampler.Seed != 99 || loaded.Export.Format != "stl" {
		t.Errorf("saved values not reloaded: %+v %+v", loaded.Sampler, loaded.Export)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name: "sampler flags",
			setup: func() {
				*flagRadius = 12.5
				*flagCount = 0
				*flagSeed = 7
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Sampler.Radius != 12.5 {
					t.Errorf("expected radius 12.5, got %v", cfg.Sampler.Radius)
				}
				if cfg.Sampler.Count != 0 {
					t.Errorf("expected count 0, got %d", cfg.Sampler.Count)
				}
				if cfg.Sampler.Seed != 7 {
					t.Errorf("expected seed 7, got %d", cfg.Sampler.Seed)
				}
			},
			teardown: func() {
				*flagRadius = 0
				*flagCount = -1
				*flagSeed = 0
			},
		},
		{
			name: "export flags",
			setup: func() {
				*flagOut = "meshes"
				*flagFormat = "stl"
				*flagMorph = 30
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Export.Dir != "meshes" || cfg.Export.Format != "stl" {
					t.Errorf("unexpected export config: %+v", cfg.Export)
				}
				if cfg.Morph.Radius != 30 {
					t.Errorf("expected morph radius 30, got %v", cfg.Morph.Radius)
				}
			},
			teardown: func() {
				*flagOut = ""
				*flagFormat = ""
				*flagMorph = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "hullgen.yaml")

	yamlContent := `
sampler:
  radius: 40
  count: 300
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagCount = 900
	defer func() {
		*flagConfig = ""
		*flagCount = -1
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Sampler.Count != 900 {
		t.Errorf("expected count 900 from flag, got %d", cfg.Sampler.Count)
	}
	if cfg.Sampler.Radius != 40 {
		t.Errorf("expected radius 40 from file, got %v", cfg.Sampler.Radius)
	}
}
