package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Starfield.Count != 50 {
		t.Errorf("expected default star count 50, got %d", cfg.Starfield.Count)
	}
	if cfg.Starfield.Threshold != 100 {
		t.Errorf("expected default edge threshold 100, got %g", cfg.Starfield.Threshold)
	}
	if cfg.Spectrum.FFTSize != 64 {
		t.Errorf("expected default fft size 64, got %d", cfg.Spectrum.FFTSize)
	}
	if _, ok := cfg.Element(cfg.Starfield.Target); !ok {
		t.Errorf("expected default starfield target %q to exist", cfg.Starfield.Target)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Width != DefaultConfig().Window.Width {
		t.Errorf("expected default window width, got %d", cfg.Window.Width)
	}
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "galaxy.yml")
	data := `
log_level: debug
starfield:
  count: 12
  threshold: 42.5
spectrum:
  fft_size: 128
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %q", cfg.LogLevel)
	}
	if cfg.Starfield.Count != 12 {
		t.Errorf("expected count 12, got %d", cfg.Starfield.Count)
	}
	if cfg.Starfield.Threshold != 42.5 {
		t.Errorf("expected threshold 42.5, got %g", cfg.Starfield.Threshold)
	}
	if cfg.Spectrum.FFTSize != 128 {
		t.Errorf("expected fft size 128, got %d", cfg.Spectrum.FFTSize)
	}
	// Untouched keys keep their defaults.
	if cfg.Starfield.StarColor != "#0ff" {
		t.Errorf("expected default star color, got %q", cfg.Starfield.StarColor)
	}
}

func TestLoadYAMLElementsReplaceDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "galaxy.yml")
	data := `
elements:
  - {id: a, width: 10, height: 10}
  - {id: b, width: 10, height: 10}
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []Element{
		{ID: "a", Width: 10, Height: 10},
		{ID: "b", Width: 10, Height: 10},
	}
	if len(cfg.Elements) != len(want) {
		t.Fatalf("expected %d elements, got %+v", len(want), cfg.Elements)
	}
	for i := range want {
		if cfg.Elements[i] != want[i] {
			t.Errorf("element %d = %+v, want %+v", i, cfg.Elements[i], want[i])
		}
	}
	if _, ok := cfg.Element("audio"); ok {
		t.Error("default audio element must not survive a configured list")
	}
}

func TestLoadWithoutElementsKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "galaxy.yml")
	if err := os.WriteFile(path, []byte("log_level: warn\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Elements) != len(DefaultConfig().Elements) {
		t.Fatalf("expected default elements, got %+v", cfg.Elements)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GALAXY_STARFIELD__COUNT", "80")
	t.Setenv("GALAXY_LOG_LEVEL", "warn")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Starfield.Count != 80 {
		t.Errorf("expected env count 80, got %d", cfg.Starfield.Count)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("expected env log level warn, got %q", cfg.LogLevel)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte("starfield: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"window", func(c *Config) { c.Window.Width = 0 }, "window size"},
		{"duplicate element", func(c *Config) { c.Elements = append(c.Elements, c.Elements[0]) }, "duplicate element"},
		{"radius range", func(c *Config) { c.Starfield.RadiusMin = 4 }, "radius range"},
		{"fft not power of two", func(c *Config) { c.Spectrum.FFTSize = 100 }, "power of two"},
		{"smoothing", func(c *Config) { c.Spectrum.Smoothing = 1 }, "smoothing"},
		{"decibels", func(c *Config) { c.Spectrum.MinDecibels = -20 }, "min_decibels"},
		{"ring too small", func(c *Config) { c.Audio.RingSize = 16 }, "ring_size"},
		{"bad color", func(c *Config) { c.Starfield.EdgeColor = "cyan" }, "starfield.edge_color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestValidateAllowsMissingElements(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Elements = nil
	if err := cfg.Validate(); err != nil {
		t.Fatalf("a page without elements is valid, got %v", err)
	}
}
