package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/iburimskiy/galactic-visuals/internal/surface"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment overrides. Nested keys use a double
// underscore: GALAXY_STARFIELD__COUNT -> starfield.count.
const EnvPrefix = "GALAXY_"

// Config is the full runtime configuration.
type Config struct {
	LogLevel  string          `koanf:"log_level" yaml:"log_level"`
	Seed      uint64          `koanf:"seed" yaml:"seed"`
	Window    WindowConfig    `koanf:"window" yaml:"window"`
	Elements  []Element       `koanf:"elements" yaml:"elements"`
	Starfield StarfieldConfig `koanf:"starfield" yaml:"starfield"`
	Spectrum  SpectrumConfig  `koanf:"spectrum" yaml:"spectrum"`
	Audio     AudioConfig     `koanf:"audio" yaml:"audio"`
	Hero      HeroConfig      `koanf:"hero" yaml:"hero"`
	Counters  CountersConfig  `koanf:"counters" yaml:"counters"`
}

type WindowConfig struct {
	Width      int    `koanf:"width" yaml:"width"`
	Height     int    `koanf:"height" yaml:"height"`
	Title      string `koanf:"title" yaml:"title"`
	Background string `koanf:"background" yaml:"background"`
	// FPS paces headless rendering; the window follows vsync.
	FPS int `koanf:"fps" yaml:"fps"`
}

// Element is a named drawing target placed on the page.
type Element struct {
	ID     string `koanf:"id" yaml:"id"`
	X      int    `koanf:"x" yaml:"x"`
	Y      int    `koanf:"y" yaml:"y"`
	Width  int    `koanf:"width" yaml:"width"`
	Height int    `koanf:"height" yaml:"height"`
}

type StarfieldConfig struct {
	Target    string  `koanf:"target" yaml:"target"`
	Count     int     `koanf:"count" yaml:"count"`
	RadiusMin float64 `koanf:"radius_min" yaml:"radius_min"`
	RadiusMax float64 `koanf:"radius_max" yaml:"radius_max"`
	Threshold float64 `koanf:"threshold" yaml:"threshold"`
	StarColor string  `koanf:"star_color" yaml:"star_color"`
	EdgeColor string  `koanf:"edge_color" yaml:"edge_color"`
}

type SpectrumConfig struct {
	Target      string  `koanf:"target" yaml:"target"`
	FFTSize     int     `koanf:"fft_size" yaml:"fft_size"`
	Smoothing   float64 `koanf:"smoothing" yaml:"smoothing"`
	MinDecibels float64 `koanf:"min_decibels" yaml:"min_decibels"`
	MaxDecibels float64 `koanf:"max_decibels" yaml:"max_decibels"`
	BarColor    string  `koanf:"bar_color" yaml:"bar_color"`
}

type AudioConfig struct {
	RingSize     int `koanf:"ring_size" yaml:"ring_size"`
	BufferMillis int `koanf:"buffer_millis" yaml:"buffer_millis"`
}

type HeroConfig struct {
	Target         string `koanf:"target" yaml:"target"`
	Text           string `koanf:"text" yaml:"text"`
	IntervalMillis int    `koanf:"interval_millis" yaml:"interval_millis"`
}

type CountersConfig struct {
	DelayMillis    int `koanf:"delay_millis" yaml:"delay_millis"`
	IntervalMillis int `koanf:"interval_millis" yaml:"interval_millis"`
	Projects       int `koanf:"projects" yaml:"projects"`
	LinesOfCode    int `koanf:"lines_of_code" yaml:"lines_of_code"`
	Coffee         int `koanf:"coffee" yaml:"coffee"`
	AliensServed   int `koanf:"aliens_served" yaml:"aliens_served"`
}

// DefaultConfig returns the built-in layout and effect settings.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Window: WindowConfig{
			Width:      1024,
			Height:     512,
			Title:      "Galactic Interface - Tab: terminal, Space: play/pause, Esc/Q: quit",
			Background: "#020024",
			FPS:        60,
		},
		Elements: []Element{
			{ID: "constellation", X: 0, Y: 0, Width: 1024, Height: 300},
			{ID: "audio", X: 20, Y: 320, Width: 480, Height: 120},
			{ID: "hud", X: 0, Y: 0, Width: 1024, Height: 512},
		},
		Starfield: StarfieldConfig{
			Target:    "constellation",
			Count:     50,
			RadiusMin: 1,
			RadiusMax: 3,
			Threshold: 100,
			StarColor: "#0ff",
			EdgeColor: "#0ff2",
		},
		Spectrum: SpectrumConfig{
			Target:      "audio",
			FFTSize:     64,
			Smoothing:   0.8,
			MinDecibels: -100,
			MaxDecibels: -30,
			BarColor:    "#0ff",
		},
		Audio: AudioConfig{
			RingSize:     8192,
			BufferMillis: 50,
		},
		Hero: HeroConfig{
			Target:         "hud",
			Text:           "Welcome, traveler. Systems online.",
			IntervalMillis: 100,
		},
		Counters: CountersConfig{
			DelayMillis:    1500,
			IntervalMillis: 30,
			Projects:       24,
			LinesOfCode:    98765,
			Coffee:         204,
			AliensServed:   7,
		},
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (GALAXY_*). A missing file yields defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	// a configured element list replaces the defaults instead of merging
	// into them index by index
	if k.Exists("elements") {
		cfg.Elements = nil
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Element returns the element with the given id.
func (c *Config) Element(id string) (Element, bool) {
	for _, e := range c.Elements {
		if e.ID == id {
			return e, true
		}
	}
	return Element{}, false
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.FPS <= 0 {
		return fmt.Errorf("window.fps must be positive")
	}

	seen := make(map[string]bool, len(c.Elements))
	for _, e := range c.Elements {
		if e.ID == "" {
			return fmt.Errorf("element id is required")
		}
		if seen[e.ID] {
			return fmt.Errorf("duplicate element id %q", e.ID)
		}
		seen[e.ID] = true
		if e.Width <= 0 || e.Height <= 0 {
			return fmt.Errorf("element %q: size must be positive", e.ID)
		}
	}

	sf := c.Starfield
	if sf.Count < 0 {
		return fmt.Errorf("starfield.count must be non-negative")
	}
	if sf.RadiusMin < 0 || sf.RadiusMax < sf.RadiusMin {
		return fmt.Errorf("starfield radius range [%g, %g] is invalid", sf.RadiusMin, sf.RadiusMax)
	}
	if sf.Threshold < 0 {
		return fmt.Errorf("starfield.threshold must be non-negative")
	}

	sp := c.Spectrum
	if sp.FFTSize < 32 || sp.FFTSize > 32768 || sp.FFTSize&(sp.FFTSize-1) != 0 {
		return fmt.Errorf("spectrum.fft_size must be a power of two in [32, 32768], got %d", sp.FFTSize)
	}
	if sp.Smoothing < 0 || sp.Smoothing >= 1 {
		return fmt.Errorf("spectrum.smoothing must be in [0, 1)")
	}
	if sp.MinDecibels >= sp.MaxDecibels {
		return fmt.Errorf("spectrum.min_decibels must be below max_decibels")
	}

	if c.Audio.RingSize < sp.FFTSize {
		return fmt.Errorf("audio.ring_size (%d) must hold at least one fft window (%d)", c.Audio.RingSize, sp.FFTSize)
	}
	if c.Audio.BufferMillis <= 0 {
		return fmt.Errorf("audio.buffer_millis must be positive")
	}
	if c.Hero.IntervalMillis <= 0 || c.Counters.IntervalMillis <= 0 {
		return fmt.Errorf("timer intervals must be positive")
	}

	for name, hex := range map[string]string{
		"window.background":    c.Window.Background,
		"starfield.star_color": sf.StarColor,
		"starfield.edge_color": sf.EdgeColor,
		"spectrum.bar_color":   sp.BarColor,
	} {
		if _, err := surface.ParseHex(hex); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	return nil
}
