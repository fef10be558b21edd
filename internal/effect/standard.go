package effect

import (
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/galactic-visuals/internal/config"
	"github.com/iburimskiy/galactic-visuals/internal/spectrum"
	"github.com/iburimskiy/galactic-visuals/internal/starfield"
	"github.com/iburimskiy/galactic-visuals/internal/surface"
)

// Deps are the shared collaborators of the standard effect set. Any of them
// may be left unset; effects that need a missing one stay dormant.
type Deps struct {
	Rand     *rand.Rand
	Playback PlaybackNotifier
	Muter    Muter
	Resumer  Resumer
	Source   spectrum.Source
}

// Standard builds the page's effects from cfg. Colours must already be valid.
func Standard(cfg *config.Config, deps Deps) []Effect {
	star := surface.MustHex(cfg.Starfield.StarColor)
	hud := cfg.Hero.Target
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }

	effects := []Effect{
		NewConstellation(cfg.Starfield.Target, deps.Rand, starfield.Options{
			Count:     cfg.Starfield.Count,
			RadiusMin: cfg.Starfield.RadiusMin,
			RadiusMax: cfg.Starfield.RadiusMax,
			Style: starfield.Style{
				Star:      star,
				Edge:      surface.MustHex(cfg.Starfield.EdgeColor),
				Threshold: cfg.Starfield.Threshold,
			},
		}),
	}

	var quotes IntN
	if deps.Rand != nil {
		quotes = deps.Rand
	}

	c := cfg.Counters
	effects = append(effects,
		NewVisualizer(cfg.Spectrum.Target, deps.Playback, deps.Resumer, deps.Source, surface.MustHex(cfg.Spectrum.BarColor)),
		NewTypewriter(hud, cfg.Hero.Text, ms(cfg.Hero.IntervalMillis), 160, 62, star),
		NewCounters(hud, ms(c.DelayMillis), ms(c.IntervalMillis), 20, 110, star,
			Counter{Label: "projects", Target: c.Projects},
			Counter{Label: "lines of code", Target: c.LinesOfCode},
			Counter{Label: "coffee", Target: c.Coffee},
			Counter{Label: "aliens served", Target: c.AliensServed},
		),
		NewTerminal(hud, 520, 320, 484, 120, star),
		NewDevMode(hud, 860, 30, star),
		NewStory(hud, 20, 452, star),
		NewQuotes(hud, quotes, 20, 468, star),
		NewMusic(hud, deps.Muter, 860, 12, star),
	)
	return effects
}
