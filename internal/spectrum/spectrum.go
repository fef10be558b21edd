// Package spectrum draws frequency magnitudes as bottom-aligned bars.
package spectrum

import (
	"image/color"

	"github.com/iburimskiy/galactic-visuals/internal/frame"
	"github.com/iburimskiy/galactic-visuals/internal/surface"
)

// barSpread widens bars beyond an even split so the low bins, which carry
// most of the energy, fill the surface.
const (
	barSpread = 2.5
	barGap    = 1.0
)

// Source yields the latest frequency magnitudes, one byte per bin.
type Source interface {
	FrequencyMagnitudes() []uint8
}

// Bar is one rectangle in surface units.
type Bar struct {
	X, Y, W, H float64
}

// Layout maps magnitudes to bars for a width x height surface. Bar heights
// are linear in the magnitude (magnitude / 2).
func Layout(width, height int, data []uint8) []Bar {
	if len(data) == 0 {
		return nil
	}
	barWidth := float64(width) / float64(len(data)) * barSpread
	bars := make([]Bar, len(data))
	x := 0.0
	for i, m := range data {
		h := float64(m) / 2
		bars[i] = Bar{X: x, Y: float64(height) - h, W: barWidth, H: h}
		x += barWidth + barGap
	}
	return bars
}

// Draw paints bars for data without clearing the surface.
func Draw(s surface.Surface, data []uint8, c color.Color) {
	for _, b := range Layout(s.Width(), s.Height(), data) {
		s.FillRect(b.X, b.Y, b.W, b.H, c)
	}
}

// Renderer pulls a fresh sample and redraws the bars every frame.
type Renderer struct {
	surface surface.Surface
	sched   frame.Scheduler
	source  Source
	color   color.Color

	handle  frame.Handle
	running bool
	frames  uint64
}

func New(s surface.Surface, sched frame.Scheduler, src Source, c color.Color) *Renderer {
	return &Renderer{surface: s, sched: sched, source: src, color: c}
}

func (r *Renderer) Running() bool  { return r.running }
func (r *Renderer) Frames() uint64 { return r.frames }

// Start schedules the first frame. It reports false when the surface or the
// source is missing.
func (r *Renderer) Start() bool {
	if r.surface == nil || r.source == nil || r.sched == nil {
		return false
	}
	if r.running {
		return true
	}
	r.running = true
	r.handle = r.sched.Request(r.frame)
	return true
}

// Stop cancels the pending frame. Safe to call more than once.
func (r *Renderer) Stop() {
	if !r.running {
		return
	}
	r.running = false
	r.sched.Cancel(r.handle)
	r.handle = 0
}

func (r *Renderer) frame() {
	if !r.running {
		return
	}
	data := r.source.FrequencyMagnitudes()
	r.surface.Clear()
	Draw(r.surface, data, r.color)
	r.frames++
	r.handle = r.sched.Request(r.frame)
}
