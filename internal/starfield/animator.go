package starfield

import (
	"math/rand/v2"

	"github.com/iburimskiy/galactic-visuals/internal/frame"
	"github.com/iburimskiy/galactic-visuals/internal/surface"
)

// Options configure a new Animator.
type Options struct {
	Count     int
	RadiusMin float64
	RadiusMax float64
	Style     Style
}

// Animator redraws a Field onto its surface once per frame until stopped.
type Animator struct {
	field   *Field
	surface surface.Surface
	sched   frame.Scheduler
	style   Style

	handle  frame.Handle
	running bool
	frames  uint64
}

// New creates an animator whose field fills the surface. A nil surface
// yields an animator that never starts.
func New(s surface.Surface, sched frame.Scheduler, rng *rand.Rand, opts Options) *Animator {
	var f *Field
	if s != nil {
		f = NewField(rng, float64(s.Width()), float64(s.Height()), opts.Count, opts.RadiusMin, opts.RadiusMax)
	}
	return NewWithField(s, sched, f, opts.Style)
}

// NewWithField creates an animator for an existing field.
func NewWithField(s surface.Surface, sched frame.Scheduler, f *Field, style Style) *Animator {
	return &Animator{field: f, surface: s, sched: sched, style: style}
}

// Field returns the animated field, or nil when there is no surface.
func (a *Animator) Field() *Field { return a.field }

func (a *Animator) Running() bool { return a.running }

// Frames reports how many frames were drawn.
func (a *Animator) Frames() uint64 { return a.frames }

// Start schedules the first frame. It reports false, and schedules nothing,
// when the surface is missing.
func (a *Animator) Start() bool {
	if a.surface == nil || a.field == nil || a.sched == nil {
		return false
	}
	if a.running {
		return true
	}
	a.running = true
	a.handle = a.sched.Request(a.frame)
	return true
}

// Stop cancels the pending frame. Safe to call more than once.
func (a *Animator) Stop() {
	if !a.running {
		return
	}
	a.running = false
	a.sched.Cancel(a.handle)
	a.handle = 0
}

// Step draws one frame without scheduling another.
func (a *Animator) Step() {
	if a.surface == nil || a.field == nil {
		return
	}
	a.surface.Clear()
	a.field.Draw(a.surface, a.style)
	a.frames++
}

func (a *Animator) frame() {
	if !a.running {
		return
	}
	a.Step()
	a.handle = a.sched.Request(a.frame)
}
