package effect

import (
	"image/color"

	"github.com/iburimskiy/galactic-visuals/internal/frame"
	"github.com/iburimskiy/galactic-visuals/internal/spectrum"
)

// PlaybackNotifier announces that a track started playing.
type PlaybackNotifier interface {
	OnPlaybackStart(fn func())
}

// Resumer starts the analysis context. The channel closes once it runs.
type Resumer interface {
	Resume() <-chan struct{}
}

// Visualizer starts the bar renderer on the first playback start, once the
// analysis context has resumed.
type Visualizer struct {
	target   string
	playback PlaybackNotifier
	resumer  Resumer
	source   spectrum.Source
	color    color.Color

	sched    frame.Scheduler
	renderer *spectrum.Renderer
	waiting  frame.Handle
	active   bool
	hooked   bool
}

func NewVisualizer(target string, playback PlaybackNotifier, resumer Resumer, source spectrum.Source, c color.Color) *Visualizer {
	return &Visualizer{target: target, playback: playback, resumer: resumer, source: source, color: c}
}

func (v *Visualizer) Name() string { return "visualizer" }

func (v *Visualizer) Init(env Env) bool {
	s := env.Page.Lookup(v.target)
	if s == nil || v.playback == nil || v.resumer == nil || v.source == nil {
		return false
	}
	v.sched = env.Scheduler
	v.renderer = spectrum.New(s, env.Scheduler, v.source, v.color)
	v.active = true
	if !v.hooked {
		v.playback.OnPlaybackStart(v.onPlay)
		v.hooked = true
	}
	return true
}

func (v *Visualizer) Teardown() {
	v.active = false
	if v.waiting != 0 {
		v.sched.Cancel(v.waiting)
		v.waiting = 0
	}
	if v.renderer != nil {
		v.renderer.Stop()
	}
}

// Renderer returns the bar renderer, or nil before Init.
func (v *Visualizer) Renderer() *spectrum.Renderer { return v.renderer }

func (v *Visualizer) onPlay() {
	if !v.active || v.waiting != 0 || v.renderer.Running() {
		return
	}
	v.await(v.resumer.Resume())
}

func (v *Visualizer) await(resumed <-chan struct{}) {
	v.waiting = v.sched.Request(func() {
		select {
		case <-resumed:
			v.waiting = 0
			v.renderer.Start()
		default:
			v.await(resumed)
		}
	})
}
