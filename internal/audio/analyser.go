package audio

import "math"

// AnalyserOptions mirror the usual browser analyser node settings.
type AnalyserOptions struct {
	FFTSize     int     // power of two
	Smoothing   float64 // 0 disables smoothing between frames
	MinDecibels float64 // maps to byte 0
	MaxDecibels float64 // maps to byte 255
}

// Analyser turns the most recent tapped samples into byte frequency
// magnitudes, one per bin (FFTSize/2 bins).
type Analyser struct {
	ctx  *Context
	tap  *Tap
	opts AnalyserOptions

	plan     *fftPlan
	samples  []float64
	real     []float64
	imag     []float64
	smoothed []float64
	out      []uint8
}

func NewAnalyser(ctx *Context, tap *Tap, opts AnalyserOptions) *Analyser {
	n := opts.FFTSize
	return &Analyser{
		ctx:      ctx,
		tap:      tap,
		opts:     opts,
		plan:     newFFTPlan(n),
		samples:  make([]float64, n),
		real:     make([]float64, n),
		imag:     make([]float64, n),
		smoothed: make([]float64, n/2),
		out:      make([]uint8, n/2),
	}
}

// Bins is the length of every magnitude buffer.
func (a *Analyser) Bins() int { return len(a.out) }

// Refresh recomputes the magnitudes. It returns ErrSuspended, leaving the
// buffer untouched, while the context is not running.
func (a *Analyser) Refresh() error {
	if a.ctx.State() != StateRunning {
		return ErrSuspended
	}

	a.tap.Mono(a.samples)
	for i, s := range a.samples {
		a.real[i] = s * a.plan.window[i]
		a.imag[i] = 0
	}
	a.plan.transform(a.real, a.imag)

	n := float64(len(a.samples))
	tau := a.opts.Smoothing
	span := a.opts.MaxDecibels - a.opts.MinDecibels
	for k := range a.out {
		mag := math.Hypot(a.real[k], a.imag[k]) / n
		a.smoothed[k] = tau*a.smoothed[k] + (1-tau)*mag

		db := 20 * math.Log10(a.smoothed[k])
		scaled := math.Floor(255 * (db - a.opts.MinDecibels) / span)
		switch {
		case math.IsNaN(scaled) || scaled < 0:
			scaled = 0
		case scaled > 255:
			scaled = 255
		}
		a.out[k] = uint8(scaled)
	}
	return nil
}

// FrequencyMagnitudes refreshes and returns the shared magnitude buffer. The
// buffer is overwritten on the next call; it reads as silence while the
// context is suspended.
func (a *Analyser) FrequencyMagnitudes() []uint8 {
	if err := a.Refresh(); err != nil {
		clear(a.out)
	}
	return a.out
}
