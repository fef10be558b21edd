package audio

import (
	"errors"
	"math"
	"testing"

	"github.com/faiface/beep"
)

type sliceStreamer struct {
	samples [][2]float64
	pos     int
}

func (s *sliceStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}
	n := copy(samples, s.samples[s.pos:])
	s.pos += n
	return n, true
}

func (s *sliceStreamer) Err() error { return nil }

func constant(n int, v float64) [][2]float64 {
	out := make([][2]float64, n)
	for i := range out {
		out[i] = [2]float64{v, v}
	}
	return out
}

func TestTapRecordsStreamedSamples(t *testing.T) {
	src := &sliceStreamer{samples: [][2]float64{{1, 0}, {0.5, 0.5}, {0, -1}}}
	tap := NewTap(src, 8)

	buf := make([][2]float64, 2)
	if n, ok := tap.Stream(buf); n != 2 || !ok {
		t.Fatalf("expected 2 samples, got %d ok=%v", n, ok)
	}
	tap.Stream(buf)

	got := make([]float64, 4)
	if n := tap.Mono(got); n != 3 {
		t.Fatalf("expected 3 recorded samples, got %d", n)
	}
	want := []float64{0, 0.5, 0.5, -0.5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("mono = %v, want %v", got, want)
		}
	}
}

func TestTapWrapsAround(t *testing.T) {
	tap := NewTap(nil, 4)
	for i := 1; i <= 6; i++ {
		tap.Record([][2]float64{{float64(i), float64(i)}})
	}

	got := make([]float64, 4)
	tap.Mono(got)
	want := []float64{3, 4, 5, 6}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("mono = %v, want %v", got, want)
		}
	}

	tap.Reset(nil)
	if n := tap.Mono(got); n != 0 {
		t.Fatalf("expected empty tap after reset, got %d", n)
	}
}

func TestContextLifecycle(t *testing.T) {
	c := NewContext()
	if c.State() != StateSuspended {
		t.Fatalf("expected new context suspended, got %v", c.State())
	}

	done := c.Resume()
	select {
	case <-done:
	default:
		t.Fatal("expected resume to complete")
	}
	if c.State() != StateRunning {
		t.Fatalf("expected running, got %v", c.State())
	}

	c.Suspend()
	again := c.Resume()
	select {
	case <-again:
	default:
		t.Fatal("expected second resume to complete")
	}

	c.Close()
	if c.State() != StateClosed {
		t.Fatalf("expected closed, got %v", c.State())
	}
}

func TestContextClosedNeverResumes(t *testing.T) {
	c := NewContext()
	c.Close()
	select {
	case <-c.Resume():
		t.Fatal("closed context must not resume")
	default:
	}
}

func testAnalyser(ctx *Context, tap *Tap) *Analyser {
	return NewAnalyser(ctx, tap, AnalyserOptions{
		FFTSize:     64,
		Smoothing:   0,
		MinDecibels: -100,
		MaxDecibels: 0,
	})
}

func TestAnalyserSilentWhileSuspended(t *testing.T) {
	tap := NewTap(nil, 256)
	tap.Record(constant(256, 0.9))
	a := testAnalyser(NewContext(), tap)

	if err := a.Refresh(); !errors.Is(err, ErrSuspended) {
		t.Fatalf("expected ErrSuspended, got %v", err)
	}
	data := a.FrequencyMagnitudes()
	if len(data) != 32 {
		t.Fatalf("expected 32 bins, got %d", len(data))
	}
	for i, v := range data {
		if v != 0 {
			t.Fatalf("bin %d: expected silence before resume, got %d", i, v)
		}
	}
}

func TestAnalyserFindsTone(t *testing.T) {
	const bin = 8
	tap := NewTap(nil, 64)
	tone := make([][2]float64, 64)
	for i := range tone {
		v := math.Sin(2 * math.Pi * bin * float64(i) / 64)
		tone[i] = [2]float64{v, v}
	}
	tap.Record(tone)

	ctx := NewContext()
	ctx.Resume()
	data := testAnalyser(ctx, tap).FrequencyMagnitudes()

	peak := 0
	for i, v := range data {
		if v > data[peak] {
			peak = i
		}
	}
	if peak != bin {
		t.Fatalf("expected peak at bin %d, got %d (%v)", bin, peak, data)
	}
	if data[bin-1] == 0 || data[bin+1] == 0 {
		t.Errorf("expected window leakage into neighbouring bins, got %v", data[bin-1:bin+2])
	}
	if data[20] != 0 {
		t.Errorf("expected no energy far from the tone, got %d", data[20])
	}
}

func TestAnalyserSilenceIsZero(t *testing.T) {
	ctx := NewContext()
	ctx.Resume()
	a := testAnalyser(ctx, NewTap(nil, 64))

	for i, v := range a.FrequencyMagnitudes() {
		if v != 0 {
			t.Fatalf("bin %d: expected 0 for silence, got %d", i, v)
		}
	}
}

func TestDecoderFor(t *testing.T) {
	for _, path := range []string{"a.wav", "b.MP3", "c.flac"} {
		if _, err := decoderFor(path); err != nil {
			t.Errorf("decoderFor(%q): %v", path, err)
		}
	}
	if _, err := decoderFor("song.ogg"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestPlayerLoadRejectsUnsupported(t *testing.T) {
	p := NewPlayer(NewTap(nil, 64), 0, nil)
	if err := p.Load("cover.png"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if p.Loaded() {
		t.Fatal("expected nothing loaded")
	}
	if p.Position() != 0 {
		t.Fatal("expected zero position with nothing loaded")
	}
}

type seekable struct {
	*sliceStreamer
	closed bool
}

func (s *seekable) Len() int         { return len(s.samples) }
func (s *seekable) Position() int    { return s.pos }
func (s *seekable) Seek(p int) error { s.pos = p; return nil }
func (s *seekable) Close() error     { s.closed = true; return nil }

func TestFeederAdvancesOneFramePerCall(t *testing.T) {
	src := &seekable{sliceStreamer: &sliceStreamer{samples: constant(250, 0.5)}}
	tap := NewTap(nil, 512)
	f := newFeeder(tap, src, beep.Format{SampleRate: 6000, NumChannels: 2, Precision: 2}, 60, nil)

	if f.Format().SampleRate != 6000 {
		t.Fatalf("unexpected format %+v", f.Format())
	}

	started := 0
	f.OnPlaybackStart(func() { started++ })
	f.Start()
	if started != 1 {
		t.Fatalf("expected one start callback, got %d", started)
	}

	buf := make([]float64, 512)
	if !f.Advance() || tap.Mono(buf) != 100 {
		t.Fatal("expected 100 samples after the first frame")
	}
	f.Advance()
	if !f.Advance() {
		t.Fatal("expected the partial last frame to report samples")
	}
	if f.Advance() {
		t.Fatal("expected an exhausted feeder")
	}
	if n := tap.Mono(buf); n != 250 {
		t.Fatalf("expected all 250 samples recorded, got %d", n)
	}

	if err := f.Close(); err != nil || !src.closed {
		t.Fatalf("expected streamer closed, err=%v", err)
	}
}

func TestFFTPlanImpulseIsFlat(t *testing.T) {
	p := newFFTPlan(16)
	re, im := make([]float64, 16), make([]float64, 16)
	re[0] = 1
	p.transform(re, im)
	for k := range re {
		if math.Abs(re[k]-1) > 1e-12 || math.Abs(im[k]) > 1e-12 {
			t.Fatalf("bin %d = (%g, %g), want (1, 0)", k, re[k], im[k])
		}
	}
}

func TestFFTPlanMatchesDFT(t *testing.T) {
	const n = 32
	p := newFFTPlan(n)
	re, im := make([]float64, n), make([]float64, n)
	in := make([]float64, n)
	for i := range in {
		in[i] = math.Sin(float64(i)*0.7) + 0.25*math.Cos(float64(i)*2.1)
		re[i] = in[i]
	}
	p.transform(re, im)

	for k := range n {
		var wr, wi float64
		for i, x := range in {
			angle := -2 * math.Pi * float64(k*i) / n
			wr += x * math.Cos(angle)
			wi += x * math.Sin(angle)
		}
		if math.Abs(re[k]-wr) > 1e-9 || math.Abs(im[k]-wi) > 1e-9 {
			t.Fatalf("bin %d = (%g, %g), want (%g, %g)", k, re[k], im[k], wr, wi)
		}
	}
}
