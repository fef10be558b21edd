package audio

import (
	"fmt"
	"os"
	"sync"

	"github.com/faiface/beep"
)

// Feeder pulls a decoded file through a tap without a speaker, one frame of
// samples per Advance. Headless renders use it in place of a Player.
type Feeder struct {
	tap      *Tap
	streamer beep.StreamSeekCloser
	file     *os.File
	format   beep.Format
	buf      [][2]float64
	done     bool

	mu      sync.Mutex
	onStart []func()
}

// OpenFeeder decodes path and sizes each Advance to one frame at fps.
func OpenFeeder(path string, tap *Tap, fps int) (*Feeder, error) {
	decode, err := decoderFor(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	streamer, format, err := decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return newFeeder(tap, streamer, format, fps, f), nil
}

func newFeeder(tap *Tap, streamer beep.StreamSeekCloser, format beep.Format, fps int, f *os.File) *Feeder {
	perFrame := max(int(format.SampleRate)/max(fps, 1), 1)
	tap.Reset(streamer)
	return &Feeder{
		tap:      tap,
		streamer: streamer,
		file:     f,
		format:   format,
		buf:      make([][2]float64, perFrame),
	}
}

func (f *Feeder) OnPlaybackStart(fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onStart = append(f.onStart, fn)
}

// Start announces playback to the registered callbacks.
func (f *Feeder) Start() {
	f.mu.Lock()
	callbacks := append([]func(){}, f.onStart...)
	f.mu.Unlock()
	for _, fn := range callbacks {
		fn()
	}
}

// Advance streams one frame of samples into the tap. It reports false once
// the stream is exhausted.
func (f *Feeder) Advance() bool {
	if f.done {
		return false
	}
	n, ok := f.tap.Stream(f.buf)
	if !ok || n < len(f.buf) {
		f.done = true
	}
	return n > 0
}

func (f *Feeder) Format() beep.Format { return f.format }

func (f *Feeder) Close() error {
	err := f.streamer.Close()
	if f.file != nil {
		if cerr := f.file.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
