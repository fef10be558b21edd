package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// SupportedPatterns lists the file patterns Load accepts.
var SupportedPatterns = []string{"*.wav", "*.mp3", "*.flac"}

type decodeFunc func(f *os.File) (beep.StreamSeekCloser, beep.Format, error)

func decoderFor(path string) (decodeFunc, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return wav.Decode(f) }, nil
	case ".mp3":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return mp3.Decode(f) }, nil
	case ".flac":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return flac.Decode(f) }, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Player decodes a file and plays it through the speaker, feeding the tap.
// Chain: decoder -> tap -> ctrl -> volume -> speaker.
type Player struct {
	log          *log.Logger
	tap          *Tap
	bufferLength time.Duration

	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	file     *os.File
	duration time.Duration

	initDone bool
	paused   bool
	muted    bool
	ended    atomic.Bool

	mu      sync.Mutex
	onStart []func()
}

func NewPlayer(tap *Tap, bufferLength time.Duration, logger *log.Logger) *Player {
	return &Player{
		log:          logger,
		tap:          tap,
		bufferLength: bufferLength,
	}
}

// OnPlaybackStart registers fn to run each time a file starts playing. It
// runs on the goroutine that called Load.
func (p *Player) OnPlaybackStart(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onStart = append(p.onStart, fn)
}

// Load stops any current playback, then decodes and plays path.
func (p *Player) Load(path string) error {
	decode, err := decoderFor(path)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	streamer, format, err := decode(f)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("decoding %s: %w", path, err)
	}

	bufferSize := format.SampleRate.N(p.bufferLength)
	switch {
	case !p.initDone:
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return fmt.Errorf("initialising speaker: %w", err)
		}
		p.initDone = true
	case p.format.SampleRate != format.SampleRate:
		// Re-init when sample rate changes
		speaker.Clear()
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return fmt.Errorf("reinitialising speaker: %w", err)
		}
	default:
		speaker.Clear()
	}
	p.release()

	p.tap.Reset(streamer)
	p.ctrl = &beep.Ctrl{Streamer: p.tap}
	p.volume = &effects.Volume{Streamer: p.ctrl, Base: 2, Silent: p.muted}
	p.streamer = streamer
	p.format = format
	p.file = f
	p.paused = false
	p.ended.Store(false)
	p.duration = format.SampleRate.D(streamer.Len())

	speaker.Play(beep.Seq(p.volume, beep.Callback(func() {
		p.ended.Store(true)
	})))
	p.log.Info("playing", "file", filepath.Base(path), "rate", int(format.SampleRate), "duration", p.duration.Round(time.Second))

	p.mu.Lock()
	callbacks := append([]func(){}, p.onStart...)
	p.mu.Unlock()
	for _, fn := range callbacks {
		fn()
	}
	return nil
}

func (p *Player) Loaded() bool { return p.streamer != nil }
func (p *Player) Paused() bool { return p.paused }
func (p *Player) Muted() bool  { return p.muted }

func (p *Player) Duration() time.Duration { return p.duration }

// Position reports how far playback has progressed.
func (p *Player) Position() time.Duration {
	if p.streamer == nil {
		return 0
	}
	if p.ended.Load() {
		return p.duration
	}
	speaker.Lock()
	pos := p.streamer.Position()
	speaker.Unlock()
	return p.format.SampleRate.D(pos)
}

func (p *Player) TogglePause() {
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.paused = !p.paused
	p.ctrl.Paused = p.paused
	speaker.Unlock()
}

func (p *Player) SetMuted(muted bool) {
	p.muted = muted
	if p.volume == nil {
		return
	}
	speaker.Lock()
	p.volume.Silent = muted
	speaker.Unlock()
}

// Seek jumps to a fraction of the track, clamped to [0, 1].
func (p *Player) Seek(fraction float64) error {
	if p.streamer == nil || p.ended.Load() {
		return nil
	}
	fraction = min(max(fraction, 0), 1)

	speaker.Lock()
	defer speaker.Unlock()

	pos := int(fraction * float64(p.streamer.Len()))
	if pos >= p.streamer.Len() {
		pos = p.streamer.Len() - 1
	}
	if err := p.streamer.Seek(max(pos, 0)); err != nil {
		return fmt.Errorf("seeking: %w", err)
	}
	return nil
}

// Close stops playback and releases the current file.
func (p *Player) Close() {
	if p.initDone {
		speaker.Clear()
	}
	p.release()
}

func (p *Player) release() {
	if p.streamer != nil {
		_ = p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		_ = p.file.Close()
		p.file = nil
	}
	p.ctrl = nil
	p.volume = nil
	p.duration = 0
}
