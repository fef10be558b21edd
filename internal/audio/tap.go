package audio

import (
	"sync"

	"github.com/faiface/beep"
)

// Tap wraps a beep.Streamer and records the last N samples into a ring buffer
// so the analyser can look at recently played audio.
type Tap struct {
	Source    beep.Streamer
	buffer    [][2]float64
	nextIndex int
	filled    int
	mu        sync.RWMutex
}

func NewTap(src beep.Streamer, ringSize int) *Tap {
	return &Tap{
		Source: src,
		buffer: make([][2]float64, ringSize),
	}
}

// Stream runs on the speaker goroutine.
func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.Record(samples[:n])
	}
	return n, ok
}

func (t *Tap) Err() error { return t.Source.Err() }

// Record appends samples to the ring, overwriting the oldest.
func (t *Tap) Record(samples [][2]float64) {
	t.mu.Lock()
	for _, s := range samples {
		t.buffer[t.nextIndex] = s
		t.nextIndex++
		if t.nextIndex >= len(t.buffer) {
			t.nextIndex = 0
		}
	}
	t.filled = min(t.filled+len(samples), len(t.buffer))
	t.mu.Unlock()
}

// Mono fills dst with the most recent len(dst) samples mixed to mono, oldest
// first. Slots older than anything recorded are zero. It returns how many
// slots hold recorded audio.
func (t *Tap) Mono(dst []float64) int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := min(len(dst), t.filled)
	pad := len(dst) - n
	clear(dst[:pad])

	idx := t.nextIndex - n
	if idx < 0 {
		idx += len(t.buffer)
	}
	for i := pad; i < len(dst); i++ {
		s := t.buffer[idx]
		dst[i] = (s[0] + s[1]) * 0.5
		idx++
		if idx >= len(t.buffer) {
			idx = 0
		}
	}
	return n
}

// Reset forgets everything recorded and points the tap at a new source.
func (t *Tap) Reset(src beep.Streamer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Source = src
	t.nextIndex = 0
	t.filled = 0
	clear(t.buffer)
}
