// Package frame runs callbacks once per repaint.
//
// The host owns the cadence: an ebiten game pumps a Queue from Draw, which
// follows vsync, and headless runs pump it from a Ticker. A callback requested
// while the queue is running is deferred to the next pump, so frame N always
// completes before frame N+1 starts.
package frame

import (
	"context"
	"sync"
	"time"
)

// Handle identifies a pending callback. The zero Handle is never issued.
type Handle uint64

// Scheduler requests a one-shot callback before the next repaint.
type Scheduler interface {
	Request(fn func()) Handle
	Cancel(h Handle)
}

type entry struct {
	handle Handle
	fn     func()
}

// Queue is a Scheduler pumped explicitly by its host.
type Queue struct {
	mu      sync.Mutex
	next    Handle
	pending []entry
	frames  uint64
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Request(fn func()) Handle {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.next++
	q.pending = append(q.pending, entry{handle: q.next, fn: fn})
	return q.next
}

// Cancel drops a pending callback. Unknown or already run handles are ignored.
func (q *Queue) Cancel(h Handle) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, e := range q.pending {
		if e.handle == h {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

// Pending reports how many callbacks wait for the next Run.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Frames reports how many times Run was called.
func (q *Queue) Frames() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.frames
}

// Run invokes every callback pending at call time, in request order, and
// returns how many ran.
func (q *Queue) Run() int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.frames++
	q.mu.Unlock()

	for _, e := range batch {
		e.fn()
	}
	return len(batch)
}

// Ticker pumps a Queue at a fixed rate for hosts without a display.
type Ticker struct {
	queue    *Queue
	interval time.Duration
}

func NewTicker(q *Queue, fps int) *Ticker {
	if fps <= 0 {
		fps = 60
	}
	return &Ticker{queue: q, interval: time.Second / time.Duration(fps)}
}

// Run pumps the queue until ctx is done or maxFrames frames ran (0 means no
// limit). It returns nil when the frame limit was reached.
func (t *Ticker) Run(ctx context.Context, maxFrames int) error {
	tk := time.NewTicker(t.interval)
	defer tk.Stop()

	for n := 0; maxFrames == 0 || n < maxFrames; n++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tk.C:
			t.queue.Run()
		}
	}
	return nil
}
