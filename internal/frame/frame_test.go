package frame

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestQueueRunsInRequestOrder(t *testing.T) {
	q := NewQueue()
	var got []int
	q.Request(func() { got = append(got, 1) })
	q.Request(func() { got = append(got, 2) })

	if n := q.Run(); n != 2 {
		t.Fatalf("expected 2 callbacks, ran %d", n)
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("expected order [1 2], got %v", got)
	}
	if q.Pending() != 0 {
		t.Fatalf("expected nothing pending, got %d", q.Pending())
	}
}

func TestQueueDefersCallbacksRequestedDuringRun(t *testing.T) {
	q := NewQueue()
	runs := 0
	var tick func()
	tick = func() {
		runs++
		q.Request(tick)
	}
	q.Request(tick)

	q.Run()
	if runs != 1 {
		t.Fatalf("expected one run per frame, got %d", runs)
	}
	if q.Pending() != 1 {
		t.Fatalf("expected the re-request to wait for the next frame, got %d pending", q.Pending())
	}

	q.Run()
	q.Run()
	if runs != 3 {
		t.Fatalf("expected 3 runs after 3 frames, got %d", runs)
	}
	if q.Frames() != 3 {
		t.Fatalf("expected frame counter 3, got %d", q.Frames())
	}
}

func TestQueueCancel(t *testing.T) {
	q := NewQueue()
	ran := false
	h := q.Request(func() { ran = true })
	if h == 0 {
		t.Fatal("expected a non-zero handle")
	}

	q.Cancel(h)
	q.Cancel(h)
	q.Cancel(999)
	q.Run()

	if ran {
		t.Fatal("cancelled callback should not run")
	}
}

func TestTickerStopsAtFrameLimit(t *testing.T) {
	q := NewQueue()
	count := 0
	var tick func()
	tick = func() {
		count++
		q.Request(tick)
	}
	q.Request(tick)

	if err := NewTicker(q, 1000).Run(context.Background(), 5); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if count != 5 {
		t.Fatalf("expected 5 frames, got %d", count)
	}
}

func TestTickerStopsOnCancel(t *testing.T) {
	q := NewQueue()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := NewTicker(q, 1000).Run(ctx, 0)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
