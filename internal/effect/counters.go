package effect

import (
	"fmt"
	"image/color"
	"math"
	"strings"
	"time"
)

// Counter climbs towards Target in hundredths of it.
type Counter struct {
	Label  string
	Target int
	count  float64
}

// Value is the displayed number: the floor of the count, or Target once reached.
func (c *Counter) Value() int {
	if c.count >= float64(c.Target) {
		return c.Target
	}
	return int(math.Floor(c.count))
}

func (c *Counter) done() bool { return c.count >= float64(c.Target) }

func (c *Counter) tick() {
	if !c.done() {
		c.count += float64(c.Target) / 100
	}
}

// Counters starts after a delay, then ticks every counter once per interval.
type Counters struct {
	anchor
	delay    time.Duration
	interval time.Duration
	elapsed  time.Duration
	started  bool
	counters []*Counter
}

func NewCounters(target string, delay, interval time.Duration, x, y int, c color.Color, counters ...Counter) *Counters {
	cs := &Counters{
		anchor:   anchor{target: target, x: x, y: y, color: c},
		delay:    delay,
		interval: interval,
	}
	for _, counter := range counters {
		cs.counters = append(cs.counters, &Counter{Label: counter.Label, Target: counter.Target})
	}
	return cs
}

func (cs *Counters) Name() string { return "counters" }

func (cs *Counters) Init(env Env) bool {
	cs.elapsed, cs.started = 0, false
	for _, c := range cs.counters {
		c.count = 0
	}
	return cs.attach(env)
}

func (cs *Counters) Teardown() { cs.detach() }

func (cs *Counters) Update(dt time.Duration) {
	cs.elapsed += dt
	if !cs.started {
		if cs.elapsed < cs.delay {
			return
		}
		cs.started = true
		cs.elapsed -= cs.delay
	}
	if cs.interval <= 0 {
		return
	}
	for cs.elapsed >= cs.interval && !cs.Done() {
		cs.elapsed -= cs.interval
		for _, c := range cs.counters {
			c.tick()
		}
	}
}

func (cs *Counters) Started() bool { return cs.started }

// Done reports whether every counter reached its target.
func (cs *Counters) Done() bool {
	for _, c := range cs.counters {
		if !c.done() {
			return false
		}
	}
	return true
}

// Values returns the displayed numbers in order.
func (cs *Counters) Values() []int {
	out := make([]int, len(cs.counters))
	for i, c := range cs.counters {
		out[i] = c.Value()
	}
	return out
}

func (cs *Counters) Draw() {
	parts := make([]string, len(cs.counters))
	for i, c := range cs.counters {
		parts[i] = fmt.Sprintf("%s %d", c.Label, c.Value())
	}
	cs.s.Text(strings.Join(parts, "   "), cs.x, cs.y, cs.color)
}
