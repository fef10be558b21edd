package effect

import (
	"image/color"
	"time"

	"github.com/iburimskiy/galactic-visuals/internal/surface"
)

// anchor is a text position on a named target.
type anchor struct {
	target string
	x, y   int
	color  color.Color
	s      surface.Surface
}

func (a *anchor) attach(env Env) bool {
	a.s = env.Page.Lookup(a.target)
	return a.s != nil
}

func (a *anchor) detach() { a.s = nil }

// Typewriter reveals a line of text one rune per interval.
type Typewriter struct {
	anchor
	text     []rune
	interval time.Duration
	elapsed  time.Duration
	shown    int
}

func NewTypewriter(target, text string, interval time.Duration, x, y int, c color.Color) *Typewriter {
	return &Typewriter{
		anchor:   anchor{target: target, x: x, y: y, color: c},
		text:     []rune(text),
		interval: interval,
	}
}

func (t *Typewriter) Name() string { return "typewriter" }

func (t *Typewriter) Init(env Env) bool {
	t.shown, t.elapsed = 0, 0
	if t.interval <= 0 {
		t.shown = len(t.text)
	}
	return t.attach(env)
}

func (t *Typewriter) Teardown() { t.detach() }

func (t *Typewriter) Update(dt time.Duration) {
	if t.Done() {
		return
	}
	t.elapsed += dt
	for t.elapsed >= t.interval && !t.Done() {
		t.elapsed -= t.interval
		t.shown++
	}
}

// Visible returns the revealed prefix.
func (t *Typewriter) Visible() string { return string(t.text[:t.shown]) }

func (t *Typewriter) Done() bool { return t.shown >= len(t.text) }

func (t *Typewriter) Draw() {
	if t.shown > 0 {
		t.s.Text(t.Visible(), t.x, t.y, t.color)
	}
}

// Story cycles through a fixed list of lines on KeyN.
type Story struct {
	anchor
	lines   []string
	index   int
	current string
}

var storyLines = []string{
	"In the year 2147, a developer found the last HTML tag...",
	"CSS was once forbidden on Mars, but not anymore...",
	"JavaScript came alive and began animating thoughts...",
	"Aliens used `<div>` tags to build real spaceships.",
	"The dev reached line 2000 and... ascended!",
}

func NewStory(target string, x, y int, c color.Color) *Story {
	return &Story{anchor: anchor{target: target, x: x, y: y, color: c}, lines: storyLines}
}

func (s *Story) Name() string { return "story" }

func (s *Story) Init(env Env) bool { return s.attach(env) }

func (s *Story) Teardown() { s.detach() }

func (s *Story) HandleKey(k Key) {
	if k == KeyN {
		s.Next()
	}
}

// Next shows the next line and returns it.
func (s *Story) Next() string {
	s.current = s.lines[s.index]
	s.index = (s.index + 1) % len(s.lines)
	return s.current
}

func (s *Story) Current() string { return s.current }

func (s *Story) Draw() {
	if s.current == "" {
		s.s.Text("[n] next story", s.x, s.y, s.color)
		return
	}
	s.s.Text(s.current, s.x, s.y, s.color)
}

// IntN is the slice of math/rand/v2 the quote picker needs.
type IntN interface {
	IntN(n int) int
}

// Quotes shows a random quote on KeyR.
type Quotes struct {
	anchor
	rng     IntN
	quotes  []string
	current string
}

var quoteLines = []string{
	`"The cosmos is within us." - Carl Sagan`,
	`"HTML is the language of the stars." - Anonymous`,
	`"JavaScript is like dark matter. Mysterious, everywhere."`,
	`"The universe is made of protons, neutrons, and... code."`,
	`"Space is the limit."`,
}

func NewQuotes(target string, rng IntN, x, y int, c color.Color) *Quotes {
	return &Quotes{anchor: anchor{target: target, x: x, y: y, color: c}, rng: rng, quotes: quoteLines}
}

func (q *Quotes) Name() string { return "quotes" }

func (q *Quotes) Init(env Env) bool {
	if q.rng == nil {
		return false
	}
	return q.attach(env)
}

func (q *Quotes) Teardown() { q.detach() }

func (q *Quotes) HandleKey(k Key) {
	if k == KeyR {
		q.Pick()
	}
}

func (q *Quotes) Pick() string {
	q.current = q.quotes[q.rng.IntN(len(q.quotes))]
	return q.current
}

func (q *Quotes) Current() string { return q.current }

func (q *Quotes) Draw() {
	if q.current == "" {
		q.s.Text("[r] random quote", q.x, q.y, q.color)
		return
	}
	q.s.Text(q.current, q.x, q.y, q.color)
}
