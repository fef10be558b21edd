// Package effect runs the page's visual features as independent effects.
//
// Every feature implements Effect and lives in a Registry. An effect looks up
// its drawing target in Init; when the target is missing it reports false and
// stays dormant without affecting any other effect.
package effect

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/iburimskiy/galactic-visuals/internal/frame"
	"github.com/iburimskiy/galactic-visuals/internal/page"
	"github.com/iburimskiy/galactic-visuals/internal/surface"
)

// Env is what an effect may touch during Init.
type Env struct {
	Page      *page.Page
	Scheduler frame.Scheduler
}

// Effect is one self-contained visual feature.
type Effect interface {
	Name() string
	// Init attaches the effect and reports whether it is active.
	Init(env Env) bool
	Teardown()
}

// Updater effects advance timers; dt is the time since the previous update.
type Updater interface {
	Update(dt time.Duration)
}

// Drawer effects paint onto their target after the host clears it.
type Drawer interface {
	Draw()
}

// KeyHandler effects react to key presses.
type KeyHandler interface {
	HandleKey(k Key)
}

// Focusable effects can take exclusive keyboard input, including text.
type Focusable interface {
	KeyHandler
	SetFocus(focused bool)
	HandleRunes(rs []rune)
}

// Key is a host-independent key press.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyBackspace
	KeyA
	KeyB
	KeyD
	KeyM
	KeyN
	KeyR
)

type entry struct {
	effect Effect
	active bool
}

// Registry holds effects in registration order.
type Registry struct {
	log     *log.Logger
	entries []*entry
	env     Env
	focus   *entry
}

func NewRegistry(logger *log.Logger) *Registry {
	return &Registry{log: logger}
}

// Register adds effects without initialising them.
func (r *Registry) Register(effects ...Effect) {
	for _, e := range effects {
		r.entries = append(r.entries, &entry{effect: e})
	}
}

// InitAll initialises every registered effect against env.
func (r *Registry) InitAll(env Env) {
	r.env = env
	for _, e := range r.entries {
		r.init(e)
	}
}

func (r *Registry) init(e *entry) {
	if e.active {
		return
	}
	e.active = e.effect.Init(r.env)
	if e.active {
		r.log.Debug("effect ready", "effect", e.effect.Name())
	} else {
		r.log.Debug("effect skipped, target missing", "effect", e.effect.Name())
	}
}

// Enable initialises a dormant effect and reports whether it is now active.
func (r *Registry) Enable(name string) bool {
	e := r.lookup(name)
	if e == nil {
		return false
	}
	r.init(e)
	return e.active
}

// Disable tears down an active effect.
func (r *Registry) Disable(name string) {
	e := r.lookup(name)
	if e == nil || !e.active {
		return
	}
	if r.focus == e {
		r.Blur()
	}
	e.effect.Teardown()
	e.active = false
	r.log.Debug("effect disabled", "effect", name)
}

// TeardownAll disables every active effect in reverse order.
func (r *Registry) TeardownAll() {
	for i := len(r.entries) - 1; i >= 0; i-- {
		r.Disable(r.entries[i].effect.Name())
	}
}

func (r *Registry) Active(name string) bool {
	e := r.lookup(name)
	return e != nil && e.active
}

// Names lists registered effects in order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.effect.Name()
	}
	return names
}

func (r *Registry) Update(dt time.Duration) {
	for _, e := range r.entries {
		if u, ok := e.effect.(Updater); ok && e.active {
			u.Update(dt)
		}
	}
}

// Render clears hud, when present, and lets every active Drawer paint.
func (r *Registry) Render(hud surface.Surface) {
	if hud != nil {
		hud.Clear()
	}
	for _, e := range r.entries {
		if d, ok := e.effect.(Drawer); ok && e.active {
			d.Draw()
		}
	}
}

// HandleKey routes k to the focused effect, or to every active handler when
// nothing has focus.
func (r *Registry) HandleKey(k Key) {
	if r.focus != nil {
		r.focus.effect.(Focusable).HandleKey(k)
		return
	}
	for _, e := range r.entries {
		if h, ok := e.effect.(KeyHandler); ok && e.active {
			h.HandleKey(k)
		}
	}
}

// HandleRunes forwards typed text to the focused effect only.
func (r *Registry) HandleRunes(rs []rune) {
	if r.focus == nil || len(rs) == 0 {
		return
	}
	r.focus.effect.(Focusable).HandleRunes(rs)
}

// Focus gives exclusive input to an active Focusable effect.
func (r *Registry) Focus(name string) bool {
	e := r.lookup(name)
	if e == nil || !e.active {
		return false
	}
	f, ok := e.effect.(Focusable)
	if !ok {
		return false
	}
	r.Blur()
	r.focus = e
	f.SetFocus(true)
	return true
}

func (r *Registry) Blur() {
	if r.focus == nil {
		return
	}
	r.focus.effect.(Focusable).SetFocus(false)
	r.focus = nil
}

// Focused returns the focused effect's name, or "".
func (r *Registry) Focused() string {
	if r.focus == nil {
		return ""
	}
	return r.focus.effect.Name()
}

func (r *Registry) lookup(name string) *entry {
	for _, e := range r.entries {
		if e.effect.Name() == name {
			return e
		}
	}
	return nil
}
