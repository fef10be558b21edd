package effect

import (
	"math/rand/v2"

	"github.com/iburimskiy/galactic-visuals/internal/starfield"
)

// Constellation runs the particle field animator on its target.
type Constellation struct {
	target string
	rng    *rand.Rand
	opts   starfield.Options
	anim   *starfield.Animator
}

func NewConstellation(target string, rng *rand.Rand, opts starfield.Options) *Constellation {
	return &Constellation{target: target, rng: rng, opts: opts}
}

func (c *Constellation) Name() string { return "constellation" }

func (c *Constellation) Init(env Env) bool {
	s := env.Page.Lookup(c.target)
	if s == nil || c.rng == nil {
		return false
	}
	c.anim = starfield.New(s, env.Scheduler, c.rng, c.opts)
	return c.anim.Start()
}

func (c *Constellation) Teardown() {
	if c.anim != nil {
		c.anim.Stop()
	}
}

// Animator returns the running animator, or nil before Init.
func (c *Constellation) Animator() *starfield.Animator { return c.anim }
