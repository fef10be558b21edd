// Package starfield draws a constellation: a fixed set of stars redrawn every
// frame, joined by faint lines when two stars are close.
package starfield

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/galactic-visuals/internal/surface"
)

// Particle is a single star. Stars never move once created.
type Particle struct {
	X, Y   float64
	Radius float64
}

// Edge joins particles I and J, with I < J.
type Edge struct {
	I, J int
}

// Field is a fixed-size set of particles within a width x height area.
type Field struct {
	width     float64
	height    float64
	particles []Particle
}

// NewField scatters n particles uniformly over [0, width) x [0, height) with
// radii uniform in [rmin, rmax). Overlapping particles are allowed.
func NewField(rng *rand.Rand, width, height float64, n int, rmin, rmax float64) *Field {
	if n < 0 {
		n = 0
	}
	particles := make([]Particle, n)
	for i := range particles {
		particles[i] = Particle{
			X:      rng.Float64() * width,
			Y:      rng.Float64() * height,
			Radius: rmin + rng.Float64()*(rmax-rmin),
		}
	}
	return &Field{width: width, height: height, particles: particles}
}

// FieldOf builds a field from explicit particles. The slice is copied.
func FieldOf(width, height float64, particles []Particle) *Field {
	return &Field{
		width:     width,
		height:    height,
		particles: append([]Particle(nil), particles...),
	}
}

func (f *Field) Len() int { return len(f.particles) }

func (f *Field) Size() (width, height float64) { return f.width, f.height }

// Particles returns a copy of the particles.
func (f *Field) Particles() []Particle {
	return append([]Particle(nil), f.particles...)
}

// Edges returns every unordered pair closer than threshold. The scan is
// quadratic in the particle count.
func (f *Field) Edges(threshold float64) []Edge {
	var edges []Edge
	for i := 0; i < len(f.particles); i++ {
		for j := i + 1; j < len(f.particles); j++ {
			if distance(f.particles[i], f.particles[j]) < threshold {
				edges = append(edges, Edge{I: i, J: j})
			}
		}
	}
	return edges
}

// Style controls how a field is drawn.
type Style struct {
	Star      color.Color
	Edge      color.Color
	Threshold float64
}

// Draw paints the particles, then the edges between close pairs. It does not
// clear the surface.
func (f *Field) Draw(s surface.Surface, style Style) {
	for _, p := range f.particles {
		s.FillCircle(p.X, p.Y, p.Radius, style.Star)
	}
	for _, e := range f.Edges(style.Threshold) {
		a, b := f.particles[e.I], f.particles[e.J]
		s.DrawLine(a.X, a.Y, b.X, b.Y, style.Edge)
	}
}

func distance(a, b Particle) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
