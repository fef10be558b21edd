// Package page keeps the named drawing targets effects attach to.
package page

import (
	"github.com/iburimskiy/galactic-visuals/internal/config"
	"github.com/iburimskiy/galactic-visuals/internal/surface"
)

// Element is a surface placed at X, Y on the page.
type Element struct {
	ID      string
	X, Y    int
	Surface surface.Surface
}

// Page is an ordered table of elements. Later elements draw on top.
type Page struct {
	elements []*Element
	byID     map[string]*Element
}

func New() *Page {
	return &Page{byID: make(map[string]*Element)}
}

// Build creates one surface per configured element.
func Build(elems []config.Element, newSurface func(width, height int) surface.Surface) *Page {
	p := New()
	for _, e := range elems {
		p.Add(e.ID, e.X, e.Y, newSurface(e.Width, e.Height))
	}
	return p
}

// Add places s under id, replacing any element with the same id.
func (p *Page) Add(id string, x, y int, s surface.Surface) {
	if old, ok := p.byID[id]; ok {
		old.X, old.Y, old.Surface = x, y, s
		return
	}
	e := &Element{ID: id, X: x, Y: y, Surface: s}
	p.elements = append(p.elements, e)
	p.byID[id] = e
}

// Lookup returns the surface registered under id, or nil when the page has
// no such element.
func (p *Page) Lookup(id string) surface.Surface {
	if p == nil {
		return nil
	}
	e, ok := p.byID[id]
	if !ok || e.Surface == nil {
		return nil
	}
	return e.Surface
}

// Elements returns the elements in drawing order.
func (p *Page) Elements() []*Element {
	return p.elements
}
