package surface

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas is a Surface backed by an offscreen ebiten image. The host
// composites the image onto the screen every frame.
type Canvas struct {
	img       *ebiten.Image
	width     int
	height    int
	antialias bool
}

func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		img:       ebiten.NewImage(width, height),
		width:     width,
		height:    height,
		antialias: true,
	}
}

func (c *Canvas) Image() *ebiten.Image { return c.img }
func (c *Canvas) Width() int           { return c.width }
func (c *Canvas) Height() int          { return c.height }

func (c *Canvas) Clear() {
	c.img.Clear()
}

func (c *Canvas) FillCircle(x, y, r float64, clr color.Color) {
	vector.DrawFilledCircle(c.img, float32(x), float32(y), float32(r), clr, c.antialias)
}

func (c *Canvas) DrawLine(x1, y1, x2, y2 float64, clr color.Color) {
	vector.StrokeLine(c.img, float32(x1), float32(y1), float32(x2), float32(y2), 1, clr, c.antialias)
}

func (c *Canvas) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(c.img, float32(x), float32(y), float32(w), float32(h), clr, false)
}

// Text uses the debug font, which only renders white glyphs; clr is ignored.
func (c *Canvas) Text(s string, x, y int, _ color.Color) {
	ebitenutil.DebugPrintAt(c.img, s, x, y)
}

var _ Surface = (*Canvas)(nil)
