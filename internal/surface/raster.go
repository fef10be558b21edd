package surface

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	xvector "golang.org/x/image/vector"
)

// Raster is a software Surface over an *image.RGBA. It renders without a GPU,
// which makes it suitable for snapshots and pixel comparisons.
type Raster struct {
	img *image.RGBA
	rz  *xvector.Rasterizer
}

func NewRaster(width, height int) *Raster {
	rz := xvector.NewRasterizer(width, height)
	rz.DrawOp = draw.Over
	return &Raster{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		rz:  rz,
	}
}

func (r *Raster) Image() *image.RGBA { return r.img }
func (r *Raster) Width() int         { return r.img.Rect.Dx() }
func (r *Raster) Height() int        { return r.img.Rect.Dy() }

func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Rect, image.Transparent, image.Point{}, draw.Src)
}

func (r *Raster) FillCircle(x, y, radius float64, c color.Color) {
	if radius <= 0 {
		return
	}
	// Enough segments that the polygon edge stays within a fraction of a pixel.
	segments := int(math.Max(12, math.Ceil(2*math.Pi*radius)))

	r.begin()
	for i := 0; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		px := float32(x + radius*math.Cos(a))
		py := float32(y + radius*math.Sin(a))
		if i == 0 {
			r.rz.MoveTo(px, py)
		} else {
			r.rz.LineTo(px, py)
		}
	}
	r.fill(c)
}

// DrawLine strokes a one unit wide segment.
func (r *Raster) DrawLine(x1, y1, x2, y2 float64, c color.Color) {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	// Half-width normal.
	nx, ny := -dy/length*0.5, dx/length*0.5

	r.begin()
	r.rz.MoveTo(float32(x1+nx), float32(y1+ny))
	r.rz.LineTo(float32(x2+nx), float32(y2+ny))
	r.rz.LineTo(float32(x2-nx), float32(y2-ny))
	r.rz.LineTo(float32(x1-nx), float32(y1-ny))
	r.fill(c)
}

func (r *Raster) FillRect(x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	r.begin()
	r.rz.MoveTo(float32(x), float32(y))
	r.rz.LineTo(float32(x+w), float32(y))
	r.rz.LineTo(float32(x+w), float32(y+h))
	r.rz.LineTo(float32(x), float32(y+h))
	r.fill(c)
}

func (r *Raster) Text(s string, x, y int, c color.Color) {
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y+face.Ascent),
	}
	d.DrawString(s)
}

func (r *Raster) begin() {
	r.rz.Reset(r.Width(), r.Height())
	r.rz.DrawOp = draw.Over
}

func (r *Raster) fill(c color.Color) {
	r.rz.ClosePath()
	r.rz.Draw(r.img, r.img.Rect, image.NewUniform(c), image.Point{})
}

var _ Surface = (*Raster)(nil)
