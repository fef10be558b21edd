// Package surface defines the drawing targets effects render into.
//
// A Surface keeps its pixels between frames, like a page canvas: nothing is
// erased unless Clear is called. Coordinates are in surface units with the
// origin at the top-left corner.
package surface

import "image/color"

// Surface is a fixed-size drawing target.
type Surface interface {
	Width() int
	Height() int

	// Clear erases the whole surface to transparent.
	Clear()
	FillCircle(x, y, r float64, c color.Color)
	DrawLine(x1, y1, x2, y2 float64, c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
	// Text draws s with its top-left corner at (x, y).
	Text(s string, x, y int, c color.Color)
}
