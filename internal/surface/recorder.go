package surface

import "image/color"

// OpKind identifies a recorded drawing call.
type OpKind int

const (
	OpCircle OpKind = iota
	OpLine
	OpRect
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpCircle:
		return "circle"
	case OpLine:
		return "line"
	case OpRect:
		return "rect"
	case OpText:
		return "text"
	default:
		return "unknown"
	}
}

// Op is one drawing call. Circles use X, Y, R; lines X, Y, X2, Y2;
// rects X, Y, W, H; text X, Y, Text.
type Op struct {
	Kind  OpKind
	X, Y  float64
	X2    float64
	Y2    float64
	W, H  float64
	R     float64
	Text  string
	Color color.Color
}

// Recorder is a Surface that keeps the calls drawn since the last Clear
// instead of pixels. Two frames produced the same image when their op lists
// are equal.
type Recorder struct {
	W, H   int
	Ops    []Op
	Clears int
}

func NewRecorder(width, height int) *Recorder {
	return &Recorder{W: width, H: height}
}

func (r *Recorder) Width() int  { return r.W }
func (r *Recorder) Height() int { return r.H }

func (r *Recorder) Clear() {
	r.Ops = nil
	r.Clears++
}

func (r *Recorder) FillCircle(x, y, radius float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, X: x, Y: y, R: radius, Color: c})
}

func (r *Recorder) DrawLine(x1, y1, x2, y2 float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, X: x1, Y: y1, X2: x2, Y2: y2, Color: c})
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) Text(s string, x, y int, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpText, X: float64(x), Y: float64(y), Text: s, Color: c})
}

// Count returns how many ops of kind k were drawn since the last Clear.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Texts returns the strings drawn since the last Clear, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Snapshot returns a copy of the current op list.
func (r *Recorder) Snapshot() []Op {
	return append([]Op(nil), r.Ops...)
}

var _ Surface = (*Recorder)(nil)
