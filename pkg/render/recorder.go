package render

import "image/color"

// OpKind identifies a recorded drawing call.
type OpKind int

const (
	OpClear OpKind = iota
	OpSegments
	OpPolyline
	OpFillRect
	OpFillCircle
	OpStrokeCircle
	OpVignette
)

// Op is one drawing call captured by a Recorder.
type Op struct {
	Kind     OpKind
	Segments []Segment
	Points   []Point
	Rect     Rect
	Center   Point
	Radius   float64
	Width    float64
	Color    color.Color
	Closed   bool
	Vignette Vignette
}

// Recorder is a Painter that keeps every call instead of drawing.
// Used in tests and as a dry-run surface.
type Recorder struct {
	W, H int
	Ops  []Op
}

var _ Painter = (*Recorder)(nil)

func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Size() (int, int) { return r.W, r.H }

func (r *Recorder) Clear() {
	r.Ops = append(r.Ops, Op{Kind: OpClear})
}

func (r *Recorder) StrokeSegments(segs []Segment, width float64, c color.Color) {
	cp := make([]Segment, len(segs))
	copy(cp, segs)
	r.Ops = append(r.Ops, Op{Kind: OpSegments, Segments: cp, Width: width, Color: c})
}

func (r *Recorder) StrokePolyline(pts []Point, s Stroke) {
	cp := make([]Point, len(pts))
	copy(cp, pts)
	r.Ops = append(r.Ops, Op{Kind: OpPolyline, Points: cp, Width: s.Width, Color: s.Color, Closed: s.Closed})
}

func (r *Recorder) FillRect(rect Rect, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, Rect: rect, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, rad float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillCircle, Center: Point{cx, cy}, Radius: rad, Color: c})
}

func (r *Recorder) StrokeCircle(cx, cy, rad, width float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeCircle, Center: Point{cx, cy}, Radius: rad, Width: width, Color: c})
}

func (r *Recorder) DrawVignette(v Vignette) {
	r.Ops = append(r.Ops, Op{Kind: OpVignette, Vignette: v})
}

// Kinds возвращает последовательность типов записанных вызовов
func (r *Recorder) Kinds() []OpKind {
	out := make([]OpKind, len(r.Ops))
	for i, op := range r.Ops {
		out[i] = op.Kind
	}
	return out
}

// Filter returns the recorded calls of the given kind.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Reset drops everything recorded so far.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
