package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

// SVGPainter streams drawing calls as SVG elements. Coordinates are rounded
// to whole pixels, which svgo works in.
type SVGPainter struct {
	canvas  *svg.SVG
	w, h    int
	nextID  int
	started bool
}

var _ Painter = (*SVGPainter)(nil)

// NewSVGPainter writes the SVG header immediately; call End to close the
// document.
func NewSVGPainter(out io.Writer, w, h int) *SVGPainter {
	p := &SVGPainter{canvas: svg.New(out), w: w, h: h}
	p.canvas.Start(w, h)
	p.canvas.Title("backdrop")
	p.started = true
	return p
}

func (p *SVGPainter) Size() (int, int) { return p.w, p.h }

// Clear paints the background black; SVG has no way to erase earlier
// elements, so snapshots are drawn once.
func (p *SVGPainter) Clear() {
	p.canvas.Rect(0, 0, p.w, p.h, "fill:black")
}

func (p *SVGPainter) StrokeSegments(segs []Segment, width float64, c color.Color) {
	if len(segs) == 0 {
		return
	}
	p.canvas.Gstyle(strokeStyle(width, c))
	for _, s := range segs {
		p.canvas.Line(round(s.A.X), round(s.A.Y), round(s.B.X), round(s.B.Y))
	}
	p.canvas.Gend()
}

func (p *SVGPainter) StrokePolyline(pts []Point, s Stroke) {
	if len(pts) < 2 {
		return
	}
	xs := make([]int, len(pts))
	ys := make([]int, len(pts))
	for i, pt := range pts {
		xs[i], ys[i] = round(pt.X), round(pt.Y)
	}
	style := strokeStyle(s.Width, s.Color)
	if s.Closed {
		p.canvas.Polygon(xs, ys, style)
		return
	}
	p.canvas.Polyline(xs, ys, style)
}

func (p *SVGPainter) FillRect(r Rect, c color.Color) {
	p.canvas.Rect(round(r.X), round(r.Y), round(r.W), round(r.H), fillStyle(c))
}

func (p *SVGPainter) FillCircle(cx, cy, r float64, c color.Color) {
	p.canvas.Circle(round(cx), round(cy), round(r), fillStyle(c))
}

func (p *SVGPainter) StrokeCircle(cx, cy, r, width float64, c color.Color) {
	p.canvas.Circle(round(cx), round(cy), round(r), strokeStyle(width, c))
}

// DrawVignette fills a square of side 2*Radius centred on the gradient with
// a radialGradient at 50%. objectBoundingBox units stretch with the box, so
// on the surface rectangle the gradient would turn into an ellipse; on a
// square it stays a circle. The viewport clips the overhang.
func (p *SVGPainter) DrawVignette(v Vignette) {
	if v.Radius <= 0 || p.w == 0 || p.h == 0 {
		return
	}
	p.nextID++
	id := fmt.Sprintf("vignette%d", p.nextID)

	ir, ig, ib, ia := toFloats(v.Inner)
	or, og, ob, oa := toFloats(v.Outer)
	p.canvas.Def()
	p.canvas.RadialGradient(id, 50, 50, 50, 50, 50, []svg.Offcolor{
		{Offset: 0, Color: rgbHex(ir, ig, ib), Opacity: ia},
		{Offset: 100, Color: rgbHex(or, og, ob), Opacity: oa},
	})
	p.canvas.DefEnd()
	side := round(2 * v.Radius)
	p.canvas.Rect(round(v.CX-v.Radius), round(v.CY-v.Radius), side, side, fmt.Sprintf("fill:url(#%s)", id))
}

// End closes the document.
func (p *SVGPainter) End() {
	if p.started {
		p.canvas.End()
		p.started = false
	}
}

func strokeStyle(width float64, c color.Color) string {
	r, g, b, a := toFloats(c)
	return fmt.Sprintf("fill:none;stroke:%s;stroke-opacity:%.3f;stroke-width:%.2f", rgbHex(r, g, b), a, width)
}

func fillStyle(c color.Color) string {
	r, g, b, a := toFloats(c)
	return fmt.Sprintf("fill:%s;fill-opacity:%.3f", rgbHex(r, g, b), a)
}

func rgbHex(r, g, b float64) string {
	return fmt.Sprintf("#%02x%02x%02x", uint8(r*255+0.5), uint8(g*255+0.5), uint8(b*255+0.5))
}

func round(f float64) int {
	return int(math.Round(f))
}
