package render

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/gogpu/gg"
)

// RasterPainter draws into an off-screen gg context. It backs PNG snapshots
// and pre-renders the vignette texture for the screen painter.
type RasterPainter struct {
	dc *gg.Context
	w  int
	h  int
}

var _ Painter = (*RasterPainter)(nil)

func NewRasterPainter(w, h int) *RasterPainter {
	return &RasterPainter{dc: gg.NewContext(w, h), w: w, h: h}
}

func (p *RasterPainter) Size() (int, int) { return p.w, p.h }

func (p *RasterPainter) Clear() {
	p.dc.ClearWithColor(gg.RGBA2(0, 0, 0, 0))
}

func (p *RasterPainter) setColor(c color.Color) {
	r, g, b, a := toFloats(c)
	p.dc.SetRGBA(r, g, b, a)
}

func (p *RasterPainter) StrokeSegments(segs []Segment, width float64, c color.Color) {
	if len(segs) == 0 {
		return
	}
	p.dc.ClearPath()
	for _, s := range segs {
		p.dc.MoveTo(s.A.X, s.A.Y)
		p.dc.LineTo(s.B.X, s.B.Y)
	}
	p.setColor(c)
	p.dc.SetLineWidth(width)
	_ = p.dc.Stroke()
}

func (p *RasterPainter) StrokePolyline(pts []Point, s Stroke) {
	if len(pts) < 2 {
		return
	}
	p.dc.ClearPath()
	p.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.dc.LineTo(pt.X, pt.Y)
	}
	if s.Closed {
		p.dc.ClosePath()
	}
	p.setColor(s.Color)
	p.dc.SetLineWidth(s.Width)
	_ = p.dc.Stroke()
}

func (p *RasterPainter) FillRect(r Rect, c color.Color) {
	p.dc.ClearPath()
	p.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	p.setColor(c)
	_ = p.dc.Fill()
}

func (p *RasterPainter) FillCircle(cx, cy, r float64, c color.Color) {
	p.dc.ClearPath()
	p.dc.DrawCircle(cx, cy, r)
	p.setColor(c)
	_ = p.dc.Fill()
}

func (p *RasterPainter) StrokeCircle(cx, cy, r, width float64, c color.Color) {
	p.dc.ClearPath()
	p.dc.DrawCircle(cx, cy, r)
	p.setColor(c)
	p.dc.SetLineWidth(width)
	_ = p.dc.Stroke()
}

func (p *RasterPainter) DrawVignette(v Vignette) {
	if v.Radius <= 0 {
		return
	}
	grad := gg.NewRadialGradientBrush(v.CX, v.CY, 0, v.Radius).
		AddColorStop(0, gg.FromColor(v.Inner)).
		AddColorStop(1, gg.FromColor(v.Outer))
	p.dc.ClearPath()
	p.dc.DrawRectangle(0, 0, float64(p.w), float64(p.h))
	p.dc.SetFillBrush(grad)
	_ = p.dc.Fill()
}

// Image returns the rendered pixels.
func (p *RasterPainter) Image() image.Image {
	return p.dc.Image()
}

// EncodePNG writes the surface as PNG.
func (p *RasterPainter) EncodePNG(w io.Writer) error {
	return p.dc.EncodePNG(w)
}

func (p *RasterPainter) Close() error {
	return p.dc.Close()
}

// RenderVignette rasterises v into a w×h image. The screen painter caches the
// result and re-renders only on resize.
func RenderVignette(w, h int, v Vignette) image.Image {
	p := NewRasterPainter(w, h)
	defer p.Close()
	p.Clear()
	p.DrawVignette(v)
	return p.Image()
}

// CornerRadius is the distance from the centre of a w×h surface to a corner.
func CornerRadius(w, h int) float64 {
	return math.Hypot(float64(w), float64(h)) / 2
}
