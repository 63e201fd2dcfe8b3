package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ScreenPainter draws onto an ebiten image, normally the frame's screen.
// Vertex and index buffers are reused between calls to keep the per-frame
// allocation flat.
type ScreenPainter struct {
	// Background, when set, is what Clear fills with instead of
	// transparent black.
	Background color.Color

	dst      *ebiten.Image
	whiteImg *ebiten.Image
	vs       []ebiten.Vertex
	is       []uint16

	vignette    *ebiten.Image
	vignetteKey vignetteKey
}

type vignetteKey struct {
	w, h int
	v    Vignette
}

var _ Painter = (*ScreenPainter)(nil)

func NewScreenPainter() *ScreenPainter {
	whiteImg := ebiten.NewImage(1, 1)
	whiteImg.Fill(color.White)
	return &ScreenPainter{
		whiteImg: whiteImg,
		vs:       make([]ebiten.Vertex, 0, 512),
		is:       make([]uint16, 0, 768),
	}
}

// Begin points the painter at the image to draw this frame.
func (p *ScreenPainter) Begin(dst *ebiten.Image) {
	p.dst = dst
}

func (p *ScreenPainter) Size() (int, int) {
	if p.dst == nil {
		return 0, 0
	}
	b := p.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (p *ScreenPainter) Clear() {
	if p.dst == nil {
		return
	}
	if p.Background != nil {
		p.dst.Fill(p.Background)
		return
	}
	p.dst.Clear()
}

func (p *ScreenPainter) StrokeSegments(segs []Segment, width float64, c color.Color) {
	if p.dst == nil || len(segs) == 0 {
		return
	}
	path := vector.Path{}
	for _, s := range segs {
		path.MoveTo(float32(s.A.X), float32(s.A.Y))
		path.LineTo(float32(s.B.X), float32(s.B.Y))
	}
	p.strokePath(&path, width, c)
}

func (p *ScreenPainter) StrokePolyline(pts []Point, s Stroke) {
	if p.dst == nil || len(pts) < 2 {
		return
	}
	path := vector.Path{}
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		path.LineTo(float32(pt.X), float32(pt.Y))
	}
	if s.Closed {
		path.Close()
	}
	p.strokePath(&path, s.Width, s.Color)
}

func (p *ScreenPainter) strokePath(path *vector.Path, width float64, c color.Color) {
	p.vs, p.is = path.AppendVerticesAndIndicesForStroke(p.vs[:0], p.is[:0], &vector.StrokeOptions{
		Width: float32(width),
	})
	r, g, b, a := toFloats(c)
	for i := range p.vs {
		p.vs[i].SrcX = 0
		p.vs[i].SrcY = 0
		p.vs[i].ColorR = float32(r)
		p.vs[i].ColorG = float32(g)
		p.vs[i].ColorB = float32(b)
		p.vs[i].ColorA = float32(a)
	}
	p.dst.DrawTriangles(p.vs, p.is, p.whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (p *ScreenPainter) FillRect(r Rect, c color.Color) {
	if p.dst == nil {
		return
	}
	vector.DrawFilledRect(p.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func (p *ScreenPainter) FillCircle(cx, cy, r float64, c color.Color) {
	if p.dst == nil {
		return
	}
	vector.DrawFilledCircle(p.dst, float32(cx), float32(cy), float32(r), c, true)
}

func (p *ScreenPainter) StrokeCircle(cx, cy, r, width float64, c color.Color) {
	if p.dst == nil {
		return
	}
	vector.StrokeCircle(p.dst, float32(cx), float32(cy), float32(r), float32(width), c, true)
}

// DrawVignette composites a cached gradient texture. The texture is rebuilt
// with gg only when the surface size or the gradient changes.
func (p *ScreenPainter) DrawVignette(v Vignette) {
	if p.dst == nil || v.Radius <= 0 {
		return
	}
	w, h := p.Size()
	key := vignetteKey{w: w, h: h, v: v}
	if p.vignette == nil || p.vignetteKey != key {
		if p.vignette != nil {
			p.vignette.Deallocate()
		}
		p.vignette = ebiten.NewImageFromImage(RenderVignette(w, h, v))
		p.vignetteKey = key
	}
	p.dst.DrawImage(p.vignette, nil)
}

// Dispose releases GPU-side images owned by the painter.
func (p *ScreenPainter) Dispose() {
	if p.vignette != nil {
		p.vignette.Deallocate()
		p.vignette = nil
	}
	p.whiteImg.Deallocate()
	p.dst = nil
}
