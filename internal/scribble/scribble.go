// Package scribble draws a slowly drifting field of hand-drawn doodles
// (arrows, crowns, spirals, stars...) for a notebook-style backdrop.
package scribble

import (
	"image/color"
	"math"

	"portfolio-backdrop/internal/event"
	"portfolio-backdrop/internal/utils"
	"portfolio-backdrop/pkg/render"

	"github.com/sirupsen/logrus"
)

const (
	MinCount      = 30
	SpacingPx     = 40 // one doodle per this many pixels of width
	WrapMargin    = 100.0
	MinSize       = 30.0
	SizeSpread    = 60.0
	MinOpacity    = 0.05
	OpacitySpread = 0.15
	DriftSpread   = 0.4
	SpinSpread    = 0.005
	AccentChance  = 0.15
	JitterSpread  = 1.5
)

var (
	AccentColor = color.NRGBA{0xef, 0x44, 0x44, 0xff}
	InkColor    = color.NRGBA{0xff, 0xff, 0xff, 0xff}
)

// Doodle — одна плывущая фигурка
type Doodle struct {
	X, Y     float64
	Size     float64
	Shape    Shape
	Opacity  float64
	DriftX   float64
	DriftY   float64
	Rotation float64
	Spin     float64
	Color    color.NRGBA
}

// Field владеет фигурками и генератором случайных чисел для их
// расстановки и дрожания.
type Field struct {
	rng     *utils.PRNGService
	doodles []Doodle
	width   int
	height  int
	strokes []stroke
}

var _ event.Listener = (*Field)(nil)

func NewField(rng *utils.PRNGService) *Field {
	return &Field{rng: rng}
}

// Count — сколько фигурок засевается для поверхности ширины width
func Count(width int) int {
	n := width / SpacingPx
	if n < MinCount {
		return MinCount
	}
	return n
}

// Resize заново расставляет все фигурки под новый размер
func (f *Field) Resize(width, height int) {
	f.width, f.height = width, height
	n := Count(width)
	f.doodles = f.doodles[:0]
	for i := 0; i < n; i++ {
		f.doodles = append(f.doodles, f.newDoodle())
	}
	logrus.WithFields(logrus.Fields{"count": n, "width": width, "height": height}).Debug("scribbles seeded")
}

func (f *Field) newDoodle() Doodle {
	d := Doodle{
		X:        f.rng.Float64() * float64(f.width),
		Y:        f.rng.Float64() * float64(f.height),
		Size:     f.rng.Range(MinSize, MinSize+SizeSpread),
		Shape:    Shape(f.rng.Intn(int(shapeCount))),
		Opacity:  f.rng.Range(MinOpacity, MinOpacity+OpacitySpread),
		DriftX:   f.rng.Centered(DriftSpread),
		DriftY:   f.rng.Centered(DriftSpread),
		Rotation: f.rng.Float64() * 2 * math.Pi,
		Spin:     f.rng.Centered(SpinSpread),
		Color:    InkColor,
	}
	if f.rng.Chance(AccentChance) {
		d.Color = AccentColor
	}
	return d
}

func (f *Field) Doodles() []Doodle { return f.doodles }

// Step сдвигает фигурки на кадр и переносит их через край с запасом,
// чтобы фигура уходила целиком, прежде чем появиться с другой стороны.
func (f *Field) Step() {
	w, h := float64(f.width), float64(f.height)
	for i := range f.doodles {
		d := &f.doodles[i]
		d.X += d.DriftX
		d.Y += d.DriftY
		d.Rotation += d.Spin

		if d.X > w+WrapMargin {
			d.X = -WrapMargin
		}
		if d.X < -WrapMargin {
			d.X = w + WrapMargin
		}
		if d.Y > h+WrapMargin {
			d.Y = -WrapMargin
		}
		if d.Y < -WrapMargin {
			d.Y = h + WrapMargin
		}
	}
}

// Draw обводит каждую фигурку. Дрожание пересчитывается каждый кадр,
// отсюда эффект "нарисовано от руки".
func (f *Field) Draw(p render.Painter) {
	if p == nil {
		return
	}
	for _, d := range f.doodles {
		f.strokes = f.outline(d, f.strokes[:0])
		sin, cos := math.Sincos(d.Rotation)
		c := render.WithAlpha(d.Color, d.Opacity)
		for _, s := range f.strokes {
			for i, pt := range s.pts {
				s.pts[i] = render.Point{
					X: d.X + pt.X*cos - pt.Y*sin,
					Y: d.Y + pt.X*sin + pt.Y*cos,
				}
			}
			p.StrokePolyline(s.pts, render.Stroke{Width: s.width, Color: c, Closed: s.closed})
		}
	}
}

func (f *Field) OnEvent(e event.Event) {
	if e.Type != event.Resize {
		return
	}
	if d, ok := e.Data.(event.ResizeData); ok {
		f.Resize(d.Width, d.Height)
	}
}
