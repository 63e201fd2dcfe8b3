// Package grid implements the scrolling background grid: an endless tiling of
// square cells that pans a little every frame, highlights the cell under the
// pointer and is darkened towards the corners by a radial vignette.
//
// All state lives in a Grid value. Input handlers write into it and the
// per-frame Advance/Draw pair reads it, all on the same goroutine.
package grid

import (
	"image/color"
	"math"

	"portfolio-backdrop/internal/event"
	"portfolio-backdrop/internal/utils"
	"portfolio-backdrop/pkg/render"

	"github.com/sirupsen/logrus"
)

const (
	DefaultCellSize = 40.0
	DefaultSpeed    = 1.0
	// MinSpeed — минимальный шаг за кадр, меньшие скорости поднимаются до него
	MinSpeed    = 0.1
	MinCellSize = 1.0
	LineWidth   = 0.5
	// VignetteAlpha — непрозрачность виньетки в углах
	VignetteAlpha = 0.8
)

var (
	DefaultBorderColor    = color.NRGBA{0x99, 0x99, 0x99, 0xff}
	DefaultHoverFillColor = color.NRGBA{0x22, 0x22, 0x22, 0xff}
)

// Options configures a Grid. Zero CellSize, colours and Direction take the
// defaults; Speed below MinSpeed, zero included, is raised to MinSpeed.
type Options struct {
	Direction      Direction
	Speed          float64
	CellSize       float64
	BorderColor    color.Color
	HoverFillColor color.Color
}

func DefaultOptions() Options {
	return Options{
		Direction:      Right,
		Speed:          DefaultSpeed,
		CellSize:       DefaultCellSize,
		BorderColor:    DefaultBorderColor,
		HoverFillColor: DefaultHoverFillColor,
	}
}

// normalized зажимает значения вне диапазона вместо того, чтобы их отвергать.
// Бесконечность и NaN считаются испорченными значениями и тоже зажимаются.
func (o Options) normalized() Options {
	if o.CellSize == 0 {
		o.CellSize = DefaultCellSize
	}
	if !isFinite(o.CellSize) || o.CellSize < MinCellSize {
		o.CellSize = MinCellSize
	}
	if !isFinite(o.Speed) || o.Speed < MinSpeed {
		o.Speed = MinSpeed
	}
	if !o.Direction.Valid() {
		o.Direction = Right
	}
	if o.BorderColor == nil {
		o.BorderColor = DefaultBorderColor
	}
	if o.HoverFillColor == nil {
		o.HoverFillColor = DefaultHoverFillColor
	}
	return o
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Cell — индекс клетки на бесконечной сетке
type Cell struct {
	X, Y int
}

// Grid хранит состояние рендерера для одного смонтированного фона
type Grid struct {
	opts Options

	offsetX, offsetY float64

	hovered  Cell
	hasHover bool

	width, height    int
	originX, originY float64
	cols, rows       int

	segs []render.Segment
}

var _ event.Listener = (*Grid)(nil)

func New(opts Options) *Grid {
	return &Grid{opts: opts.normalized()}
}

func (g *Grid) Options() Options { return g.opts }

// Resize пересчитывает размеры поверхности и число видимых клеток
func (g *Grid) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g.width, g.height = width, height
	cs := g.opts.CellSize
	g.cols = int(math.Ceil(float64(width)/cs)) + 1
	g.rows = int(math.Ceil(float64(height)/cs)) + 1
	if need := g.cols + g.rows; cap(g.segs) < need {
		g.segs = make([]render.Segment, 0, need)
	}
	logrus.WithFields(logrus.Fields{
		"width": width, "height": height, "cols": g.cols, "rows": g.rows,
	}).Debug("grid resized")
}

// SetOrigin задаёт положение левого верхнего угла поверхности в координатах
// окна. Из координат курсора вычитается это смещение.
func (g *Grid) SetOrigin(x, y float64) {
	g.originX, g.originY = x, y
}

func (g *Grid) Size() (width, height int) { return g.width, g.height }

// VisibleCells returns the column and row counts needed to cover the surface
// at any offset.
func (g *Grid) VisibleCells() (cols, rows int) { return g.cols, g.rows }

// Offset возвращает текущий сдвиг, по каждой оси в [0, CellSize)
func (g *Grid) Offset() (x, y float64) { return g.offsetX, g.offsetY }

// SetOffset ставит сетку в (x, y), приведённые в [0, CellSize).
// Нечисловые координаты сбрасывают ось в 0.
func (g *Grid) SetOffset(x, y float64) {
	if !isFinite(x) {
		x = 0
	}
	if !isFinite(y) {
		y = 0
	}
	g.offsetX = g.wrap(x)
	g.offsetY = g.wrap(y)
}

func (g *Grid) wrap(v float64) float64 {
	return utils.Wrap(v, g.opts.CellSize)
}

// Advance сдвигает сетку на один кадр в заданном направлении
func (g *Grid) Advance() {
	s := math.Max(g.opts.Speed, MinSpeed)
	switch g.opts.Direction {
	case Right:
		g.offsetX = g.wrap(g.offsetX - s)
	case Left:
		g.offsetX = g.wrap(g.offsetX + s)
	case Up:
		g.offsetY = g.wrap(g.offsetY + s)
	case Down:
		g.offsetY = g.wrap(g.offsetY - s)
	case Diagonal:
		g.offsetX = g.wrap(g.offsetX - s)
		g.offsetY = g.wrap(g.offsetY - s)
	}
}

// CellAt возвращает клетку под точкой в координатах холста
func (g *Grid) CellAt(lx, ly float64) Cell {
	cs := g.opts.CellSize
	return Cell{
		X: int(math.Floor((lx + g.wrap(g.offsetX)) / cs)),
		Y: int(math.Floor((ly + g.wrap(g.offsetY)) / cs)),
	}
}

// PointerMove records the cell under a pointer given in viewport coordinates.
func (g *Grid) PointerMove(px, py float64) {
	g.hovered = g.CellAt(px-g.originX, py-g.originY)
	g.hasHover = true
}

// PointerLeave снимает подсветку до следующего PointerMove
func (g *Grid) PointerLeave() {
	g.hasHover = false
	g.hovered = Cell{}
}

// Hovered возвращает подсвеченную клетку, если она есть
func (g *Grid) Hovered() (Cell, bool) {
	return g.hovered, g.hasHover
}

// CellRect is the on-surface rectangle of cell c at the current offset.
func (g *Grid) CellRect(c Cell) render.Rect {
	cs := g.opts.CellSize
	return render.Rect{
		X: float64(c.X)*cs - g.wrap(g.offsetX),
		Y: float64(c.Y)*cs - g.wrap(g.offsetY),
		W: cs,
		H: cs,
	}
}

// HoverRect — CellRect подсвеченной клетки
func (g *Grid) HoverRect() (render.Rect, bool) {
	if !g.hasHover {
		return render.Rect{}, false
	}
	return g.CellRect(g.hovered), true
}

// Lines возвращает линии сетки текущего кадра: сначала вертикальные, потом
// горизонтальные. Срез переиспользуется следующим вызовом.
func (g *Grid) Lines() []render.Segment {
	cs := g.opts.CellSize
	w, h := float64(g.width), float64(g.height)
	ox, oy := g.wrap(g.offsetX), g.wrap(g.offsetY)

	segs := g.segs[:0]
	for x := 0.0; x < w+cs; x += cs {
		dx := x - ox
		segs = append(segs, render.Segment{A: render.Point{X: dx, Y: 0}, B: render.Point{X: dx, Y: h}})
	}
	for y := 0.0; y < h+cs; y += cs {
		dy := y - oy
		segs = append(segs, render.Segment{A: render.Point{X: 0, Y: dy}, B: render.Point{X: w, Y: dy}})
	}
	g.segs = segs
	return segs
}

// Vignette — радиальное затемнение для текущего размера
func (g *Grid) Vignette() render.Vignette {
	return render.Vignette{
		CX:     float64(g.width) / 2,
		CY:     float64(g.height) / 2,
		Radius: render.CornerRadius(g.width, g.height),
		Inner:  color.NRGBA{0, 0, 0, 0},
		Outer:  color.NRGBA{0, 0, 0, uint8(VignetteAlpha * 255)},
	}
}

// Draw рисует один кадр. Вызывается каждый кадр, даже если сдвиг не
// изменился: подсветка и размер меняются независимо.
func (g *Grid) Draw(p render.Painter) {
	if p == nil || g.width == 0 || g.height == 0 {
		return
	}
	p.Clear()
	p.StrokeSegments(g.Lines(), LineWidth, g.opts.BorderColor)
	if r, ok := g.HoverRect(); ok {
		p.FillRect(r, g.opts.HoverFillColor)
	}
	p.DrawVignette(g.Vignette())
}

// OnEvent реализует интерфейс event.Listener.
func (g *Grid) OnEvent(e event.Event) {
	switch e.Type {
	case event.Resize:
		if d, ok := e.Data.(event.ResizeData); ok {
			g.Resize(d.Width, d.Height)
		}
	case event.PointerMove:
		if d, ok := e.Data.(event.PointerData); ok {
			g.PointerMove(d.X, d.Y)
		}
	case event.PointerLeave:
		g.PointerLeave()
	}
}
