package ui

import (
	"image/color"

	"portfolio-backdrop/internal/event"
	"portfolio-backdrop/internal/utils"
	"portfolio-backdrop/pkg/render"
)

const (
	CursorDotRadius      = 4.0
	CursorFollowerRadius = 18.0
	CursorFollowerWidth  = 1.0
)

// Cursor replaces the OS pointer with a sharp dot and a ring that trails
// behind it.
type Cursor struct {
	X, Y    float64 // dot
	FX, FY  float64 // follower
	Visible bool

	settle float64
	color  color.NRGBA
}

var _ event.Listener = (*Cursor)(nil)

// NewCursor creates a hidden cursor. settle is roughly how long, in seconds,
// the ring takes to catch up with the dot.
func NewCursor(c color.NRGBA, settle float64) *Cursor {
	return &Cursor{color: c, settle: settle}
}

func (c *Cursor) Move(x, y float64) {
	if !c.Visible {
		// появляемся сразу на месте, без догоняния из угла
		c.FX, c.FY = x, y
	}
	c.X, c.Y = x, y
	c.Visible = true
}

func (c *Cursor) Hide() {
	c.Visible = false
}

// Step подтягивает кольцо к точке
func (c *Cursor) Step(dt float64) {
	c.FX = utils.Approach(c.FX, c.X, dt, c.settle)
	c.FY = utils.Approach(c.FY, c.Y, dt, c.settle)
}

func (c *Cursor) Draw(p render.Painter) {
	if p == nil || !c.Visible {
		return
	}
	p.StrokeCircle(c.FX, c.FY, CursorFollowerRadius, CursorFollowerWidth, render.WithAlpha(c.color, 0.5))
	p.FillCircle(c.X, c.Y, CursorDotRadius, c.color)
}

func (c *Cursor) OnEvent(e event.Event) {
	switch e.Type {
	case event.PointerMove:
		if d, ok := e.Data.(event.PointerData); ok {
			c.Move(d.X, d.Y)
		}
	case event.PointerLeave:
		c.Hide()
	}
}
