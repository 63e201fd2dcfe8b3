package render

import "image/color"

// Point — точка в координатах поверхности.
type Point struct {
	X, Y float64
}

// Segment is a straight line between two points.
type Segment struct {
	A, B Point
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Vignette describes a radial gradient composited over the whole surface.
// Inner is the colour at the centre, Outer the colour at Radius and beyond.
type Vignette struct {
	CX, CY float64
	Radius float64
	Inner  color.Color
	Outer  color.Color
}

// Stroke describes how a polyline is outlined.
type Stroke struct {
	Width  float64
	Color  color.Color
	Closed bool
}

// Painter is the drawing surface every layer renders into. Implementations
// exist for the live ebiten screen, the gg raster used for PNG export,
// SVG output and a recorder for tests.
type Painter interface {
	// Size returns the surface dimensions in pixels.
	Size() (w, h int)
	// Clear делает поверхность полностью прозрачной
	Clear()
	// StrokeSegments рисует пачку линий за один проход
	StrokeSegments(segs []Segment, width float64, c color.Color)
	// StrokePolyline draws connected lines through pts.
	StrokePolyline(pts []Point, s Stroke)
	FillRect(r Rect, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	StrokeCircle(cx, cy, r, width float64, c color.Color)
	DrawVignette(v Vignette)
}
