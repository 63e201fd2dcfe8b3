package scribble

import (
	"fmt"
	"math"

	"portfolio-backdrop/pkg/render"
)

// Shape — тип фигурки
type Shape int

const (
	ShapeScribble Shape = iota
	ShapeCrown
	ShapeZigzag
	ShapeArrow
	ShapeSpiral
	ShapeStar
	ShapeCross
	ShapeHeart
	shapeCount
)

var shapeNames = [...]string{
	ShapeScribble: "scribble",
	ShapeCrown:    "crown",
	ShapeZigzag:   "zigzag",
	ShapeArrow:    "arrow",
	ShapeSpiral:   "spiral",
	ShapeStar:     "star",
	ShapeCross:    "cross",
	ShapeHeart:    "heart",
}

func (s Shape) String() string {
	if s < 0 || s >= shapeCount {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

const (
	scribblePoints = 20
	curveSteps     = 16
	crownPeakLift  = 10.0
	spiralStepR    = 0.5
	spiralStepA    = 0.3
)

// stroke — одна ломаная фигурки в её локальных координатах
type stroke struct {
	pts    []render.Point
	width  float64
	closed bool
}

// outline добавляет штрихи d с центром в нуле, без поворота
func (f *Field) outline(d Doodle, dst []stroke) []stroke {
	s := d.Size
	j := func(x, y float64) render.Point {
		return render.Point{X: x + f.rng.Centered(JitterSpread), Y: y + f.rng.Centered(JitterSpread)}
	}

	switch d.Shape {
	case ShapeScribble:
		pts := []render.Point{j(0, 0)}
		for i := 0; i < scribblePoints; i++ {
			a := f.rng.Float64() * 2 * math.Pi
			r := f.rng.Float64() * (s / 2)
			pts = append(pts, render.Point{X: math.Cos(a) * r, Y: math.Sin(a) * r})
		}
		dst = append(dst, stroke{pts: pts, width: 1.2})

	case ShapeHeart:
		top := j(0, -s/4)
		bottom := j(0, s/2)
		pts := []render.Point{top}
		pts = appendCubic(pts, top, j(-s/2, -s/2), j(-s, 0), bottom)
		pts = appendCubic(pts, bottom, j(s, 0), j(s/2, -s/2), j(0, -s/4))
		dst = append(dst, stroke{pts: pts, width: 1.5})

	case ShapeCrown:
		w, h := s*0.8, s*0.6
		dst = append(dst, stroke{pts: []render.Point{
			j(-w/2, h/2),
			j(w/2, h/2),
			j(w/2, -h/2),
			j(w/6, h/6),
			j(0, -h/2-crownPeakLift),
			j(-w/6, h/6),
			j(-w/2, -h/2),
		}, width: 1.5, closed: true})

	case ShapeZigzag:
		const steps = 6
		stepW := s / steps
		pts := []render.Point{j(-s/2, 0)}
		for i := 1; i <= steps; i++ {
			yOff := s / 4
			if i%2 == 0 {
				yOff = -s / 4
			}
			pts = append(pts, j(-s/2+float64(i)*stepW, yOff))
		}
		dst = append(dst, stroke{pts: pts, width: 1.5})

	case ShapeArrow:
		dst = append(dst,
			stroke{pts: []render.Point{j(-s/2, 0), j(s/2, 0), j(s/6, -s/4)}, width: 1.5},
			stroke{pts: []render.Point{j(s/2, 0), j(s/6, s/4)}, width: 1.5},
		)

	case ShapeSpiral:
		pts := []render.Point{{}}
		r, a := 0.0, 0.0
		for r < s/2 {
			r += spiralStepR
			a += spiralStepA
			pts = append(pts, render.Point{X: math.Cos(a) * r, Y: math.Sin(a) * r})
		}
		dst = append(dst, stroke{pts: pts, width: 1.2})

	case ShapeStar:
		r := s / 2
		dst = append(dst, stroke{pts: []render.Point{
			j(0, -r),
			j(r*0.6, r),
			j(-r, -r*0.3),
			j(r, -r*0.3),
			j(-r*0.6, r),
		}, width: 1.5, closed: true})

	case ShapeCross:
		dst = append(dst,
			stroke{pts: []render.Point{j(-s/3, -s/3), j(s/3, s/3)}, width: 2},
			stroke{pts: []render.Point{j(s/3, -s/3), j(-s/3, s/3)}, width: 2},
		)
	}
	return dst
}

// appendCubic раскладывает кривую Безье p0..p3 в ломаную, без p0
func appendCubic(dst []render.Point, p0, p1, p2, p3 render.Point) []render.Point {
	for i := 1; i <= curveSteps; i++ {
		t := float64(i) / curveSteps
		mt := 1 - t
		a := mt * mt * mt
		b := 3 * mt * mt * t
		c := 3 * mt * t * t
		d := t * t * t
		dst = append(dst, render.Point{
			X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
			Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
		})
	}
	return dst
}
