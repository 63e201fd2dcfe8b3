package grid

import (
	"math"
	"testing"

	"portfolio-backdrop/internal/event"
	"portfolio-backdrop/pkg/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wrapRef(v, m float64) float64 {
	r := math.Mod(v, m)
	if r < 0 {
		r += m
	}
	if r >= m {
		r = 0
	}
	return r
}

func TestAdvanceDirections(t *testing.T) {
	tests := []struct {
		name   string
		dir    Direction
		signX  float64
		signY  float64
		speed  float64
		frames int
	}{
		{"right decreases x", Right, -1, 0, 1, 7},
		{"left increases x", Left, 1, 0, 1, 7},
		{"up increases y", Up, 0, 1, 0.75, 13},
		{"down decreases y", Down, 0, -1, 0.75, 13},
		{"diagonal decreases both", Diagonal, -1, -1, 2.5, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const cs = 40.0
			g := New(Options{Direction: tt.dir, Speed: tt.speed, CellSize: cs})
			g.SetOffset(10, 20)
			for i := 0; i < tt.frames; i++ {
				g.Advance()
			}
			shift := float64(tt.frames) * tt.speed
			x, y := g.Offset()
			assert.InDelta(t, wrapRef(10+tt.signX*shift, cs), x, 1e-9)
			assert.InDelta(t, wrapRef(20+tt.signY*shift, cs), y, 1e-9)
		})
	}
}

func TestOffsetStaysInRange(t *testing.T) {
	for _, dir := range []Direction{Right, Left, Up, Down, Diagonal} {
		for _, speed := range []float64{0.1, 0.5, 3, 39.9, 40, 41, 123.456} {
			g := New(Options{Direction: dir, Speed: speed, CellSize: 40})
			for i := 0; i < 500; i++ {
				g.Advance()
				x, y := g.Offset()
				require.True(t, x >= 0 && x < 40, "dir=%v speed=%v x=%v", dir, speed, x)
				require.True(t, y >= 0 && y < 40, "dir=%v speed=%v y=%v", dir, speed, y)
			}
		}
	}
}

func TestDiagonalScenario(t *testing.T) {
	g := New(Options{Direction: Diagonal, Speed: 0.5, CellSize: 50})
	for i := 0; i < 100; i++ {
		g.Advance()
	}
	x, y := g.Offset()
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)
}

func TestSpeedClamped(t *testing.T) {
	for _, speed := range []float64{0, -5, 0.01, math.NaN(), math.Inf(1), math.Inf(-1)} {
		g := New(Options{Direction: Left, Speed: speed, CellSize: 40})
		assert.Equal(t, MinSpeed, g.Options().Speed)
		g.Advance()
		x, _ := g.Offset()
		assert.InDelta(t, MinSpeed, x, 1e-12)
	}
}

func TestNonFiniteOptionsKeepOffsetInRange(t *testing.T) {
	for _, v := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		g := New(Options{Direction: Diagonal, Speed: v, CellSize: 40})
		assert.Equal(t, MinSpeed, g.Options().Speed)
		g = New(Options{Direction: Diagonal, Speed: 1, CellSize: v})
		assert.Equal(t, MinCellSize, g.Options().CellSize)

		g = New(Options{Direction: Diagonal, Speed: v, CellSize: 40})
		for i := 0; i < 10; i++ {
			g.Advance()
		}
		x, y := g.Offset()
		assert.True(t, x >= 0 && x < 40, "x=%v", x)
		assert.True(t, y >= 0 && y < 40, "y=%v", y)

		g.SetOffset(v, 12)
		x, y = g.Offset()
		assert.Equal(t, 0.0, x)
		assert.Equal(t, 12.0, y)
	}
}

func TestDefaultsAndClamping(t *testing.T) {
	g := New(Options{})
	o := g.Options()
	assert.Equal(t, Right, o.Direction)
	assert.Equal(t, DefaultCellSize, o.CellSize)
	assert.Equal(t, MinSpeed, o.Speed)
	assert.Equal(t, DefaultBorderColor, o.BorderColor)
	assert.Equal(t, DefaultHoverFillColor, o.HoverFillColor)

	g = New(Options{CellSize: -3, Speed: 1, Direction: Direction(42)})
	assert.Equal(t, MinCellSize, g.Options().CellSize)
	assert.Equal(t, Right, g.Options().Direction)
}

func TestHoveredCell(t *testing.T) {
	tests := []struct {
		px, py, ox, oy float64
	}{
		{0, 0, 0, 0},
		{39.9, 40, 0, 0},
		{10, 10, 35, 5},
		{123.4, 567.8, 12.5, 39.99},
		{-5, -45, 20, 20},
	}
	for _, tt := range tests {
		g := New(Options{CellSize: 40, Speed: 1})
		g.Resize(800, 600)
		g.SetOffset(tt.ox, tt.oy)
		g.PointerMove(tt.px, tt.py)
		c, ok := g.Hovered()
		require.True(t, ok)
		assert.Equal(t, int(math.Floor((tt.px+math.Mod(tt.ox, 40))/40)), c.X)
		assert.Equal(t, int(math.Floor((tt.py+math.Mod(tt.oy, 40))/40)), c.Y)
	}
}

func TestPointerUsesSurfaceOrigin(t *testing.T) {
	g := New(Options{CellSize: 50, Speed: 1})
	g.SetOrigin(100, 20)
	g.PointerMove(160, 75)
	c, _ := g.Hovered()
	assert.Equal(t, Cell{X: 1, Y: 1}, c)
}

func TestPointerLeaveClearsHover(t *testing.T) {
	g := New(DefaultOptions())
	g.Resize(400, 300)
	g.PointerMove(50, 50)
	_, ok := g.Hovered()
	require.True(t, ok)

	g.PointerLeave()
	_, ok = g.Hovered()
	assert.False(t, ok)

	// Frames alone never restore it.
	for i := 0; i < 10; i++ {
		g.Advance()
	}
	_, ok = g.Hovered()
	assert.False(t, ok)

	g.PointerMove(10, 10)
	_, ok = g.Hovered()
	assert.True(t, ok)
}

func TestResizeCounts(t *testing.T) {
	tests := []struct {
		w, h       int
		cs         float64
		cols, rows int
	}{
		{800, 600, 40, 21, 16},
		{801, 599, 40, 22, 16},
		{1920, 1080, 50, 40, 23},
		{0, 0, 40, 1, 1},
	}
	for _, tt := range tests {
		g := New(Options{CellSize: tt.cs, Speed: 1})
		g.Resize(tt.w, tt.h)
		cols, rows := g.VisibleCells()
		assert.Equal(t, int(math.Ceil(float64(tt.w)/tt.cs))+1, cols)
		assert.Equal(t, tt.cols, cols)
		assert.Equal(t, tt.rows, rows)
	}
}

func TestHoverRectMatchesDrawnLines(t *testing.T) {
	g := New(Options{Direction: Diagonal, CellSize: 50, Speed: 0.7})
	g.Resize(640, 480)
	for i := 0; i < 37; i++ {
		g.Advance()
	}
	g.PointerMove(333, 222)

	r, ok := g.HoverRect()
	require.True(t, ok)
	assert.True(t, 333 >= r.X && 333 < r.X+r.W, "pointer x %v outside %v", 333, r)
	assert.True(t, 222 >= r.Y && 222 < r.Y+r.H, "pointer y %v outside %v", 222, r)

	// The rect edges coincide with drawn lines.
	var xs, ys []float64
	for _, s := range g.Lines() {
		if s.A.X == s.B.X {
			xs = append(xs, s.A.X)
		} else {
			ys = append(ys, s.A.Y)
		}
	}
	assert.True(t, nearAny(xs, r.X), "left edge %v", r.X)
	assert.True(t, nearAny(xs, r.X+r.W), "right edge %v", r.X+r.W)
	assert.True(t, nearAny(ys, r.Y), "top edge %v", r.Y)
	assert.True(t, nearAny(ys, r.Y+r.H), "bottom edge %v", r.Y+r.H)
}

func nearAny(vs []float64, want float64) bool {
	for _, v := range vs {
		if math.Abs(v-want) < 1e-9 {
			return true
		}
	}
	return false
}

func TestLinesAreLinearInRowsAndColumns(t *testing.T) {
	g := New(Options{CellSize: 40, Speed: 1})
	g.Resize(800, 600)
	g.SetOffset(15, 25)
	lines := g.Lines()
	cols, rows := g.VisibleCells()
	assert.Len(t, lines, cols+rows)
	assert.Equal(t, -15.0, lines[0].A.X)
	assert.Equal(t, 600.0, lines[0].B.Y)
	assert.Equal(t, -25.0, lines[cols].A.Y)
}

func TestDrawOrder(t *testing.T) {
	g := New(DefaultOptions())
	g.Resize(200, 100)
	g.PointerMove(5, 5)

	rec := render.NewRecorder(200, 100)
	g.Draw(rec)
	assert.Equal(t, []render.OpKind{
		render.OpClear, render.OpSegments, render.OpFillRect, render.OpVignette,
	}, rec.Kinds())

	seg := rec.Filter(render.OpSegments)[0]
	assert.Equal(t, LineWidth, seg.Width)
	assert.Equal(t, DefaultBorderColor, seg.Color)
	assert.Equal(t, DefaultHoverFillColor, rec.Filter(render.OpFillRect)[0].Color)

	v := rec.Filter(render.OpVignette)[0].Vignette
	assert.Equal(t, 100.0, v.CX)
	assert.Equal(t, 50.0, v.CY)
	assert.InDelta(t, math.Hypot(200, 100)/2, v.Radius, 1e-9)
}

func TestDrawWithoutHoverOrSurface(t *testing.T) {
	g := New(DefaultOptions())
	rec := render.NewRecorder(0, 0)
	g.Draw(rec)
	assert.Empty(t, rec.Ops, "zero-sized surface draws nothing")

	g.Draw(nil)

	g.Resize(100, 100)
	g.Draw(rec)
	assert.Equal(t, []render.OpKind{render.OpClear, render.OpSegments, render.OpVignette}, rec.Kinds())
}

func TestOnEvent(t *testing.T) {
	g := New(Options{CellSize: 10, Speed: 1})
	d := event.NewDispatcher()
	for _, et := range []event.EventType{event.Resize, event.PointerMove, event.PointerLeave} {
		d.Subscribe(et, g)
	}

	d.Dispatch(event.Event{Type: event.Resize, Data: event.ResizeData{Width: 95, Height: 40}})
	cols, rows := g.VisibleCells()
	assert.Equal(t, 11, cols)
	assert.Equal(t, 5, rows)

	d.Dispatch(event.Event{Type: event.PointerMove, Data: event.PointerData{X: 25, Y: 5}})
	c, ok := g.Hovered()
	require.True(t, ok)
	assert.Equal(t, Cell{X: 2, Y: 0}, c)

	d.Dispatch(event.Event{Type: event.PointerLeave})
	_, ok = g.Hovered()
	assert.False(t, ok)
}

func TestParseDirection(t *testing.T) {
	for _, name := range []string{"right", "Left", " UP ", "down", "diagonal"} {
		_, err := ParseDirection(name)
		assert.NoError(t, err, name)
	}
	_, err := ParseDirection("sideways")
	assert.ErrorIs(t, err, ErrUnknownDirection)

	var d Direction
	require.NoError(t, d.UnmarshalText([]byte("diagonal")))
	assert.Equal(t, Diagonal, d)
	b, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "diagonal", string(b))
}
