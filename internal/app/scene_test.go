package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"portfolio-backdrop/internal/config"
	"portfolio-backdrop/internal/event"
	"portfolio-backdrop/internal/grid"
	"portfolio-backdrop/pkg/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Scribbles.Enabled = true
	cfg.Scribbles.Seed = 11
	return cfg
}

func TestNewSceneLayers(t *testing.T) {
	cfg := config.Default()
	s := NewScene(cfg)
	assert.NotNil(t, s.Grid)
	assert.Nil(t, s.Field, "doodles are off by default")
	assert.NotNil(t, s.Cursor)
	assert.Equal(t, grid.Diagonal, s.Grid.Options().Direction)

	cfg.Cursor.Enabled = false
	assert.Nil(t, NewScene(cfg).Cursor)
}

func TestMountUnmount(t *testing.T) {
	d := event.NewDispatcher()
	s := NewScene(testConfig())

	s.Mount(d)
	assert.Equal(t, 2, d.Count(event.Resize))
	assert.Equal(t, 2, d.Count(event.PointerMove))
	assert.Equal(t, 2, d.Count(event.PointerLeave))

	d.Dispatch(event.Event{Type: event.Resize, Data: event.ResizeData{Width: 800, Height: 600}})
	w, h := s.Grid.Size()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
	assert.Len(t, s.Field.Doodles(), 30)

	// mounting twice must not double the subscriptions
	s.Mount(d)
	assert.Equal(t, 2, d.Count(event.Resize))

	s.Unmount()
	assert.Zero(t, d.Count(event.Resize))
	assert.Zero(t, d.Count(event.PointerMove))
	assert.Zero(t, d.Count(event.PointerLeave))

	d.Dispatch(event.Event{Type: event.Resize, Data: event.ResizeData{Width: 100, Height: 100}})
	w, _ = s.Grid.Size()
	assert.Equal(t, 800, w, "unmounted scene ignores events")
	s.Unmount()
}

func TestStepAndDraw(t *testing.T) {
	d := event.NewDispatcher()
	s := NewScene(testConfig())
	s.Mount(d)
	defer s.Unmount()

	d.Dispatch(event.Event{Type: event.Resize, Data: event.ResizeData{Width: 400, Height: 300}})
	d.Dispatch(event.Event{Type: event.PointerMove, Data: event.PointerData{X: 75, Y: 75}})

	s.Step(1.0 / 60)
	assert.Equal(t, 1, s.Frames())
	ox, oy := s.Grid.Offset()
	// diagonal moves up-left: -0.5 wraps into the 50px cell
	assert.InDelta(t, 49.5, ox, 1e-9)
	assert.InDelta(t, 49.5, oy, 1e-9)

	rec := render.NewRecorder(400, 300)
	s.Draw(rec)
	kinds := rec.Kinds()
	require.GreaterOrEqual(t, len(kinds), 6)
	assert.Equal(t, []render.OpKind{render.OpClear, render.OpSegments, render.OpFillRect, render.OpVignette}, kinds[:4])
	// cursor is drawn last, on top of the doodles
	assert.Equal(t, []render.OpKind{render.OpStrokeCircle, render.OpFillCircle}, kinds[len(kinds)-2:])
	assert.NotEmpty(t, rec.Filter(render.OpPolyline))

	st := s.Stats(60, 59)
	assert.True(t, st.Hovering)
	assert.Equal(t, 1, st.HoverX)
	assert.Equal(t, 1, st.HoverY)
	assert.InDelta(t, 49.5, st.OffsetX, 1e-9)
}

func TestRenderSnapshotSVG(t *testing.T) {
	var buf bytes.Buffer
	err := RenderSnapshot(&buf, ".svg", config.Default(), SnapshotOptions{
		Frames: 10, Width: 200, Height: 100,
		Pointer: &render.Point{X: 20, Y: 20},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, "radialGradient")
	assert.Contains(t, out, "</svg>")
}

func TestSnapshotPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, Snapshot(config.Default(), SnapshotOptions{Path: path, Frames: 3, Width: 64, Height: 48}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")))
}

func TestSnapshotRejects(t *testing.T) {
	dir := t.TempDir()
	err := Snapshot(config.Default(), SnapshotOptions{Path: filepath.Join(dir, "frame.jpg"), Width: 10, Height: 10})
	assert.ErrorIs(t, err, ErrUnsupportedSnapshot)

	err = Snapshot(config.Default(), SnapshotOptions{Path: filepath.Join(dir, "frame.png")})
	assert.Error(t, err)
	_, statErr := os.Stat(filepath.Join(dir, "frame.png"))
	assert.True(t, os.IsNotExist(statErr))
}
