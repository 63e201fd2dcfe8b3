// internal/app/scene.go
package app

import (
	"portfolio-backdrop/internal/config"
	"portfolio-backdrop/internal/event"
	"portfolio-backdrop/internal/grid"
	"portfolio-backdrop/internal/scribble"
	"portfolio-backdrop/internal/ui"
	"portfolio-backdrop/internal/utils"
	"portfolio-backdrop/pkg/render"

	"github.com/sirupsen/logrus"
)

// Scene holds the background layers, back to front: grid, doodles, cursor.
// Field and Cursor are nil when disabled in the config.
type Scene struct {
	Grid   *grid.Grid
	Field  *scribble.Field
	Cursor *ui.Cursor
	Rng    *utils.PRNGService

	frames  int
	mounted *event.Dispatcher
}

// NewScene создаёт слои по конфигу
func NewScene(cfg *config.Config) *Scene {
	s := &Scene{
		Grid: grid.New(cfg.GridOptions()),
		Rng:  utils.NewPRNGService(cfg.Scribbles.Seed),
	}
	if cfg.Scribbles.Enabled {
		s.Field = scribble.NewField(s.Rng)
	}
	if cfg.Cursor.Enabled {
		s.Cursor = ui.NewCursor(cfg.CursorColor(), cfg.Cursor.Settle)
	}

	opts := s.Grid.Options()
	logrus.WithFields(logrus.Fields{
		"direction": opts.Direction,
		"speed":     opts.Speed,
		"cell_size": opts.CellSize,
		"scribbles": s.Field != nil,
		"cursor":    s.Cursor != nil,
	}).Info("scene created")
	return s
}

// Mount subscribes every layer to the events it reacts to. A scene is
// mounted on at most one dispatcher at a time; mounting again first
// unmounts.
func (s *Scene) Mount(d *event.Dispatcher) {
	if s.mounted != nil {
		s.Unmount()
	}
	d.Subscribe(event.Resize, s.Grid)
	d.Subscribe(event.PointerMove, s.Grid)
	d.Subscribe(event.PointerLeave, s.Grid)
	if s.Field != nil {
		d.Subscribe(event.Resize, s.Field)
	}
	if s.Cursor != nil {
		d.Subscribe(event.PointerMove, s.Cursor)
		d.Subscribe(event.PointerLeave, s.Cursor)
	}
	s.mounted = d
}

// Unmount снимает все подписки, сделанные в Mount
func (s *Scene) Unmount() {
	d := s.mounted
	if d == nil {
		return
	}
	d.UnsubscribeAll(s.Grid)
	if s.Field != nil {
		d.UnsubscribeAll(s.Field)
	}
	if s.Cursor != nil {
		d.UnsubscribeAll(s.Cursor)
	}
	s.mounted = nil
}

// Step продвигает все слои на один кадр
func (s *Scene) Step(dt float64) {
	s.Grid.Advance()
	if s.Field != nil {
		s.Field.Step()
	}
	if s.Cursor != nil {
		s.Cursor.Step(dt)
	}
	s.frames++
}

// Frames — сколько Step уже сделано
func (s *Scene) Frames() int { return s.frames }

func (s *Scene) Draw(p render.Painter) {
	s.Grid.Draw(p)
	if s.Field != nil {
		s.Field.Draw(p)
	}
	if s.Cursor != nil {
		s.Cursor.Draw(p)
	}
}

// Stats собирает данные для отладочного HUD
func (s *Scene) Stats(tps, fps float64) ui.HUDStats {
	ox, oy := s.Grid.Offset()
	cols, rows := s.Grid.VisibleCells()
	st := ui.HUDStats{TPS: tps, FPS: fps, OffsetX: ox, OffsetY: oy, Cols: cols, Rows: rows}
	if c, ok := s.Grid.Hovered(); ok {
		st.Hovering, st.HoverX, st.HoverY = true, c.X, c.Y
	}
	return st
}
