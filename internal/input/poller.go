// Package input turns ebiten's polled input state into the Resize and
// pointer events the background layers listen to.
package input

import (
	"portfolio-backdrop/internal/event"

	"github.com/sirupsen/logrus"
)

// Source is the polled input state. The ebiten implementation lives in
// ebiten.go; tests use a fake.
type Source interface {
	// Size — текущий размер поверхности в пикселях
	Size() (w, h int)
	// CursorPosition — курсор в координатах поверхности
	CursorPosition() (x, y int)
	// Focused — есть ли у окна фокус
	Focused() bool
	// JustPressed — нажата ли левая кнопка на этом тике
	JustPressed() bool
}

// Poller сравнивает ввод между тиками и рассылает только изменения
type Poller struct {
	src Source
	d   *event.Dispatcher

	sized        bool
	lastW, lastH int

	inside       bool
	lastX, lastY int
}

func NewPoller(src Source, d *event.Dispatcher) *Poller {
	return &Poller{src: src, d: d}
}

// Reset забывает последнее состояние, чтобы следующий Poll заново разослал
// размер и курсор. Нужно свежесмонтированной сцене.
func (p *Poller) Reset() {
	p.sized = false
	p.inside = false
}

// Poll читает источник один раз и рассылает Resize, PointerMove,
// PointerLeave и PointerDown по необходимости, именно в таком порядке.
func (p *Poller) Poll() {
	w, h := p.src.Size()
	if !p.sized || w != p.lastW || h != p.lastH {
		p.sized = true
		p.lastW, p.lastH = w, h
		logrus.WithFields(logrus.Fields{"width": w, "height": h}).Debug("surface resized")
		p.d.Dispatch(event.Event{Type: event.Resize, Data: event.ResizeData{Width: w, Height: h}})
	}

	x, y := p.src.CursorPosition()
	inside := p.src.Focused() && x >= 0 && y >= 0 && x < w && y < h
	switch {
	case inside && (!p.inside || x != p.lastX || y != p.lastY):
		p.d.Dispatch(event.Event{Type: event.PointerMove, Data: event.PointerData{X: float64(x), Y: float64(y)}})
	case !inside && p.inside:
		p.d.Dispatch(event.Event{Type: event.PointerLeave})
	}
	p.inside = inside
	p.lastX, p.lastY = x, y

	if inside && p.src.JustPressed() {
		p.d.Dispatch(event.Event{Type: event.PointerDown, Data: event.PointerData{X: float64(x), Y: float64(y)}})
	}
}
