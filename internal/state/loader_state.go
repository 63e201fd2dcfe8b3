// internal/state/loader_state.go
package state

import (
	"fmt"

	"portfolio-backdrop/internal/config"
	"portfolio-backdrop/internal/ui"
	"portfolio-backdrop/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
)

// Убеждаемся, что LoaderState соответствует интерфейсу State
var _ State = (*LoaderState)(nil)

const (
	loaderStatus   = "LOADING ASSETS..."
	counterScale   = 8.0
	loaderMargin   = 48.0
	cornerLen      = 24.0
	progressBarH   = 2.0
	loaderTextSize = 1.0
)

// ticker — состояние, которое умеет анимироваться без чтения ввода
type ticker interface {
	Tick(deltaTime float64)
}

// LoaderState рисует экран загрузки поверх следующего состояния и
// передаёт ему управление, когда уезжает.
type LoaderState struct {
	stateMachine *StateMachine
	next         State
	timeline     loaderTimeline
	version      string

	overlay *ebiten.Image
	painter *render.ScreenPainter
	text    *ui.ScreenText
	face    string
}

func NewLoaderState(sm *StateMachine, next State, cfg *config.Config) *LoaderState {
	return &LoaderState{
		stateMachine: sm,
		next:         next,
		timeline:     loaderTimeline{duration: cfg.Loader.Duration},
		version:      cfg.Loader.Version,
		face:         cfg.Window.FontPath,
	}
}

// Enter also enters the state beneath, which keeps running under the
// overlay.
func (s *LoaderState) Enter() {
	if s.next != nil {
		s.next.Enter()
	}
	logrus.WithField("duration", s.timeline.duration).Debug("loader started")
}

func (s *LoaderState) Update(deltaTime float64) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || len(inpututil.AppendJustPressedKeys(nil)) > 0 {
		s.timeline.Skip()
	}
	s.step(deltaTime)
}

func (s *LoaderState) step(deltaTime float64) {
	s.timeline.Advance(deltaTime)
	if t, ok := s.next.(ticker); ok && s.timeline.Exiting() {
		t.Tick(deltaTime)
	}
	if s.timeline.Done() {
		logrus.Debug("loader finished")
		s.stateMachine.Promote(s.next)
	}
}

func (s *LoaderState) Draw(screen *ebiten.Image) {
	if s.next != nil && s.timeline.Exiting() {
		s.next.Draw(screen)
	}
	if s.timeline.Done() {
		return
	}

	b := screen.Bounds()
	w, h := b.Dx(), b.Dy()
	if s.overlay == nil || s.overlay.Bounds().Dx() != w || s.overlay.Bounds().Dy() != h {
		if s.overlay != nil {
			s.overlay.Deallocate()
		}
		s.overlay = ebiten.NewImage(w, h)
	}
	if s.painter == nil {
		s.painter = render.NewScreenPainter()
		s.painter.Background = config.BackgroundColor
		s.text = ui.NewScreenText(ui.FaceOrDefault(s.face))
	}
	s.painter.Begin(s.overlay)
	s.text.Begin(s.overlay)
	s.drawOverlay(s.painter, s.text, float64(w), float64(h))

	shift, stretch, alpha := s.timeline.Overlay(float64(h))
	op := &ebiten.DrawImageOptions{}
	// растягиваем относительно центра, как transform-origin по умолчанию
	op.GeoM.Translate(0, -float64(h)/2)
	op.GeoM.Scale(1, stretch)
	op.GeoM.Translate(0, float64(h)/2+shift)
	op.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(s.overlay, op)
}

// drawOverlay рисует экран загрузки: уголки, большой счётчик, строку
// статуса и ленту прогресса.
func (s *LoaderState) drawOverlay(p render.Painter, t ui.TextDrawer, w, h float64) {
	p.Clear()

	m, c := loaderMargin, cornerLen
	corner := render.Stroke{Width: 1, Color: config.TextDimColor}
	p.StrokePolyline([]render.Point{{X: m, Y: m + c}, {X: m, Y: m}, {X: m + c, Y: m}}, corner)
	p.StrokePolyline([]render.Point{{X: w - m - c, Y: m}, {X: w - m, Y: m}, {X: w - m, Y: m + c}}, corner)
	p.StrokePolyline([]render.Point{{X: m, Y: h - m - c}, {X: m, Y: h - m}, {X: m + c, Y: h - m}}, corner)
	p.StrokePolyline([]render.Point{{X: w - m - c, Y: h - m}, {X: w - m, Y: h - m}, {X: w - m, Y: h - m - c}}, corner)

	progress := s.timeline.Progress()
	scale, alpha := s.timeline.Burst()
	counter := fmt.Sprintf("%d%%", progress)
	cw, ch := t.MeasureText(counter)
	k := counterScale * scale
	t.DrawText(counter, (w-cw*k)/2, (h-ch*k)/2, k, render.WithAlpha(config.TextLightColor, alpha))

	statusY := h - m - 32
	t.DrawText(loaderStatus, m, statusY, loaderTextSize, config.TextDimColor)
	vw, _ := t.MeasureText(s.version)
	t.DrawText(s.version, w-m-vw, statusY, loaderTextSize, config.TextDimColor)

	barY := h - m - 12
	p.FillRect(render.Rect{X: m, Y: barY, W: w - 2*m, H: progressBarH}, render.WithAlpha(config.TextDimColor, 0.3))
	p.FillRect(render.Rect{X: m, Y: barY, W: (w - 2*m) * float64(progress) / 100, H: progressBarH}, config.AccentColor)
}

func (s *LoaderState) Exit() {
	// выход до окончания анимации: следующее состояние так и не стало текущим
	if s.next != nil && !s.timeline.Done() {
		s.next.Exit()
	}
	if s.overlay != nil {
		s.overlay.Deallocate()
		s.overlay = nil
	}
	if s.painter != nil {
		s.painter.Dispose()
		s.painter = nil
	}
}
