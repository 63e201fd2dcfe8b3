// internal/state/backdrop_state.go
package state

import (
	"portfolio-backdrop/internal/app"
	"portfolio-backdrop/internal/audio"
	"portfolio-backdrop/internal/config"
	"portfolio-backdrop/internal/event"
	"portfolio-backdrop/internal/input"
	"portfolio-backdrop/internal/ui"
	"portfolio-backdrop/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
)

var _ State = (*BackdropState)(nil)

// BackdropState — основное состояние: фон, курсор, музыка и HUD.
type BackdropState struct {
	scene      *app.Scene
	dispatcher *event.Dispatcher
	poller     *input.Poller
	player     *audio.Player
	widget     *ui.MusicWidget
	hud        *ui.HUD
	listener   *backdropListener

	painter *render.ScreenPainter
	text    *ui.ScreenText
	face    string
}

// NewBackdropState wires the scene to the shared dispatcher. poller may be
// nil; when set it is reset on Enter so the new scene learns the surface
// size and pointer right away.
func NewBackdropState(cfg *config.Config, d *event.Dispatcher, poller *input.Poller, player *audio.Player) *BackdropState {
	b := &BackdropState{
		scene:      app.NewScene(cfg),
		dispatcher: d,
		poller:     poller,
		player:     player,
		hud:        &ui.HUD{Visible: cfg.Debug.HUD},
		face:       cfg.Window.FontPath,
	}
	if player != nil && player.Enabled() {
		b.widget = &ui.MusicWidget{}
	}
	b.listener = &backdropListener{state: b}
	return b
}

func (b *BackdropState) Scene() *app.Scene { return b.scene }

func (b *BackdropState) Enter() {
	b.scene.Mount(b.dispatcher)
	b.dispatcher.Subscribe(event.Resize, b.listener)
	b.dispatcher.Subscribe(event.PointerDown, b.listener)
	if b.scene.Cursor != nil {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}
	if b.poller != nil {
		b.poller.Reset()
	}
	logrus.Debug("backdrop mounted")
}

func (b *BackdropState) Update(deltaTime float64) {
	b.handleKeys(inpututil.AppendJustPressedKeys(nil))
	b.Tick(deltaTime)
}

// Tick animates the scene and widgets without reading input. The loader
// calls it while the backdrop is still covered.
func (b *BackdropState) Tick(deltaTime float64) {
	b.scene.Step(deltaTime)
	if b.widget != nil {
		b.widget.Step(deltaTime, b.player.Playing())
	}
}

// handleKeys обрабатывает клавиши, нажатые на этом тике
func (b *BackdropState) handleKeys(keys []ebiten.Key) {
	for _, k := range keys {
		switch k {
		case ebiten.KeyH:
			b.hud.Toggle()
		case ebiten.KeySpace:
			b.togglePlay()
		case ebiten.KeyM:
			if b.player != nil {
				b.player.ToggleMute()
			}
		case ebiten.KeyArrowUp:
			if b.player != nil {
				b.player.AdjustVolume(audio.VolumeStep)
			}
		case ebiten.KeyArrowDown:
			if b.player != nil {
				b.player.AdjustVolume(-audio.VolumeStep)
			}
		}
	}
}

func (b *BackdropState) togglePlay() {
	if b.player == nil || !b.player.Enabled() {
		return
	}
	b.player.TogglePlay()
	if b.widget != nil {
		b.widget.HandleClick()
	}
}

func (b *BackdropState) musicState() ui.MusicState {
	return ui.MusicState{Title: b.player.Title(), Playing: b.player.Playing(), Volume: b.player.Volume()}
}

func (b *BackdropState) Draw(screen *ebiten.Image) {
	if b.painter == nil {
		b.painter = render.NewScreenPainter()
		b.painter.Background = config.BackgroundColor
		b.text = ui.NewScreenText(ui.FaceOrDefault(b.face))
	}
	b.painter.Begin(screen)
	b.text.Begin(screen)

	b.scene.Draw(b.painter)
	if b.widget != nil {
		b.widget.Draw(b.painter, b.text, b.musicState())
	}
	b.hud.Draw(b.text, b.scene.Stats(ebiten.ActualTPS(), ebiten.ActualFPS()))
}

func (b *BackdropState) Exit() {
	b.scene.Unmount()
	b.dispatcher.UnsubscribeAll(b.listener)
	if b.scene.Cursor != nil {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
	if b.painter != nil {
		b.painter.Dispose()
		b.painter = nil
	}
	logrus.Debug("backdrop unmounted")
}

// backdropListener обрабатывает события, важные для виджетов поверх фона.
type backdropListener struct {
	state *BackdropState
}

func (l *backdropListener) OnEvent(e event.Event) {
	w := l.state.widget
	if w == nil {
		return
	}
	switch e.Type {
	case event.Resize:
		if d, ok := e.Data.(event.ResizeData); ok {
			w.Layout(d.Width, d.Height)
		}
	case event.PointerDown:
		if d, ok := e.Data.(event.PointerData); ok && w.IsClicked(d.X, d.Y) {
			l.state.togglePlay()
		}
	}
}
