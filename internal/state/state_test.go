package state

import (
	"testing"

	"portfolio-backdrop/internal/audio"
	"portfolio-backdrop/internal/config"
	"portfolio-backdrop/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeState struct {
	name  string
	log   *[]string
	ticks float64
}

func (f *fakeState) Enter()                    { *f.log = append(*f.log, f.name+".enter") }
func (f *fakeState) Update(dt float64)         { *f.log = append(*f.log, f.name+".update") }
func (f *fakeState) Draw(screen *ebiten.Image) {}
func (f *fakeState) Exit()                     { *f.log = append(*f.log, f.name+".exit") }
func (f *fakeState) Tick(dt float64)           { f.ticks += dt }

func TestStateMachine(t *testing.T) {
	var log []string
	a := &fakeState{name: "a", log: &log}
	b := &fakeState{name: "b", log: &log}

	sm := NewStateMachine()
	sm.Update(1)
	sm.SetState(a)
	sm.Update(1)
	sm.SetState(b)
	assert.Equal(t, b, sm.Current())
	sm.Shutdown()
	assert.Nil(t, sm.Current())
	assert.Equal(t, []string{"a.enter", "a.update", "a.exit", "b.enter", "b.exit"}, log)
}

func TestPromoteSkipsEnter(t *testing.T) {
	var log []string
	a := &fakeState{name: "a", log: &log}
	b := &fakeState{name: "b", log: &log}

	sm := NewStateMachine()
	sm.SetState(a)
	sm.Promote(b)
	assert.Equal(t, b, sm.Current())
	assert.Equal(t, []string{"a.enter", "a.exit"}, log)
}

func TestTimelineProgress(t *testing.T) {
	tl := loaderTimeline{duration: 2.5}
	assert.Equal(t, 0, tl.Progress())

	tl.Advance(1.25)
	assert.Equal(t, 50, tl.Progress())
	assert.False(t, tl.Exiting())
	scale, alpha := tl.Burst()
	assert.Equal(t, 1.0, scale)
	assert.Equal(t, 1.0, alpha)

	tl.Advance(1.25)
	assert.Equal(t, 100, tl.Progress())
	assert.True(t, tl.Exiting())
	assert.False(t, tl.Done())

	// the overlay waits out the delay before moving
	shift, stretch, a := tl.Overlay(800)
	assert.Equal(t, 0.0, shift)
	assert.Equal(t, 1.0, stretch)
	assert.Equal(t, 1.0, a)

	tl.Advance(burstTime)
	scale, alpha = tl.Burst()
	assert.InDelta(t, burstScale, scale, 1e-9)
	assert.InDelta(t, 0, alpha, 1e-9)

	tl.Advance(exitTotal - burstTime + 1e-9)
	assert.True(t, tl.Done())
	shift, stretch, a = tl.Overlay(800)
	assert.InDelta(t, -1200, shift, 1e-9)
	assert.InDelta(t, 1.5, stretch, 1e-9)
	assert.InDelta(t, 0, a, 1e-9)
}

func TestTimelineSkip(t *testing.T) {
	tl := loaderTimeline{duration: 2.5}
	tl.Skip()
	assert.True(t, tl.Exiting())
	assert.False(t, tl.Done())
	assert.Equal(t, 100, tl.Progress())
	tl.Skip()
	assert.True(t, tl.Done())
}

func TestLoaderHandsOver(t *testing.T) {
	var log []string
	next := &fakeState{name: "backdrop", log: &log}
	sm := NewStateMachine()
	cfg := config.Default()
	loader := NewLoaderState(sm, next, cfg)

	sm.SetState(loader)
	assert.Equal(t, []string{"backdrop.enter"}, log)

	loader.step(cfg.Loader.Duration / 2)
	assert.Zero(t, next.ticks, "covered backdrop is not animated")
	loader.step(cfg.Loader.Duration / 2)
	assert.Equal(t, loader, sm.Current())

	loader.step(exitTotal)
	assert.Equal(t, next, sm.Current())
	assert.Greater(t, next.ticks, 0.0)
	// promotion exits only the loader
	assert.Equal(t, []string{"backdrop.enter"}, log)
}

func TestLoaderExitEarlyExitsNext(t *testing.T) {
	var log []string
	next := &fakeState{name: "backdrop", log: &log}
	sm := NewStateMachine()
	sm.SetState(NewLoaderState(sm, next, config.Default()))
	sm.Shutdown()
	assert.Equal(t, []string{"backdrop.enter", "backdrop.exit"}, log)
}

type fakeStream struct {
	playing bool
	volume  float64
}

func (f *fakeStream) Play()               { f.playing = true }
func (f *fakeStream) Pause()              { f.playing = false }
func (f *fakeStream) IsPlaying() bool     { return f.playing }
func (f *fakeStream) SetVolume(v float64) { f.volume = v }
func (f *fakeStream) Close() error        { return nil }

func TestBackdropKeys(t *testing.T) {
	s := &fakeStream{}
	player := audio.NewPlayer(s, "track", 0.3)
	b := NewBackdropState(config.Default(), event.NewDispatcher(), nil, player)
	require.NotNil(t, b.widget)

	b.handleKeys([]ebiten.Key{ebiten.KeySpace})
	assert.True(t, s.playing)
	b.handleKeys([]ebiten.Key{ebiten.KeyM})
	assert.Equal(t, 0.0, player.Volume())
	b.handleKeys([]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyArrowUp})
	assert.InDelta(t, 0.2, player.Volume(), 1e-9)
	b.handleKeys([]ebiten.Key{ebiten.KeyArrowDown})
	assert.InDelta(t, 0.1, player.Volume(), 1e-9)

	assert.False(t, b.hud.Visible)
	b.handleKeys([]ebiten.Key{ebiten.KeyH})
	assert.True(t, b.hud.Visible)
}

func TestBackdropWithoutMusic(t *testing.T) {
	b := NewBackdropState(config.Default(), event.NewDispatcher(), nil, audio.NewPlayer(nil, "", 0.3))
	assert.Nil(t, b.widget)
	b.handleKeys([]ebiten.Key{ebiten.KeySpace, ebiten.KeyM})
	b.Tick(1.0 / 60)
	assert.Equal(t, 1, b.Scene().Frames())
}

func TestBackdropDiscClick(t *testing.T) {
	s := &fakeStream{}
	d := event.NewDispatcher()
	b := NewBackdropState(config.Default(), d, nil, audio.NewPlayer(s, "track", 0.3))
	d.Subscribe(event.Resize, b.listener)
	d.Subscribe(event.PointerDown, b.listener)

	d.Dispatch(event.Event{Type: event.Resize, Data: event.ResizeData{Width: 1280, Height: 800}})
	d.Dispatch(event.Event{Type: event.PointerDown, Data: event.PointerData{X: 10, Y: 10}})
	assert.False(t, s.playing)

	d.Dispatch(event.Event{Type: event.PointerDown, Data: event.PointerData{X: b.widget.X, Y: b.widget.Y}})
	assert.True(t, s.playing)
	assert.False(t, b.widget.LastClickTime.IsZero())
}
