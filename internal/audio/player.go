package audio

import (
	"portfolio-backdrop/internal/utils"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/sirupsen/logrus"
)

const (
	DefaultVolume = 0.3
	VolumeStep    = 0.1
)

// Player wraps a Stream with the controls of the site's music widget. A
// Player without a stream is disabled: every control is a no-op.
type Player struct {
	stream Stream
	title  string
	volume float64
}

func NewPlayer(stream Stream, title string, volume float64) *Player {
	p := &Player{stream: stream, title: title, volume: utils.Clamp(volume, 0, 1)}
	if stream != nil {
		stream.SetVolume(p.volume)
	}
	return p
}

// Load opens path on ctx. An empty path, or any failure, yields a disabled
// player; failures are logged, never returned.
func Load(ctx *audio.Context, path, title string, volume float64) *Player {
	if path == "" {
		return NewPlayer(nil, title, volume)
	}
	stream, err := Open(ctx, path)
	if err != nil {
		logrus.WithError(err).WithField("path", path).Warn("music disabled")
		return NewPlayer(nil, title, volume)
	}
	logrus.WithField("path", path).Info("music loaded")
	return NewPlayer(stream, title, volume)
}

func (p *Player) Enabled() bool { return p.stream != nil }

func (p *Player) Title() string { return p.title }

func (p *Player) Volume() float64 { return p.volume }

func (p *Player) Playing() bool {
	return p.stream != nil && p.stream.IsPlaying()
}

// TogglePlay запускает или ставит трек на паузу
func (p *Player) TogglePlay() {
	if p.stream == nil {
		return
	}
	if p.stream.IsPlaying() {
		p.stream.Pause()
		logrus.Debug("music paused")
		return
	}
	p.stream.Play()
	logrus.Debug("music playing")
}

// ToggleMute переключает между тишиной и громкостью по умолчанию
func (p *Player) ToggleMute() {
	if p.volume > 0 {
		p.SetVolume(0)
		return
	}
	p.SetVolume(DefaultVolume)
}

// AdjustVolume меняет громкость на delta в пределах [0, 1]
func (p *Player) AdjustVolume(delta float64) {
	p.SetVolume(p.volume + delta)
}

func (p *Player) SetVolume(v float64) {
	p.volume = utils.Clamp(v, 0, 1)
	if p.stream != nil {
		p.stream.SetVolume(p.volume)
	}
}

func (p *Player) Close() error {
	if p.stream == nil {
		return nil
	}
	err := p.stream.Close()
	p.stream = nil
	return err
}
