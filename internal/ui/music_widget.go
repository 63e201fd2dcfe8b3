package ui

import (
	"math"
	"time"

	"portfolio-backdrop/internal/config"
	"portfolio-backdrop/pkg/render"
)

const (
	discRadius   = 22.0
	widgetMargin = 32.0
	titleWidth   = 180.0
	volumeBarH   = 3.0
	spinRate     = 2 * math.Pi / 4 // один оборот за 4 секунды
)

// MusicState is the player state the widget renders.
type MusicState struct {
	Title   string
	Playing bool
	Volume  float64
}

// MusicWidget is the bottom-right player: a spinning disc that toggles
// playback when clicked, the track title and a volume bar.
type MusicWidget struct {
	X, Y          float64 // disc centre
	Angle         float64
	LastClickTime time.Time
}

// Layout anchors the widget to the bottom-right corner of a w×h surface.
func (m *MusicWidget) Layout(w, h int) {
	m.X = float64(w) - widgetMargin - titleWidth - discRadius
	m.Y = float64(h) - widgetMargin - discRadius
}

// IsClicked проверяет, был ли клик внутри диска
func (m *MusicWidget) IsClicked(x, y float64) bool {
	return math.Hypot(x-m.X, y-m.Y) <= discRadius
}

// HandleClick запоминает клик для анимации нажатия
func (m *MusicWidget) HandleClick() {
	m.LastClickTime = time.Now()
}

// Step крутит диск, пока играет музыка
func (m *MusicWidget) Step(dt float64, playing bool) {
	if playing {
		m.Angle = math.Mod(m.Angle+spinRate*dt, 2*math.Pi)
	}
}

func (m *MusicWidget) Draw(p render.Painter, t TextDrawer, s MusicState) {
	if p == nil {
		return
	}
	elapsed := time.Since(m.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	r := discRadius * scale

	disc := config.AccentColor
	if !s.Playing {
		disc = render.DarkenColor(disc)
	}
	p.FillCircle(m.X, m.Y, r, disc)
	p.StrokeCircle(m.X, m.Y, r, 1, config.TextLightColor)
	p.FillCircle(m.X, m.Y, r*0.18, config.BackgroundColor)
	// метка на диске, чтобы было видно вращение
	sin, cos := math.Sincos(m.Angle)
	p.StrokePolyline([]render.Point{
		{X: m.X + cos*r*0.3, Y: m.Y + sin*r*0.3},
		{X: m.X + cos*r*0.9, Y: m.Y + sin*r*0.9},
	}, render.Stroke{Width: 2, Color: config.TextLightColor})

	left := m.X + discRadius + 12
	barY := m.Y + discRadius - volumeBarH
	p.FillRect(render.Rect{X: left, Y: barY, W: titleWidth, H: volumeBarH}, config.TextDimColor)
	p.FillRect(render.Rect{X: left, Y: barY, W: titleWidth * s.Volume, H: volumeBarH}, config.TextLightColor)

	if t == nil {
		return
	}
	status := "PAUSED"
	if s.Playing {
		status = "PLAYING"
	}
	t.DrawText(status, left, m.Y-discRadius, 1, config.TextDimColor)
	t.DrawText(marquee(s.Title, 24, m.Angle), left, m.Y-discRadius/2+2, 1, config.TextLightColor)
}

// marquee возвращает окно из width рун, бегущее по названию вместе с диском
func marquee(title string, width int, angle float64) string {
	runes := []rune(title + " • ")
	if len(runes) <= width+3 {
		return title
	}
	start := int(angle/(2*math.Pi)*float64(len(runes))) % len(runes)
	out := make([]rune, 0, width)
	for i := 0; i < width; i++ {
		out = append(out, runes[(start+i)%len(runes)])
	}
	return string(out)
}
