package ui

import (
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

const FontSize = 13

// TextDrawer draws a line of text with its top-left corner at (x, y),
// scaled by scale.
type TextDrawer interface {
	DrawText(s string, x, y, scale float64, c color.Color)
	MeasureText(s string) (w, h float64)
}

// LoadFace parses a TTF/OTF file at the given size.
func LoadFace(path string, size float64) (font.Face, error) {
	fontData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	tt, err := opentype.Parse(fontData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}

// FaceOrDefault загружает шрифт из path, а если путь пуст или файл не
// читается, берёт встроенный растровый.
func FaceOrDefault(path string) font.Face {
	if path == "" {
		return basicfont.Face7x13
	}
	face, err := LoadFace(path, FontSize)
	if err != nil {
		logrus.WithError(err).WithField("path", path).Warn("using built-in font")
		return basicfont.Face7x13
	}
	return face
}

// ScreenText draws with a font face onto an ebiten image.
type ScreenText struct {
	dst  *ebiten.Image
	face font.Face
}

var _ TextDrawer = (*ScreenText)(nil)

func NewScreenText(face font.Face) *ScreenText {
	return &ScreenText{face: face}
}

func (t *ScreenText) Begin(dst *ebiten.Image) { t.dst = dst }

func (t *ScreenText) MeasureText(s string) (float64, float64) {
	b := text.BoundString(t.face, s)
	return float64(b.Dx()), float64(t.face.Metrics().Height.Ceil())
}

func (t *ScreenText) DrawText(s string, x, y, scale float64, c color.Color) {
	if t.dst == nil || s == "" {
		return
	}
	op := &ebiten.DrawImageOptions{}
	// text.DrawWithOptions кладёт начало координат на базовую линию
	op.GeoM.Translate(0, float64(t.face.Metrics().Ascent.Ceil()))
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.DrawWithOptions(t.dst, s, t.face, op)
}
