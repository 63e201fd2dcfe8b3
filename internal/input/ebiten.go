package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenSource reads input from the running ebiten game. The surface size is
// pushed in from Layout, which is the only place ebiten reports it.
type EbitenSource struct {
	w, h int
}

var _ Source = (*EbitenSource)(nil)

func (s *EbitenSource) SetSize(w, h int) { s.w, s.h = w, h }

func (s *EbitenSource) Size() (int, int) { return s.w, s.h }

func (s *EbitenSource) CursorPosition() (int, int) { return ebiten.CursorPosition() }

func (s *EbitenSource) Focused() bool { return ebiten.IsFocused() }

func (s *EbitenSource) JustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}
