package ui

import (
	"fmt"

	"portfolio-backdrop/internal/config"
)

// HUDStats is what the debug overlay shows.
type HUDStats struct {
	TPS, FPS       float64
	OffsetX        float64
	OffsetY        float64
	Cols, Rows     int
	HoverX, HoverY int
	Hovering       bool
}

// HUD is the debug overlay in the top-left corner.
type HUD struct {
	Visible bool
}

func (h *HUD) Toggle() { h.Visible = !h.Visible }

// Lines форматирует s для вывода
func (h *HUD) Lines(s HUDStats) []string {
	hover := "none"
	if s.Hovering {
		hover = fmt.Sprintf("%d,%d", s.HoverX, s.HoverY)
	}
	return []string{
		fmt.Sprintf("TPS %.1f  FPS %.1f", s.TPS, s.FPS),
		fmt.Sprintf("offset %.2f,%.2f", s.OffsetX, s.OffsetY),
		fmt.Sprintf("cells %dx%d", s.Cols, s.Rows),
		fmt.Sprintf("hover %s", hover),
	}
}

func (h *HUD) Draw(t TextDrawer, s HUDStats) {
	if !h.Visible || t == nil {
		return
	}
	y := 8.0
	for _, line := range h.Lines(s) {
		t.DrawText(line, 8, y, 1, config.TextLightColor)
		_, lh := t.MeasureText(line)
		y += lh + 2
	}
}
