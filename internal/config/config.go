// internal/config/config.go
package config

import (
	"image/color"
	"math"

	"portfolio-backdrop/internal/grid"
	"portfolio-backdrop/pkg/render"

	"github.com/sirupsen/logrus"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 800
	WindowTitle  = "Backdrop"
	MaxDeltaTime = 0.06

	// Значения, с которыми фон смонтирован на сайте.
	GridDirection   = "diagonal"
	GridSpeed       = 0.5
	GridCellSize    = 50.0
	GridBorderColor = "rgba(255, 255, 255, 0.15)"
	GridHoverColor  = "#ef4444"

	LoaderDuration = 2.5
	LoaderVersion  = "V.1.0"

	CursorSettle = 0.6 // секунды, пока кольцо догоняет курсор
	CursorColor  = "#ffffff"

	MusicVolume = 0.3
	MusicTitle  = "KESHI • WANTCHU • OFFICIAL VISUALIZER"

	LogLevel  = "info"
	LogFormat = "text"

	EnvPrefix = "BACKDROP_"
)

var (
	BackgroundColor = color.NRGBA{0x0a, 0x0a, 0x0a, 0xff}
	TextLightColor  = color.NRGBA{240, 240, 240, 255}
	TextDimColor    = color.NRGBA{140, 140, 140, 255}
	AccentColor     = color.NRGBA{0xef, 0x44, 0x44, 0xff}
)

type Config struct {
	Window    WindowConfig   `json:"window" yaml:"window"`
	Grid      GridConfig     `json:"grid" yaml:"grid"`
	Scribbles ScribbleConfig `json:"scribbles" yaml:"scribbles"`
	Cursor    CursorConfig   `json:"cursor" yaml:"cursor"`
	Loader    LoaderConfig   `json:"loader" yaml:"loader"`
	Music     MusicConfig    `json:"music" yaml:"music"`
	Debug     DebugConfig    `json:"debug" yaml:"debug"`
}

type WindowConfig struct {
	Width      int    `json:"width" yaml:"width"`
	Height     int    `json:"height" yaml:"height"`
	Title      string `json:"title" yaml:"title"`
	Fullscreen bool   `json:"fullscreen" yaml:"fullscreen"`
	// FontPath — необязательный TTF/OTF для текста на экране
	FontPath string `json:"font_path" yaml:"font_path"`
}

type GridConfig struct {
	Direction      string  `json:"direction" yaml:"direction"`
	Speed          float64 `json:"speed" yaml:"speed"`
	CellSize       float64 `json:"cell_size" yaml:"cell_size"`
	BorderColor    string  `json:"border_color" yaml:"border_color"`
	HoverFillColor string  `json:"hover_fill_color" yaml:"hover_fill_color"`
}

type ScribbleConfig struct {
	Enabled bool  `json:"enabled" yaml:"enabled"`
	Seed    int64 `json:"seed" yaml:"seed"`
}

type CursorConfig struct {
	Enabled bool    `json:"enabled" yaml:"enabled"`
	Color   string  `json:"color" yaml:"color"`
	Settle  float64 `json:"settle" yaml:"settle"`
}

type LoaderConfig struct {
	Enabled  bool    `json:"enabled" yaml:"enabled"`
	Duration float64 `json:"duration" yaml:"duration"`
	Version  string  `json:"version" yaml:"version"`
}

type MusicConfig struct {
	Path   string  `json:"path" yaml:"path"`
	Title  string  `json:"title" yaml:"title"`
	Volume float64 `json:"volume" yaml:"volume"`
}

type DebugConfig struct {
	HUD       bool   `json:"hud" yaml:"hud"`
	LogLevel  string `json:"log_level" yaml:"log_level"`
	LogFormat string `json:"log_format" yaml:"log_format"`
	Pprof     string `json:"pprof" yaml:"pprof"`
}

// Default returns the configuration the site shipped with.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  ScreenWidth,
			Height: ScreenHeight,
			Title:  WindowTitle,
		},
		Grid: GridConfig{
			Direction:      GridDirection,
			Speed:          GridSpeed,
			CellSize:       GridCellSize,
			BorderColor:    GridBorderColor,
			HoverFillColor: GridHoverColor,
		},
		Cursor: CursorConfig{
			Enabled: true,
			Color:   CursorColor,
			Settle:  CursorSettle,
		},
		Loader: LoaderConfig{
			Enabled:  true,
			Duration: LoaderDuration,
			Version:  LoaderVersion,
		},
		Music: MusicConfig{
			Title:  MusicTitle,
			Volume: MusicVolume,
		},
		Debug: DebugConfig{
			LogLevel:  LogLevel,
			LogFormat: LogFormat,
		},
	}
}

// Normalize clamps numeric fields into usable ranges. Bad values are logged
// and replaced, never rejected.
func (c *Config) Normalize() {
	if c.Window.Width <= 0 {
		c.Window.Width = ScreenWidth
	}
	if c.Window.Height <= 0 {
		c.Window.Height = ScreenHeight
	}
	if c.Window.Title == "" {
		c.Window.Title = WindowTitle
	}
	// NaN и бесконечности из YAML (.inf, .nan) или env считаем мусором
	if !finite(c.Grid.Speed) || c.Grid.Speed < grid.MinSpeed {
		logrus.WithField("speed", c.Grid.Speed).Warn("grid speed out of range, clamping")
		c.Grid.Speed = grid.MinSpeed
	}
	if !finite(c.Grid.CellSize) || c.Grid.CellSize < grid.MinCellSize {
		logrus.WithField("cell_size", c.Grid.CellSize).Warn("grid cell size out of range, clamping")
		c.Grid.CellSize = grid.MinCellSize
	}
	if !finite(c.Cursor.Settle) {
		c.Cursor.Settle = CursorSettle
	}
	if c.Cursor.Settle < 0 {
		c.Cursor.Settle = 0
	}
	if !finite(c.Loader.Duration) || c.Loader.Duration <= 0 {
		c.Loader.Duration = LoaderDuration
	}
	if !finite(c.Music.Volume) {
		c.Music.Volume = MusicVolume
	}
	if c.Music.Volume < 0 {
		c.Music.Volume = 0
	}
	if c.Music.Volume > 1 {
		c.Music.Volume = 1
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// GridOptions resolves the grid section. Unknown directions and unparsable
// colours fall back to the grid package defaults with a warning.
func (c *Config) GridOptions() grid.Options {
	opts := grid.DefaultOptions()
	opts.Speed = c.Grid.Speed
	opts.CellSize = c.Grid.CellSize

	if d, err := grid.ParseDirection(c.Grid.Direction); err != nil {
		logrus.WithError(err).Warn("falling back to default grid direction")
	} else {
		opts.Direction = d
	}
	opts.BorderColor = colorOr(c.Grid.BorderColor, grid.DefaultBorderColor, "grid.border_color")
	opts.HoverFillColor = colorOr(c.Grid.HoverFillColor, grid.DefaultHoverFillColor, "grid.hover_fill_color")
	return opts
}

// CursorColor разбирает цвет курсора
func (c *Config) CursorColor() color.NRGBA {
	return colorOr(c.Cursor.Color, TextLightColor, "cursor.color")
}

func colorOr(s string, fallback color.NRGBA, field string) color.NRGBA {
	if s == "" {
		return fallback
	}
	col, err := render.ParseColor(s)
	if err != nil {
		logrus.WithError(err).WithField("field", field).Warn("falling back to default color")
		return fallback
	}
	return col
}
