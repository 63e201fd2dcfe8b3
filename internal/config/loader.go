package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for config files that are neither JSON
// nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Load builds the effective configuration: defaults, then the optional file
// at path, then BACKDROP_* environment variables (a .env file in the working
// directory is honoured if present).
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logrus.WithError(err).Warn("failed to read .env file")
	}
	cfg.ApplyEnv(os.LookupEnv)
	cfg.Normalize()
	return cfg, nil
}

// LoadFile накладывает файл поверх c. Поля, которых нет в файле, не
// меняются.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := c.decode(filepath.Ext(path), data); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	logrus.WithField("path", path).Info("config loaded")
	return nil
}

func (c *Config) decode(ext string, data []byte) error {
	switch strings.ToLower(ext) {
	case ".json":
		return json.Unmarshal(data, c)
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, c)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// ApplyEnv переопределяет поля из переменных окружения. Значения, которые
// не разобрались, логируются и пропускаются.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}
	num := func(key string, dst *float64) {
		if v, ok := lookup(EnvPrefix + key); ok {
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				logrus.WithFields(logrus.Fields{"var": EnvPrefix + key, "value": v}).Warn("ignoring bad number")
				return
			}
			*dst = f
		}
	}
	flag := func(key string, dst *bool) {
		if v, ok := lookup(EnvPrefix + key); ok {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				logrus.WithFields(logrus.Fields{"var": EnvPrefix + key, "value": v}).Warn("ignoring bad flag")
				return
			}
			*dst = b
		}
	}

	str("DIRECTION", &c.Grid.Direction)
	num("SPEED", &c.Grid.Speed)
	num("CELL_SIZE", &c.Grid.CellSize)
	str("BORDER_COLOR", &c.Grid.BorderColor)
	str("HOVER_COLOR", &c.Grid.HoverFillColor)
	flag("SCRIBBLES", &c.Scribbles.Enabled)
	flag("CURSOR", &c.Cursor.Enabled)
	flag("LOADER", &c.Loader.Enabled)
	str("MUSIC_PATH", &c.Music.Path)
	num("MUSIC_VOLUME", &c.Music.Volume)
	str("FONT_PATH", &c.Window.FontPath)
	flag("FULLSCREEN", &c.Window.Fullscreen)
	flag("HUD", &c.Debug.HUD)
	str("LOG_LEVEL", &c.Debug.LogLevel)
	str("LOG_FORMAT", &c.Debug.LogFormat)
	str("PPROF", &c.Debug.Pprof)
}
