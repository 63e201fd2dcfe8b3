package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"portfolio-backdrop/internal/config"
	"portfolio-backdrop/internal/event"
	"portfolio-backdrop/pkg/render"

	"github.com/sirupsen/logrus"
)

// snapshotDT — длительность кадра при рендере без окна
const snapshotDT = 1.0 / 60

// ErrUnsupportedSnapshot is returned for output files other than .png and
// .svg.
var ErrUnsupportedSnapshot = errors.New("unsupported snapshot format")

// SnapshotOptions describes one headless render.
type SnapshotOptions struct {
	Path          string
	Frames        int
	Width, Height int
	// Pointer, если задан, подсвечивает клетку под ним
	Pointer *render.Point
}

// Snapshot builds a scene from cfg, advances it opts.Frames frames and
// writes the last frame to opts.Path as PNG or SVG.
func Snapshot(cfg *config.Config, opts SnapshotOptions) error {
	ext := strings.ToLower(filepath.Ext(opts.Path))
	if ext != ".png" && ext != ".svg" {
		return fmt.Errorf("%w: %q", ErrUnsupportedSnapshot, ext)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("invalid snapshot size %dx%d", opts.Width, opts.Height)
	}

	f, err := os.Create(opts.Path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	if err := RenderSnapshot(f, ext, cfg, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"path":   opts.Path,
		"frames": opts.Frames,
		"width":  opts.Width,
		"height": opts.Height,
	}).Info("snapshot written")
	return nil
}

// RenderSnapshot is Snapshot writing to w; ext selects the encoder.
func RenderSnapshot(w io.Writer, ext string, cfg *config.Config, opts SnapshotOptions) error {
	d := event.NewDispatcher()
	scene := NewScene(cfg)
	scene.Mount(d)
	defer scene.Unmount()

	d.Dispatch(event.Event{Type: event.Resize, Data: event.ResizeData{Width: opts.Width, Height: opts.Height}})
	if opts.Pointer != nil {
		d.Dispatch(event.Event{Type: event.PointerMove, Data: event.PointerData{X: opts.Pointer.X, Y: opts.Pointer.Y}})
	}
	for i := 0; i < opts.Frames; i++ {
		scene.Step(snapshotDT)
	}

	switch ext {
	case ".png":
		p := render.NewRasterPainter(opts.Width, opts.Height)
		defer p.Close()
		scene.Draw(p)
		if err := p.EncodePNG(w); err != nil {
			return fmt.Errorf("failed to encode png: %w", err)
		}
	case ".svg":
		p := render.NewSVGPainter(w, opts.Width, opts.Height)
		scene.Draw(p)
		p.End()
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedSnapshot, ext)
	}
	return nil
}
