// cmd/backdrop/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strconv"
	"strings"
	"time"

	"portfolio-backdrop/internal/app"
	"portfolio-backdrop/internal/audio"
	"portfolio-backdrop/internal/config"
	"portfolio-backdrop/internal/event"
	"portfolio-backdrop/internal/grid"
	"portfolio-backdrop/internal/input"
	"portfolio-backdrop/internal/logging"
	"portfolio-backdrop/internal/state"
	"portfolio-backdrop/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	poller         *input.Poller
	source         *input.EbitenSource
}

func (a *AppGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.poller.Poll()
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

// Layout рендерит в разрешении устройства: пиксель сетки = пиксель экрана
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := ebiten.Monitor().DeviceScaleFactor()
	w := int(math.Ceil(float64(outsideWidth) * s))
	h := int(math.Ceil(float64(outsideHeight) * s))
	a.source.SetSize(w, h)
	return w, h
}

type options struct {
	configPath string
	snapshot   string
	frames     int
	size       string
	pointer    string
	pprof      string
	logLevel   string
	direction  grid.Direction
	// directionSet — был ли передан -direction
	directionSet bool
}

func parseFlags(args []string) (*options, error) {
	o := &options{}
	fs := flag.NewFlagSet("backdrop", flag.ContinueOnError)
	fs.StringVar(&o.configPath, "config", "", "path to a JSON or YAML config file")
	fs.StringVar(&o.snapshot, "snapshot", "", "render headless to this .png or .svg file and exit")
	fs.IntVar(&o.frames, "frames", 60, "frames to advance before a snapshot")
	fs.StringVar(&o.size, "size", fmt.Sprintf("%dx%d", config.ScreenWidth, config.ScreenHeight), "snapshot size, WxH")
	fs.StringVar(&o.pointer, "pointer", "", "snapshot pointer position, X,Y")
	fs.StringVar(&o.pprof, "pprof", "", "serve pprof on this address, e.g. localhost:6060")
	fs.StringVar(&o.logLevel, "log-level", "", "log level, overrides the config")
	fs.TextVar(&o.direction, "direction", grid.Diagonal, "grid direction (right, left, up, down, diagonal), overrides the config")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "direction" {
			o.directionSet = true
		}
	})
	return o, nil
}

// parseSize разбирает "WxH"
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q, want WxH", s)
	}
	w, err := strconv.Atoi(strings.TrimSpace(ws))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	h, err := strconv.Atoi(strings.TrimSpace(hs))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q, must be positive", s)
	}
	return w, h, nil
}

// parsePointer разбирает "X,Y"; пустая строка означает без курсора
func parsePointer(s string) (*render.Point, error) {
	if s == "" {
		return nil, nil
	}
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return nil, fmt.Errorf("invalid pointer %q, want X,Y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid pointer %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid pointer %q: %w", s, err)
	}
	return &render.Point{X: x, Y: y}, nil
}

func loadConfig(o *options) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.logLevel != "" {
		cfg.Debug.LogLevel = o.logLevel
	}
	if o.pprof != "" {
		cfg.Debug.Pprof = o.pprof
	}
	if o.directionSet {
		cfg.Grid.Direction = o.direction.String()
	}
	return cfg, nil
}

func runSnapshot(cfg *config.Config, o *options) error {
	w, h, err := parseSize(o.size)
	if err != nil {
		return err
	}
	pointer, err := parsePointer(o.pointer)
	if err != nil {
		return err
	}
	return app.Snapshot(cfg, app.SnapshotOptions{
		Path:    o.snapshot,
		Frames:  o.frames,
		Width:   w,
		Height:  h,
		Pointer: pointer,
	})
}

func runWindow(cfg *config.Config) error {
	var player *audio.Player
	if cfg.Music.Path != "" {
		player = audio.Load(ebitenaudio.NewContext(audio.SampleRate), cfg.Music.Path, cfg.Music.Title, cfg.Music.Volume)
	} else {
		player = audio.NewPlayer(nil, cfg.Music.Title, cfg.Music.Volume)
	}
	defer player.Close()

	d := event.NewDispatcher()
	source := &input.EbitenSource{}
	poller := input.NewPoller(source, d)

	sm := state.NewStateMachine() // Создаём машину состояний
	backdrop := state.NewBackdropState(cfg, d, poller, player)
	if cfg.Loader.Enabled {
		sm.SetState(state.NewLoaderState(sm, backdrop, cfg))
	} else {
		sm.SetState(backdrop)
	}

	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		poller:         poller,
		source:         source,
	}
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)

	return runGame(game, ebiten.RunGame)
}

// runGame крутит цикл и затем выходит из текущего состояния, чем бы цикл
// ни закончился: Escape, закрытием окна или ошибкой.
func runGame(game *AppGame, loop func(ebiten.Game) error) error {
	err := loop(game)
	game.stateMachine.Shutdown()
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func run(args []string) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(o)
	if err != nil {
		return err
	}
	if err := logging.Setup(os.Stderr, cfg.Debug.LogLevel, cfg.Debug.LogFormat); err != nil {
		_ = logging.Setup(os.Stderr, config.LogLevel, config.LogFormat)
		logrus.WithError(err).Warn("falling back to default logging")
	}

	if cfg.Debug.Pprof != "" {
		go func() {
			logrus.WithField("addr", cfg.Debug.Pprof).Info("pprof listening")
			logrus.WithError(http.ListenAndServe(cfg.Debug.Pprof, nil)).Warn("pprof stopped")
		}()
	}

	if o.snapshot != "" {
		return runSnapshot(cfg, o)
	}
	return runWindow(cfg)
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("backdrop failed")
	}
}
