// Package audio plays the looping background track.
package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const SampleRate = 44100

// ErrUnsupportedTrack is returned for files that are neither MP3 nor WAV.
var ErrUnsupportedTrack = errors.New("unsupported track format")

// Stream is the playback handle the Player drives.
type Stream interface {
	Play()
	Pause()
	IsPlaying() bool
	SetVolume(v float64)
	Close() error
}

// ebitenStream держит файл открытым, пока из него читает декодер
type ebitenStream struct {
	*audio.Player
	file *os.File
}

func (s *ebitenStream) Close() error {
	return errors.Join(s.Player.Close(), s.file.Close())
}

// Open декодирует файл в бесконечную петлю на ctx
func Open(ctx *audio.Context, path string) (Stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open track: %w", err)
	}

	var (
		src    io.ReadSeeker
		length int64
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(ctx.SampleRate(), f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to decode mp3 %s: %w", path, err)
		}
		src, length = s, s.Length()
	case ".wav":
		s, err := wav.DecodeWithSampleRate(ctx.SampleRate(), f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to decode wav %s: %w", path, err)
		}
		src, length = s, s.Length()
	default:
		f.Close()
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedTrack, ext)
	}

	p, err := ctx.NewPlayer(audio.NewInfiniteLoop(src, length))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create audio player: %w", err)
	}
	return &ebitenStream{Player: p, file: f}, nil
}
