package state

import (
	"math"

	"portfolio-backdrop/internal/utils"
)

const (
	exitDelay    = 0.2
	exitDuration = 1.2
	burstTime    = 0.8 // счётчик "взрывается" быстрее, чем уезжает экран
	burstScale   = 10.0
	exitShift    = 1.5 // доля высоты, на которую уезжает оверлей
	exitStretch  = 0.5

	exitTotal = exitDelay + exitDuration
)

// loaderTimeline is the loader animation as a function of elapsed time:
// the counter runs for duration, then the overlay leaves.
type loaderTimeline struct {
	duration float64
	elapsed  float64
}

func (l *loaderTimeline) Advance(dt float64) { l.elapsed += dt }

// Skip прыгает к началу анимации ухода; повторный Skip завершает её
func (l *loaderTimeline) Skip() {
	if l.elapsed < l.duration {
		l.elapsed = l.duration
		return
	}
	l.elapsed = l.duration + exitTotal
}

// Progress — значение счётчика, 0..100
func (l *loaderTimeline) Progress() int {
	return int(math.Round(100 * utils.ExpoInOut(l.elapsed/l.duration)))
}

func (l *loaderTimeline) Exiting() bool { return l.elapsed >= l.duration }

func (l *loaderTimeline) Done() bool {
	return l.elapsed >= l.duration+exitTotal
}

// Burst returns the counter scale and opacity while it blows up.
func (l *loaderTimeline) Burst() (scale, alpha float64) {
	if !l.Exiting() {
		return 1, 1
	}
	e := utils.Power2In((l.elapsed - l.duration) / burstTime)
	return 1 + (burstScale-1)*e, 1 - e
}

// Overlay returns the vertical shift, the vertical stretch and the opacity
// of the loader overlay for a surface of height h.
func (l *loaderTimeline) Overlay(h float64) (shift, stretch, alpha float64) {
	if !l.Exiting() {
		return 0, 1, 1
	}
	e := utils.Power4InOut((l.elapsed - l.duration - exitDelay) / exitDuration)
	return -exitShift * h * e, 1 + exitStretch*e, 1 - e
}
