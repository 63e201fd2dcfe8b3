package utils

import "math"

// Easing curves matching the ones the site's animations used. All take and
// return t in [0, 1].

func ExpoInOut(t float64) float64 {
	t = Clamp(t, 0, 1)
	switch {
	case t == 0:
		return 0
	case t == 1:
		return 1
	case t < 0.5:
		return math.Pow(2, 20*t-10) / 2
	default:
		return (2 - math.Pow(2, -20*t+10)) / 2
	}
}

func Power2In(t float64) float64 {
	t = Clamp(t, 0, 1)
	return t * t
}

func Power4InOut(t float64) float64 {
	t = Clamp(t, 0, 1)
	if t < 0.5 {
		return 8 * t * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 4)/2
}
