package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		v, m, want float64
	}{
		{0, 40, 0},
		{39.5, 40, 39.5},
		{40, 40, 0},
		{-0.5, 40, 39.5},
		{-40, 40, 0},
		{-85, 40, 35},
		{123, 40, 3},
		{-1e-18, 40, 0},
	}
	for _, tt := range tests {
		got := Wrap(tt.v, tt.m)
		assert.InDelta(t, tt.want, got, 1e-12, "Wrap(%v, %v)", tt.v, tt.m)
		assert.True(t, got >= 0 && got < tt.m)
	}
}

func TestApproach(t *testing.T) {
	v := 0.0
	for i := 0; i < 36; i++ { // 0.6s at 60 TPS
		v = Approach(v, 100, 1.0/60, 0.6)
	}
	assert.InDelta(t, 95, v, 0.5)
	assert.Equal(t, 7.0, Approach(1, 7, 0.016, 0))
}

func TestEasing(t *testing.T) {
	tests := []struct {
		name string
		f    func(float64) float64
		mid  float64
	}{
		{"ExpoInOut", ExpoInOut, 0.5},
		{"Power2In", Power2In, 0.25},
		{"Power4InOut", Power4InOut, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 0.0, tt.f(0))
			assert.InDelta(t, 1.0, tt.f(1), 1e-12)
			assert.InDelta(t, tt.mid, tt.f(0.5), 1e-12)
			assert.Equal(t, tt.f(1), tt.f(2), "clamped above")
			assert.Equal(t, tt.f(0), tt.f(-1), "clamped below")

			prev := -1.0
			for i := 0; i <= 100; i++ {
				v := tt.f(float64(i) / 100)
				assert.GreaterOrEqual(t, v, prev)
				prev = v
			}
		})
	}
}

func TestPRNGDeterministic(t *testing.T) {
	a, b := NewPRNGService(5), NewPRNGService(5)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Range(2, 3), b.Range(2, 3))
	}
	s := NewPRNGService(5)
	for i := 0; i < 200; i++ {
		v := s.Centered(1.5)
		assert.True(t, v >= -0.75 && v < 0.75)
		r := s.Range(30, 90)
		assert.True(t, r >= 30 && r < 90)
	}
	assert.False(t, s.Chance(0))
	assert.True(t, s.Chance(1))
}
