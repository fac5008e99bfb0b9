package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerpFloats(t *testing.T) {
	tests := []struct {
		name string
		vals []float64
		t    float64
		want float64
	}{
		{"single entry start", []float64{3}, 0, 3},
		{"single entry mid", []float64{3}, 0.5, 3},
		{"single entry end", []float64{3}, 1, 3},
		{"two entries start", []float64{1, 5}, 0, 1},
		{"two entries mid", []float64{1, 5}, 0.5, 3},
		{"two entries end", []float64{1, 5}, 1, 5},
		{"three entries first span", []float64{0, 10, 20}, 0.25, 5},
		{"three entries second span", []float64{0, 10, 20}, 0.75, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, lerpFloats(tt.vals, tt.t), 1e-12)
		})
	}
}

func TestLerpColors(t *testing.T) {
	black := Color{R: 0, G: 0, B: 0, A: 1}
	white := Color{R: 1, G: 1, B: 1, A: 1}

	got := lerpColors([]Color{black, white}, 0.5)
	assert.InDelta(t, 0.5, got.R, 1e-12)
	assert.InDelta(t, 0.5, got.G, 1e-12)
	assert.InDelta(t, 0.5, got.B, 1e-12)
	assert.InDelta(t, 1.0, got.A, 1e-12)

	single := lerpColors([]Color{white}, 0.9)
	assert.Equal(t, white, single)
}

func TestStepIndex(t *testing.T) {
	tests := []struct {
		name string
		n    int
		t    float64
		want int
	}{
		{"start", 4, 0, 0},
		{"first", 4, 0.1, 0},
		{"second", 4, 0.3, 1},
		{"third", 4, 0.6, 2},
		{"last", 4, 0.9, 3},
		{"exact end clamps", 4, 1, 3},
		{"two frames mid", 2, 0.6, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stepIndex(tt.n, tt.t))
		})
	}
}
