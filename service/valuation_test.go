package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectValuation(t *testing.T) {
	tests := []struct {
		position float64
		expected float64
	}{
		{0, 100_000},
		{20, 1_000_000},
		{40, 10_000_000},
		{50, 31_620_000},
		{100, 10_000_000_000},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, SelectValuation(tt.position), "position %v", tt.position)
	}
}

func TestSelectValuation_SnapsToIncrement(t *testing.T) {
	for p := 0.0; p <= 100; p += 0.7 {
		v := SelectValuation(p)
		assert.Zero(t, math.Mod(v, ValuationIncrement), "position %v gave %v", p, v)
	}
}

func TestSelectValuation_ClampsPosition(t *testing.T) {
	assert.Equal(t, SelectValuation(0), SelectValuation(-10))
	assert.Equal(t, SelectValuation(100), SelectValuation(250))
	assert.Equal(t, SelectValuation(0), SelectValuation(math.NaN()))
}

func TestSelectValuation_Monotonic(t *testing.T) {
	prev := SelectValuation(0)
	for p := 1.0; p <= 100; p++ {
		v := SelectValuation(p)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

func TestPositionForValuation(t *testing.T) {
	assert.InDelta(t, 40, PositionForValuation(10_000_000), 1e-9)
	assert.InDelta(t, 20, PositionForValuation(1_000_000), 1e-9)
	assert.Equal(t, MinSliderPosition, PositionForValuation(50_000))
	assert.Equal(t, MaxSliderPosition, PositionForValuation(1e12))
}
