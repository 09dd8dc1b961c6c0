package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"equity-calculator/domain"
)

func TestEffectiveValuation(t *testing.T) {
	tests := []struct {
		name      string
		valuation float64
		cap       domain.Constraint
		floor     domain.Constraint
		discount  float64
		expected  float64
	}{
		{"unbounded passes through", 1_000_000, domain.Unbounded(), domain.Unbounded(), 0, 1_000_000},
		{"discount applied", 10_000_000, domain.Unbounded(), domain.Unbounded(), 20, 8_000_000},
		{"cap binds", 50_000_000, domain.Bound(10_000_000), domain.Unbounded(), 0, 10_000_000},
		{"floor binds", 5_000_000, domain.Unbounded(), domain.Bound(10_000_000), 0, 10_000_000},
		{"discount then floor", 10_000_000, domain.Unbounded(), domain.Bound(9_000_000), 20, 9_000_000},
		{"full discount without floor", 10_000_000, domain.Unbounded(), domain.Unbounded(), 100, 0},
		{"discount above 100 clamps to zero", 10_000_000, domain.Unbounded(), domain.Unbounded(), 150, 0},
		{"within window", 15_000_000, domain.Bound(20_000_000), domain.Bound(10_000_000), 0, 15_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EffectiveValuation(tt.valuation, tt.cap, tt.floor, tt.discount))
		})
	}
}

// The floor is applied before the cap, so a floor above the cap always
// resolves to the cap.
func TestEffectiveValuation_FloorAboveCapYieldsCap(t *testing.T) {
	cap := domain.Bound(10_000_000)
	floor := domain.Bound(20_000_000)

	for _, valuation := range []float64{1_000_000, 15_000_000, 50_000_000} {
		assert.Equal(t, 10_000_000.0, EffectiveValuation(valuation, cap, floor, 0))
	}
}

func TestEffectiveValuation_StaysWithinWindow(t *testing.T) {
	floor := domain.Bound(2_000_000)
	cap := domain.Bound(8_000_000)

	for p := 0.0; p <= 100; p += 5 {
		for _, discount := range []float64{0, 10, 50, 90} {
			v := EffectiveValuation(SelectValuation(p), cap, floor, discount)
			assert.GreaterOrEqual(t, v, floor.Value)
			assert.LessOrEqual(t, v, cap.Value)
		}
	}
}

func TestConvertibleOwnershipPercent(t *testing.T) {
	assert.Equal(t, 37.5, ConvertibleOwnershipPercent(375_000, 1_000_000))
	assert.Equal(t, 5.0, ConvertibleOwnershipPercent(500_000, 10_000_000))
	assert.Equal(t, 100.0, ConvertibleOwnershipPercent(5_000_000, 1_000_000))
	assert.True(t, math.IsNaN(ConvertibleOwnershipPercent(100_000, 0)))
	assert.True(t, math.IsNaN(ConvertibleOwnershipPercent(0, 0)))
}

func TestConvertibleOwnershipPercent_Monotonic(t *testing.T) {
	prev := ConvertibleOwnershipPercent(0, 1_000_000)
	for investment := 10_000.0; investment <= 2_000_000; investment += 10_000 {
		v := ConvertibleOwnershipPercent(investment, 1_000_000)
		assert.GreaterOrEqual(t, v, prev)
		assert.LessOrEqual(t, v, MaxOwnershipPercent)
		prev = v
	}

	prev = ConvertibleOwnershipPercent(100_000, 100_000)
	for valuation := 200_000.0; valuation <= 100_000_000; valuation *= 2 {
		v := ConvertibleOwnershipPercent(100_000, valuation)
		assert.LessOrEqual(t, v, prev)
		prev = v
	}
}

func TestCombinedOwnershipPercent(t *testing.T) {
	pairs := [][2]float64{{37.5, 7}, {0, 0}, {95, 10}, {0.004, 1.5}, {60, 60}}

	for _, p := range pairs {
		a, b := p[0], p[1]
		assert.Equal(t, math.Min(a+b, 100), CombinedOwnershipPercent(a, b))
		assert.Equal(t, CombinedOwnershipPercent(a, b), CombinedOwnershipPercent(b, a))
	}
	assert.True(t, math.IsNaN(CombinedOwnershipPercent(math.NaN(), 7)))
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		percent  float64
		expected string
		places   int32
	}{
		{0, "0", 0},
		{0.005, "0.0050", 4},
		{0.05, "0.050", 3},
		{0.5, "0.50", 2},
		{15.333, "15.33", 2},
		{37.5, "37.50", 2},
		{100, "100.00", 2},
		{0.01, "0.010", 3},
		{0.1, "0.10", 2},
	}

	for _, tt := range tests {
		s, places := FormatPercent(tt.percent)
		assert.Equal(t, tt.expected, s, "percent %v", tt.percent)
		assert.Equal(t, tt.places, places, "percent %v", tt.percent)
	}
}

// Ties are decided on the float's exact value: 100,500 of 10,000,000 is
// 1.00499999999999989... and must not round up.
func TestFormatPercent_RoundsExactValue(t *testing.T) {
	tests := []struct {
		percent  float64
		expected string
	}{
		{ConvertibleOwnershipPercent(100_500, 10_000_000), "1.00"},
		{ConvertibleOwnershipPercent(1_005, 100_000), "1.00"},
		{ConvertibleOwnershipPercent(28_850, 10_000_000), "0.29"},
		{0.125, "0.13"},
	}

	for _, tt := range tests {
		s, _ := FormatPercent(tt.percent)
		assert.Equal(t, tt.expected, s, "percent %v", tt.percent)
	}
}

func TestFormatPercent_NonFinite(t *testing.T) {
	s, _ := FormatPercent(math.NaN())
	assert.Equal(t, "NaN", s)

	s, _ = FormatPercent(math.Inf(1))
	assert.Equal(t, "Infinity", s)
}

func TestFormatWorth(t *testing.T) {
	assert.Equal(t, "375,000", FormatWorth(37.5, 1_000_000))
	assert.Equal(t, "0", FormatWorth(0, 1_000_000))
	assert.Equal(t, "1,000,000,000", FormatWorth(10, 10_000_000_000))
	assert.Equal(t, "NaN", FormatWorth(math.NaN(), 1_000_000))
}

func TestFormatValuation(t *testing.T) {
	assert.Equal(t, "10,000,000", FormatValuation(10_000_000))
	assert.Equal(t, "100,000", FormatValuation(100_000))
}

func TestIsDisplayable(t *testing.T) {
	assert.True(t, IsDisplayable("37.50", "375,000"))
	assert.False(t, IsDisplayable("NaN", "NaN"))
	assert.False(t, IsDisplayable("Infinity", "1"))
	assert.False(t, IsDisplayable("5.00", "NaN"))
}
