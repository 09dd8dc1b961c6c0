package service

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"equity-calculator/domain"
)

// EffectiveValuation applies the note discount and clamps the result into
// the floor/cap window. The floor is applied first and the cap last, so a
// floor configured above the cap yields the cap.
func EffectiveValuation(valuation float64, cap, floor domain.Constraint, discountRatePercent float64) float64 {
	effective := valuation * (1 - discountRatePercent/100)
	if floor.Enabled {
		effective = math.Max(effective, floor.Value)
	} else {
		effective = math.Max(effective, 0)
	}
	if cap.Enabled {
		effective = math.Min(cap.Value, effective)
	}
	return effective
}

// ConvertibleOwnershipPercent is the share bought by the note at the
// effective valuation, capped at 100. A zero effective valuation yields NaN.
func ConvertibleOwnershipPercent(investment, effectiveValuation float64) float64 {
	if effectiveValuation == 0 {
		return math.NaN()
	}
	return capPercent(investment / effectiveValuation * 100)
}

// CombinedOwnershipPercent adds the fixed stake to the note's share. The two
// instruments are treated as non-dilutive of each other; this is a known
// simplification of real cap-table mechanics.
func CombinedOwnershipPercent(convertiblePercent, fixedStakePercent float64) float64 {
	return capPercent(convertiblePercent + fixedStakePercent)
}

// Worth is the monetary value of percent of the company at valuation.
func Worth(percent, valuation float64) float64 {
	return percent / 100 * valuation
}

// math.Min propagates NaN, which is what the display layer expects.
func capPercent(percent float64) float64 {
	return math.Min(percent, MaxOwnershipPercent)
}

// exactDigits is enough fractional digits to tell a float from a rounding
// tie at any precision PercentDecimals picks.
const exactDigits = 30

// PercentDecimals returns how many decimals a percentage is shown with.
func PercentDecimals(percent float64) int32 {
	switch {
	case percent == 0:
		return 0
	case percent < FinePercentThreshold:
		return 4
	case percent < MediumPercentThreshold:
		return 3
	default:
		return 2
	}
}

// FormatPercent renders percent with the precision chosen by PercentDecimals.
// Rounding is half away from zero on the exact binary value of percent, so
// 1.0049999999999999 shows as "1.00" rather than "1.01". NaN and
// infinities render as "NaN", "Infinity" and "-Infinity".
func FormatPercent(percent float64) (string, int32) {
	places := PercentDecimals(percent)
	if s, ok := nonFinite(percent); ok {
		return s, places
	}
	exact := decimal.RequireFromString(strconv.FormatFloat(percent, 'f', exactDigits, 64))
	return exact.StringFixed(places), places
}

// FormatWorth rounds the worth of percent at valuation to whole currency
// units and adds thousands separators.
func FormatWorth(percent, valuation float64) string {
	worth := Worth(percent, valuation)
	if s, ok := nonFinite(worth); ok {
		return s
	}
	return humanize.Comma(int64(math.Round(worth)))
}

func FormatValuation(valuation float64) string {
	if s, ok := nonFinite(valuation); ok {
		return s
	}
	return humanize.Comma(int64(math.Round(valuation)))
}

// IsDisplayable reports whether a result block may be rendered.
func IsDisplayable(combinedPercentDisplay, worthDisplay string) bool {
	return combinedPercentDisplay != "NaN" &&
		combinedPercentDisplay != "Infinity" &&
		worthDisplay != "NaN"
}

func nonFinite(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "NaN", true
	case math.IsInf(v, 1):
		return "Infinity", true
	case math.IsInf(v, -1):
		return "-Infinity", true
	}
	return "", false
}
