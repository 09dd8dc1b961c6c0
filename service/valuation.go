package service

import "math"

// SelectValuation maps a linear slider position in [0, 100] onto an
// exponential valuation range (100k to 10B) and snaps the result to the
// nearest ValuationIncrement. Positions outside the range are clamped.
func SelectValuation(position float64) float64 {
	position = clampPosition(position)

	raw := math.Round(ValuationBase * math.Pow(ValuationRange, position/MaxSliderPosition))
	return math.Round(raw/ValuationIncrement) * ValuationIncrement
}

// PositionForValuation is the inverse of SelectValuation before snapping.
func PositionForValuation(valuation float64) float64 {
	if valuation <= ValuationBase {
		return MinSliderPosition
	}
	position := MaxSliderPosition * math.Log(valuation/ValuationBase) / math.Log(ValuationRange)
	return clampPosition(position)
}

func clampPosition(position float64) float64 {
	if math.IsNaN(position) {
		return MinSliderPosition
	}
	return math.Min(MaxSliderPosition, math.Max(position, MinSliderPosition))
}
