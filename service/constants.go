package service

const (
	ValuationBase         = 100_000.0 // valuation at slider position 0
	ValuationRange        = 100_000.0 // multiplier reached at position 100
	ValuationIncrement    = 10_000.0  // valuations snap to this increment
	MinSliderPosition     = 0.0
	MaxSliderPosition     = 100.0
	DefaultSliderPosition = 40.0

	MaxOwnershipPercent = 100.0

	// Barriers for the display precision policy
	FinePercentThreshold   = 0.01 // below: 4 decimals
	MediumPercentThreshold = 0.1  // below: 3 decimals

	MaxSweepPoints = 1_001
	sweepEpsilon   = 1e-9
)
