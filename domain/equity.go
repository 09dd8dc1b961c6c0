package domain

// Constraint is an optional valuation bound. A disabled constraint never binds.
type Constraint struct {
	Enabled bool
	Value   float64
}

// Bound returns a constraint that binds at value.
func Bound(value float64) Constraint {
	return Constraint{Enabled: true, Value: value}
}

// Unbounded returns a disabled constraint ("uncapped" / "no floor").
func Unbounded() Constraint {
	return Constraint{}
}

type ConvertibleTerms struct {
	InvestmentAmount    float64
	ValuationCap        Constraint
	ValuationFloor      Constraint
	DiscountRatePercent float64
}

// FixedTermTerms describes a direct stake. InvestmentAmount is informational
// and does not take part in the ownership calculation.
type FixedTermTerms struct {
	InvestmentAmount float64
	StakePercent     float64
}

type CalculationInput struct {
	Convertible ConvertibleTerms
	FixedTerm   FixedTermTerms
	Valuation   float64
}

type CalculationResult struct {
	Valuation                   float64
	EffectiveValuation          float64
	ConvertibleOwnershipPercent float64
	CombinedOwnershipPercent    float64
	DisplayWorth                float64

	ValuationDisplay          string
	ConvertiblePercentDisplay string
	CombinedPercentDisplay    string
	WorthDisplay              string
	FixedStakeDisplay         string
	Displayable               bool
	Summary                   string `json:",omitempty"`
}

// RawInput carries the form fields exactly as typed by the user.
type RawInput struct {
	Investment      string
	Cap             string
	CapDisabled     bool
	Floor           string
	FloorDisabled   bool
	Discount        string
	FixedInvestment string
	FixedStake      string
	Position        float64
}
