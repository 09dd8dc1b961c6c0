package domain

type SweepInput struct {
	Input RawInput
	From  float64
	To    float64
	Step  float64
}

type SweepPoint struct {
	Position                 float64
	Valuation                float64
	EffectiveValuation       float64
	CombinedOwnershipPercent float64
	CombinedPercentDisplay   string
	WorthDisplay             string
	Displayable              bool
}

type SweepResult struct {
	Points []SweepPoint
}
