package domain

// PresetTerms holds the text defaults of a preset. A nil Cap or Floor means
// the constraint is disabled when the preset is applied.
type PresetTerms struct {
	Investment      string
	Cap             *string
	Floor           *string
	Discount        string
	FixedInvestment string
	FixedStake      string
}

type Preset struct {
	Key   string
	Name  string
	Terms PresetTerms
}

// AppliedPreset is the normalized outcome of applying a preset.
type AppliedPreset struct {
	Key          string
	Name         string
	Convertible  ConvertibleTerms
	FixedTerm    FixedTermTerms
	CapEnabled   bool
	FloorEnabled bool
}
