package service

import (
	"errors"
	"fmt"

	"equity-calculator/domain"
)

// NonePresetKey selects no program defaults.
const NonePresetKey = "none"

// ErrUnknownPreset is returned for keys missing from the preset table.
var ErrUnknownPreset = errors.New("unknown preset")

func text(s string) *string { return &s }

// presets is built once and never mutated; lookups hand out copies.
var presets = []domain.Preset{
	{Key: "yc", Name: "YCombinator", Terms: domain.PresetTerms{
		Investment: "375,000", Discount: "0", FixedInvestment: "125,000", FixedStake: "7",
	}},
	{Key: "pearx", Name: "PearX", Terms: domain.PresetTerms{
		Investment: "500,000", Cap: text("10,000,000"), Discount: "0", FixedInvestment: "0", FixedStake: "0",
	}},
	{Key: "zfellow", Name: "ZFellows", Terms: domain.PresetTerms{
		Investment: "10,000", Cap: text("1,000,000,000"), Discount: "0", FixedInvestment: "0", FixedStake: "0",
	}},
	{Key: "neo", Name: "Neo", Terms: domain.PresetTerms{
		Investment: "600,000", Floor: text("10,000,000"), Discount: "0", FixedInvestment: "0", FixedStake: "1.5",
	}},
	{Key: "techstars", Name: "TechStars", Terms: domain.PresetTerms{
		Investment: "0", Discount: "0", FixedInvestment: "20,000", FixedStake: "6",
	}},
	{Key: NonePresetKey, Name: "None", Terms: domain.PresetTerms{
		Investment: "100,000", Discount: "0", FixedInvestment: "0", FixedStake: "0",
	}},
}

var presetIndex = func() map[string]int {
	idx := make(map[string]int, len(presets))
	for i, p := range presets {
		idx[p.Key] = i
	}
	return idx
}()

// Presets lists every preset in display order.
func Presets() []domain.Preset {
	out := make([]domain.Preset, len(presets))
	for i, p := range presets {
		out[i] = clonePreset(p)
	}
	return out
}

// LookupPreset returns a copy of the preset named key.
func LookupPreset(key string) (domain.Preset, error) {
	i, ok := presetIndex[key]
	if !ok {
		return domain.Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, key)
	}
	return clonePreset(presets[i]), nil
}

func clonePreset(p domain.Preset) domain.Preset {
	if p.Terms.Cap != nil {
		p.Terms.Cap = text(*p.Terms.Cap)
	}
	if p.Terms.Floor != nil {
		p.Terms.Floor = text(*p.Terms.Floor)
	}
	return p
}

// ApplyPreset normalizes every term of the preset named by key. A preset
// without a cap or floor leaves that constraint disabled.
func ApplyPreset(key string) (domain.AppliedPreset, error) {
	p, err := LookupPreset(key)
	if err != nil {
		return domain.AppliedPreset{}, err
	}

	t := p.Terms
	convertible := domain.ConvertibleTerms{
		InvestmentAmount:    Normalize(t.Investment),
		ValuationCap:        optionalConstraint(t.Cap),
		ValuationFloor:      optionalConstraint(t.Floor),
		DiscountRatePercent: Normalize(t.Discount),
	}

	return domain.AppliedPreset{
		Key:         p.Key,
		Name:        p.Name,
		Convertible: convertible,
		FixedTerm: domain.FixedTermTerms{
			InvestmentAmount: Normalize(t.FixedInvestment),
			StakePercent:     Normalize(t.FixedStake),
		},
		CapEnabled:   t.Cap != nil,
		FloorEnabled: t.Floor != nil,
	}, nil
}

func optionalConstraint(s *string) domain.Constraint {
	if s == nil {
		return domain.Unbounded()
	}
	return domain.Bound(Normalize(*s))
}
