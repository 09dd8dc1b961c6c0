package service

import "equity-calculator/domain"

// InitialPresetKey is the preset a new form starts with.
const InitialPresetKey = "yc"

// FormState tracks the calculator form the way an interactive front-end
// does. Applying a preset sets every term at once; any later edit that
// changes a term drops the selection back to "none". The calculator itself
// stays stateless: Result recomputes from the current text on every call.
type FormState struct {
	preset string
	raw    domain.RawInput
}

// NewFormState returns the form as first shown: slider at the default
// position with the initial preset applied.
func NewFormState() *FormState {
	f := &FormState{
		preset: NonePresetKey,
		raw: domain.RawInput{
			Investment:      "10,000",
			CapDisabled:     true,
			FloorDisabled:   true,
			Discount:        "0",
			FixedInvestment: "0",
			FixedStake:      "0",
			Position:        DefaultSliderPosition,
		},
	}
	// The initial key is part of the fixed table.
	_ = f.SelectPreset(InitialPresetKey)
	return f
}

// Preset returns the key of the selected preset, "none" after a manual edit.
func (f *FormState) Preset() string { return f.preset }

// Input returns the current form fields.
func (f *FormState) Input() domain.RawInput { return f.raw }

// SelectPreset applies the preset named key. Cap and floor text is only
// replaced when the preset defines a value; otherwise the constraint is
// disabled and the previous text kept.
func (f *FormState) SelectPreset(key string) error {
	p, err := LookupPreset(key)
	if err != nil {
		return err
	}

	t := p.Terms
	f.raw.CapDisabled = t.Cap == nil
	f.raw.FloorDisabled = t.Floor == nil
	f.raw.Investment = t.Investment
	if t.Cap != nil {
		f.raw.Cap = *t.Cap
	}
	if t.Floor != nil {
		f.raw.Floor = *t.Floor
	}
	f.raw.Discount = t.Discount
	f.raw.FixedInvestment = t.FixedInvestment
	f.raw.FixedStake = t.FixedStake
	f.preset = p.Key
	return nil
}

func (f *FormState) SetInvestment(v string) { f.editText(&f.raw.Investment, v) }
func (f *FormState) SetCap(v string) { f.editText(&f.raw.Cap, v) }
func (f *FormState) SetFloor(v string) { f.editText(&f.raw.Floor, v) }
func (f *FormState) SetDiscount(v string) { f.editText(&f.raw.Discount, v) }
func (f *FormState) SetFixedInvestment(v string) { f.editText(&f.raw.FixedInvestment, v) }
func (f *FormState) SetFixedStake(v string) { f.editText(&f.raw.FixedStake, v) }
func (f *FormState) SetCapDisabled(v bool) { f.editFlag(&f.raw.CapDisabled, v) }
func (f *FormState) SetFloorDisabled(v bool) { f.editFlag(&f.raw.FloorDisabled, v) }

// SetPosition moves the valuation slider. It is not a term edit and keeps
// the selected preset.
func (f *FormState) SetPosition(position float64) {
	f.raw.Position = clampPosition(position)
}

// Result computes the ownership for the current form.
func (f *FormState) Result() domain.CalculationResult {
	return Compute(NormalizeInput(f.raw), f.raw.FixedStake)
}

func (f *FormState) editText(field *string, v string) {
	if *field == v {
		return
	}
	*field = v
	f.preset = NonePresetKey
}

func (f *FormState) editFlag(field *bool, v bool) {
	if *field == v {
		return
	}
	*field = v
	f.preset = NonePresetKey
}
