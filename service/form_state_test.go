package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFormState_AppliesInitialPreset(t *testing.T) {
	f := NewFormState()

	assert.Equal(t, "yc", f.Preset())
	in := f.Input()
	assert.Equal(t, "375,000", in.Investment)
	assert.True(t, in.CapDisabled)
	assert.True(t, in.FloorDisabled)
	assert.Equal(t, "7", in.FixedStake)
	assert.Equal(t, DefaultSliderPosition, in.Position)
}

func TestFormState_EditRevertsPreset(t *testing.T) {
	edits := map[string]func(f *FormState){
		"investment":       func(f *FormState) { f.SetInvestment("400,000") },
		"cap":              func(f *FormState) { f.SetCap("5,000,000") },
		"floor":            func(f *FormState) { f.SetFloor("1,000,000") },
		"discount":         func(f *FormState) { f.SetDiscount("20") },
		"fixed investment": func(f *FormState) { f.SetFixedInvestment("1") },
		"fixed stake":      func(f *FormState) { f.SetFixedStake("8") },
		"cap toggle":       func(f *FormState) { f.SetCapDisabled(false) },
		"floor toggle":     func(f *FormState) { f.SetFloorDisabled(false) },
	}

	for name, edit := range edits {
		t.Run(name, func(t *testing.T) {
			f := NewFormState()
			edit(f)
			assert.Equal(t, NonePresetKey, f.Preset())
		})
	}
}

func TestFormState_UnchangedValueKeepsPreset(t *testing.T) {
	f := NewFormState()
	f.SetInvestment("375,000")
	f.SetCapDisabled(true)
	assert.Equal(t, "yc", f.Preset())
}

func TestFormState_SliderKeepsPreset(t *testing.T) {
	f := NewFormState()
	f.SetPosition(75)
	assert.Equal(t, "yc", f.Preset())
	assert.Equal(t, 75.0, f.Input().Position)

	f.SetPosition(140)
	assert.Equal(t, MaxSliderPosition, f.Input().Position)
}

func TestFormState_NullConstraintKeepsPreviousText(t *testing.T) {
	f := NewFormState()
	require.NoError(t, f.SelectPreset("pearx"))
	assert.False(t, f.Input().CapDisabled)
	assert.Equal(t, "10,000,000", f.Input().Cap)

	require.NoError(t, f.SelectPreset("neo"))
	in := f.Input()
	assert.True(t, in.CapDisabled)
	assert.Equal(t, "10,000,000", in.Cap)
	assert.False(t, in.FloorDisabled)
	assert.Equal(t, "10,000,000", in.Floor)
	assert.Equal(t, "neo", f.Preset())
}

func TestFormState_SelectPresetIdempotent(t *testing.T) {
	f := NewFormState()
	require.NoError(t, f.SelectPreset("zfellow"))
	first := f.Input()
	require.NoError(t, f.SelectPreset("zfellow"))
	assert.Equal(t, first, f.Input())
}

func TestFormState_UnknownPresetLeavesState(t *testing.T) {
	f := NewFormState()
	before := f.Input()

	err := f.SelectPreset("missing")
	assert.ErrorIs(t, err, ErrUnknownPreset)
	assert.Equal(t, "yc", f.Preset())
	assert.Equal(t, before, f.Input())
}

func TestFormState_Result(t *testing.T) {
	f := NewFormState()
	require.NoError(t, f.SelectPreset("neo"))

	result := f.Result()
	assert.Equal(t, 10_000_000.0, result.Valuation)
	assert.Equal(t, 10_000_000.0, result.EffectiveValuation)
	assert.InDelta(t, 6.0, result.ConvertibleOwnershipPercent, 1e-9)
	assert.InDelta(t, 7.5, result.CombinedOwnershipPercent, 1e-9)
	assert.Equal(t, "7.50", result.CombinedPercentDisplay)
	assert.Equal(t, "750,000", result.WorthDisplay)
	assert.Equal(t, "1.5", result.FixedStakeDisplay)
}
