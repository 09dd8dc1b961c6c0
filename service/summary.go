package service

import (
	"fmt"

	"equity-calculator/domain"
)

// Summary renders the result sentence shown under the slider. It is empty
// when the result must not be displayed.
func Summary(result domain.CalculationResult, fixedStakePercent float64) string {
	if !result.Displayable {
		return ""
	}

	s := fmt.Sprintf(
		"At this valuation, the investor would receive %s%% of your company, worth $%s.",
		result.CombinedPercentDisplay, result.WorthDisplay,
	)
	if fixedStakePercent != 0 {
		s += fmt.Sprintf(
			" This includes %s%% from the SAFE note and %s%% from the fixed terms.",
			result.ConvertiblePercentDisplay, result.FixedStakeDisplay,
		)
	}
	return s
}
