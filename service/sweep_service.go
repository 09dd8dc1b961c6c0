package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"equity-calculator/domain"
)

// ErrInvalidSweepRange is returned when a sweep range cannot be evaluated.
var ErrInvalidSweepRange = errors.New("invalid sweep range")

// SweepService evaluates the calculator across a range of slider positions,
// producing the ownership curve for one set of terms.
type SweepService struct {
	log zerolog.Logger
}

// NewSweepService creates a SweepService logging through log.
func NewSweepService(log zerolog.Logger) *SweepService {
	return &SweepService{
		log: log.With().Str("component", "sweep_service").Logger(),
	}
}

// Sweep computes a point for every step from From to To inclusive.
func (s *SweepService) Sweep(input domain.SweepInput) (domain.SweepResult, error) {
	if err := validateSweep(input); err != nil {
		return domain.SweepResult{}, err
	}

	count := sweepSteps(input) + 1
	points := make([]domain.SweepPoint, 0, count)

	base := NormalizeInput(input.Input)
	for i := 0; i < count; i++ {
		position := math.Min(input.From+float64(i)*input.Step, input.To)

		calc := base
		calc.Valuation = SelectValuation(position)
		result := Compute(calc, input.Input.FixedStake)

		points = append(points, domain.SweepPoint{
			Position:                 position,
			Valuation:                result.Valuation,
			EffectiveValuation:       result.EffectiveValuation,
			CombinedOwnershipPercent: result.CombinedOwnershipPercent,
			CombinedPercentDisplay:   result.CombinedPercentDisplay,
			WorthDisplay:             result.WorthDisplay,
			Displayable:              result.Displayable,
		})
	}

	s.log.Debug().Int("points", len(points)).Msg("valuation sweep computed")

	return domain.SweepResult{Points: points}, nil
}

func validateSweep(input domain.SweepInput) error {
	if math.IsNaN(input.From) || math.IsNaN(input.To) || math.IsNaN(input.Step) {
		return fmt.Errorf("%w: values must be numbers", ErrInvalidSweepRange)
	}
	if input.Step <= 0 {
		return fmt.Errorf("%w: step must be positive", ErrInvalidSweepRange)
	}
	if input.From < MinSliderPosition || input.To > MaxSliderPosition {
		return fmt.Errorf("%w: positions must be within [%g, %g]", ErrInvalidSweepRange, MinSliderPosition, MaxSliderPosition)
	}
	if input.From > input.To {
		return fmt.Errorf("%w: from is greater than to", ErrInvalidSweepRange)
	}
	if sweepSteps(input) >= MaxSweepPoints {
		return fmt.Errorf("%w: exceeds the maximum of %d points", ErrInvalidSweepRange, MaxSweepPoints)
	}
	return nil
}

// sweepSteps counts whole steps between From and To. The quotient is nudged
// by sweepEpsilon so 0.3/0.1 (2.9999999999999996) still reaches To.
func sweepSteps(input domain.SweepInput) int {
	return int(math.Floor((input.To-input.From)/input.Step + sweepEpsilon))
}
