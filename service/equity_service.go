package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/rs/zerolog"

	"equity-calculator/domain"
	"equity-calculator/repository"
)

// ErrInvalidPosition is returned for slider positions outside [0, 100].
var ErrInvalidPosition = errors.New("slider position must be between 0 and 100")

// EquityService computes ownership from raw form input, caching results
// and recording a bounded history.
type EquityService struct {
	repo  repository.CalculationRepository
	cache repository.CacheRepository
	log   zerolog.Logger
}

// NewEquityService creates a new EquityService with the given repository and cache.
func NewEquityService(repo repository.CalculationRepository,
	cache repository.CacheRepository,
	log zerolog.Logger,
) *EquityService {
	return &EquityService{
		repo:  repo,
		cache: cache,
		log:   log.With().Str("component", "equity_service").Logger(),
	}
}

// NormalizeInput converts raw form text into calculation terms.
func NormalizeInput(raw domain.RawInput) domain.CalculationInput {
	cap := domain.Unbounded()
	if !raw.CapDisabled {
		cap = domain.Bound(Normalize(raw.Cap))
	}
	floor := domain.Unbounded()
	if !raw.FloorDisabled {
		floor = domain.Bound(Normalize(raw.Floor))
	}

	return domain.CalculationInput{
		Convertible: domain.ConvertibleTerms{
			InvestmentAmount:    Normalize(raw.Investment),
			ValuationCap:        cap,
			ValuationFloor:      floor,
			DiscountRatePercent: Normalize(raw.Discount),
		},
		FixedTerm: domain.FixedTermTerms{
			InvestmentAmount: Normalize(raw.FixedInvestment),
			StakePercent:     Normalize(raw.FixedStake),
		},
		Valuation: SelectValuation(raw.Position),
	}
}

// Compute runs the calculator over already normalized terms. fixedStakeText
// is echoed in the summary as entered; when empty the normalized stake is used.
func Compute(input domain.CalculationInput, fixedStakeText string) domain.CalculationResult {
	c := input.Convertible
	effective := EffectiveValuation(input.Valuation, c.ValuationCap, c.ValuationFloor, c.DiscountRatePercent)
	convertible := ConvertibleOwnershipPercent(c.InvestmentAmount, effective)
	combined := CombinedOwnershipPercent(convertible, input.FixedTerm.StakePercent)

	if fixedStakeText == "" {
		fixedStakeText = strconv.FormatFloat(input.FixedTerm.StakePercent, 'f', -1, 64)
	}

	result := domain.CalculationResult{
		Valuation:                   input.Valuation,
		EffectiveValuation:          effective,
		ConvertibleOwnershipPercent: convertible,
		CombinedOwnershipPercent:    combined,
		DisplayWorth:                Worth(combined, input.Valuation),
		ValuationDisplay:            FormatValuation(input.Valuation),
		WorthDisplay:                FormatWorth(combined, input.Valuation),
		FixedStakeDisplay:           fixedStakeText,
	}
	result.ConvertiblePercentDisplay, _ = FormatPercent(convertible)
	result.CombinedPercentDisplay, _ = FormatPercent(combined)
	result.Displayable = IsDisplayable(result.CombinedPercentDisplay, result.WorthDisplay)
	result.Summary = Summary(result, input.FixedTerm.StakePercent)

	return result
}

// Calculate normalizes the raw form input and computes the ownership result.
func (s *EquityService) Calculate(raw domain.RawInput) (domain.CalculationResult, error) {
	if math.IsNaN(raw.Position) || raw.Position < MinSliderPosition || raw.Position > MaxSliderPosition {
		return domain.CalculationResult{}, ErrInvalidPosition
	}

	input := NormalizeInput(raw)
	result := s.lookupOrCompute(input, raw.FixedStake)

	// History is best effort
	if err := s.repo.Save(result); err != nil {
		s.log.Warn().Err(err).Msg("failed to save calculation")
	}

	return result, nil
}

func (s *EquityService) lookupOrCompute(input domain.CalculationInput, fixedStakeText string) domain.CalculationResult {
	key := cacheKey(input, fixedStakeText)

	if cached, ok := s.cache.Get(key); ok {
		var result domain.CalculationResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			s.log.Debug().Str("key", key).Msg("calculation cache hit")
			return result
		}
		s.log.Warn().Str("key", key).Msg("discarding unreadable cache entry")
	}

	result := Compute(input, fixedStakeText)

	// NaN fields cannot be encoded as JSON; such results are cheap to
	// recompute and are never cached.
	if result.Displayable {
		if payload, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(key, string(payload)); err != nil {
				s.log.Warn().Err(err).Msg("failed to cache calculation")
			}
		}
	}

	return result
}

// History returns the most recent calculations, newest first.
func (s *EquityService) History(limit int) []domain.CalculationResult {
	return s.repo.Recent(limit)
}

func cacheKey(input domain.CalculationInput, fixedStakeText string) string {
	c := input.Convertible
	return fmt.Sprintf("%g|%t:%g|%t:%g|%g|%g|%q|%g",
		c.InvestmentAmount,
		c.ValuationCap.Enabled, c.ValuationCap.Value,
		c.ValuationFloor.Enabled, c.ValuationFloor.Value,
		c.DiscountRatePercent,
		input.FixedTerm.StakePercent,
		fixedStakeText,
		input.Valuation,
	)
}
