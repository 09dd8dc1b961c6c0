package http

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"

	"github.com/rs/zerolog"

	"equity-calculator/domain"
)

// calculationResponse mirrors domain.CalculationResult with non-finite
// numbers encoded as null, since JSON has no NaN.
type calculationResponse struct {
	Valuation                   *float64 `json:"valuation"`
	EffectiveValuation          *float64 `json:"effectiveValuation"`
	ConvertibleOwnershipPercent *float64 `json:"convertibleOwnershipPercent"`
	CombinedOwnershipPercent    *float64 `json:"combinedOwnershipPercent"`
	DisplayWorth                *float64 `json:"displayWorth"`
	ValuationDisplay            string   `json:"valuationDisplay"`
	ConvertiblePercentDisplay   string   `json:"convertiblePercentDisplay"`
	CombinedPercentDisplay      string   `json:"combinedPercentDisplay"`
	WorthDisplay                string   `json:"worthDisplay"`
	FixedStakeDisplay           string   `json:"fixedStakeDisplay"`
	Displayable                 bool     `json:"displayable"`
	Summary                     string   `json:"summary,omitempty"`
}

type sweepPointResponse struct {
	Position                 float64  `json:"position"`
	Valuation                *float64 `json:"valuation"`
	EffectiveValuation       *float64 `json:"effectiveValuation"`
	CombinedOwnershipPercent *float64 `json:"combinedOwnershipPercent"`
	CombinedPercentDisplay   string   `json:"combinedPercentDisplay"`
	WorthDisplay             string   `json:"worthDisplay"`
	Displayable              bool     `json:"displayable"`
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func newCalculationResponse(r domain.CalculationResult) calculationResponse {
	return calculationResponse{
		Valuation:                   finite(r.Valuation),
		EffectiveValuation:          finite(r.EffectiveValuation),
		ConvertibleOwnershipPercent: finite(r.ConvertibleOwnershipPercent),
		CombinedOwnershipPercent:    finite(r.CombinedOwnershipPercent),
		DisplayWorth:                finite(r.DisplayWorth),
		ValuationDisplay:            r.ValuationDisplay,
		ConvertiblePercentDisplay:   r.ConvertiblePercentDisplay,
		CombinedPercentDisplay:      r.CombinedPercentDisplay,
		WorthDisplay:                r.WorthDisplay,
		FixedStakeDisplay:           r.FixedStakeDisplay,
		Displayable:                 r.Displayable,
		Summary:                     r.Summary,
	}
}

func newSweepResponse(r domain.SweepResult) []sweepPointResponse {
	points := make([]sweepPointResponse, 0, len(r.Points))
	for _, p := range r.Points {
		points = append(points, sweepPointResponse{
			Position:                 p.Position,
			Valuation:                finite(p.Valuation),
			EffectiveValuation:       finite(p.EffectiveValuation),
			CombinedOwnershipPercent: finite(p.CombinedOwnershipPercent),
			CombinedPercentDisplay:   p.CombinedPercentDisplay,
			WorthDisplay:             p.WorthDisplay,
			Displayable:              p.Displayable,
		})
	}
	return points
}

// writeJSON encodes into a buffer first so a failed encode does not leave
// a half-written 200 response.
func writeJSON(w http.ResponseWriter, log zerolog.Logger, status int, v interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Warn().Err(err).Msg("failed to write response")
	}
}
