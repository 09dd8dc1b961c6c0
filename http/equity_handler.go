package http

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"equity-calculator/domain"
	"equity-calculator/service"
)

const defaultHistoryLimit = 20

type calculateRequest struct {
	Investment      string   `json:"investment"`
	Cap             string   `json:"cap"`
	CapDisabled     bool     `json:"capDisabled"`
	Floor           string   `json:"floor"`
	FloorDisabled   bool     `json:"floorDisabled"`
	Discount        string   `json:"discount"`
	FixedInvestment string   `json:"fixedInvestment"`
	FixedStake      string   `json:"fixedStake"`
	Position        *float64 `json:"position"`
}

func (r calculateRequest) toRaw() domain.RawInput {
	position := service.DefaultSliderPosition
	if r.Position != nil {
		position = *r.Position
	}
	return domain.RawInput{
		Investment:      r.Investment,
		Cap:             r.Cap,
		CapDisabled:     r.CapDisabled,
		Floor:           r.Floor,
		FloorDisabled:   r.FloorDisabled,
		Discount:        r.Discount,
		FixedInvestment: r.FixedInvestment,
		FixedStake:      r.FixedStake,
		Position:        position,
	}
}

type sweepRequest struct {
	Input calculateRequest `json:"input"`
	From  float64          `json:"from"`
	To    float64          `json:"to"`
	Step  float64          `json:"step"`
}

type presetResponse struct {
	Key             string  `json:"key"`
	Name            string  `json:"name"`
	Investment      string  `json:"investment"`
	Cap             *string `json:"cap"`
	Floor           *string `json:"floor"`
	Discount        string  `json:"discount"`
	FixedInvestment string  `json:"fixedInvestment"`
	FixedStake      string  `json:"fixedStake"`
}

type appliedPresetResponse struct {
	Key                 string   `json:"key"`
	Name                string   `json:"name"`
	InvestmentAmount    float64  `json:"investmentAmount"`
	ValuationCap        *float64 `json:"valuationCap"`
	ValuationFloor      *float64 `json:"valuationFloor"`
	DiscountRatePercent float64  `json:"discountRatePercent"`
	FixedInvestment     float64  `json:"fixedInvestment"`
	FixedStakePercent   float64  `json:"fixedStakePercent"`
	CapEnabled          bool     `json:"capEnabled"`
	FloorEnabled        bool     `json:"floorEnabled"`
}

type valuationResponse struct {
	Position  float64 `json:"position"`
	Valuation float64 `json:"valuation"`
	Display   string  `json:"display"`
}

type EquityHandler struct {
	service *service.EquityService
	sweep   *service.SweepService
	log     zerolog.Logger
}

func NewEquityHandler(equityService *service.EquityService, sweepService *service.SweepService, log zerolog.Logger) *EquityHandler {
	return &EquityHandler{
		service: equityService,
		sweep:   sweepService,
		log:     log.With().Str("component", "equity_handler").Logger(),
	}
}

// RegisterRoutes registers all equity routes
func (h *EquityHandler) RegisterRoutes(r chi.Router) {
	r.Route("/equity", func(r chi.Router) {
		r.Get("/presets", h.ListPresets)
		r.Get("/presets/{key}", h.GetPreset)
		r.Get("/valuation", h.Valuation)
		r.Get("/history", h.History)
		r.Post("/calculate", h.Calculate)
		r.Post("/sweep", h.Sweep)
	})
}

func (h *EquityHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid calculate body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Calculate(req.toRaw())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, h.log, http.StatusOK, newCalculationResponse(result))
}

func (h *EquityHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	var req sweepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.sweep.Sweep(domain.SweepInput{
		Input: req.Input.toRaw(),
		From:  req.From,
		To:    req.To,
		Step:  req.Step,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, h.log, http.StatusOK, map[string]interface{}{
		"points": newSweepResponse(result),
	})
}

func (h *EquityHandler) ListPresets(w http.ResponseWriter, r *http.Request) {
	presets := service.Presets()
	out := make([]presetResponse, 0, len(presets))
	for _, p := range presets {
		out = append(out, presetResponse{
			Key:             p.Key,
			Name:            p.Name,
			Investment:      p.Terms.Investment,
			Cap:             p.Terms.Cap,
			Floor:           p.Terms.Floor,
			Discount:        p.Terms.Discount,
			FixedInvestment: p.Terms.FixedInvestment,
			FixedStake:      p.Terms.FixedStake,
		})
	}
	writeJSON(w, h.log, http.StatusOK, out)
}

func (h *EquityHandler) GetPreset(w http.ResponseWriter, r *http.Request) {
	applied, err := service.ApplyPreset(chi.URLParam(r, "key"))
	if errors.Is(err, service.ErrUnknownPreset) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := appliedPresetResponse{
		Key:                 applied.Key,
		Name:                applied.Name,
		InvestmentAmount:    applied.Convertible.InvestmentAmount,
		DiscountRatePercent: applied.Convertible.DiscountRatePercent,
		FixedInvestment:     applied.FixedTerm.InvestmentAmount,
		FixedStakePercent:   applied.FixedTerm.StakePercent,
		CapEnabled:          applied.CapEnabled,
		FloorEnabled:        applied.FloorEnabled,
	}
	if applied.CapEnabled {
		resp.ValuationCap = finite(applied.Convertible.ValuationCap.Value)
	}
	if applied.FloorEnabled {
		resp.ValuationFloor = finite(applied.Convertible.ValuationFloor.Value)
	}
	writeJSON(w, h.log, http.StatusOK, resp)
}

func (h *EquityHandler) Valuation(w http.ResponseWriter, r *http.Request) {
	position := service.DefaultSliderPosition
	if raw := r.URL.Query().Get("position"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(parsed) ||
			parsed < service.MinSliderPosition || parsed > service.MaxSliderPosition {
			http.Error(w, service.ErrInvalidPosition.Error(), http.StatusBadRequest)
			return
		}
		position = parsed
	}

	valuation := service.SelectValuation(position)
	writeJSON(w, h.log, http.StatusOK, valuationResponse{
		Position:  position,
		Valuation: valuation,
		Display:   service.FormatValuation(valuation),
	})
}

func (h *EquityHandler) History(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	history := h.service.History(limit)
	out := make([]calculationResponse, 0, len(history))
	for _, result := range history {
		out = append(out, newCalculationResponse(result))
	}
	writeJSON(w, h.log, http.StatusOK, out)
}
