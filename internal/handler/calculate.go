package handler

import (
	"net/http"

	"github.com/osse101/HerbFarmCalc_Go/internal/calculator"
	"github.com/osse101/HerbFarmCalc_Go/internal/domain"
	"github.com/osse101/HerbFarmCalc_Go/internal/farming"
	"github.com/osse101/HerbFarmCalc_Go/internal/logger"
)

// CalculateRequest is the body of POST /api/v1/calculate.
// Omitted options fall back to every patch with ultracompost.
type CalculateRequest struct {
	Player     string             `json:"player,omitempty" validate:"player_name"`
	Options    calculator.Options `json:"options"`
	Sort       string             `json:"sort,omitempty"`
	Descending bool               `json:"descending,omitempty"`
}

// HandleCalculate runs the herb calculator for a stored player
// @Summary Calculate herb farming results
// @Description Expected survival, yield, XP and profit for every herb on every selected patch.
// @Description An unknown player or unavailable prices produce a degraded result with warnings.
// @Tags calculator
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body CalculateRequest true "Player, options and sort order"
// @Success 200 {object} domain.CalculatorResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/calculate [post]
func HandleCalculate(svc farming.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := CalculateRequest{Options: calculator.DefaultOptions()}
		if err := DecodeAndValidateRequest(r, w, &req, "Calculate"); err != nil {
			return
		}

		log := logger.FromContext(r.Context())
		log.Debug("Calculate request", "player", req.Player, "sort", req.Sort, "descending", req.Descending)

		result, err := svc.Calculate(r.Context(), farming.CalculateRequest{
			Player:     req.Player,
			Options:    req.Options,
			Sort:       domain.SortCriteria(req.Sort),
			Descending: req.Descending,
		})
		if err != nil {
			respondServiceError(w, r, "Calculate failed", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}
