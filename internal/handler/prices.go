package handler

import (
	"net/http"
	"strconv"

	"github.com/osse101/HerbFarmCalc_Go/internal/domain"
	"github.com/osse101/HerbFarmCalc_Go/internal/pricing"
)

// PricesResponse is the current price snapshot
type PricesResponse struct {
	Prices  domain.PriceTable `json:"prices"`
	Warning string            `json:"warning,omitempty"`
}

// HandleGetPrices returns the cached price snapshot, refreshing it if needed
// @Summary Current item prices
// @Description Prices for every seed, herb, compost and rune the calculator uses.
// @Tags prices
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} PricesResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/prices [get]
func HandleGetPrices(svc pricing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		table, err := svc.Snapshot(r.Context())
		if err != nil {
			if len(table) == 0 {
				respondServiceError(w, r, "Price snapshot failed", err)
				return
			}
			respondJSON(w, http.StatusOK, PricesResponse{Prices: table, Warning: ErrMsgPriceUnavailableError})
			return
		}
		respondJSON(w, http.StatusOK, PricesResponse{Prices: table})
	}
}

// HandleGetItemPrice returns one item's price
// @Summary Price of one item
// @Tags prices
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} map[string]int
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/prices/{id} [get]
func HandleGetItemPrice(svc pricing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, ok := GetPathParam(r, w, "id")
		if !ok {
			return
		}
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidInputError)
			return
		}

		price, err := svc.Price(r.Context(), domain.ItemID(id))
		if err != nil {
			respondServiceError(w, r, "Item price failed", err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]int{"id": id, "price": price})
	}
}

// HandleInvalidatePrices drops every cached price so the next request refetches
// @Summary Clear the price cache
// @Tags admin
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /api/v1/admin/prices/invalidate [post]
func HandleInvalidatePrices(svc pricing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.Invalidate()
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPricesInvalidated})
	}
}
