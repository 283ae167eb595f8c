package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/HerbFarmCalc_Go/internal/database"
	"github.com/osse101/HerbFarmCalc_Go/internal/domain"
	"github.com/osse101/HerbFarmCalc_Go/internal/logger"
	"github.com/osse101/HerbFarmCalc_Go/internal/pricing"
)

// readinessTimeout bounds each dependency probe in /readyz
const readinessTimeout = 2 * time.Second

// readinessProbeItem is priced to confirm the price feed answers
const readinessProbeItem = domain.ItemGrimyRanarr

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: HealthStatusOK})
	}
}

// HandleReadyz reports per-dependency status. Only the database gates
// readiness: without prices calculations still run, flagged as degraded.
// @Summary Readiness check
// @Description Returns OK when the database is reachable; the price feed status is informational
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(dbPool database.Pool, prices pricing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		resp := HealthResponse{
			Status: HealthStatusOK,
			Checks: map[string]string{},
		}

		if err := probe(r.Context(), dbPool.Ping); err != nil {
			log.Error("Readiness check failed", "check", HealthCheckDatabase, "error", err)
			resp.Status = HealthStatusUnavailable
			resp.Message = HealthMsgDatabaseDown
			resp.Checks[HealthCheckDatabase] = HealthStatusUnavailable
		} else {
			resp.Checks[HealthCheckDatabase] = HealthStatusOK
		}

		if prices != nil {
			err := probe(r.Context(), func(ctx context.Context) error {
				_, err := prices.Price(ctx, readinessProbeItem)
				return err
			})
			if err != nil {
				log.Warn("Price feed unavailable", "error", err)
				resp.Checks[HealthCheckPrices] = HealthStatusUnavailable
			} else {
				resp.Checks[HealthCheckPrices] = HealthStatusOK
			}
		}

		status := http.StatusOK
		if resp.Status != HealthStatusOK {
			status = http.StatusServiceUnavailable
		}
		respondJSON(w, status, resp)
	}
}

func probe(ctx context.Context, check func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, readinessTimeout)
	defer cancel()
	return check(ctx)
}
