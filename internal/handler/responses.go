package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/HerbFarmCalc_Go/internal/domain"
	"github.com/osse101/HerbFarmCalc_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

// bufferPool reuses encode buffers; calculator results are a few KB each
var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 4096))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode first so an encoding failure can still produce a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a service failure and writes the mapped user message
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName, "error", err)
	} else {
		log.Warn(opName, "error", err, "status", status)
	}
	respondError(w, status, message)
}

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and user-facing messages
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFoundError
	case errors.Is(err, domain.ErrNoPatchesSelected):
		return http.StatusBadRequest, ErrMsgNoPatchesSelectedError
	case errors.Is(err, domain.ErrUnknownHerb):
		return http.StatusBadRequest, ErrMsgUnknownHerbError
	case errors.Is(err, domain.ErrUnknownPatch):
		return http.StatusBadRequest, ErrMsgUnknownPatchError
	case errors.Is(err, domain.ErrUnknownCompost):
		return http.StatusBadRequest, ErrMsgUnknownCompostError
	case errors.Is(err, domain.ErrUnknownAnimaPlant):
		return http.StatusBadRequest, ErrMsgUnknownAnimaPlantError
	case errors.Is(err, domain.ErrUnknownSortCriteria):
		return http.StatusBadRequest, ErrMsgUnknownSortError
	case errors.Is(err, domain.ErrUnknownSkill):
		return http.StatusBadRequest, ErrMsgUnknownSkillError
	case errors.Is(err, domain.ErrUnknownFlag):
		return http.StatusBadRequest, ErrMsgUnknownFlagError
	case errors.Is(err, domain.ErrUnknownDiaryTier):
		return http.StatusBadRequest, ErrMsgUnknownDiaryTierError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusUnprocessableEntity, ErrMsgCalculationFailedError
	case errors.Is(err, domain.ErrPriceUnavailable):
		return http.StatusBadGateway, ErrMsgPriceUnavailableError
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
