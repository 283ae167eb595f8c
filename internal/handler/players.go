package handler

import (
	"net/http"

	"github.com/osse101/HerbFarmCalc_Go/internal/domain"
	"github.com/osse101/HerbFarmCalc_Go/internal/farming"
)

// SavePlayerRequest is the body of PUT /api/v1/players/{name}
type SavePlayerRequest struct {
	Skills map[domain.Skill]int `json:"skills" validate:"required"`
	Flags  map[domain.Flag]int  `json:"flags"`
}

// HandleListPlayers lists stored player names
// @Summary List stored players
// @Tags players
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} string
// @Router /api/v1/players [get]
func HandleListPlayers(svc farming.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names, err := svc.ListPlayers(r.Context())
		if err != nil {
			respondServiceError(w, r, "List players failed", err)
			return
		}
		if names == nil {
			names = []string{}
		}
		respondJSON(w, http.StatusOK, names)
	}
}

// HandleGetPlayer returns a stored player's skills and flags
// @Summary Get stored player state
// @Tags players
// @Security ApiKeyAuth
// @Produce json
// @Param name path string true "Player name"
// @Success 200 {object} domain.PlayerState
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/players/{name} [get]
func HandleGetPlayer(svc farming.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := GetPathParam(r, w, "name")
		if !ok {
			return
		}

		state, err := svc.GetPlayer(r.Context(), name)
		if err != nil {
			respondServiceError(w, r, "Get player failed", err)
			return
		}
		respondJSON(w, http.StatusOK, state)
	}
}

// HandleSavePlayer stores a player's skills and flags, replacing any previous state
// @Summary Save player state
// @Tags players
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param name path string true "Player name"
// @Param request body SavePlayerRequest true "Skill levels and flags"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/players/{name} [put]
func HandleSavePlayer(svc farming.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := GetPathParam(r, w, "name")
		if !ok {
			return
		}

		var req SavePlayerRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Save player"); err != nil {
			return
		}

		state := domain.NewPlayerState(name)
		for skill, level := range req.Skills {
			state.Skills[skill] = level
		}
		for flag, value := range req.Flags {
			state.Flags[flag] = value
		}

		if err := svc.SavePlayer(r.Context(), state); err != nil {
			respondServiceError(w, r, "Save player failed", err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgPlayerSaved, Data: state})
	}
}

// HandleDeletePlayer removes a stored player
// @Summary Delete player state
// @Tags players
// @Security ApiKeyAuth
// @Produce json
// @Param name path string true "Player name"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/players/{name} [delete]
func HandleDeletePlayer(svc farming.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := GetPathParam(r, w, "name")
		if !ok {
			return
		}

		if err := svc.DeletePlayer(r.Context(), name); err != nil {
			respondServiceError(w, r, "Delete player failed", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPlayerDeleted})
	}
}
