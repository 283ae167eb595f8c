package handler

import (
	"net/http"

	"github.com/osse101/HerbFarmCalc_Go/internal/domain"
)

// PatchInfo describes one herb patch
type PatchInfo struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// CatalogResponse lists every option the calculator accepts
type CatalogResponse struct {
	Herbs        []domain.HerbInfo     `json:"herbs"`
	Patches      []PatchInfo           `json:"patches"`
	Composts     []domain.CompostInfo  `json:"composts"`
	AnimaPlants  []string              `json:"anima_plants"`
	SortCriteria []domain.SortCriteria `json:"sort_criteria"`
}

// HandleGetHerbs lists the herb catalog in level order
// @Summary List herbs
// @Tags catalog
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} domain.HerbInfo
// @Router /api/v1/herbs [get]
func HandleGetHerbs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, herbInfos())
	}
}

// HandleGetPatches lists every herb patch
// @Summary List herb patches
// @Tags catalog
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} PatchInfo
// @Router /api/v1/patches [get]
func HandleGetPatches() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, patchInfos())
	}
}

// HandleGetCatalog lists herbs, patches, compost tiers, anima plants and sort criteria
// @Summary Full calculator catalog
// @Tags catalog
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} CatalogResponse
// @Router /api/v1/catalog [get]
func HandleGetCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		composts := make([]domain.CompostInfo, 0, len(domain.AllComposts()))
		for _, c := range domain.AllComposts() {
			composts = append(composts, c.Info())
		}

		anima := make([]string, 0, len(domain.AllAnimaPlants()))
		for _, a := range domain.AllAnimaPlants() {
			anima = append(anima, a.String())
		}

		respondJSON(w, http.StatusOK, CatalogResponse{
			Herbs:        herbInfos(),
			Patches:      patchInfos(),
			Composts:     composts,
			AnimaPlants:  anima,
			SortCriteria: domain.AllSortCriteria,
		})
	}
}

func herbInfos() []domain.HerbInfo {
	herbs := make([]domain.HerbInfo, 0, len(domain.AllHerbs()))
	for _, h := range domain.AllHerbs() {
		herbs = append(herbs, h.Info())
	}
	return herbs
}

func patchInfos() []PatchInfo {
	patches := make([]PatchInfo, 0, len(domain.AllPatches()))
	for _, p := range domain.AllPatches() {
		patches = append(patches, PatchInfo{Key: p.Key(), Name: p.Name()})
	}
	return patches
}
