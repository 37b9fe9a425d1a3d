package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/agroassist/engine/internal/api/types"
	"github.com/agroassist/engine/internal/api/validators"
	"github.com/agroassist/engine/internal/services"
)

type AdvisoryHandler struct {
	advisor services.AdvisorService
}

func NewAdvisoryHandler(advisor services.AdvisorService) *AdvisoryHandler {
	return &AdvisoryHandler{advisor: advisor}
}

func (h *AdvisoryHandler) RecommendCrops(w http.ResponseWriter, r *http.Request) {
	var req types.CropAdviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "missing required fields")
		return
	}

	advice := h.advisor.RecommendCrops(r.Context(), req.SoilType, req.Climate, req.Season, req.WaterAvailability)
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: advice})
}

func (h *AdvisoryHandler) RecommendFertilizers(w http.ResponseWriter, r *http.Request) {
	var req types.FertilizerAdviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "missing required fields")
		return
	}

	advice := h.advisor.RecommendFertilizers(r.Context(), req.CropType, req.SoilType, req.GrowthStage, req.SoilPH)
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: advice})
}
