package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agroassist/engine/internal/api/types"
	"github.com/agroassist/engine/internal/services"
)

func TestRecommendCropsHandler(t *testing.T) {
	h := NewAdvisoryHandler(services.NewAdvisorService())

	rr := postJSON(t, h.RecommendCrops, "/api/v1/advisory/crops",
		`{"soil_type":"loamy","climate":"tropical","season":"spring","water_availability":"high","land_size":"2ha"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp types.APIResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	data := resp.Data.(map[string]any)
	crops := data["crops"].([]any)
	require.Equal(t, []any{"Rice", "Sugarcane"}, crops)
}

func TestRecommendCropsHandlerMissingFields(t *testing.T) {
	h := NewAdvisoryHandler(services.NewAdvisorService())

	rr := postJSON(t, h.RecommendCrops, "/api/v1/advisory/crops",
		`{"soil_type":"loamy","climate":"tropical"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRecommendFertilizersHandler(t *testing.T) {
	h := NewAdvisoryHandler(services.NewAdvisorService())

	rr := postJSON(t, h.RecommendFertilizers, "/api/v1/advisory/fertilizers",
		`{"crop_type":"corn","soil_type":"sandy","growth_stage":"vegetative","soil_ph":"6.0"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp types.APIResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	data := resp.Data.(map[string]any)
	ferts := data["fertilizers"].([]any)
	require.Len(t, ferts, 1)
	require.Equal(t, "Urea (46-0-0)", ferts[0].(map[string]any)["name"])
}

func TestRecommendFertilizersHandlerMissingFields(t *testing.T) {
	h := NewAdvisoryHandler(services.NewAdvisorService())

	rr := postJSON(t, h.RecommendFertilizers, "/api/v1/advisory/fertilizers", `{"crop_type":"corn"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}
