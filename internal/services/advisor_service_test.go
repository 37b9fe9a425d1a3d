package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agroassist/engine/internal/advisory"
)

func TestRecommendCropsMatched(t *testing.T) {
	svc := NewAdvisorService()

	advice := svc.RecommendCrops(context.Background(), "Loamy", "Tropical", "spring", "HIGH")
	require.Equal(t, []string{"Rice", "Sugarcane"}, advice.Crops)
	require.Equal(t, matchedNotes, advice.Notes)
}

func TestRecommendCropsFallback(t *testing.T) {
	svc := NewAdvisorService()

	advice := svc.RecommendCrops(context.Background(), "chalky", "tropical", "spring", "high")
	require.Equal(t, advisory.FallbackCrops, advice.Crops)
	require.NotEqual(t, matchedNotes, advice.Notes)
}

func TestRecommendFertilizersMatched(t *testing.T) {
	svc := NewAdvisorService()

	advice := svc.RecommendFertilizers(context.Background(), "Rice", "Clay", "Seedling", "6.5")
	require.Len(t, advice.Fertilizers, 1)
	require.Equal(t, "NPK 10-20-10", advice.Fertilizers[0].Name)
	require.Equal(t, matchedNotes, advice.Notes)
}

func TestRecommendFertilizersFallback(t *testing.T) {
	svc := NewAdvisorService()

	advice := svc.RecommendFertilizers(context.Background(), "rice", "clay", "harvest", "6.5")
	require.Equal(t, advisory.FallbackFertilizers, advice.Fertilizers)
	require.NotEqual(t, matchedNotes, advice.Notes)
}
