package services

import (
	"context"
	"strings"

	"github.com/agroassist/engine/internal/advisory"
)

const matchedNotes = "These are the top recommendations based on your specific conditions."

// CropAdvice is the response payload for a crop recommendation.
type CropAdvice struct {
	Crops []string `json:"crops"`
	Notes string   `json:"notes"`
}

// FertilizerAdvice is the response payload for a fertilizer recommendation.
type FertilizerAdvice struct {
	Fertilizers []advisory.Fertilizer `json:"fertilizers"`
	Notes       string                `json:"notes"`
}

// AdvisorService answers crop and fertilizer queries from the static tables.
type AdvisorService interface {
	RecommendCrops(ctx context.Context, soil, climate, season, water string) CropAdvice
	RecommendFertilizers(ctx context.Context, crop, soil, stage, ph string) FertilizerAdvice
}

type advisorService struct{}

func NewAdvisorService() AdvisorService {
	return &advisorService{}
}

func (s *advisorService) RecommendCrops(ctx context.Context, soil, climate, season, water string) CropAdvice {
	crops, matched := advisory.LookupCrops(norm(soil), norm(climate), norm(season), norm(water))
	notes := matchedNotes
	if !matched {
		notes = "No specific recommendations found for your exact combination. Here are some general adaptable crops."
	}
	return CropAdvice{Crops: crops, Notes: notes}
}

func (s *advisorService) RecommendFertilizers(ctx context.Context, crop, soil, stage, ph string) FertilizerAdvice {
	recs, matched := advisory.LookupFertilizers(norm(crop), norm(soil), norm(stage), strings.TrimSpace(ph))
	notes := matchedNotes
	if !matched {
		notes = "No specific recommendations found for your exact combination. Here are some general adaptable fertilizers."
	}
	return FertilizerAdvice{Fertilizers: recs, Notes: notes}
}

func norm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
