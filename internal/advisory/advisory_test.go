package advisory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLookupCropsExactMatch(t *testing.T) {
	crops, matched := LookupCrops("loamy", "tropical", "spring", "high")
	require.True(t, matched)
	require.Equal(t, []string{"Rice", "Sugarcane"}, crops)
}

func TestLookupCropsFallback(t *testing.T) {
	crops, matched := LookupCrops("volcanic", "arctic", "monsoon", "high")
	require.False(t, matched)
	require.Equal(t, FallbackCrops, crops)
}

func TestLookupFertilizersExactMatch(t *testing.T) {
	recs, matched := LookupFertilizers("rice", "clay", "seedling", "7.0")
	require.True(t, matched)
	require.Len(t, recs, 1)
	require.Equal(t, "NPK 12-24-12", recs[0].Name)
}

func TestLookupFertilizersFallback(t *testing.T) {
	recs, matched := LookupFertilizers("rice", "clay", "seedling", "5.5")
	require.False(t, matched)
	require.Equal(t, FallbackFertilizers, recs)
}

func TestRandomClassifierReturnsKnownDisease(t *testing.T) {
	c := NewRandomClassifier(0)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		d, err := c.Classify(context.Background(), []byte("img"))
		require.NoError(t, err)
		seen[d.Disease] = true

		found := false
		for _, known := range diseases {
			if known.Disease == d.Disease {
				found = true
				require.Equal(t, known.Confidence, d.Confidence)
				require.Equal(t, known.Treatments, d.Treatments)
			}
		}
		require.True(t, found, "classifier returned unknown disease %q", d.Disease)
	}
	require.GreaterOrEqual(t, len(seen), 2, "50 draws should hit more than one disease")
}

func TestRandomClassifierHonorsContext(t *testing.T) {
	c := NewRandomClassifier(time.Minute)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := c.Classify(ctx, []byte("img"))
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
