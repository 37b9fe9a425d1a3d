package advisory

import (
	"context"
	"math/rand"
	"time"
)

// Diagnosis is the output of a disease classification.
type Diagnosis struct {
	Disease     string   `json:"disease"`
	Description string   `json:"description"`
	Confidence  int      `json:"confidence"`
	Treatments  []string `json:"treatments"`
}

// Classifier turns a plant image into a diagnosis. Implementations may take
// arbitrarily long; they must honor ctx cancellation.
type Classifier interface {
	Classify(ctx context.Context, image []byte) (Diagnosis, error)
}

// diseases known to the stub classifier.
var diseases = []Diagnosis{
	{
		Disease:     "Bacterial Leaf Blight",
		Description: "A bacterial disease that causes water-soaked lesions on leaves",
		Confidence:  95,
		Treatments: []string{
			"Apply copper-based bactericides",
			"Practice crop rotation",
			"Remove and destroy infected plants",
			"Maintain proper plant spacing for air circulation",
		},
	},
	{
		Disease:     "Fungal Leaf Spot",
		Description: "A fungal disease that causes circular spots on leaves",
		Confidence:  88,
		Treatments: []string{
			"Apply fungicide treatment",
			"Improve air circulation",
			"Avoid overhead watering",
			"Remove infected leaves",
		},
	},
	{
		Disease:     "Plant Rust",
		Description: "A fungal disease that causes orange or brown powdery spots",
		Confidence:  92,
		Treatments: []string{
			"Apply sulfur-based fungicide",
			"Remove infected plant parts",
			"Maintain proper plant nutrition",
			"Ensure good air circulation",
		},
	},
}

// RandomClassifier is a stand-in for a real inference model: it picks a
// disease at random after a simulated processing delay. Safe for concurrent
// use by worker goroutines.
type RandomClassifier struct {
	Delay time.Duration
}

func NewRandomClassifier(delay time.Duration) *RandomClassifier {
	return &RandomClassifier{Delay: delay}
}

func (c *RandomClassifier) Classify(ctx context.Context, image []byte) (Diagnosis, error) {
	if c.Delay > 0 {
		select {
		case <-ctx.Done():
			return Diagnosis{}, ctx.Err()
		case <-time.After(c.Delay):
		}
	}
	return diseases[rand.Intn(len(diseases))], nil
}
