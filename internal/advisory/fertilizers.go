package advisory

// Fertilizer is one product recommendation with its application guidance.
type Fertilizer struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	NPK         string   `json:"npk"`
	Application []string `json:"application"`
}

// FertilizerTable maps crop type -> soil type -> growth stage -> soil pH
// (as a canonical string such as "6.5") to recommended fertilizers.
var FertilizerTable = map[string]map[string]map[string]map[string][]Fertilizer{
	"rice": {
		"clay": {
			"seedling": {
				"6.5": {{
					Name:        "NPK 10-20-10",
					Description: "High phosphorus for root development",
					NPK:         "10-20-10",
					Application: []string{"Apply 50 kg/ha at planting", "Ensure even distribution"},
				}},
				"7.0": {{
					Name:        "NPK 12-24-12",
					Description: "Balanced nutrients for alkaline soil",
					NPK:         "12-24-12",
					Application: []string{"Apply 45 kg/ha at planting", "Mix thoroughly with soil"},
				}},
			},
			"vegetative": {
				"6.5": {{
					Name:        "NPK 20-10-10",
					Description: "High nitrogen for vegetative growth",
					NPK:         "20-10-10",
					Application: []string{"Apply 60 kg/ha every 3 weeks", "Water immediately after application"},
				}},
			},
		},
	},
	"wheat": {
		"loamy": {
			"seedling": {
				"6.0": {{
					Name:        "NPK 15-15-15",
					Description: "Balanced nutrients for wheat seedlings",
					NPK:         "15-15-15",
					Application: []string{"Apply 40 kg/ha at planting", "Broadcast evenly"},
				}},
			},
		},
	},
	"corn": {
		"sandy": {
			"vegetative": {
				"6.0": {{
					Name:        "Urea (46-0-0)",
					Description: "High nitrogen for rapid growth",
					NPK:         "46-0-0",
					Application: []string{"Side-dress at V6 stage", "Avoid contact with leaves"},
				}},
			},
		},
	},
	"soybeans": {
		"clay": {
			"flowering": {
				"6.8": {{
					Name:        "Potash (0-0-60)",
					Description: "Essential for pod filling and overall health",
					NPK:         "0-0-60",
					Application: []string{"Apply before flowering", "Incorporate into soil"},
				}},
			},
		},
	},
	"vegetables": {
		"silty": {
			"fruiting": {
				"6.5": {{
					Name:        "Calcium Nitrate",
					Description: "Prevents blossom end rot in fruiting vegetables",
					NPK:         "15-0-0 + 19% Calcium",
					Application: []string{"Foliar spray or soil application", "Apply regularly during fruiting"},
				}},
			},
		},
	},
}

// FallbackFertilizers is returned when no entry matches the requested conditions.
var FallbackFertilizers = []Fertilizer{{
	Name:        "NPK 14-14-14",
	Description: "Balanced fertilizer suitable for most crops",
	NPK:         "14-14-14",
	Application: []string{"Apply 50 kg/ha", "General application guidelines"},
}}

// LookupFertilizers returns the fertilizers for the given conditions and
// whether the result came from an exact table match.
func LookupFertilizers(crop, soil, stage, ph string) ([]Fertilizer, bool) {
	recs := FertilizerTable[crop][soil][stage][ph]
	if len(recs) == 0 {
		return FallbackFertilizers, false
	}
	return recs, true
}
