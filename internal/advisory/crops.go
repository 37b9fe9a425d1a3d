// Package advisory holds the static agronomy lookup tables and the disease
// classifier abstraction. The tables are reference data, not a datastore:
// lookups are plain nested map reads with a general-purpose fallback.
package advisory

// CropTable maps soil type -> climate -> season -> water availability to the
// crops best suited for that combination.
var CropTable = map[string]map[string]map[string]map[string][]string{
	"loamy": {
		"tropical": {
			"spring": {
				"high":   {"Rice", "Sugarcane"},
				"medium": {"Maize", "Cotton"},
				"low":    {"Millet"},
			},
			"summer": {
				"high":   {"Soybeans", "Groundnut"},
				"medium": {"Sorghum"},
				"low":    {"Barley"},
			},
		},
		"temperate": {
			"spring": {
				"high":   {"Wheat", "Potatoes"},
				"medium": {"Oats"},
				"low":    {"Rye"},
			},
			"summer": {
				"high":   {"Corn", "Sunflower"},
				"medium": {"Buckwheat"},
				"low":    {"Lentils"},
			},
		},
	},
	"sandy": {
		"tropical": {
			"spring": {
				"high":   {"Watermelon", "Melons"},
				"medium": {"Cassava"},
				"low":    {"Sweet Potatoes"},
			},
			"summer": {
				"high":   {"Peanuts"},
				"medium": {"Cowpeas"},
				"low":    {"Cluster Beans"},
			},
		},
		"temperate": {
			"spring": {
				"high":   {"Carrots", "Radishes"},
				"medium": {"Asparagus"},
				"low":    {"Peas"},
			},
			"summer": {
				"high":   {"Zucchini", "Pumpkins"},
				"medium": {"Green Beans"},
				"low":    {"Tomatoes"},
			},
		},
	},
	"clay": {
		"tropical": {
			"spring": {
				"high":   {"Rice", "Taro"},
				"medium": {"Cabbage"},
				"low":    {"Sugarcane"},
			},
			"summer": {
				"high":   {"Soybeans"},
				"medium": {"Cotton"},
				"low":    {"Wheat"},
			},
		},
		"temperate": {
			"spring": {
				"high":   {"Wheat", "Barley"},
				"medium": {"Oats"},
				"low":    {"Beans"},
			},
			"summer": {
				"high":   {"Corn", "Potatoes"},
				"medium": {"Cabbage"},
				"low":    {"Cauliflower"},
			},
		},
	},
	"silty": {
		"tropical": {
			"spring": {
				"high":   {"Rice", "Maize"},
				"medium": {"Wheat"},
				"low":    {"Soybeans"},
			},
			"summer": {
				"high":   {"Sugarcane"},
				"medium": {"Cotton"},
				"low":    {"Lentils"},
			},
		},
		"temperate": {
			"spring": {
				"high":   {"Wheat", "Oats"},
				"medium": {"Barley"},
				"low":    {"Rye"},
			},
			"summer": {
				"high":   {"Corn", "Soybeans"},
				"medium": {"Sunflower"},
				"low":    {"Buckwheat"},
			},
		},
	},
	"peaty": {
		"tropical": {
			"spring": {
				"high":   {"Rice", "Taro"},
				"medium": {"Cabbage"},
				"low":    {"Lettuce"},
			},
			"summer": {
				"high":   {"Blueberries"},
				"medium": {"Cranberries"},
				"low":    {"Potatoes"},
			},
		},
		"temperate": {
			"spring": {
				"high":   {"Blueberries", "Cranberries"},
				"medium": {"Rye"},
				"low":    {"Oats"},
			},
			"summer": {
				"high":   {"Potatoes", "Carrots"},
				"medium": {"Cabbage"},
				"low":    {"Lettuce"},
			},
		},
	},
}

// FallbackCrops is returned when no entry matches the requested conditions.
var FallbackCrops = []string{"Maize", "Wheat", "Soybeans", "Rice"}

// LookupCrops returns the crops for the given conditions and whether the
// result came from an exact table match.
func LookupCrops(soil, climate, season, water string) ([]string, bool) {
	crops := CropTable[soil][climate][season][water]
	if len(crops) == 0 {
		return FallbackCrops, false
	}
	return crops, true
}
