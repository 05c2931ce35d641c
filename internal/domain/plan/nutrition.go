// Package plan contains the core domain model for generated nutrition and
// workout plans and their validation outcomes.
package plan

import "strings"

// DietType identifies the dietary pattern a user follows
type DietType string

const (
	DietOmnivore    DietType = "omnivore"
	DietVegetarian  DietType = "vegetarian"
	DietVegan       DietType = "vegan"
	DietPescatarian DietType = "pescatarian"
	DietKeto        DietType = "keto"
	DietPaleo       DietType = "paleo"
)

// ParseDietType normalizes a free-form diet string into a DietType.
// Unknown values map to omnivore, which excludes nothing.
func ParseDietType(s string) DietType {
	switch DietType(strings.ToLower(strings.TrimSpace(s))) {
	case DietVegetarian:
		return DietVegetarian
	case DietVegan:
		return DietVegan
	case DietPescatarian:
		return DietPescatarian
	case DietKeto:
		return DietKeto
	case DietPaleo:
		return DietPaleo
	default:
		return DietOmnivore
	}
}

// NutritionTarget holds the externally calculated daily numeric targets.
// It is produced by the target calculator and consumed read-only.
type NutritionTarget struct {
	DailyCalories float64 `json:"daily_calories"`
	ProteinG      float64 `json:"protein_g"`
	CarbsG        float64 `json:"carbs_g"`
	FatG          float64 `json:"fat_g"`
	WaterMl       float64 `json:"water_ml"`
}

// MealFlags enables or disables individual meal slots in a generated plan
type MealFlags struct {
	Breakfast bool `json:"breakfast"`
	Lunch     bool `json:"lunch"`
	Dinner    bool `json:"dinner"`
	Snacks    bool `json:"snacks"`
}

// EnabledCount returns how many meal slots are requested
func (f MealFlags) EnabledCount() int {
	n := 0
	for _, on := range []bool{f.Breakfast, f.Lunch, f.Dinner, f.Snacks} {
		if on {
			n++
		}
	}
	return n
}

// DietPreferences captures the user's dietary constraints for one request.
// Instances are immutable once a generation request starts.
type DietPreferences struct {
	DietType       DietType  `json:"diet_type"`
	Allergies      []string  `json:"allergies"`
	Restrictions   []string  `json:"restrictions"`
	Meals          MealFlags `json:"meals"`
	CookingMethods []string  `json:"cooking_methods"`
}
