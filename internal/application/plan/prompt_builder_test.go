package plan

import (
	"strings"
	"testing"

	domain "github.com/nutriforge/v1/internal/domain/plan"
	"github.com/nutriforge/v1/internal/ports/inbound"
	"github.com/stretchr/testify/assert"
)

func TestPromptBuilder_DietPrompt(t *testing.T) {
	b := NewPromptBuilder()
	profile := inbound.ProfileSubset{Age: 31, Gender: "female", HeightCm: 168, WeightKg: 62}
	prefs := domain.DietPreferences{
		DietType:     domain.DietVegan,
		Allergies:    []string{"peanuts", "soy"},
		Restrictions: []string{"no fried food"},
		Meals:        domain.MealFlags{Breakfast: true, Dinner: true},
	}
	target := domain.NutritionTarget{DailyCalories: 1900, ProteinG: 95, CarbsG: 210, FatG: 60, WaterMl: 2500}

	prompt := b.BuildDietPrompt(profile, prefs, target, "indian")

	assert.Contains(t, prompt.System, "vegan")
	assert.Contains(t, prompt.System, "ABSOLUTE EXCLUSIONS")
	assert.Contains(t, prompt.System, "peanuts, soy")
	assert.Contains(t, prompt.System, "no fried food")
	assert.Contains(t, prompt.System, `"quantity_g"`)

	assert.Contains(t, prompt.User, "indian cuisine")
	assert.Contains(t, prompt.User, "1900 kcal")
	assert.Contains(t, prompt.User, "95g protein")
	assert.Contains(t, prompt.User, "2500 ml")
	assert.Contains(t, prompt.User, "Breakfast, Dinner")
	assert.NotContains(t, prompt.User, "Lunch")

	assert.Equal(t, dietMaxTokens, prompt.MaxTokens)
}

func TestPromptBuilder_DietPromptDefaultsMeals(t *testing.T) {
	b := NewPromptBuilder()
	prompt := b.BuildDietPrompt(
		inbound.ProfileSubset{Age: 40},
		domain.DietPreferences{DietType: domain.DietOmnivore},
		domain.NutritionTarget{DailyCalories: 2200},
		"international",
	)

	assert.Contains(t, prompt.User, "Breakfast, Lunch, Dinner")
}

func TestPromptBuilder_WorkoutPrompt(t *testing.T) {
	b := NewPromptBuilder()
	profile := inbound.ProfileSubset{
		Experience: "Intermediate",
		Equipment:  []string{"dumbbell"},
		Injuries:   []string{"lower back"},
	}
	candidates := testCatalogEntries()[:3]

	prompt := b.BuildWorkoutPrompt(profile, "full body", 40, candidates)

	assert.Contains(t, prompt.System, "Push-Up")
	assert.Contains(t, prompt.System, "Bodyweight Squat")
	assert.Contains(t, prompt.System, "Plank")
	assert.Contains(t, prompt.System, "lower back")
	assert.Contains(t, prompt.System, `"rest_seconds"`)

	assert.Contains(t, prompt.User, "full body workout")
	assert.Contains(t, prompt.User, "40 minutes")
	assert.Contains(t, prompt.User, "intermediate")
	assert.Contains(t, prompt.User, "dumbbell")

	assert.Equal(t, workoutMaxTokens, prompt.MaxTokens)
}

func TestEnabledMeals(t *testing.T) {
	all := enabledMeals(domain.MealFlags{Breakfast: true, Lunch: true, Dinner: true, Snacks: true})
	assert.Equal(t, "Breakfast, Lunch, Dinner, Snacks", strings.Join(all, ", "))

	none := enabledMeals(domain.MealFlags{})
	assert.Equal(t, []string{"Breakfast", "Lunch", "Dinner"}, none)
}
