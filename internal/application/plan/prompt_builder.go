package plan

import (
	"fmt"
	"strings"

	"github.com/nutriforge/v1/internal/domain/catalog"
	domain "github.com/nutriforge/v1/internal/domain/plan"
	"github.com/nutriforge/v1/internal/ports/inbound"
	"github.com/nutriforge/v1/internal/ports/outbound"
)

// Per-domain completion budgets. The provider client caps them further with
// its configured token limit and supplies the sampling temperature.
const (
	dietMaxTokens    = 2000
	workoutMaxTokens = 1500
)

// PromptBuilder assembles generation requests for the diet and workout
// domains from resolved user context, numeric targets, and hard constraints.
type PromptBuilder struct{}

// NewPromptBuilder creates a prompt builder
func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

const dietSystemPrompt = `You are an expert nutritionist creating a personalized one-day meal plan.

CRITICAL: Respond with ONLY a valid JSON object in the exact format below. No explanatory text, no markdown fences, nothing outside the JSON.

Required JSON format:
{
  "meals": [
    {
      "name": "Breakfast",
      "items": [
        {
          "name": "food name",
          "quantity_g": 150,
          "calories": 220,
          "protein": 12.5,
          "carbs": 30.0,
          "fat": 6.0
        }
      ]
    }
  ]
}`

// BuildDietPrompt builds the generation request for one day of meals. Hard
// constraints (allergies, diet type, restrictions) go into the system
// instructions so the provider treats them as non-negotiable; numeric
// targets and context go into the user request.
func (b *PromptBuilder) BuildDietPrompt(profile inbound.ProfileSubset, prefs domain.DietPreferences, target domain.NutritionTarget, cuisine string) outbound.GenerationPrompt {
	var sys strings.Builder
	sys.WriteString(dietSystemPrompt)

	sys.WriteString(fmt.Sprintf("\n\nDiet type: %s. Every food item must comply.", prefs.DietType))
	if len(prefs.Allergies) > 0 {
		sys.WriteString(fmt.Sprintf("\nABSOLUTE EXCLUSIONS (allergies): %s. No food item may contain these in any form.",
			strings.Join(prefs.Allergies, ", ")))
	}
	if len(prefs.Restrictions) > 0 {
		sys.WriteString(fmt.Sprintf("\nAdditional restrictions: %s.", strings.Join(prefs.Restrictions, ", ")))
	}
	if len(prefs.CookingMethods) > 0 {
		sys.WriteString(fmt.Sprintf("\nPreferred cooking methods: %s.", strings.Join(prefs.CookingMethods, ", ")))
	}
	sys.WriteString("\n\nRemember: ONLY valid JSON, nothing else.")

	var user strings.Builder
	user.WriteString(fmt.Sprintf("Create a full day of %s cuisine meals for a %d year old", cuisine, profile.Age))
	if profile.Gender != "" {
		user.WriteString(" " + profile.Gender)
	}
	user.WriteString(fmt.Sprintf(", %.0f cm, %.0f kg.", profile.HeightCm, profile.WeightKg))
	user.WriteString(fmt.Sprintf("\nDaily targets: %.0f kcal, %.0fg protein, %.0fg carbs, %.0fg fat.",
		target.DailyCalories, target.ProteinG, target.CarbsG, target.FatG))
	if target.WaterMl > 0 {
		user.WriteString(fmt.Sprintf("\nDaily water intake goal: %.0f ml, mention hydration-friendly choices.", target.WaterMl))
	}
	user.WriteString("\nMeals to include: " + strings.Join(enabledMeals(prefs.Meals), ", ") + ".")
	user.WriteString("\nDistribute calories sensibly across the included meals and keep item quantities realistic.")

	return outbound.GenerationPrompt{
		System:    sys.String(),
		User:      user.String(),
		MaxTokens: dietMaxTokens,
	}
}

const workoutSystemPrompt = `You are an expert personal trainer creating a single workout session.

CRITICAL: Respond with ONLY a valid JSON object in the exact format below. No explanatory text, no markdown fences, nothing outside the JSON.

Required JSON format:
{
  "warmup_minutes": 5,
  "exercises": [
    {
      "name": "exercise name from the allowed list",
      "sets": 3,
      "reps": 12,
      "rest_seconds": 60
    }
  ]
}`

// BuildWorkoutPrompt builds the generation request for one workout session.
// The filtered candidate list is embedded so the provider picks from
// exercises the user can actually perform; references outside the list are
// caught by the exercise resolver afterwards.
func (b *PromptBuilder) BuildWorkoutPrompt(profile inbound.ProfileSubset, workoutType string, durationMinutes int, candidates []catalog.Entry) outbound.GenerationPrompt {
	var sys strings.Builder
	sys.WriteString(workoutSystemPrompt)

	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.Name
	}
	sys.WriteString("\n\nAllowed exercises (use these exact names):\n- " + strings.Join(names, "\n- "))
	if len(profile.Injuries) > 0 {
		sys.WriteString(fmt.Sprintf("\n\nThe user has these injuries, avoid stressing them: %s.",
			strings.Join(profile.Injuries, ", ")))
	}
	sys.WriteString("\n\nRemember: ONLY valid JSON, nothing else.")

	var user strings.Builder
	user.WriteString(fmt.Sprintf("Create a %s workout of about %d minutes for a %s level trainee",
		workoutType, durationMinutes, strings.ToLower(profile.Experience)))
	if len(profile.Equipment) > 0 {
		user.WriteString(fmt.Sprintf(" with access to: %s", strings.Join(profile.Equipment, ", ")))
	}
	user.WriteString(".\nKeep total work plus rest within the requested duration.")

	return outbound.GenerationPrompt{
		System:    sys.String(),
		User:      user.String(),
		MaxTokens: workoutMaxTokens,
	}
}

// enabledMeals lists the requested meal slots in plan order; a preference
// with no slot enabled defaults to the three main meals.
func enabledMeals(flags domain.MealFlags) []string {
	var meals []string
	if flags.Breakfast {
		meals = append(meals, "Breakfast")
	}
	if flags.Lunch {
		meals = append(meals, "Lunch")
	}
	if flags.Dinner {
		meals = append(meals, "Dinner")
	}
	if flags.Snacks {
		meals = append(meals, "Snacks")
	}
	if len(meals) == 0 {
		meals = []string{"Breakfast", "Lunch", "Dinner"}
	}
	return meals
}
