// Package inbound defines the interfaces for inbound ports (primary/driving
// adapters). PlanService is the application entry point for plan generation.
package inbound

import (
	"context"

	"github.com/nutriforge/v1/internal/domain/plan"
)

// ProfileSubset is the slice of the user profile that influences generation.
// Field names follow the onboarding profile schema.
type ProfileSubset struct {
	UserID     string   `json:"user_id"`
	Country    string   `json:"country"`
	Region     string   `json:"region,omitempty"`
	Age        int      `json:"age"`
	Gender     string   `json:"gender,omitempty"`
	HeightCm   float64  `json:"height_cm"`
	WeightKg   float64  `json:"weight_kg"`
	Experience string   `json:"experience"`
	Equipment  []string `json:"equipment"`
	Injuries   []string `json:"injuries"`
}

// GenerateDietPlanRequest asks for one day of personalized meals
type GenerateDietPlanRequest struct {
	Profile     ProfileSubset        `json:"profile"`
	Preferences plan.DietPreferences `json:"preferences"`
	Target      plan.NutritionTarget `json:"target"`
	PlanDay     string               `json:"plan_day"`
}

// GenerateWorkoutPlanRequest asks for one personalized workout session
type GenerateWorkoutPlanRequest struct {
	Profile         ProfileSubset `json:"profile"`
	WorkoutType     string        `json:"workout_type"`
	DurationMinutes int           `json:"duration_minutes"`
	PlanDay         string        `json:"plan_day"`
}

// PlanMetadata describes how a result was produced. Warnings carry every
// non-blocking validation issue so callers can see what was corrected.
// GenerationID identifies the upstream generation the plan came from and is
// stable across cache hits for the same result.
type PlanMetadata struct {
	GenerationID     string                 `json:"generation_id"`
	Cached           bool                   `json:"cached"`
	CacheSource      string                 `json:"cache_source"`
	GenerationTimeMs int64                  `json:"generation_time_ms"`
	Warnings         []plan.ValidationIssue `json:"warnings"`
}

// GenerateDietPlanResponse is a validated, portion-corrected meal plan
type GenerateDietPlanResponse struct {
	Plan     *plan.GeneratedMealPlan `json:"plan"`
	Metadata PlanMetadata            `json:"metadata"`
}

// GenerateWorkoutPlanResponse is a fully resolved workout plan
type GenerateWorkoutPlanResponse struct {
	Plan     *plan.GeneratedWorkoutPlan `json:"plan"`
	Metadata PlanMetadata               `json:"metadata"`
}

// PlanService generates validated nutrition and workout plans. A
// *plan.ValidationError return carries the complete list of blocking issues;
// other errors are transport or provider failures that the caller may retry.
type PlanService interface {
	GenerateDietPlan(ctx context.Context, req GenerateDietPlanRequest) (*GenerateDietPlanResponse, error)
	GenerateWorkoutPlan(ctx context.Context, req GenerateWorkoutPlanRequest) (*GenerateWorkoutPlanResponse, error)
}
