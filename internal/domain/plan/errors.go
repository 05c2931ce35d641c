package plan

import "errors"

// Domain errors for plan generation

var (
	ErrEmptyMealPlan      = errors.New("generated meal plan has no meals")
	ErrEmptyWorkoutPlan   = errors.New("generated workout plan has no exercises")
	ErrZeroTargetCalories = errors.New("nutrition target calories must be greater than zero")
	ErrZeroActualCalories = errors.New("plan calories must be greater than zero for adjustment")
	ErrNoCandidates       = errors.New("no exercise candidates available for the user profile")
	ErrUnresolvedExercise = errors.New("workout contains an exercise that cannot be grounded in the catalog")
)
