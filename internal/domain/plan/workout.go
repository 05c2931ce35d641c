package plan

// WorkoutExercise is a single slot in a generated workout. Before resolution
// it may carry only a free-text name from the provider; after resolution
// ExerciseID and MediaURL reference a concrete catalog entry.
type WorkoutExercise struct {
	ExerciseID  string   `json:"exercise_id,omitempty"`
	Name        string   `json:"name"`
	BodyPart    string   `json:"body_part,omitempty"`
	Muscles     []string `json:"muscles,omitempty"`
	Equipment   string   `json:"equipment,omitempty"`
	MediaURL    string   `json:"media_url,omitempty"`
	Sets        int      `json:"sets"`
	Reps        int      `json:"reps"`
	RestSeconds int      `json:"rest_seconds"`
}

// Resolved reports whether the exercise is grounded in the catalog with
// demonstration media, the terminal invariant of exercise resolution.
func (e WorkoutExercise) Resolved() bool {
	return e.ExerciseID != "" && e.MediaURL != ""
}

// GeneratedWorkoutPlan is an ordered list of exercise slots for one session
type GeneratedWorkoutPlan struct {
	PlanDay         string            `json:"plan_day"`
	WorkoutType     string            `json:"workout_type"`
	DurationMinutes int               `json:"duration_minutes"`
	WarmupMinutes   int               `json:"warmup_minutes,omitempty"`
	Exercises       []WorkoutExercise `json:"exercises"`
}

// FullyResolved reports whether every exercise references a catalog entry
// with media. Plans must never be shipped when this is false.
func (p *GeneratedWorkoutPlan) FullyResolved() bool {
	for _, e := range p.Exercises {
		if !e.Resolved() {
			return false
		}
	}
	return true
}
