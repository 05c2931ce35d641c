package plan

import (
	"testing"

	"github.com/nutriforge/v1/internal/domain/catalog"
	domain "github.com/nutriforge/v1/internal/domain/plan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// stubCatalog is a fixed in-memory catalog for resolver tests
type stubCatalog struct {
	entries []catalog.Entry
}

func (s *stubCatalog) Lookup(id string) (catalog.Entry, error) {
	for _, e := range s.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return catalog.Entry{}, catalog.ErrExerciseNotFound
}

func (s *stubCatalog) FindByName(name string) (catalog.Entry, bool) {
	for _, e := range s.entries {
		if e.Name == name {
			return e, true
		}
	}
	return catalog.Entry{}, false
}

func (s *stubCatalog) All() []catalog.Entry {
	return s.entries
}

func testCatalogEntries() []catalog.Entry {
	return []catalog.Entry{
		{ID: "c1", Name: "Push-Up", BodyPart: "chest", TargetMuscles: []string{"pectorals", "triceps"}, Equipment: "bodyweight", MediaURL: "https://cdn.example.com/c1.gif"},
		{ID: "c2", Name: "Bodyweight Squat", BodyPart: "legs", TargetMuscles: []string{"quadriceps", "glutes"}, Equipment: "bodyweight", MediaURL: "https://cdn.example.com/c2.gif"},
		{ID: "c3", Name: "Plank", BodyPart: "core", TargetMuscles: []string{"abdominals"}, Equipment: "bodyweight", MediaURL: "https://cdn.example.com/c3.gif"},
		{ID: "c4", Name: "Barbell Deadlift", BodyPart: "back", TargetMuscles: []string{"erector spinae", "glutes", "hamstrings"}, Equipment: "barbell", MediaURL: "https://cdn.example.com/c4.gif"},
		{ID: "c5", Name: "Dumbbell Bicep Curl", BodyPart: "arms", TargetMuscles: []string{"biceps"}, Equipment: "dumbbell", MediaURL: "https://cdn.example.com/c5.gif"},
	}
}

func workoutWith(exercises ...domain.WorkoutExercise) *domain.GeneratedWorkoutPlan {
	return &domain.GeneratedWorkoutPlan{
		PlanDay:         "tuesday",
		WorkoutType:     "strength",
		DurationMinutes: 45,
		WarmupMinutes:   5,
		Exercises:       exercises,
	}
}

func TestExerciseResolver_ExactMatchInCandidates(t *testing.T) {
	cat := &stubCatalog{entries: testCatalogEntries()}
	r := NewExerciseResolver(cat, zaptest.NewLogger(t))
	candidates := cat.entries[:3]

	p := workoutWith(
		domain.WorkoutExercise{Name: "push-up", Sets: 3, Reps: 12, RestSeconds: 60},
		domain.WorkoutExercise{Name: "Plank", Sets: 3, Reps: 1, RestSeconds: 30},
	)

	resolved, result := r.Resolve(p, candidates)

	require.True(t, result.IsValid())
	assert.Empty(t, result.Warnings)
	require.NotNil(t, resolved)
	require.Len(t, resolved.Exercises, 2)
	assert.Equal(t, "c1", resolved.Exercises[0].ExerciseID)
	assert.Equal(t, "Push-Up", resolved.Exercises[0].Name)
	assert.Equal(t, 3, resolved.Exercises[0].Sets)
	assert.Equal(t, "c3", resolved.Exercises[1].ExerciseID)
}

func TestExerciseResolver_ExactMatchByID(t *testing.T) {
	cat := &stubCatalog{entries: testCatalogEntries()}
	r := NewExerciseResolver(cat, zaptest.NewLogger(t))

	p := workoutWith(domain.WorkoutExercise{ExerciseID: "c2", Name: "whatever the model wrote", Sets: 4, Reps: 10})

	resolved, result := r.Resolve(p, cat.entries)

	require.True(t, result.IsValid())
	require.NotNil(t, resolved)
	assert.Equal(t, "Bodyweight Squat", resolved.Exercises[0].Name)
}

func TestExerciseResolver_FuzzyMatchOutsideCandidates(t *testing.T) {
	cat := &stubCatalog{entries: testCatalogEntries()}
	r := NewExerciseResolver(cat, zaptest.NewLogger(t))
	// Candidate list excludes the barbell entry, but the full catalog has it.
	candidates := cat.entries[:3]

	p := workoutWith(
		domain.WorkoutExercise{Name: "Push-Up", Sets: 3, Reps: 12},
		domain.WorkoutExercise{Name: "Barbell Deadlift", Sets: 5, Reps: 5},
	)

	resolved, result := r.Resolve(p, candidates)

	require.True(t, result.IsValid(), "substitution must not reject the plan")
	require.NotNil(t, resolved)
	require.Len(t, resolved.Exercises, 2)
	assert.Equal(t, "c4", resolved.Exercises[1].ExerciseID)

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, domain.CodeExerciseSubstituted, result.Warnings[0].Code)
	assert.Equal(t, "Barbell Deadlift", result.Warnings[0].Context["substituted"])
}

func TestExerciseResolver_CatalogIDOutsideCandidates(t *testing.T) {
	cat := &stubCatalog{entries: testCatalogEntries()}
	r := NewExerciseResolver(cat, zaptest.NewLogger(t))
	candidates := cat.entries[:3]

	p := workoutWith(domain.WorkoutExercise{ExerciseID: "c5", Name: "some curl variation", Sets: 3, Reps: 10})

	resolved, result := r.Resolve(p, candidates)

	require.True(t, result.IsValid())
	require.NotNil(t, resolved)
	assert.Equal(t, "Dumbbell Bicep Curl", resolved.Exercises[0].Name)

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, domain.CodeExerciseSubstituted, result.Warnings[0].Code)
}

func TestExerciseResolver_ExactNameBeatsConflictingMuscleHints(t *testing.T) {
	cat := &stubCatalog{entries: testCatalogEntries()}
	r := NewExerciseResolver(cat, zaptest.NewLogger(t))
	candidates := cat.entries[:2]

	// The muscle metadata contradicts the catalog entry; the indexed name
	// lookup must still ground the reference instead of rejecting it on a
	// low composite score.
	p := workoutWith(domain.WorkoutExercise{Name: "Plank", Muscles: []string{"biceps"}, Sets: 3, Reps: 1})

	resolved, result := r.Resolve(p, candidates)

	require.True(t, result.IsValid())
	require.NotNil(t, resolved)
	assert.Equal(t, "c3", resolved.Exercises[0].ExerciseID)
}

func TestExerciseResolver_UnresolvableReferenceRejectsPlan(t *testing.T) {
	cat := &stubCatalog{entries: testCatalogEntries()}
	r := NewExerciseResolver(cat, zaptest.NewLogger(t))
	candidates := cat.entries[:3]

	p := workoutWith(
		domain.WorkoutExercise{Name: "Push-Up", Sets: 3, Reps: 12},
		domain.WorkoutExercise{Name: "Zqx Vvrm Kplo", Muscles: []string{"quadriceps"}, Sets: 3, Reps: 10},
	)

	resolved, result := r.Resolve(p, candidates)

	assert.Nil(t, resolved)
	require.False(t, result.IsValid())

	foundInvalid := false
	for _, issue := range result.Errors {
		if issue.Code == domain.CodeInvalidExercise {
			foundInvalid = true
		}
	}
	assert.True(t, foundInvalid, "unresolvable reference must raise INVALID_EXERCISE")

	// The nearest-muscle substitute is still reported so the caller can see
	// what the plan would have become.
	foundSubstituted := false
	for _, issue := range result.Warnings {
		if issue.Code == domain.CodeExerciseSubstituted {
			foundSubstituted = true
			assert.Equal(t, "Bodyweight Squat", issue.Context["substituted"])
		}
	}
	assert.True(t, foundSubstituted)
}

func TestExerciseResolver_EmptyPlanRejected(t *testing.T) {
	cat := &stubCatalog{entries: testCatalogEntries()}
	r := NewExerciseResolver(cat, zaptest.NewLogger(t))

	resolved, result := r.Resolve(workoutWith(), cat.entries)

	assert.Nil(t, resolved)
	require.False(t, result.IsValid())
	assert.Equal(t, domain.CodeMissingRequiredFields, result.Errors[0].Code)
}

func TestExerciseResolver_EveryResolvedExerciseHasMedia(t *testing.T) {
	cat := &stubCatalog{entries: testCatalogEntries()}
	r := NewExerciseResolver(cat, zaptest.NewLogger(t))

	p := workoutWith(
		domain.WorkoutExercise{Name: "Push-Up", Sets: 3, Reps: 12},
		domain.WorkoutExercise{Name: "Bodyweight Squat", Sets: 3, Reps: 15},
		domain.WorkoutExercise{Name: "Dumbbell Bicep Curl", Sets: 3, Reps: 10},
	)

	resolved, result := r.Resolve(p, cat.entries)

	require.True(t, result.IsValid())
	for _, ex := range resolved.Exercises {
		assert.NotEmpty(t, ex.MediaURL, "exercise %s missing media", ex.Name)
		assert.True(t, ex.Resolved())
	}
	assert.True(t, resolved.FullyResolved())
}

func TestMatchScore_NameOnlyForBareReferences(t *testing.T) {
	entry := catalog.Entry{
		Name: "Push-Up", BodyPart: "chest",
		TargetMuscles: []string{"pectorals"}, MediaURL: "x",
	}

	same := matchScore(domain.WorkoutExercise{Name: "Push-Up"}, entry)
	assert.InDelta(t, 1.0, same, 1e-9)

	scored := matchScore(domain.WorkoutExercise{
		Name: "Push-Up", BodyPart: "chest", Muscles: []string{"pectorals"},
	}, entry)
	assert.InDelta(t, 1.0, scored, 1e-9)

	unrelated := matchScore(domain.WorkoutExercise{Name: "Zqx Vvrm"}, entry)
	assert.Less(t, unrelated, matchThreshold)
}

func TestNameSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, nameSimilarity("Push-Up", "push-up"), 1e-9)
	assert.Equal(t, 0.0, nameSimilarity("", "push-up"))

	// Shared tokens keep reordered names above unrelated ones.
	reordered := nameSimilarity("press shoulder dumbbell", "dumbbell shoulder press")
	unrelated := nameSimilarity("zqx vvrm kplo", "dumbbell shoulder press")
	assert.Greater(t, reordered, unrelated)
}
