package plan

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"

	domain "github.com/nutriforge/v1/internal/domain/plan"
	"github.com/nutriforge/v1/internal/infrastructure/monitoring"
	"github.com/nutriforge/v1/internal/ports/inbound"
	"github.com/nutriforge/v1/internal/ports/outbound"
	apperrors "github.com/nutriforge/v1/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// mockAIService mocks the generative provider boundary
type mockAIService struct {
	mock.Mock
}

func (m *mockAIService) GenerateMealPlan(ctx context.Context, prompt outbound.GenerationPrompt) (*domain.GeneratedMealPlan, error) {
	args := m.Called(ctx, prompt)
	if p := args.Get(0); p != nil {
		return p.(*domain.GeneratedMealPlan), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAIService) GenerateWorkoutPlan(ctx context.Context, prompt outbound.GenerationPrompt) (*domain.GeneratedWorkoutPlan, error) {
	args := m.Called(ctx, prompt)
	if p := args.Get(0); p != nil {
		return p.(*domain.GeneratedWorkoutPlan), args.Error(1)
	}
	return nil, args.Error(1)
}

// passthroughCache runs every generation inline with no caching, isolating
// service behavior from the cache layer.
type passthroughCache struct {
	calls int32
}

func (c *passthroughCache) GetOrGenerate(ctx context.Context, key domain.Fingerprint, generate func(context.Context) (interface{}, error)) ([]byte, outbound.CacheSource, error) {
	atomic.AddInt32(&c.calls, 1)
	v, err := generate(ctx)
	if err != nil {
		return nil, outbound.SourceFresh, err
	}
	data, err := json.Marshal(v)
	return data, outbound.SourceFresh, err
}

func newTestService(t *testing.T, ai outbound.AIService) (*Service, *passthroughCache) {
	t.Helper()
	cache := &passthroughCache{}
	metrics := monitoring.NewMetrics(prometheus.NewRegistry())
	cat := &stubCatalog{entries: testCatalogEntries()}
	return NewService(ai, cache, cat, metrics, zaptest.NewLogger(t)), cache
}

func dietRequest() inbound.GenerateDietPlanRequest {
	return inbound.GenerateDietPlanRequest{
		Profile: inbound.ProfileSubset{
			UserID: "u-1", Country: "IN", Age: 28, HeightCm: 175, WeightKg: 70,
			Experience: "beginner",
		},
		Preferences: domain.DietPreferences{DietType: domain.DietVegan},
		Target:      domain.NutritionTarget{DailyCalories: 2000, ProteinG: 80},
		PlanDay:     "monday",
	}
}

func generatedMeals(calories float64) *domain.GeneratedMealPlan {
	p := makeMealPlan(
		balancedMeal("Breakfast", item("Oatmeal with Berries", calories*0.3)),
		balancedMeal("Lunch", item("Chickpea Curry", calories*0.4)),
		balancedMeal("Dinner", item("Lentil Dal with Rice", calories*0.3)),
	)
	p.PlanDay = ""
	p.Cuisine = ""
	return p
}

func TestService_GenerateDietPlan_Success(t *testing.T) {
	ai := new(mockAIService)
	ai.On("GenerateMealPlan", mock.Anything, mock.Anything).Return(generatedMeals(2000), nil)
	svc, cache := newTestService(t, ai)

	resp, err := svc.GenerateDietPlan(context.Background(), dietRequest())

	require.NoError(t, err)
	require.NotNil(t, resp.Plan)
	assert.Equal(t, "monday", resp.Plan.PlanDay)
	assert.Equal(t, "indian", resp.Plan.Cuisine)
	assert.False(t, resp.Metadata.Cached)
	assert.Equal(t, string(outbound.SourceFresh), resp.Metadata.CacheSource)
	assert.NotEmpty(t, resp.Metadata.GenerationID)
	assert.Empty(t, resp.Metadata.Warnings)
	assert.EqualValues(t, 1, atomic.LoadInt32(&cache.calls))
	ai.AssertExpectations(t)
}

func TestService_GenerateDietPlan_ModerateDriftAdjusted(t *testing.T) {
	ai := new(mockAIService)
	ai.On("GenerateMealPlan", mock.Anything, mock.Anything).Return(generatedMeals(2300), nil)
	svc, _ := newTestService(t, ai)

	resp, err := svc.GenerateDietPlan(context.Background(), dietRequest())

	require.NoError(t, err)
	assert.InDelta(t, 2000, resp.Plan.TotalCalories(), 2000*0.02, "adjusted plan must land within 2%% of target")

	foundDrift := false
	for _, w := range resp.Metadata.Warnings {
		if w.Code == domain.CodeModerateCalorieDrift {
			foundDrift = true
		}
	}
	assert.True(t, foundDrift, "drift warning must surface in metadata")
}

func TestService_GenerateDietPlan_ValidationFailure(t *testing.T) {
	ai := new(mockAIService)
	bad := makeMealPlan(balancedMeal("Lunch", item("Chicken Tikka", 2000)))
	ai.On("GenerateMealPlan", mock.Anything, mock.Anything).Return(bad, nil)
	svc, _ := newTestService(t, ai)

	resp, err := svc.GenerateDietPlan(context.Background(), dietRequest())

	require.Error(t, err)
	assert.Nil(t, resp)
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, domain.CodeDietTypeViolation, vErr.Result.Errors[0].Code)
}

func TestService_GenerateDietPlan_RejectsMissingTarget(t *testing.T) {
	ai := new(mockAIService)
	svc, cache := newTestService(t, ai)

	req := dietRequest()
	req.Target.DailyCalories = 0
	resp, err := svc.GenerateDietPlan(context.Background(), req)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, apperrors.Is(err, apperrors.CodeBadRequest))
	assert.EqualValues(t, 0, atomic.LoadInt32(&cache.calls), "invalid request must not reach the cache")
	ai.AssertNotCalled(t, "GenerateMealPlan", mock.Anything, mock.Anything)
}

func TestService_GenerateDietPlan_ProviderFailure(t *testing.T) {
	ai := new(mockAIService)
	ai.On("GenerateMealPlan", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewExternalServiceError("openai", errors.New("boom")))
	svc, _ := newTestService(t, ai)

	_, err := svc.GenerateDietPlan(context.Background(), dietRequest())

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeExternalServiceError))
}

func workoutRequest() inbound.GenerateWorkoutPlanRequest {
	return inbound.GenerateWorkoutPlanRequest{
		Profile: inbound.ProfileSubset{
			UserID: "u-1", Experience: "beginner",
		},
		WorkoutType:     "strength",
		DurationMinutes: 45,
		PlanDay:         "tuesday",
	}
}

func TestService_GenerateWorkoutPlan_Success(t *testing.T) {
	ai := new(mockAIService)
	ai.On("GenerateWorkoutPlan", mock.Anything, mock.Anything).Return(&domain.GeneratedWorkoutPlan{
		WarmupMinutes: 5,
		Exercises: []domain.WorkoutExercise{
			{Name: "Push-Up", Sets: 3, Reps: 12, RestSeconds: 60},
			{Name: "Bodyweight Squat", Sets: 3, Reps: 15, RestSeconds: 60},
		},
	}, nil)
	svc, _ := newTestService(t, ai)

	resp, err := svc.GenerateWorkoutPlan(context.Background(), workoutRequest())

	require.NoError(t, err)
	require.NotNil(t, resp.Plan)
	assert.Equal(t, "tuesday", resp.Plan.PlanDay)
	assert.Equal(t, "strength", resp.Plan.WorkoutType)
	assert.Equal(t, 45, resp.Plan.DurationMinutes)
	assert.True(t, resp.Plan.FullyResolved())
	ai.AssertExpectations(t)
}

func TestService_GenerateWorkoutPlan_UnresolvableExerciseRejected(t *testing.T) {
	ai := new(mockAIService)
	ai.On("GenerateWorkoutPlan", mock.Anything, mock.Anything).Return(&domain.GeneratedWorkoutPlan{
		Exercises: []domain.WorkoutExercise{
			{Name: "Zqx Vvrm Kplo", Muscles: []string{"quadriceps"}, Sets: 3, Reps: 10},
		},
	}, nil)
	svc, _ := newTestService(t, ai)

	resp, err := svc.GenerateWorkoutPlan(context.Background(), workoutRequest())

	require.Error(t, err)
	assert.Nil(t, resp)
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestService_GenerateWorkoutPlan_RejectsInvalidDuration(t *testing.T) {
	ai := new(mockAIService)
	svc, _ := newTestService(t, ai)

	req := workoutRequest()
	req.DurationMinutes = 0
	_, err := svc.GenerateWorkoutPlan(context.Background(), req)

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeBadRequest))
	ai.AssertNotCalled(t, "GenerateWorkoutPlan", mock.Anything, mock.Anything)
}
