package plan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	domain "github.com/nutriforge/v1/internal/domain/plan"
	"github.com/nutriforge/v1/internal/infrastructure/monitoring"
	"github.com/nutriforge/v1/internal/ports/inbound"
	"github.com/nutriforge/v1/internal/ports/outbound"
	apperrors "github.com/nutriforge/v1/pkg/errors"
	"go.uber.org/zap"
)

// Service orchestrates the generation pipeline for both plan domains:
// context resolution, prompt construction, provider invocation, validation,
// correction, and caching. It implements inbound.PlanService.
type Service struct {
	ai        outbound.AIService
	cache     outbound.GenerationCache
	resolver  *ContextResolver
	prompts   *PromptBuilder
	validator *DietValidator
	adjuster  *PortionAdjuster
	exercises *ExerciseResolver
	metrics   *monitoring.Metrics
	logger    *zap.Logger
}

// NewService wires the pipeline components into a plan service
func NewService(
	ai outbound.AIService,
	cache outbound.GenerationCache,
	catalog outbound.ExerciseCatalog,
	metrics *monitoring.Metrics,
	logger *zap.Logger,
) *Service {
	log := logger.Named("plan-service")
	lexicon := NewAllergenLexicon()
	return &Service{
		ai:        ai,
		cache:     cache,
		resolver:  NewContextResolver(catalog, log),
		prompts:   NewPromptBuilder(),
		validator: NewDietValidator(lexicon, log),
		adjuster:  NewPortionAdjuster(log),
		exercises: NewExerciseResolver(catalog, log),
		metrics:   metrics,
		logger:    log,
	}
}

// dietCacheEntry is the validated, corrected result persisted per
// fingerprint. Warnings travel with the plan so cache hits still expose
// what was corrected at generation time.
type dietCacheEntry struct {
	GenerationID string                    `json:"generation_id"`
	Plan         *domain.GeneratedMealPlan `json:"plan"`
	Warnings     []domain.ValidationIssue  `json:"warnings"`
	CreatedAt    time.Time                 `json:"created_at"`
}

type workoutCacheEntry struct {
	GenerationID string                       `json:"generation_id"`
	Plan         *domain.GeneratedWorkoutPlan `json:"plan"`
	Warnings     []domain.ValidationIssue     `json:"warnings"`
	CreatedAt    time.Time                    `json:"created_at"`
}

// GenerateDietPlan produces one validated day of meals. Cache hits and
// coalesced in-flight requests never reach the provider; fresh results are
// validated, portion-corrected on moderate drift, and cached before return.
func (s *Service) GenerateDietPlan(ctx context.Context, req inbound.GenerateDietPlanRequest) (*inbound.GenerateDietPlanResponse, error) {
	if req.Target.DailyCalories <= 0 {
		return nil, apperrors.NewBadRequestError("nutrition target with positive daily calories is required")
	}

	fp, err := domain.ComputeFingerprint("diet", struct {
		Profile     inbound.ProfileSubset `json:"profile"`
		Preferences domain.DietPreferences `json:"preferences"`
		Target      domain.NutritionTarget `json:"target"`
		PlanDay     string                 `json:"plan_day"`
	}{req.Profile, req.Preferences, req.Target, req.PlanDay})
	if err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	start := time.Now()
	data, source, err := s.cache.GetOrGenerate(ctx, fp, func(genCtx context.Context) (interface{}, error) {
		return s.generateDiet(genCtx, req)
	})
	elapsed := time.Since(start)
	s.observe("diet", elapsed, err)
	if err != nil {
		return nil, err
	}

	var entry dietCacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("corrupt cached diet plan for fingerprint %s: %w", fp, err)
	}

	s.logger.Info("Diet plan ready",
		zap.String("fingerprint", fp.String()),
		zap.String("source", string(source)),
		zap.Duration("elapsed", elapsed),
		zap.Int("warnings", len(entry.Warnings)),
	)
	return &inbound.GenerateDietPlanResponse{
		Plan: entry.Plan,
		Metadata: inbound.PlanMetadata{
			GenerationID:     entry.GenerationID,
			Cached:           source.Cached(),
			CacheSource:      string(source),
			GenerationTimeMs: elapsed.Milliseconds(),
			Warnings:         entry.Warnings,
		},
	}, nil
}

// generateDiet is the fresh-generation path executed by the cache layer's
// single winner for a fingerprint.
func (s *Service) generateDiet(ctx context.Context, req inbound.GenerateDietPlanRequest) (*dietCacheEntry, error) {
	rctx := s.resolver.Resolve(req.Profile)
	prompt := s.prompts.BuildDietPrompt(req.Profile, req.Preferences, req.Target, rctx.Cuisine)

	generated, err := s.ai.GenerateMealPlan(ctx, prompt)
	if err != nil {
		return nil, err
	}
	generated.PlanDay = req.PlanDay
	generated.Cuisine = rctx.Cuisine

	result := s.validator.Validate(generated, req.Target, req.Preferences)
	s.countIssues(result)
	if !result.IsValid() {
		return nil, &domain.ValidationError{Result: result}
	}

	final := generated
	if result.HasWarning(domain.CodeModerateCalorieDrift) {
		final, err = s.adjuster.Adjust(generated, req.Target.DailyCalories)
		if err != nil {
			return nil, err
		}
	}

	return &dietCacheEntry{
		GenerationID: uuid.NewString(),
		Plan:         final,
		Warnings:     append(result.Warnings, result.Infos...),
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// GenerateWorkoutPlan produces one fully resolved workout session. Every
// exercise in the returned plan is grounded in the catalog with
// demonstration media.
func (s *Service) GenerateWorkoutPlan(ctx context.Context, req inbound.GenerateWorkoutPlanRequest) (*inbound.GenerateWorkoutPlanResponse, error) {
	if req.DurationMinutes <= 0 {
		return nil, apperrors.NewBadRequestError("workout duration must be positive")
	}

	fp, err := domain.ComputeFingerprint("workout", struct {
		Profile         inbound.ProfileSubset `json:"profile"`
		WorkoutType     string                `json:"workout_type"`
		DurationMinutes int                   `json:"duration_minutes"`
		PlanDay         string                `json:"plan_day"`
	}{req.Profile, req.WorkoutType, req.DurationMinutes, req.PlanDay})
	if err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	start := time.Now()
	data, source, err := s.cache.GetOrGenerate(ctx, fp, func(genCtx context.Context) (interface{}, error) {
		return s.generateWorkout(genCtx, req)
	})
	elapsed := time.Since(start)
	s.observe("workout", elapsed, err)
	if err != nil {
		return nil, err
	}

	var entry workoutCacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("corrupt cached workout plan for fingerprint %s: %w", fp, err)
	}

	s.logger.Info("Workout plan ready",
		zap.String("fingerprint", fp.String()),
		zap.String("source", string(source)),
		zap.Duration("elapsed", elapsed),
		zap.Int("warnings", len(entry.Warnings)),
	)
	return &inbound.GenerateWorkoutPlanResponse{
		Plan: entry.Plan,
		Metadata: inbound.PlanMetadata{
			GenerationID:     entry.GenerationID,
			Cached:           source.Cached(),
			CacheSource:      string(source),
			GenerationTimeMs: elapsed.Milliseconds(),
			Warnings:         entry.Warnings,
		},
	}, nil
}

func (s *Service) generateWorkout(ctx context.Context, req inbound.GenerateWorkoutPlanRequest) (*workoutCacheEntry, error) {
	candidates := s.resolver.FilterExercises(req.Profile)
	if len(candidates) == 0 {
		return nil, apperrors.NewBadRequestError(domain.ErrNoCandidates.Error())
	}

	prompt := s.prompts.BuildWorkoutPrompt(req.Profile, req.WorkoutType, req.DurationMinutes, candidates)
	generated, err := s.ai.GenerateWorkoutPlan(ctx, prompt)
	if err != nil {
		return nil, err
	}
	generated.PlanDay = req.PlanDay
	generated.WorkoutType = req.WorkoutType
	generated.DurationMinutes = req.DurationMinutes

	resolved, result := s.exercises.Resolve(generated, candidates)
	s.countIssues(result)
	if !result.IsValid() {
		return nil, &domain.ValidationError{Result: result}
	}

	return &workoutCacheEntry{
		GenerationID: uuid.NewString(),
		Plan:         resolved,
		Warnings:     append(result.Warnings, result.Infos...),
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// observe records outcome metrics for a completed pipeline run
func (s *Service) observe(domainLabel string, elapsed time.Duration, err error) {
	if s.metrics == nil {
		return
	}
	outcome := monitoring.OutcomeSuccess
	var vErr *domain.ValidationError
	switch {
	case err == nil:
	case errors.As(err, &vErr):
		outcome = monitoring.OutcomeValidationFailed
	default:
		outcome = monitoring.OutcomeProviderError
	}
	s.metrics.GenerationTotal.WithLabelValues(domainLabel, outcome).Inc()
	s.metrics.GenerationSeconds.WithLabelValues(domainLabel).Observe(elapsed.Seconds())
}

func (s *Service) countIssues(result domain.ValidationResult) {
	if s.metrics == nil {
		return
	}
	for _, group := range [][]domain.ValidationIssue{result.Errors, result.Warnings, result.Infos} {
		for _, issue := range group {
			s.metrics.ValidationIssues.WithLabelValues(string(issue.Code), string(issue.Severity)).Inc()
		}
	}
}
