// Package openai implements the generative provider boundary on the OpenAI
// chat completion API. The client returns exactly what the model produced,
// parsed and schema-checked; it never substitutes fallback content.
package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/nutriforge/v1/internal/domain/plan"
	"github.com/nutriforge/v1/internal/infrastructure/config"
	"github.com/nutriforge/v1/internal/ports/outbound"
	apperrors "github.com/nutriforge/v1/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Client implements outbound.AIService using OpenAI chat completions
type Client struct {
	api         *openai.Client
	model       string
	timeout     time.Duration
	maxTokens   int
	temperature float32
	validate    *validator.Validate
	logger      *zap.Logger
}

// NewClient creates an OpenAI-backed generation client
func NewClient(cfg *config.AIConfig, logger *zap.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &Client{
		api:         openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		timeout:     cfg.Timeout,
		maxTokens:   cfg.MaxTokens,
		temperature: float32(cfg.Temperature),
		validate:    validator.New(),
		logger:      logger.Named("openai-client"),
	}, nil
}

// mealPlanPayload is the wire schema the model is instructed to produce for
// one day of meals.
type mealPlanPayload struct {
	Meals []mealPayload `json:"meals" validate:"required,min=1,dive"`
}

type mealPayload struct {
	Name  string            `json:"name" validate:"required"`
	Items []foodItemPayload `json:"items" validate:"required,min=1,dive"`
}

type foodItemPayload struct {
	Name      string  `json:"name" validate:"required"`
	QuantityG float64 `json:"quantity_g" validate:"required,gt=0"`
	Calories  float64 `json:"calories" validate:"gte=0"`
	Protein   float64 `json:"protein" validate:"gte=0"`
	Carbs     float64 `json:"carbs" validate:"gte=0"`
	Fat       float64 `json:"fat" validate:"gte=0"`
}

// workoutPlanPayload is the wire schema for one workout session
type workoutPlanPayload struct {
	WarmupMinutes int               `json:"warmup_minutes" validate:"gte=0"`
	Exercises     []exercisePayload `json:"exercises" validate:"required,min=1,dive"`
}

type exercisePayload struct {
	Name        string `json:"name" validate:"required"`
	Sets        int    `json:"sets" validate:"required,gt=0"`
	Reps        int    `json:"reps" validate:"required,gt=0"`
	RestSeconds int    `json:"rest_seconds" validate:"gte=0"`
}

// GenerateMealPlan asks the model for one day of meals and converts the
// schema-checked response into the domain model. Per-item totals are
// recomputed locally rather than trusted from the model.
func (c *Client) GenerateMealPlan(ctx context.Context, prompt outbound.GenerationPrompt) (*plan.GeneratedMealPlan, error) {
	raw, err := c.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var payload mealPlanPayload
	if err := c.parse(raw, &payload); err != nil {
		return nil, err
	}

	result := &plan.GeneratedMealPlan{
		Meals: make([]plan.Meal, 0, len(payload.Meals)),
	}
	for _, m := range payload.Meals {
		meal := plan.Meal{
			Name:  m.Name,
			Items: make([]plan.FoodItem, 0, len(m.Items)),
		}
		for _, it := range m.Items {
			meal.Items = append(meal.Items, plan.FoodItem{
				Name:      it.Name,
				QuantityG: it.QuantityG,
				Calories:  it.Calories,
				Protein:   it.Protein,
				Carbs:     it.Carbs,
				Fat:       it.Fat,
			})
		}
		meal.Recalculate()
		result.Meals = append(result.Meals, meal)
	}
	return result, nil
}

// GenerateWorkoutPlan asks the model for one workout session. Returned
// exercises carry only the model's free-text references; grounding them in
// the catalog is the resolver's job.
func (c *Client) GenerateWorkoutPlan(ctx context.Context, prompt outbound.GenerationPrompt) (*plan.GeneratedWorkoutPlan, error) {
	raw, err := c.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var payload workoutPlanPayload
	if err := c.parse(raw, &payload); err != nil {
		return nil, err
	}

	result := &plan.GeneratedWorkoutPlan{
		WarmupMinutes: payload.WarmupMinutes,
		Exercises:     make([]plan.WorkoutExercise, 0, len(payload.Exercises)),
	}
	for _, ex := range payload.Exercises {
		result.Exercises = append(result.Exercises, plan.WorkoutExercise{
			Name:        ex.Name,
			Sets:        ex.Sets,
			Reps:        ex.Reps,
			RestSeconds: ex.RestSeconds,
		})
	}
	return result, nil
}

// requestParams applies the configured provider limits to a prompt. The
// configured max token budget caps the prompt's own; the configured sampling
// temperature fills in when the prompt does not override it.
func (c *Client) requestParams(prompt outbound.GenerationPrompt) (int, float32) {
	maxTokens := prompt.MaxTokens
	if c.maxTokens > 0 && (maxTokens == 0 || maxTokens > c.maxTokens) {
		maxTokens = c.maxTokens
	}
	temperature := prompt.Temperature
	if temperature == 0 {
		temperature = c.temperature
	}
	return maxTokens, temperature
}

// complete executes one chat completion under the configured timeout
func (c *Client) complete(ctx context.Context, prompt outbound.GenerationPrompt) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	maxTokens, temperature := c.requestParams(prompt)
	start := time.Now()
	resp, err := c.api.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
		Model:       c.model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.System},
			{Role: openai.ChatMessageRoleUser, Content: prompt.User},
		},
	})
	if err != nil {
		c.logger.Error("Chat completion failed",
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return "", apperrors.NewExternalServiceError("openai", err)
	}
	if len(resp.Choices) == 0 {
		return "", apperrors.NewExternalServiceError("openai", fmt.Errorf("completion returned no choices"))
	}

	c.logger.Debug("Chat completion succeeded",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
	)
	return resp.Choices[0].Message.Content, nil
}

// parse extracts the JSON object from the completion text and validates it
// against the expected wire schema.
func (c *Client) parse(raw string, out interface{}) error {
	jsonText := extractJSON(raw)
	if jsonText == "" {
		return apperrors.NewSchemaValidationError("completion contains no JSON object")
	}
	if err := json.Unmarshal([]byte(jsonText), out); err != nil {
		return apperrors.NewSchemaValidationError(fmt.Sprintf("completion is not valid JSON: %v", err))
	}
	if err := c.validate.Struct(out); err != nil {
		return apperrors.NewSchemaValidationError(fmt.Sprintf("completion misses required fields: %v", err))
	}
	return nil
}

// extractJSON returns the outermost JSON object in the text. Models sometimes
// wrap the object in prose or markdown fences despite instructions.
func extractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return ""
	}
	return text[start : end+1]
}

var _ outbound.AIService = (*Client)(nil)
