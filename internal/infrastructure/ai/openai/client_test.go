package openai

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/nutriforge/v1/internal/infrastructure/config"
	"github.com/nutriforge/v1/internal/ports/outbound"
	apperrors "github.com/nutriforge/v1/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newParseClient(t *testing.T) *Client {
	t.Helper()
	return &Client{
		validate: validator.New(),
		logger:   zaptest.NewLogger(t),
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"markdown fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"prose around", `Here is your plan: {"a":1} Enjoy!`, `{"a":1}`},
		{"no object", "sorry, I cannot do that", ""},
		{"unbalanced", "} {", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSON(tt.in))
		})
	}
}

func TestClient_ParseMealPlanPayload(t *testing.T) {
	c := newParseClient(t)

	t.Run("valid payload", func(t *testing.T) {
		raw := `{"meals":[{"name":"Breakfast","items":[{"name":"Oatmeal","quantity_g":80,"calories":300,"protein":10,"carbs":54,"fat":5}]}]}`
		var payload mealPlanPayload
		require.NoError(t, c.parse(raw, &payload))
		require.Len(t, payload.Meals, 1)
		assert.Equal(t, "Oatmeal", payload.Meals[0].Items[0].Name)
	})

	t.Run("missing meals rejected", func(t *testing.T) {
		var payload mealPlanPayload
		err := c.parse(`{"meals":[]}`, &payload)
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.CodeSchemaValidationFailed))
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		raw := `{"meals":[{"name":"Lunch","items":[{"name":"Air","quantity_g":0,"calories":0,"protein":0,"carbs":0,"fat":0}]}]}`
		var payload mealPlanPayload
		err := c.parse(raw, &payload)
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.CodeSchemaValidationFailed))
	})

	t.Run("prose only rejected", func(t *testing.T) {
		var payload mealPlanPayload
		err := c.parse("I could not produce a plan today.", &payload)
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.CodeSchemaValidationFailed))
	})
}

func TestClient_ParseWorkoutPayload(t *testing.T) {
	c := newParseClient(t)

	t.Run("valid payload", func(t *testing.T) {
		raw := `{"warmup_minutes":5,"exercises":[{"name":"Push-Up","sets":3,"reps":12,"rest_seconds":60}]}`
		var payload workoutPlanPayload
		require.NoError(t, c.parse(raw, &payload))
		assert.Equal(t, 5, payload.WarmupMinutes)
		require.Len(t, payload.Exercises, 1)
		assert.Equal(t, 3, payload.Exercises[0].Sets)
	})

	t.Run("exercise without sets rejected", func(t *testing.T) {
		raw := `{"exercises":[{"name":"Push-Up","reps":12}]}`
		var payload workoutPlanPayload
		err := c.parse(raw, &payload)
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.CodeSchemaValidationFailed))
	})
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(&config.AIConfig{Model: "gpt-4o-mini"}, zaptest.NewLogger(t))
	require.Error(t, err)
}

func TestClient_RequestParams(t *testing.T) {
	c := &Client{maxTokens: 1200, temperature: 0.7}

	tests := []struct {
		name     string
		prompt   outbound.GenerationPrompt
		wantMax  int
		wantTemp float32
	}{
		{"budget above limit is capped", outbound.GenerationPrompt{MaxTokens: 2000}, 1200, 0.7},
		{"budget below limit kept", outbound.GenerationPrompt{MaxTokens: 800}, 800, 0.7},
		{"missing budget uses limit", outbound.GenerationPrompt{}, 1200, 0.7},
		{"prompt temperature wins", outbound.GenerationPrompt{MaxTokens: 800, Temperature: 0.2}, 800, 0.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			maxTokens, temperature := c.requestParams(tt.prompt)
			assert.Equal(t, tt.wantMax, maxTokens)
			assert.Equal(t, tt.wantTemp, temperature)
		})
	}
}

func TestClient_RequestParams_NoConfiguredLimit(t *testing.T) {
	c := &Client{}
	maxTokens, temperature := c.requestParams(outbound.GenerationPrompt{MaxTokens: 1500, Temperature: 0.7})
	assert.Equal(t, 1500, maxTokens)
	assert.Equal(t, float32(0.7), temperature)
}
