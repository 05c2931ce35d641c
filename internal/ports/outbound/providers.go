// Package outbound defines the interfaces for outbound ports (secondary/driven
// adapters). These are the capabilities the pipeline consumes from external
// systems: the generative provider, the cache store, and the exercise catalog.
package outbound

import (
	"context"
	"time"

	"github.com/nutriforge/v1/internal/domain/catalog"
	"github.com/nutriforge/v1/internal/domain/plan"
)

// GenerationPrompt is a fully built request for the generative provider:
// structured instructions, the target output schema description, and the
// user-facing request text. MaxTokens is the domain's completion budget and
// Temperature, when non-zero, overrides the provider's configured sampling
// temperature.
type GenerationPrompt struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float32
}

// AIService is the boundary to the generative content provider. The provider
// has broad world knowledge but no guarantee of factual or safety
// correctness; everything it returns must pass validation downstream.
// Implementations must honor context cancellation and carry an explicit
// timeout. Failures surface as errors, never as fallback content.
type AIService interface {
	GenerateMealPlan(ctx context.Context, prompt GenerationPrompt) (*plan.GeneratedMealPlan, error)
	GenerateWorkoutPlan(ctx context.Context, prompt GenerationPrompt) (*plan.GeneratedWorkoutPlan, error)
}

// CacheRepository is the external cache store capability. Consistency is the
// store's own concern; last-writer-wins is acceptable because validated
// results for the same fingerprint are equivalent.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// CacheSource identifies where a generation result came from
type CacheSource string

const (
	SourceFresh     CacheSource = "fresh"
	SourceLocal     CacheSource = "local"
	SourceStore     CacheSource = "store"
	SourceCoalesced CacheSource = "coalesced"
)

// Cached reports whether the source represents a cache hit rather than a
// fresh upstream generation.
func (s CacheSource) Cached() bool {
	return s == SourceLocal || s == SourceStore
}

// GenerationCache deduplicates expensive generation calls. GetOrGenerate
// returns a cached validated result when one exists, coalesces concurrent
// identical fingerprints onto a single upstream call, and caches fresh
// successes all-or-nothing. Generation failures are never cached.
type GenerationCache interface {
	GetOrGenerate(ctx context.Context, key plan.Fingerprint, generate func(context.Context) (interface{}, error)) ([]byte, CacheSource, error)
}

// ExerciseCatalog is the read-only exercise lookup capability
type ExerciseCatalog interface {
	Lookup(id string) (catalog.Entry, error)
	FindByName(name string) (catalog.Entry, bool)
	All() []catalog.Entry
}
