package plan

import (
	"fmt"
	"strings"

	"github.com/hbollon/go-edlib"
	"github.com/nutriforge/v1/internal/domain/catalog"
	domain "github.com/nutriforge/v1/internal/domain/plan"
	"github.com/nutriforge/v1/internal/ports/outbound"
	"go.uber.org/zap"
)

// Similarity scoring weights and acceptance threshold for fuzzy resolution.
// Name similarity dominates, muscle overlap disambiguates, body part breaks
// ties. An overall score at or above the threshold grounds the reference.
const (
	nameWeight         = 0.55
	muscleWeight       = 0.30
	bodyPartWeight     = 0.15
	matchThreshold     = 0.60
	tokenOverlapWeight = 0.4
)

// ExerciseResolver validates every exercise reference in a generated workout
// against the catalog and substitutes the nearest match when a reference
// cannot be grounded directly. The terminal invariant: every exercise in a
// returned plan maps to a catalog entry with demonstration media.
type ExerciseResolver struct {
	catalog outbound.ExerciseCatalog
	logger  *zap.Logger
}

// NewExerciseResolver creates an exercise resolver over the catalog
func NewExerciseResolver(cat outbound.ExerciseCatalog, logger *zap.Logger) *ExerciseResolver {
	return &ExerciseResolver{
		catalog: cat,
		logger:  logger.Named("exercise-resolver"),
	}
}

// Resolve grounds every exercise reference in the plan. Resolution is
// tiered per reference: exact id/name match within the filtered candidates,
// then fuzzy match against the full catalog, then nearest-muscle-group
// substitution. Substitutions are always reported as warnings; references
// that cannot be grounded at all reject the whole plan.
func (r *ExerciseResolver) Resolve(p *domain.GeneratedWorkoutPlan, candidates []catalog.Entry) (*domain.GeneratedWorkoutPlan, domain.ValidationResult) {
	var result domain.ValidationResult

	if len(p.Exercises) == 0 {
		result.Add(domain.NewIssue(
			domain.SeverityCritical, domain.CodeMissingRequiredFields,
			"workout plan contains no exercises",
		))
		return nil, result
	}

	resolved := &domain.GeneratedWorkoutPlan{
		PlanDay:         p.PlanDay,
		WorkoutType:     p.WorkoutType,
		DurationMinutes: p.DurationMinutes,
		WarmupMinutes:   p.WarmupMinutes,
		Exercises:       make([]domain.WorkoutExercise, 0, len(p.Exercises)),
	}

	for _, ex := range p.Exercises {
		entry, tier, score := r.resolveReference(ex, candidates)
		if entry == nil {
			result.Add(domain.NewIssue(
				domain.SeverityCritical, domain.CodeInvalidExercise,
				fmt.Sprintf("exercise %q has no catalog match and no usable substitute", ex.Name),
				"exercise", ex.Name,
			))
			continue
		}

		if tier > 1 {
			severity := domain.SeverityWarning
			code := domain.CodeExerciseSubstituted
			if tier == 3 {
				// Below-threshold substitution: the slot is kept usable but
				// the unresolvable reference itself is a blocking issue.
				result.Add(domain.NewIssue(
					domain.SeverityCritical, domain.CodeInvalidExercise,
					fmt.Sprintf("exercise %q does not match any catalog entry above the similarity threshold", ex.Name),
					"exercise", ex.Name, "best_score", score,
				))
			}
			result.Add(domain.NewIssue(
				severity, code,
				fmt.Sprintf("exercise %q was substituted with catalog entry %q", ex.Name, entry.Name),
				"requested", ex.Name, "substituted", entry.Name, "exercise_id", entry.ID, "score", score,
			))
		}

		resolved.Exercises = append(resolved.Exercises, domain.WorkoutExercise{
			ExerciseID:  entry.ID,
			Name:        entry.Name,
			BodyPart:    entry.BodyPart,
			Muscles:     entry.TargetMuscles,
			Equipment:   entry.Equipment,
			MediaURL:    entry.MediaURL,
			Sets:        ex.Sets,
			Reps:        ex.Reps,
			RestSeconds: ex.RestSeconds,
		})
	}

	if !result.IsValid() {
		r.logger.Warn("Workout resolution produced blocking issues",
			zap.Int("critical_issues", len(result.Errors)),
		)
		return nil, result
	}
	return resolved, result
}

// resolveReference grounds a single reference. Returns the matched entry,
// the tier that produced it (1 exact, 2 fuzzy, 3 nearest-muscle fallback),
// and the similarity score for tiers 2 and 3.
func (r *ExerciseResolver) resolveReference(ex domain.WorkoutExercise, candidates []catalog.Entry) (*catalog.Entry, int, float64) {
	// Tier 1: exact id or name within the filtered candidate list.
	for i := range candidates {
		c := &candidates[i]
		if ex.ExerciseID != "" && c.ID == ex.ExerciseID {
			return c, 1, 1
		}
		if strings.EqualFold(strings.TrimSpace(c.Name), strings.TrimSpace(ex.Name)) {
			return c, 1, 1
		}
	}

	// Tier 2: exact catalog identity through the indexed lookups, then
	// fuzzy match against the full catalog.
	if ex.ExerciseID != "" {
		if entry, err := r.catalog.Lookup(ex.ExerciseID); err == nil && entry.HasMedia() {
			return &entry, 2, 1
		}
	}
	if entry, ok := r.catalog.FindByName(ex.Name); ok && entry.HasMedia() {
		return &entry, 2, 1
	}
	best, bestScore := r.bestMatch(ex, r.catalog.All())
	if best != nil && bestScore >= matchThreshold {
		return best, 2, bestScore
	}

	// Tier 3: nearest muscle group among the user's candidates keeps the
	// plan usable even though the original reference is unresolvable.
	if sub := nearestByMuscle(ex, candidates); sub != nil {
		return sub, 3, bestScore
	}
	if best != nil && best.HasMedia() {
		return best, 3, bestScore
	}
	return nil, 0, bestScore
}

// bestMatch scores every media-carrying catalog entry against the reference
// and returns the highest scorer.
func (r *ExerciseResolver) bestMatch(ex domain.WorkoutExercise, entries []catalog.Entry) (*catalog.Entry, float64) {
	var best *catalog.Entry
	bestScore := -1.0
	for i := range entries {
		entry := &entries[i]
		if !entry.HasMedia() {
			continue
		}
		score := matchScore(ex, *entry)
		if score > bestScore {
			best = entry
			bestScore = score
		}
	}
	return best, bestScore
}

// matchScore is a pure scoring function over name similarity and
// muscle/body-part overlap, unit-testable independent of catalog size.
func matchScore(ex domain.WorkoutExercise, entry catalog.Entry) float64 {
	name := nameSimilarity(ex.Name, entry.Name)

	muscle := jaccard(toSet(ex.Muscles), entry.MuscleSet())

	bodyPart := 0.0
	if ex.BodyPart != "" && strings.EqualFold(strings.TrimSpace(ex.BodyPart), strings.TrimSpace(entry.BodyPart)) {
		bodyPart = 1.0
	}

	// References without muscle metadata are scored on name alone so a bare
	// free-text reference is not penalized for missing fields.
	if len(ex.Muscles) == 0 && ex.BodyPart == "" {
		return name
	}
	return nameWeight*name + muscleWeight*muscle + bodyPartWeight*bodyPart
}

// nameSimilarity blends Jaro-Winkler string distance with word-token
// overlap, so both near-spellings ("push up" / "push-up") and reordered
// names ("press dumbbell shoulder") score high.
func nameSimilarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}

	jw, err := edlib.StringsSimilarity(a, b, edlib.JaroWinkler)
	if err != nil {
		jw = 0
	}
	tokens := jaccard(toSet(strings.Fields(a)), toSet(strings.Fields(b)))

	return (1-tokenOverlapWeight)*float64(jw) + tokenOverlapWeight*tokens
}

// nearestByMuscle picks the candidate sharing the most target muscles with
// the reference; nil when the reference has no muscle metadata or nothing
// overlaps.
func nearestByMuscle(ex domain.WorkoutExercise, candidates []catalog.Entry) *catalog.Entry {
	refMuscles := toSet(ex.Muscles)
	if len(refMuscles) == 0 {
		return nil
	}
	var best *catalog.Entry
	bestOverlap := 0.0
	for i := range candidates {
		c := &candidates[i]
		if !c.HasMedia() {
			continue
		}
		if overlap := jaccard(refMuscles, c.MuscleSet()); overlap > bestOverlap {
			best = c
			bestOverlap = overlap
		}
	}
	return best
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if t := strings.ToLower(strings.TrimSpace(v)); t != "" {
			set[t] = struct{}{}
		}
	}
	return set
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for k := range a {
		if _, ok := b[k]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}
