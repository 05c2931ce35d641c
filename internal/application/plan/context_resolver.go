package plan

import (
	"sort"
	"strings"

	"github.com/nutriforge/v1/internal/domain/catalog"
	"github.com/nutriforge/v1/internal/ports/inbound"
	"github.com/nutriforge/v1/internal/ports/outbound"
	"go.uber.org/zap"
)

// cuisineByCountry maps ISO 3166-1 alpha-2 country codes to cuisine
// families. Resolution is total: unknown countries fall back to
// "international".
var cuisineByCountry = map[string]string{
	"IN": "indian",
	"US": "american",
	"GB": "british",
	"MX": "mexican",
	"IT": "italian",
	"FR": "french",
	"ES": "spanish",
	"PT": "portuguese",
	"DE": "german",
	"GR": "greek",
	"TR": "turkish",
	"LB": "lebanese",
	"EG": "egyptian",
	"MA": "moroccan",
	"ET": "ethiopian",
	"NG": "west african",
	"JP": "japanese",
	"CN": "chinese",
	"KR": "korean",
	"TH": "thai",
	"VN": "vietnamese",
	"ID": "indonesian",
	"PH": "filipino",
	"PK": "pakistani",
	"BD": "bengali",
	"BR": "brazilian",
	"PE": "peruvian",
	"AR": "argentinian",
}

const fallbackCuisine = "international"

// Candidate caps per experience tier keep the downstream prompt bounded
var experienceCandidateCap = map[string]int{
	"beginner":     24,
	"intermediate": 40,
	"advanced":     60,
}

const defaultCandidateCap = 24

// ResolvedContext is the regional and physical context derived from a user
// profile, consumed by the prompt builder and the exercise resolver.
type ResolvedContext struct {
	Cuisine    string
	Candidates []catalog.Entry
}

// ContextResolver derives cuisine and a filtered exercise candidate list
// from a profile. Resolution is deterministic for identical inputs, which
// the cache fingerprinting relies on.
type ContextResolver struct {
	catalog outbound.ExerciseCatalog
	logger  *zap.Logger
}

// NewContextResolver creates a context resolver over the exercise catalog
func NewContextResolver(cat outbound.ExerciseCatalog, logger *zap.Logger) *ContextResolver {
	return &ContextResolver{
		catalog: cat,
		logger:  logger.Named("context-resolver"),
	}
}

// Resolve produces the generation context for a profile
func (r *ContextResolver) Resolve(profile inbound.ProfileSubset) ResolvedContext {
	return ResolvedContext{
		Cuisine:    r.ResolveCuisine(profile.Country),
		Candidates: r.FilterExercises(profile),
	}
}

// ResolveCuisine maps a country code to its cuisine family. Always total;
// there is no error path.
func (r *ContextResolver) ResolveCuisine(country string) string {
	if cuisine, ok := cuisineByCountry[strings.ToUpper(strings.TrimSpace(country))]; ok {
		return cuisine
	}
	return fallbackCuisine
}

// FilterExercises narrows the catalog to entries the user can perform:
// equipment must be available, no target muscle may overlap a stated injury,
// and the total is capped by experience tier. Entries without demonstration
// media are excluded up front so resolution targets always satisfy the
// media invariant. Output order is fixed by catalog ID.
func (r *ContextResolver) FilterExercises(profile inbound.ProfileSubset) []catalog.Entry {
	injuries := make([]string, 0, len(profile.Injuries))
	for _, inj := range profile.Injuries {
		if t := strings.ToLower(strings.TrimSpace(inj)); t != "" {
			injuries = append(injuries, t)
		}
	}

	var candidates []catalog.Entry
	for _, entry := range r.catalog.All() {
		if !entry.HasMedia() {
			continue
		}
		if !entry.MatchesEquipment(profile.Equipment) {
			continue
		}
		if overlapsInjury(entry, injuries) {
			continue
		}
		candidates = append(candidates, entry)
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].ID < candidates[j].ID
	})

	limit := experienceCandidateCap[strings.ToLower(strings.TrimSpace(profile.Experience))]
	if limit == 0 {
		limit = defaultCandidateCap
	}
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	r.logger.Debug("Exercise candidates filtered",
		zap.String("experience", profile.Experience),
		zap.Int("candidates", len(candidates)),
	)
	return candidates
}

// overlapsInjury reports whether any target muscle or the body part of the
// entry matches a stated injury term.
func overlapsInjury(entry catalog.Entry, injuries []string) bool {
	if len(injuries) == 0 {
		return false
	}
	bodyPart := strings.ToLower(entry.BodyPart)
	for _, inj := range injuries {
		if bodyPart != "" && (strings.Contains(bodyPart, inj) || strings.Contains(inj, bodyPart)) {
			return true
		}
		for _, muscle := range entry.TargetMuscles {
			m := strings.ToLower(muscle)
			if strings.Contains(m, inj) || strings.Contains(inj, m) {
				return true
			}
		}
	}
	return false
}
