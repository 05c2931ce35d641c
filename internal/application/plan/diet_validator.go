package plan

import (
	"fmt"
	"math"
	"strings"

	domain "github.com/nutriforge/v1/internal/domain/plan"
	"go.uber.org/zap"
)

// Validation thresholds. Moderate drift triggers portion adjustment,
// extreme drift blocks the plan outright.
const (
	moderateDriftThreshold = 0.10
	extremeDriftThreshold  = 0.30
	lowProteinRatio        = 0.80
	lowVarietyRatio        = 0.60
)

// dietExclusions lists the food-name keywords forbidden per diet type,
// grouped by excluded category.
var dietExclusions = map[domain.DietType]map[string][]string{
	domain.DietVegan: {
		"meat":  meatKeywords,
		"fish":  fishKeywords,
		"dairy": dairyKeywords,
		"egg":   eggKeywords,
		"honey": {"honey"},
	},
	domain.DietVegetarian: {
		"meat": meatKeywords,
		"fish": fishKeywords,
	},
	domain.DietPescatarian: {
		"meat": meatKeywords,
	},
}

var meatKeywords = []string{
	"beef", "pork", "chicken", "lamb", "mutton", "bacon", "ham", "turkey",
	"sausage", "steak", "veal", "duck", "goat", "pepperoni", "salami",
	"meatball", "jerky", "chorizo",
}

var fishKeywords = []string{
	"fish", "salmon", "tuna", "shrimp", "prawn", "crab", "lobster",
	"anchovy", "sardine", "cod", "squid", "oyster", "mussel", "tilapia",
	"mackerel", "calamari",
}

var dairyKeywords = []string{
	"milk", "cheese", "paneer", "butter", "ghee", "cream", "yogurt",
	"yoghurt", "curd", "whey",
}

var eggKeywords = []string{
	"egg", "omelet", "omelette", "mayonnaise", "mayo",
}

// DietValidator runs the safety and accuracy checks over a generated meal
// plan. Every check always runs; issues accumulate into a single
// ValidationResult so the complete picture is reported at once.
type DietValidator struct {
	lexicon *AllergenLexicon
	logger  *zap.Logger
}

// NewDietValidator creates a diet validator backed by the allergen lexicon
func NewDietValidator(lexicon *AllergenLexicon, logger *zap.Logger) *DietValidator {
	return &DietValidator{
		lexicon: lexicon,
		logger:  logger.Named("diet-validator"),
	}
}

// Validate checks a generated meal plan against the user's allergies, diet
// type, and numeric targets. The plan is invalid iff any CRITICAL issue
// exists; warnings and infos are reported alongside for caller-side logging.
func (v *DietValidator) Validate(p *domain.GeneratedMealPlan, target domain.NutritionTarget, prefs domain.DietPreferences) domain.ValidationResult {
	var result domain.ValidationResult

	v.checkAllergens(p, prefs, &result)
	v.checkDietType(p, prefs, &result)
	v.checkCalorieDrift(p, target, &result)
	v.checkCompleteness(p, &result)
	v.checkQuality(p, target, &result)

	if !result.IsValid() {
		v.logger.Warn("Generated meal plan rejected",
			zap.Int("critical_issues", len(result.Errors)),
			zap.Int("warnings", len(result.Warnings)),
		)
	}
	return result
}

// checkAllergens matches every food item name against each declared allergy
// and its lexicon aliases. Every match, direct or through an alias, reports
// the blocking ALLERGEN_DETECTED; alias hits additionally carry an
// ALLERGEN_ALIAS_DETECTED warning naming the alias that fired.
func (v *DietValidator) checkAllergens(p *domain.GeneratedMealPlan, prefs domain.DietPreferences, result *domain.ValidationResult) {
	for _, allergy := range prefs.Allergies {
		canonical := v.lexicon.Canonical(allergy)
		if canonical == "" {
			continue
		}
		aliases := v.lexicon.Aliases(allergy)

		for _, meal := range p.Meals {
			for _, item := range meal.Items {
				name := strings.ToLower(item.Name)
				if containsTerm(name, canonical) {
					result.Add(domain.NewIssue(
						domain.SeverityCritical, domain.CodeAllergenDetected,
						fmt.Sprintf("%q in meal %q contains declared allergen %q", item.Name, meal.Name, canonical),
						"meal", meal.Name, "food", item.Name, "allergen", canonical,
					))
					continue
				}
				for _, alias := range aliases {
					if containsTerm(name, alias) {
						result.Add(domain.NewIssue(
							domain.SeverityCritical, domain.CodeAllergenDetected,
							fmt.Sprintf("%q in meal %q contains %q, a known form of allergen %q", item.Name, meal.Name, alias, canonical),
							"meal", meal.Name, "food", item.Name, "allergen", canonical, "alias", alias,
						))
						result.Add(domain.NewIssue(
							domain.SeverityWarning, domain.CodeAllergenAliasDetected,
							fmt.Sprintf("allergen %q was detected through its form %q", canonical, alias),
							"meal", meal.Name, "food", item.Name, "allergen", canonical, "alias", alias,
						))
						break
					}
				}
			}
		}
	}
}

// checkDietType matches food item names against the keyword lists of every
// category the declared diet type excludes.
func (v *DietValidator) checkDietType(p *domain.GeneratedMealPlan, prefs domain.DietPreferences, result *domain.ValidationResult) {
	exclusions, restricted := dietExclusions[prefs.DietType]
	if !restricted {
		return
	}
	for _, meal := range p.Meals {
		for _, item := range meal.Items {
			name := strings.ToLower(item.Name)
			for category, keywords := range exclusions {
				for _, kw := range keywords {
					if containsTerm(name, kw) {
						result.Add(domain.NewIssue(
							domain.SeverityCritical, domain.CodeDietTypeViolation,
							fmt.Sprintf("%q in meal %q contains %s (%q), excluded for %s diets", item.Name, meal.Name, category, kw, prefs.DietType),
							"meal", meal.Name, "food", item.Name, "category", category, "keyword", kw, "diet_type", string(prefs.DietType),
						))
					}
				}
			}
		}
	}
}

// checkCalorieDrift compares plan calories against the target. Drift above
// 30% blocks; drift between 10% and 30% is a warning that triggers portion
// adjustment downstream.
func (v *DietValidator) checkCalorieDrift(p *domain.GeneratedMealPlan, target domain.NutritionTarget, result *domain.ValidationResult) {
	if target.DailyCalories <= 0 {
		result.Add(domain.NewIssue(
			domain.SeverityCritical, domain.CodeMissingRequiredFields,
			"nutrition target has no daily calorie value",
		))
		return
	}
	actual := p.TotalCalories()
	drift := math.Abs(actual-target.DailyCalories) / target.DailyCalories

	switch {
	case drift > extremeDriftThreshold:
		result.Add(domain.NewIssue(
			domain.SeverityCritical, domain.CodeExtremeCalorieDrift,
			fmt.Sprintf("plan calories %.0f deviate %.0f%% from target %.0f", actual, drift*100, target.DailyCalories),
			"current", actual, "target", target.DailyCalories, "drift", drift,
		))
	case drift > moderateDriftThreshold:
		result.Add(domain.NewIssue(
			domain.SeverityWarning, domain.CodeModerateCalorieDrift,
			fmt.Sprintf("plan calories %.0f deviate %.0f%% from target %.0f, portions will be adjusted", actual, drift*100, target.DailyCalories),
			"current", actual, "target", target.DailyCalories, "drift", drift,
		))
	}
}

// checkCompleteness requires every meal to have items and coherent macro
// fields.
func (v *DietValidator) checkCompleteness(p *domain.GeneratedMealPlan, result *domain.ValidationResult) {
	if len(p.Meals) == 0 {
		result.Add(domain.NewIssue(
			domain.SeverityCritical, domain.CodeMissingRequiredFields,
			"plan contains no meals",
		))
		return
	}
	for _, meal := range p.Meals {
		if len(meal.Items) == 0 {
			result.Add(domain.NewIssue(
				domain.SeverityCritical, domain.CodeMissingRequiredFields,
				fmt.Sprintf("meal %q has no food items", meal.Name),
				"meal", meal.Name,
			))
			continue
		}
		for _, item := range meal.Items {
			if item.Name == "" || item.Calories < 0 || item.QuantityG <= 0 {
				result.Add(domain.NewIssue(
					domain.SeverityCritical, domain.CodeMissingRequiredFields,
					fmt.Sprintf("meal %q has a food item with missing or invalid fields", meal.Name),
					"meal", meal.Name, "food", item.Name,
				))
			}
		}
	}
}

// checkQuality runs the non-blocking nutritional quality heuristics
func (v *DietValidator) checkQuality(p *domain.GeneratedMealPlan, target domain.NutritionTarget, result *domain.ValidationResult) {
	if target.ProteinG > 0 {
		protein := p.TotalProtein()
		if protein < lowProteinRatio*target.ProteinG {
			result.Add(domain.NewIssue(
				domain.SeverityWarning, domain.CodeLowProtein,
				fmt.Sprintf("plan protein %.0fg is below %.0f%% of target %.0fg", protein, lowProteinRatio*100, target.ProteinG),
				"current", protein, "target", target.ProteinG,
			))
		}
	}
	if ratio := p.UniqueFoodRatio(); ratio < lowVarietyRatio {
		result.Add(domain.NewIssue(
			domain.SeverityInfo, domain.CodeLowVariety,
			fmt.Sprintf("only %.0f%% of food items are unique", ratio*100),
			"unique_ratio", ratio,
		))
	}
}

// containsTerm does a case-insensitive substring match; the haystack is
// already lowercased by callers.
func containsTerm(haystack, term string) bool {
	return term != "" && strings.Contains(haystack, term)
}
