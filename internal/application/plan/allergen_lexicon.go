// Package plan implements the generation validation-and-correction pipeline:
// context resolution, prompt construction, multi-layer validation of
// provider output, deterministic portion correction, and exercise-identity
// resolution.
package plan

import "strings"

// allergenAliases maps a canonical allergen to ingredient terms that imply
// its presence. Built once at startup; validators expand declared allergies
// through this table instead of re-deriving matches per request.
var allergenAliases = map[string][]string{
	"dairy": {
		"milk", "cheese", "paneer", "butter", "ghee", "cream", "yogurt",
		"yoghurt", "curd", "whey", "casein", "mozzarella", "cheddar",
		"parmesan", "ricotta", "mascarpone", "lassi", "kefir", "custard",
	},
	"peanuts": {
		"peanut", "groundnut", "arachis", "goober",
	},
	"tree nuts": {
		"almond", "cashew", "walnut", "pecan", "pistachio", "hazelnut",
		"macadamia", "brazil nut", "pine nut", "praline",
	},
	"gluten": {
		"wheat", "barley", "rye", "bread", "pasta", "noodle", "seitan",
		"couscous", "bulgur", "semolina", "flour tortilla", "cracker",
	},
	"eggs": {
		"egg", "omelet", "omelette", "mayonnaise", "mayo", "meringue",
		"frittata", "quiche", "aioli",
	},
	"soy": {
		"soy", "soya", "tofu", "tempeh", "edamame", "miso", "natto",
	},
	"shellfish": {
		"shrimp", "prawn", "crab", "lobster", "crayfish", "scallop",
		"oyster", "mussel", "clam", "squid", "octopus", "calamari",
	},
	"fish": {
		"fish", "salmon", "tuna", "cod", "anchovy", "sardine", "mackerel",
		"trout", "tilapia", "halibut", "herring", "bass",
	},
	"sesame": {
		"sesame", "tahini", "halva", "gomashio",
	},
	"mustard": {
		"mustard", "dijon",
	},
	"sulfites": {
		"sulfite", "dried apricot", "dried fruit",
	},
}

// AllergenLexicon expands declared allergens into their known alias sets
type AllergenLexicon struct {
	aliases map[string][]string
}

// NewAllergenLexicon builds the static lexicon
func NewAllergenLexicon() *AllergenLexicon {
	return &AllergenLexicon{aliases: allergenAliases}
}

// Aliases returns the alias set for a declared allergen. The canonical term
// itself is never included; an unknown allergen simply has no aliases, its
// own name still matches directly.
func (l *AllergenLexicon) Aliases(allergen string) []string {
	return l.aliases[normalizeTerm(allergen)]
}

// Canonical returns the lexicon's canonical spelling for a declared
// allergen, trimmed and lowercased.
func (l *AllergenLexicon) Canonical(allergen string) string {
	return normalizeTerm(allergen)
}

func normalizeTerm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
