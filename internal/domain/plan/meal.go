package plan

import "strings"

// FoodItem is a single food entry within a meal. Quantities are grams,
// macro fields are grams of the respective macronutrient.
type FoodItem struct {
	Name      string  `json:"name"`
	QuantityG float64 `json:"quantity_g"`
	Calories  float64 `json:"calories"`
	Protein   float64 `json:"protein"`
	Carbs     float64 `json:"carbs"`
	Fat       float64 `json:"fat"`
}

// scaled returns a copy of the item with quantity and all macro fields
// multiplied by factor.
func (f FoodItem) scaled(factor float64) FoodItem {
	return FoodItem{
		Name:      f.Name,
		QuantityG: f.QuantityG * factor,
		Calories:  f.Calories * factor,
		Protein:   f.Protein * factor,
		Carbs:     f.Carbs * factor,
		Fat:       f.Fat * factor,
	}
}

// Meal is an ordered collection of food items with precomputed totals.
// Totals are always derived from the items, never trusted from outside.
type Meal struct {
	Name          string     `json:"name"`
	Items         []FoodItem `json:"items"`
	TotalCalories float64    `json:"total_calories"`
	TotalProtein  float64    `json:"total_protein"`
	TotalCarbs    float64    `json:"total_carbs"`
	TotalFat      float64    `json:"total_fat"`
}

// Recalculate recomputes the meal totals as the sum of its items
func (m *Meal) Recalculate() {
	m.TotalCalories, m.TotalProtein, m.TotalCarbs, m.TotalFat = 0, 0, 0, 0
	for _, it := range m.Items {
		m.TotalCalories += it.Calories
		m.TotalProtein += it.Protein
		m.TotalCarbs += it.Carbs
		m.TotalFat += it.Fat
	}
}

// GeneratedMealPlan is one day of generated meals. It is born from the
// generation client, validated, optionally rescaled by the portion adjuster
// (which produces a new plan), and then frozen.
type GeneratedMealPlan struct {
	PlanDay string `json:"plan_day"`
	Cuisine string `json:"cuisine"`
	Meals   []Meal `json:"meals"`
}

// TotalCalories returns the plan-wide calorie total summed over all meals
func (p *GeneratedMealPlan) TotalCalories() float64 {
	var total float64
	for _, m := range p.Meals {
		total += m.TotalCalories
	}
	return total
}

// TotalProtein returns the plan-wide protein total in grams
func (p *GeneratedMealPlan) TotalProtein() float64 {
	var total float64
	for _, m := range p.Meals {
		total += m.TotalProtein
	}
	return total
}

// ItemCount returns the number of food items across all meals
func (p *GeneratedMealPlan) ItemCount() int {
	n := 0
	for _, m := range p.Meals {
		n += len(m.Items)
	}
	return n
}

// UniqueFoodRatio returns unique item names over total items, used as a
// variety signal. An empty plan reports full variety.
func (p *GeneratedMealPlan) UniqueFoodRatio() float64 {
	total := p.ItemCount()
	if total == 0 {
		return 1
	}
	seen := make(map[string]struct{}, total)
	for _, m := range p.Meals {
		for _, it := range m.Items {
			seen[strings.ToLower(strings.TrimSpace(it.Name))] = struct{}{}
		}
	}
	return float64(len(seen)) / float64(total)
}

// Scaled returns a new plan with every item quantity and macro multiplied by
// factor and all meal totals recomputed from the scaled items. The receiver
// is never mutated.
func (p *GeneratedMealPlan) Scaled(factor float64) *GeneratedMealPlan {
	out := &GeneratedMealPlan{
		PlanDay: p.PlanDay,
		Cuisine: p.Cuisine,
		Meals:   make([]Meal, len(p.Meals)),
	}
	for i, m := range p.Meals {
		scaled := Meal{
			Name:  m.Name,
			Items: make([]FoodItem, len(m.Items)),
		}
		for j, it := range m.Items {
			scaled.Items[j] = it.scaled(factor)
		}
		scaled.Recalculate()
		out.Meals[i] = scaled
	}
	return out
}
