package domain

// NutritionFacts maps the fixed keys Calories, Protein and Fat to a value
// string that is either a bare number or number+"g". Entries are only present
// for facts actually found in the recipe summary.
type NutritionFacts map[string]string

// Fixed NutritionFacts keys.
const (
	FactCalories = "Calories"
	FactProtein  = "Protein"
	FactFat      = "Fat"
)

// CostEstimate is the model-estimated total nutrition and cost for a recipe,
// already formatted for display: TotalCost and PricePerServing carry a "$"
// prefix and two decimals, Protein and Fat a "g" suffix.
type CostEstimate struct {
	Calories        string `json:"calories"`
	Protein         string `json:"protein"`
	Fat             string `json:"fat"`
	TotalCost       string `json:"totalCost"`
	PricePerServing string `json:"pricePerServing"`
}

// StepAmountMap maps a step number (as a string, exactly as the model keys it)
// to the ingredients used in that step with an approximate amount. Steps with
// no inferred usage are simply absent.
type StepAmountMap map[string]map[string]string

// Sections of the rendered page that can fail independently.
const (
	SectionCost   = "cost"
	SectionSteps  = "steps"
	SectionHealth = "health"
)

// SectionErrors maps a page section to the human-readable message explaining
// why that section has no data. Unaffected sections render normally.
type SectionErrors map[string]string

// RecipeView bundles everything the presentation layer renders for one fetch:
// the recipe snapshot plus every derived fact, with per-section failures
// isolated in Errors.
type RecipeView struct {
	Recipe           *Recipe           `json:"recipe"`
	Nutrition        NutritionFacts    `json:"nutrition,omitempty"`
	Cost             *CostEstimate     `json:"cost,omitempty"`
	Equipment        []string          `json:"equipment"`
	StepAmounts      StepAmountMap     `json:"stepAmounts,omitempty"`
	HealthAnalysis   string            `json:"healthAnalysis,omitempty"`
	IngredientLookup map[string]string `json:"ingredientLookup,omitempty"`
	Errors           SectionErrors     `json:"errors,omitempty"`
}
