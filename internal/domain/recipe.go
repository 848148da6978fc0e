package domain

// Recipe is the record returned by the recipe-extraction API for a source URL.
// It is treated as a read-only snapshot: every derived fact is computed from it,
// nothing mutates it.
type Recipe struct {
	Title               string               `json:"title"`
	Image               string               `json:"image"`
	SourceURL           string               `json:"sourceUrl,omitempty"`
	ReadyInMinutes      int                  `json:"readyInMinutes"`
	Servings            int                  `json:"servings"`
	PricePerServing     float64              `json:"pricePerServing"`
	Summary             string               `json:"summary"`
	ExtendedIngredients []ExtendedIngredient `json:"extendedIngredients"`
	Instructions        []InstructionGroup   `json:"analyzedInstructions"`
}

// ExtendedIngredient carries both the canonical ingredient name and the full
// original quantity+ingredient phrase from the source recipe. The original
// string is preserved verbatim for display; only the name is ever normalized.
type ExtendedIngredient struct {
	Name     string `json:"name"`
	Original string `json:"original"`
}

// InstructionGroup is a named collection of ordered steps (e.g. "Prep", "Cook").
type InstructionGroup struct {
	Name  string `json:"name"`
	Steps []Step `json:"steps"`
}

// Step is a single instruction step. Numbers are 1-based but not guaranteed
// contiguous or unique across groups; order of appearance is authoritative.
type Step struct {
	Number      int        `json:"number"`
	Step        string     `json:"step"`
	Ingredients []NamedRef `json:"ingredients,omitempty"`
	Equipment   []NamedRef `json:"equipment,omitempty"`
}

// NamedRef is a step-scoped reference to an ingredient or a piece of equipment.
type NamedRef struct {
	Name string `json:"name"`
}

// ServingsOrDefault returns the recipe's serving count, substituting 1 when
// the field is absent from the source data.
func (r *Recipe) ServingsOrDefault() int {
	if r.Servings <= 0 {
		return 1
	}
	return r.Servings
}
