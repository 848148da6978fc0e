package usecase

import (
	"fmt"
	"strings"

	"github.com/recipeview/backend/internal/domain"
)

// promptTemplate pairs a fixed system role with a fixed instruction template.
// Only the interpolated fields vary between invocations, which keeps prompts
// deterministic for a given recipe.
type promptTemplate struct {
	systemRole string
	template   string
}

func (p promptTemplate) render(args ...interface{}) string {
	return fmt.Sprintf(p.template, args...)
}

var costPrompt = promptTemplate{
	systemRole: "You are a nutrition and cost calculator.",
	template: "Given the following ingredients with their quantities: %s, " +
		"calculate the total nutrition facts (calories, protein in grams, fat in grams), " +
		"the total cost (in USD) for the entire recipe, and the price per serving (in USD) " +
		"assuming the recipe yields the provided number of servings (%d). " +
		"Return ONLY a valid JSON object with exactly the keys 'calories', 'protein', 'fat', " +
		"'total_cost', and 'price_per_serving' with no additional text or formatting.",
}

var stepAmountsPrompt = promptTemplate{
	systemRole: "You are a cooking assistant that infers step-level amounts.",
	template: "You are a cooking assistant. I have a recipe with instructions and a list of ingredients. " +
		"The instructions do not specify exactly how much of each ingredient is used in each step. " +
		"Using your best judgment, infer approximate step-by-step ingredient amounts. " +
		"Only list ingredients that actually appear in that step. " +
		"Return a JSON object mapping each step number (as a string) to an object with " +
		"'ingredient name' : 'approximate amount' pairs. " +
		"If an ingredient is not used in a step, do not list it for that step.\n\n" +
		"Instructions:\n%s\n\n" +
		"Ingredients (with total amounts):\n%s\n\n" +
		"Return ONLY valid JSON, no code fences, no extra explanation.",
}

var healthPrompt = promptTemplate{
	systemRole: "You are a health and nutrition expert.",
	template: "You are a health and nutrition expert. I have a recipe with the following ingredients:\n%s\n\n" +
		"And the following instructions:\n%s\n\n" +
		"Please provide an in-depth analysis of the health aspects of this meal. " +
		"Discuss which ingredients are particularly beneficial and why, and which might be less healthy " +
		"or need moderation. Include potential impacts on health, vitamins, minerals, and overall nutritional balance. " +
		"Return your analysis in plain text.",
}

// joinIngredientOriginals produces the semicolon-joined ingredient text used
// by the cost prompt.
func joinIngredientOriginals(ingredients []domain.ExtendedIngredient) string {
	originals := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		originals = append(originals, ing.Original)
	}
	return strings.Join(originals, "; ")
}

// buildInstructionsText flattens every step of every instruction group into
// one "Step {n}: {text}" line per step, in the order the groups list them.
// Step numbers are taken as-is; they are not assumed contiguous or unique.
func buildInstructionsText(groups []domain.InstructionGroup) string {
	var lines []string
	for _, group := range groups {
		for _, step := range group.Steps {
			lines = append(lines, fmt.Sprintf("Step %d: %s", step.Number, step.Step))
		}
	}
	return strings.Join(lines, "\n")
}

// buildIngredientsText lists every ingredient's original phrase, one per line,
// in the order the recipe gives them.
func buildIngredientsText(ingredients []domain.ExtendedIngredient) string {
	lines := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		lines = append(lines, ing.Original)
	}
	return strings.Join(lines, "\n")
}
