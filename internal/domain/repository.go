package domain

import "context"

// RecipeExtractor defines the interface for the recipe-extraction collaborator:
// given a recipe page URL it returns the structured Recipe or signals a fetch
// failure.
type RecipeExtractor interface {
	ExtractRecipe(ctx context.Context, recipeURL string) (*Recipe, error)
}

// ChatCompleter defines the interface for the language-model collaborator:
// given a system role and a user prompt it returns the raw completion text.
type ChatCompleter interface {
	Complete(ctx context.Context, systemRole, userPrompt string) (string, error)
}
