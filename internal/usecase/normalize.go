package usecase

import (
	"regexp"
	"strings"

	"github.com/recipeview/backend/internal/domain"
)

// Package-level compiled regex patterns for performance
var (
	// Unicode-aware word characters; accented letters in ingredient names
	// must survive normalization.
	punctuationRegex    = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	multipleSpacesRegex = regexp.MustCompile(`\s+`)
)

// NormalizeIngredientName canonicalizes an ingredient name for matching.
// Hyphens become spaces, punctuation is stripped, whitespace is collapsed,
// and the result is lowercased. Idempotent; used only as a lookup key,
// never displayed.
func NormalizeIngredientName(name string) string {
	result := strings.ReplaceAll(name, "-", " ")
	result = punctuationRegex.ReplaceAllString(result, "")
	result = multipleSpacesRegex.ReplaceAllString(result, " ")
	return strings.ToLower(strings.TrimSpace(result))
}

// BuildIngredientIndex maps the normalized name of each extended ingredient to
// its original display string. When two names normalize to the same key the
// later entry wins; step-amount matching depends on whichever entry survives,
// so this is deliberately not deduplicated.
func BuildIngredientIndex(ingredients []domain.ExtendedIngredient) map[string]string {
	index := make(map[string]string, len(ingredients))
	for _, ing := range ingredients {
		index[NormalizeIngredientName(ing.Name)] = ing.Original
	}
	return index
}
