package usecase

import (
	"regexp"
	"strings"

	"github.com/recipeview/backend/internal/domain"
)

var (
	// Matches a leading numeric quantity with an optional immediately-following
	// gram marker, e.g. "447", "2.5g"
	nutritionValueRegex = regexp.MustCompile(`(\d+(\.\d+)?)(g)?`)

	// Matches bold-marked spans in the recipe summary
	boldSpanRegex = regexp.MustCompile(`<b>(.*?)</b>`)
)

// ParseNutritionValue extracts the numeric part (plus "g" if present) from a
// free-form nutrition phrase such as "447 calories" or "8g of protein". When
// the phrase contains no number the input is returned unchanged; the caller
// treats that as a display fallback, not an error.
func ParseNutritionValue(text string) string {
	match := nutritionValueRegex.FindStringSubmatch(text)
	if match == nil {
		return text
	}
	number := match[1]
	if match[3] != "" {
		return number + "g"
	}
	return number
}

// ExtractNutritionFacts scans the bold spans of a recipe summary for calorie,
// protein and fat phrases and parses each into a value string. Spans are
// visited in document order and the first span matching a category fills it;
// later matches for an already-filled category are ignored. A summary with no
// matching spans yields an empty map.
func ExtractNutritionFacts(summary string) domain.NutritionFacts {
	facts := domain.NutritionFacts{}
	for _, match := range boldSpanRegex.FindAllStringSubmatch(summary, -1) {
		text := match[1]
		lower := strings.ToLower(text)
		if strings.Contains(lower, "calories") {
			if _, ok := facts[domain.FactCalories]; !ok {
				facts[domain.FactCalories] = ParseNutritionValue(text)
			}
		} else if strings.Contains(lower, "protein") {
			if _, ok := facts[domain.FactProtein]; !ok {
				facts[domain.FactProtein] = ParseNutritionValue(text)
			}
		} else if strings.Contains(lower, "fat") {
			if _, ok := facts[domain.FactFat]; !ok {
				facts[domain.FactFat] = ParseNutritionValue(text)
			}
		}
	}
	return facts
}
