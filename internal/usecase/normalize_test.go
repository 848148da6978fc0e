package usecase

import (
	"testing"

	"github.com/recipeview/backend/internal/domain"
)

func TestNormalizeIngredientName(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "hyphens become spaces and punctuation is stripped",
			input: "All-Purpose Flour!",
			want:  "all purpose flour",
		},
		{
			name:  "collapses runs of whitespace",
			input: "extra   virgin\tolive  oil",
			want:  "extra virgin olive oil",
		},
		{
			name:  "trims surrounding whitespace",
			input: "  fresh basil  ",
			want:  "fresh basil",
		},
		{
			name:  "lowercases",
			input: "Parmesan Cheese",
			want:  "parmesan cheese",
		},
		{
			name:  "keeps digits and underscores",
			input: "2% milk_whole",
			want:  "2 milk_whole",
		},
		{
			name:  "keeps accented letters",
			input: "Jalapeño Peppers!",
			want:  "jalapeño peppers",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeIngredientName(tc.input)
			if got != tc.want {
				t.Errorf("NormalizeIngredientName(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalizeIngredientName_Idempotent(t *testing.T) {
	inputs := []string{"All-Purpose Flour!", "  Sun-Dried  Tomatoes ", "salt"}

	for _, input := range inputs {
		once := NormalizeIngredientName(input)
		twice := NormalizeIngredientName(once)
		if once != twice {
			t.Errorf("normalizing %q is not a fixed point: %q != %q", input, once, twice)
		}
	}
}

func TestBuildIngredientIndex(t *testing.T) {
	t.Run("maps normalized names to original text", func(t *testing.T) {
		ingredients := []domain.ExtendedIngredient{
			{Name: "All-Purpose Flour", Original: "2 cups all-purpose flour"},
			{Name: "salt", Original: "1 tsp salt"},
		}

		index := BuildIngredientIndex(ingredients)

		if len(index) != 2 {
			t.Fatalf("len(index) = %d, want 2", len(index))
		}
		if index["all purpose flour"] != "2 cups all-purpose flour" {
			t.Errorf("index[\"all purpose flour\"] = %q, want original flour text", index["all purpose flour"])
		}
		if index["salt"] != "1 tsp salt" {
			t.Errorf("index[\"salt\"] = %q, want %q", index["salt"], "1 tsp salt")
		}
	})

	t.Run("colliding normalized names keep the later original", func(t *testing.T) {
		ingredients := []domain.ExtendedIngredient{
			{Name: "green-onion", Original: "2 green onions, sliced"},
			{Name: "Green Onion!", Original: "1 bunch green onions"},
		}

		index := BuildIngredientIndex(ingredients)

		if len(index) != 1 {
			t.Fatalf("len(index) = %d, want 1 after collision", len(index))
		}
		if index["green onion"] != "1 bunch green onions" {
			t.Errorf("index[\"green onion\"] = %q, want the later entry", index["green onion"])
		}
	})

	t.Run("empty ingredient list yields empty index", func(t *testing.T) {
		index := BuildIngredientIndex(nil)
		if len(index) != 0 {
			t.Errorf("len(index) = %d, want 0", len(index))
		}
	})
}
