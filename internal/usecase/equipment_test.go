package usecase

import (
	"reflect"
	"testing"

	"github.com/recipeview/backend/internal/domain"
)

func TestCollectEquipment(t *testing.T) {
	t.Run("deduplicates across steps and sorts", func(t *testing.T) {
		groups := []domain.InstructionGroup{
			{
				Steps: []domain.Step{
					{Number: 1, Equipment: []domain.NamedRef{{Name: "whisk"}, {Name: "bowl"}}},
					{Number: 2, Equipment: []domain.NamedRef{{Name: "frying pan"}, {Name: "whisk"}}},
				},
			},
			{
				Steps: []domain.Step{
					{Number: 3, Equipment: []domain.NamedRef{{Name: "bowl"}}},
				},
			},
		}

		got := CollectEquipment(groups)
		want := []string{"bowl", "frying pan", "whisk"}

		if !reflect.DeepEqual(got, want) {
			t.Errorf("CollectEquipment() = %v, want %v", got, want)
		}
	})

	t.Run("equipment names are case-sensitive", func(t *testing.T) {
		groups := []domain.InstructionGroup{
			{
				Steps: []domain.Step{
					{Number: 1, Equipment: []domain.NamedRef{{Name: "Whisk"}, {Name: "whisk"}}},
				},
			},
		}

		got := CollectEquipment(groups)
		want := []string{"Whisk", "whisk"}

		if !reflect.DeepEqual(got, want) {
			t.Errorf("CollectEquipment() = %v, want %v", got, want)
		}
	})

	t.Run("steps without equipment contribute nothing", func(t *testing.T) {
		groups := []domain.InstructionGroup{
			{Steps: []domain.Step{{Number: 1, Step: "Rest the dough."}}},
		}

		got := CollectEquipment(groups)
		if len(got) != 0 {
			t.Errorf("CollectEquipment() = %v, want empty", got)
		}
	})

	t.Run("zero steps yields empty slice", func(t *testing.T) {
		got := CollectEquipment(nil)
		if got == nil {
			t.Fatal("CollectEquipment() = nil, want empty slice")
		}
		if len(got) != 0 {
			t.Errorf("len = %d, want 0", len(got))
		}
	})
}
