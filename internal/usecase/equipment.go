package usecase

import (
	"sort"

	"github.com/recipeview/backend/internal/domain"
)

// CollectEquipment walks every step of every instruction group and returns the
// union of equipment names as a lexicographically sorted slice. Names are
// compared case-sensitively, exactly as the extraction API reports them.
// A recipe with no steps yields an empty slice.
func CollectEquipment(groups []domain.InstructionGroup) []string {
	seen := make(map[string]struct{})
	for _, group := range groups {
		for _, step := range group.Steps {
			for _, equip := range step.Equipment {
				seen[equip.Name] = struct{}{}
			}
		}
	}

	equipment := make([]string, 0, len(seen))
	for name := range seen {
		equipment = append(equipment, name)
	}
	sort.Strings(equipment)
	return equipment
}
