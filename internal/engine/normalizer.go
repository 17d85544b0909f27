package engine

import "github.com/dhalbert/cratestow/internal/model"

// normalize expands each CargoSpec by its quantity into individual Items,
// each tagged with its pre-rotation family key (spec.md §4.1).
func normalize(cargo []model.CargoSpec) []model.Item {
	var items []model.Item
	for _, c := range cargo {
		for i := 0; i < c.Quantity; i++ {
			items = append(items, model.NewItemFromCargo(c))
		}
	}
	return items
}
