package engine

import (
	"sort"

	"github.com/dhalbert/cratestow/internal/model"
)

// orderForPlacement applies the two-key stable sort from spec.md §4.3:
// medium-scale items (max dimension in [50,500]) first, then volume
// descending. When aggregation ran, a second stable sort is layered on top
// so super-blocks are attempted before any non-aggregated item.
func orderForPlacement(items []model.Item, aggregationRan bool) []model.Item {
	ordered := make([]model.Item, len(items))
	copy(ordered, items)

	sort.SliceStable(ordered, func(i, j int) bool {
		return primaryAndVolumeLess(ordered[i], ordered[j])
	})

	if aggregationRan {
		sort.SliceStable(ordered, func(i, j int) bool {
			return aggregateFirstLess(ordered[i], ordered[j])
		})
	}

	return ordered
}

// primaryAndVolumeLess implements the descending (primary, volume) key used
// as a sort.SliceStable "less" function, so i sorts before j exactly when i
// should be attempted first.
func primaryAndVolumeLess(a, b model.Item) bool {
	pa, pb := mediumScaleBias(a), mediumScaleBias(b)
	if pa != pb {
		return pa > pb
	}
	return a.Volume() > b.Volume()
}

// mediumScaleBias returns 1 when the item's maximum dimension lies in
// [50,500], else 0 (spec.md §4.3 key 1).
func mediumScaleBias(it model.Item) int {
	m := it.MaxDimension()
	if m >= 50 && m <= 500 {
		return 1
	}
	return 0
}

// aggregateFirstLess orders aggregated items before non-aggregated ones,
// volume descending within each group (spec.md §4.3, aggregation pass).
func aggregateFirstLess(a, b model.Item) bool {
	aa, ab := aggregateBias(a), aggregateBias(b)
	if aa != ab {
		return aa > ab
	}
	return a.Volume() > b.Volume()
}

func aggregateBias(it model.Item) int {
	if it.IsAggregate {
		return 1
	}
	return 0
}
