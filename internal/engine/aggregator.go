package engine

import (
	"math"

	"github.com/dhalbert/cratestow/internal/model"
)

// smallFamilyThreshold is the group size a family must exceed for the
// "small family" test in aggregate to consider forming super-blocks
// (spec.md §4.2 step 1).
const smallFamilyThreshold = 20

// aggregate groups items by family and, for families whose footprint is
// small relative to the container and whose count exceeds
// smallFamilyThreshold, replaces them with flat super-blocks spanning a grid
// of the footprint (spec.md §4.2). Families that don't qualify pass through
// unchanged. Order of the returned slice is grouping order, not final
// placement order — the Orderer sorts it afterward.
func aggregate(items []model.Item, container model.Container) []model.Item {
	groups := groupByFamily(items)

	var result []model.Item
	for _, g := range groups {
		result = append(result, aggregateGroup(g, container)...)
	}
	return result
}

// groupByFamily partitions items by family key, preserving each family's
// internal order and the order families were first seen.
func groupByFamily(items []model.Item) [][]model.Item {
	index := make(map[model.FamilyKey]int)
	var groups [][]model.Item

	for _, it := range items {
		if i, ok := index[it.Family]; ok {
			groups[i] = append(groups[i], it)
			continue
		}
		index[it.Family] = len(groups)
		groups = append(groups, []model.Item{it})
	}
	return groups
}

// aggregateGroup applies the small-family test and, if it passes, forms as
// many full super-blocks as the grid allows plus an unaggregated remainder.
func aggregateGroup(g []model.Item, container model.Container) []model.Item {
	if len(g) == 0 {
		return nil
	}
	sample := g[0]

	small := sample.Length < container.Length/10 &&
		sample.Height < container.Height/10 &&
		sample.Width < container.Width/10 &&
		len(g) > smallFamilyThreshold

	if !small {
		return g
	}

	fx := int(math.Floor(container.Length / sample.Length))
	fz := int(math.Floor(container.Width / sample.Width))
	itemsPerLayer := fx * fz

	if itemsPerLayer <= 1 {
		return g
	}

	numBlocks := len(g) / itemsPerLayer
	remainder := len(g) % itemsPerLayer

	var result []model.Item
	for i := 0; i < numBlocks; i++ {
		result = append(result, makeSuperBlock(sample, fx, fz, itemsPerLayer))
	}
	for i := 0; i < remainder; i++ {
		item := g[numBlocks*itemsPerLayer+i]
		item.IsAggregate = false
		item.AggregationFactor = 1
		result = append(result, item)
	}
	return result
}

// makeSuperBlock builds a composite Item spanning an fx-by-fz grid of the
// family's unit footprint. Rotation is disabled: an asymmetric super-block
// rotation would change the effective footprint the grid was built around
// (spec.md §4.2 step 4, rationale).
func makeSuperBlock(sample model.Item, fx, fz, itemsPerLayer int) model.Item {
	return model.Item{
		Name:              sample.Name,
		Length:            sample.Length * float64(fx),
		Height:            sample.Height,
		Width:             sample.Width * float64(fz),
		Weight:            sample.Weight * float64(itemsPerLayer),
		StackLimit:        sample.StackLimit,
		AllowRotate:       false,
		Family:            sample.Family,
		IsAggregate:       true,
		AggregationFactor: itemsPerLayer,
		OrigLength:        sample.OrigLength,
		OrigHeight:        sample.OrigHeight,
		OrigWidth:         sample.OrigWidth,
	}
}
