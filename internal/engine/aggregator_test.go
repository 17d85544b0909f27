package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dhalbert/cratestow/internal/model"
)

func smallCargo(qty int) model.CargoSpec {
	return model.CargoSpec{Name: "tiny", Length: 10, Height: 10, Width: 10, Weight: 1, Quantity: qty}
}

func TestAggregateFormsSuperBlocksForSmallHighCountFamily(t *testing.T) {
	container := model.ContainerPresets["40HC"]
	// One 40HC grid layer of 10x10x10 units holds 120*23 = 2760 of them, so
	// the family needs at least that many to form a full super-block.
	items := normalize([]model.CargoSpec{smallCargo(3000)})

	result := aggregate(items, container)

	var sawAggregate bool
	total := 0
	for _, it := range result {
		if it.IsAggregate {
			sawAggregate = true
			assert.Greater(t, it.AggregationFactor, 1)
			assert.False(t, it.AllowRotate)
		}
		total += it.AggregationFactor
	}
	assert.True(t, sawAggregate)
	assert.Equal(t, 3000, total)
}

func TestAggregateLeavesLargeFamilyUntouched(t *testing.T) {
	container := model.ContainerPresets["40HC"]
	big := model.CargoSpec{Name: "big", Length: 600, Height: 200, Width: 200, Weight: 100, Quantity: 30}
	items := normalize([]model.CargoSpec{big})

	result := aggregate(items, container)

	assert.Len(t, result, 30)
	for _, it := range result {
		assert.False(t, it.IsAggregate)
	}
}

func TestAggregateLeavesSmallGroupBelowThresholdUntouched(t *testing.T) {
	container := model.ContainerPresets["40HC"]
	items := normalize([]model.CargoSpec{smallCargo(5)})

	result := aggregate(items, container)

	assert.Len(t, result, 5)
	for _, it := range result {
		assert.False(t, it.IsAggregate)
	}
}

func TestAggregateSplitsRemainderFromFullBlocks(t *testing.T) {
	container := model.ContainerPresets["40HC"]
	fx := int(container.Length / 10)
	fz := int(container.Width / 10)
	itemsPerLayer := fx * fz
	qty := itemsPerLayer*2 + 3 // two full blocks plus a remainder

	items := normalize([]model.CargoSpec{smallCargo(qty)})
	result := aggregate(items, container)

	var blocks, singles, total int
	for _, it := range result {
		if it.IsAggregate {
			blocks++
		} else {
			singles++
		}
		total += it.AggregationFactor
	}
	assert.Equal(t, 2, blocks)
	assert.Equal(t, 3, singles)
	assert.Equal(t, qty, total)
}
