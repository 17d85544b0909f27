package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhalbert/cratestow/internal/model"
)

// P1: scaling every linear dimension (and weight by the cube of the scale
// factor) leaves pack_rate and space_utilization unchanged.
func TestProperty_ScaleInvariance(t *testing.T) {
	base := model.Container{Length: 589, Height: 239, Width: 235, MaxWeight: 1000}
	baseCargo := []model.CargoSpec{
		{Name: "A", Length: 589, Height: 239, Width: 235, Weight: 500, Quantity: 1},
	}

	baseResult, err := Pack(baseCargo, base, Options{}, 0)
	require.NoError(t, err)

	scaled := model.Container{Length: base.Length * 2, Height: base.Height * 2, Width: base.Width * 2, MaxWeight: base.MaxWeight * 8}
	scaledCargo := []model.CargoSpec{
		{Name: "A", Length: baseCargo[0].Length * 2, Height: baseCargo[0].Height * 2, Width: baseCargo[0].Width * 2, Weight: baseCargo[0].Weight * 8, Quantity: 1},
	}

	scaledResult, err := Pack(scaledCargo, scaled, Options{}, 0)
	require.NoError(t, err)

	assert.InDelta(t, baseResult.Stats.PackRate, scaledResult.Stats.PackRate, 1e-9)
	assert.InDelta(t, baseResult.Stats.SpaceUtilization, scaledResult.Stats.SpaceUtilization, 1e-9)
}

// P2: disabling aggregation never increases packed_count for an input where
// aggregation would otherwise apply.
func TestProperty_DisablingAggregationNeverIncreasesPackedCount(t *testing.T) {
	container := model.ContainerPresets["40HC"]
	cargo := []model.CargoSpec{
		{Name: "A", Length: 100, Height: 100, Width: 100, Weight: 1, Quantity: 500},
	}

	withAgg, err := Pack(cargo, container, Options{}, 0)
	require.NoError(t, err)

	withoutAgg, err := Pack(cargo, container, Options{DisableAggregation: true}, 0)
	require.NoError(t, err)

	assert.LessOrEqual(t, withoutAgg.Stats.PackedCount, withAgg.Stats.PackedCount)
}

// P3: permuting CargoSpec entries (while keeping each family's internal
// order) produces byte-for-byte identical output.
func TestProperty_OrderIndependenceOfCargoEntries(t *testing.T) {
	container := model.ContainerPresets["40HC"]
	a := model.CargoSpec{Name: "A", Length: 300, Height: 200, Width: 150, Weight: 50, Quantity: 3}
	b := model.CargoSpec{Name: "B", Length: 250, Height: 150, Width: 100, Weight: 20, Quantity: 4}

	resultAB, err := Pack([]model.CargoSpec{a, b}, container, Options{}, 0)
	require.NoError(t, err)

	resultBA, err := Pack([]model.CargoSpec{b, a}, container, Options{}, 0)
	require.NoError(t, err)

	assert.Equal(t, resultAB, resultBA)
}

// I7: repeated runs over the same input are byte-for-byte identical.
func TestProperty_Determinism(t *testing.T) {
	container := model.ContainerPresets["40HC"]
	cargo := []model.CargoSpec{
		{Name: "A", Length: 300, Height: 200, Width: 150, Weight: 50, Quantity: 10, AllowRotate: true},
	}

	first, err := Pack(cargo, container, Options{}, 0)
	require.NoError(t, err)
	second, err := Pack(cargo, container, Options{}, 0)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
