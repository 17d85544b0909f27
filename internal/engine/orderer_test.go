package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dhalbert/cratestow/internal/model"
)

func itemWithDims(name string, l, h, w float64) model.Item {
	return model.Item{Name: name, Length: l, Height: h, Width: w, AggregationFactor: 1}
}

func TestOrderForPlacementPrefersMediumScaleThenVolume(t *testing.T) {
	small := itemWithDims("small", 10, 10, 10)       // max dim 10, outside [50,500]
	medium := itemWithDims("medium", 100, 100, 100)  // max dim 100, inside [50,500]
	huge := itemWithDims("huge", 1000, 1000, 1000)   // max dim 1000, outside [50,500]

	ordered := orderForPlacement([]model.Item{small, huge, medium}, false)

	assert.Equal(t, "medium", ordered[0].Name)
	// huge has larger volume than small, but neither is medium-scale; huge still
	// sorts before small by the volume tiebreak.
	assert.Equal(t, "huge", ordered[1].Name)
	assert.Equal(t, "small", ordered[2].Name)
}

func TestOrderForPlacementIsStableWithinEqualKeys(t *testing.T) {
	a := itemWithDims("a", 600, 600, 600)
	b := itemWithDims("b", 600, 600, 600)

	ordered := orderForPlacement([]model.Item{a, b}, false)

	assert.Equal(t, "a", ordered[0].Name)
	assert.Equal(t, "b", ordered[1].Name)
}

func TestOrderForPlacementPutsAggregatesFirstWhenAggregationRan(t *testing.T) {
	plain := itemWithDims("plain", 600, 600, 600)
	agg := itemWithDims("agg", 10, 10, 10)
	agg.IsAggregate = true

	ordered := orderForPlacement([]model.Item{plain, agg}, true)

	assert.Equal(t, "agg", ordered[0].Name)
	assert.Equal(t, "plain", ordered[1].Name)
}

func TestOrderForPlacementDoesNotMutateInput(t *testing.T) {
	items := []model.Item{itemWithDims("a", 1, 1, 1), itemWithDims("b", 2, 2, 2)}
	_ = orderForPlacement(items, false)

	assert.Equal(t, "a", items[0].Name)
	assert.Equal(t, "b", items[1].Name)
}
