package model

// Item is the unit the Placer moves: possibly aggregated, possibly rotated,
// always carrying its pre-mutation dimensions for reporting (spec.md §3).
type Item struct {
	Name   string
	Length float64
	Height float64
	Width  float64
	Weight float64

	StackLimit  int
	AllowRotate bool

	Family FamilyKey

	IsAggregate       bool
	AggregationFactor int // number of original units this Item represents

	// Original dimensions, pre-aggregation and pre-rotation, for reporting.
	OrigLength float64
	OrigHeight float64
	OrigWidth  float64
}

// Volume returns the item's current (possibly aggregated) footprint volume.
func (it Item) Volume() float64 {
	return it.Length * it.Height * it.Width
}

// MaxDimension returns the largest of the item's current dimensions, used by
// the Orderer's primary sort key (spec.md §4.3).
func (it Item) MaxDimension() float64 {
	m := it.Length
	if it.Height > m {
		m = it.Height
	}
	if it.Width > m {
		m = it.Width
	}
	return m
}

// Rotated returns a copy of the item with length and width swapped and
// rotation disabled on the copy — the source Item's AllowRotate flag is
// never mutated (spec.md §9 Design Notes, rotation pattern).
func (it Item) Rotated() Item {
	r := it
	r.Length, r.Width = it.Width, it.Length
	r.AllowRotate = false
	return r
}

// NewItemFromCargo builds a single Item from a CargoSpec, before any
// aggregation or rotation (spec.md §4.1).
func NewItemFromCargo(c CargoSpec) Item {
	return Item{
		Name:              c.Name,
		Length:            c.Length,
		Height:            c.Height,
		Width:             c.Width,
		Weight:            c.Weight,
		StackLimit:        c.EffectiveStackLimit(),
		AllowRotate:       c.AllowRotate,
		Family:            newFamilyKey(c.Name, c.Length, c.Height, c.Width),
		IsAggregate:       false,
		AggregationFactor: 1,
		OrigLength:        c.Length,
		OrigHeight:        c.Height,
		OrigWidth:         c.Width,
	}
}
