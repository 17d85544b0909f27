package model

import "math"

// Placement is an Item committed to a position inside the container
// (spec.md §3). Coordinates are stored to one-decimal precision.
type Placement struct {
	Name   string  `json:"name"`
	Length float64 `json:"l"`
	Height float64 `json:"h"`
	Width  float64 `json:"w"`
	Weight float64 `json:"wt"`

	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`

	IsAggregate       bool `json:"is_agg"`
	AggregationFactor int  `json:"agg_count"`

	StackLayer int `json:"stack_layer"`
	StackLimit int `json:"stack_limit"`

	OrigLength float64 `json:"orig_l"`
	OrigHeight float64 `json:"orig_h"`
	OrigWidth  float64 `json:"orig_w"`

	family FamilyKey
}

// Family returns the placement's family key, used by the stack-layer
// predicate to find same-product placements below a candidate point.
func (p Placement) Family() FamilyKey { return p.family }

// Top returns the y-coordinate of the placement's upper face.
func (p Placement) Top() float64 { return p.Y + p.Height }

// Volume returns the placement's effective (possibly aggregated) volume.
func (p Placement) Volume() float64 {
	return p.Length * p.Height * p.Width
}

// CenterX and CenterZ return the horizontal center of the placement's
// footprint, used by the Statistician's center-of-gravity computation.
func (p Placement) CenterX() float64 { return p.X + p.Length/2 }
func (p Placement) CenterZ() float64 { return p.Z + p.Width/2 }

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// NewPlacement builds a Placement from an Item at a given corner and
// stack-layer index, rounding coordinates to one decimal (spec.md §4.4
// Commit).
func NewPlacement(it Item, x, y, z float64, stackLayer int) Placement {
	return Placement{
		Name:              it.Name,
		Length:            it.Length,
		Height:            it.Height,
		Width:             it.Width,
		Weight:            it.Weight,
		X:                 round1(x),
		Y:                 round1(y),
		Z:                 round1(z),
		IsAggregate:       it.IsAggregate,
		AggregationFactor: it.AggregationFactor,
		StackLayer:        stackLayer,
		StackLimit:        it.StackLimit,
		OrigLength:        it.OrigLength,
		OrigHeight:        it.OrigHeight,
		OrigWidth:         it.OrigWidth,
		family:            it.Family,
	}
}

// ExtremePoint is a candidate corner at which a future item's minimum corner
// may be placed (spec.md §3, Glossary).
type ExtremePoint struct {
	X, Y, Z float64
}

// Dominates reports whether ep componentwise dominates other: ep >= other on
// every axis with at least one strict inequality (spec.md §4.4, Glossary).
func (ep ExtremePoint) Dominates(other ExtremePoint) bool {
	return ep.X >= other.X && ep.Y >= other.Y && ep.Z >= other.Z &&
		(ep.X > other.X || ep.Y > other.Y || ep.Z > other.Z)
}
