package engine

import (
	"math"

	"github.com/dhalbert/cratestow/internal/model"
)

// summarize reduces the committed placements and unplaced items into the
// Stats and summary maps spec.md §4.6 describes. calcSeconds is threaded in
// by the caller rather than measured here, keeping this function a pure
// reduction over its inputs.
func summarize(container model.Container, placed []model.Placement, unplaced []model.Item, calcSeconds float64) model.Stats {
	packedCount := 0
	actualWeight := 0.0
	packedVolume := 0.0

	for _, pl := range placed {
		units := pl.AggregationFactor
		if units < 1 {
			units = 1
		}
		packedCount += units
		actualWeight += pl.Weight
		packedVolume += pl.Volume()
	}

	unpackedCount := 0
	for _, it := range unplaced {
		units := it.AggregationFactor
		if units < 1 {
			units = 1
		}
		unpackedCount += units
	}

	totalCount := packedCount + unpackedCount
	packRate := 0.0
	if totalCount > 0 {
		packRate = roundPct(float64(packedCount) / float64(totalCount) * 100)
	}

	spaceUtil := 0.0
	if v := container.Volume(); v > 0 {
		spaceUtil = roundPct(packedVolume / v * 100)
	}

	weightUtil := 0.0
	if container.MaxWeight > 0 {
		weightUtil = roundPct(actualWeight / container.MaxWeight * 100)
	}

	return model.Stats{
		PackedCount:       packedCount,
		UnpackedCount:     unpackedCount,
		PackRate:          packRate,
		SpaceUtilization:  spaceUtil,
		ActualWeight:      actualWeight,
		MaxWeight:         container.MaxWeight,
		WeightUtilization: weightUtil,
		CalcTimeSeconds:   calcSeconds,
		CogOffset:         centerOfGravityOffset(container, placed),
	}
}

// centerOfGravityOffset computes the weighted center of gravity's horizontal
// displacement from the container's geometric center, each axis normalized
// to its own half-extent and expressed as a percentage before the two axes
// are combined (spec.md §4.6, ported from
// original_source/toolverse/api/pack.py's run_packing tail). The vertical
// axis is deliberately excluded (spec.md §9 Open Questions).
func centerOfGravityOffset(container model.Container, placed []model.Placement) float64 {
	totalWeight := 0.0
	var wx, wz float64

	for _, pl := range placed {
		w := pl.Weight
		totalWeight += w
		wx += pl.CenterX() * w
		wz += pl.CenterZ() * w
	}

	if totalWeight <= 0 {
		return 0
	}

	cx, cz := wx/totalWeight, wz/totalWeight
	halfL, halfW := container.Length/2, container.Width/2

	var ox, oz float64
	if halfL > 0 {
		ox = math.Abs(cx-halfL) / halfL * 100
	}
	if halfW > 0 {
		oz = math.Abs(cz-halfW) / halfW * 100
	}

	return roundPct(math.Hypot(ox, oz))
}

// roundPct rounds a percentage value to one decimal place (spec.md §4.6,
// §6.1 — pack_rate, space_utilization, weight_utilization, and cog_offset
// are all reported as a percentage, one decimal).
func roundPct(v float64) float64 {
	return math.Round(v*10) / 10
}

// packedSummary and unpackedSummary group placements or unplaced items by
// name, expanding each
// aggregate back into the unit count it represents (spec.md §4.6).
func packedSummary(placed []model.Placement) map[string]int {
	out := make(map[string]int)
	for _, pl := range placed {
		units := pl.AggregationFactor
		if units < 1 {
			units = 1
		}
		out[pl.Name] += units
	}
	return out
}

func unpackedSummary(unplaced []model.Item) map[string]int {
	out := make(map[string]int)
	for _, it := range unplaced {
		units := it.AggregationFactor
		if units < 1 {
			units = 1
		}
		out[it.Name] += units
	}
	return out
}
