package engine

import (
	"fmt"
	"sort"

	"github.com/dhalbert/cratestow/internal/model"
)

// invariantViolation is raised (via panic) when a predicate that should be
// impossible fires — a programmer error per spec.md §7.3, not a normal
// outcome. It is recovered only at the outermost system boundary
// (internal/httpapi), never inside the engine or its tests.
type invariantViolation struct {
	msg string
}

func (e invariantViolation) Error() string { return e.msg }

func assertInvariant(ok bool, format string, args ...any) {
	if !ok {
		panic(invariantViolation{msg: fmt.Sprintf(format, args...)})
	}
}

// placer is the sole owner of the placement list, the extreme-point
// frontier, and the running payload weight (spec.md §3 Ownership). All
// feasibility predicates below are read-only over this state.
type placer struct {
	container  model.Container
	minSupport float64 // fraction, e.g. 0.75

	frontier    []model.ExtremePoint
	placements  []model.Placement
	totalWeight float64
}

func newPlacer(container model.Container, minSupportPct float64) *placer {
	return &placer{
		container:  container,
		minSupport: minSupportPct / 100.0,
		frontier:   []model.ExtremePoint{{X: 0, Y: 0, Z: 0}},
	}
}

// place runs the full pipeline's Placer stage over already-ordered items,
// returning which were committed and which were left unplaced
// (spec.md §4.4).
func (p *placer) place(items []model.Item) (placed []model.Placement, unplaced []model.Item) {
	for _, it := range items {
		if pl, ok := p.tryPlace(it); ok {
			placed = append(placed, pl)
		} else {
			unplaced = append(unplaced, it)
		}
	}
	return placed, unplaced
}

// tryPlace attempts the primary sweep in the item's current orientation,
// then — if that fails and rotation is allowed — a rotated sweep
// (spec.md §4.4 steps 1-4).
func (p *placer) tryPlace(it model.Item) (model.Placement, bool) {
	if p.totalWeight+it.Weight > p.container.MaxWeight {
		return model.Placement{}, false
	}

	if pl, ok := p.attempt(it); ok {
		return pl, true
	}

	if it.AllowRotate {
		if pl, ok := p.attempt(it.Rotated()); ok {
			return pl, true
		}
	}

	return model.Placement{}, false
}

// attempt sweeps the current frontier in (y asc, x asc, z asc) order and
// commits at the first point where every feasibility predicate holds.
func (p *placer) attempt(it model.Item) (model.Placement, bool) {
	for _, ep := range p.frontier {
		if !p.fits(ep, it) {
			continue
		}
		if !p.supported(ep, it) {
			continue
		}
		layer := p.stackLayer(ep, it)
		if !stackLimitHolds(it.StackLimit, layer) {
			continue
		}
		return p.commit(it, ep, layer), true
	}
	return model.Placement{}, false
}

// fits combines the containment and non-overlap predicates (spec.md §4.5).
func (p *placer) fits(ep model.ExtremePoint, it model.Item) bool {
	return p.containment(ep, it) && p.nonOverlap(ep, it)
}

// containment checks the candidate box lies inside the container, tolerance
// model.GeomEps (spec.md §4.5).
func (p *placer) containment(ep model.ExtremePoint, it model.Item) bool {
	return ep.X+it.Length <= p.container.Length+model.GeomEps &&
		ep.Y+it.Height <= p.container.Height+model.GeomEps &&
		ep.Z+it.Width <= p.container.Width+model.GeomEps
}

// nonOverlap checks the candidate box against every existing placement: two
// axis-aligned boxes are disjoint iff at least one of the six separation
// tests holds (spec.md §4.5).
func (p *placer) nonOverlap(ep model.ExtremePoint, it model.Item) bool {
	for _, pl := range p.placements {
		separated := ep.X+it.Length <= pl.X+model.GeomEps ||
			ep.X >= pl.X+pl.Length-model.GeomEps ||
			ep.Y+it.Height <= pl.Y+model.GeomEps ||
			ep.Y >= pl.Y+pl.Height-model.GeomEps ||
			ep.Z+it.Width <= pl.Z+model.GeomEps ||
			ep.Z >= pl.Z+pl.Width-model.GeomEps
		if !separated {
			return false
		}
	}
	return true
}

// supported implements the support-ratio predicate (spec.md §4.5). An item
// resting on the floor (ep.Y below model.SupportFloorY) is always supported;
// otherwise the fraction of its bottom face covered by coplanar top faces
// must reach p.minSupport.
func (p *placer) supported(ep model.ExtremePoint, it model.Item) bool {
	if ep.Y < model.SupportFloorY {
		return true
	}

	bottomArea := it.Length * it.Width
	if bottomArea <= 0 {
		return false
	}

	var supportArea float64
	for _, pl := range p.placements {
		if absDiff(pl.Top(), ep.Y) >= model.FaceEps {
			continue
		}
		supportArea += overlap1D(ep.X, ep.X+it.Length, pl.X, pl.X+pl.Length) *
			overlap1D(ep.Z, ep.Z+it.Width, pl.Z, pl.Z+pl.Width)
	}

	return supportArea/bottomArea >= p.minSupport
}

// below returns the placements that count as "below" it at ep for
// stacking purposes: same family, top at or below ep.Y (tolerance
// model.FaceEps), and an xz-footprint overlap exceeding
// model.FootprintStackOverlap of the smaller footprint — sorted with the
// highest top first (spec.md §4.5).
func (p *placer) below(ep model.ExtremePoint, it model.Item) []model.Placement {
	footprint := it.Length * it.Width

	var candidates []model.Placement
	for _, pl := range p.placements {
		if pl.Family() != it.Family {
			continue
		}
		if pl.Top() > ep.Y+model.FaceEps {
			continue
		}

		ox := overlap1D(ep.X, ep.X+it.Length, pl.X, pl.X+pl.Length)
		oz := overlap1D(ep.Z, ep.Z+it.Width, pl.Z, pl.Z+pl.Width)
		plFootprint := pl.Length * pl.Width
		smaller := footprint
		if plFootprint < smaller {
			smaller = plFootprint
		}
		if ox*oz > smaller*model.FootprintStackOverlap {
			candidates = append(candidates, pl)
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Top() > candidates[j].Top()
	})
	return candidates
}

// stackLayer computes the 1-based stack-layer index an item would occupy if
// placed at ep, by walking the contiguous same-family column beneath it
// (spec.md §4.5).
func (p *placer) stackLayer(ep model.ExtremePoint, it model.Item) int {
	count := 0
	cb := ep.Y
	for _, b := range p.below(ep, it) {
		if absDiff(b.Top(), cb) < model.StackGapEps {
			count++
			cb = b.Y
		}
	}
	return count + 1
}

// stackLimitHolds implements spec.md §4.5's "limit 0 means always allowed"
// short-circuit, preserved verbatim per spec.md §9 Open Questions.
func stackLimitHolds(limit, layer int) bool {
	if limit <= 0 {
		return true
	}
	return layer <= limit
}

// commit appends a new Placement, updates the running weight, and rebuilds
// the extreme-point frontier (spec.md §4.4 Commit).
func (p *placer) commit(it model.Item, ep model.ExtremePoint, layer int) model.Placement {
	pl := model.NewPlacement(it, ep.X, ep.Y, ep.Z, layer)
	p.placements = append(p.placements, pl)
	p.totalWeight += it.Weight

	p.removePoint(ep)

	successors := []model.ExtremePoint{
		{X: ep.X + it.Length, Y: ep.Y, Z: ep.Z},
		{X: ep.X, Y: ep.Y + it.Height, Z: ep.Z},
		{X: ep.X, Y: ep.Y, Z: ep.Z + it.Width},
	}
	for _, c := range successors {
		if c.X > p.container.Length+model.GeomEps ||
			c.Y > p.container.Height+model.GeomEps ||
			c.Z > p.container.Width+model.GeomEps {
			continue
		}
		p.insertPoint(c)
	}

	p.sortFrontier()
	assertNoDominatedPoints(p.frontier)

	return pl
}

// removePoint drops the first frontier point equal to ep.
func (p *placer) removePoint(ep model.ExtremePoint) {
	for i, e := range p.frontier {
		if e == ep {
			p.frontier = append(p.frontier[:i], p.frontier[i+1:]...)
			return
		}
	}
}

// insertPoint adds c to the frontier unless an existing point dominates it,
// and drops any existing point that c itself dominates (spec.md §4.4 Commit).
func (p *placer) insertPoint(c model.ExtremePoint) {
	for _, e := range p.frontier {
		if e.Dominates(c) {
			return
		}
	}
	kept := p.frontier[:0]
	for _, e := range p.frontier {
		if !c.Dominates(e) {
			kept = append(kept, e)
		}
	}
	p.frontier = append(kept, c)
}

func (p *placer) sortFrontier() {
	sort.Slice(p.frontier, func(i, j int) bool {
		a, b := p.frontier[i], p.frontier[j]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Z < b.Z
	})
}

// assertNoDominatedPoints enforces invariant I8: no frontier point may be
// dominated by another at quiescence.
func assertNoDominatedPoints(frontier []model.ExtremePoint) {
	for i, a := range frontier {
		for j, b := range frontier {
			if i == j {
				continue
			}
			assertInvariant(!b.Dominates(a), "frontier point %+v is dominated by %+v", a, b)
		}
	}
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}

// overlap1D returns the length of overlap between [a0,a1) and [b0,b1), or 0
// if they don't overlap.
func overlap1D(a0, a1, b0, b1 float64) float64 {
	lo := a0
	if b0 > lo {
		lo = b0
	}
	hi := a1
	if b1 < hi {
		hi = b1
	}
	if hi-lo < 0 {
		return 0
	}
	return hi - lo
}
