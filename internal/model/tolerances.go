package model

// Tolerance constants used throughout the placement engine. Centralized here
// so the geometry and stacking predicates never carry inline magic numbers.
const (
	// GeomEps is the slack allowed on containment and overlap tests, in the
	// container's length unit.
	GeomEps = 0.01
	// FaceEps is how close two y-values must be to count as the same
	// horizontal plane, used for support and same-layer stacking checks.
	FaceEps = 0.1
	// StackGapEps is the maximum vertical gap between consecutive same-family
	// layers for them to be treated as one contiguous stacked column.
	StackGapEps = 1.0
	// SupportFloorY is the y-value below which an item is considered to be
	// resting on the container floor rather than on another item.
	SupportFloorY = 0.1
	// FootprintStackOverlap is the minimum fraction of the smaller of two
	// xz-footprints that must overlap for one item to count as "below"
	// another for stack-layer purposes.
	FootprintStackOverlap = 0.30

	// DefaultMinSupportPct is the support-ratio default used when a caller
	// does not specify one.
	DefaultMinSupportPct = 75.0
	// DefaultStackLimit is applied to a CargoSpec that does not set one.
	DefaultStackLimit = 10
)
