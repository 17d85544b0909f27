// Package engine implements the deterministic packing pipeline: Normalizer,
// Aggregator, Orderer, Placer, and Statistician (spec.md §2). The package is
// a pure function of its inputs — it never logs, never reads configuration,
// and never recovers a panic; internal/httpapi is the only boundary that
// does (spec.md §9.2).
package engine

import (
	"fmt"

	"github.com/dhalbert/cratestow/internal/model"
)

// ValidationError reports a malformed request: an empty manifest, invalid
// cargo fields, a container with a non-positive dimension or payload, or an
// out-of-range option. Items too large for the container are not a
// validation failure; they are reported as unplaced. It is
// always the caller's fault and is never raised by the Placer once
// validation has passed (spec.md §7.1).
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return "invalid pack request: " + e.Reason }

// Options configures a single Pack call (spec.md §6.1).
type Options struct {
	// MinSupportPct is the minimum percentage (0-100) of an elevated item's
	// bottom face that must rest on coplanar top faces. A nil pointer means
	// "omitted, use the spec default" (model.DefaultMinSupportPct); an
	// explicit 0 is a legal value ("no support required") and is honored
	// as-is, the same omitted-vs-zero distinction CargoSpec.StackLimit
	// carries.
	MinSupportPct *float64

	// DisableAggregation skips the Aggregator stage entirely, useful for
	// the compare command's "aggregation off" scenarios.
	DisableAggregation bool
}

func (o Options) effectiveMinSupport() float64 {
	if o.MinSupportPct == nil {
		return model.DefaultMinSupportPct
	}
	return *o.MinSupportPct
}

// Pack runs the full pipeline over a cargo manifest and a container,
// returning a Result. calcSeconds is copied into Stats.CalcTimeSeconds as
// given; the HTTP handler and CLI pass 0 and overwrite that field with
// time.Since after the call, so the engine itself never reads the wall clock
// (spec.md §9 Design Notes — determinism, I7).
func Pack(cargo []model.CargoSpec, container model.Container, opts Options, calcSeconds float64) (model.Result, error) {
	if err := validate(cargo, container, opts); err != nil {
		return model.Result{}, err
	}

	items := normalize(cargo)

	aggregationRan := !opts.DisableAggregation
	if aggregationRan {
		items = aggregate(items, container)
	}

	ordered := orderForPlacement(items, aggregationRan)

	pl := newPlacer(container, opts.effectiveMinSupport())
	placed, unplaced := pl.place(ordered)

	stats := summarize(container, placed, unplaced, calcSeconds)

	return model.Result{
		Container:       container,
		PackedItems:     placed,
		PackedSummary:   packedSummary(placed),
		UnpackedSummary: unpackedSummary(unplaced),
		Stats:           stats,
	}, nil
}

func validate(cargo []model.CargoSpec, container model.Container, opts Options) error {
	if container.Length <= 0 || container.Height <= 0 || container.Width <= 0 {
		return &ValidationError{Reason: "container dimensions must be positive"}
	}
	if container.MaxWeight <= 0 {
		return &ValidationError{Reason: "container max weight must be positive"}
	}
	if opts.MinSupportPct != nil && (*opts.MinSupportPct < 0 || *opts.MinSupportPct > 100) {
		return &ValidationError{Reason: fmt.Sprintf("min_support_pct %.2f out of range [0,100]", *opts.MinSupportPct)}
	}
	if len(cargo) == 0 {
		return &ValidationError{Reason: "cargo manifest is empty"}
	}
	for i, c := range cargo {
		if err := c.Validate(); err != nil {
			return &ValidationError{Reason: fmt.Sprintf("cargo[%d] %q: %v", i, c.Name, err)}
		}
	}
	return nil
}
