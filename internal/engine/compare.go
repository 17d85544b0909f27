package engine

import (
	"fmt"

	"github.com/dhalbert/cratestow/internal/model"
)

// ComparisonScenario names a set of Options to run the same manifest and
// container through, so the CLI's "compare" subcommand can put results
// side by side (spec.md §9.4; generalized from the teacher's cut-settings
// comparator to support-ratio and aggregation knobs).
type ComparisonScenario struct {
	Name string
	Opts Options
}

// ComparisonResult holds the packing Result for a single scenario alongside
// the fields a comparison table cares about most.
type ComparisonResult struct {
	Scenario         ComparisonScenario
	Result           model.Result
	PackedCount      int
	UnpackedCount    int
	SpaceUtilization float64
	CogOffset        float64
}

// CompareScenarios packs the same cargo manifest and container under each
// scenario's Options and returns the results in scenario order. A scenario
// that fails validation is skipped rather than aborting the whole
// comparison, since validation failures are a property of the manifest, not
// of any one scenario.
func CompareScenarios(scenarios []ComparisonScenario, cargo []model.CargoSpec, container model.Container, calcSeconds float64) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		result, err := Pack(cargo, container, scenario.Opts, calcSeconds)
		if err != nil {
			continue
		}

		results = append(results, ComparisonResult{
			Scenario:         scenario,
			Result:           result,
			PackedCount:      result.Stats.PackedCount,
			UnpackedCount:    result.Stats.UnpackedCount,
			SpaceUtilization: result.Stats.SpaceUtilization,
			CogOffset:        result.Stats.CogOffset,
		})
	}

	return results
}

// BuildDefaultScenarios generates the "what-if" scenario set the compare
// command shows by default: the base Options, one scenario for each standard
// support threshold (100/90/75/50) that differs from the base's, and an
// aggregation-off variant of the base scenario
// (spec.md §9.4). It is deliberately NOT a search over the Options space —
// cratestow's engine is a fixed heuristic, not a solver (spec.md §1 Non-goals).
func BuildDefaultScenarios(base Options) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{Name: "Current Settings", Opts: base},
	}

	baseSupport := base.effectiveMinSupport()
	for _, pct := range []float64{100, 90, 75, 50} {
		if pct == baseSupport {
			continue
		}
		alt := base
		alt.MinSupportPct = &pct
		scenarios = append(scenarios, ComparisonScenario{
			Name: fmt.Sprintf("Support %.0f%%", pct),
			Opts: alt,
		})
	}

	if !base.DisableAggregation {
		noAgg := base
		noAgg.DisableAggregation = true
		scenarios = append(scenarios, ComparisonScenario{
			Name: "Aggregation Off",
			Opts: noAgg,
		})
	}

	return scenarios
}
