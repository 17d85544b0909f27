package model

// Stats holds the derived packing statistics the Statistician computes
// (spec.md §4.6, §6.1).
type Stats struct {
	PackedCount       int     `json:"packed_count"`
	UnpackedCount     int     `json:"unpacked_count"`
	PackRate          float64 `json:"pack_rate"`         // percent, one decimal
	SpaceUtilization  float64 `json:"space_utilization"` // percent, one decimal
	ActualWeight      float64 `json:"actual_weight"`
	MaxWeight         float64 `json:"max_weight"`
	WeightUtilization float64 `json:"weight_utilization"` // percent, one decimal
	CalcTimeSeconds   float64 `json:"calc_time"`
	CogOffset         float64 `json:"cog_offset"` // percent, one decimal
}

// Result is the full output of an engine run (spec.md §6.1).
type Result struct {
	Container       Container      `json:"container"`
	PackedItems     []Placement    `json:"packed_items"`
	PackedSummary   map[string]int `json:"packed_summary"`
	UnpackedSummary map[string]int `json:"unpacked_summary"`
	Stats           Stats          `json:"stats"`
}
