package model

// Container is the immutable rectangular space cargo is loaded into. The
// preset dimensions are in centimetres and MaxWeight is in kilograms; the
// engine itself is unit-agnostic so long as CargoSpec and Container use the
// same units (spec.md §6.2).
type Container struct {
	Label     string  `json:"label"`
	Length    float64 `json:"length"`     // L axis
	Height    float64 `json:"height"`     // H axis (vertical)
	Width     float64 `json:"width"`      // W axis
	MaxWeight float64 `json:"max_weight"` // kg
}

// Volume returns the container's interior volume.
func (c Container) Volume() float64 {
	return c.Length * c.Height * c.Width
}

// ContainerPresets are the three fixed container types spec.md §6.2 requires
// to be exposed verbatim, keyed by their catalog code.
var ContainerPresets = map[string]Container{
	"40HC": {Label: "40HC", Length: 1203, Height: 269, Width: 235, MaxWeight: 28500},
	"40GP": {Label: "40GP", Length: 1203, Height: 239, Width: 235, MaxWeight: 26000},
	"20GP": {Label: "20GP", Length: 589, Height: 239, Width: 235, MaxWeight: 28000},
}

// ContainerPresetKeys returns the preset codes in a stable, documented order.
func ContainerPresetKeys() []string {
	return []string{"40HC", "40GP", "20GP"}
}

// LookupContainer resolves a preset code to its Container. The second return
// value is false for an unknown code — callers at the system boundary (the
// HTTP handler, the CLI) turn that into a validation failure per spec.md §7.1.
func LookupContainer(key string) (Container, bool) {
	c, ok := ContainerPresets[key]
	return c, ok
}
