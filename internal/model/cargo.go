package model

import "fmt"

// CargoSpec is one line of an input manifest: a family of identical boxes
// and how many of them there are (spec.md §3).
//
// StackLimit is a pointer so that an omitted field (defaults to
// DefaultStackLimit) can be told apart from an explicit 0, which spec.md
// §4.5 / §9 Open Questions defines as "always allowed" rather than
// "unstackable" — the same dict.get(key, 10)-vs-explicit-0 distinction the
// source representation carries.
type CargoSpec struct {
	Name        string  `json:"name"`
	Length      float64 `json:"length"`
	Height      float64 `json:"height"`
	Width       float64 `json:"width"`
	Weight      float64 `json:"weight"` // unit weight, kg
	Quantity    int     `json:"quantity"`
	StackLimit  *int    `json:"stack_limit,omitempty"` // nil -> DefaultStackLimit, 0 -> unlimited
	AllowRotate bool    `json:"allow_rotate"`          // permits a 90° length<->width swap
}

// Validate checks the boundary-level constraints spec.md §7.1 assigns to
// CargoSpec: the engine itself is entitled to assume these already hold.
func (c CargoSpec) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("cargo: name is required")
	}
	if c.Length <= 0 || c.Height <= 0 || c.Width <= 0 {
		return fmt.Errorf("cargo %q: dimensions must be positive", c.Name)
	}
	if c.Weight < 0 {
		return fmt.Errorf("cargo %q: weight must not be negative", c.Name)
	}
	if c.Quantity <= 0 {
		return fmt.Errorf("cargo %q: quantity must be positive", c.Name)
	}
	if c.StackLimit != nil && *c.StackLimit < 0 {
		return fmt.Errorf("cargo %q: stack_limit must not be negative", c.Name)
	}
	return nil
}

// EffectiveStackLimit resolves StackLimit to its concrete value: an omitted
// field becomes DefaultStackLimit, an explicit 0 stays 0 ("always allowed").
func (c CargoSpec) EffectiveStackLimit() int {
	if c.StackLimit == nil {
		return DefaultStackLimit
	}
	return *c.StackLimit
}

// FamilyKey is the deterministic identity under which two items count as
// stackable copies of the same product (spec.md §4.1, Glossary).
type FamilyKey string

func newFamilyKey(name string, l, h, w float64) FamilyKey {
	return FamilyKey(fmt.Sprintf("%s|%g|%g|%g", name, l, h, w))
}
