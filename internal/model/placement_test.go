package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPlacement_RoundsToOneDecimal(t *testing.T) {
	it := Item{Name: "A", Length: 10, Height: 10, Width: 10, Weight: 5}
	p := NewPlacement(it, 1.23456, 0, 0, 1)
	assert.Equal(t, 1.2, p.X)
}

func TestExtremePoint_Dominates(t *testing.T) {
	a := ExtremePoint{X: 5, Y: 5, Z: 5}
	b := ExtremePoint{X: 3, Y: 5, Z: 5}
	equal := ExtremePoint{X: 5, Y: 5, Z: 5}

	assert.True(t, a.Dominates(b))
	assert.False(t, b.Dominates(a))
	assert.False(t, a.Dominates(equal), "equal points must not dominate each other")
}

func TestPlacement_CenterAndTop(t *testing.T) {
	it := Item{Length: 10, Height: 4, Width: 6}
	p := NewPlacement(it, 0, 0, 0, 1)
	assert.Equal(t, 5.0, p.CenterX())
	assert.Equal(t, 3.0, p.CenterZ())
	assert.Equal(t, 4.0, p.Top())
}
