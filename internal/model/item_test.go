package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewItemFromCargo(t *testing.T) {
	c := CargoSpec{Name: "A", Length: 100, Height: 50, Width: 40, Weight: 12, AllowRotate: true}
	it := NewItemFromCargo(c)

	assert.Equal(t, "A", it.Name)
	assert.Equal(t, 100.0, it.Length)
	assert.Equal(t, 50.0, it.Height)
	assert.Equal(t, 40.0, it.Width)
	assert.Equal(t, 12.0, it.Weight)
	assert.True(t, it.AllowRotate)
	assert.False(t, it.IsAggregate)
	assert.Equal(t, 1, it.AggregationFactor)
	assert.Equal(t, DefaultStackLimit, it.StackLimit)
	assert.Equal(t, 100.0, it.OrigLength)
}

func TestItem_Rotated(t *testing.T) {
	it := Item{Length: 200, Height: 100, Width: 50, AllowRotate: true}
	r := it.Rotated()

	assert.Equal(t, 50.0, r.Length)
	assert.Equal(t, 100.0, r.Height)
	assert.Equal(t, 200.0, r.Width)
	assert.False(t, r.AllowRotate)
	assert.True(t, it.AllowRotate, "original item must not be mutated")
}

func TestItem_MaxDimension(t *testing.T) {
	it := Item{Length: 10, Height: 80, Width: 30}
	assert.Equal(t, 80.0, it.MaxDimension())
}
