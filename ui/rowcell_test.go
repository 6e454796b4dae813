package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapRow(t *testing.T) {
	cell := NewRowCell("cell")
	cell.Measure = func(_ *View, bounds Size) Size {
		return Size{W: bounds.W, H: 44}
	}
	require.Equal(t, KindRowCell, cell.Kind())

	host := WrapRow(cell)
	assert.Equal(t, KindRowHost, host.Kind())
	assert.Same(t, cell, host.Cell())
	assert.Same(t, host.List(), cell.Parent())
	assert.Same(t, host.View, host.List().Parent())

	natural := Layout{}.NaturalSize(host.View, Size{W: 320})
	assert.Equal(t, Size{W: 320, H: 44}, natural)

	host.SetFrame(RectOf(natural))
	Layout{}.ForceLayout(host.View)
	assert.Equal(t, Rect{W: 320, H: 44}, host.List().Frame())
	assert.Equal(t, Rect{W: 320, H: 44}, cell.Frame())
}

func TestRowHost_Reload(t *testing.T) {
	height := 44.0
	cell := NewRowCell("cell")
	cell.Measure = func(_ *View, bounds Size) Size {
		return Size{W: bounds.W, H: height}
	}
	host := WrapRow(cell)
	host.SetFrame(Rect{W: 200, H: 88})
	Layout{}.ForceLayout(host.View)
	require.Equal(t, 44.0, cell.Frame().H)

	height = 60
	host.Reload()
	assert.Equal(t, Rect{W: 200, H: 60}, cell.Frame())
}
