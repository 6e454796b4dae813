// Package ui is a small retained view tree used as the subject of snapshot
// tests. Views have a frame in their parent's coordinates, an ordered list
// of children, an alignment rectangle and optional hooks for measuring,
// arranging and painting. Layout is explicit: frames change only when
// [View.LayoutIfNeeded] (or [Layout.ForceLayout]) runs.
package ui

import (
	"slices"

	"github.com/gogpu/ggsnap"
)

// Kind distinguishes views that need special hosting.
type Kind int

const (
	// KindPlain is an ordinary view.
	KindPlain Kind = iota
	// KindRowCell is a list row that only lays out correctly inside a row host.
	KindRowCell
	// KindRowHost hosts a single row cell, see [WrapRow].
	KindRowHost
)

func (k Kind) String() string {
	switch k {
	case KindRowCell:
		return "row-cell"
	case KindRowHost:
		return "row-host"
	default:
		return "plain"
	}
}

// View is a node in the view tree.
type View struct {
	// Name identifies the view in logs and errors.
	Name string

	// Background fills the view's bounds before anything else is painted.
	// The zero value paints nothing.
	Background ggsnap.RGBA

	// AlignmentInsets carve the alignment rectangle out of the bounds.
	AlignmentInsets Insets

	// Measure returns the size the view wants within bounds, where a zero
	// component of bounds means unconstrained. When nil, children are
	// stacked vertically.
	Measure func(v *View, bounds Size) Size

	// Arrange positions the children once the view's own frame is known.
	// When nil, children are stacked vertically at full width.
	Arrange func(v *View)

	// Paint draws the view's content above its background and below its
	// children, in the view's own coordinates.
	Paint func(v *View, c *ggsnap.Canvas)

	// Overlay draws above the children.
	Overlay func(v *View, c *ggsnap.Canvas)

	// OnMoveToParent is called after the view is inserted into a parent.
	OnMoveToParent func(v *View)

	kind        Kind
	frame       Rect
	parent      *View
	children    []*View
	needsLayout bool
}

// New returns an empty plain view.
func New(name string) *View {
	return &View{Name: name, needsLayout: true}
}

// NewFixed returns a view with a fixed natural size and a background color.
func NewFixed(name string, size Size, bg ggsnap.RGBA) *View {
	v := New(name)
	v.Background = bg
	v.Measure = func(*View, Size) Size { return size }
	return v
}

// Kind returns the view's kind.
func (v *View) Kind() Kind {
	return v.kind
}

// Frame returns the view's frame in its parent's coordinates.
func (v *View) Frame() Rect {
	return v.frame
}

// SetFrame moves and resizes the view. A size change marks the view as
// needing layout.
func (v *View) SetFrame(r Rect) {
	if r.Size() != v.frame.Size() {
		v.needsLayout = true
	}
	v.frame = r
}

// Bounds returns the view's rectangle in its own coordinates.
func (v *View) Bounds() Rect {
	return RectOf(v.frame.Size())
}

// AlignmentRect returns the layout-relevant part of the bounds.
func (v *View) AlignmentRect() Rect {
	return v.Bounds().Inset(v.AlignmentInsets)
}

// Parent returns the view's parent, or nil.
func (v *View) Parent() *View {
	return v.parent
}

// Children returns a copy of the view's children in painting order.
func (v *View) Children() []*View {
	return slices.Clone(v.children)
}

// IndexInParent returns the view's position among its siblings, or -1 when
// it has no parent.
func (v *View) IndexInParent() int {
	if v.parent == nil {
		return -1
	}
	return slices.Index(v.parent.children, v)
}

// AddChild appends c to the children, removing it from any previous parent.
func (v *View) AddChild(c *View) {
	v.InsertChild(c, len(v.children))
}

// InsertChild inserts c at index i, removing it from any previous parent.
// The index is clamped to the valid range.
func (v *View) InsertChild(c *View, i int) {
	c.RemoveFromParent()
	i = min(max(i, 0), len(v.children))
	v.children = slices.Insert(v.children, i, c)
	c.parent = v
	v.needsLayout = true
	if c.OnMoveToParent != nil {
		c.OnMoveToParent(c)
	}
}

// RemoveFromParent detaches the view from its parent.
func (v *View) RemoveFromParent() {
	p := v.parent
	if p == nil {
		return
	}
	if i := slices.Index(p.children, v); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	v.parent = nil
	p.needsLayout = true
}

// SetNeedsLayout marks the view for layout on the next pass.
func (v *View) SetNeedsLayout() {
	v.needsLayout = true
}

// NeedsLayout reports whether the view is waiting for a layout pass.
func (v *View) NeedsLayout() bool {
	return v.needsLayout
}

// SizeThatFits returns the size the view wants within bounds.
func (v *View) SizeThatFits(bounds Size) Size {
	if v.Measure != nil {
		return v.Measure(v, bounds)
	}
	var s Size
	for _, c := range v.children {
		cs := c.SizeThatFits(Size{W: bounds.W})
		s.W = max(s.W, cs.W)
		s.H += cs.H
	}
	return s
}

// LayoutIfNeeded arranges the view if it is marked, then descends into
// its children.
func (v *View) LayoutIfNeeded() {
	if v.needsLayout {
		if v.Arrange != nil {
			v.Arrange(v)
		} else {
			stackVertically(v)
		}
		v.needsLayout = false
	}
	for _, c := range v.children {
		c.LayoutIfNeeded()
	}
}

func stackVertically(v *View) {
	y := 0.0
	w := v.frame.W
	for _, c := range v.children {
		h := c.SizeThatFits(Size{W: w}).H
		c.SetFrame(Rect{Y: y, W: w, H: h})
		y += h
	}
}

// Layout is the default layout collaborator for snapshot verification.
type Layout struct{}

// NaturalSize returns the size v wants within constraint.
func (Layout) NaturalSize(v *View, constraint Size) Size {
	return v.SizeThatFits(constraint)
}

// ForceLayout runs a full layout pass over v's subtree.
func (Layout) ForceLayout(v *View) {
	markAll(v)
	v.LayoutIfNeeded()
}

func markAll(v *View) {
	v.needsLayout = true
	for _, c := range v.children {
		markAll(c)
	}
}
