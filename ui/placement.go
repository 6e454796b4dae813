package ui

// Placement records where a view sits in the tree so it can be put back
// after being borrowed by another parent.
type Placement struct {
	view        *View
	parent      *View
	index       int
	frame       Rect
	needsLayout bool
	parentDirty bool
}

// SavePlacement captures v's parent, index, frame and the layout state of
// v and its parent.
func (v *View) SavePlacement() Placement {
	p := Placement{
		view:        v,
		parent:      v.parent,
		index:       v.IndexInParent(),
		frame:       v.frame,
		needsLayout: v.needsLayout,
	}
	if v.parent != nil {
		p.parentDirty = v.parent.needsLayout
	}
	return p
}

// Parent returns the saved parent, or nil.
func (p Placement) Parent() *View {
	return p.parent
}

// Restore reinserts the view at its saved parent and index, or detaches it
// if it had none, then restores its frame and both layout flags. The view
// stays marked for layout when its size differs from the saved one, since
// its children were arranged for the other size.
func (p Placement) Restore() {
	v := p.view
	if v == nil {
		return
	}
	if p.parent != nil {
		p.parent.InsertChild(v, p.index)
		p.parent.needsLayout = p.parentDirty
	} else {
		v.RemoveFromParent()
	}
	resized := v.frame.Size() != p.frame.Size()
	v.frame = p.frame
	v.needsLayout = p.needsLayout || resized
}
