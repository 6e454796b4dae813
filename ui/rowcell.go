package ui

// NewRowCell returns a view that models a list row. Row cells lay out
// correctly only inside a row host, so they must be wrapped with [WrapRow]
// before being snapshotted.
func NewRowCell(name string) *View {
	v := New(name)
	v.kind = KindRowCell
	return v
}

// RowHost hosts a single row cell inside a one-row list, sizing the cell to
// the host's width and its own natural height. Create it once per cell and
// reuse it for every snapshot of that cell, so selection and highlight
// state survive between captures.
type RowHost struct {
	*View

	list *View
	cell *View
}

// WrapRow returns a host for cell.
func WrapRow(cell *View) *RowHost {
	h := &RowHost{
		View: New("RowHost(" + cell.Name + ")"),
		list: New("List"),
		cell: cell,
	}
	h.kind = KindRowHost
	h.View.Measure = func(_ *View, bounds Size) Size {
		return cell.SizeThatFits(Size{W: bounds.W})
	}
	h.View.Arrange = func(v *View) {
		h.list.SetFrame(v.Bounds())
	}
	h.list.Arrange = func(v *View) {
		w := v.frame.W
		cell.SetFrame(Rect{W: w, H: cell.SizeThatFits(Size{W: w}).H})
	}
	h.View.AddChild(h.list)
	h.list.AddChild(cell)
	return h
}

// Cell returns the wrapped cell.
func (h *RowHost) Cell() *View {
	return h.cell
}

// List returns the hosting list view, e.g. to adjust its background.
func (h *RowHost) List() *View {
	return h.list
}

// Reload lays the row out again after the cell's content changed.
func (h *RowHost) Reload() {
	h.cell.SetNeedsLayout()
	h.list.SetNeedsLayout()
	h.View.SetNeedsLayout()
	h.View.LayoutIfNeeded()
}
