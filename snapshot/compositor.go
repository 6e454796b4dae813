package snapshot

import (
	"fmt"

	"github.com/gogpu/ggsnap"
	"github.com/gogpu/ggsnap/ui"
)

// SafetyBorder is the padding around the subject, in points.
const SafetyBorder = 10.0

// Dash pattern of the border traced around the subject, in points.
const (
	borderDash = 3.0
	borderSkip = 2.0
)

// Composition is a subject temporarily placed in a decorated container.
// Release puts the subject back where it was.
type Composition struct {
	// Container is the view to capture.
	Container *ui.View
	// Subject is the view being snapshotted.
	Subject *ui.View
	// Size is the container's natural size after layout.
	Size ui.Size

	placement ui.Placement
	released  bool
}

// Compose moves subject into a container of size+2·SafetyBorder that paints
// the safety area, the background behind the subject, guidelines along the
// subject's alignment rectangle and a dashed border around its bounds.
//
// Row cells are rejected with ErrUnwrappedRowCell; wrap them with
// ui.WrapRow first.
func Compose(subject *ui.View, size ui.Size, background ggsnap.RGBA, layout Layouter, scale float64) (*Composition, error) {
	if subject.Kind() == ui.KindRowCell {
		return nil, fmt.Errorf("%w: %q", ErrUnwrappedRowCell, subject.Name)
	}
	if scale <= 0 {
		scale = 1
	}

	c := &Composition{
		Subject:   subject,
		placement: subject.SavePlacement(),
	}

	inner := ui.Rect{X: SafetyBorder, Y: SafetyBorder, W: size.W, H: size.H}
	container := ui.New("SnapshotContainer")
	container.Measure = func(*ui.View, ui.Size) ui.Size {
		return size.Grow(SafetyBorder)
	}
	container.Arrange = func(*ui.View) {
		subject.SetFrame(inner)
	}
	container.Paint = func(v *ui.View, cv *ggsnap.Canvas) {
		b := v.Bounds()
		cv.FillRect(0, 0, b.W, b.H, ggsnap.SafetyGray)
		cv.FillRect(inner.X, inner.Y, inner.W, inner.H, background)

		ar := subject.AlignmentRect().Offset(inner.X, inner.Y)
		cv.HLine(0, b.W, ar.Y, 0, ggsnap.GuideColor)
		cv.HLine(0, b.W, ar.MaxY(), 0, ggsnap.GuideColor)
		cv.VLine(ar.X, 0, b.H, 0, ggsnap.GuideColor)
		cv.VLine(ar.MaxX(), 0, b.H, 0, ggsnap.GuideColor)
	}
	container.Overlay = func(_ *ui.View, cv *ggsnap.Canvas) {
		drawDashedBorder(cv, inner, scale)
	}

	container.AddChild(subject)
	container.SetFrame(ui.RectOf(size.Grow(SafetyBorder)))
	layout.ForceLayout(container)

	c.Container = container
	c.Size = layout.NaturalSize(container, ui.Size{})
	return c, nil
}

// drawDashedBorder traces r with each edge phased on its own length, so
// both ends of every edge look the same.
func drawDashedBorder(cv *ggsnap.Canvas, r ui.Rect, scale float64) {
	h := ggsnap.NewDash(borderDash, borderSkip).WithOffset(ggsnap.DashPhase(r.W, borderDash, borderSkip, scale))
	v := ggsnap.NewDash(borderDash, borderSkip).WithOffset(ggsnap.DashPhase(r.H, borderDash, borderSkip, scale))

	cv.DashedHLine(r.X, r.MaxX(), r.Y, 0, h, ggsnap.BorderColor)
	cv.DashedHLine(r.X, r.MaxX(), r.MaxY(), 0, h, ggsnap.BorderColor)
	cv.DashedVLine(r.X, r.Y, r.MaxY(), 0, v, ggsnap.BorderColor)
	cv.DashedVLine(r.MaxX(), r.Y, r.MaxY(), 0, v, ggsnap.BorderColor)
}

// Release reinserts the subject at its original parent and index, or
// detaches it if it had no parent, and restores its frame and the layout
// state of both views. Calling Release more than once has no effect.
func (c *Composition) Release() {
	if c == nil || c.released {
		return
	}
	c.released = true
	c.placement.Restore()
}
