package ui

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/gogpu/ggsnap"
)

// ErrEmptyView is returned when capturing a view with no visible area.
var ErrEmptyView = errors.New("ui: view has zero size")

// Renderer captures view trees into images.
type Renderer struct {
	// Scale is the number of device pixels per point. Zero means 1.
	Scale float64
}

// Capture paints v and its subtree into a new image sized to v's frame.
func (r Renderer) Capture(v *View) (image.Image, error) {
	pm, err := r.CapturePixmap(v)
	if err != nil {
		return nil, err
	}
	return pm.ToImage(), nil
}

// CapturePixmap is Capture without the final copy into an image.NRGBA.
func (r Renderer) CapturePixmap(v *View) (*ggsnap.Pixmap, error) {
	scale := r.scale()
	w := int(math.Ceil(v.frame.W * scale))
	h := int(math.Ceil(v.frame.H * scale))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %q is %s", ErrEmptyView, v.Name, v.frame.Size())
	}

	pm := ggsnap.NewPixmap(w, h)
	c := ggsnap.NewCanvas(pm, scale)
	c.Translate(-v.frame.X, -v.frame.Y)
	Draw(c, v)
	return pm, nil
}

func (r Renderer) scale() float64 {
	if r.Scale <= 0 {
		return 1
	}
	return r.Scale
}

// Draw paints v at its frame origin: background, Paint, children, then
// Overlay.
func Draw(c *ggsnap.Canvas, v *View) {
	c.Push()
	defer c.Pop()

	c.Translate(v.frame.X, v.frame.Y)
	if !v.Background.IsZero() {
		c.FillRect(0, 0, v.frame.W, v.frame.H, v.Background)
	}
	if v.Paint != nil {
		v.Paint(v, c)
	}
	for _, child := range v.children {
		Draw(c, child)
	}
	if v.Overlay != nil {
		v.Overlay(v, c)
	}
}

// NewImageView returns a view that shows img. Its natural size is the
// image size divided by scale; the image is stretched to the view's bounds.
func NewImageView(name string, img image.Image, scale float64) *View {
	if scale <= 0 {
		scale = 1
	}
	b := img.Bounds()
	natural := Size{W: float64(b.Dx()) / scale, H: float64(b.Dy()) / scale}

	v := New(name)
	v.Measure = func(*View, Size) Size { return natural }
	v.Paint = func(v *View, c *ggsnap.Canvas) {
		c.DrawImage(img, 0, 0, v.frame.W, v.frame.H)
	}
	return v
}
