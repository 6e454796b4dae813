package ggsnap

import (
	"image"
	"math"
)

// Canvas draws onto a Pixmap in points. Coordinates are translated by the
// current origin and multiplied by the device scale, then rounded to whole
// pixels, so that edges shared by adjacent shapes never leave seams.
type Canvas struct {
	pm     *Pixmap
	scale  float64
	origin Point
	stack  []Point
}

// NewCanvas creates a canvas drawing onto pm at the given device scale.
// A non-positive scale is treated as 1.
func NewCanvas(pm *Pixmap, scale float64) *Canvas {
	if scale <= 0 {
		scale = 1
	}
	return &Canvas{pm: pm, scale: scale}
}

// Pixmap returns the target pixmap.
func (c *Canvas) Pixmap() *Pixmap {
	return c.pm
}

// Scale returns the device scale (pixels per point).
func (c *Canvas) Scale() float64 {
	return c.scale
}

// Origin returns the current translation in points.
func (c *Canvas) Origin() Point {
	return c.origin
}

// Translate moves the origin by (dx, dy) points.
func (c *Canvas) Translate(dx, dy float64) {
	c.origin = c.origin.Add(Pt(dx, dy))
}

// Push saves the current origin.
func (c *Canvas) Push() {
	c.stack = append(c.stack, c.origin)
}

// Pop restores the origin saved by the matching Push.
func (c *Canvas) Pop() {
	if n := len(c.stack); n > 0 {
		c.origin = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
}

// PixelRect converts a rectangle in points to device pixels.
func (c *Canvas) PixelRect(x, y, w, h float64) image.Rectangle {
	x0 := c.px(c.origin.X + x)
	y0 := c.px(c.origin.Y + y)
	x1 := c.px(c.origin.X + x + w)
	y1 := c.px(c.origin.Y + y + h)
	return image.Rect(x0, y0, x1, y1)
}

func (c *Canvas) px(v float64) int {
	return int(math.Round(v * c.scale))
}

// FillRect fills a rectangle given in points.
func (c *Canvas) FillRect(x, y, w, h float64, col RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	c.pm.FillRect(c.PixelRect(x, y, w, h), col)
}

// HLine strokes a horizontal line from x0 to x1 centered on y.
// Widths thinner than one device pixel are widened to one pixel.
func (c *Canvas) HLine(x0, x1, y, width float64, col RGBA) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	width = c.minWidth(width)
	c.FillRect(x0, y-width/2, x1-x0, width, col)
}

// VLine strokes a vertical line from y0 to y1 centered on x.
func (c *Canvas) VLine(x, y0, y1, width float64, col RGBA) {
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	width = c.minWidth(width)
	c.FillRect(x-width/2, y0, width, y1-y0, col)
}

// DashedHLine strokes a dashed horizontal line. The pattern starts at x0.
func (c *Canvas) DashedHLine(x0, x1, y, width float64, d *Dash, col RGBA) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	for _, s := range d.Segments(x1 - x0) {
		c.HLine(x0+s[0], x0+s[1], y, width, col)
	}
}

// DashedVLine strokes a dashed vertical line. The pattern starts at y0.
func (c *Canvas) DashedVLine(x, y0, y1, width float64, d *Dash, col RGBA) {
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	for _, s := range d.Segments(y1 - y0) {
		c.VLine(x, y0+s[0], y0+s[1], width, col)
	}
}

// DrawImage composites img with its top-left corner at (x, y) points,
// scaling it to w×h points. Images already at device resolution are
// copied without resampling.
func (c *Canvas) DrawImage(img image.Image, x, y, w, h float64) {
	dst := c.PixelRect(x, y, w, h)
	if dst.Size() == img.Bounds().Size() {
		c.pm.DrawImage(img, dst.Min)
		return
	}
	c.pm.DrawImageScaled(img, dst)
}

func (c *Canvas) minWidth(w float64) float64 {
	return math.Max(w, 1/c.scale)
}
