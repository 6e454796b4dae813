package snapshot

import (
	"fmt"

	"github.com/gogpu/ggsnap/ui"
)

// Fit is a symbolic sizing request applied to a subject before capture.
// The set of fits is closed: Natural, ScreenWidth, ScreenWidthMinusChrome
// and Explicit.
type Fit interface {
	fit() // sealed marker
}

// Natural uses the subject's own compressed size in both axes.
type Natural struct{}

func (Natural) fit() {}

func (Natural) String() string { return "natural" }

// ScreenWidth fixes the width to the device's short edge and leaves the
// height natural.
type ScreenWidth struct{}

func (ScreenWidth) fit() {}

func (ScreenWidth) String() string { return "screen-width" }

// ScreenWidthMinusChrome fixes the width to the device's short edge and the
// height to the long edge minus the reserved status/navigation chrome.
type ScreenWidthMinusChrome struct{}

func (ScreenWidthMinusChrome) fit() {}

func (ScreenWidthMinusChrome) String() string { return "screen-width-minus-chrome" }

// Explicit requests a concrete size. A zero component is natural in that
// axis.
type Explicit struct {
	W, H float64
}

func (Explicit) fit() {}

func (e Explicit) String() string { return fmt.Sprintf("%gx%g", e.W, e.H) }

// DeviceMetrics describe the rendering surface the snapshots model.
type DeviceMetrics struct {
	// Width and Height of the usable area, in points.
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`

	// ChromeHeight is the height reserved by status and navigation bars.
	ChromeHeight float64 `toml:"chrome_height"`

	// Scale is the number of device pixels per point.
	Scale float64 `toml:"scale"`
}

// DefaultDevice is a 375×667 point portrait phone at 2x with 64 points of chrome.
var DefaultDevice = DeviceMetrics{Width: 375, Height: 667, ChromeHeight: 64, Scale: 2}

// ShortEdge returns the smaller of width and height.
func (m DeviceMetrics) ShortEdge() float64 {
	return min(m.Width, m.Height)
}

// LongEdge returns the larger of width and height.
func (m DeviceMetrics) LongEdge() float64 {
	return max(m.Width, m.Height)
}

// Resolve maps a fit to a concrete size constraint for the given device.
// The short edge is always treated as the width, modelling portrait
// orientation regardless of how the metrics are oriented. A nil fit is
// Natural.
func Resolve(f Fit, m DeviceMetrics) ui.Size {
	switch f := f.(type) {
	case ScreenWidth:
		return ui.Size{W: m.ShortEdge()}
	case ScreenWidthMinusChrome:
		return ui.Size{W: m.ShortEdge(), H: max(m.LongEdge()-m.ChromeHeight, 0)}
	case Explicit:
		return ui.Size{W: f.W, H: f.H}
	default:
		return ui.Size{}
	}
}

// fitted overrides the constrained axes of natural with the constraint.
func fitted(natural, constraint ui.Size) ui.Size {
	if constraint.W > 0 {
		natural.W = constraint.W
	}
	if constraint.H > 0 {
		natural.H = constraint.H
	}
	return natural
}
