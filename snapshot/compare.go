package snapshot

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Comparator decides whether a captured image matches its reference.
type Comparator interface {
	Compare(reference, actual image.Image, tolerance float64) (Diff, error)
}

// Diff describes the result of a comparison.
type Diff struct {
	// Match is true when the images agree within tolerance.
	Match bool

	ReferenceSize image.Point
	ActualSize    image.Point

	// Pixels is the number of differing pixels; Total the number compared.
	Pixels int
	Total  int

	// Tolerance is the fraction of differing pixels that was allowed.
	Tolerance float64

	// Image highlights differing pixels over a faded reference. It is nil
	// when the sizes differ.
	Image image.Image
}

// SizeMismatch reports whether the images have different dimensions.
func (d Diff) SizeMismatch() bool {
	return d.ReferenceSize != d.ActualSize
}

// Ratio returns the fraction of differing pixels.
func (d Diff) Ratio() float64 {
	if d.Total == 0 {
		return 0
	}
	return float64(d.Pixels) / float64(d.Total)
}

func (d Diff) String() string {
	if d.SizeMismatch() {
		return fmt.Sprintf("size mismatch: reference %dx%d, actual %dx%d",
			d.ReferenceSize.X, d.ReferenceSize.Y, d.ActualSize.X, d.ActualSize.Y)
	}
	return fmt.Sprintf("%d of %d pixels differ (%.2f%%, tolerance %.2f%%)",
		d.Pixels, d.Total, 100*d.Ratio(), 100*d.Tolerance)
}

// highlight marks differing pixels in diff images.
var highlight = color.NRGBA{R: 255, G: 0, B: 255, A: 255}

// PixelComparator compares images pixel by pixel. Tolerance is the
// fraction of pixels that may differ, in [0, 1].
type PixelComparator struct {
	// Threshold is the largest per-channel difference that still counts
	// as equal.
	Threshold uint8
}

// Compare implements Comparator.
func (c PixelComparator) Compare(reference, actual image.Image, tolerance float64) (Diff, error) {
	if reference == nil || actual == nil {
		return Diff{}, fmt.Errorf("snapshot: compare: nil image")
	}
	tolerance = min(max(tolerance, 0), 1)

	ref := imaging.Clone(reference)
	act := imaging.Clone(actual)
	d := Diff{
		ReferenceSize: ref.Bounds().Size(),
		ActualSize:    act.Bounds().Size(),
		Tolerance:     tolerance,
	}
	if d.SizeMismatch() {
		return d, nil
	}

	out := imaging.AdjustBrightness(imaging.Grayscale(ref), 40)
	d.Total = d.ReferenceSize.X * d.ReferenceSize.Y
	for y := 0; y < d.ReferenceSize.Y; y++ {
		for x := 0; x < d.ReferenceSize.X; x++ {
			i := ref.PixOffset(x, y)
			if c.samePixel(ref.Pix[i:i+4], act.Pix[i:i+4]) {
				continue
			}
			d.Pixels++
			out.SetNRGBA(x, y, highlight)
		}
	}
	d.Image = out
	d.Match = d.Ratio() <= tolerance
	return d, nil
}

func (c PixelComparator) samePixel(a, b []uint8) bool {
	// Fully transparent pixels are equal whatever their color channels hold.
	if a[3] == 0 && b[3] == 0 {
		return true
	}
	for k := range 4 {
		if absDiff(a[k], b[k]) > c.Threshold {
			return false
		}
	}
	return true
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
