package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/disintegration/imaging"

	"github.com/gogpu/ggsnap"
)

// runPixel prints one pixel of an image as non-premultiplied #rrggbbaa.
func runPixel(args []string, w io.Writer) error {
	flags := flag.NewFlagSet("pixel", flag.ContinueOnError)
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 3 {
		return fmt.Errorf("want image, x and y, got %d args", flags.NArg())
	}
	x, err := strconv.Atoi(flags.Arg(1))
	if err != nil {
		return fmt.Errorf("x: %w", err)
	}
	y, err := strconv.Atoi(flags.Arg(2))
	if err != nil {
		return fmt.Errorf("y: %w", err)
	}

	img, err := imaging.Open(flags.Arg(0))
	if err != nil {
		return err
	}
	pm := ggsnap.FromImage(img)
	if x < 0 || y < 0 || x >= pm.Width() || y >= pm.Height() {
		return fmt.Errorf("(%d, %d) outside %dx%d image", x, y, pm.Width(), pm.Height())
	}

	c := pm.GetPixel(x, y).NRGBA()
	fmt.Fprintf(w, "%d,%d #%02x%02x%02x%02x\n", x, y, c.R, c.G, c.B, c.A)
	return nil
}
