package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/gogpu/ggsnap"
	"github.com/gogpu/ggsnap/snapshot"
	"github.com/gogpu/ggsnap/ui"
)

// runDemo renders a sample subject inside the snapshot container, the
// same image a verification would record.
func runDemo(args []string, w io.Writer) error {
	flags := flag.NewFlagSet("demo", flag.ContinueOnError)
	width := flags.Float64("width", 200, "subject width in points")
	height := flags.Float64("height", 80, "subject height in points")
	scale := flags.Float64("scale", 2, "device scale")
	output := flags.String("output", "demo.png", "output PNG file")
	if err := flags.Parse(args); err != nil {
		return err
	}

	subject := ui.NewFixed("Demo", ui.Size{W: *width, H: *height}, ggsnap.Transparent)
	subject.AlignmentInsets = ui.UniformInsets(8)
	subject.Paint = func(v *ui.View, c *ggsnap.Canvas) {
		ar := v.AlignmentRect()
		c.FillRect(ar.X, ar.Y, ar.W, ar.H, ggsnap.Hex("#4a90d9"))
		c.FillRect(ar.X+ar.W/4, ar.Y+ar.H/3, ar.W/2, ar.H/3, ggsnap.Hex("#f5a623"))
	}

	size := snapshot.Resolve(snapshot.Explicit{W: *width, H: *height}, snapshot.DefaultDevice)
	comp, err := snapshot.Compose(subject, size, ggsnap.White, ui.Layout{}, *scale)
	if err != nil {
		return err
	}
	defer comp.Release()

	pm, err := ui.Renderer{Scale: *scale}.CapturePixmap(comp.Container)
	if err != nil {
		return err
	}
	if err := pm.SavePNG(*output); err != nil {
		return err
	}
	fmt.Fprintf(w, "demo saved to %s (%dx%d)\n", *output, pm.Width(), pm.Height())
	return nil
}
