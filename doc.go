// Package ggsnap provides the drawing primitives behind the snapshot test
// harness: a non-premultiplied RGBA [Pixmap], a point-based [Canvas] that
// snaps geometry to the device pixel grid, float [RGBA] colors and [Dash]
// patterns with symmetric phase calculation ([DashPhase]).
//
// The harness itself lives in the sub-packages:
//   - ui: a small retained view tree, layout, rendering and a cooperative run loop
//   - snapshot: sizing policies, the decorated container, reference resolution,
//     verification and the parameter matrix
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Geometry is expressed in points; a [Canvas] multiplies by its device scale
// to obtain pixels.
package ggsnap
