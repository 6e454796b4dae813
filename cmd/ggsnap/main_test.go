package main

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string, c color.NRGBA) {
	t.Helper()
	img := imaging.New(10, 10, c)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, imaging.Save(img, path))
}

func TestRunCompare(t *testing.T) {
	dir := t.TempDir()
	red := filepath.Join(dir, "red.png")
	blue := filepath.Join(dir, "blue.png")
	writePNG(t, red, color.NRGBA{R: 255, A: 255})
	writePNG(t, blue, color.NRGBA{B: 255, A: 255})

	var out bytes.Buffer
	require.NoError(t, runCompare([]string{red, red}, &out))
	assert.Contains(t, out.String(), "0 of 100 pixels differ")

	diff := filepath.Join(dir, "diff.png")
	out.Reset()
	err := runCompare([]string{"-diff", diff, red, blue}, &out)
	assert.ErrorIs(t, err, errMismatch)
	assert.FileExists(t, diff)

	assert.Error(t, runCompare([]string{red}, &out))
}

func TestRunDiffDir(t *testing.T) {
	ref, act := t.TempDir(), t.TempDir()
	writePNG(t, filepath.Join(ref, "a", "same.png"), color.NRGBA{G: 255, A: 255})
	writePNG(t, filepath.Join(act, "a", "same.png"), color.NRGBA{G: 255, A: 255})
	writePNG(t, filepath.Join(ref, "changed.png"), color.NRGBA{R: 255, A: 255})
	writePNG(t, filepath.Join(act, "changed.png"), color.NRGBA{B: 255, A: 255})

	var out bytes.Buffer
	err := runDiffDir([]string{"-j", "2", ref, act}, &out)
	assert.ErrorIs(t, err, errMismatch)
	assert.Contains(t, out.String(), "changed.png: 100 of 100 pixels differ")
	assert.Contains(t, out.String(), "2 compared, 1 differ")

	require.NoError(t, os.Remove(filepath.Join(ref, "changed.png")))
	out.Reset()
	require.NoError(t, runDiffDir([]string{ref, act}, &out))
}

func TestRunMatrix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
title:
  small: Suspendisse aliquet.
  large: Mauris risus lacus.
location:
  small: Location.
`), 0o644))

	var out bytes.Buffer
	require.NoError(t, runMatrix([]string{path}, &out))
	assert.Equal(t,
		"000__small__large\tlocation=Location.\ttitle=Mauris risus lacus.\n"+
			"001__small__small\tlocation=Location.\ttitle=Suspendisse aliquet.\n",
		out.String())
}

func TestRunResolve(t *testing.T) {
	base := filepath.Join(t.TempDir(), "Reference")
	writePNG(t, filepath.Join(base+"Pad", "TestCell", "cell@2x.png"), color.NRGBA{A: 255})
	t.Setenv("SNAPSHOT_CONFIG", "")

	var out bytes.Buffer
	require.NoError(t, runResolve([]string{"-width", "400", "-base", base, "TestCell/cell@2x", "missing"}, &out))
	assert.Contains(t, out.String(), "class:    6Plus\n")
	assert.Contains(t, out.String(), "suffixes: 6Plus 5 6 Pad\n")
	assert.Contains(t, out.String(), filepath.Join(base+"Pad", "TestCell", "cell@2x.png"))
	assert.Contains(t, out.String(), "missing: not found\n")
}

func TestRunDemo(t *testing.T) {
	output := filepath.Join(t.TempDir(), "demo.png")

	var out bytes.Buffer
	require.NoError(t, runDemo([]string{"-width", "40", "-height", "20", "-scale", "1", "-output", output}, &out))

	img, err := imaging.Open(output)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 60, 40), img.Bounds())
}

func TestRunPixel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "red.png")
	writePNG(t, path, color.NRGBA{R: 255, A: 255})

	var out bytes.Buffer
	require.NoError(t, runPixel([]string{path, "3", "4"}, &out))
	assert.Equal(t, "3,4 #ff0000ff\n", out.String())

	assert.Error(t, runPixel([]string{path, "10", "0"}, &out), "outside the image")
	assert.Error(t, runPixel([]string{path, "x", "0"}, &out))
	assert.Error(t, runPixel([]string{path}, &out))
}

func TestRunDemo_SubjectPixels(t *testing.T) {
	output := filepath.Join(t.TempDir(), "demo.png")

	var out bytes.Buffer
	require.NoError(t, runDemo([]string{"-width", "40", "-height", "20", "-scale", "1", "-output", output}, &out))
	assert.Contains(t, out.String(), "(60x40)")

	out.Reset()
	require.NoError(t, runPixel([]string{output, "0", "0"}, &out))
	assert.Equal(t, "0,0 #e6e6e6ff\n", out.String(), "safety area")
}
