package ggsnap

import (
	"image"
	"testing"
)

func TestCanvas_PixelRect(t *testing.T) {
	c := NewCanvas(NewPixmap(10, 10), 2)
	c.Translate(1, 0.5)

	got := c.PixelRect(0.25, 0, 1.5, 2)
	want := image.Rect(3, 1, 6, 5)
	if got != want {
		t.Errorf("PixelRect() = %v, want %v", got, want)
	}
}

func TestCanvas_PushPop(t *testing.T) {
	c := NewCanvas(NewPixmap(1, 1), 0)
	if c.Scale() != 1 {
		t.Fatalf("Scale() = %v, want 1 for non-positive input", c.Scale())
	}

	c.Translate(2, 3)
	c.Push()
	c.Translate(5, 5)
	if got := c.Origin(); got != Pt(7, 8) {
		t.Errorf("Origin() = %v, want (7,8)", got)
	}
	c.Pop()
	if got := c.Origin(); got != Pt(2, 3) {
		t.Errorf("Origin() after Pop = %v, want (2,3)", got)
	}
	c.Pop() // unbalanced Pop is ignored
	if got := c.Origin(); got != Pt(2, 3) {
		t.Errorf("Origin() after extra Pop = %v, want (2,3)", got)
	}
}

func TestCanvas_FillRect(t *testing.T) {
	pm := NewPixmap(8, 8)
	c := NewCanvas(pm, 2)
	c.FillRect(1, 1, 2, 2, Red)

	if got := pm.GetPixel(2, 2); got != Red {
		t.Errorf("inside pixel = %v, want red", got)
	}
	if got := pm.GetPixel(5, 5); got != Red {
		t.Errorf("last inside pixel = %v, want red", got)
	}
	if got := pm.GetPixel(6, 6); got != Transparent {
		t.Errorf("outside pixel = %v, want transparent", got)
	}

	c.FillRect(0, 0, 0, 4, Blue)
	if got := pm.GetPixel(0, 0); got != Transparent {
		t.Errorf("empty rect painted %v", got)
	}
}

func TestCanvas_HairlineIsOnePixel(t *testing.T) {
	pm := NewPixmap(10, 10)
	c := NewCanvas(pm, 2)
	c.HLine(0, 5, 2.25, 0, Black)

	painted := 0
	for y := range 10 {
		if pm.GetPixel(0, y) == Black {
			painted++
		}
	}
	if painted != 1 {
		t.Errorf("hairline covers %d rows, want 1", painted)
	}
}

func TestCanvas_DashedHLine(t *testing.T) {
	pm := NewPixmap(20, 1)
	c := NewCanvas(pm, 1)
	c.DashedHLine(0, 20, 0.5, 1, NewDash(3, 2), Black)

	for x := range 20 {
		want := x%5 < 3
		if got := pm.GetPixel(x, 0) == Black; got != want {
			t.Errorf("pixel %d painted = %v, want %v", x, got, want)
		}
	}
}

func TestCanvas_DashedVLine(t *testing.T) {
	pm := NewPixmap(1, 10)
	c := NewCanvas(pm, 1)
	c.DashedVLine(0.5, 10, 0, 1, NewDash(3, 2).WithOffset(1), Black)

	for y := range 10 {
		want := (y+1)%5 < 3
		if got := pm.GetPixel(0, y) == Black; got != want {
			t.Errorf("pixel %d painted = %v, want %v", y, got, want)
		}
	}
}

func TestCanvas_DrawImage(t *testing.T) {
	src := NewPixmap(4, 4)
	src.FillRect(src.Bounds(), Green)

	pm := NewPixmap(8, 8)
	c := NewCanvas(pm, 2)
	c.DrawImage(src.ToImage(), 1, 1, 2, 2)

	if got := pm.GetPixel(2, 2); got != Green {
		t.Errorf("pixel (2,2) = %v, want green", got)
	}
	if got := pm.GetPixel(1, 1); got != Transparent {
		t.Errorf("pixel (1,1) = %v, want transparent", got)
	}
}
