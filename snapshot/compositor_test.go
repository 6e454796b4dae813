package snapshot

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggsnap"
	"github.com/gogpu/ggsnap/ui"
)

func clearView(name string, size ui.Size) *ui.View {
	v := ui.New(name)
	v.Measure = func(*ui.View, ui.Size) ui.Size { return size }
	return v
}

func TestCompose_Layout(t *testing.T) {
	subject := clearView("subject", ui.Size{W: 20, H: 20})
	comp, err := Compose(subject, ui.Size{W: 20, H: 20}, ggsnap.Blue, ui.Layout{}, 1)
	require.NoError(t, err)
	defer comp.Release()

	assert.Equal(t, ui.Size{W: 40, H: 40}, comp.Size)
	assert.Equal(t, ui.Rect{W: 40, H: 40}, comp.Container.Frame())
	assert.Equal(t, ui.Rect{X: 10, Y: 10, W: 20, H: 20}, subject.Frame())
	assert.Same(t, comp.Container, subject.Parent())
}

func TestCompose_Paints(t *testing.T) {
	subject := clearView("subject", ui.Size{W: 20, H: 20})
	comp, err := Compose(subject, ui.Size{W: 20, H: 20}, ggsnap.Blue, ui.Layout{}, 1)
	require.NoError(t, err)
	defer comp.Release()

	img, err := ui.Renderer{Scale: 1}.Capture(comp.Container)
	require.NoError(t, err)
	require.Equal(t, 40, img.Bounds().Dx())

	at := func(x, y int) color.NRGBA {
		return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	}
	assert.Equal(t, color.NRGBA{R: 230, G: 230, B: 230, A: 255}, at(0, 0), "safety area")
	assert.Equal(t, color.NRGBA{B: 255, A: 255}, at(20, 20), "background behind subject")

	guide := at(10, 0)
	assert.Greater(t, guide.R, guide.G, "vertical guideline along the alignment edge")
	guide = at(0, 30)
	assert.Greater(t, guide.R, guide.G, "horizontal guideline along the alignment edge")
}

func TestCompose_GuidelinesFollowAlignmentInsets(t *testing.T) {
	subject := clearView("subject", ui.Size{W: 20, H: 20})
	subject.AlignmentInsets = ui.Insets{Left: 4}
	comp, err := Compose(subject, ui.Size{W: 20, H: 20}, ggsnap.White, ui.Layout{}, 1)
	require.NoError(t, err)
	defer comp.Release()

	img, err := ui.Renderer{Scale: 1}.Capture(comp.Container)
	require.NoError(t, err)
	c := color.NRGBAModel.Convert(img.At(14, 2)).(color.NRGBA)
	assert.Greater(t, c.R, c.G)
	c = color.NRGBAModel.Convert(img.At(10, 2)).(color.NRGBA)
	assert.Equal(t, c.R, c.G, "no guideline at the unaligned bounds")
}

func TestCompose_RejectsRowCell(t *testing.T) {
	_, err := Compose(ui.NewRowCell("cell"), ui.Size{W: 320, H: 44}, ggsnap.White, ui.Layout{}, 2)
	assert.ErrorIs(t, err, ErrUnwrappedRowCell)
	assert.ErrorIs(t, err, ErrUsage)
}

func TestCompose_AcceptsRowHost(t *testing.T) {
	cell := ui.NewRowCell("cell")
	cell.Measure = func(_ *ui.View, b ui.Size) ui.Size { return ui.Size{W: b.W, H: 44} }
	host := ui.WrapRow(cell)

	comp, err := Compose(host.View, ui.Size{W: 320, H: 44}, ggsnap.White, ui.Layout{}, 2)
	require.NoError(t, err)
	defer comp.Release()
	assert.Equal(t, ui.Rect{W: 320, H: 44}, cell.Frame())
}

func TestComposition_Release(t *testing.T) {
	parent := ui.New("parent")
	before, after := ui.New("before"), ui.New("after")
	subject := clearView("subject", ui.Size{W: 20, H: 20})
	parent.AddChild(before)
	parent.AddChild(subject)
	parent.AddChild(after)
	subject.SetFrame(ui.Rect{X: 5, Y: 6, W: 7, H: 8})

	comp, err := Compose(subject, ui.Size{W: 20, H: 20}, ggsnap.White, ui.Layout{}, 2)
	require.NoError(t, err)
	assert.Equal(t, []*ui.View{before, after}, parent.Children())

	comp.Release()
	assert.Same(t, parent, subject.Parent())
	assert.Equal(t, 1, subject.IndexInParent())
	assert.Equal(t, ui.Rect{X: 5, Y: 6, W: 7, H: 8}, subject.Frame())
	assert.Empty(t, comp.Container.Children())

	// A second Release must not move the subject again.
	parent.AddChild(subject)
	comp.Release()
	assert.Equal(t, 2, subject.IndexInParent())
}

func TestComposition_ReleaseKeepsLayoutClean(t *testing.T) {
	parent := ui.New("parent")
	parent.Arrange = func(*ui.View) {}
	subject := clearView("subject", ui.Size{W: 20, H: 20})
	parent.AddChild(subject)
	subject.SetFrame(ui.Rect{X: 5, Y: 6, W: 20, H: 20})
	parent.LayoutIfNeeded()
	require.False(t, parent.NeedsLayout())
	require.False(t, subject.NeedsLayout())

	comp, err := Compose(subject, ui.Size{W: 20, H: 20}, ggsnap.White, ui.Layout{}, 2)
	require.NoError(t, err)
	require.True(t, parent.NeedsLayout())

	comp.Release()
	assert.False(t, parent.NeedsLayout())
	assert.False(t, subject.NeedsLayout())
	assert.Equal(t, ui.Rect{X: 5, Y: 6, W: 20, H: 20}, subject.Frame())
}

func TestComposition_ReleaseResizedSubjectNeedsLayout(t *testing.T) {
	parent := ui.New("parent")
	parent.Arrange = func(*ui.View) {}
	subject := clearView("subject", ui.Size{W: 20, H: 20})
	parent.AddChild(subject)
	subject.SetFrame(ui.Rect{W: 7, H: 8})
	parent.LayoutIfNeeded()

	comp, err := Compose(subject, ui.Size{W: 20, H: 20}, ggsnap.White, ui.Layout{}, 2)
	require.NoError(t, err)

	comp.Release()
	assert.False(t, parent.NeedsLayout())
	assert.True(t, subject.NeedsLayout())
}

func TestComposition_ReleaseOrphan(t *testing.T) {
	subject := clearView("subject", ui.Size{W: 20, H: 20})
	comp, err := Compose(subject, ui.Size{W: 20, H: 20}, ggsnap.White, ui.Layout{}, 2)
	require.NoError(t, err)

	comp.Release()
	assert.Nil(t, subject.Parent())
	assert.Equal(t, ui.Rect{}, subject.Frame())

	var nilComp *Composition
	nilComp.Release()
}
