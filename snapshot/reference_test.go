package snapshot

import (
	"image"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketSuffix(t *testing.T) {
	tests := []struct {
		width float64
		want  string
	}{
		{300, "5"},
		{320, "5"},
		{350, "6"},
		{375, "6"},
		{400, "6Plus"},
		{414, "6Plus"},
		{768, "Pad"},
		{900, "Pad"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BucketSuffix(tt.width), "BucketSuffix(%v)", tt.width)
	}
}

func TestOrderSuffixes(t *testing.T) {
	tests := []struct {
		width float64
		want  []string
	}{
		{300, []string{"5", "6", "6Plus", "Pad"}},
		{350, []string{"6", "5", "6Plus", "Pad"}},
		{400, []string{"6Plus", "5", "6", "Pad"}},
		{900, []string{"Pad", "5", "6", "6Plus"}},
	}

	for _, tt := range tests {
		in := DefaultSuffixes()
		got := OrderSuffixes(in, tt.width)
		assert.Equal(t, tt.want, got, "OrderSuffixes(%v)", tt.width)
		assert.Equal(t, DefaultSuffixes(), in, "input must not be reordered")
	}

	custom := []string{"Phone", "Tablet"}
	assert.Equal(t, custom, OrderSuffixes(custom, 375))
}

func TestSuffixCache(t *testing.T) {
	var c SuffixCache
	calls := 0
	compute := func() []string {
		calls++
		return []string{"6", "5"}
	}

	first := c.Get(compute)
	second := c.Get(func() []string { return []string{"Pad"} })
	assert.Equal(t, []string{"6", "5"}, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)

	first[0] = "mutated"
	assert.Equal(t, []string{"6", "5"}, c.Get(compute))
}

func TestProcessSuffixes(t *testing.T) {
	assert.Same(t, ProcessSuffixes(), ProcessSuffixes())
}

func TestResolveDirectory(t *testing.T) {
	base := filepath.Join(t.TempDir(), "Reference")
	store := FileStore{}
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))

	_, ok := ResolveDirectory(store, base, DefaultSuffixes(), "TestCell/cell")
	assert.False(t, ok)

	require.NoError(t, store.Save(SuffixDir(base, "6Plus"), "TestCell/cell", img))
	require.NoError(t, store.Save(SuffixDir(base, "Pad"), "TestCell/cell", img))

	dir, ok := ResolveDirectory(store, base, []string{"6", "Pad", "5", "6Plus"}, "TestCell/cell")
	require.True(t, ok)
	assert.Equal(t, base+"Pad", dir)

	dir, ok = ResolveDirectory(store, base, []string{"6Plus", "Pad"}, "TestCell/cell")
	require.True(t, ok)
	assert.Equal(t, base+"6Plus", dir)
}
