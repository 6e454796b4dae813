package snapshot

import (
	"errors"
	"image"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingStore struct {
	FileStore
	loads int
	fail  error
}

func (s *countingStore) Load(dir, key string) (image.Image, error) {
	s.loads++
	return s.FileStore.Load(dir, key)
}

func (s *countingStore) Save(dir, key string, img image.Image) error {
	if s.fail != nil {
		return s.fail
	}
	return s.FileStore.Save(dir, key, img)
}

func TestCachedStore(t *testing.T) {
	dir := t.TempDir()
	backing := &countingStore{}
	require.NoError(t, backing.FileStore.Save(dir, "a/b", solid(2, 2, opaqueRed)))

	s := NewCachedStore(backing, 4)
	assert.True(t, s.Exists(dir, "a/b"))
	assert.False(t, s.Exists(dir, "missing"))

	for range 3 {
		img, err := s.Load(dir, "a/b")
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())
	}
	assert.Equal(t, 1, backing.loads)
	assert.Equal(t, uint64(2), s.Stats().Hits)

	_, err := s.Load(dir, "missing")
	assert.Error(t, err)
}

func TestCachedStore_SaveReplaces(t *testing.T) {
	dir := t.TempDir()
	backing := &countingStore{}
	s := NewCachedStore(backing, 4)

	require.NoError(t, s.Save(dir, "key", solid(2, 2, opaqueRed)))
	require.NoError(t, s.Save(dir, "key", solid(3, 3, opaqueBlue)))

	img, err := s.Load(dir, "key")
	require.NoError(t, err)
	assert.Equal(t, 3, img.Bounds().Dx())
	assert.Zero(t, backing.loads, "saved images are served from memory")
	assert.True(t, backing.FileStore.Exists(dir, "key"), "saves write through")

	backing.fail = errors.New("disk full")
	assert.Error(t, s.Save(dir, "key", solid(1, 1, opaqueRed)))
	_, err = s.Load(dir, "key")
	require.NoError(t, err)
	assert.Equal(t, 1, backing.loads, "failed save drops the cached image")
}

func TestCachedStore_LogsHitRate(t *testing.T) {
	logs := captureLogs(t)
	dir := t.TempDir()
	backing := &countingStore{}
	require.NoError(t, backing.FileStore.Save(dir, "key", solid(2, 2, opaqueRed)))
	s := NewCachedStore(backing, 4)

	for range 4 {
		_, err := s.Load(dir, "key")
		require.NoError(t, err)
	}
	assert.Equal(t, 4, logs.count(slog.LevelDebug, "snapshot: loaded reference"))
	rate, ok := logs.attr("snapshot: loaded reference", "hit_rate")
	require.True(t, ok)
	assert.InDelta(t, 0.75, rate.Float64(), 1e-9)

	_, err := s.Load(dir, "missing")
	require.Error(t, err)
	assert.Equal(t, 4, logs.count(slog.LevelDebug, "snapshot: loaded reference"), "failed loads are not logged")
}
