package snapshot

import (
	"image"
	"path"

	"github.com/gogpu/ggsnap"
	"github.com/gogpu/ggsnap/cache"
)

// CachedStore keeps decoded references in memory in front of another
// Store. Saves write through and replace the cached image.
type CachedStore struct {
	store  Store
	images *cache.Cache[image.Image]
}

// NewCachedStore wraps store with an LRU of decoded images. capacity is
// per cache shard; <= 0 selects cache.DefaultCapacity.
func NewCachedStore(store Store, capacity int) *CachedStore {
	return &CachedStore{store: store, images: cache.New[image.Image](capacity)}
}

func cacheKey(dir, key string) string {
	return path.Join(dir, key)
}

// Exists implements Store.
func (s *CachedStore) Exists(dir, key string) bool {
	if _, ok := s.images.Get(cacheKey(dir, key)); ok {
		return true
	}
	return s.store.Exists(dir, key)
}

// Load implements Store.
func (s *CachedStore) Load(dir, key string) (image.Image, error) {
	img, err := s.images.GetOrLoad(cacheKey(dir, key), func() (image.Image, error) {
		return s.store.Load(dir, key)
	})
	if err != nil {
		return nil, err
	}
	st := s.images.Stats()
	ggsnap.Logger().Debug("snapshot: loaded reference",
		"key", cacheKey(dir, key), "cached", st.Len, "hit_rate", st.HitRate())
	return img, nil
}

// Save implements Store.
func (s *CachedStore) Save(dir, key string, img image.Image) error {
	ck := cacheKey(dir, key)
	if err := s.store.Save(dir, key, img); err != nil {
		s.images.Delete(ck)
		return err
	}
	s.images.Set(ck, img)
	return nil
}

// Stats returns the cache counters.
func (s *CachedStore) Stats() cache.Stats {
	return s.images.Stats()
}
