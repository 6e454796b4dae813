package snapshot

import (
	"slices"
	"sync"
)

// DefaultSuffixes returns the reference directory suffixes, one per device
// width class, in increasing width order.
func DefaultSuffixes() []string {
	return []string{"5", "6", "6Plus", "Pad"}
}

// BucketSuffix returns the width class of a device short edge.
func BucketSuffix(shortEdge float64) string {
	switch {
	case shortEdge <= 320:
		return "5"
	case shortEdge <= 375:
		return "6"
	case shortEdge <= 414:
		return "6Plus"
	default:
		return "Pad"
	}
}

// OrderSuffixes returns a copy of suffixes with the class matching
// shortEdge moved to the front. The others keep their relative order.
// If the matching class is not in the list, the copy is unchanged.
func OrderSuffixes(suffixes []string, shortEdge float64) []string {
	out := slices.Clone(suffixes)
	i := slices.Index(out, BucketSuffix(shortEdge))
	if i <= 0 {
		return out
	}
	best := out[i]
	copy(out[1:i+1], out[:i])
	out[0] = best
	return out
}

// SuffixCache holds a suffix ordering computed once. The device profile
// does not change during a test run, so the first computation wins.
type SuffixCache struct {
	once sync.Once
	list []string
}

var processSuffixes SuffixCache

// ProcessSuffixes returns the process-wide suffix cache.
func ProcessSuffixes() *SuffixCache {
	return &processSuffixes
}

// Get returns the cached ordering, computing it on first use.
func (c *SuffixCache) Get(compute func() []string) []string {
	c.once.Do(func() {
		c.list = compute()
	})
	return slices.Clone(c.list)
}

// SuffixDir returns the reference directory for a suffix.
func SuffixDir(baseDir, suffix string) string {
	return baseDir + suffix
}

// ResolveDirectory returns the first suffixed directory under baseDir
// that holds a reference for key.
func ResolveDirectory(store Store, baseDir string, suffixes []string, key string) (string, bool) {
	for _, s := range suffixes {
		dir := SuffixDir(baseDir, s)
		if store.Exists(dir, key) {
			return dir, true
		}
	}
	return "", false
}
