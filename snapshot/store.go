package snapshot

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// Store persists reference images keyed by (directory, key). Keys use '/'
// as a separator regardless of platform.
type Store interface {
	Exists(dir, key string) bool
	Load(dir, key string) (image.Image, error)
	Save(dir, key string, img image.Image) error
}

// FileStore keeps references as image files on disk.
type FileStore struct {
	// Ext is the file extension, including the dot. Defaults to ".png".
	// The encoder is picked from it.
	Ext string
}

// Path returns the file that holds key in dir.
func (s FileStore) Path(dir, key string) string {
	ext := s.Ext
	if ext == "" {
		ext = ".png"
	}
	return filepath.Join(dir, filepath.FromSlash(key)+ext)
}

// Exists reports whether a regular file holds key in dir.
func (s FileStore) Exists(dir, key string) bool {
	fi, err := os.Stat(s.Path(dir, key))
	return err == nil && fi.Mode().IsRegular()
}

// Load decodes the reference stored for key in dir.
func (s FileStore) Load(dir, key string) (image.Image, error) {
	img, err := imaging.Open(s.Path(dir, key))
	if err != nil {
		return nil, fmt.Errorf("snapshot: load reference: %w", err)
	}
	return img, nil
}

// Save writes img as the reference for key in dir, creating directories
// as needed.
func (s FileStore) Save(dir, key string, img image.Image) error {
	path := s.Path(dir, key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("snapshot: create reference dir: %w", err)
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("snapshot: save reference: %w", err)
	}
	return nil
}
