package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
)

// ImageCache keeps decoded background images keyed by file path so repeated
// luminance queries against the same image skip disk I/O.
//
// ImageCache is safe for concurrent use. Cached images stay in memory until
// Evict or Clear is called.
//
//	cache := imaging.NewImageCache()
//	buf, err := cache.LoadPixelBuffer("/path/to/wallpaper.png")
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageCache creates an empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
	}
}

// Load returns the decoded image at path, reading it from disk on first use.
//
// PNG, JPEG, GIF, BMP and TIFF are supported. The path string is the cache
// key as given; a relative and an absolute path to the same file are cached
// separately. The returned image is shared and must not be mutated; use
// LoadPixelBuffer for a private copy.
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// LoadPixelBuffer loads path through the cache and returns an independent
// pixel buffer copy of it.
func (c *ImageCache) LoadPixelBuffer(path string) (*image.NRGBA, error) {
	img, err := c.Load(path)
	if err != nil {
		return nil, err
	}
	return ToPixelBuffer(img), nil
}

// Clear drops every cached image.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Evict drops the image cached under path, if any.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Len reports how many images are cached.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// ImageInfo describes a background image file.
type ImageInfo struct {
	// Width is the intrinsic image width in pixels.
	Width int `json:"width"`

	// Height is the intrinsic image height in pixels.
	Height int `json:"height"`

	// Format is derived from the file extension: "png", "jpeg", "gif",
	// "bmp", "tiff", or "unknown".
	Format string `json:"format"`

	// HasAlpha is true for image types that carry an alpha channel. Alpha is
	// ignored by the luminance calculation.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the file on disk.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image into the cache and reports its metadata.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	hasAlpha := false
	switch img.(type) {
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64:
		hasAlpha = true
	}

	bounds := img.Bounds()
	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        formatFromExt(path),
		HasAlpha:      hasAlpha,
		FileSizeBytes: stat.Size(),
	}, nil
}

func formatFromExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".gif":
		return "gif"
	case ".bmp":
		return "bmp"
	case ".tif", ".tiff":
		return "tiff"
	}
	return "unknown"
}

// GetDimensions returns the intrinsic size of the image at path, loading it
// into the cache if needed.
func GetDimensions(cache *ImageCache, path string) (Size, error) {
	img, err := cache.Load(path)
	if err != nil {
		return Size{}, err
	}

	bounds := img.Bounds()
	return Size{W: bounds.Dx(), H: bounds.Dy()}, nil
}
