package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/pixel-filter-mcp/internal/pixel"
)

// Cache provides thread-safe caching of decoded pixel buffers to avoid
// redundant disk reads and decodes.
//
// Buffers are keyed by the exact file path used to load them. Once a
// file is decoded, subsequent Load() calls for the same path return the
// cached buffer without disk I/O.
//
// Cache is safe for concurrent use by multiple goroutines. Cached
// buffers are shared between callers and must be treated as read-only;
// the filter core never mutates its input, so this holds as long as
// callers go through it.
//
// Buffers remain in memory until Evict() or Clear(). Long-running
// processes handling many images should clear periodically to bound
// memory growth.
type Cache struct {
	mu      sync.RWMutex
	buffers map[string]*pixel.Buffer
}

// NewCache creates and initializes a new empty buffer cache.
func NewCache() *Cache {
	return &Cache{
		buffers: make(map[string]*pixel.Buffer),
	}
}

// Load retrieves a buffer from the cache or decodes it from disk.
//
// Supported formats are PNG, JPEG, and GIF. Whatever the source color
// model, the decoded image is normalized to 8-bit RGBA, so the returned
// buffer always has depth 4.
//
// The buffer is cached using the exact path string provided; relative
// and absolute paths to the same file produce separate entries.
func (c *Cache) Load(path string) (*pixel.Buffer, error) {
	c.mu.RLock()
	if buf, ok := c.buffers[path]; ok {
		c.mu.RUnlock()
		return buf, nil
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

	// Clone normalizes any color model to a compact 8-bit NRGBA plane,
	// which is exactly the depth-4 sample layout the filter core expects.
	nrgba := imaging.Clone(img)
	buf, err := pixel.New(nrgba.Pix, nrgba.Rect.Dx(), nrgba.Rect.Dy())
	if err != nil {
		return nil, fmt.Errorf("failed to wrap decoded image: %w", err)
	}

	c.mu.Lock()
	c.buffers[path] = buf
	c.mu.Unlock()

	return buf, nil
}

// Clear removes all buffers from the cache, freeing the associated
// memory. Subsequent Load() calls read from disk again.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.buffers = make(map[string]*pixel.Buffer)
	c.mu.Unlock()
}

// Evict removes a specific buffer from the cache by its path. If the
// path is not cached, Evict does nothing.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	delete(c.buffers, path)
	c.mu.Unlock()
}

// BufferInfo contains metadata about a loaded image file.
type BufferInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Depth is the number of samples per pixel in the loaded buffer.
	// Files always load as depth 4 (RGBA).
	Depth int `json:"depth"`

	// Format is the image format guessed from the file extension:
	// "png", "jpeg", "gif", or "unknown".
	Format string `json:"format"`

	// FileSizeBytes is the size of the image file on disk.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadBufferInfo loads an image into the cache and returns metadata
// about it: dimensions, channel depth, detected format, and file size.
func LoadBufferInfo(cache *Cache, path string) (*BufferInfo, error) {
	buf, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	switch filepath.Ext(path) {
	case ".png":
		format = "png"
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".gif":
		format = "gif"
	}

	return &BufferInfo{
		Width:         buf.Width,
		Height:        buf.Height,
		Depth:         buf.Depth(),
		Format:        format,
		FileSizeBytes: stat.Size(),
	}, nil
}

// DimensionsResult contains the width and height of an image.
type DimensionsResult struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`
}

// GetDimensions returns the dimensions of an image without additional
// metadata. The image is loaded into the cache if not already present.
func GetDimensions(cache *Cache, path string) (*DimensionsResult, error) {
	buf, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	return &DimensionsResult{Width: buf.Width, Height: buf.Height}, nil
}
