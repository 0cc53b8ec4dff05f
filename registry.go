package numcode

import (
	"context"
	"path/filepath"
	"sync"
)

// cacheKey combines resource path and format for cache lookup.
type cacheKey struct {
	path        string
	contentType string
}

var (
	charsetCache   = make(map[cacheKey]*Charset)
	charsetCacheMu sync.RWMutex
)

// Use returns a cached charset or loads a new one from path using the given
// format. Charsets are cached by path and format content type, so repeated
// codec construction over the same resource shares one registry.
//
// Cached charsets are shared; treat them as read-only.
func Use(ctx context.Context, path string, f Format) (*Charset, error) {
	key := cacheKey{path: path, contentType: f.ContentType()}

	// Fast path: read-lock cache check
	charsetCacheMu.RLock()
	if cached, ok := charsetCache[key]; ok {
		charsetCacheMu.RUnlock()
		return cached, nil
	}
	charsetCacheMu.RUnlock()

	// Slow path: load and cache with write-lock
	charsetCacheMu.Lock()
	defer charsetCacheMu.Unlock()

	// Double-check pattern
	if cached, ok := charsetCache[key]; ok {
		return cached, nil
	}

	cs := NewCharset()
	loader := NewLoader(cs, WithFormat(filepath.Ext(path), f))
	if err := loader.LoadFile(ctx, path); err != nil {
		return nil, err
	}

	charsetCache[key] = cs
	return cs, nil
}

// Reset clears the charset cache.
// This is primarily useful for test isolation.
func Reset() {
	charsetCacheMu.Lock()
	defer charsetCacheMu.Unlock()
	charsetCache = make(map[cacheKey]*Charset)
}
