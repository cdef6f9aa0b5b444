package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/patrickmn/go-cache"
)

// DefaultCacheTTL is how long a loaded catalog stays cached.
const DefaultCacheTTL = 5 * time.Minute

type cachedCatalog struct {
	result  LoadResult
	modTime time.Time
	size    int64
}

// CachedLoader keeps loaded catalogs in memory so repeated reconciliations
// in one process do not re-read the file. An entry is reloaded when it
// expires or when the file's modification time or size changes.
type CachedLoader struct {
	loader *Loader
	cache  *cache.Cache
}

// NewCachedLoader wraps loader with a TTL cache. A non-positive ttl uses
// DefaultCacheTTL.
func NewCachedLoader(loader *Loader, ttl time.Duration) *CachedLoader {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if loader == nil {
		loader = NewLoader(nil)
	}
	return &CachedLoader{
		loader: loader,
		cache:  cache.New(ttl, 2*ttl),
	}
}

// Load returns the catalog at path, from cache when still current.
func (c *CachedLoader) Load(path string) (LoadResult, error) {
	key, err := cacheKey(path)
	if err != nil {
		return LoadResult{}, err
	}
	info, err := os.Stat(key)
	if err != nil {
		return LoadResult{}, fmt.Errorf("error reading catalog file: %w", err)
	}

	if v, ok := c.cache.Get(key); ok {
		cached := v.(cachedCatalog)
		if cached.modTime.Equal(info.ModTime()) && cached.size == info.Size() {
			return cached.result, nil
		}
	}

	result, err := c.loader.LoadFile(key)
	if err != nil {
		return LoadResult{}, err
	}
	c.cache.SetDefault(key, cachedCatalog{result: result, modTime: info.ModTime(), size: info.Size()})
	return result, nil
}

// Invalidate drops path from the cache.
func (c *CachedLoader) Invalidate(path string) {
	if key, err := cacheKey(path); err == nil {
		c.cache.Delete(key)
	}
}

// Len reports how many catalogs are cached.
func (c *CachedLoader) Len() int {
	return c.cache.ItemCount()
}

func cacheKey(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("error resolving catalog path: %w", err)
	}
	return abs, nil
}
