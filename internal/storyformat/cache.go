package storyformat

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Bump when the payload layout changes so stale entries self-invalidate.
const cacheSchemaVersion uint16 = 1

// Cache keeps decoded story formats on disk keyed by the content hash of
// the format file. Story formats run to hundreds of kilobytes of escaped
// HTML; skipping blob extraction on repeat builds is a cheap win.
// Safe for concurrent use.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

type cachePayload struct {
	Schema uint16
	Format Format
}

// OpenCache initializes the cache under the user cache directory
// (respecting XDG_CACHE_HOME) for the given application name.
func OpenCache(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app, "formats")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

// OpenCacheAt initializes the cache in an explicit directory.
func OpenCacheAt(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) pathFor(key [32]byte) string {
	return filepath.Join(c.dir, hex.EncodeToString(key[:])+".mp")
}

// Get loads a cached format. The second result is false on miss, schema
// mismatch, or a corrupt entry; corruption is treated as a miss, not an
// error, so a bad cache can never fail a build.
func (c *Cache) Get(key [32]byte) (*Format, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		return nil, false
	}
	defer f.Close() //nolint:errcheck // read-only handle

	var payload cachePayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false
	}
	if payload.Schema != cacheSchemaVersion {
		return nil, false
	}
	return &payload.Format, true
}

// Put stores a decoded format, replacing the entry atomically.
func (c *Cache) Put(key [32]byte, format *Format) error {
	if c == nil || format == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	path := c.pathFor(key)
	tmp, err := os.CreateTemp(c.dir, "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // best-effort cleanup

	payload := cachePayload{Schema: cacheSchemaVersion, Format: *format}
	if err := msgpack.NewEncoder(tmp).Encode(&payload); err != nil {
		tmp.Close() //nolint:errcheck
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// ParseCached parses a format file through the cache. A nil cache always
// parses directly.
func (c *Cache) ParseCached(path string) (*Format, error) {
	if c == nil {
		return Parse(path)
	}

	// #nosec G304 -- the format path comes from configuration
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	key := sha256.Sum256(contents)

	if f, ok := c.Get(key); ok {
		return f, nil
	}
	f, err := Decode(string(contents))
	if err != nil {
		return nil, err
	}
	// Best effort: an unwritable cache must not fail the build.
	_ = c.Put(key, f)
	return f, nil
}
