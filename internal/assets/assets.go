// Package assets resolves shader and font files from disk with embedded fallbacks.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
)

// ErrNotFound is returned when no search directory or mount holds a file.
var ErrNotFound = errors.New("asset not found")

type mount struct {
	prefix string
	fsys   fs.FS
}

// Manager loads files by relative path.
// Directories are searched before mounts; later additions win.
type Manager struct {
	dirs   []string
	mounts []mount
	cache  *Cache
	mu     sync.RWMutex
}

// NewManager creates a new asset manager.
func NewManager() *Manager {
	return &Manager{
		cache: NewCache(),
	}
}

// AddDir adds a filesystem directory to the search path.
func (m *Manager) AddDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("adding asset dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("adding asset dir %s: not a directory", dir)
	}

	m.mu.Lock()
	m.dirs = append(m.dirs, dir)
	m.mu.Unlock()

	return nil
}

// Mount serves fsys for paths under prefix (e.g. "shaders").
func (m *Manager) Mount(prefix string, fsys fs.FS) {
	m.mu.Lock()
	m.mounts = append(m.mounts, mount{prefix: strings.Trim(prefix, "/"), fsys: fsys})
	m.mu.Unlock()
}

// Load reads a file. Absolute paths are read directly.
func (m *Manager) Load(name string) ([]byte, error) {
	if data, ok := m.cache.Get(name); ok {
		return data, nil
	}

	data, err := m.load(name)
	if err != nil {
		return nil, err
	}

	m.cache.Set(name, data)
	return data, nil
}

// LoadString is Load for text assets such as shader sources.
func (m *Manager) LoadString(name string) (string, error) {
	data, err := m.Load(name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (m *Manager) load(name string) ([]byte, error) {
	if filepath.IsAbs(name) {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, name, err)
		}
		return data, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.dirs) - 1; i >= 0; i-- {
		data, err := os.ReadFile(filepath.Join(m.dirs[i], name))
		if err == nil {
			return data, nil
		}
	}

	slashed := path.Clean(filepath.ToSlash(name))
	for i := len(m.mounts) - 1; i >= 0; i-- {
		mt := m.mounts[i]
		rest, ok := strings.CutPrefix(slashed, mt.prefix+"/")
		if !ok {
			continue
		}
		data, err := fs.ReadFile(mt.fsys, rest)
		if err == nil {
			return data, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Invalidate drops every cached file so the next Load rereads it.
func (m *Manager) Invalidate() {
	m.cache.Clear()
}

// CacheStats reports cache hits and misses since the last Invalidate.
func (m *Manager) CacheStats() (hits, misses int) {
	return m.cache.Stats()
}

// Cache is a simple in-memory cache for loaded assets.
type Cache struct {
	data map[string][]byte
	mu   sync.RWMutex

	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
