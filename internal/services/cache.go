package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"

	"burrow/internal/domain"
)

const cacheVersion = 1

// ListingCache memoizes successful listings by absolute path so that
// revisiting a directory does not repeat the full subtree walk. An
// entry is served only while the directory's ModTime is unchanged,
// and a refresh always bypasses and rewrites it. With an empty dir
// the cache is memory-only.
type ListingCache struct {
	mu       sync.RWMutex
	listings map[string]cachedListing
	dir      string
}

type cachedListing struct {
	listing domain.Listing
	modTime int64
}

type cacheFile struct {
	Version    int          `json:"version"`
	Path       string       `json:"path"`
	ModTime    int64        `json:"modTime"`
	TotalBytes int64        `json:"totalBytes"`
	Entries    []cacheEntry `json:"entries"`
}

type cacheEntry struct {
	Name      string `json:"name"`
	Path      string `json:"path"`
	Dir       bool   `json:"dir"`
	SizeBytes int64  `json:"sizeBytes"`
	Partial   bool   `json:"partial,omitempty"`
}

func NewListingCache(dir string) *ListingCache {
	return &ListingCache{
		listings: make(map[string]cachedListing),
		dir:      dir,
	}
}

func (cache *ListingCache) Get(path string) (domain.Listing, bool) {
	modTime, ok := dirModTime(path)
	if !ok {
		return domain.Listing{}, false
	}

	cache.mu.RLock()
	cached, hit := cache.listings[path]
	cache.mu.RUnlock()
	if hit && cached.modTime == modTime {
		return cached.listing, true
	}

	listing, storedMod, err := cache.loadFile(path)
	if err != nil || storedMod != modTime {
		return domain.Listing{}, false
	}
	cache.mu.Lock()
	cache.listings[path] = cachedListing{listing: listing, modTime: modTime}
	cache.mu.Unlock()
	return listing, true
}

func (cache *ListingCache) Put(listing domain.Listing) {
	modTime, ok := dirModTime(listing.Path)
	if !ok {
		return
	}
	cache.mu.Lock()
	cache.listings[listing.Path] = cachedListing{listing: listing, modTime: modTime}
	cache.mu.Unlock()
	cache.saveFile(listing, modTime)
}

func (cache *ListingCache) Invalidate(path string) {
	cache.mu.Lock()
	delete(cache.listings, path)
	cache.mu.Unlock()
	if cache.dir != "" {
		_ = os.Remove(cache.filePath(path))
	}
}

func (cache *ListingCache) filePath(path string) string {
	return filepath.Join(cache.dir, fmt.Sprintf("%016x.json", xxhash.Sum64String(path)))
}

func (cache *ListingCache) loadFile(path string) (domain.Listing, int64, error) {
	if cache.dir == "" {
		return domain.Listing{}, 0, os.ErrNotExist
	}
	data, err := os.ReadFile(cache.filePath(path))
	if err != nil {
		return domain.Listing{}, 0, err
	}
	var stored cacheFile
	if err := json.Unmarshal(data, &stored); err != nil {
		return domain.Listing{}, 0, err
	}
	if stored.Version != cacheVersion || stored.Path != path {
		return domain.Listing{}, 0, os.ErrNotExist
	}

	listing := domain.Listing{
		Path:       stored.Path,
		TotalBytes: stored.TotalBytes,
		Entries:    make([]domain.Entry, 0, len(stored.Entries)),
	}
	for _, entry := range stored.Entries {
		kind := domain.KindFile
		if entry.Dir {
			kind = domain.KindDir
		}
		listing.Entries = append(listing.Entries, domain.Entry{
			Name:      entry.Name,
			Path:      entry.Path,
			Kind:      kind,
			SizeBytes: entry.SizeBytes,
			Partial:   entry.Partial,
		})
	}
	return listing, stored.ModTime, nil
}

func (cache *ListingCache) saveFile(listing domain.Listing, modTime int64) {
	if cache.dir == "" {
		return
	}
	stored := cacheFile{
		Version:    cacheVersion,
		Path:       listing.Path,
		ModTime:    modTime,
		TotalBytes: listing.TotalBytes,
		Entries:    make([]cacheEntry, 0, len(listing.Entries)),
	}
	for _, entry := range listing.Entries {
		stored.Entries = append(stored.Entries, cacheEntry{
			Name:      entry.Name,
			Path:      entry.Path,
			Dir:       entry.Kind == domain.KindDir,
			SizeBytes: entry.SizeBytes,
			Partial:   entry.Partial,
		})
	}
	data, err := json.Marshal(stored)
	if err != nil {
		return
	}
	if err := os.MkdirAll(cache.dir, 0o755); err != nil {
		return
	}
	_ = os.WriteFile(cache.filePath(listing.Path), data, 0o600)
}

func dirModTime(path string) (int64, bool) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return 0, false
	}
	return info.ModTime().UnixNano(), true
}
