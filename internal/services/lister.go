package services

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"burrow/internal/domain"
)

const maxListWorkers = 64

// DirLister enumerates the immediate children of one directory and
// sizes each through the Sizer. It never recurses itself; the full
// subtree walk is the Sizer's job and the dominant cost of a listing.
type DirLister struct {
	sizer Sizer
	cache *ListingCache
	group singleflight.Group
}

func NewDirLister(sizer Sizer, cache *ListingCache) *DirLister {
	return &DirLister{sizer: sizer, cache: cache}
}

func (lister *DirLister) List(ctx context.Context, req ListRequest) domain.Listing {
	path := cleanPath(req.Path)

	if lister.cache != nil {
		if req.BypassCache {
			lister.cache.Invalidate(path)
		} else if cached, ok := lister.cache.Get(path); ok {
			return cached
		}
	}

	// Concurrent listings of the same path share one scan.
	value, _, _ := lister.group.Do(path, func() (interface{}, error) {
		return lister.scan(ctx, path), nil
	})
	listing := value.(domain.Listing)

	if lister.cache != nil && !listing.Failed() && ctx.Err() == nil {
		lister.cache.Put(listing)
	}
	return listing
}

func (lister *DirLister) scan(ctx context.Context, path string) domain.Listing {
	children, err := os.ReadDir(path)
	if err != nil {
		return domain.Listing{
			Path:       path,
			Fail:       classifyErr(err),
			FailDetail: err.Error(),
		}
	}

	entries := make([]domain.Entry, len(children))
	grp, grpCtx := errgroup.WithContext(ctx)
	grp.SetLimit(listWorkers(len(children)))

	for i, child := range children {
		kind := domain.KindFile
		// Type() classifies without following symlinks.
		if child.Type().IsDir() {
			kind = domain.KindDir
		}
		entries[i] = domain.Entry{
			Name: child.Name(),
			Path: filepath.Join(path, child.Name()),
			Kind: kind,
		}

		index := i
		grp.Go(func() error {
			size, partial := lister.sizer.SizeOf(grpCtx, entries[index].Path)
			entries[index].SizeBytes = size
			entries[index].Partial = partial
			return nil
		})
	}
	_ = grp.Wait()

	domain.SortEntries(entries)

	var total int64
	for _, entry := range entries {
		if entry.SizeKnown() {
			total += entry.SizeBytes
		}
	}
	return domain.Listing{Path: path, Entries: entries, TotalBytes: total}
}

func listWorkers(children int) int {
	workers := runtime.NumCPU() * 4
	if workers > maxListWorkers {
		workers = maxListWorkers
	}
	if workers > children {
		workers = children
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

func classifyErr(err error) domain.FailKind {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return domain.FailPermission
	case errors.Is(err, fs.ErrNotExist):
		return domain.FailNotFound
	default:
		return domain.FailIO
	}
}

func cleanPath(path string) string {
	if path == "" {
		return path
	}
	clean := filepath.Clean(path)
	abs, err := filepath.Abs(clean)
	if err != nil {
		return clean
	}
	return abs
}
