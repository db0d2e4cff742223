package services

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"burrow/internal/domain"
)

// WalkSizer measures paths directly against the filesystem. Symbolic
// links are never followed: a link is sized as the link itself, which
// prevents cycles and double counting. Mount points are crossed; the
// result is "what is reachable under this path", not "what is on this
// disk".
type WalkSizer struct{}

func NewWalkSizer() *WalkSizer {
	return &WalkSizer{}
}

func (sizer *WalkSizer) SizeOf(ctx context.Context, path string) (int64, bool) {
	info, err := os.Lstat(path)
	if err != nil {
		// Broken symlink or race-deleted entry: skip, not fatal.
		return domain.SizeUnknown, true
	}
	if !info.IsDir() {
		return info.Size(), false
	}
	return sizer.dirSize(ctx, path)
}

func (sizer *WalkSizer) dirSize(ctx context.Context, root string) (int64, bool) {
	var total int64
	partial := false
	rootUnreadable := false

	_ = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if ctx.Err() != nil {
			return fs.SkipAll
		}
		if err != nil {
			if path == root {
				rootUnreadable = true
				return fs.SkipAll
			}
			// Unreadable subtree: omit its bytes from the sum and
			// flag the result as a lower bound.
			partial = true
			return nil
		}
		if entry.IsDir() {
			return nil
		}
		info, infoErr := entry.Info()
		if infoErr != nil {
			partial = true
			return nil
		}
		total += info.Size()
		return nil
	})

	if rootUnreadable {
		return domain.SizeUnknown, true
	}
	return total, partial
}
