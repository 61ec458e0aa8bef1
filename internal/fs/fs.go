// Package fs defines the filesystem abstraction used by dir-archiver.
// It provides the FS interface and the FileInfo type shared across the system.
package fs

import (
	"context"
	"time"
)

type FileInfo struct {
	Path  string
	Size  int64
	MTime time.Time
}

// WalkFunc is called once per regular file under a walked root.
// When the walker cannot read an entry or subtree, it is called with the
// failing path and a non-nil err instead; returning nil skips it and
// continues the walk.
type WalkFunc func(info FileInfo, err error) error

type FS interface {
	Stat(path string) (FileInfo, error)
	MkdirAll(path string) error
	Rename(ctx context.Context, oldPath, newPath string) error
	Remove(ctx context.Context, path string) error
	Walk(root string, fn WalkFunc) error
}
