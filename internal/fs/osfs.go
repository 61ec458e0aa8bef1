package fs

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
)

// OSFS is the concrete implementation of FS backed by the local OS
// filesystem. Rename and Remove retry transient errors.
type OSFS struct{}

func New() *OSFS {
	return &OSFS{}
}

func (o *OSFS) Stat(path string) (FileInfo, error) {
	st, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, err
	}

	return FileInfo{
		Path:  path,
		Size:  st.Size(),
		MTime: st.ModTime(),
	}, nil
}

func (o *OSFS) MkdirAll(path string) error {
	return os.MkdirAll(path, 0o755)
}

func (o *OSFS) Rename(ctx context.Context, oldPath, newPath string) error {
	return retry(ctx, "rename", func() error {
		return os.Rename(oldPath, newPath)
	})
}

func (o *OSFS) Remove(ctx context.Context, path string) error {
	return retry(ctx, "remove", func() error {
		return os.Remove(path)
	})
}

// Walk visits every regular file under root. Unreadable entries are
// reported to fn rather than aborting the walk, so the caller decides
// whether to skip or stop.
func (o *OSFS) Walk(root string, fn WalkFunc) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fn(FileInfo{Path: path}, err)
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		st, err := d.Info()
		if err != nil {
			return fn(FileInfo{Path: path}, err)
		}

		return fn(FileInfo{
			Path:  path,
			Size:  st.Size(),
			MTime: st.ModTime(),
		}, nil)
	})
}
