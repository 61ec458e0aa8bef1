// Package archive creates compressed artifacts from a source tree.
package archive

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/raoulx24/dir-archiver/internal/fs"
	"github.com/raoulx24/dir-archiver/internal/logging"
)

// Zipper walks a source directory and writes every regular file into a
// single deflate-compressed zip. Entry names are relative to the source
// directory. The archive is written to a temp path and renamed into
// place, so a failed run never leaves a partial artifact behind.
type Zipper struct {
	fs  fs.FS
	log logging.Logger
}

func NewZipper(filesystem fs.FS, log logging.Logger) *Zipper {
	if filesystem == nil {
		filesystem = fs.New()
	}
	return &Zipper{fs: filesystem, log: log}
}

// Create archives sourceDir into destPath. Any failure aborts the whole
// archive; there is nothing useful to upload from a partial zip.
func (z *Zipper) Create(ctx context.Context, sourceDir, destPath string) error {
	tmpPath := destPath + ".tmp"

	if err := z.writeZip(ctx, sourceDir, tmpPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("creating archive: %w", err)
	}

	if err := z.fs.Rename(ctx, tmpPath, destPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("finalizing archive: %w", err)
	}

	z.log.Info("archive created", "path", destPath)
	return nil
}

func (z *Zipper) writeZip(ctx context.Context, sourceDir, tmpPath string) error {
	out, err := os.Create(tmpPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	zw := zip.NewWriter(out)

	err = z.fs.Walk(sourceDir, func(info fs.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return addEntry(zw, sourceDir, info)
	})
	if err != nil {
		_ = zw.Close()
		return err
	}

	if err := zw.Close(); err != nil {
		return err
	}

	return out.Sync()
}

func addEntry(zw *zip.Writer, sourceDir string, info fs.FileInfo) error {
	rel, err := filepath.Rel(sourceDir, info.Path)
	if err != nil {
		return err
	}

	hdr := &zip.FileHeader{
		Name:     filepath.ToSlash(rel),
		Method:   zip.Deflate,
		Modified: info.MTime,
	}

	w, err := zw.CreateHeader(hdr)
	if err != nil {
		return err
	}

	in, err := os.Open(info.Path)
	if err != nil {
		return err
	}
	defer in.Close()

	if _, err := io.Copy(w, in); err != nil {
		return fmt.Errorf("compressing %s: %w", rel, err)
	}

	return nil
}
