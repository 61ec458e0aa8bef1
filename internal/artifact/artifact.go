// Package artifact describes backup artifacts and their canonical naming.
package artifact

import (
	"path/filepath"
	"time"

	"github.com/raoulx24/dir-archiver/internal/fs"
)

// DefaultExt is the archive extension produced by the zipper and the only
// extension retention will ever touch.
const DefaultExt = ".zip"

// Artifact represents one archived snapshot on the artifact store.
type Artifact struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// FromFileInfo constructs an Artifact from filesystem metadata.
func FromFileInfo(info fs.FileInfo) Artifact {
	return Artifact{
		Path:    info.Path,
		Size:    info.Size,
		ModTime: info.MTime,
	}
}

// Name returns the artifact file name without its directory.
func (a Artifact) Name() string {
	return filepath.Base(a.Path)
}

// AgeDays returns the artifact age at now as a fractional day count,
// derived from the modification time. The timestamp embedded in the file
// name is never parsed.
func (a Artifact) AgeDays(now time.Time) float64 {
	return now.Sub(a.ModTime).Seconds() / 86400
}
