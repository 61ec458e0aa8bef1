package artifact

import (
	"fmt"
	"path/filepath"
	"time"
)

// Namer derives canonical artifact paths of the form
// <Root>/<YYYY>/<MM>/<DD>/<Project>_<YYYYMMDD_HHMMSS><Ext>.
//
// Name is pure and second-granular: two calls within the same wall-clock
// second for the same project yield the same path, so callers needing
// sub-second uniqueness must disambiguate externally.
type Namer struct {
	Root    string
	Project string
	Ext     string
}

// Name returns the artifact path for a backup taken at now.
func (n Namer) Name(now time.Time) string {
	ext := n.Ext
	if ext == "" {
		ext = DefaultExt
	}

	file := fmt.Sprintf("%s_%s%s", n.Project, now.Format("20060102_150405"), ext)
	return filepath.Join(n.Root, now.Format("2006/01/02"), file)
}
