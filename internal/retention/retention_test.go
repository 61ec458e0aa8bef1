package retention

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raoulx24/dir-archiver/internal/fs"
	"github.com/raoulx24/dir-archiver/internal/history"
	"github.com/raoulx24/dir-archiver/internal/logging"
)

// agedFile drops a file under root with its mtime pushed back ageDays.
func agedFile(t *testing.T, root, rel string, now time.Time, ageDays float64) string {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	mtime := now.Add(-time.Duration(ageDays * 24 * float64(time.Hour)))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
	return path
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestApplySurvivorSet(t *testing.T) {
	root := t.TempDir()
	now := time.Now()

	// default windows: cutoff = max(7, 28, 90) = 90
	kept := []string{
		agedFile(t, root, "2024/06/01/site_a.zip", now, 1),
		agedFile(t, root, "2024/05/25/site_b.zip", now, 8),
		agedFile(t, root, "2024/04/28/site_c.zip", now, 35),
	}
	doomed := agedFile(t, root, "2024/02/22/site_d.zip", now, 100)

	e := New(nil, history.New(""), logging.Nop(), ".zip")
	outcomes, err := e.Apply(context.Background(), root, DefaultWindows.Cutoff(), now)
	require.NoError(t, err)

	require.Len(t, outcomes, 1)
	assert.True(t, outcomes[0].Deleted)
	assert.Equal(t, doomed, outcomes[0].Artifact.Path)
	assert.False(t, exists(doomed))
	for _, p := range kept {
		assert.True(t, exists(p), p)
	}
}

func TestApplyIdempotent(t *testing.T) {
	root := t.TempDir()
	now := time.Now()

	agedFile(t, root, "old_a.zip", now, 120)
	agedFile(t, root, "old_b.zip", now, 95)
	agedFile(t, root, "young.zip", now, 10)

	e := New(nil, history.New(""), logging.Nop(), ".zip")

	first, err := e.Apply(context.Background(), root, 90, now)
	require.NoError(t, err)
	assert.Len(t, first, 2)

	second, err := e.Apply(context.Background(), root, 90, now)
	require.NoError(t, err)
	assert.Empty(t, second)
}

func TestApplyIgnoresForeignExtensions(t *testing.T) {
	root := t.TempDir()
	now := time.Now()

	log := agedFile(t, root, "backup.log", now, 400)
	txt := agedFile(t, root, "notes.txt", now, 400)
	tmp := agedFile(t, root, "site_x.zip.tmp", now, 400)
	zip := agedFile(t, root, "site_x.zip", now, 400)

	e := New(nil, history.New(""), logging.Nop(), ".zip")
	outcomes, err := e.Apply(context.Background(), root, 90, now)
	require.NoError(t, err)

	assert.Len(t, outcomes, 1)
	assert.True(t, exists(log))
	assert.True(t, exists(txt))
	assert.True(t, exists(tmp))
	assert.False(t, exists(zip))
}

func TestApplyBoundaryAgeSurvives(t *testing.T) {
	root := t.TempDir()
	// whole seconds so filesystem mtime truncation cannot nudge the age
	now := time.Now().Truncate(time.Second)

	// exactly at the cutoff: age > cutoff is required, so this survives
	at := agedFile(t, root, "edge.zip", now, 90)

	e := New(nil, history.New(""), logging.Nop(), ".zip")
	outcomes, err := e.Apply(context.Background(), root, 90, now)
	require.NoError(t, err)

	assert.Empty(t, outcomes)
	assert.True(t, exists(at))
}

// failFS wraps the real filesystem and refuses to remove one path,
// simulating a locked or permission-protected file.
type failFS struct {
	fs.FS
	failPath string
}

func (f *failFS) Remove(ctx context.Context, path string) error {
	if path == f.failPath {
		return fmt.Errorf("remove %s: operation not permitted", path)
	}
	return f.FS.Remove(ctx, path)
}

func TestApplyIsolatesDeletionFailures(t *testing.T) {
	root := t.TempDir()
	now := time.Now()

	a := agedFile(t, root, "a.zip", now, 200)
	locked := agedFile(t, root, "locked.zip", now, 200)
	c := agedFile(t, root, "c.zip", now, 200)

	e := New(&failFS{FS: fs.New(), failPath: locked}, history.New(""), logging.Nop(), ".zip")
	outcomes, err := e.Apply(context.Background(), root, 90, now)
	require.NoError(t, err)
	require.Len(t, outcomes, 3)

	var failed, deleted int
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			assert.Equal(t, locked, o.Artifact.Path)
			assert.False(t, o.Deleted)
		} else {
			deleted++
			assert.True(t, o.Deleted)
		}
	}

	assert.Equal(t, 1, failed)
	assert.Equal(t, 2, deleted)
	assert.False(t, exists(a))
	assert.True(t, exists(locked))
	assert.False(t, exists(c))
}

func TestApplyWritesDeletionHistory(t *testing.T) {
	root := t.TempDir()
	now := time.Now()
	logPath := filepath.Join(t.TempDir(), "backup.log")

	agedFile(t, root, "site_20230101_020000.zip", now, 365)

	e := New(nil, history.New(logPath), logging.Nop(), ".zip")
	_, err := e.Apply(context.Background(), root, 90, now)
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Deleted: site_20230101_020000.zip")
}

func TestApplyOnMissingRootIsNonFatal(t *testing.T) {
	e := New(nil, history.New(""), logging.Nop(), ".zip")

	outcomes, err := e.Apply(context.Background(), filepath.Join(t.TempDir(), "absent"), 90, time.Now())
	assert.NoError(t, err)
	assert.Empty(t, outcomes)
}
