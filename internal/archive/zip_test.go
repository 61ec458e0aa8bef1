package archive

import (
	"archive/zip"
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raoulx24/dir-archiver/internal/logging"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestZipperCreate(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "index.html"), "<html></html>")
	writeFile(t, filepath.Join(src, "assets", "app.js"), "console.log(1)")
	writeFile(t, filepath.Join(src, "assets", "img", "logo.svg"), "<svg/>")

	dest := filepath.Join(t.TempDir(), "site.zip")
	z := NewZipper(nil, logging.Nop())

	require.NoError(t, z.Create(context.Background(), src, dest))

	r, err := zip.OpenReader(dest)
	require.NoError(t, err)
	defer r.Close()

	var names []string
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	sort.Strings(names)

	assert.Equal(t, []string{
		"assets/app.js",
		"assets/img/logo.svg",
		"index.html",
	}, names)

	// no stray tmp file after a successful run
	_, err = os.Stat(dest + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestZipperCreateMissingSource(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "site.zip")
	z := NewZipper(nil, logging.Nop())

	err := z.Create(context.Background(), filepath.Join(t.TempDir(), "nope"), dest)
	require.Error(t, err)

	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(dest + ".tmp")
	assert.True(t, os.IsNotExist(statErr))
}

func TestZipperContentRoundTrip(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "data.txt"), "hello backup")

	dest := filepath.Join(t.TempDir(), "data.zip")
	z := NewZipper(nil, logging.Nop())
	require.NoError(t, z.Create(context.Background(), src, dest))

	r, err := zip.OpenReader(dest)
	require.NoError(t, err)
	defer r.Close()

	require.Len(t, r.File, 1)
	rc, err := r.File[0].Open()
	require.NoError(t, err)
	defer rc.Close()

	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "hello backup", string(content))
}
