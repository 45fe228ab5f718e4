package installer

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestZip builds a minimal archive shaped like the Android command-line
// tools bundle: a single top-level directory with an executable under bin/.
func writeTestZip(t *testing.T, path string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	hdr := &zip.FileHeader{Name: "cmdline-tools/bin/sdkmanager", Method: zip.Deflate}
	hdr.SetMode(0755)
	w, err := zw.CreateHeader(hdr)
	require.NoError(t, err)
	_, err = w.Write([]byte("#!/bin/sh\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
}

func TestExtractZipReturnsTopLevelDir(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "tools.zip")
	writeTestZip(t, src)

	dest := filepath.Join(dir, "out")
	require.NoError(t, os.MkdirAll(dest, 0755))

	top, err := ExtractArchive(src, dest)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dest, "cmdline-tools"), top)

	info, err := os.Stat(filepath.Join(top, "bin", "sdkmanager"))
	require.NoError(t, err)
	// Launcher scripts must stay executable after extraction.
	assert.NotZero(t, info.Mode().Perm()&0111)
}

func TestExtractTarGz(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "tools.tar.gz")

	f, err := os.Create(src)
	require.NoError(t, err)
	gw := gzip.NewWriter(f)
	tw := tar.NewWriter(gw)
	content := []byte("hello\n")
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name:     "tools/readme.txt",
		Mode:     0644,
		Size:     int64(len(content)),
		Typeflag: tar.TypeReg,
	}))
	_, err = tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	require.NoError(t, f.Close())

	dest := filepath.Join(dir, "out")
	require.NoError(t, os.MkdirAll(dest, 0755))

	top, err := ExtractArchive(src, dest)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dest, "tools"), top)

	data, err := os.ReadFile(filepath.Join(top, "readme.txt"))
	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestExtractArchiveRejectsUnknownFormat(t *testing.T) {
	_, err := ExtractArchive("/tmp/whatever.rar", t.TempDir())
	assert.Error(t, err)
}
