package adapter

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "zipup.dev/pkg/zipup/internal/model"
)

func readZip(t *testing.T, path string) map[string]*zip.File {
	t.Helper()

	reader, err := zip.OpenReader(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reader.Close() })

	entries := make(map[string]*zip.File, len(reader.File))
	for _, f := range reader.File {
		entries[f.Name] = f
	}

	return entries
}

func readEntry(t *testing.T, f *zip.File) string {
	t.Helper()

	rc, err := f.Open()
	require.NoError(t, err)
	defer rc.Close()

	content, err := io.ReadAll(rc)
	require.NoError(t, err)

	return string(content)
}

func TestZipArchiver_CreateWritesEntries(t *testing.T) {
	archiver := NewZipArchiver()
	path := filepath.Join(t.TempDir(), "out", "dist.zip")

	sink, err := archiver.Create(m.Path(path), 5)
	require.NoError(t, err)
	require.NoError(t, sink.AddFile("index.js", []byte("#!/usr/bin/env node\n"), 0o777))
	require.NoError(t, sink.AddFile("assets/data.bin", []byte{0, 1, 2}, 0o644))
	require.NoError(t, sink.AddSymlink("current", "assets/data.bin"))
	require.NoError(t, sink.Close())
	require.NoError(t, sink.Close(), "second close is a no-op")

	entries := readZip(t, path)
	require.Len(t, entries, 3)

	assert.Equal(t, os.FileMode(0o777), entries["index.js"].Mode().Perm())
	assert.Equal(t, zip.Deflate, entries["index.js"].Method)
	assert.Equal(t, "#!/usr/bin/env node\n", readEntry(t, entries["index.js"]))

	assert.Equal(t, os.FileMode(0o644), entries["assets/data.bin"].Mode().Perm())

	link := entries["current"]
	assert.NotZero(t, link.Mode()&os.ModeSymlink)
	assert.Equal(t, "assets/data.bin", readEntry(t, link))
}

func TestZipArchiver_LevelZeroStores(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dist.zip")

	sink, err := NewZipArchiver().Create(m.Path(path), 0)
	require.NoError(t, err)
	require.NoError(t, sink.AddFile("index.js", []byte("console.log(1)"), 0o666))
	require.NoError(t, sink.Close())

	entries := readZip(t, path)
	assert.Equal(t, zip.Store, entries["index.js"].Method)
}

func TestZipArchiver_RejectsBadLevel(t *testing.T) {
	for _, level := range []int{-1, 10} {
		_, err := NewZipArchiver().Create(m.Path(filepath.Join(t.TempDir(), "dist.zip")), level)
		assert.Error(t, err, "level %d", level)
	}
}

func TestZipArchiver_Extract(t *testing.T) {
	archiver := NewZipArchiver()
	root := t.TempDir()
	path := filepath.Join(root, "dist.zip")

	sink, err := archiver.Create(m.Path(path), 9)
	require.NoError(t, err)
	require.NoError(t, sink.AddFile("main.js", []byte("exit 0\n"), 0o777))
	require.NoError(t, sink.AddFile("lib/helper.js", []byte("module.exports = 1\n"), 0o666))
	require.NoError(t, sink.AddSymlink("helper.js", "lib/helper.js"))
	require.NoError(t, sink.Close())

	dest := filepath.Join(root, "staged")
	require.NoError(t, archiver.Extract(m.Path(path), m.Path(dest)))

	info, err := os.Stat(filepath.Join(dest, "main.js"))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode().Perm()&0o100, "executable bit survives extraction")

	content, err := os.ReadFile(filepath.Join(dest, "lib", "helper.js"))
	require.NoError(t, err)
	assert.Equal(t, "module.exports = 1\n", string(content))

	linkTarget, err := os.Readlink(filepath.Join(dest, "helper.js"))
	require.NoError(t, err)
	assert.Equal(t, "lib/helper.js", linkTarget)
}

func TestZipArchiver_ExtractRejectsEscapingEntries(t *testing.T) {
	archiver := NewZipArchiver()
	root := t.TempDir()
	path := filepath.Join(root, "evil.zip")

	sink, err := archiver.Create(m.Path(path), 5)
	require.NoError(t, err)
	require.NoError(t, sink.AddFile("../escape.js", []byte("x"), 0o666))
	require.NoError(t, sink.Close())

	err = archiver.Extract(m.Path(path), m.Path(filepath.Join(root, "staged")))
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(root, "escape.js"))
	assert.True(t, os.IsNotExist(statErr))
}
