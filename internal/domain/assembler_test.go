package domain_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"zipup.dev/pkg/zipup/internal/adapter"
	adaptermocks "zipup.dev/pkg/zipup/internal/adapter/mocks"
	"zipup.dev/pkg/zipup/internal/domain"
	m "zipup.dev/pkg/zipup/internal/model"
)

type zipEntry struct {
	content string
	mode    os.FileMode
}

func readArchive(t *testing.T, path m.Path) ([]string, map[string]zipEntry) {
	t.Helper()

	reader, err := zip.OpenReader(string(path))
	require.NoError(t, err)

	defer reader.Close()

	var names []string

	entries := map[string]zipEntry{}

	for _, f := range reader.File {
		rc, err := f.Open()
		require.NoError(t, err)

		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())

		names = append(names, f.Name)
		entries[f.Name] = zipEntry{content: string(content), mode: f.Mode()}
	}

	return names, entries
}

func newLocalAssembler() domain.Assembler {
	return domain.NewAssembler(adapter.NewLocalFSAdapter(), adapter.NewZipArchiver())
}

func sampleResult() m.BuildResult {
	return m.BuildResult{
		Code: "#!/usr/bin/env node\nconsole.log('hi')\n",
		Map:  `{"version":3}`,
		Assets: map[string]m.Asset{
			"LICENSE.txt":  {Content: []byte("MIT"), Mode: 0o644},
			"b-addon.node": {Content: []byte("bin"), Mode: 0o755},
			"a-data.wasm":  {Content: []byte("wasm"), Mode: 0o644},
		},
		Symlinks: map[string]string{"current": "a-data.wasm"},
	}
}

func TestAssembler_Assemble(t *testing.T) {
	dir := t.TempDir()
	args := domain.AssembleArgs{
		ArchivePath: m.Path(filepath.Join(dir, "out", "bundle.zip")),
		SideDir:     m.Path(filepath.Join(dir, "dist")),
		Stem:        "main",
		Ext:         ".js",
		Compression: 5,
		License:     "LICENSE.txt",
	}

	assembly, err := newLocalAssembler().Assemble(context.Background(), sampleResult(), args)
	require.NoError(t, err)

	assert.Equal(t, args.ArchivePath, assembly.ArchivePath)
	assert.ElementsMatch(t, []m.Path{
		m.Path(filepath.Join(dir, "dist", "main.js.map")),
		m.Path(filepath.Join(dir, "dist", "LICENSE.txt")),
	}, assembly.SideFiles)

	names, entries := readArchive(t, args.ArchivePath)
	assert.Equal(t, []string{"main.js", "a-data.wasm", "b-addon.node", "current"}, names)
	assert.Equal(t, os.FileMode(0o777), entries["main.js"].mode.Perm())
	assert.Equal(t, os.FileMode(0o755), entries["b-addon.node"].mode.Perm())
	assert.NotZero(t, entries["current"].mode&os.ModeSymlink)
	assert.Equal(t, "a-data.wasm", entries["current"].content)
	assert.NotContains(t, entries, "LICENSE.txt")
	assert.NotContains(t, entries, "main.js.map")

	mapFile, err := os.ReadFile(filepath.Join(dir, "dist", "main.js.map"))
	require.NoError(t, err)
	assert.Equal(t, `{"version":3}`, string(mapFile))

	license, err := os.ReadFile(filepath.Join(dir, "dist", "LICENSE.txt"))
	require.NoError(t, err)
	assert.Equal(t, "MIT", string(license))
}

func TestAssembler_DefaultsAndPlainCode(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	result := m.BuildResult{Code: "console.log(1)"}

	assembly, err := newLocalAssembler().Assemble(context.Background(), result, domain.AssembleArgs{
		SideDir: m.Path(filepath.Join(dir, "dist")),
		Ext:     ".cjs",
	})
	require.NoError(t, err)

	assert.Equal(t, m.Path(m.DefaultArchiveName), assembly.ArchivePath)
	assert.Empty(t, assembly.SideFiles)

	names, entries := readArchive(t, m.Path(filepath.Join(dir, m.DefaultArchiveName)))
	assert.Equal(t, []string{"index.cjs"}, names)
	assert.Equal(t, os.FileMode(0o666), entries["index.cjs"].mode.Perm())

	_, err = os.Stat(filepath.Join(dir, "dist"))
	require.NoError(t, err, "side directory is always created")
}

func TestAssembler_IgnorePolicy(t *testing.T) {
	tests := []struct {
		name   string
		ignore m.IgnoreSet
		want   []string
	}{
		{
			name: "no patterns archives every asset but the license",
			want: []string{"index.js", "a-data.wasm", "b-addon.node"},
		},
		{
			name:   "matching assets are dropped",
			ignore: m.IgnoreSet{"*.node"},
			want:   []string{"index.js", "a-data.wasm"},
		},
		{
			name:   "patterns matching nothing keep every asset",
			ignore: m.IgnoreSet{"*.txt.gz"},
			want:   []string{"index.js", "a-data.wasm", "b-addon.node"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			result := sampleResult()
			result.Symlinks = nil

			args := domain.AssembleArgs{
				ArchivePath: m.Path(filepath.Join(dir, "dist.zip")),
				SideDir:     m.Path(filepath.Join(dir, "dist")),
				Ext:         ".js",
				License:     "LICENSE.txt",
				Ignore:      tt.ignore,
			}

			_, err := newLocalAssembler().Assemble(context.Background(), result, args)
			require.NoError(t, err)

			names, _ := readArchive(t, args.ArchivePath)
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestAssembler_LicenseAbsentIsArchived(t *testing.T) {
	dir := t.TempDir()
	result := m.BuildResult{
		Code:   "x",
		Assets: map[string]m.Asset{"LICENSE.txt": {Content: []byte("MIT"), Mode: 0o644}},
	}
	args := domain.AssembleArgs{
		ArchivePath: m.Path(filepath.Join(dir, "dist.zip")),
		SideDir:     m.Path(filepath.Join(dir, "dist")),
		Ext:         ".js",
	}

	assembly, err := newLocalAssembler().Assemble(context.Background(), result, args)
	require.NoError(t, err)
	assert.Empty(t, assembly.SideFiles)

	names, _ := readArchive(t, args.ArchivePath)
	assert.Equal(t, []string{"index.js", "LICENSE.txt"}, names)
}

func TestAssembler_StreamErrorsFailTheAssembly(t *testing.T) {
	dir := t.TempDir()
	archivePath := m.Path(filepath.Join(dir, "dist.zip"))
	writeErr := errors.New("disk full")

	mockArchiver := adaptermocks.NewMockArchiver(t)
	mockSink := adaptermocks.NewMockArchiveSink(t)

	mockArchiver.EXPECT().Create(archivePath, 9).Return(mockSink, nil).Once()
	mockSink.EXPECT().AddFile("index.js", []byte("x"), os.FileMode(0o666)).Return(nil).Once()
	mockSink.EXPECT().AddFile("a.wasm", mock.Anything, mock.Anything).Return(writeErr).Once()
	mockSink.EXPECT().Close().Return(nil).Once()

	assembler := domain.NewAssembler(adapter.NewLocalFSAdapter(), mockArchiver)

	_, err := assembler.Assemble(context.Background(), m.BuildResult{
		Code:   "x",
		Assets: map[string]m.Asset{"a.wasm": {Content: []byte("w"), Mode: 0o644}},
	}, domain.AssembleArgs{
		ArchivePath: archivePath,
		SideDir:     m.Path(filepath.Join(dir, "dist")),
		Ext:         ".js",
		Compression: 9,
	})

	require.ErrorIs(t, err, m.ErrArchiveIO)
	require.ErrorIs(t, err, writeErr)
}

func TestAssembler_CloseErrorFailsTheAssembly(t *testing.T) {
	dir := t.TempDir()
	closeErr := errors.New("flush failed")

	mockArchiver := adaptermocks.NewMockArchiver(t)
	mockSink := adaptermocks.NewMockArchiveSink(t)

	mockArchiver.EXPECT().Create(mock.Anything, 5).Return(mockSink, nil).Once()
	mockSink.EXPECT().AddFile("index.js", mock.Anything, mock.Anything).Return(nil).Once()
	mockSink.EXPECT().Close().Return(closeErr).Once()

	_, err := domain.NewAssembler(adapter.NewLocalFSAdapter(), mockArchiver).Assemble(
		context.Background(),
		m.BuildResult{Code: "x"},
		domain.AssembleArgs{
			ArchivePath: m.Path(filepath.Join(dir, "dist.zip")),
			SideDir:     m.Path(filepath.Join(dir, "dist")),
			Ext:         ".js",
			Compression: 5,
		},
	)

	require.ErrorIs(t, err, m.ErrArchiveIO)
	require.ErrorIs(t, err, closeErr)
}

func TestAssembler_CreateError(t *testing.T) {
	dir := t.TempDir()
	mockArchiver := adaptermocks.NewMockArchiver(t)
	mockArchiver.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, errors.New("bad level")).Once()

	_, err := domain.NewAssembler(adapter.NewLocalFSAdapter(), mockArchiver).Assemble(
		context.Background(),
		m.BuildResult{Code: "x"},
		domain.AssembleArgs{SideDir: m.Path(filepath.Join(dir, "dist")), Ext: ".js"},
	)

	require.ErrorIs(t, err, m.ErrArchiveIO)
}
