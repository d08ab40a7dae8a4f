package adapter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zip"

	m "zipup.dev/pkg/zipup/internal/model"
)

// ArchiveSink accepts named in-memory entries and symlink descriptors and
// produces one archive when closed.
type ArchiveSink interface {
	AddFile(name string, content []byte, mode os.FileMode) error
	AddSymlink(link, target string) error
	// Close finalizes the archive and returns once it is fully on disk.
	Close() error
}

// Archiver creates archive sinks and unpacks archives.
type Archiver interface {
	Create(path m.Path, level int) (ArchiveSink, error)
	Extract(path, dest m.Path) error
}

// ZipArchiver writes and reads zip files.
type ZipArchiver struct{}

// NewZipArchiver constructs a ZipArchiver.
func NewZipArchiver() *ZipArchiver {
	return &ZipArchiver{}
}

// Create opens a streaming zip writer at path. Level 0 stores entries
// uncompressed, 1-9 deflate at that level.
func (a *ZipArchiver) Create(path m.Path, level int) (ArchiveSink, error) {
	if level < flate.NoCompression || level > flate.BestCompression {
		return nil, fmt.Errorf("compression level %d out of range 0-9", level)
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o755); err != nil {
		return nil, err
	}

	file, err := os.Create(string(path))
	if err != nil {
		return nil, err
	}

	writer := zip.NewWriter(file)
	writer.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, level)
	})

	method := zip.Deflate
	if level == flate.NoCompression {
		method = zip.Store
	}

	return &zipSink{file: file, writer: writer, method: method}, nil
}

type zipSink struct {
	file   *os.File
	writer *zip.Writer
	method uint16
	closed bool
}

func (s *zipSink) AddFile(name string, content []byte, mode os.FileMode) error {
	header := &zip.FileHeader{Name: filepath.ToSlash(name), Method: s.method}
	header.SetMode(mode.Perm())

	w, err := s.writer.CreateHeader(header)
	if err != nil {
		return err
	}

	_, err = w.Write(content)

	return err
}

func (s *zipSink) AddSymlink(link, target string) error {
	header := &zip.FileHeader{Name: filepath.ToSlash(link), Method: zip.Store}
	header.SetMode(os.ModeSymlink | 0o777)

	w, err := s.writer.CreateHeader(header)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, target)

	return err
}

func (s *zipSink) Close() error {
	if s.closed {
		return nil
	}

	s.closed = true

	return errors.Join(s.writer.Close(), s.file.Close())
}

// Extract unpacks the archive at path into dest, restoring file modes and symlinks.
func (a *ZipArchiver) Extract(path, dest m.Path) error {
	reader, err := zip.OpenReader(string(path))
	if err != nil {
		return err
	}

	defer func() { _ = reader.Close() }()

	root := filepath.Clean(string(dest))

	for _, file := range reader.File {
		target := filepath.Join(root, filepath.FromSlash(file.Name))
		if target != root && !strings.HasPrefix(target, root+string(filepath.Separator)) {
			return fmt.Errorf("archive entry %q escapes %s", file.Name, root)
		}

		if err := extractEntry(file, target); err != nil {
			return fmt.Errorf("extract %s: %w", file.Name, err)
		}
	}

	return nil
}

func extractEntry(file *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	mode := file.Mode()
	if mode.IsDir() {
		return os.MkdirAll(target, 0o755)
	}

	rc, err := file.Open()
	if err != nil {
		return err
	}

	defer func() { _ = rc.Close() }()

	if mode&os.ModeSymlink != 0 {
		linkTarget, err := io.ReadAll(rc)
		if err != nil {
			return err
		}

		return os.Symlink(string(linkTarget), target)
	}

	// #nosec G304 - target was checked to stay inside dest
	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode.Perm())
	if err != nil {
		return err
	}

	// #nosec G110 - archives are produced by this tool
	_, copyErr := io.Copy(out, rc)

	return errors.Join(copyErr, out.Close())
}
