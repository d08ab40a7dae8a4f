// Package adapter contains the infrastructure adapters behind the zipup pipeline:
// filesystem, bundler, archive sink and child processes.
package adapter

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	m "zipup.dev/pkg/zipup/internal/model"
)

// FSAdapter abstracts the filesystem operations the domain layer relies on so
// the pipeline can be tested without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps domain logic decoupled from os/fs.
type FSAdapter interface {
	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file, creating parent directories.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path m.Path) error

	// RemoveAll removes a path and all its contents. Missing paths are not an error.
	RemoveAll(path m.Path) error

	// Symlink creates link pointing at target.
	Symlink(target, link m.Path) error

	// FindUp looks for a directory called name in start and then in each parent,
	// one level at a time. It returns "" when the filesystem root is reached.
	FindUp(start m.Path, name string) (m.Path, error)

	// DirSize returns the recursive size in bytes of a directory; 0 if it does not exist.
	DirSize(path m.Path) (int64, error)

	// HashFile returns the SHA-256 hex digest of the file at path.
	HashFile(path m.Path) (string, error)

	// Abs resolves path against base unless it is already absolute.
	Abs(base, path m.Path) m.Path
}

// LocalFSAdapter is the os-backed FSAdapter.
type LocalFSAdapter struct{}

// NewLocalFSAdapter constructs a LocalFSAdapter.
func NewLocalFSAdapter() *LocalFSAdapter {
	return &LocalFSAdapter{}
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// ReadFile loads file contents from disk.
func (a *LocalFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - reading user project files is the point
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o755); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, perm)
}

// MkdirAll creates the directory tree.
func (a *LocalFSAdapter) MkdirAll(path m.Path) error {
	return os.MkdirAll(string(path), 0o755)
}

// RemoveAll removes a directory and all its contents.
func (a *LocalFSAdapter) RemoveAll(path m.Path) error {
	return os.RemoveAll(string(path))
}

// Symlink creates a symbolic link.
func (a *LocalFSAdapter) Symlink(target, link m.Path) error {
	if err := os.MkdirAll(filepath.Dir(string(link)), 0o755); err != nil {
		return err
	}

	return os.Symlink(string(target), string(link))
}

// FindUp walks from start towards the filesystem root one directory at a time.
func (a *LocalFSAdapter) FindUp(start m.Path, name string) (m.Path, error) {
	dir, err := filepath.Abs(string(start))
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, name)

		info, err := os.Stat(candidate)
		if err == nil && info.IsDir() {
			return m.Path(candidate), nil
		}

		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("stat %s: %w", candidate, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}

		dir = parent
	}
}

// DirSize sums the sizes of all regular files under path.
func (a *LocalFSAdapter) DirSize(path m.Path) (int64, error) {
	var size int64

	err := filepath.WalkDir(string(path), func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		size += info.Size()

		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}

	return size, err
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalFSAdapter) HashFile(path m.Path) (string, error) {
	content, err := a.ReadFile(path)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", sha256.Sum256(content)), nil
}

// Abs joins path onto base when path is relative.
func (a *LocalFSAdapter) Abs(base, path m.Path) m.Path {
	if filepath.IsAbs(string(path)) {
		return m.Path(filepath.Clean(string(path)))
	}

	return m.Path(filepath.Join(string(base), string(path)))
}
