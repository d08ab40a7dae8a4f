// Package pkg provides small storage utilities shared by zipup components.
package pkg

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// ErrReadOnly is returned when appending to a spill that was opened for reading.
var ErrReadOnly = errors.New("filespill is read-only")

// FileSpill is a gob-encoded, append-only sequence of items of type T kept in a file.
type FileSpill[T any] interface {
	Len() uint64
	Path() string
	Append(item T) error
	AppendBatch(items []T) error
	Get(index uint64) (T, error)
	Range(f func(index uint64, item T) error) error
	Close() error
}

type fileSpillImpl[T any] struct {
	path    string
	file    *os.File
	encoder *gob.Encoder
	mu      sync.Mutex
	length  uint64
}

// NewFileSpill creates (or truncates) the spill file at path.
func NewFileSpill[T any](path string) (FileSpill[T], error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		slog.Error("failed to create spill directory", "path", path, "error", err)
		return nil, fmt.Errorf("failed to create spill directory: %w", err)
	}

	// #nosec G304 - path is derived from the cache directory
	file, err := os.Create(path)
	if err != nil {
		slog.Error("failed to create spill file", "path", path, "error", err)
		return nil, fmt.Errorf("failed to create spill file: %w", err)
	}

	slog.Debug("created filespill", "path", path)

	return &fileSpillImpl[T]{
		path:    path,
		file:    file,
		encoder: gob.NewEncoder(file),
	}, nil
}

// OpenFileSpill opens an existing spill file for reading. Append fails with
// ErrReadOnly on the returned spill.
func OpenFileSpill[T any](path string) (FileSpill[T], error) {
	// #nosec G304 - path is derived from the cache directory
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer func() { _ = file.Close() }()

	decoder := gob.NewDecoder(file)

	var length uint64

	for {
		var item T

		err := decoder.Decode(&item)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			slog.Warn("corrupt filespill", "path", path, "index", length, "error", err)
			return nil, fmt.Errorf("failed to decode item at index %d: %w", length, err)
		}

		length++
	}

	slog.Debug("opened filespill", "path", path, "length", length)

	return &fileSpillImpl[T]{path: path, length: length}, nil
}

// Append implements FileSpill.
func (f *fileSpillImpl[T]) Append(item T) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.encoder == nil {
		return ErrReadOnly
	}

	if err := f.encoder.Encode(item); err != nil {
		slog.Error("failed to encode item", "path", f.path, "index", f.length, "error", err)
		return fmt.Errorf("failed to encode item: %w", err)
	}

	f.length++

	return nil
}

// Path implements FileSpill.
func (f *fileSpillImpl[T]) Path() string {
	return f.path
}

// AppendBatch implements FileSpill.
func (f *fileSpillImpl[T]) AppendBatch(items []T) error {
	for _, item := range items {
		if err := f.Append(item); err != nil {
			return err
		}
	}

	return nil
}

// Close implements FileSpill.
func (f *fileSpillImpl[T]) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.encoder = nil

	if f.file == nil {
		return nil
	}

	err := f.file.Close()
	f.file = nil

	if err != nil {
		slog.Error("failed to close file", "path", f.path, "error", err)
		return err
	}

	return nil
}

// Get implements FileSpill.
func (f *fileSpillImpl[T]) Get(index uint64) (T, error) {
	var found T

	if f.Len() <= index {
		return found, fmt.Errorf("index %d out of bounds (length %d)", index, f.Len())
	}

	err := f.Range(func(i uint64, item T) error {
		if i == index {
			found = item
			return errStopRange
		}

		return nil
	})
	if err != nil && !errors.Is(err, errStopRange) {
		var zero T
		return zero, err
	}

	return found, nil
}

var errStopRange = errors.New("stop range")

// Len implements FileSpill.
func (f *fileSpillImpl[T]) Len() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.length
}

// Range implements FileSpill.
func (f *fileSpillImpl[T]) Range(fn func(index uint64, item T) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	// #nosec G304 - path is derived from the cache directory
	file, err := os.Open(f.path)
	if err != nil {
		slog.Error("failed to open file for range", "path", f.path, "error", err)
		return fmt.Errorf("failed to open file: %w", err)
	}

	defer func() { _ = file.Close() }()

	decoder := gob.NewDecoder(file)

	for i := range f.length {
		// Decode into a fresh value: gob leaves absent fields untouched.
		var item T
		if err := decoder.Decode(&item); err != nil {
			slog.Error("failed to decode item during range", "path", f.path, "index", i, "error", err)
			return fmt.Errorf("failed to decode item at index %d: %w", i, err)
		}

		if err := fn(i, item); err != nil {
			return err
		}
	}

	return nil
}
