package adapter

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	m "zipup.dev/pkg/zipup/internal/model"
	"zipup.dev/pkg/zipup/pkg"
)

// cacheRecord is the persisted form of one cached build.
type cacheRecord struct {
	ID       string
	Key      string
	Inputs   map[string]string // absolute input path -> sha256
	Code     string
	Map      string
	Assets   map[string]m.Asset
	Symlinks map[string]string
	Stats    []byte
}

// metafile is the subset of the esbuild metafile the cache needs.
type metafile struct {
	Inputs map[string]json.RawMessage `json:"inputs"`
}

// BuildCache persists build results per entry file in the cache directory. A
// record is reused while its key matches and every input file listed in the
// build's metafile still hashes the same.
type BuildCache struct {
	dir m.Path
	fs  FSAdapter
}

// NewBuildCache constructs a BuildCache rooted at dir.
func NewBuildCache(dir m.Path, fsAdapter FSAdapter) *BuildCache {
	return &BuildCache{dir: dir, fs: fsAdapter}
}

// DefaultCacheDir is <user cache dir>/zipup, or <tmp>/zipup-cache when the
// user cache dir is unknown.
func DefaultCacheDir() m.Path {
	dir, err := os.UserCacheDir()
	if err != nil {
		return m.Path(filepath.Join(os.TempDir(), "zipup-cache"))
	}

	return m.Path(filepath.Join(dir, "zipup"))
}

// Dir returns the cache directory.
func (c *BuildCache) Dir() m.Path {
	return c.dir
}

func (c *BuildCache) recordPath(entry m.Path) string {
	sum := sha256.Sum256([]byte(entry))
	return filepath.Join(string(c.dir), fmt.Sprintf("%x.gob", sum[:8]))
}

// Load returns the cached result for entry if it is still valid for key.
func (c *BuildCache) Load(entry m.Path, key string) (m.BuildResult, bool) {
	spill, err := pkg.OpenFileSpill[cacheRecord](c.recordPath(entry))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("unreadable build cache record", "entry", entry, "error", err)
		}

		return m.BuildResult{}, false
	}

	defer func() { _ = spill.Close() }()

	if spill.Len() == 0 {
		return m.BuildResult{}, false
	}

	record, err := spill.Get(spill.Len() - 1)
	if err != nil || record.Key != key || len(record.Inputs) == 0 {
		return m.BuildResult{}, false
	}

	for path, want := range record.Inputs {
		got, err := c.fs.HashFile(m.Path(path))
		if err != nil || got != want {
			slog.Debug("build cache input changed", "entry", entry, "input", path)
			return m.BuildResult{}, false
		}
	}

	slog.Debug("build cache hit", "entry", entry, "record", record.ID)

	result := m.BuildResult{
		Code:     record.Code,
		Map:      record.Map,
		Assets:   record.Assets,
		Symlinks: record.Symlinks,
		Stats:    record.Stats,
	}

	if result.Assets == nil {
		result.Assets = map[string]m.Asset{}
	}

	if result.Symlinks == nil {
		result.Symlinks = map[string]string{}
	}

	return result, true
}

// Store records result for entry. Inputs are read from the result's metafile
// and resolved against workDir.
func (c *BuildCache) Store(entry m.Path, key string, workDir string, result m.BuildResult) error {
	inputs, err := c.hashInputs(workDir, result.Stats)
	if err != nil {
		return err
	}

	spill, err := pkg.NewFileSpill[cacheRecord](c.recordPath(entry))
	if err != nil {
		return err
	}

	record := cacheRecord{
		ID:       uuid.NewString(),
		Key:      key,
		Inputs:   inputs,
		Code:     result.Code,
		Map:      result.Map,
		Assets:   result.Assets,
		Symlinks: result.Symlinks,
		Stats:    result.Stats,
	}

	return errors.Join(spill.Append(record), spill.Close())
}

func (c *BuildCache) hashInputs(workDir string, stats []byte) (map[string]string, error) {
	if len(stats) == 0 {
		return nil, errors.New("build has no metafile")
	}

	var meta metafile
	if err := json.Unmarshal(stats, &meta); err != nil {
		return nil, fmt.Errorf("parse metafile: %w", err)
	}

	inputs := make(map[string]string, len(meta.Inputs))

	for name := range meta.Inputs {
		// Namespaced inputs (e.g. "data:...") have no file to re-check.
		if strings.Contains(name, ":") && !filepath.IsAbs(name) {
			return nil, fmt.Errorf("input %q is not a file", name)
		}

		path := name
		if !filepath.IsAbs(path) {
			path = filepath.Join(workDir, filepath.FromSlash(name))
		}

		hash, err := c.fs.HashFile(m.Path(path))
		if err != nil {
			return nil, err
		}

		inputs[path] = hash
	}

	return inputs, nil
}

// CacheKey derives the cache key for an entry built with cfg by bundler version.
func CacheKey(entry m.Path, cfg m.BuildConfig, version string) string {
	payload, _ := json.Marshal(struct {
		Entry   m.Path
		Config  m.BuildConfig
		Version string
	}{entry, cfg, version})

	return fmt.Sprintf("%x", sha256.Sum256(payload))
}
