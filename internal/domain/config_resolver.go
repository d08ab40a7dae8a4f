package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"zipup.dev/pkg/zipup/internal/adapter"
	m "zipup.dev/pkg/zipup/internal/model"
)

const (
	packageManifest = "package.json"
	manifestKey     = "zipup"
)

// ConfigFileNames are the conventional config files looked up in the working
// directory, in priority order.
var ConfigFileNames = []string{
	"zipup.config.json",
	"zipup.config.yaml",
	"zipup.config.yml",
	"zipup.config.toml",
}

// ConfigResolver produces the effective BuildConfig for one invocation.
type ConfigResolver interface {
	// Resolve reads the first available config source: the explicit path,
	// a conventional file in cwd, or the manifest's "zipup" block. A missing
	// config yields the zero BuildConfig.
	Resolve(ctx context.Context, cwd, explicitPath m.Path) (m.BuildConfig, error)
}

type configResolver struct {
	fsAdapter adapter.FSAdapter
}

// NewConfigResolver constructs a ConfigResolver reading through fsAdapter.
func NewConfigResolver(fsAdapter adapter.FSAdapter) ConfigResolver {
	return &configResolver{fsAdapter: fsAdapter}
}

func (r *configResolver) Resolve(ctx context.Context, cwd, explicitPath m.Path) (m.BuildConfig, error) {
	if err := ctx.Err(); err != nil {
		return m.BuildConfig{}, err
	}

	if explicitPath != "" {
		path := r.fsAdapter.Abs(cwd, explicitPath)

		content, err := r.fsAdapter.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return m.BuildConfig{}, fmt.Errorf("%w: %s", m.ErrConfigNotFound, path)
			}

			return m.BuildConfig{}, fmt.Errorf("read config %s: %w", path, err)
		}

		return parseConfig(path, content)
	}

	for _, name := range ConfigFileNames {
		path := m.Path(filepath.Join(string(cwd), name))

		content, err := r.fsAdapter.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}

		if err != nil {
			return m.BuildConfig{}, fmt.Errorf("read config %s: %w", path, err)
		}

		slog.Debug("Using config file", "path", path)

		return parseConfig(path, content)
	}

	return r.fromManifest(m.Path(filepath.Join(string(cwd), packageManifest)))
}

func (r *configResolver) fromManifest(path m.Path) (m.BuildConfig, error) {
	content, err := r.fsAdapter.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return m.BuildConfig{}, nil
	}

	if err != nil {
		return m.BuildConfig{}, fmt.Errorf("read %s: %w", path, err)
	}

	var manifest map[string]json.RawMessage
	if err := json.Unmarshal(content, &manifest); err != nil {
		slog.Error("Failed to parse manifest", "path", path, "error", err)
		return m.BuildConfig{}, fmt.Errorf("%w: %s: %w", m.ErrConfigParse, path, err)
	}

	block, ok := manifest[manifestKey]
	if !ok || bytes.Equal(bytes.TrimSpace(block), []byte("null")) {
		return m.BuildConfig{}, nil
	}

	slog.Debug("Using manifest config block", "path", path)

	return parseConfig(path, block)
}

// parseConfig decodes content by the file extension of path; manifests and
// unknown extensions are treated as JSON.
func parseConfig(path m.Path, content []byte) (m.BuildConfig, error) {
	var (
		cfg m.BuildConfig
		err error
	)

	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &cfg)
	case ".toml":
		err = toml.Unmarshal(content, &cfg)
	default:
		err = json.Unmarshal(content, &cfg)
	}

	if err != nil {
		slog.Error("Failed to parse config", "path", path, "error", err)
		return m.BuildConfig{}, fmt.Errorf("%w: %s: %w", m.ErrConfigParse, path, err)
	}

	return cfg, nil
}

// Overrides are the explicitly supplied CLI flags. Nil fields were not set.
type Overrides struct {
	Quiet     *bool
	License   *string
	Minify    *bool
	SourceMap *bool
	External  []string
	Target    *string
}

// ApplyOverrides returns cfg with every set override applied.
func ApplyOverrides(cfg m.BuildConfig, overrides Overrides) m.BuildConfig {
	if overrides.Quiet != nil {
		cfg.Quiet = *overrides.Quiet
	}

	if overrides.License != nil {
		cfg.License = *overrides.License
	}

	if overrides.Minify != nil {
		cfg.Minify = *overrides.Minify
	}

	if overrides.SourceMap != nil {
		cfg.SourceMap = *overrides.SourceMap
	}

	if overrides.External != nil {
		cfg.External = append([]string(nil), overrides.External...)
	}

	if overrides.Target != nil {
		cfg.Target = *overrides.Target
	}

	return cfg
}
