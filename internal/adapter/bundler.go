package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/evanw/esbuild/pkg/api"

	m "zipup.dev/pkg/zipup/internal/model"
)

const (
	esbuildModule = "github.com/evanw/esbuild"
	legalSuffix   = ".LEGAL.txt"
	outDirName    = "zipup-out"
	assetMode     = 0o644
)

// BundleOptions are the per-invocation inputs of a bundler run.
type BundleOptions struct {
	Config  m.BuildConfig
	NoCache bool
}

// WatchHandlers receive watch-mode events. OnRebuildStart fires before every
// build, OnResult after it with either a result or a result carrying Err.
type WatchHandlers struct {
	OnRebuildStart func()
	OnResult       func(result m.BuildResult)
}

// Bundler compiles an entry point into a single code blob plus assets.
type Bundler interface {
	// Build runs one build and returns its result.
	Build(ctx context.Context, entry m.Path, opts BundleOptions) (m.BuildResult, error)
	// Watch builds, then rebuilds on every change until ctx is cancelled.
	Watch(ctx context.Context, entry m.Path, opts BundleOptions, handlers WatchHandlers) error
	// Version reports the bundler version for summaries.
	Version() string
	// CacheDir is where the bundler keeps persisted state.
	CacheDir() m.Path
}

// EsbuildBundler bundles with the in-process esbuild Go API.
type EsbuildBundler struct {
	cache *BuildCache
}

// NewEsbuildBundler constructs an EsbuildBundler caching builds under cacheDir.
func NewEsbuildBundler(cacheDir m.Path, fsAdapter FSAdapter) *EsbuildBundler {
	return &EsbuildBundler{cache: NewBuildCache(cacheDir, fsAdapter)}
}

// CacheDir implements Bundler.
func (b *EsbuildBundler) CacheDir() m.Path {
	return b.cache.Dir()
}

// Version implements Bundler.
func (b *EsbuildBundler) Version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	for _, dep := range info.Deps {
		if dep.Path == esbuildModule {
			return strings.TrimPrefix(dep.Version, "v")
		}
	}

	return "unknown"
}

// Build implements Bundler.
func (b *EsbuildBundler) Build(ctx context.Context, entry m.Path, opts BundleOptions) (m.BuildResult, error) {
	if err := ctx.Err(); err != nil {
		return m.BuildResult{}, err
	}

	options, err := buildOptions(entry, opts.Config)
	if err != nil {
		return m.BuildResult{}, err
	}

	abs := m.Path(options.EntryPoints[0])
	key := CacheKey(abs, opts.Config, b.Version())

	if !opts.NoCache {
		if cached, ok := b.cache.Load(abs, key); ok {
			return cached, nil
		}
	}

	slog.Debug("esbuild build", "entry", abs, "outfile", options.Outfile)

	result, err := convertResult(api.Build(options), options.Outfile, opts.Config.License)
	if err != nil {
		slog.Error("Build failed", "entry", abs, "error", err)
		return m.BuildResult{}, err
	}

	if !opts.NoCache {
		if err := b.cache.Store(abs, key, options.AbsWorkingDir, result); err != nil {
			slog.Warn("Failed to store build cache record", "entry", abs, "error", err)
		}
	}

	return result, nil
}

// Watch implements Bundler.
func (b *EsbuildBundler) Watch(ctx context.Context, entry m.Path, opts BundleOptions, handlers WatchHandlers) error {
	options, err := buildOptions(entry, opts.Config)
	if err != nil {
		return err
	}

	outfile := options.Outfile
	license := opts.Config.License

	options.Plugins = append(options.Plugins, api.Plugin{
		Name: "zipup-watch",
		Setup: func(build api.PluginBuild) {
			build.OnStart(func() (api.OnStartResult, error) {
				if handlers.OnRebuildStart != nil {
					handlers.OnRebuildStart()
				}

				return api.OnStartResult{}, nil
			})
			build.OnEnd(func(res *api.BuildResult) (api.OnEndResult, error) {
				result, err := convertResult(*res, outfile, license)
				if err != nil {
					result = m.BuildResult{Err: err}
				}

				if handlers.OnResult != nil {
					handlers.OnResult(result)
				}

				return api.OnEndResult{}, nil
			})
		},
	})

	buildCtx, ctxErr := api.Context(options)
	if ctxErr != nil {
		return buildError(ctxErr.Errors)
	}

	defer buildCtx.Dispose()

	if err := buildCtx.Watch(api.WatchOptions{}); err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}

	slog.Info("Watching for changes", "entry", options.EntryPoints[0])

	<-ctx.Done()

	return nil
}

func buildOptions(entry m.Path, cfg m.BuildConfig) (api.BuildOptions, error) {
	abs, err := filepath.Abs(string(entry))
	if err != nil {
		return api.BuildOptions{}, err
	}

	workDir := filepath.Dir(abs)
	ext := m.CodeExt(m.Path(abs))

	options := api.BuildOptions{
		EntryPoints:       []string{abs},
		AbsWorkingDir:     workDir,
		Outfile:           filepath.Join(workDir, outDirName, m.DefaultFilename+ext),
		Bundle:            true,
		Write:             false,
		Metafile:          true,
		Platform:          api.PlatformNode,
		Format:            api.FormatCommonJS,
		LogLevel:          api.LogLevelSilent,
		External:          cfg.External,
		MinifyWhitespace:  cfg.Minify,
		MinifyIdentifiers: cfg.Minify,
		MinifySyntax:      cfg.Minify,
		Loader: map[string]api.Loader{
			".node": api.LoaderFile,
			".wasm": api.LoaderFile,
		},
	}

	if cfg.SourceMap {
		options.Sourcemap = api.SourceMapExternal
	}

	if cfg.License != "" {
		options.LegalComments = api.LegalCommentsExternal
	}

	if err := applyTarget(&options, cfg.Target); err != nil {
		return api.BuildOptions{}, err
	}

	return options, nil
}

var esTargets = map[string]api.Target{
	"esnext": api.ESNext,
	"es5":    api.ES5,
	"es2015": api.ES2015,
	"es2016": api.ES2016,
	"es2017": api.ES2017,
	"es2018": api.ES2018,
	"es2019": api.ES2019,
	"es2020": api.ES2020,
	"es2021": api.ES2021,
	"es2022": api.ES2022,
}

// applyTarget accepts "esNNNN"/"esnext" language targets and "nodeNN" runtime targets.
func applyTarget(options *api.BuildOptions, target string) error {
	target = strings.ToLower(strings.TrimSpace(target))
	if target == "" {
		return nil
	}

	if t, ok := esTargets[target]; ok {
		options.Target = t
		return nil
	}

	if version, ok := strings.CutPrefix(target, "node"); ok && version != "" {
		options.Engines = []api.Engine{{Name: api.EngineNode, Version: version}}
		return nil
	}

	return fmt.Errorf("unsupported target %q", target)
}

// convertResult maps esbuild output files onto a BuildResult. The legal
// comments file becomes the asset named license, or is dropped when no
// license file was requested.
func convertResult(res api.BuildResult, outfile, license string) (m.BuildResult, error) {
	if len(res.Errors) > 0 {
		return m.BuildResult{}, buildError(res.Errors)
	}

	result := m.BuildResult{
		Assets:   map[string]m.Asset{},
		Symlinks: map[string]string{},
	}
	outDir := filepath.Dir(outfile)
	sources := assetSources(res.Metafile, filepath.Dir(outDir))

	for _, file := range res.OutputFiles {
		switch file.Path {
		case outfile:
			result.Code = string(file.Contents)
		case outfile + ".map":
			result.Map = string(file.Contents)
		default:
			name, err := filepath.Rel(outDir, file.Path)
			if err != nil {
				return m.BuildResult{}, fmt.Errorf("asset %s: %w", file.Path, err)
			}

			name = filepath.ToSlash(name)

			if strings.HasSuffix(name, legalSuffix) {
				if license == "" {
					continue
				}

				name = license
			}

			result.Assets[name] = m.Asset{Content: file.Contents, Mode: sourceMode(sources[file.Path])}
		}
	}

	if res.Metafile != "" {
		result.Stats = json.RawMessage(res.Metafile)
	}

	return result, nil
}

// assetSources maps absolute output paths with exactly one input to that
// input's absolute path. Metafile paths are relative to workDir.
func assetSources(raw, workDir string) map[string]string {
	var meta struct {
		Outputs map[string]struct {
			Inputs map[string]json.RawMessage `json:"inputs"`
		} `json:"outputs"`
	}

	if raw == "" {
		return nil
	}

	if err := json.Unmarshal([]byte(raw), &meta); err != nil {
		slog.Debug("Unreadable metafile, asset modes fall back to the default", "error", err)
		return nil
	}

	sources := make(map[string]string, len(meta.Outputs))

	for output, info := range meta.Outputs {
		if len(info.Inputs) != 1 {
			continue
		}

		for input := range info.Inputs {
			sources[filepath.Join(workDir, filepath.FromSlash(output))] = filepath.Join(workDir, filepath.FromSlash(input))
		}
	}

	return sources
}

// sourceMode returns the permission bits of source, or assetMode when the
// asset has no single source file on disk.
func sourceMode(source string) os.FileMode {
	if source == "" {
		return assetMode
	}

	info, err := os.Stat(source)
	if err != nil || !info.Mode().IsRegular() {
		return assetMode
	}

	return info.Mode().Perm()
}

func buildError(messages []api.Message) error {
	formatted := api.FormatMessages(messages, api.FormatMessagesOptions{Kind: api.ErrorMessage})

	return fmt.Errorf("%w: %s", m.ErrBuild, strings.TrimSpace(strings.Join(formatted, "")))
}
