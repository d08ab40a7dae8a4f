package domain

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"zipup.dev/pkg/zipup/internal/adapter"
	m "zipup.dev/pkg/zipup/internal/model"
)

const (
	// SideDirName is the directory, relative to the working directory, that
	// receives side files in build mode.
	SideDirName = "dist"

	workspacePrefix = "zipup-run-"
)

// Request is a build or run invocation as the dispatcher received it.
type Request struct {
	Entry       string
	Run         bool
	Out         string
	Filename    string
	ConfigPath  string
	Ignore      []string
	Compression int
	StatsOut    string
	Watch       bool
	NoCache     bool
	Interpreter string
	// ProgramArgs are passed to the staged program in run mode.
	ProgramArgs []string
	Overrides   Overrides
}

// Planner turns a Request into BuildArgs: it resolves the entry, the config
// and every output location, and clears a stale run workspace.
type Planner interface {
	Plan(ctx context.Context, env Env, req Request) (BuildArgs, error)
}

type planner struct {
	fsAdapter adapter.FSAdapter
	resolver  ConfigResolver
	tempDir   func() string
}

// NewPlanner constructs a Planner.
func NewPlanner(fsAdapter adapter.FSAdapter, resolver ConfigResolver) Planner {
	return &planner{fsAdapter: fsAdapter, resolver: resolver, tempDir: os.TempDir}
}

func (p *planner) Plan(ctx context.Context, env Env, req Request) (BuildArgs, error) {
	if req.Run && req.Watch {
		return BuildArgs{}, m.NewUsageError("--watch cannot be used with run")
	}

	if req.Run && req.Out != "" {
		return BuildArgs{}, m.NewUsageError("--out cannot be used with run")
	}

	if req.Watch && req.Out != "" {
		return BuildArgs{}, m.NewUsageError("--out cannot be used with --watch")
	}

	if req.Compression < 0 || req.Compression > 9 {
		return BuildArgs{}, m.NewUsageError("--compression must be between 0 and 9, got %d", req.Compression)
	}

	ignore, err := m.NewIgnoreSet(req.Ignore)
	if err != nil {
		return BuildArgs{}, m.WrapUsageError(err)
	}

	entry, err := ResolveEntry(p.fsAdapter, env.Resolve(req.Entry))
	if err != nil {
		return BuildArgs{}, m.WrapUsageError(err)
	}

	cfg, err := p.resolver.Resolve(ctx, env.Cwd, m.Path(req.ConfigPath))
	if err != nil {
		return BuildArgs{}, err
	}

	stem := req.Filename
	if stem == "" {
		stem = m.DefaultFilename
	}

	args := BuildArgs{
		Entry:       entry,
		Config:      ApplyOverrides(cfg, req.Overrides),
		Stem:        stem,
		Ext:         m.CodeExt(entry),
		Compression: req.Compression,
		Ignore:      ignore,
		Watch:       req.Watch,
		NoCache:     req.NoCache,
		Run:         req.Run,
		Interpreter: req.Interpreter,
		ProgramArgs: req.ProgramArgs,
	}

	if req.StatsOut != "" {
		args.StatsOut = env.Resolve(req.StatsOut)
	}

	if !req.Run {
		out := req.Out
		if out == "" {
			out = m.DefaultArchiveName
		}

		args.ArchivePath = env.Resolve(out)
		args.SideDir = env.Resolve(SideDirName)

		return args, nil
	}

	args.Workspace = WorkspacePath(p.tempDir(), entry)
	args.ArchivePath = m.Path(filepath.Join(string(args.Workspace), m.DefaultArchiveName))
	args.SideDir = args.Workspace

	if err := p.fsAdapter.RemoveAll(args.Workspace); err != nil {
		slog.Error("Failed to clear stale workspace", "workspace", args.Workspace, "error", err)
		return BuildArgs{}, fmt.Errorf("clear workspace %s: %w", args.Workspace, err)
	}

	return args, nil
}

// WorkspacePath is the run workspace for entry: stable across runs of the
// same absolute entry path.
func WorkspacePath(tempDir string, entry m.Path) m.Path {
	sum := sha256.Sum256([]byte(entry))
	return m.Path(filepath.Join(tempDir, fmt.Sprintf("%s%x", workspacePrefix, sum[:8])))
}

// ResolveEntry resolves path the way a module loader would: the file itself,
// then with .js or .cjs appended, then as a directory through the manifest's
// "main" field, index.js or index.cjs.
func ResolveEntry(fsAdapter adapter.FSAdapter, path m.Path) (m.Path, error) {
	if resolved, ok := resolveFile(fsAdapter, path); ok {
		return resolved, nil
	}

	info, err := fsAdapter.FileInfo(path)
	if err == nil && info.IsDir() {
		if resolved, ok := resolveDir(fsAdapter, path); ok {
			return resolved, nil
		}
	}

	return "", fmt.Errorf("%w: %s", m.ErrEntryNotFound, path)
}

func resolveFile(fsAdapter adapter.FSAdapter, path m.Path) (m.Path, bool) {
	for _, candidate := range []m.Path{path, path + ".js", path + ".cjs"} {
		info, err := fsAdapter.FileInfo(candidate)
		if err == nil && info.Mode().IsRegular() {
			return candidate, true
		}
	}

	return "", false
}

func resolveDir(fsAdapter adapter.FSAdapter, dir m.Path) (m.Path, bool) {
	content, err := fsAdapter.ReadFile(m.Path(filepath.Join(string(dir), packageManifest)))
	if err == nil {
		var manifest struct {
			Main string `json:"main"`
		}

		if json.Unmarshal(content, &manifest) == nil && manifest.Main != "" {
			if resolved, ok := resolveFile(fsAdapter, fsAdapter.Abs(dir, m.Path(manifest.Main))); ok {
				return resolved, true
			}
		}
	}

	for _, index := range []string{"index.js", "index.cjs"} {
		if resolved, ok := resolveFile(fsAdapter, m.Path(filepath.Join(string(dir), index))); ok {
			return resolved, true
		}
	}

	return "", false
}
