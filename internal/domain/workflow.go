package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"zipup.dev/pkg/zipup/internal/adapter"
	"zipup.dev/pkg/zipup/internal/controller"
	m "zipup.dev/pkg/zipup/internal/model"
)

// BuildArgs is the fully resolved input of one build invocation.
type BuildArgs struct {
	Entry       m.Path
	Config      m.BuildConfig
	ArchivePath m.Path
	SideDir     m.Path
	Stem        string
	Ext         string
	Compression int
	Ignore      m.IgnoreSet
	StatsOut    m.Path
	Watch       bool
	NoCache     bool
	// Run stages and executes the archive after each successful build.
	Run         bool
	Workspace   m.Path
	Interpreter string
	ProgramArgs []string
}

// Workflow drives the bundler and packages every result it produces.
type Workflow interface {
	// Build packages one build, or keeps rebuilding until ctx is cancelled
	// when args.Watch is set.
	Build(ctx context.Context, env Env, args BuildArgs) error
}

type workflow struct {
	fsAdapter  adapter.FSAdapter
	bundler    adapter.Bundler
	assembler  Assembler
	supervisor Supervisor
	ui         controller.UI
}

// NewWorkflow creates a Workflow with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.FSAdapter,
	bundler adapter.Bundler,
	assembler Assembler,
	supervisor Supervisor,
	ui controller.UI,
) Workflow {
	return &workflow{
		fsAdapter:  fsAdapter,
		bundler:    bundler,
		assembler:  assembler,
		supervisor: supervisor,
		ui:         ui,
	}
}

func (w *workflow) Build(ctx context.Context, env Env, args BuildArgs) error {
	if args.Watch {
		return w.watch(ctx, env, args)
	}

	start := time.Now()

	result, err := w.bundler.Build(ctx, args.Entry, w.bundleOptions(args))
	if err != nil {
		return fmt.Errorf("build %s: %w", args.Entry, err)
	}

	if err := w.publish(ctx, result, args, time.Since(start)); err != nil {
		if args.Run {
			w.removeWorkspace(args.Workspace)
		}

		return err
	}

	if !args.Run {
		return nil
	}

	return w.supervisor.Run(ctx, env, w.runArgs(args))
}

// publish assembles the archive, then reports it and writes the stats file.
func (w *workflow) publish(ctx context.Context, result m.BuildResult, args BuildArgs, elapsed time.Duration) error {
	_, err := w.assembler.Assemble(ctx, result, AssembleArgs{
		ArchivePath: args.ArchivePath,
		SideDir:     args.SideDir,
		Stem:        args.Stem,
		Ext:         args.Ext,
		Compression: args.Compression,
		License:     args.Config.License,
		Ignore:      args.Ignore,
	})
	if err != nil {
		return fmt.Errorf("assemble %s: %w", args.ArchivePath, err)
	}

	if !args.Config.Quiet {
		summary := RenderSummary(SummaryInput{
			Code:      result.Code,
			Map:       result.Map,
			Assets:    result.Assets,
			Stem:      args.Stem,
			Ext:       args.Ext,
			OutDir:    outDirLabel(args),
			BuildTime: elapsed,
			Version:   w.bundler.Version(),
		})

		if err := w.ui.DisplaySummary(ctx, summary); err != nil {
			return fmt.Errorf("display summary: %w", err)
		}
	}

	if args.StatsOut != "" {
		if err := w.writeStats(args.StatsOut, result.Stats); err != nil {
			return err
		}
	}

	return nil
}

// removeWorkspace drops a run workspace the supervisor never took over.
func (w *workflow) removeWorkspace(workspace m.Path) {
	if workspace == "" {
		return
	}

	if err := w.fsAdapter.RemoveAll(workspace); err != nil {
		slog.Error("Failed to remove workspace", "workspace", workspace, "error", err)
	}
}

func (w *workflow) writeStats(path m.Path, stats json.RawMessage) error {
	if len(stats) == 0 {
		stats = json.RawMessage("{}")
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, stats, "", "  "); err != nil {
		return fmt.Errorf("format stats: %w", err)
	}

	pretty.WriteByte('\n')

	if err := w.fsAdapter.WriteFile(path, pretty.Bytes(), sideFileMode); err != nil {
		slog.Error("Failed to write stats file", "path", path, "error", err)
		return fmt.Errorf("write stats %s: %w", path, err)
	}

	return nil
}

// watch blocks until ctx is cancelled. Rebuild failures are reported through
// the UI and never end the loop.
func (w *workflow) watch(ctx context.Context, env Env, args BuildArgs) error {
	var (
		mu        sync.Mutex
		start     time.Time
		stopChild context.CancelFunc
		children  sync.WaitGroup
	)

	stopRunning := func() {
		if stopChild != nil {
			stopChild()
			stopChild = nil
		}
	}

	handlers := adapter.WatchHandlers{
		OnRebuildStart: func() {
			mu.Lock()
			defer mu.Unlock()

			stopRunning()
			start = time.Now()

			w.ui.DisplayWatchStatus(ctx, controller.WatchRebuilding, "")
		},
		OnResult: func(result m.BuildResult) {
			mu.Lock()
			defer mu.Unlock()

			if result.Err != nil {
				w.ui.DisplayWatchStatus(ctx, controller.WatchFailed, "")
				w.ui.DisplayBuildError(ctx, result.Err)

				return
			}

			if err := w.publish(ctx, result, args, time.Since(start)); err != nil {
				slog.Error("Failed to package rebuild", "entry", args.Entry, "error", err)
				w.ui.DisplayBuildError(ctx, err)

				return
			}

			w.ui.DisplayWatchStatus(ctx, controller.WatchRebuilt, string(args.ArchivePath))

			if args.Run {
				childCtx, cancel := context.WithCancel(ctx)
				stopChild = cancel

				children.Add(1)

				go func() {
					defer children.Done()

					if err := w.supervisor.Run(childCtx, env, w.runArgs(args)); err != nil && childCtx.Err() == nil {
						slog.Info("Staged program ended", "error", err)
					}
				}()
			}
		},
	}

	w.ui.DisplayWatchStatus(ctx, controller.WatchStarted, string(args.Entry))

	err := w.bundler.Watch(ctx, args.Entry, w.bundleOptions(args), handlers)

	mu.Lock()
	stopRunning()
	mu.Unlock()

	children.Wait()

	if err != nil {
		return fmt.Errorf("watch %s: %w", args.Entry, err)
	}

	return nil
}

func (w *workflow) bundleOptions(args BuildArgs) adapter.BundleOptions {
	return adapter.BundleOptions{Config: args.Config, NoCache: args.NoCache}
}

func (w *workflow) runArgs(args BuildArgs) RunArgs {
	return RunArgs{
		ArchivePath: args.ArchivePath,
		Workspace:   args.Workspace,
		BuildFile:   args.Entry,
		Stem:        args.Stem,
		Ext:         args.Ext,
		Interpreter: args.Interpreter,
		Args:        args.ProgramArgs,
	}
}

func outDirLabel(args BuildArgs) string {
	return filepath.ToSlash(filepath.Base(string(args.SideDir)))
}
