package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"zipup.dev/pkg/zipup/internal/adapter"
	m "zipup.dev/pkg/zipup/internal/model"
)

const (
	// DefaultInterpreter runs the staged entry.
	DefaultInterpreter = "node"

	dependencyDir = "node_modules"

	exitInterrupt = 130
	exitTerminate = 143
)

// RunArgs describes one staged execution.
type RunArgs struct {
	ArchivePath m.Path
	Workspace   m.Path
	// BuildFile is the entry the archive was built from; dependencies are
	// looked up from its directory.
	BuildFile   m.Path
	Stem        string
	Ext         string
	Interpreter string
	Args        []string
}

// Supervisor stages an archive, runs it as a child process and removes the
// staging directory however the child ends.
type Supervisor interface {
	Run(ctx context.Context, env Env, args RunArgs) error
}

type supervisor struct {
	fsAdapter      adapter.FSAdapter
	archiver       adapter.Archiver
	processAdapter adapter.ProcessAdapter
}

// NewSupervisor constructs a Supervisor.
func NewSupervisor(fsAdapter adapter.FSAdapter, archiver adapter.Archiver, processAdapter adapter.ProcessAdapter) Supervisor {
	return &supervisor{
		fsAdapter:      fsAdapter,
		archiver:       archiver,
		processAdapter: processAdapter,
	}
}

type childExit struct {
	code int
	err  error
}

func (s *supervisor) Run(ctx context.Context, env Env, args RunArgs) error {
	defer s.cleanup(args.Workspace)

	entry, err := s.stage(args)
	if err != nil {
		return err
	}

	interpreter := args.Interpreter
	if interpreter == "" {
		interpreter = DefaultInterpreter
	}

	spec := adapter.ProcessSpec{
		Name:   interpreter,
		Args:   append([]string{string(entry)}, args.Args...),
		Dir:    string(env.Cwd),
		Stdout: env.Stdout,
		Stderr: env.Stderr,
	}
	if env.Direct {
		spec.Stdin = env.Stdin
	}

	source := env.Signals
	if source == nil {
		source = OSSignals()
	}

	signals := make(chan os.Signal, 1)
	source.Notify(signals, os.Interrupt, syscall.SIGTERM)

	stopSignals := func() { source.Stop(signals) }
	defer stopSignals()

	slog.Info("Starting staged program", "interpreter", interpreter, "entry", entry)

	proc, err := s.processAdapter.Start(ctx, spec)
	if err != nil {
		slog.Error("Failed to start staged program", "interpreter", interpreter, "error", err)
		return fmt.Errorf("run %s: %w", entry, err)
	}

	exited := make(chan childExit, 1)

	go func() {
		code, err := proc.Wait()
		exited <- childExit{code: code, err: err}
	}()

	// First of exit, signal or cancellation settles the run.
	select {
	case res := <-exited:
		stopSignals()
		return exitResult(res)

	case sig := <-signals:
		stopSignals()
		slog.Info("Stopping staged program", "signal", sig)
		s.kill(proc, exited)

		return m.NewSilentExit(signalExitCode(sig))

	case <-ctx.Done():
		stopSignals()
		s.kill(proc, exited)

		return ctx.Err()
	}
}

// stage unpacks the archive into the workspace and links the nearest
// dependency directory next to it. It returns the staged entry path.
func (s *supervisor) stage(args RunArgs) (m.Path, error) {
	if err := s.archiver.Extract(args.ArchivePath, args.Workspace); err != nil {
		slog.Error("Failed to stage archive", "archive", args.ArchivePath, "workspace", args.Workspace, "error", err)
		return "", fmt.Errorf("stage %s: %w", args.ArchivePath, err)
	}

	modules, err := s.fsAdapter.FindUp(m.Path(filepath.Dir(string(args.BuildFile))), dependencyDir)
	if err != nil {
		return "", fmt.Errorf("find %s: %w", dependencyDir, err)
	}

	if modules != "" {
		link := m.Path(filepath.Join(string(args.Workspace), dependencyDir))
		if err := s.fsAdapter.Symlink(modules, link); err != nil {
			slog.Error("Failed to link dependencies", "target", modules, "link", link, "error", err)
			return "", fmt.Errorf("link %s: %w", dependencyDir, err)
		}
	}

	stem := args.Stem
	if stem == "" {
		stem = m.DefaultFilename
	}

	return m.Path(filepath.Join(string(args.Workspace), stem+args.Ext)), nil
}

func (s *supervisor) kill(proc adapter.Process, exited <-chan childExit) {
	if err := proc.Kill(); err != nil {
		slog.Debug("Kill staged program", "error", err)
	}

	<-exited
}

func (s *supervisor) cleanup(workspace m.Path) {
	if err := s.fsAdapter.RemoveAll(workspace); err != nil {
		slog.Error("Failed to remove run workspace", "workspace", workspace, "error", err)
	}
}

func exitResult(res childExit) error {
	if res.err != nil {
		return fmt.Errorf("wait for staged program: %w", res.err)
	}

	switch {
	case res.code == 0:
		return nil
	case res.code < 0:
		return m.NewSilentExit(m.ExitFailure)
	default:
		return m.NewSilentExit(res.code)
	}
}

func signalExitCode(sig os.Signal) int {
	if sig == syscall.SIGTERM {
		return exitTerminate
	}

	return exitInterrupt
}
