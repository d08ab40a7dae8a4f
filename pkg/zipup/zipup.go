// Package zipup bundles a JavaScript entry file and packages the result into a
// zip archive. It is the library form of the zipup command: operations return
// errors instead of exiting, and a staged program gets no stdin while its
// output is piped to the writers in Options.
package zipup

import (
	"context"
	"io"
	"path/filepath"

	"zipup.dev/pkg/zipup/internal/adapter"
	"zipup.dev/pkg/zipup/internal/controller"
	"zipup.dev/pkg/zipup/internal/domain"
	m "zipup.dev/pkg/zipup/internal/model"
)

// Overrides replace individual project config values when set.
type Overrides = domain.Overrides

// ExitError carries the exit code of a failed run.
type ExitError = m.ExitError

// Errors reported by Build, Watch and Run. Test with errors.Is.
var (
	ErrConfigNotFound = m.ErrConfigNotFound
	ErrConfigParse    = m.ErrConfigParse
	ErrEntryNotFound  = m.ErrEntryNotFound
	ErrBuild          = m.ErrBuild
	ErrArchiveIO      = m.ErrArchiveIO
)

// Options configure one invocation. The zero value builds dist.zip in the
// current directory with the default compression.
type Options struct {
	// Dir is the working directory relative paths are resolved against.
	Dir string
	// Out is the archive path. Not allowed with Run.
	Out string
	// Filename is the stem of the main code entry, "index" when empty.
	Filename string
	// ConfigPath names the project config file explicitly.
	ConfigPath string
	// Ignore lists glob patterns of assets left out of the archive.
	Ignore []string
	// Compression is the deflate level 0-9; nil means the default.
	Compression *int
	// StatsOut receives the bundler metafile as JSON when set.
	StatsOut string
	NoCache  bool
	// CacheDir overrides the build cache location.
	CacheDir string
	// Interpreter runs the staged program, "node" when empty.
	Interpreter string
	// Args are passed to the staged program.
	Args      []string
	Overrides Overrides

	// Stdout receives the size summary and the staged program's output.
	Stdout io.Writer
	Stderr io.Writer
}

// Build bundles entry once and writes the archive.
func Build(ctx context.Context, entry string, opts Options) error {
	return execute(ctx, entry, opts, domain.Request{})
}

// Watch builds entry and rebuilds the archive on every change until ctx is
// cancelled. Failed rebuilds are reported to Stderr and watching continues.
func Watch(ctx context.Context, entry string, opts Options) error {
	return execute(ctx, entry, opts, domain.Request{Watch: true})
}

// Run builds entry into a temporary workspace and executes it. A non-zero
// exit of the program is returned as an *ExitError with its code.
func Run(ctx context.Context, entry string, opts Options) error {
	return execute(ctx, entry, opts, domain.Request{Run: true})
}

// ExitCode maps an error returned by Build, Watch or Run to a process exit code.
func ExitCode(err error) int {
	return m.GetExitCode(err)
}

func execute(ctx context.Context, entry string, opts Options, mode domain.Request) error {
	env, err := opts.env()
	if err != nil {
		return err
	}

	compression := m.DefaultCompression
	if opts.Compression != nil {
		compression = *opts.Compression
	}

	cacheDir := m.Path(opts.CacheDir)
	if cacheDir == "" {
		cacheDir = adapter.DefaultCacheDir()
	}

	fsAdapter := adapter.NewLocalFSAdapter()
	archiver := adapter.NewZipArchiver()

	planner := domain.NewPlanner(fsAdapter, domain.NewConfigResolver(fsAdapter))

	args, err := planner.Plan(ctx, env, domain.Request{
		Entry:       entry,
		Run:         mode.Run,
		Watch:       mode.Watch,
		Out:         opts.Out,
		Filename:    opts.Filename,
		ConfigPath:  opts.ConfigPath,
		Ignore:      opts.Ignore,
		Compression: compression,
		StatsOut:    opts.StatsOut,
		NoCache:     opts.NoCache,
		Interpreter: opts.Interpreter,
		ProgramArgs: opts.Args,
		Overrides:   opts.Overrides,
	})
	if err != nil {
		return err
	}

	workflow := domain.NewWorkflow(
		fsAdapter,
		adapter.NewEsbuildBundler(cacheDir, fsAdapter),
		domain.NewAssembler(fsAdapter, archiver),
		domain.NewSupervisor(fsAdapter, archiver, adapter.NewLocalProcessAdapter()),
		controller.NewSimpleUI(env.Stdout, env.Stderr),
	)

	return workflow.Build(ctx, env, args)
}

func (o Options) env() (domain.Env, error) {
	dir, err := filepath.Abs(o.Dir)
	if err != nil {
		return domain.Env{}, err
	}

	env := domain.Env{
		Cwd:     m.Path(dir),
		Stdout:  o.Stdout,
		Stderr:  o.Stderr,
		Signals: domain.OSSignals(),
	}

	if env.Stdout == nil {
		env.Stdout = io.Discard
	}

	if env.Stderr == nil {
		env.Stderr = io.Discard
	}

	return env, nil
}
