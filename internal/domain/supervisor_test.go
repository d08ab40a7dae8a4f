package domain_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"zipup.dev/pkg/zipup/internal/adapter"
	adaptermocks "zipup.dev/pkg/zipup/internal/adapter/mocks"
	"zipup.dev/pkg/zipup/internal/domain"
	m "zipup.dev/pkg/zipup/internal/model"
)

// fakeSignals records registrations and lets a test deliver a signal.
type fakeSignals struct {
	mu       sync.Mutex
	channels []chan<- os.Signal
	stopped  int
}

func (f *fakeSignals) Notify(c chan<- os.Signal, _ ...os.Signal) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.channels = append(f.channels, c)
}

func (f *fakeSignals) Stop(chan<- os.Signal) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.stopped++
}

func (f *fakeSignals) send(sig os.Signal) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, c := range f.channels {
		c <- sig
	}
}

func (f *fakeSignals) stops() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.stopped
}

type runFixture struct {
	env       domain.Env
	signals   *fakeSignals
	args      domain.RunArgs
	workspace string
	project   string
}

// newRunFixture builds a real archive for a project that has node_modules
// two levels above the entry.
func newRunFixture(t *testing.T) runFixture {
	t.Helper()

	root := t.TempDir()
	project := filepath.Join(root, "project")
	require.NoError(t, os.MkdirAll(filepath.Join(project, "node_modules", "dep"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(project, "src", "handlers"), 0o755))

	workspace := filepath.Join(root, "zipup-run-test")
	archivePath := filepath.Join(workspace, "dist.zip")

	sink, err := adapter.NewZipArchiver().Create(m.Path(archivePath), 5)
	require.NoError(t, err)
	require.NoError(t, sink.AddFile("main.js", []byte("console.log('hi')"), 0o666))
	require.NoError(t, sink.Close())

	signals := &fakeSignals{}

	return runFixture{
		env: domain.Env{
			Cwd:     m.Path(project),
			Stdout:  &bytes.Buffer{},
			Stderr:  &bytes.Buffer{},
			Signals: signals,
		},
		signals: signals,
		args: domain.RunArgs{
			ArchivePath: m.Path(archivePath),
			Workspace:   m.Path(workspace),
			BuildFile:   m.Path(filepath.Join(project, "src", "handlers", "entry.js")),
			Stem:        "main",
			Ext:         ".js",
		},
		workspace: workspace,
		project:   project,
	}
}

func newTestSupervisor(processAdapter adapter.ProcessAdapter) domain.Supervisor {
	return domain.NewSupervisor(adapter.NewLocalFSAdapter(), adapter.NewZipArchiver(), processAdapter)
}

func TestSupervisor_Run_StagesAndCleansUp(t *testing.T) {
	fx := newRunFixture(t)

	mockProcessAdapter := adaptermocks.NewMockProcessAdapter(t)
	mockProcess := adaptermocks.NewMockProcess(t)

	mockProcessAdapter.EXPECT().Start(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, spec adapter.ProcessSpec) (adapter.Process, error) {
			assert.Equal(t, domain.DefaultInterpreter, spec.Name)
			assert.Equal(t, []string{filepath.Join(fx.workspace, "main.js")}, spec.Args)
			assert.Nil(t, spec.Stdin, "library mode does not forward stdin")

			staged, err := os.ReadFile(filepath.Join(fx.workspace, "main.js"))
			require.NoError(t, err)
			assert.Equal(t, "console.log('hi')", string(staged))

			target, err := os.Readlink(filepath.Join(fx.workspace, "node_modules"))
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(fx.project, "node_modules"), target)

			return mockProcess, nil
		}).Once()
	mockProcess.EXPECT().Wait().Return(0, nil).Once()

	err := newTestSupervisor(mockProcessAdapter).Run(context.Background(), fx.env, fx.args)
	require.NoError(t, err)

	_, statErr := os.Stat(fx.workspace)
	require.ErrorIs(t, statErr, os.ErrNotExist)
	assert.GreaterOrEqual(t, fx.signals.stops(), 1)
}

func TestSupervisor_Run_PropagatesChildExitCode(t *testing.T) {
	fx := newRunFixture(t)

	mockProcessAdapter := adaptermocks.NewMockProcessAdapter(t)
	mockProcess := adaptermocks.NewMockProcess(t)

	mockProcessAdapter.EXPECT().Start(mock.Anything, mock.Anything).Return(mockProcess, nil).Once()
	mockProcess.EXPECT().Wait().Return(3, nil).Once()

	err := newTestSupervisor(mockProcessAdapter).Run(context.Background(), fx.env, fx.args)

	require.Error(t, err)
	assert.Equal(t, 3, m.GetExitCode(err))
	assert.True(t, m.IsSilent(err))

	_, statErr := os.Stat(fx.workspace)
	require.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestSupervisor_Run_SignalSettlesTheRun(t *testing.T) {
	tests := []struct {
		sig  os.Signal
		code int
	}{
		{sig: os.Interrupt, code: 130},
		{sig: syscall.SIGTERM, code: 143},
	}

	for _, tt := range tests {
		t.Run(tt.sig.String(), func(t *testing.T) {
			fx := newRunFixture(t)

			mockProcessAdapter := adaptermocks.NewMockProcessAdapter(t)
			mockProcess := adaptermocks.NewMockProcess(t)

			killed := make(chan struct{})

			mockProcessAdapter.EXPECT().Start(mock.Anything, mock.Anything).Return(mockProcess, nil).Once()
			mockProcess.EXPECT().Wait().RunAndReturn(func() (int, error) {
				<-killed
				return -1, nil
			}).Once()
			mockProcess.EXPECT().Kill().RunAndReturn(func() error {
				close(killed)
				return nil
			}).Once()

			go func() {
				require.Eventually(t, func() bool {
					fx.signals.mu.Lock()
					defer fx.signals.mu.Unlock()

					return len(fx.signals.channels) > 0
				}, 5*time.Second, 5*time.Millisecond)

				fx.signals.send(tt.sig)
			}()

			err := newTestSupervisor(mockProcessAdapter).Run(context.Background(), fx.env, fx.args)

			assert.Equal(t, tt.code, m.GetExitCode(err))
			assert.True(t, m.IsSilent(err))
			assert.GreaterOrEqual(t, fx.signals.stops(), 1)

			_, statErr := os.Stat(fx.workspace)
			require.ErrorIs(t, statErr, os.ErrNotExist)
		})
	}
}

func TestSupervisor_Run_CancelKillsTheChild(t *testing.T) {
	fx := newRunFixture(t)

	mockProcessAdapter := adaptermocks.NewMockProcessAdapter(t)
	mockProcess := adaptermocks.NewMockProcess(t)

	ctx, cancel := context.WithCancel(context.Background())
	killed := make(chan struct{})

	mockProcessAdapter.EXPECT().Start(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, adapter.ProcessSpec) (adapter.Process, error) {
			cancel()
			return mockProcess, nil
		}).Once()
	mockProcess.EXPECT().Wait().RunAndReturn(func() (int, error) {
		<-killed
		return -1, nil
	}).Once()
	mockProcess.EXPECT().Kill().RunAndReturn(func() error {
		close(killed)
		return nil
	}).Once()

	err := newTestSupervisor(mockProcessAdapter).Run(ctx, fx.env, fx.args)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSupervisor_Run_DirectModeForwardsStdin(t *testing.T) {
	fx := newRunFixture(t)
	fx.env.Direct = true
	fx.env.Stdin = bytes.NewBufferString("input")
	fx.args.Interpreter = "bun"

	mockProcessAdapter := adaptermocks.NewMockProcessAdapter(t)
	mockProcess := adaptermocks.NewMockProcess(t)

	mockProcessAdapter.EXPECT().Start(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, spec adapter.ProcessSpec) (adapter.Process, error) {
			assert.Equal(t, "bun", spec.Name)
			assert.Equal(t, fx.env.Stdin, spec.Stdin)

			return mockProcess, nil
		}).Once()
	mockProcess.EXPECT().Wait().Return(0, nil).Once()

	require.NoError(t, newTestSupervisor(mockProcessAdapter).Run(context.Background(), fx.env, fx.args))
}

func TestSupervisor_Run_StartFailureCleansUp(t *testing.T) {
	fx := newRunFixture(t)

	mockProcessAdapter := adaptermocks.NewMockProcessAdapter(t)
	mockProcessAdapter.EXPECT().Start(mock.Anything, mock.Anything).
		Return(nil, errors.New("executable file not found")).Once()

	err := newTestSupervisor(mockProcessAdapter).Run(context.Background(), fx.env, fx.args)
	require.Error(t, err)
	assert.Equal(t, m.ExitFailure, m.GetExitCode(err))

	_, statErr := os.Stat(fx.workspace)
	require.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestSupervisor_Run_NoDependencyDirectory(t *testing.T) {
	fx := newRunFixture(t)
	require.NoError(t, os.RemoveAll(filepath.Join(fx.project, "node_modules")))

	mockProcessAdapter := adaptermocks.NewMockProcessAdapter(t)
	mockProcess := adaptermocks.NewMockProcess(t)

	mockProcessAdapter.EXPECT().Start(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, adapter.ProcessSpec) (adapter.Process, error) {
			_, err := os.Lstat(filepath.Join(fx.workspace, "node_modules"))
			assert.ErrorIs(t, err, os.ErrNotExist)

			return mockProcess, nil
		}).Once()
	mockProcess.EXPECT().Wait().Return(0, nil).Once()

	require.NoError(t, newTestSupervisor(mockProcessAdapter).Run(context.Background(), fx.env, fx.args))
}
