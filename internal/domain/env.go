package domain

import (
	"io"
	"os"
	"os/signal"
	"path/filepath"

	m "zipup.dev/pkg/zipup/internal/model"
)

// SignalSource registers and deregisters process signal delivery.
type SignalSource interface {
	Notify(c chan<- os.Signal, sig ...os.Signal)
	Stop(c chan<- os.Signal)
}

type osSignals struct{}

func (osSignals) Notify(c chan<- os.Signal, sig ...os.Signal) { signal.Notify(c, sig...) }
func (osSignals) Stop(c chan<- os.Signal)                     { signal.Stop(c) }

// OSSignals delivers real process signals.
func OSSignals() SignalSource {
	return osSignals{}
}

// Env is the per-invocation process context handed to every component
// instead of reading working directory, stdio and signals from globals.
type Env struct {
	Cwd    m.Path
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Direct is set when running as the zipup command. Library callers get
	// child output piped to Stdout/Stderr instead of inherited.
	Direct  bool
	Signals SignalSource
}

// NewOSEnv builds an Env from the current process.
func NewOSEnv(direct bool) (Env, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return Env{}, err
	}

	return Env{
		Cwd:     m.Path(cwd),
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Direct:  direct,
		Signals: OSSignals(),
	}, nil
}

// Resolve returns path made absolute against the environment's working directory.
func (e Env) Resolve(path string) m.Path {
	return m.Path(resolveAgainst(string(e.Cwd), path))
}

func resolveAgainst(base, path string) string {
	if path == "" {
		return ""
	}

	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}

	return filepath.Join(base, path)
}
