package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// ProcessSpec describes a child process to spawn.
type ProcessSpec struct {
	Name   string
	Args   []string
	Dir    string
	Env    []string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Process is a started child process.
type Process interface {
	// Wait blocks until the process exits and returns its exit code. A process
	// terminated by a signal reports -1.
	Wait() (int, error)
	// Kill terminates the process.
	Kill() error
}

// ProcessAdapter abstracts spawning child processes.
type ProcessAdapter interface {
	Start(ctx context.Context, spec ProcessSpec) (Process, error)
}

// LocalProcessAdapter spawns processes with os/exec.
type LocalProcessAdapter struct{}

// NewLocalProcessAdapter constructs a LocalProcessAdapter.
func NewLocalProcessAdapter() *LocalProcessAdapter {
	return &LocalProcessAdapter{}
}

// Start launches the process described by spec. Cancelling ctx kills it.
func (a *LocalProcessAdapter) Start(ctx context.Context, spec ProcessSpec) (Process, error) {
	// #nosec G204 - the interpreter and staged entry are chosen by the user
	cmd := exec.CommandContext(ctx, spec.Name, spec.Args...)
	cmd.Dir = spec.Dir
	cmd.Env = spec.Env
	cmd.Stdin = spec.Stdin
	cmd.Stdout = spec.Stdout
	cmd.Stderr = spec.Stderr

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", spec.Name, err)
	}

	return &localProcess{cmd: cmd}, nil
}

type localProcess struct {
	cmd *exec.Cmd
}

func (p *localProcess) Wait() (int, error) {
	err := p.cmd.Wait()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}

	return -1, err
}

func (p *localProcess) Kill() error {
	if p.cmd.Process == nil {
		return nil
	}

	return p.cmd.Process.Kill()
}
