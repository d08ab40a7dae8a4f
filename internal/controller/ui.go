// Package controller provides output adapters for build summaries, build
// errors and watch-mode status.
package controller

import (
	"context"
	"io"
	"os"

	"golang.org/x/term"
)

// WatchStatus is a watch-mode lifecycle event.
type WatchStatus int

// Available WatchStatus values.
const (
	WatchStarted WatchStatus = iota
	WatchRebuilding
	WatchRebuilt
	WatchFailed
)

func (s WatchStatus) String() string {
	switch s {
	case WatchStarted:
		return "watching"
	case WatchRebuilding:
		return "rebuilding"
	case WatchRebuilt:
		return "rebuilt"
	case WatchFailed:
		return "rebuild failed"
	default:
		return "unknown"
	}
}

// UI defines how build output reaches the user.
// Implementations can use different output methods (plain text, styled terminal).
type UI interface {
	DisplaySummary(ctx context.Context, summary string) error
	DisplayBuildError(ctx context.Context, err error)
	DisplayWatchStatus(ctx context.Context, status WatchStatus, detail string)
}

// Options select the UI implementation.
type Options struct {
	Out    io.Writer
	ErrOut io.Writer
	// Styled enables lipgloss styling; usually set when Out is a terminal.
	Styled bool
	// Interactive allows paging long summaries. Never set in watch mode.
	Interactive bool
}

// NewUI returns a StyledUI when opts.Styled is set, a SimpleUI otherwise.
func NewUI(opts Options) UI {
	if opts.Styled {
		return NewStyledUI(opts.Out, opts.ErrOut, opts.Interactive)
	}

	return NewSimpleUI(opts.Out, opts.ErrOut)
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// terminalHeight returns the height of w, or 0 when w is not a terminal.
func terminalHeight(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}

	_, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}

	return height
}
