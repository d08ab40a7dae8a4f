package controller

import (
	"context"
	"fmt"
	"io"
	"time"
)

// SimpleUI implements UI with plain text writes.
type SimpleUI struct {
	out    io.Writer
	errOut io.Writer
	now    func() time.Time
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(out, errOut io.Writer) *SimpleUI {
	return &SimpleUI{out: out, errOut: errOut, now: time.Now}
}

// DisplaySummary prints the rendered size report.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprint(s.out, summary)

	return err
}

// DisplayBuildError prints a build error to the error stream.
func (s *SimpleUI) DisplayBuildError(ctx context.Context, err error) {
	if ctx.Err() != nil || err == nil {
		return
	}

	_, _ = fmt.Fprintf(s.errOut, "%v\n", err)
}

// DisplayWatchStatus prints a timestamped watch event.
func (s *SimpleUI) DisplayWatchStatus(ctx context.Context, status WatchStatus, detail string) {
	if ctx.Err() != nil {
		return
	}

	stamp := s.now().Format(time.TimeOnly)
	if detail == "" {
		_, _ = fmt.Fprintf(s.errOut, "[%s] %s\n", stamp, status)
		return
	}

	_, _ = fmt.Fprintf(s.errOut, "[%s] %s %s\n", stamp, status, detail)
}
