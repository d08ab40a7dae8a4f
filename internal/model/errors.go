package model

import (
	"errors"
	"fmt"
)

// Exit codes for the command line.
const (
	ExitSuccess = 0 // normal completion
	ExitFailure = 1 // default error
	ExitUsage   = 2 // bad command, incompatible flags, too many arguments, help
)

var (
	// ErrConfigNotFound is returned when an explicit config path does not exist.
	ErrConfigNotFound = errors.New("config not found")
	// ErrConfigParse is returned when a config file or manifest block cannot be parsed.
	ErrConfigParse = errors.New("config parse error")
	// ErrEntryNotFound is returned when the entry file cannot be resolved.
	ErrEntryNotFound = errors.New("entry not found")
	// ErrBuild is returned when the bundler reports a failure.
	ErrBuild = errors.New("build failed")
	// ErrArchiveIO is returned when writing or finalizing the archive fails.
	ErrArchiveIO = errors.New("archive write failed")
)

// ExitError is an error with a specific process exit code. Silent errors have
// already been reported to the user and must not be printed again.
type ExitError struct {
	Code    int
	Message string
	Err     error
	Silent  bool
}

func (e *ExitError) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return fmt.Sprintf("exit status %d", e.Code)
	}
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewUsageError creates an ExitError with the usage exit code.
func NewUsageError(format string, args ...any) *ExitError {
	return &ExitError{Code: ExitUsage, Message: fmt.Sprintf(format, args...)}
}

// WrapUsageError tags err with the usage exit code.
func WrapUsageError(err error) *ExitError {
	return &ExitError{Code: ExitUsage, Err: err}
}

// NewSilentExit creates an ExitError that only carries an exit code.
func NewSilentExit(code int) *ExitError {
	return &ExitError{Code: code, Silent: true}
}

// GetExitCode extracts the exit code from an error. Errors that carry no
// explicit code map to ExitFailure.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitFailure
}

// IsSilent reports whether err was already shown to the user.
func IsSilent(err error) bool {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Silent
	}

	return false
}
