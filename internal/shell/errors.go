package shell

import (
	"errors"
	"fmt"

	"github.com/kk-code-lab/docsh/internal/vfs"
)

var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrCommandNotFound    = errors.New("command not found")
	ErrContentUnavailable = errors.New("content unavailable")
	ErrMissingOperand     = errors.New("missing operand")
)

// Reason renders err the way a Unix tool would in the last part of
// "<command>: <subject>: <reason>".
func Reason(err error) string {
	switch {
	case errors.Is(err, vfs.ErrNotFound):
		return "No such file or directory"
	case errors.Is(err, vfs.ErrNotADirectory):
		return "Not a directory"
	case errors.Is(err, vfs.ErrIsADirectory):
		return "Is a directory"
	default:
		return err.Error()
	}
}

func fail(command, subject string, err error) Result {
	return Result{
		Output: fmt.Sprintf("%s: %s: %s", command, subject, Reason(err)),
		Err:    err,
	}
}

func failf(err error, format string, args ...any) Result {
	return Result{Output: fmt.Sprintf(format, args...), Err: err}
}
