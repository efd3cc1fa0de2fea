// Package errs defines the error kinds every shell handler reports.
//
// Handlers wrap one of the sentinel errors below (usually together with the
// underlying os error) so the dispatcher can decide between "Invalid input"
// and "Operation failed" and so logs and metrics carry a stable kind name.
//
// Example Usage:
//
//	f, err := os.Open(path)
//	if err != nil {
//	    return errs.FromOS("open", path, err)
//	}
package errs

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// Input errors
var (
	ErrMissingArgument   = errors.New("missing argument")
	ErrInvalidCommand    = errors.New("invalid command")
	ErrInvalidSubcommand = errors.New("invalid subcommand")
)

// Operation errors
var (
	ErrNotFound         = errors.New("not found")
	ErrNotADirectory    = errors.New("not a directory")
	ErrIsADirectory     = errors.New("is a directory")
	ErrAlreadyExists    = errors.New("already exists")
	ErrPermissionDenied = errors.New("permission denied")
	ErrCorruptData      = errors.New("corrupt data")
	ErrOperationFailed  = errors.New("operation failed")
)

var kinds = []struct {
	err  error
	name string
}{
	{ErrMissingArgument, "MissingArgument"},
	{ErrInvalidCommand, "InvalidCommand"},
	{ErrInvalidSubcommand, "InvalidSubcommand"},
	{ErrNotFound, "NotFound"},
	{ErrNotADirectory, "NotADirectory"},
	{ErrIsADirectory, "IsADirectory"},
	{ErrAlreadyExists, "AlreadyExists"},
	{ErrPermissionDenied, "PermissionDenied"},
	{ErrCorruptData, "CorruptData"},
	{ErrOperationFailed, "OperationFailed"},
}

// Kind returns the name of the first error kind found in err's chain.
// Unclassified errors report OperationFailed; nil reports "".
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "OperationFailed"
}

// IsInputError reports whether err was caused by malformed user input
// rather than by the filesystem.
func IsInputError(err error) bool {
	return errors.Is(err, ErrMissingArgument) ||
		errors.Is(err, ErrInvalidCommand) ||
		errors.Is(err, ErrInvalidSubcommand)
}

// Missing reports a missing operand for verb.
func Missing(verb, operand string) error {
	return fmt.Errorf("%s: %w: %s", verb, ErrMissingArgument, operand)
}

// FromOS classifies an error returned by the os package. The result wraps
// both the matching kind and the original error.
func FromOS(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s %s: %w: %w", op, path, classify(err), err)
}

func classify(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case errors.Is(err, fs.ErrExist):
		return ErrAlreadyExists
	case errors.Is(err, fs.ErrPermission):
		return ErrPermissionDenied
	case errors.Is(err, syscall.EISDIR):
		return ErrIsADirectory
	case errors.Is(err, syscall.ENOTDIR):
		return ErrNotADirectory
	default:
		return ErrOperationFailed
	}
}
