package workspace

import (
	"errors"
	"fmt"
)

// Error kinds reported by shell operations. Callers classify failures with
// errors.Is instead of comparing messages.
var (
	// ErrInvalidPath is returned when a path does not exist or is not of the
	// expected type (directory vs file).
	ErrInvalidPath = errors.New("invalid path")

	// ErrOutsideRoot is returned when a resolved path escapes the work directory.
	ErrOutsideRoot = errors.New("outside work directory")

	// ErrNotFound is returned when a required target is absent.
	ErrNotFound = errors.New("not found")

	// ErrMissingArgument is returned when a required positional argument is empty.
	ErrMissingArgument = errors.New("missing argument")

	// ErrAlreadyIsCursor is returned when a source or destination coincides with
	// (or contains) the current directory where a distinct target was required.
	ErrAlreadyIsCursor = errors.New("path is the current directory")
)

// OutsideRootError carries the offending path and the work directory.
type OutsideRootError struct {
	Path string
	Root string
}

func (e *OutsideRootError) Error() string {
	return fmt.Sprintf("path %s is outside work directory %s, you can work only inside %s", e.Path, e.Root, e.Root)
}

func (e *OutsideRootError) Is(target error) bool {
	return target == ErrOutsideRoot
}

// MissingArgumentError names the empty argument.
type MissingArgumentError struct {
	Name string
}

func (e *MissingArgumentError) Error() string {
	if e.Name == "" {
		return ErrMissingArgument.Error()
	}
	return fmt.Sprintf("%v: %s", ErrMissingArgument, e.Name)
}

func (e *MissingArgumentError) Is(target error) bool {
	return target == ErrMissingArgument
}

// NewMissingArgumentError returns an error matching ErrMissingArgument.
func NewMissingArgumentError(name string) error {
	return &MissingArgumentError{Name: name}
}

// NewInvalidPathError wraps ErrInvalidPath with the offending path and reason.
func NewInvalidPathError(path, reason string) error {
	if reason == "" {
		return fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}
	return fmt.Errorf("%w: %s %s", ErrInvalidPath, path, reason)
}

// NewNotFoundError wraps ErrNotFound with the missing path.
func NewNotFoundError(path string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, path)
}

// NewAlreadyIsCursorError wraps ErrAlreadyIsCursor with the conflicting path.
func NewAlreadyIsCursorError(path string) error {
	return fmt.Errorf("%w: %s", ErrAlreadyIsCursor, path)
}
