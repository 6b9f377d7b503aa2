package scaffold

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingArgument is returned when no application name was supplied.
	ErrMissingArgument = errors.New("missing application name")

	// ErrDirectoryExists is returned when the target directory is already present.
	// Nothing is written in that case.
	ErrDirectoryExists = errors.New("directory already exists")

	// ErrInvalidName is returned when a name is not a C identifier.
	ErrInvalidName = errors.New("invalid application name")

	// ErrInvalidVersion is returned when the program version is not semver.
	ErrInvalidVersion = errors.New("invalid program version")

	// ErrInvalidBugAddress is returned when the bug address cannot be placed
	// inside a C string literal.
	ErrInvalidBugAddress = errors.New("invalid bug address")
)

// WriteError reports a failure to create the application directory or one of
// its files. Files written before the failure are left in place.
type WriteError struct {
	Op   string // "create directory" or "write"
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// IsWriteError reports whether err is or wraps a *WriteError.
func IsWriteError(err error) bool {
	var we *WriteError
	return errors.As(err, &we)
}
