package source

import (
	"errors"
	"fmt"
)

var (
	// ErrEnvironment matches every error returned by a Source. Such errors
	// are fatal: the battery data is unreachable or unparsable.
	ErrEnvironment = errors.New("battery source unavailable")

	// ErrToolNotFound is returned when an external program the source
	// depends on is not installed
	ErrToolNotFound = errors.New("required tool not found")

	// ErrUnknownSource is returned by New for an unregistered source name
	ErrUnknownSource = errors.New("unknown battery source")
)

// EnvironmentError reports a failed battery sample.
type EnvironmentError struct {
	// Source is the name of the source that failed, e.g. "acpi".
	Source string
	Err    error
}

func (e *EnvironmentError) Error() string {
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *EnvironmentError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrEnvironment) hold for every EnvironmentError.
func (e *EnvironmentError) Is(target error) bool {
	return target == ErrEnvironment
}

func environmentError(source string, err error) error {
	return &EnvironmentError{Source: source, Err: err}
}
