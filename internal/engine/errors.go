package engine

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/constgen/pkg/core"
)

// FileError attaches the schema file path to a failure.
// The underlying core error stays reachable through errors.As.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Code returns the error code of the wrapped core error, or "" for I/O and parse failures.
func (e *FileError) Code() core.ErrorCode {
	var ce core.Error
	if errors.As(e.Err, &ce) {
		return ce.Code()
	}
	return ""
}

// ErrNoLanguages is returned by Generate when the engine has no emitters.
var ErrNoLanguages = errors.New("no output languages configured")

// OutputConflictError reports two schema files writing the same output path.
type OutputConflictError struct {
	Path   string
	First  string
	Second string
}

func (e *OutputConflictError) Error() string {
	return fmt.Sprintf("output %s is produced by both %s and %s", e.Path, e.First, e.Second)
}
