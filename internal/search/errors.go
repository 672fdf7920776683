package search

import (
	"errors"
	"fmt"
	"io/fs"
)

// The recoverable failures a run can hit form a closed set: a requested
// path that does not resolve, a resolved path that will not open, and a
// stream that fails mid-read. Each is reported on the error writer as a
// single line and never aborts the remaining inputs. Pattern compilation
// failures are the one fatal kind and live in the config package, since
// they happen before a Runner exists.

// PathError reports a requested path that could not be resolved.
type PathError struct {
	Path   string
	Reason string
}

func (e *PathError) Error() string {
	return e.Reason
}

// OpenError reports a resolved path that could not be opened, e.g. a file
// that vanished between resolution and open.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, cause(e.Err))
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// ScanError reports a read failure partway through an opened stream.
type ScanError struct {
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, cause(e.Err))
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// cause strips the path-qualified wrapper from os errors so messages show
// the path exactly once.
func cause(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
