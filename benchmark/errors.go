package benchmark

import (
	"errors"
	"fmt"
	"io/fs"
)

// OpError records the file operation that failed during a run.
type OpError struct {
	Op   string // create, write, sync, stat, open, read, remove
	Path string
	Err  error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// opErr keeps only the cause of a *fs.PathError so the path is printed once.
func opErr(op, path string, err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	return &OpError{Op: op, Path: path, Err: err}
}
