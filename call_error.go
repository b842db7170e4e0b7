package fileiotool

import (
	"errors"
	"fmt"
)

// CallError records the name of a failed system call and its cause.
// Its message is formatted as "op: errno text", e.g.
// "open64: no such file or directory".
type CallError struct {
	Op  string
	Err error
}

func wrapCallError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &CallError{Op: op, Err: err}
}

func (e *CallError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// AsCallError returns the first *CallError in err's chain, or nil.
func AsCallError(err error) *CallError {
	var err2 *CallError
	if errors.As(err, &err2) {
		return err2
	}
	return nil
}
