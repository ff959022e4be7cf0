package codestore

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Load when no code table is stored under the
// requested name.
var ErrNotFound = errors.New("code table not found")

// ErrQuery represents a failed database operation on a named code table.
type ErrQuery struct {
	Op    string
	Table string
	Err   error
}

func (e *ErrQuery) Error() string {
	return fmt.Sprintf("codestore: %s %q: %v", e.Op, e.Table, e.Err)
}

func (e *ErrQuery) Unwrap() error {
	return e.Err
}
