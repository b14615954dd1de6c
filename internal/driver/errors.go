package driver

import (
	"errors"
	"fmt"
)

// ErrRunNotFound is returned when the superlink has no record of the
// run id a driver was bound to. This is a semantic failure and is
// never retried.
var ErrRunNotFound = errors.New("run not found")

// ValidationError reports a message that does not belong to the bound
// run or is otherwise not pushable. It is a caller bug: no remote call
// is made and nothing is partially pushed.
type ValidationError struct {
	Index  int
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid message at index %d: %s", e.Index, e.Reason)
}
