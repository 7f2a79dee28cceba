package battle

import (
	"errors"
	"fmt"
)

// ErrInvalidAction is the sentinel wrapped by every StateError.
var ErrInvalidAction = errors.New("invalid action")

// StateError rejects an input the current state does not accept. The battle is
// left unchanged and the caller re-prompts.
type StateError struct {
	State  State
	Input  string
	Reason string
}

func (e *StateError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("input %q in state %s: %s", e.Input, e.State, e.Reason)
	}
	return fmt.Sprintf("input %q not accepted in state %s", e.Input, e.State)
}

// Unwrap returns ErrInvalidAction.
func (e *StateError) Unwrap() error { return ErrInvalidAction }
