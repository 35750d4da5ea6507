package interview

import "fmt"

// CallError represents a failed call to the generative model during an
// interview: opening the chat, sending a turn, or producing the report.
type CallError struct {
	Message string
	Cause   error
}

func (e *CallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("interview failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("interview failed: %s", e.Message)
}

func (e *CallError) Unwrap() error {
	return e.Cause
}

// StateError indicates an operation that is invalid for the session's
// current status, e.g. replying to a finished interview.
type StateError struct {
	Status string
	Op     string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("cannot %s: interview session is %s", e.Op, e.Status)
}
