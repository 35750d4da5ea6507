package extraction

import "fmt"

// APICallError represents a failed call to the generative model: the request
// never produced a payload to validate.
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction failed: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}
