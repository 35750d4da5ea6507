package ingestion

import "fmt"

// DocumentError represents a failure to extract text from an uploaded document.
type DocumentError struct {
	Filename string
	Message  string
	Cause    error
}

func (e *DocumentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("document error for %s: %s: %v", e.Filename, e.Message, e.Cause)
	}
	return fmt.Sprintf("document error for %s: %s", e.Filename, e.Message)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// FetchError represents a failure to retrieve a job posting URL.
type FetchError struct {
	URL     string
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}
