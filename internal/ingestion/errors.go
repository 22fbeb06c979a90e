package ingestion

import "fmt"

// HTMLParseError represents a failure to parse an HTML document.
type HTMLParseError struct {
	Cause error
}

func (e *HTMLParseError) Error() string {
	return fmt.Sprintf("failed to parse HTML document: %v", e.Cause)
}

func (e *HTMLParseError) Unwrap() error {
	return e.Cause
}
