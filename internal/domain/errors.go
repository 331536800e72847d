package domain

import "fmt"

// MsgInvalidThreshold is returned to callers when the threshold does not parse.
const MsgInvalidThreshold = "Threshold must be a number"

// ValidationError indicates bad caller input, detected before any I/O.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// UpstreamError indicates the movie catalog could not be drained.
type UpstreamError struct {
	Page int
	Err  error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("movie api page %d: %v", e.Page, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
