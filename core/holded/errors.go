package holded

import "fmt"

// UpstreamError describes a failed call to the invoicing API.
// StatusCode is 0 when the request never produced a response.
type UpstreamError struct {
	// Op names the call that failed (e.g. "list salesorder").
	Op string
	// StatusCode is the HTTP status returned by the API.
	StatusCode int
	// Err is the underlying cause.
	Err error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("holded %s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("holded %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
