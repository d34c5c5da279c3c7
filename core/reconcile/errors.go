package reconcile

import (
	"errors"
	"fmt"
)

// ErrOrderNotFound is returned when no order matches the queried document number.
var ErrOrderNotFound = errors.New("order not found")

// FetchError wraps a failure to load one of the upstream tables.
type FetchError struct {
	// Op is the cache key of the failed fetch (e.g. "orders").
	Op  string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
