package repositories

import "errors"

// ErrNotFound is wrapped by repository lookups when no record matches, so
// callers can distinguish a missing record from a store failure with
// errors.Is.
var ErrNotFound = errors.New("record not found")
