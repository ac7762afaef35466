package repositories

import "errors"

// ErrNotFound is returned when a requested row does not exist.
// Implementations wrap it with fmt.Errorf("...: %w", ErrNotFound) so
// callers can match with errors.Is.
var ErrNotFound = errors.New("record not found")
