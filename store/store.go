package store

import (
	"errors"
)

var (
	// ErrNotFound is returned when a requested thing does not exist
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when an If-Match precondition does not
	// match the stored etag
	ErrConflict = errors.New("etag mismatch")
)

// EtagMatches reports whether an If-Match precondition allows the write.
// An empty precondition or "*" matches anything.
func EtagMatches(ifMatch string, etag string) bool {
	return ifMatch == "" || ifMatch == "*" || ifMatch == etag
}
