package util

import "github.com/google/uuid"

// NewID returns a time-ordered UUIDv7 string for a new book.
//
// Panics only when the OS random source is unavailable.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		panic("util: generating id: " + err.Error())
	}
	return id.String()
}
