package storage

import "errors"

var (
	// ErrUnknownCategory is returned when an insert references a category
	// with no registered partition. Partitions are never auto-created.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrNotFound is returned by id/username lookups that miss.
	ErrNotFound = errors.New("record not found")
)
