package services

import "errors"

var (
	// ErrNotFound means no row matched the given slug or id.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate means a unique constraint rejected the write.
	ErrDuplicate = errors.New("already exists")
)
