package library

import "errors"

var (
	// ErrNotFound reports a missing entry or scan.
	ErrNotFound = errors.New("not found")
	// ErrLocked reports that another process holds the writer lock.
	ErrLocked = errors.New("index is locked by another writer")
	// ErrEmptyQuery reports a search query with no words in it.
	ErrEmptyQuery = errors.New("search query is empty")
)
