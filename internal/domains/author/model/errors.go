package model

import "errors"

var (
	ErrAuthorNotFound = errors.New("author not found")

	// ErrMissingPublisher marks a book that cannot be serialized because it
	// has no publisher on record. Distinct from not-found so logs show the
	// real cause even though the HTTP body stays generic.
	ErrMissingPublisher = errors.New("book has no publisher")
)
