package model

import "errors"

var (
	ErrBookNotFound      = errors.New("book not found")
	ErrDuplicateTitle    = errors.New("title already exists")
	ErrAuthorNotFound    = errors.New("referenced author does not exist")
	ErrPublisherNotFound = errors.New("referenced publisher does not exist")

	// ErrMissingPublisher marks a book that cannot be serialized because it
	// has no publisher on record. On the create path it aborts the
	// transaction, so the row is never persisted half-usable.
	ErrMissingPublisher = errors.New("book has no publisher")
)
