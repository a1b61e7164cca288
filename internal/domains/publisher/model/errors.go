package model

import "errors"

var (
	ErrPublisherNotFound = errors.New("publisher not found")
)
