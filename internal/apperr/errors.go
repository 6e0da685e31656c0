// Package apperr holds the domain error kinds shared by services and handlers.
// Services wrap them with context; handlers map them to HTTP responses via errors.Is.
package apperr

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("already exists")
	ErrDependent  = errors.New("has dependent records")
)
