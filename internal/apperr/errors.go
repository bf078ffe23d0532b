package apperr

import "errors"

// ErrInvalidInput is returned when the request body is malformed or absent.
var ErrInvalidInput = errors.New("invalid input")

// ErrValidation is returned when a supplied field fails a documented constraint,
// or when a payload is empty where data was required.
var ErrValidation = errors.New("validation failed")

// ErrNotFound indicates that the requested record does not exist.
var ErrNotFound = errors.New("not found")
