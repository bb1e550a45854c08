package domain

import "errors"

// Common domain errors
var (
	// ErrNotFound is returned when a requested resource is absent. Absence is
	// an expected outcome on the read path, distinguished from store failures.
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists is returned when trying to create a resource that already exists
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrValidation is returned when input validation fails
	ErrValidation = errors.New("validation error")
)
