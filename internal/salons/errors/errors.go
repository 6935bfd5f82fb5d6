package errors

import "errors"

var (
	ErrSalonNotFound = errors.New("salon not found")

	ErrProfessionalNotFound = errors.New("professional not found")

	ErrInvalidID = errors.New("invalid ID format")
)
