package errors

import "errors"

var (
	ErrNotFound = errors.New("time slot not found")

	ErrInvalidID = errors.New("invalid time slot ID format")

	ErrDuplicateSlot = errors.New("time slot already exists for this professional, date and start time")
)
