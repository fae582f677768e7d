package service

import "fmt"

// NotFoundError signals that the primary entity targeted by an operation
// does not exist.
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Resource, e.ID)
}

// ValidationError signals malformed or out-of-range input, including a
// referenced foreign id that does not exist when creating or linking.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConflictError signals a uniqueness violation, such as a duplicate genre
// name.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}
