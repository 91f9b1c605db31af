package booking

import "fmt"

// ValidationError rejects a booking draft before any store call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid booking: %s: %s", e.Field, e.Message)
}

func newValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// NotFoundError signals that a referenced booking, profile or offering does
// not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// TransitionError signals an illegal status transition or an unauthorized
// actor for an otherwise legal one.
type TransitionError struct {
	From    string
	To      string
	Message string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot move booking from %s to %s: %s", e.From, e.To, e.Message)
}

// ConflictError signals that a conditional status update matched no document:
// a concurrent transition won, or state changed since the caller last read it.
type ConflictError struct {
	BookingID string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("booking %s changed state concurrently, reload and retry", e.BookingID)
}
