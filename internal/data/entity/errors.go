package entity

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrUnauthorized = errors.New("authentication required")
	ErrForbidden    = errors.New("insufficient privileges")
)

// ValidationError reports malformed or out-of-range fields per field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Fields)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// NotFoundError reports a missing referenced entity.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// SeatConflictError reports a (performance, row, seat) triple that is
// already ticketed. The database unique index is the source of truth;
// the error identifies the losing triple to the caller.
type SeatConflictError struct {
	PerformanceID uuid.UUID
	Row           int
	Seat          int
}

func (e *SeatConflictError) Error() string {
	return fmt.Sprintf("seat already booked: performance %s row %d seat %d",
		e.PerformanceID.String(), e.Row, e.Seat)
}
