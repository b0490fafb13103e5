package entity

import "github.com/google/uuid"

// Reservation groups the tickets a user booked in a single request.
// It is immutable once created; tickets belong to it via ON DELETE CASCADE.
type Reservation struct {
	BaseSimple
	UserID uuid.UUID `db:"user_id"`
}
