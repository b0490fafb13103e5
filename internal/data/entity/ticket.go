package entity

import "github.com/google/uuid"

// Ticket books one seat for one performance. The (performance_id, seat_row,
// seat_number) triple is unique across all tickets, enforced by the database.
type Ticket struct {
	BaseSimple
	ReservationID uuid.UUID `db:"reservation_id"`
	PerformanceID uuid.UUID `db:"performance_id"`
	SeatRow       int       `db:"seat_row"`
	SeatNumber    int       `db:"seat_number"`
}
