package response

import (
	"time"

	"theatre-booking/internal/data/entity"
)

type TicketResponse struct {
	ID            string                   `json:"id"`
	Row           int                      `json:"row"`
	Seat          int                      `json:"seat"`
	PerformanceID string                   `json:"performance"`
	Performance   *PerformanceListResponse `json:"performance_detail,omitempty"`
}

type ReservationResponse struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Tickets   []TicketResponse `json:"tickets"`
}

func TicketToResponse(ticket *entity.Ticket) TicketResponse {
	return TicketResponse{
		ID:            ticket.ID.String(),
		Row:           ticket.SeatRow,
		Seat:          ticket.SeatNumber,
		PerformanceID: ticket.PerformanceID.String(),
	}
}
