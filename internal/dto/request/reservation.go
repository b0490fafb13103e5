package request

// TicketRequest is one desired (performance, row, seat) triple.
type TicketRequest struct {
	PerformanceID string `json:"performance" validate:"required,uuid4"`
	Row           int    `json:"row" validate:"required,min=1"`
	Seat          int    `json:"seat" validate:"required,min=1"`
}

type CreateReservationRequest struct {
	Tickets []TicketRequest `json:"tickets" validate:"required,min=1,dive"`
}
