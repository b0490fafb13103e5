package response

import (
	"time"

	"theatre-booking/internal/data/entity"
)

// PerformanceListResponse is the annotated list row: play/hall summary plus
// remaining seat availability.
type PerformanceListResponse struct {
	ID               string    `json:"id"`
	ShowTime         time.Time `json:"show_time"`
	PlayTitle        string    `json:"play_title"`
	HallName         string    `json:"theatre_hall_name"`
	HallCapacity     int       `json:"theatre_hall_capacity"`
	TicketsAvailable int       `json:"tickets_available"`
}

// TakenPlace is a seat already ticketed for a performance.
type TakenPlace struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

type PerformanceDetailResponse struct {
	ID          string              `json:"id"`
	ShowTime    time.Time           `json:"show_time"`
	Play        PlayListResponse    `json:"play"`
	TheatreHall TheatreHallResponse `json:"theatre_hall"`
	TakenPlaces []TakenPlace        `json:"taken_places"`
}

type PerformanceResponse struct {
	ID       string    `json:"id"`
	PlayID   string    `json:"play_id"`
	HallID   string    `json:"theatre_hall_id"`
	ShowTime time.Time `json:"show_time"`
}

func PerformanceToResponse(performance *entity.Performance) PerformanceResponse {
	return PerformanceResponse{
		ID:       performance.ID.String(),
		PlayID:   performance.PlayID.String(),
		HallID:   performance.HallID.String(),
		ShowTime: performance.ShowTime,
	}
}

func TicketsToTakenPlaces(tickets []*entity.Ticket) []TakenPlace {
	places := make([]TakenPlace, len(tickets))
	for i, ticket := range tickets {
		places[i] = TakenPlace{Row: ticket.SeatRow, Seat: ticket.SeatNumber}
	}
	return places
}
