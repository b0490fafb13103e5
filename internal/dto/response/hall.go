package response

import "theatre-booking/internal/data/entity"

type TheatreHallResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	SeatRows   int    `json:"rows"`
	SeatsInRow int    `json:"seats_in_row"`
	Capacity   int    `json:"capacity"`
}

func TheatreHallToResponse(hall *entity.TheatreHall) TheatreHallResponse {
	return TheatreHallResponse{
		ID:         hall.ID.String(),
		Name:       hall.Name,
		SeatRows:   hall.SeatRows,
		SeatsInRow: hall.SeatsInRow,
		Capacity:   hall.Capacity(),
	}
}
