package request

type TheatreHallRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=255"`
	SeatRows   int    `json:"rows" validate:"required,min=1"`
	SeatsInRow int    `json:"seats_in_row" validate:"required,min=1"`
}
