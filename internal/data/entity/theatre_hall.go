package entity

type TheatreHall struct {
	Base
	Name       string `db:"name"`
	SeatRows   int    `db:"seat_rows"`
	SeatsInRow int    `db:"seats_in_row"`
}

// Capacity is the total number of bookable seats in the hall.
func (h *TheatreHall) Capacity() int {
	return h.SeatRows * h.SeatsInRow
}
