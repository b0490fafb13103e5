package request

type PerformanceRequest struct {
	PlayID   string `json:"play_id" validate:"required,uuid4"`
	HallID   string `json:"theatre_hall_id" validate:"required,uuid4"`
	ShowTime string `json:"show_time" validate:"required"`
}
