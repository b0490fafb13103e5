package usecase

import (
	"theatre-booking/internal/data/repository"
	"theatre-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	Genre       GenreService
	Actor       ActorService
	Play        PlayService
	Hall        HallService
	Performance PerformanceService
	Reservation ReservationService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:        NewAuthService(repo, config, log),
		Genre:       NewGenreService(repo, log),
		Actor:       NewActorService(repo, log),
		Play:        NewPlayService(repo, log),
		Hall:        NewHallService(repo, log),
		Performance: NewPerformanceService(repo, log),
		Reservation: NewReservationService(repo, log),
	}
}
