package repository

import (
	"theatre-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	Genre       GenreRepository
	Actor       ActorRepository
	Play        PlayRepository
	Hall        HallRepository
	Performance PerformanceRepository
	Reservation ReservationRepository
	Ticket      TicketRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Genre:       NewGenreRepository(db, log),
		Actor:       NewActorRepository(db, log),
		Play:        NewPlayRepository(db, log),
		Hall:        NewHallRepository(db, log),
		Performance: NewPerformanceRepository(db, log),
		Reservation: NewReservationRepository(db, log),
		Ticket:      NewTicketRepository(db, log),
	}
}
