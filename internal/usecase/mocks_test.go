package usecase

import (
	"context"

	"theatre-booking/internal/data/entity"
	"theatre-booking/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// === Mock repositories ===

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

type MockGenreRepository struct {
	mock.Mock
}

func (m *MockGenreRepository) Create(ctx context.Context, genre *entity.Genre) error {
	args := m.Called(ctx, genre)
	return args.Error(0)
}

func (m *MockGenreRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Genre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Genre), args.Error(1)
}

func (m *MockGenreRepository) FindByName(ctx context.Context, name string) (*entity.Genre, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Genre), args.Error(1)
}

func (m *MockGenreRepository) FindAll(ctx context.Context, offset, limit int) ([]*entity.Genre, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Genre), args.Error(1)
}

func (m *MockGenreRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGenreRepository) FindByPlayID(ctx context.Context, playID uuid.UUID) ([]*entity.Genre, error) {
	args := m.Called(ctx, playID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Genre), args.Error(1)
}

func (m *MockGenreRepository) Update(ctx context.Context, genre *entity.Genre) error {
	args := m.Called(ctx, genre)
	return args.Error(0)
}

func (m *MockGenreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockActorRepository struct {
	mock.Mock
}

func (m *MockActorRepository) Create(ctx context.Context, actor *entity.Actor) error {
	args := m.Called(ctx, actor)
	return args.Error(0)
}

func (m *MockActorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Actor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Actor), args.Error(1)
}

func (m *MockActorRepository) FindAll(ctx context.Context, offset, limit int) ([]*entity.Actor, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Actor), args.Error(1)
}

func (m *MockActorRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockActorRepository) FindByPlayID(ctx context.Context, playID uuid.UUID) ([]*entity.Actor, error) {
	args := m.Called(ctx, playID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Actor), args.Error(1)
}

func (m *MockActorRepository) Update(ctx context.Context, actor *entity.Actor) error {
	args := m.Called(ctx, actor)
	return args.Error(0)
}

func (m *MockActorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPlayRepository struct {
	mock.Mock
}

func (m *MockPlayRepository) Create(ctx context.Context, play *entity.Play) error {
	args := m.Called(ctx, play)
	return args.Error(0)
}

func (m *MockPlayRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Play, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Play), args.Error(1)
}

func (m *MockPlayRepository) FindAll(ctx context.Context, offset, limit int, filter repository.PlayFilter) ([]*entity.Play, error) {
	args := m.Called(ctx, offset, limit, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Play), args.Error(1)
}

func (m *MockPlayRepository) CountAll(ctx context.Context, filter repository.PlayFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPlayRepository) Update(ctx context.Context, play *entity.Play) error {
	args := m.Called(ctx, play)
	return args.Error(0)
}

func (m *MockPlayRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPlayRepository) ReplaceGenres(ctx context.Context, playID uuid.UUID, genreIDs []uuid.UUID) error {
	args := m.Called(ctx, playID, genreIDs)
	return args.Error(0)
}

func (m *MockPlayRepository) ReplaceActors(ctx context.Context, playID uuid.UUID, actorIDs []uuid.UUID) error {
	args := m.Called(ctx, playID, actorIDs)
	return args.Error(0)
}

type MockHallRepository struct {
	mock.Mock
}

func (m *MockHallRepository) Create(ctx context.Context, hall *entity.TheatreHall) error {
	args := m.Called(ctx, hall)
	return args.Error(0)
}

func (m *MockHallRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TheatreHall, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TheatreHall), args.Error(1)
}

func (m *MockHallRepository) FindAll(ctx context.Context, offset, limit int) ([]*entity.TheatreHall, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.TheatreHall), args.Error(1)
}

func (m *MockHallRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockHallRepository) Update(ctx context.Context, hall *entity.TheatreHall) error {
	args := m.Called(ctx, hall)
	return args.Error(0)
}

func (m *MockHallRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPerformanceRepository struct {
	mock.Mock
}

func (m *MockPerformanceRepository) Create(ctx context.Context, performance *entity.Performance) error {
	args := m.Called(ctx, performance)
	return args.Error(0)
}

func (m *MockPerformanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Performance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Performance), args.Error(1)
}

func (m *MockPerformanceRepository) FindAll(ctx context.Context, offset, limit int, filter repository.PerformanceFilter) ([]*entity.Performance, error) {
	args := m.Called(ctx, offset, limit, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Performance), args.Error(1)
}

func (m *MockPerformanceRepository) CountAll(ctx context.Context, filter repository.PerformanceFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPerformanceRepository) Update(ctx context.Context, performance *entity.Performance) error {
	args := m.Called(ctx, performance)
	return args.Error(0)
}

func (m *MockPerformanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) CreateWithTickets(ctx context.Context, reservation *entity.Reservation, tickets []*entity.Ticket) error {
	args := m.Called(ctx, reservation, tickets)
	return args.Error(0)
}

func (m *MockReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Reservation), args.Error(1)
}

func (m *MockReservationRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Reservation, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Reservation), args.Error(1)
}

func (m *MockReservationRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) FindByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*entity.Ticket, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Ticket), args.Error(1)
}

func (m *MockTicketRepository) FindByPerformanceID(ctx context.Context, performanceID uuid.UUID) ([]*entity.Ticket, error) {
	args := m.Called(ctx, performanceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Ticket), args.Error(1)
}

func (m *MockTicketRepository) CountByPerformanceID(ctx context.Context, performanceID uuid.UUID) (int64, error) {
	args := m.Called(ctx, performanceID)
	return args.Get(0).(int64), args.Error(1)
}
