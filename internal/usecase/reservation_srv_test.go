package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"theatre-booking/internal/data/entity"
	"theatre-booking/internal/data/repository"
	"theatre-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type reservationFixture struct {
	reservations *MockReservationRepository
	tickets      *MockTicketRepository
	performances *MockPerformanceRepository
	halls        *MockHallRepository
	plays        *MockPlayRepository
	service      ReservationService
}

func newReservationFixture() *reservationFixture {
	f := &reservationFixture{
		reservations: new(MockReservationRepository),
		tickets:      new(MockTicketRepository),
		performances: new(MockPerformanceRepository),
		halls:        new(MockHallRepository),
		plays:        new(MockPlayRepository),
	}

	repo := &repository.Repository{
		Reservation: f.reservations,
		Ticket:      f.tickets,
		Performance: f.performances,
		Hall:        f.halls,
		Play:        f.plays,
	}

	f.service = NewReservationService(repo, zap.NewNop())
	return f
}

// expectSummary registers the lookups toResponse makes while nesting the
// performance summary under each ticket.
func (f *reservationFixture) expectSummary(performance *entity.Performance, play *entity.Play, hall *entity.TheatreHall, booked int64) {
	f.performances.On("FindByID", mock.Anything, performance.ID).Return(performance, nil)
	f.plays.On("FindByID", mock.Anything, performance.PlayID).Return(play, nil)
	f.halls.On("FindByID", mock.Anything, hall.ID).Return(hall, nil)
	f.tickets.On("CountByPerformanceID", mock.Anything, performance.ID).Return(booked, nil)
}

func fixtureHall(rows, seatsInRow int) *entity.TheatreHall {
	return &entity.TheatreHall{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:       "Main Stage",
		SeatRows:   rows,
		SeatsInRow: seatsInRow,
	}
}

func fixturePerformance(hallID uuid.UUID) *entity.Performance {
	return &entity.Performance{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		PlayID:   uuid.New(),
		HallID:   hallID,
		ShowTime: time.Now().Add(24 * time.Hour),
	}
}

func fixturePlay(id uuid.UUID, title string) *entity.Play {
	return &entity.Play{
		Base:  entity.Base{ID: id, CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Title: title,
	}
}

func TestCreateReservation_Success(t *testing.T) {
	f := newReservationFixture()

	hall := fixtureHall(10, 20)
	performance := fixturePerformance(hall.ID)
	play := fixturePlay(performance.PlayID, "Hamlet")
	userID := uuid.New()

	f.expectSummary(performance, play, hall, 2)
	f.reservations.On("CreateWithTickets", mock.Anything,
		mock.MatchedBy(func(r *entity.Reservation) bool {
			return r.UserID == userID
		}),
		mock.MatchedBy(func(tickets []*entity.Ticket) bool {
			if len(tickets) != 2 {
				return false
			}
			// Every ticket must be bound to the same reservation.
			for _, ticket := range tickets {
				if ticket.ReservationID == uuid.Nil || ticket.ReservationID != tickets[0].ReservationID {
					return false
				}
			}
			return true
		}),
	).Return(nil)

	req := &request.CreateReservationRequest{
		Tickets: []request.TicketRequest{
			{PerformanceID: performance.ID.String(), Row: 1, Seat: 1},
			{PerformanceID: performance.ID.String(), Row: 1, Seat: 2},
		},
	}

	resp, err := f.service.CreateReservation(context.Background(), userID.String(), req)

	require.NoError(t, err)
	require.NotNil(t, resp)
	require.Len(t, resp.Tickets, 2)
	assert.Equal(t, 1, resp.Tickets[0].Row)
	assert.Equal(t, 2, resp.Tickets[1].Seat)

	require.NotNil(t, resp.Tickets[0].Performance)
	assert.Equal(t, "Hamlet", resp.Tickets[0].Performance.PlayTitle)
	assert.Equal(t, 200, resp.Tickets[0].Performance.HallCapacity)
	assert.Equal(t, 198, resp.Tickets[0].Performance.TicketsAvailable)
	f.reservations.AssertExpectations(t)
}

func TestCreateReservation_EmptyTickets(t *testing.T) {
	f := newReservationFixture()

	req := &request.CreateReservationRequest{Tickets: []request.TicketRequest{}}

	resp, err := f.service.CreateReservation(context.Background(), uuid.New().String(), req)

	require.Error(t, err)
	assert.Nil(t, resp)

	var validationErr *entity.ValidationError
	assert.True(t, errors.As(err, &validationErr))
	f.reservations.AssertNotCalled(t, "CreateWithTickets")
}

func TestCreateReservation_RowOutOfRange(t *testing.T) {
	f := newReservationFixture()

	hall := fixtureHall(5, 8)
	performance := fixturePerformance(hall.ID)

	f.performances.On("FindByID", mock.Anything, performance.ID).Return(performance, nil)
	f.halls.On("FindByID", mock.Anything, hall.ID).Return(hall, nil)

	// One valid seat plus one out of range; nothing may be written.
	req := &request.CreateReservationRequest{
		Tickets: []request.TicketRequest{
			{PerformanceID: performance.ID.String(), Row: 3, Seat: 4},
			{PerformanceID: performance.ID.String(), Row: 10, Seat: 4},
		},
	}

	resp, err := f.service.CreateReservation(context.Background(), uuid.New().String(), req)

	require.Error(t, err)
	assert.Nil(t, resp)

	var validationErr *entity.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Fields, "tickets[1].row")
	f.reservations.AssertNotCalled(t, "CreateWithTickets")
}

func TestCreateReservation_SeatOutOfRange(t *testing.T) {
	f := newReservationFixture()

	hall := fixtureHall(5, 8)
	performance := fixturePerformance(hall.ID)

	f.performances.On("FindByID", mock.Anything, performance.ID).Return(performance, nil)
	f.halls.On("FindByID", mock.Anything, hall.ID).Return(hall, nil)

	req := &request.CreateReservationRequest{
		Tickets: []request.TicketRequest{
			{PerformanceID: performance.ID.String(), Row: 2, Seat: 9},
		},
	}

	_, err := f.service.CreateReservation(context.Background(), uuid.New().String(), req)

	var validationErr *entity.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Fields, "tickets[0].seat")
	f.reservations.AssertNotCalled(t, "CreateWithTickets")
}

func TestCreateReservation_DuplicateSeatInRequest(t *testing.T) {
	f := newReservationFixture()

	hall := fixtureHall(10, 10)
	performance := fixturePerformance(hall.ID)

	f.performances.On("FindByID", mock.Anything, performance.ID).Return(performance, nil)
	f.halls.On("FindByID", mock.Anything, hall.ID).Return(hall, nil)

	req := &request.CreateReservationRequest{
		Tickets: []request.TicketRequest{
			{PerformanceID: performance.ID.String(), Row: 2, Seat: 2},
			{PerformanceID: performance.ID.String(), Row: 2, Seat: 2},
		},
	}

	_, err := f.service.CreateReservation(context.Background(), uuid.New().String(), req)

	var validationErr *entity.ValidationError
	require.True(t, errors.As(err, &validationErr))
	f.reservations.AssertNotCalled(t, "CreateWithTickets")
}

func TestCreateReservation_PerformanceNotFound(t *testing.T) {
	f := newReservationFixture()

	missingID := uuid.New()
	f.performances.On("FindByID", mock.Anything, missingID).Return(nil, nil)

	req := &request.CreateReservationRequest{
		Tickets: []request.TicketRequest{
			{PerformanceID: missingID.String(), Row: 1, Seat: 1},
		},
	}

	_, err := f.service.CreateReservation(context.Background(), uuid.New().String(), req)

	var notFoundErr *entity.NotFoundError
	require.True(t, errors.As(err, &notFoundErr))
	assert.Equal(t, "performance", notFoundErr.Resource)
	f.reservations.AssertNotCalled(t, "CreateWithTickets")
}

func TestCreateReservation_SeatConflict(t *testing.T) {
	f := newReservationFixture()

	hall := fixtureHall(10, 10)
	performance := fixturePerformance(hall.ID)

	f.performances.On("FindByID", mock.Anything, performance.ID).Return(performance, nil)
	f.halls.On("FindByID", mock.Anything, hall.ID).Return(hall, nil)
	f.reservations.On("CreateWithTickets", mock.Anything, mock.Anything, mock.Anything).
		Return(&entity.SeatConflictError{PerformanceID: performance.ID, Row: 3, Seat: 5})

	req := &request.CreateReservationRequest{
		Tickets: []request.TicketRequest{
			{PerformanceID: performance.ID.String(), Row: 3, Seat: 5},
		},
	}

	resp, err := f.service.CreateReservation(context.Background(), uuid.New().String(), req)

	require.Error(t, err)
	assert.Nil(t, resp)

	var conflictErr *entity.SeatConflictError
	require.True(t, errors.As(err, &conflictErr))
	assert.Equal(t, 3, conflictErr.Row)
	assert.Equal(t, 5, conflictErr.Seat)
}

// Two requests race for the same seat: the storage layer lets exactly one
// transaction commit, the second gets the conflict.
func TestCreateReservation_ConcurrentRequestsOneWins(t *testing.T) {
	f := newReservationFixture()

	hall := fixtureHall(10, 10)
	performance := fixturePerformance(hall.ID)
	play := fixturePlay(performance.PlayID, "Hamlet")

	f.expectSummary(performance, play, hall, 1)
	f.reservations.On("CreateWithTickets", mock.Anything, mock.Anything, mock.Anything).
		Return(nil).Once()
	f.reservations.On("CreateWithTickets", mock.Anything, mock.Anything, mock.Anything).
		Return(&entity.SeatConflictError{PerformanceID: performance.ID, Row: 1, Seat: 1}).Once()

	req := &request.CreateReservationRequest{
		Tickets: []request.TicketRequest{
			{PerformanceID: performance.ID.String(), Row: 1, Seat: 1},
		},
	}

	first, firstErr := f.service.CreateReservation(context.Background(), uuid.New().String(), req)
	second, secondErr := f.service.CreateReservation(context.Background(), uuid.New().String(), req)

	require.NoError(t, firstErr)
	require.NotNil(t, first)

	require.Error(t, secondErr)
	assert.Nil(t, second)

	var conflictErr *entity.SeatConflictError
	assert.True(t, errors.As(secondErr, &conflictErr))
	f.reservations.AssertNumberOfCalls(t, "CreateWithTickets", 2)
}

func TestGetUserReservations(t *testing.T) {
	f := newReservationFixture()

	hall := fixtureHall(5, 10)
	performance := fixturePerformance(hall.ID)
	play := fixturePlay(performance.PlayID, "Hamlet")

	userID := uuid.New()
	reservation := &entity.Reservation{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     userID,
	}
	ticket := &entity.Ticket{
		BaseSimple:    entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		ReservationID: reservation.ID,
		PerformanceID: performance.ID,
		SeatRow:       4,
		SeatNumber:    7,
	}

	f.reservations.On("FindByUserID", mock.Anything, userID, 10, 0).
		Return([]*entity.Reservation{reservation}, nil)
	f.reservations.On("CountByUserID", mock.Anything, userID).Return(int64(1), nil)
	f.tickets.On("FindByReservationID", mock.Anything, reservation.ID).
		Return([]*entity.Ticket{ticket}, nil)
	f.expectSummary(performance, play, hall, 1)

	req := &request.PaginatedRequest{Page: 1, PerPage: 10}
	resp, err := f.service.GetUserReservations(context.Background(), userID.String(), req)

	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	require.Len(t, resp.Data[0].Tickets, 1)
	assert.Equal(t, 4, resp.Data[0].Tickets[0].Row)
	assert.Equal(t, 7, resp.Data[0].Tickets[0].Seat)

	require.NotNil(t, resp.Data[0].Tickets[0].Performance)
	assert.Equal(t, "Hamlet", resp.Data[0].Tickets[0].Performance.PlayTitle)
	assert.Equal(t, 49, resp.Data[0].Tickets[0].Performance.TicketsAvailable)
	assert.Equal(t, int64(1), resp.Pagination.Total)
}

func TestDeleteReservation_Owner(t *testing.T) {
	f := newReservationFixture()

	userID := uuid.New()
	reservation := &entity.Reservation{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     userID,
	}

	f.reservations.On("FindByID", mock.Anything, reservation.ID).Return(reservation, nil)
	f.reservations.On("Delete", mock.Anything, reservation.ID).Return(nil)

	err := f.service.DeleteReservation(context.Background(), userID.String(), string(entity.RoleCustomer), reservation.ID.String())

	require.NoError(t, err)
	f.reservations.AssertExpectations(t)
}

func TestDeleteReservation_AdminCanDeleteAny(t *testing.T) {
	f := newReservationFixture()

	reservation := &entity.Reservation{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     uuid.New(),
	}

	f.reservations.On("FindByID", mock.Anything, reservation.ID).Return(reservation, nil)
	f.reservations.On("Delete", mock.Anything, reservation.ID).Return(nil)

	err := f.service.DeleteReservation(context.Background(), uuid.New().String(), string(entity.RoleAdmin), reservation.ID.String())

	require.NoError(t, err)
}

func TestDeleteReservation_OtherUserForbidden(t *testing.T) {
	f := newReservationFixture()

	reservation := &entity.Reservation{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     uuid.New(),
	}

	f.reservations.On("FindByID", mock.Anything, reservation.ID).Return(reservation, nil)

	err := f.service.DeleteReservation(context.Background(), uuid.New().String(), string(entity.RoleCustomer), reservation.ID.String())

	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrForbidden))
	f.reservations.AssertNotCalled(t, "Delete")
}

func TestDeleteReservation_NotFound(t *testing.T) {
	f := newReservationFixture()

	missingID := uuid.New()
	f.reservations.On("FindByID", mock.Anything, missingID).Return(nil, nil)

	err := f.service.DeleteReservation(context.Background(), uuid.New().String(), string(entity.RoleCustomer), missingID.String())

	var notFoundErr *entity.NotFoundError
	require.True(t, errors.As(err, &notFoundErr))
	f.reservations.AssertNotCalled(t, "Delete")
}
