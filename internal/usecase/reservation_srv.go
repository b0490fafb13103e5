package usecase

import (
	"context"
	"fmt"
	"time"

	"theatre-booking/internal/data/entity"
	"theatre-booking/internal/data/repository"
	"theatre-booking/internal/dto/request"
	"theatre-booking/internal/dto/response"
	"theatre-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReservationService interface {
	// CreateReservation books every requested seat or none of them. The
	// final arbiter for concurrent requests on the same seat is the unique
	// index on tickets; the loser gets a *entity.SeatConflictError.
	CreateReservation(ctx context.Context, userID string, req *request.CreateReservationRequest) (*response.ReservationResponse, error)

	GetReservationByID(ctx context.Context, userID, role, reservationID string) (*response.ReservationResponse, error)
	GetUserReservations(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReservationResponse], error)
	DeleteReservation(ctx context.Context, userID, role, reservationID string) error
}

type reservationService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReservationService(repo *repository.Repository, log *zap.Logger) ReservationService {
	return &reservationService{
		repo: repo,
		log:  log.With(zap.String("service", "reservation")),
	}
}

func (s *reservationService) CreateReservation(ctx context.Context, userID string, req *request.CreateReservationRequest) (*response.ReservationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create reservation validation failed", zap.Any("errors", errs))
		return nil, &entity.ValidationError{Fields: errs}
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, entity.ErrUnauthorized
	}

	tickets, err := s.buildTickets(ctx, req.Tickets)
	if err != nil {
		return nil, err
	}

	reservation := &entity.Reservation{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID: uid,
	}
	for _, ticket := range tickets {
		ticket.ReservationID = reservation.ID
	}

	if err := s.repo.Reservation.CreateWithTickets(ctx, reservation, tickets); err != nil {
		return nil, err
	}

	s.log.Info("Reservation created",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("user_id", userID),
		zap.Int("tickets", len(tickets)),
	)

	return s.toResponse(ctx, reservation, tickets)
}

func (s *reservationService) GetReservationByID(ctx context.Context, userID, role, reservationID string) (*response.ReservationResponse, error) {
	reservation, err := s.findOwned(ctx, userID, role, reservationID)
	if err != nil {
		return nil, err
	}

	tickets, err := s.repo.Ticket.FindByReservationID(ctx, reservation.ID)
	if err != nil {
		return nil, fmt.Errorf("get reservation tickets: %w", err)
	}

	return s.toResponse(ctx, reservation, tickets)
}

func (s *reservationService) GetUserReservations(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReservationResponse], error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, entity.ErrUnauthorized
	}

	reservations, err := s.repo.Reservation.FindByUserID(ctx, uid, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("get reservations: %w", err)
	}

	total, err := s.repo.Reservation.CountByUserID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("count reservations: %w", err)
	}

	reservationResponses := make([]response.ReservationResponse, len(reservations))
	for i, reservation := range reservations {
		tickets, err := s.repo.Ticket.FindByReservationID(ctx, reservation.ID)
		if err != nil {
			return nil, fmt.Errorf("get reservation tickets: %w", err)
		}
		resp, err := s.toResponse(ctx, reservation, tickets)
		if err != nil {
			return nil, err
		}
		reservationResponses[i] = *resp
	}

	return response.NewPaginatedResponse(reservationResponses, req.Page, req.PerPage, total), nil
}

func (s *reservationService) DeleteReservation(ctx context.Context, userID, role, reservationID string) error {
	reservation, err := s.findOwned(ctx, userID, role, reservationID)
	if err != nil {
		return err
	}

	if err := s.repo.Reservation.Delete(ctx, reservation.ID); err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}

	s.log.Info("Reservation cancelled",
		zap.String("reservation_id", reservationID),
		zap.String("user_id", userID),
	)
	return nil
}

// buildTickets validates every requested triple against the hall of its
// performance and rejects duplicates within the request itself before any
// row is written.
func (s *reservationService) buildTickets(ctx context.Context, requested []request.TicketRequest) ([]*entity.Ticket, error) {
	halls := make(map[uuid.UUID]*entity.TheatreHall)
	seen := make(map[string]bool)

	now := time.Now()
	tickets := make([]*entity.Ticket, 0, len(requested))
	for i, tr := range requested {
		field := fmt.Sprintf("tickets[%d]", i)

		performanceID, err := uuid.Parse(tr.PerformanceID)
		if err != nil {
			return nil, entity.NewValidationError(field+".performance", "Must be a valid UUID")
		}

		key := fmt.Sprintf("%s/%d/%d", performanceID, tr.Row, tr.Seat)
		if seen[key] {
			return nil, entity.NewValidationError(field, "Duplicate seat in request")
		}
		seen[key] = true

		hall, ok := halls[performanceID]
		if !ok {
			performance, err := s.repo.Performance.FindByID(ctx, performanceID)
			if err != nil {
				return nil, fmt.Errorf("check performance: %w", err)
			}
			if performance == nil {
				return nil, &entity.NotFoundError{Resource: "performance", ID: tr.PerformanceID}
			}

			hall, err = s.repo.Hall.FindByID(ctx, performance.HallID)
			if err != nil {
				return nil, fmt.Errorf("check theatre hall: %w", err)
			}
			if hall == nil {
				return nil, fmt.Errorf("theatre hall %s missing for performance %s", performance.HallID, performanceID)
			}
			halls[performanceID] = hall
		}

		if tr.Row > hall.SeatRows {
			return nil, entity.NewValidationError(field+".row",
				fmt.Sprintf("Row must be between 1 and %d", hall.SeatRows))
		}
		if tr.Seat > hall.SeatsInRow {
			return nil, entity.NewValidationError(field+".seat",
				fmt.Sprintf("Seat must be between 1 and %d", hall.SeatsInRow))
		}

		tickets = append(tickets, &entity.Ticket{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			PerformanceID: performanceID,
			SeatRow:       tr.Row,
			SeatNumber:    tr.Seat,
		})
	}

	return tickets, nil
}

// findOwned loads the reservation and enforces that only its owner or an
// admin may touch it.
func (s *reservationService) findOwned(ctx context.Context, userID, role, reservationID string) (*entity.Reservation, error) {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, entity.NewValidationError("id", "Must be a valid UUID")
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	if reservation == nil {
		return nil, &entity.NotFoundError{Resource: "reservation", ID: reservationID}
	}

	if reservation.UserID.String() != userID && role != string(entity.RoleAdmin) {
		return nil, entity.ErrForbidden
	}

	return reservation, nil
}

// toResponse builds the reservation payload with a performance summary
// nested under every ticket, memoized per performance.
func (s *reservationService) toResponse(ctx context.Context, reservation *entity.Reservation, tickets []*entity.Ticket) (*response.ReservationResponse, error) {
	summaries := make(map[uuid.UUID]*response.PerformanceListResponse)

	ticketResponses := make([]response.TicketResponse, len(tickets))
	for i, ticket := range tickets {
		tr := response.TicketToResponse(ticket)

		summary, ok := summaries[ticket.PerformanceID]
		if !ok {
			var err error
			summary, err = s.performanceSummary(ctx, ticket.PerformanceID)
			if err != nil {
				return nil, err
			}
			summaries[ticket.PerformanceID] = summary
		}
		tr.Performance = summary

		ticketResponses[i] = tr
	}

	return &response.ReservationResponse{
		ID:        reservation.ID.String(),
		CreatedAt: reservation.CreatedAt,
		Tickets:   ticketResponses,
	}, nil
}

func (s *reservationService) performanceSummary(ctx context.Context, performanceID uuid.UUID) (*response.PerformanceListResponse, error) {
	performance, err := s.repo.Performance.FindByID(ctx, performanceID)
	if err != nil {
		return nil, fmt.Errorf("get ticket performance: %w", err)
	}
	if performance == nil {
		return nil, nil
	}

	summary := &response.PerformanceListResponse{
		ID:       performance.ID.String(),
		ShowTime: performance.ShowTime,
	}

	play, err := s.repo.Play.FindByID(ctx, performance.PlayID)
	if err != nil {
		return nil, fmt.Errorf("get ticket play: %w", err)
	}
	if play != nil {
		summary.PlayTitle = play.Title
	}

	hall, err := s.repo.Hall.FindByID(ctx, performance.HallID)
	if err != nil {
		return nil, fmt.Errorf("get ticket hall: %w", err)
	}
	if hall != nil {
		booked, err := s.repo.Ticket.CountByPerformanceID(ctx, performance.ID)
		if err != nil {
			return nil, fmt.Errorf("count booked tickets: %w", err)
		}
		summary.HallName = hall.Name
		summary.HallCapacity = hall.Capacity()
		summary.TicketsAvailable = hall.Capacity() - int(booked)
	}

	return summary, nil
}
