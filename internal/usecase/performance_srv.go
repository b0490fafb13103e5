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

// PerformanceListParams carries the optional list filters: a calendar date
// (YYYY-MM-DD) and a play id.
type PerformanceListParams struct {
	Date   string
	PlayID string
}

type PerformanceService interface {
	CreatePerformance(ctx context.Context, req *request.PerformanceRequest) (*response.PerformanceResponse, error)
	GetPerformanceByID(ctx context.Context, performanceID string) (*response.PerformanceDetailResponse, error)
	GetPerformances(ctx context.Context, req *request.PaginatedRequest, params PerformanceListParams) (*response.PaginatedResponse[response.PerformanceListResponse], error)
	UpdatePerformance(ctx context.Context, performanceID string, req *request.PerformanceRequest) (*response.PerformanceResponse, error)
	DeletePerformance(ctx context.Context, performanceID string) error
}

type performanceService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPerformanceService(repo *repository.Repository, log *zap.Logger) PerformanceService {
	return &performanceService{
		repo: repo,
		log:  log.With(zap.String("service", "performance")),
	}
}

func (s *performanceService) CreatePerformance(ctx context.Context, req *request.PerformanceRequest) (*response.PerformanceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create performance validation failed", zap.Any("errors", errs))
		return nil, &entity.ValidationError{Fields: errs}
	}

	playID, hallID, showTime, err := s.resolveRefs(ctx, req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	performance := &entity.Performance{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		PlayID:   playID,
		HallID:   hallID,
		ShowTime: showTime,
	}

	if err := s.repo.Performance.Create(ctx, performance); err != nil {
		return nil, fmt.Errorf("create performance: %w", err)
	}

	s.log.Info("Performance created",
		zap.String("performance_id", performance.ID.String()),
		zap.String("play_id", playID.String()),
		zap.Time("show_time", showTime),
	)

	resp := response.PerformanceToResponse(performance)
	return &resp, nil
}

func (s *performanceService) GetPerformanceByID(ctx context.Context, performanceID string) (*response.PerformanceDetailResponse, error) {
	id, err := uuid.Parse(performanceID)
	if err != nil {
		return nil, entity.NewValidationError("id", "Must be a valid UUID")
	}

	performance, err := s.repo.Performance.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get performance: %w", err)
	}
	if performance == nil {
		return nil, &entity.NotFoundError{Resource: "performance", ID: performanceID}
	}

	play, err := s.repo.Play.FindByID(ctx, performance.PlayID)
	if err != nil || play == nil {
		return nil, fmt.Errorf("get performance play: %w", err)
	}

	hall, err := s.repo.Hall.FindByID(ctx, performance.HallID)
	if err != nil || hall == nil {
		return nil, fmt.Errorf("get performance hall: %w", err)
	}

	genres, err := s.repo.Genre.FindByPlayID(ctx, play.ID)
	if err != nil {
		return nil, fmt.Errorf("get play genres: %w", err)
	}
	actors, err := s.repo.Actor.FindByPlayID(ctx, play.ID)
	if err != nil {
		return nil, fmt.Errorf("get play actors: %w", err)
	}

	tickets, err := s.repo.Ticket.FindByPerformanceID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get taken places: %w", err)
	}

	return &response.PerformanceDetailResponse{
		ID:          performance.ID.String(),
		ShowTime:    performance.ShowTime,
		Play:        response.PlayToListResponse(play, genres, actors),
		TheatreHall: response.TheatreHallToResponse(hall),
		TakenPlaces: response.TicketsToTakenPlaces(tickets),
	}, nil
}

func (s *performanceService) GetPerformances(ctx context.Context, req *request.PaginatedRequest, params PerformanceListParams) (*response.PaginatedResponse[response.PerformanceListResponse], error) {
	filter := repository.PerformanceFilter{}

	if params.Date != "" {
		date, err := time.Parse("2006-01-02", params.Date)
		if err != nil {
			return nil, entity.NewValidationError("date", "Must match format 2006-01-02")
		}
		filter.Date = &date
	}

	if params.PlayID != "" {
		playID, err := uuid.Parse(params.PlayID)
		if err != nil {
			return nil, entity.NewValidationError("play", "Must be a valid UUID")
		}
		filter.PlayID = &playID
	}

	performances, err := s.repo.Performance.FindAll(ctx, req.Offset(), req.Limit(), filter)
	if err != nil {
		return nil, fmt.Errorf("get performances: %w", err)
	}

	total, err := s.repo.Performance.CountAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count performances: %w", err)
	}

	performanceResponses := make([]response.PerformanceListResponse, len(performances))
	for i, performance := range performances {
		row := response.PerformanceListResponse{
			ID:       performance.ID.String(),
			ShowTime: performance.ShowTime,
		}

		play, err := s.repo.Play.FindByID(ctx, performance.PlayID)
		if err != nil {
			return nil, fmt.Errorf("get performance play: %w", err)
		}
		if play != nil {
			row.PlayTitle = play.Title
		}

		hall, err := s.repo.Hall.FindByID(ctx, performance.HallID)
		if err != nil {
			return nil, fmt.Errorf("get performance hall: %w", err)
		}

		if hall != nil {
			booked, err := s.repo.Ticket.CountByPerformanceID(ctx, performance.ID)
			if err != nil {
				return nil, fmt.Errorf("count booked tickets: %w", err)
			}
			row.HallName = hall.Name
			row.HallCapacity = hall.Capacity()
			row.TicketsAvailable = hall.Capacity() - int(booked)
		}

		performanceResponses[i] = row
	}

	return response.NewPaginatedResponse(performanceResponses, req.Page, req.PerPage, total), nil
}

func (s *performanceService) UpdatePerformance(ctx context.Context, performanceID string, req *request.PerformanceRequest) (*response.PerformanceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update performance validation failed", zap.Any("errors", errs))
		return nil, &entity.ValidationError{Fields: errs}
	}

	id, err := uuid.Parse(performanceID)
	if err != nil {
		return nil, entity.NewValidationError("id", "Must be a valid UUID")
	}

	performance, err := s.repo.Performance.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get performance: %w", err)
	}
	if performance == nil {
		return nil, &entity.NotFoundError{Resource: "performance", ID: performanceID}
	}

	playID, hallID, showTime, err := s.resolveRefs(ctx, req)
	if err != nil {
		return nil, err
	}

	performance.PlayID = playID
	performance.HallID = hallID
	performance.ShowTime = showTime
	performance.UpdatedAt = time.Now()

	if err := s.repo.Performance.Update(ctx, performance); err != nil {
		return nil, fmt.Errorf("update performance: %w", err)
	}

	s.log.Info("Performance updated", zap.String("performance_id", performanceID))

	resp := response.PerformanceToResponse(performance)
	return &resp, nil
}

func (s *performanceService) DeletePerformance(ctx context.Context, performanceID string) error {
	id, err := uuid.Parse(performanceID)
	if err != nil {
		return entity.NewValidationError("id", "Must be a valid UUID")
	}

	performance, err := s.repo.Performance.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get performance: %w", err)
	}
	if performance == nil {
		return &entity.NotFoundError{Resource: "performance", ID: performanceID}
	}

	if err := s.repo.Performance.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete performance: %w", err)
	}

	s.log.Info("Performance deleted", zap.String("performance_id", performanceID))
	return nil
}

// resolveRefs parses and verifies the play and hall references and the
// show time.
func (s *performanceService) resolveRefs(ctx context.Context, req *request.PerformanceRequest) (uuid.UUID, uuid.UUID, time.Time, error) {
	playID, err := uuid.Parse(req.PlayID)
	if err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, entity.NewValidationError("play_id", "Must be a valid UUID")
	}

	hallID, err := uuid.Parse(req.HallID)
	if err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, entity.NewValidationError("theatre_hall_id", "Must be a valid UUID")
	}

	showTime, err := time.Parse(time.RFC3339, req.ShowTime)
	if err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, entity.NewValidationError("show_time", "Must match RFC3339 format")
	}

	play, err := s.repo.Play.FindByID(ctx, playID)
	if err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, fmt.Errorf("check play: %w", err)
	}
	if play == nil {
		return uuid.Nil, uuid.Nil, time.Time{}, &entity.NotFoundError{Resource: "play", ID: req.PlayID}
	}

	hall, err := s.repo.Hall.FindByID(ctx, hallID)
	if err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, fmt.Errorf("check theatre hall: %w", err)
	}
	if hall == nil {
		return uuid.Nil, uuid.Nil, time.Time{}, &entity.NotFoundError{Resource: "theatre hall", ID: req.HallID}
	}

	return playID, hallID, showTime, nil
}
