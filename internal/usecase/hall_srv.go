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

type HallService interface {
	CreateHall(ctx context.Context, req *request.TheatreHallRequest) (*response.TheatreHallResponse, error)
	GetHallByID(ctx context.Context, hallID string) (*response.TheatreHallResponse, error)
	GetHalls(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TheatreHallResponse], error)
	UpdateHall(ctx context.Context, hallID string, req *request.TheatreHallRequest) (*response.TheatreHallResponse, error)
	DeleteHall(ctx context.Context, hallID string) error
}

type hallService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewHallService(repo *repository.Repository, log *zap.Logger) HallService {
	return &hallService{
		repo: repo,
		log:  log.With(zap.String("service", "hall")),
	}
}

func (s *hallService) CreateHall(ctx context.Context, req *request.TheatreHallRequest) (*response.TheatreHallResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create hall validation failed", zap.Any("errors", errs))
		return nil, &entity.ValidationError{Fields: errs}
	}

	now := time.Now()
	hall := &entity.TheatreHall{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:       req.Name,
		SeatRows:   req.SeatRows,
		SeatsInRow: req.SeatsInRow,
	}

	if err := s.repo.Hall.Create(ctx, hall); err != nil {
		return nil, fmt.Errorf("create theatre hall: %w", err)
	}

	s.log.Info("Theatre hall created",
		zap.String("hall_id", hall.ID.String()),
		zap.String("name", hall.Name),
		zap.Int("capacity", hall.Capacity()),
	)

	resp := response.TheatreHallToResponse(hall)
	return &resp, nil
}

func (s *hallService) GetHallByID(ctx context.Context, hallID string) (*response.TheatreHallResponse, error) {
	id, err := uuid.Parse(hallID)
	if err != nil {
		return nil, entity.NewValidationError("id", "Must be a valid UUID")
	}

	hall, err := s.repo.Hall.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get theatre hall: %w", err)
	}
	if hall == nil {
		return nil, &entity.NotFoundError{Resource: "theatre hall", ID: hallID}
	}

	resp := response.TheatreHallToResponse(hall)
	return &resp, nil
}

func (s *hallService) GetHalls(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TheatreHallResponse], error) {
	halls, err := s.repo.Hall.FindAll(ctx, req.Offset(), req.Limit())
	if err != nil {
		return nil, fmt.Errorf("get theatre halls: %w", err)
	}

	total, err := s.repo.Hall.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count theatre halls: %w", err)
	}

	hallResponses := make([]response.TheatreHallResponse, len(halls))
	for i, hall := range halls {
		hallResponses[i] = response.TheatreHallToResponse(hall)
	}

	return response.NewPaginatedResponse(hallResponses, req.Page, req.PerPage, total), nil
}

func (s *hallService) UpdateHall(ctx context.Context, hallID string, req *request.TheatreHallRequest) (*response.TheatreHallResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update hall validation failed", zap.Any("errors", errs))
		return nil, &entity.ValidationError{Fields: errs}
	}

	id, err := uuid.Parse(hallID)
	if err != nil {
		return nil, entity.NewValidationError("id", "Must be a valid UUID")
	}

	hall, err := s.repo.Hall.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get theatre hall: %w", err)
	}
	if hall == nil {
		return nil, &entity.NotFoundError{Resource: "theatre hall", ID: hallID}
	}

	hall.Name = req.Name
	hall.SeatRows = req.SeatRows
	hall.SeatsInRow = req.SeatsInRow
	hall.UpdatedAt = time.Now()

	if err := s.repo.Hall.Update(ctx, hall); err != nil {
		return nil, fmt.Errorf("update theatre hall: %w", err)
	}

	s.log.Info("Theatre hall updated", zap.String("hall_id", hallID))

	resp := response.TheatreHallToResponse(hall)
	return &resp, nil
}

func (s *hallService) DeleteHall(ctx context.Context, hallID string) error {
	id, err := uuid.Parse(hallID)
	if err != nil {
		return entity.NewValidationError("id", "Must be a valid UUID")
	}

	hall, err := s.repo.Hall.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get theatre hall: %w", err)
	}
	if hall == nil {
		return &entity.NotFoundError{Resource: "theatre hall", ID: hallID}
	}

	if err := s.repo.Hall.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete theatre hall: %w", err)
	}

	s.log.Info("Theatre hall deleted", zap.String("hall_id", hallID))
	return nil
}
