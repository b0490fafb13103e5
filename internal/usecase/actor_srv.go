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

type ActorService interface {
	CreateActor(ctx context.Context, req *request.ActorRequest) (*response.ActorResponse, error)
	GetActorByID(ctx context.Context, actorID string) (*response.ActorResponse, error)
	GetActors(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ActorResponse], error)
	UpdateActor(ctx context.Context, actorID string, req *request.ActorRequest) (*response.ActorResponse, error)
	DeleteActor(ctx context.Context, actorID string) error
}

type actorService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewActorService(repo *repository.Repository, log *zap.Logger) ActorService {
	return &actorService{
		repo: repo,
		log:  log.With(zap.String("service", "actor")),
	}
}

func (s *actorService) CreateActor(ctx context.Context, req *request.ActorRequest) (*response.ActorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create actor validation failed", zap.Any("errors", errs))
		return nil, &entity.ValidationError{Fields: errs}
	}

	actor := &entity.Actor{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	if err := s.repo.Actor.Create(ctx, actor); err != nil {
		return nil, fmt.Errorf("create actor: %w", err)
	}

	s.log.Info("Actor created",
		zap.String("actor_id", actor.ID.String()),
		zap.String("name", actor.FullName()))

	resp := response.ActorToResponse(actor)
	return &resp, nil
}

func (s *actorService) GetActorByID(ctx context.Context, actorID string) (*response.ActorResponse, error) {
	id, err := uuid.Parse(actorID)
	if err != nil {
		return nil, entity.NewValidationError("id", "Must be a valid UUID")
	}

	actor, err := s.repo.Actor.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get actor: %w", err)
	}
	if actor == nil {
		return nil, &entity.NotFoundError{Resource: "actor", ID: actorID}
	}

	resp := response.ActorToResponse(actor)
	return &resp, nil
}

func (s *actorService) GetActors(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ActorResponse], error) {
	actors, err := s.repo.Actor.FindAll(ctx, req.Offset(), req.Limit())
	if err != nil {
		return nil, fmt.Errorf("get actors: %w", err)
	}

	total, err := s.repo.Actor.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count actors: %w", err)
	}

	actorResponses := make([]response.ActorResponse, len(actors))
	for i, actor := range actors {
		actorResponses[i] = response.ActorToResponse(actor)
	}

	return response.NewPaginatedResponse(actorResponses, req.Page, req.PerPage, total), nil
}

func (s *actorService) UpdateActor(ctx context.Context, actorID string, req *request.ActorRequest) (*response.ActorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update actor validation failed", zap.Any("errors", errs))
		return nil, &entity.ValidationError{Fields: errs}
	}

	id, err := uuid.Parse(actorID)
	if err != nil {
		return nil, entity.NewValidationError("id", "Must be a valid UUID")
	}

	actor, err := s.repo.Actor.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get actor: %w", err)
	}
	if actor == nil {
		return nil, &entity.NotFoundError{Resource: "actor", ID: actorID}
	}

	actor.FirstName = req.FirstName
	actor.LastName = req.LastName
	if err := s.repo.Actor.Update(ctx, actor); err != nil {
		return nil, fmt.Errorf("update actor: %w", err)
	}

	s.log.Info("Actor updated", zap.String("actor_id", actorID))

	resp := response.ActorToResponse(actor)
	return &resp, nil
}

func (s *actorService) DeleteActor(ctx context.Context, actorID string) error {
	id, err := uuid.Parse(actorID)
	if err != nil {
		return entity.NewValidationError("id", "Must be a valid UUID")
	}

	actor, err := s.repo.Actor.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get actor: %w", err)
	}
	if actor == nil {
		return &entity.NotFoundError{Resource: "actor", ID: actorID}
	}

	if err := s.repo.Actor.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete actor: %w", err)
	}

	s.log.Info("Actor deleted", zap.String("actor_id", actorID))
	return nil
}
