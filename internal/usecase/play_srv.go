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

// PlayListParams carries the optional play list filters parsed from query
// parameters.
type PlayListParams struct {
	Title    string
	GenreIDs []uuid.UUID
	ActorIDs []uuid.UUID
}

type PlayService interface {
	CreatePlay(ctx context.Context, req *request.PlayRequest) (*response.PlayDetailResponse, error)
	GetPlayByID(ctx context.Context, playID string) (*response.PlayDetailResponse, error)
	GetPlays(ctx context.Context, req *request.PaginatedRequest, params PlayListParams) (*response.PaginatedResponse[response.PlayListResponse], error)
	UpdatePlay(ctx context.Context, playID string, req *request.PlayUpdateRequest) (*response.PlayDetailResponse, error)
	DeletePlay(ctx context.Context, playID string) error
}

type playService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPlayService(repo *repository.Repository, log *zap.Logger) PlayService {
	return &playService{
		repo: repo,
		log:  log.With(zap.String("service", "play")),
	}
}

func (s *playService) CreatePlay(ctx context.Context, req *request.PlayRequest) (*response.PlayDetailResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create play validation failed", zap.Any("errors", errs))
		return nil, &entity.ValidationError{Fields: errs}
	}

	genreIDs, err := s.resolveGenres(ctx, req.GenreIDs)
	if err != nil {
		return nil, err
	}

	actorIDs, err := s.resolveActors(ctx, req.ActorIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	play := &entity.Play{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		Description: req.Description,
	}

	if err := s.repo.Play.Create(ctx, play); err != nil {
		return nil, fmt.Errorf("create play: %w", err)
	}

	if err := s.repo.Play.ReplaceGenres(ctx, play.ID, genreIDs); err != nil {
		return nil, fmt.Errorf("set play genres: %w", err)
	}
	if err := s.repo.Play.ReplaceActors(ctx, play.ID, actorIDs); err != nil {
		return nil, fmt.Errorf("set play actors: %w", err)
	}

	s.log.Info("Play created",
		zap.String("play_id", play.ID.String()),
		zap.String("title", play.Title),
		zap.Int("genres", len(genreIDs)),
		zap.Int("actors", len(actorIDs)),
	)

	return s.buildDetailResponse(ctx, play)
}

func (s *playService) GetPlayByID(ctx context.Context, playID string) (*response.PlayDetailResponse, error) {
	id, err := uuid.Parse(playID)
	if err != nil {
		return nil, entity.NewValidationError("id", "Must be a valid UUID")
	}

	play, err := s.repo.Play.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get play: %w", err)
	}
	if play == nil {
		return nil, &entity.NotFoundError{Resource: "play", ID: playID}
	}

	return s.buildDetailResponse(ctx, play)
}

func (s *playService) GetPlays(ctx context.Context, req *request.PaginatedRequest, params PlayListParams) (*response.PaginatedResponse[response.PlayListResponse], error) {
	filter := repository.PlayFilter{
		Title:    params.Title,
		GenreIDs: params.GenreIDs,
		ActorIDs: params.ActorIDs,
	}

	plays, err := s.repo.Play.FindAll(ctx, req.Offset(), req.Limit(), filter)
	if err != nil {
		return nil, fmt.Errorf("get plays: %w", err)
	}

	total, err := s.repo.Play.CountAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count plays: %w", err)
	}

	playResponses := make([]response.PlayListResponse, len(plays))
	for i, play := range plays {
		genres, err := s.repo.Genre.FindByPlayID(ctx, play.ID)
		if err != nil {
			return nil, fmt.Errorf("get play genres: %w", err)
		}
		actors, err := s.repo.Actor.FindByPlayID(ctx, play.ID)
		if err != nil {
			return nil, fmt.Errorf("get play actors: %w", err)
		}
		playResponses[i] = response.PlayToListResponse(play, genres, actors)
	}

	return response.NewPaginatedResponse(playResponses, req.Page, req.PerPage, total), nil
}

func (s *playService) UpdatePlay(ctx context.Context, playID string, req *request.PlayUpdateRequest) (*response.PlayDetailResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update play validation failed", zap.Any("errors", errs))
		return nil, &entity.ValidationError{Fields: errs}
	}

	id, err := uuid.Parse(playID)
	if err != nil {
		return nil, entity.NewValidationError("id", "Must be a valid UUID")
	}

	play, err := s.repo.Play.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get play: %w", err)
	}
	if play == nil {
		return nil, &entity.NotFoundError{Resource: "play", ID: playID}
	}

	if req.Title != nil {
		play.Title = *req.Title
	}
	if req.Description != nil {
		play.Description = req.Description
	}
	play.UpdatedAt = time.Now()

	if err := s.repo.Play.Update(ctx, play); err != nil {
		return nil, fmt.Errorf("update play: %w", err)
	}

	if req.GenreIDs != nil {
		genreIDs, err := s.resolveGenres(ctx, req.GenreIDs)
		if err != nil {
			return nil, err
		}
		if err := s.repo.Play.ReplaceGenres(ctx, play.ID, genreIDs); err != nil {
			return nil, fmt.Errorf("set play genres: %w", err)
		}
	}

	if req.ActorIDs != nil {
		actorIDs, err := s.resolveActors(ctx, req.ActorIDs)
		if err != nil {
			return nil, err
		}
		if err := s.repo.Play.ReplaceActors(ctx, play.ID, actorIDs); err != nil {
			return nil, fmt.Errorf("set play actors: %w", err)
		}
	}

	s.log.Info("Play updated", zap.String("play_id", playID))

	return s.buildDetailResponse(ctx, play)
}

func (s *playService) DeletePlay(ctx context.Context, playID string) error {
	id, err := uuid.Parse(playID)
	if err != nil {
		return entity.NewValidationError("id", "Must be a valid UUID")
	}

	play, err := s.repo.Play.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get play: %w", err)
	}
	if play == nil {
		return &entity.NotFoundError{Resource: "play", ID: playID}
	}

	if err := s.repo.Play.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete play: %w", err)
	}

	s.log.Info("Play deleted", zap.String("play_id", playID))
	return nil
}

// resolveGenres parses and verifies every referenced genre before any join
// row is written.
func (s *playService) resolveGenres(ctx context.Context, ids []string) ([]uuid.UUID, error) {
	genreIDs := make([]uuid.UUID, 0, len(ids))
	for _, idStr := range ids {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, entity.NewValidationError("genre_ids", "Must be valid UUIDs")
		}
		genre, err := s.repo.Genre.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("check genre: %w", err)
		}
		if genre == nil {
			return nil, &entity.NotFoundError{Resource: "genre", ID: idStr}
		}
		genreIDs = append(genreIDs, id)
	}
	return genreIDs, nil
}

func (s *playService) resolveActors(ctx context.Context, ids []string) ([]uuid.UUID, error) {
	actorIDs := make([]uuid.UUID, 0, len(ids))
	for _, idStr := range ids {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, entity.NewValidationError("actor_ids", "Must be valid UUIDs")
		}
		actor, err := s.repo.Actor.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("check actor: %w", err)
		}
		if actor == nil {
			return nil, &entity.NotFoundError{Resource: "actor", ID: idStr}
		}
		actorIDs = append(actorIDs, id)
	}
	return actorIDs, nil
}

func (s *playService) buildDetailResponse(ctx context.Context, play *entity.Play) (*response.PlayDetailResponse, error) {
	genres, err := s.repo.Genre.FindByPlayID(ctx, play.ID)
	if err != nil {
		return nil, fmt.Errorf("get play genres: %w", err)
	}
	actors, err := s.repo.Actor.FindByPlayID(ctx, play.ID)
	if err != nil {
		return nil, fmt.Errorf("get play actors: %w", err)
	}

	resp := response.PlayToDetailResponse(play, genres, actors)
	return &resp, nil
}
