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

type GenreService interface {
	CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error)
	GetGenreByID(ctx context.Context, genreID string) (*response.GenreResponse, error)
	GetGenres(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.GenreResponse], error)
	UpdateGenre(ctx context.Context, genreID string, req *request.GenreRequest) (*response.GenreResponse, error)
	DeleteGenre(ctx context.Context, genreID string) error
}

type genreService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewGenreService(repo *repository.Repository, log *zap.Logger) GenreService {
	return &genreService{
		repo: repo,
		log:  log.With(zap.String("service", "genre")),
	}
}

func (s *genreService) CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create genre validation failed", zap.Any("errors", errs))
		return nil, &entity.ValidationError{Fields: errs}
	}

	existing, err := s.repo.Genre.FindByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("check genre name: %w", err)
	}
	if existing != nil {
		return nil, entity.NewValidationError("name", "Genre name already exists")
	}

	genre := &entity.Genre{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name: req.Name,
	}

	if err := s.repo.Genre.Create(ctx, genre); err != nil {
		return nil, fmt.Errorf("create genre: %w", err)
	}

	s.log.Info("Genre created",
		zap.String("genre_id", genre.ID.String()),
		zap.String("name", genre.Name))

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) GetGenreByID(ctx context.Context, genreID string) (*response.GenreResponse, error) {
	id, err := uuid.Parse(genreID)
	if err != nil {
		return nil, entity.NewValidationError("id", "Must be a valid UUID")
	}

	genre, err := s.repo.Genre.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get genre: %w", err)
	}
	if genre == nil {
		return nil, &entity.NotFoundError{Resource: "genre", ID: genreID}
	}

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) GetGenres(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.GenreResponse], error) {
	genres, err := s.repo.Genre.FindAll(ctx, req.Offset(), req.Limit())
	if err != nil {
		return nil, fmt.Errorf("get genres: %w", err)
	}

	total, err := s.repo.Genre.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count genres: %w", err)
	}

	genreResponses := make([]response.GenreResponse, len(genres))
	for i, genre := range genres {
		genreResponses[i] = response.GenreToResponse(genre)
	}

	return response.NewPaginatedResponse(genreResponses, req.Page, req.PerPage, total), nil
}

func (s *genreService) UpdateGenre(ctx context.Context, genreID string, req *request.GenreRequest) (*response.GenreResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update genre validation failed", zap.Any("errors", errs))
		return nil, &entity.ValidationError{Fields: errs}
	}

	id, err := uuid.Parse(genreID)
	if err != nil {
		return nil, entity.NewValidationError("id", "Must be a valid UUID")
	}

	genre, err := s.repo.Genre.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get genre: %w", err)
	}
	if genre == nil {
		return nil, &entity.NotFoundError{Resource: "genre", ID: genreID}
	}

	genre.Name = req.Name
	if err := s.repo.Genre.Update(ctx, genre); err != nil {
		return nil, fmt.Errorf("update genre: %w", err)
	}

	s.log.Info("Genre updated", zap.String("genre_id", genreID))

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) DeleteGenre(ctx context.Context, genreID string) error {
	id, err := uuid.Parse(genreID)
	if err != nil {
		return entity.NewValidationError("id", "Must be a valid UUID")
	}

	genre, err := s.repo.Genre.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get genre: %w", err)
	}
	if genre == nil {
		return &entity.NotFoundError{Resource: "genre", ID: genreID}
	}

	if err := s.repo.Genre.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete genre: %w", err)
	}

	s.log.Info("Genre deleted", zap.String("genre_id", genreID))
	return nil
}
