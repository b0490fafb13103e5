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

func newPlayFixture() (*MockPlayRepository, *MockGenreRepository, *MockActorRepository, PlayService) {
	playRepo := new(MockPlayRepository)
	genreRepo := new(MockGenreRepository)
	actorRepo := new(MockActorRepository)

	repo := &repository.Repository{
		Play:  playRepo,
		Genre: genreRepo,
		Actor: actorRepo,
	}

	service := NewPlayService(repo, zap.NewNop())
	return playRepo, genreRepo, actorRepo, service
}

func TestCreatePlay_ResolvesGenresAndActors(t *testing.T) {
	playRepo, genreRepo, actorRepo, service := newPlayFixture()

	genre := &entity.Genre{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Name:       "Drama",
	}
	actor := &entity.Actor{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		FirstName:  "Maggie",
		LastName:   "Smith",
	}

	genreRepo.On("FindByID", mock.Anything, genre.ID).Return(genre, nil)
	actorRepo.On("FindByID", mock.Anything, actor.ID).Return(actor, nil)
	playRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	playRepo.On("ReplaceGenres", mock.Anything, mock.Anything, []uuid.UUID{genre.ID}).Return(nil)
	playRepo.On("ReplaceActors", mock.Anything, mock.Anything, []uuid.UUID{actor.ID}).Return(nil)
	genreRepo.On("FindByPlayID", mock.Anything, mock.Anything).Return([]*entity.Genre{genre}, nil)
	actorRepo.On("FindByPlayID", mock.Anything, mock.Anything).Return([]*entity.Actor{actor}, nil)

	req := &request.PlayRequest{
		Title:    "Hamlet",
		GenreIDs: []string{genre.ID.String()},
		ActorIDs: []string{actor.ID.String()},
	}

	resp, err := service.CreatePlay(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "Hamlet", resp.Title)
	require.Len(t, resp.Genres, 1)
	assert.Equal(t, "Drama", resp.Genres[0].Name)
	require.Len(t, resp.Actors, 1)
	playRepo.AssertExpectations(t)
}

func TestCreatePlay_UnknownGenre(t *testing.T) {
	playRepo, genreRepo, _, service := newPlayFixture()

	missingID := uuid.New()
	genreRepo.On("FindByID", mock.Anything, missingID).Return(nil, nil)

	req := &request.PlayRequest{
		Title:    "Hamlet",
		GenreIDs: []string{missingID.String()},
	}

	resp, err := service.CreatePlay(context.Background(), req)

	require.Error(t, err)
	assert.Nil(t, resp)

	var notFoundErr *entity.NotFoundError
	require.True(t, errors.As(err, &notFoundErr))
	assert.Equal(t, "genre", notFoundErr.Resource)
	playRepo.AssertNotCalled(t, "Create")
}

func TestGetPlays_PassesFilterThrough(t *testing.T) {
	playRepo, genreRepo, actorRepo, service := newPlayFixture()

	genreID := uuid.New()
	play := &entity.Play{
		Base:  entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Title: "The Cherry Orchard",
	}

	expectedFilter := repository.PlayFilter{
		Title:    "cherry",
		GenreIDs: []uuid.UUID{genreID},
	}

	playRepo.On("FindAll", mock.Anything, 0, 10, expectedFilter).
		Return([]*entity.Play{play}, nil)
	playRepo.On("CountAll", mock.Anything, expectedFilter).Return(int64(1), nil)
	genreRepo.On("FindByPlayID", mock.Anything, play.ID).Return([]*entity.Genre{}, nil)
	actorRepo.On("FindByPlayID", mock.Anything, play.ID).Return([]*entity.Actor{}, nil)

	req := &request.PaginatedRequest{Page: 1, PerPage: 10}
	params := PlayListParams{Title: "cherry", GenreIDs: []uuid.UUID{genreID}}

	resp, err := service.GetPlays(context.Background(), req, params)

	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "The Cherry Orchard", resp.Data[0].Title)
	playRepo.AssertExpectations(t)
}

func TestUpdatePlay_PartialUpdateKeepsRelations(t *testing.T) {
	playRepo, genreRepo, actorRepo, service := newPlayFixture()

	play := &entity.Play{
		Base:  entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Title: "Old Title",
	}
	newTitle := "New Title"

	playRepo.On("FindByID", mock.Anything, play.ID).Return(play, nil)
	playRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *entity.Play) bool {
		return p.Title == newTitle
	})).Return(nil)
	genreRepo.On("FindByPlayID", mock.Anything, play.ID).Return([]*entity.Genre{}, nil)
	actorRepo.On("FindByPlayID", mock.Anything, play.ID).Return([]*entity.Actor{}, nil)

	req := &request.PlayUpdateRequest{Title: &newTitle}

	resp, err := service.UpdatePlay(context.Background(), play.ID.String(), req)

	require.NoError(t, err)
	assert.Equal(t, newTitle, resp.Title)

	// Genre/actor lists stay untouched when the request omits them.
	playRepo.AssertNotCalled(t, "ReplaceGenres")
	playRepo.AssertNotCalled(t, "ReplaceActors")
}

func TestDeletePlay_NotFound(t *testing.T) {
	playRepo, _, _, service := newPlayFixture()

	missingID := uuid.New()
	playRepo.On("FindByID", mock.Anything, missingID).Return(nil, nil)

	err := service.DeletePlay(context.Background(), missingID.String())

	var notFoundErr *entity.NotFoundError
	require.True(t, errors.As(err, &notFoundErr))
	playRepo.AssertNotCalled(t, "Delete")
}
