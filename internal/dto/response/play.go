package response

import "theatre-booking/internal/data/entity"

// PlayListResponse carries genre and actor names only, matching the
// lightweight list shape.
type PlayListResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	Genres      []string `json:"genres"`
	Actors      []string `json:"actors"`
}

// PlayDetailResponse nests full genre and actor objects.
type PlayDetailResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description *string         `json:"description,omitempty"`
	Genres      []GenreResponse `json:"genres"`
	Actors      []ActorResponse `json:"actors"`
}

func PlayToListResponse(play *entity.Play, genres []*entity.Genre, actors []*entity.Actor) PlayListResponse {
	genreNames := make([]string, len(genres))
	for i, genre := range genres {
		genreNames[i] = genre.Name
	}

	actorNames := make([]string, len(actors))
	for i, actor := range actors {
		actorNames[i] = actor.FullName()
	}

	return PlayListResponse{
		ID:          play.ID.String(),
		Title:       play.Title,
		Description: play.Description,
		Genres:      genreNames,
		Actors:      actorNames,
	}
}

func PlayToDetailResponse(play *entity.Play, genres []*entity.Genre, actors []*entity.Actor) PlayDetailResponse {
	genreResponses := make([]GenreResponse, len(genres))
	for i, genre := range genres {
		genreResponses[i] = GenreToResponse(genre)
	}

	actorResponses := make([]ActorResponse, len(actors))
	for i, actor := range actors {
		actorResponses[i] = ActorToResponse(actor)
	}

	return PlayDetailResponse{
		ID:          play.ID.String(),
		Title:       play.Title,
		Description: play.Description,
		Genres:      genreResponses,
		Actors:      actorResponses,
	}
}
