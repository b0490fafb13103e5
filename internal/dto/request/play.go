package request

type PlayRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=255"`
	Description *string  `json:"description,omitempty"`
	GenreIDs    []string `json:"genre_ids,omitempty" validate:"dive,uuid4"`
	ActorIDs    []string `json:"actor_ids,omitempty" validate:"dive,uuid4"`
}

type PlayUpdateRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string  `json:"description,omitempty"`
	GenreIDs    []string `json:"genre_ids,omitempty" validate:"dive,uuid4"`
	ActorIDs    []string `json:"actor_ids,omitempty" validate:"dive,uuid4"`
}
