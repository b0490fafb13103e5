package entity

import "github.com/google/uuid"

type Play struct {
	Base
	Title       string  `db:"title"`
	Description *string `db:"description"`
}

type PlayGenre struct {
	BaseSimple
	PlayID  uuid.UUID `db:"play_id"`
	GenreID uuid.UUID `db:"genre_id"`
}

type PlayActor struct {
	BaseSimple
	PlayID  uuid.UUID `db:"play_id"`
	ActorID uuid.UUID `db:"actor_id"`
}
