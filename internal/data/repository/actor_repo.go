package repository

import (
	"context"
	"fmt"

	"theatre-booking/internal/data/entity"
	"theatre-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ActorRepository interface {
	Create(ctx context.Context, actor *entity.Actor) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Actor, error)
	FindAll(ctx context.Context, offset, limit int) ([]*entity.Actor, error)
	CountAll(ctx context.Context) (int64, error)
	FindByPlayID(ctx context.Context, playID uuid.UUID) ([]*entity.Actor, error)
	Update(ctx context.Context, actor *entity.Actor) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type actorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewActorRepository(db database.PgxIface, log *zap.Logger) ActorRepository {
	return &actorRepository{
		db:  db,
		log: log.With(zap.String("repository", "actor")),
	}
}

func (r *actorRepository) Create(ctx context.Context, actor *entity.Actor) error {
	query := `
		INSERT INTO actors (id, first_name, last_name, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		actor.ID,
		actor.FirstName,
		actor.LastName,
		actor.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create actor",
			zap.Error(err),
			zap.String("name", actor.FullName()),
		)
		return fmt.Errorf("create actor %s: %w", actor.FullName(), err)
	}

	return nil
}

func (r *actorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Actor, error) {
	query := `SELECT id, first_name, last_name, created_at FROM actors WHERE id = $1`

	var actor entity.Actor
	err := r.db.QueryRow(ctx, query, id).Scan(
		&actor.ID,
		&actor.FirstName,
		&actor.LastName,
		&actor.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find actor by ID",
			zap.Error(err),
			zap.String("actor_id", id.String()),
		)
		return nil, fmt.Errorf("find actor by ID %s: %w", id.String(), err)
	}

	return &actor, nil
}

func (r *actorRepository) FindAll(ctx context.Context, offset, limit int) ([]*entity.Actor, error) {
	query := `
		SELECT id, first_name, last_name, created_at
		FROM actors
		ORDER BY last_name, first_name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find all actors", zap.Error(err))
		return nil, fmt.Errorf("find all actors: %w", err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

func (r *actorRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM actors`).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count actors", zap.Error(err))
		return 0, fmt.Errorf("count actors: %w", err)
	}
	return count, nil
}

func (r *actorRepository) FindByPlayID(ctx context.Context, playID uuid.UUID) ([]*entity.Actor, error) {
	query := `
		SELECT a.id, a.first_name, a.last_name, a.created_at
		FROM actors a
		INNER JOIN play_actors pa ON a.id = pa.actor_id
		WHERE pa.play_id = $1
		ORDER BY a.last_name, a.first_name
	`

	rows, err := r.db.Query(ctx, query, playID)
	if err != nil {
		r.log.Error("Failed to find actors by play ID",
			zap.Error(err),
			zap.String("play_id", playID.String()),
		)
		return nil, fmt.Errorf("find actors by play ID %s: %w", playID.String(), err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

func (r *actorRepository) Update(ctx context.Context, actor *entity.Actor) error {
	query := `UPDATE actors SET first_name = $2, last_name = $3 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, actor.ID, actor.FirstName, actor.LastName)
	if err != nil {
		r.log.Error("Failed to update actor",
			zap.Error(err),
			zap.String("actor_id", actor.ID.String()),
		)
		return fmt.Errorf("update actor %s: %w", actor.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("actor %s not found", actor.ID.String())
	}

	return nil
}

func (r *actorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM actors WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete actor",
			zap.Error(err),
			zap.String("actor_id", id.String()),
		)
		return fmt.Errorf("delete actor %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("actor %s not found", id.String())
	}

	return nil
}

func (r *actorRepository) scanRows(rows pgx.Rows) ([]*entity.Actor, error) {
	var actors []*entity.Actor
	for rows.Next() {
		var actor entity.Actor
		err := rows.Scan(
			&actor.ID,
			&actor.FirstName,
			&actor.LastName,
			&actor.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan actor row", zap.Error(err))
			return nil, fmt.Errorf("scan actor row: %w", err)
		}
		actors = append(actors, &actor)
	}

	return actors, nil
}
