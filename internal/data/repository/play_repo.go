package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"theatre-booking/internal/data/entity"
	"theatre-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// PlayFilter narrows play listings. Zero values mean no filtering.
type PlayFilter struct {
	Title    string
	GenreIDs []uuid.UUID
	ActorIDs []uuid.UUID
}

type PlayRepository interface {
	Create(ctx context.Context, play *entity.Play) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Play, error)
	FindAll(ctx context.Context, offset, limit int, filter PlayFilter) ([]*entity.Play, error)
	CountAll(ctx context.Context, filter PlayFilter) (int64, error)
	Update(ctx context.Context, play *entity.Play) error
	Delete(ctx context.Context, id uuid.UUID) error

	ReplaceGenres(ctx context.Context, playID uuid.UUID, genreIDs []uuid.UUID) error
	ReplaceActors(ctx context.Context, playID uuid.UUID, actorIDs []uuid.UUID) error
}

type playRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPlayRepository(db database.PgxIface, log *zap.Logger) PlayRepository {
	return &playRepository{
		db:  db,
		log: log.With(zap.String("repository", "play")),
	}
}

func (r *playRepository) Create(ctx context.Context, play *entity.Play) error {
	query := `
		INSERT INTO plays (id, title, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		play.ID,
		play.Title,
		play.Description,
		play.CreatedAt,
		play.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create play",
			zap.Error(err),
			zap.String("title", play.Title),
		)
		return fmt.Errorf("create play %s: %w", play.Title, err)
	}

	return nil
}

func (r *playRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Play, error) {
	query := `
		SELECT id, title, description, created_at, updated_at
		FROM plays
		WHERE id = $1
	`

	var play entity.Play
	err := r.db.QueryRow(ctx, query, id).Scan(
		&play.ID,
		&play.Title,
		&play.Description,
		&play.CreatedAt,
		&play.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find play by ID",
			zap.Error(err),
			zap.String("play_id", id.String()),
		)
		return nil, fmt.Errorf("find play by ID %s: %w", id.String(), err)
	}

	return &play, nil
}

// buildFilter appends WHERE conditions for the optional title substring and
// genre/actor id-set filters. DISTINCT on the select keeps plays unique when
// the join filters match multiple rows.
func buildPlayFilter(filter PlayFilter, args []interface{}) (string, []interface{}) {
	var conditions []string
	argCount := len(args) + 1

	if filter.Title != "" {
		conditions = append(conditions, fmt.Sprintf("p.title ILIKE $%d", argCount))
		args = append(args, "%"+filter.Title+"%")
		argCount++
	}

	if len(filter.GenreIDs) > 0 {
		conditions = append(conditions, fmt.Sprintf(
			"p.id IN (SELECT play_id FROM play_genres WHERE genre_id = ANY($%d))", argCount))
		args = append(args, filter.GenreIDs)
		argCount++
	}

	if len(filter.ActorIDs) > 0 {
		conditions = append(conditions, fmt.Sprintf(
			"p.id IN (SELECT play_id FROM play_actors WHERE actor_id = ANY($%d))", argCount))
		args = append(args, filter.ActorIDs)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func (r *playRepository) FindAll(ctx context.Context, offset, limit int, filter PlayFilter) ([]*entity.Play, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT DISTINCT p.id, p.title, p.description, p.created_at, p.updated_at
		FROM plays p
	`)

	args := []interface{}{}
	where, args := buildPlayFilter(filter, args)
	queryBuilder.WriteString(where)

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY p.title LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find plays",
			zap.Error(err),
			zap.String("title_filter", filter.Title),
			zap.Int("offset", offset),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("find plays: %w", err)
	}
	defer rows.Close()

	var plays []*entity.Play
	for rows.Next() {
		var play entity.Play
		err := rows.Scan(
			&play.ID,
			&play.Title,
			&play.Description,
			&play.CreatedAt,
			&play.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan play row", zap.Error(err))
			return nil, fmt.Errorf("scan play row: %w", err)
		}
		plays = append(plays, &play)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate play rows: %w", err)
	}

	return plays, nil
}

func (r *playRepository) CountAll(ctx context.Context, filter PlayFilter) (int64, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT COUNT(DISTINCT p.id) FROM plays p`)

	args := []interface{}{}
	where, args := buildPlayFilter(filter, args)
	queryBuilder.WriteString(where)

	var count int64
	err := r.db.QueryRow(ctx, queryBuilder.String(), args...).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count plays", zap.Error(err))
		return 0, fmt.Errorf("count plays: %w", err)
	}

	return count, nil
}

func (r *playRepository) Update(ctx context.Context, play *entity.Play) error {
	query := `
		UPDATE plays
		SET title = $2, description = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		play.ID,
		play.Title,
		play.Description,
		play.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update play",
			zap.Error(err),
			zap.String("play_id", play.ID.String()),
		)
		return fmt.Errorf("update play %s: %w", play.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("play %s not found", play.ID.String())
	}

	return nil
}

func (r *playRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM plays WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete play",
			zap.Error(err),
			zap.String("play_id", id.String()),
		)
		return fmt.Errorf("delete play %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("play %s not found", id.String())
	}

	return nil
}

func (r *playRepository) ReplaceGenres(ctx context.Context, playID uuid.UUID, genreIDs []uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM play_genres WHERE play_id = $1`, playID); err != nil {
		r.log.Error("Failed to clear play genres",
			zap.Error(err),
			zap.String("play_id", playID.String()),
		)
		return fmt.Errorf("clear genres for play %s: %w", playID.String(), err)
	}

	for _, genreID := range genreIDs {
		_, err := r.db.Exec(ctx,
			`INSERT INTO play_genres (id, play_id, genre_id, created_at) VALUES ($1, $2, $3, $4)`,
			uuid.New(), playID, genreID, time.Now(),
		)
		if err != nil {
			r.log.Error("Failed to link genre to play",
				zap.Error(err),
				zap.String("play_id", playID.String()),
				zap.String("genre_id", genreID.String()),
			)
			return fmt.Errorf("link genre %s to play %s: %w", genreID.String(), playID.String(), err)
		}
	}

	return nil
}

func (r *playRepository) ReplaceActors(ctx context.Context, playID uuid.UUID, actorIDs []uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM play_actors WHERE play_id = $1`, playID); err != nil {
		r.log.Error("Failed to clear play actors",
			zap.Error(err),
			zap.String("play_id", playID.String()),
		)
		return fmt.Errorf("clear actors for play %s: %w", playID.String(), err)
	}

	for _, actorID := range actorIDs {
		_, err := r.db.Exec(ctx,
			`INSERT INTO play_actors (id, play_id, actor_id, created_at) VALUES ($1, $2, $3, $4)`,
			uuid.New(), playID, actorID, time.Now(),
		)
		if err != nil {
			r.log.Error("Failed to link actor to play",
				zap.Error(err),
				zap.String("play_id", playID.String()),
				zap.String("actor_id", actorID.String()),
			)
			return fmt.Errorf("link actor %s to play %s: %w", actorID.String(), playID.String(), err)
		}
	}

	return nil
}
