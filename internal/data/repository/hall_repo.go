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

type HallRepository interface {
	Create(ctx context.Context, hall *entity.TheatreHall) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TheatreHall, error)
	FindAll(ctx context.Context, offset, limit int) ([]*entity.TheatreHall, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, hall *entity.TheatreHall) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type hallRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHallRepository(db database.PgxIface, log *zap.Logger) HallRepository {
	return &hallRepository{
		db:  db,
		log: log.With(zap.String("repository", "hall")),
	}
}

func (r *hallRepository) Create(ctx context.Context, hall *entity.TheatreHall) error {
	query := `
		INSERT INTO theatre_halls (id, name, seat_rows, seats_in_row, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		hall.ID,
		hall.Name,
		hall.SeatRows,
		hall.SeatsInRow,
		hall.CreatedAt,
		hall.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create theatre hall",
			zap.Error(err),
			zap.String("name", hall.Name),
		)
		return fmt.Errorf("create theatre hall %s: %w", hall.Name, err)
	}

	return nil
}

func (r *hallRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TheatreHall, error) {
	query := `
		SELECT id, name, seat_rows, seats_in_row, created_at, updated_at
		FROM theatre_halls
		WHERE id = $1
	`

	var hall entity.TheatreHall
	err := r.db.QueryRow(ctx, query, id).Scan(
		&hall.ID,
		&hall.Name,
		&hall.SeatRows,
		&hall.SeatsInRow,
		&hall.CreatedAt,
		&hall.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find theatre hall by ID",
			zap.Error(err),
			zap.String("hall_id", id.String()),
		)
		return nil, fmt.Errorf("find theatre hall by ID %s: %w", id.String(), err)
	}

	return &hall, nil
}

func (r *hallRepository) FindAll(ctx context.Context, offset, limit int) ([]*entity.TheatreHall, error) {
	query := `
		SELECT id, name, seat_rows, seats_in_row, created_at, updated_at
		FROM theatre_halls
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find all theatre halls", zap.Error(err))
		return nil, fmt.Errorf("find all theatre halls: %w", err)
	}
	defer rows.Close()

	var halls []*entity.TheatreHall
	for rows.Next() {
		var hall entity.TheatreHall
		err := rows.Scan(
			&hall.ID,
			&hall.Name,
			&hall.SeatRows,
			&hall.SeatsInRow,
			&hall.CreatedAt,
			&hall.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan theatre hall row", zap.Error(err))
			return nil, fmt.Errorf("scan theatre hall row: %w", err)
		}
		halls = append(halls, &hall)
	}

	return halls, nil
}

func (r *hallRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM theatre_halls`).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count theatre halls", zap.Error(err))
		return 0, fmt.Errorf("count theatre halls: %w", err)
	}
	return count, nil
}

func (r *hallRepository) Update(ctx context.Context, hall *entity.TheatreHall) error {
	query := `
		UPDATE theatre_halls
		SET name = $2, seat_rows = $3, seats_in_row = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		hall.ID,
		hall.Name,
		hall.SeatRows,
		hall.SeatsInRow,
		hall.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update theatre hall",
			zap.Error(err),
			zap.String("hall_id", hall.ID.String()),
		)
		return fmt.Errorf("update theatre hall %s: %w", hall.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("theatre hall %s not found", hall.ID.String())
	}

	return nil
}

func (r *hallRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM theatre_halls WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete theatre hall",
			zap.Error(err),
			zap.String("hall_id", id.String()),
		)
		return fmt.Errorf("delete theatre hall %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("theatre hall %s not found", id.String())
	}

	return nil
}
