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

// PerformanceFilter narrows performance listings. Date matches the calendar
// day of show_time.
type PerformanceFilter struct {
	Date   *time.Time
	PlayID *uuid.UUID
}

type PerformanceRepository interface {
	Create(ctx context.Context, performance *entity.Performance) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Performance, error)
	FindAll(ctx context.Context, offset, limit int, filter PerformanceFilter) ([]*entity.Performance, error)
	CountAll(ctx context.Context, filter PerformanceFilter) (int64, error)
	Update(ctx context.Context, performance *entity.Performance) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type performanceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPerformanceRepository(db database.PgxIface, log *zap.Logger) PerformanceRepository {
	return &performanceRepository{
		db:  db,
		log: log.With(zap.String("repository", "performance")),
	}
}

func (r *performanceRepository) Create(ctx context.Context, performance *entity.Performance) error {
	query := `
		INSERT INTO performances (id, play_id, hall_id, show_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		performance.ID,
		performance.PlayID,
		performance.HallID,
		performance.ShowTime,
		performance.CreatedAt,
		performance.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create performance",
			zap.Error(err),
			zap.String("play_id", performance.PlayID.String()),
			zap.Time("show_time", performance.ShowTime),
		)
		return fmt.Errorf("create performance for play %s: %w", performance.PlayID.String(), err)
	}

	return nil
}

func (r *performanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Performance, error) {
	query := `
		SELECT id, play_id, hall_id, show_time, created_at, updated_at
		FROM performances
		WHERE id = $1
	`

	var performance entity.Performance
	err := r.db.QueryRow(ctx, query, id).Scan(
		&performance.ID,
		&performance.PlayID,
		&performance.HallID,
		&performance.ShowTime,
		&performance.CreatedAt,
		&performance.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find performance by ID",
			zap.Error(err),
			zap.String("performance_id", id.String()),
		)
		return nil, fmt.Errorf("find performance by ID %s: %w", id.String(), err)
	}

	return &performance, nil
}

func buildPerformanceFilter(filter PerformanceFilter, args []interface{}) (string, []interface{}) {
	var conditions []string
	argCount := len(args) + 1

	if filter.Date != nil {
		conditions = append(conditions, fmt.Sprintf("show_time::date = $%d::date", argCount))
		args = append(args, *filter.Date)
		argCount++
	}

	if filter.PlayID != nil {
		conditions = append(conditions, fmt.Sprintf("play_id = $%d", argCount))
		args = append(args, *filter.PlayID)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func (r *performanceRepository) FindAll(ctx context.Context, offset, limit int, filter PerformanceFilter) ([]*entity.Performance, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, play_id, hall_id, show_time, created_at, updated_at
		FROM performances
	`)

	args := []interface{}{}
	where, args := buildPerformanceFilter(filter, args)
	queryBuilder.WriteString(where)

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY show_time LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find performances",
			zap.Error(err),
			zap.Int("offset", offset),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("find performances: %w", err)
	}
	defer rows.Close()

	var performances []*entity.Performance
	for rows.Next() {
		var performance entity.Performance
		err := rows.Scan(
			&performance.ID,
			&performance.PlayID,
			&performance.HallID,
			&performance.ShowTime,
			&performance.CreatedAt,
			&performance.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan performance row", zap.Error(err))
			return nil, fmt.Errorf("scan performance row: %w", err)
		}
		performances = append(performances, &performance)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate performance rows: %w", err)
	}

	return performances, nil
}

func (r *performanceRepository) CountAll(ctx context.Context, filter PerformanceFilter) (int64, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT COUNT(*) FROM performances`)

	args := []interface{}{}
	where, args := buildPerformanceFilter(filter, args)
	queryBuilder.WriteString(where)

	var count int64
	err := r.db.QueryRow(ctx, queryBuilder.String(), args...).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count performances", zap.Error(err))
		return 0, fmt.Errorf("count performances: %w", err)
	}

	return count, nil
}

func (r *performanceRepository) Update(ctx context.Context, performance *entity.Performance) error {
	query := `
		UPDATE performances
		SET play_id = $2, hall_id = $3, show_time = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		performance.ID,
		performance.PlayID,
		performance.HallID,
		performance.ShowTime,
		performance.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update performance",
			zap.Error(err),
			zap.String("performance_id", performance.ID.String()),
		)
		return fmt.Errorf("update performance %s: %w", performance.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("performance %s not found", performance.ID.String())
	}

	return nil
}

func (r *performanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM performances WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete performance",
			zap.Error(err),
			zap.String("performance_id", id.String()),
		)
		return fmt.Errorf("delete performance %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("performance %s not found", id.String())
	}

	return nil
}
