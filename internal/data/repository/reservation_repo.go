package repository

import (
	"context"
	"errors"
	"fmt"

	"theatre-booking/internal/data/entity"
	"theatre-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// uniqueViolation is the Postgres error code raised when the ticket unique
// index rejects a duplicate (performance, row, seat) insert.
const uniqueViolation = "23505"

type ReservationRepository interface {
	// CreateWithTickets persists the reservation and every ticket in one
	// transaction. If any ticket collides on the unique seat index the
	// whole batch rolls back and a *entity.SeatConflictError identifying
	// the losing triple is returned.
	CreateWithTickets(ctx context.Context, reservation *entity.Reservation, tickets []*entity.Ticket) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Reservation, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type reservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReservationRepository(db database.PgxIface, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation")),
	}
}

func (r *reservationRepository) CreateWithTickets(ctx context.Context, reservation *entity.Reservation, tickets []*entity.Ticket) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin transaction", zap.Error(err))
		return fmt.Errorf("begin reservation transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO reservations (id, user_id, created_at) VALUES ($1, $2, $3)`,
		reservation.ID,
		reservation.UserID,
		reservation.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.String("user_id", reservation.UserID.String()),
		)
		return fmt.Errorf("create reservation for user %s: %w", reservation.UserID.String(), err)
	}

	for _, ticket := range tickets {
		_, err = tx.Exec(ctx,
			`INSERT INTO tickets (id, reservation_id, performance_id, seat_row, seat_number, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			ticket.ID,
			ticket.ReservationID,
			ticket.PerformanceID,
			ticket.SeatRow,
			ticket.SeatNumber,
			ticket.CreatedAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				// The database decided the race; report the losing seat.
				r.log.Warn("Seat conflict on ticket insert",
					zap.String("performance_id", ticket.PerformanceID.String()),
					zap.Int("row", ticket.SeatRow),
					zap.Int("seat", ticket.SeatNumber),
				)
				return &entity.SeatConflictError{
					PerformanceID: ticket.PerformanceID,
					Row:           ticket.SeatRow,
					Seat:          ticket.SeatNumber,
				}
			}
			r.log.Error("Failed to create ticket",
				zap.Error(err),
				zap.String("performance_id", ticket.PerformanceID.String()),
			)
			return fmt.Errorf("create ticket for performance %s: %w", ticket.PerformanceID.String(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit reservation transaction", zap.Error(err))
		return fmt.Errorf("commit reservation transaction: %w", err)
	}

	return nil
}

func (r *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	query := `SELECT id, user_id, created_at FROM reservations WHERE id = $1`

	var reservation entity.Reservation
	err := r.db.QueryRow(ctx, query, id).Scan(
		&reservation.ID,
		&reservation.UserID,
		&reservation.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation by ID",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return nil, fmt.Errorf("find reservation by ID %s: %w", id.String(), err)
	}

	return &reservation, nil
}

func (r *reservationRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Reservation, error) {
	query := `
		SELECT id, user_id, created_at
		FROM reservations
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find reservations by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find reservations by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var reservations []*entity.Reservation
	for rows.Next() {
		var reservation entity.Reservation
		err := rows.Scan(
			&reservation.ID,
			&reservation.UserID,
			&reservation.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan reservation row", zap.Error(err))
			return nil, fmt.Errorf("scan reservation row: %w", err)
		}
		reservations = append(reservations, &reservation)
	}

	return reservations, nil
}

func (r *reservationRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM reservations WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count reservations by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count reservations by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

// Delete removes the reservation; its tickets go with it via ON DELETE CASCADE.
func (r *reservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reservations WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete reservation",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return fmt.Errorf("delete reservation %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s not found", id.String())
	}

	r.log.Info("Reservation deleted", zap.String("reservation_id", id.String()))
	return nil
}
