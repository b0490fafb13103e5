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

type TicketRepository interface {
	FindByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*entity.Ticket, error)
	FindByPerformanceID(ctx context.Context, performanceID uuid.UUID) ([]*entity.Ticket, error)
	CountByPerformanceID(ctx context.Context, performanceID uuid.UUID) (int64, error)
}

type ticketRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketRepository(db database.PgxIface, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

func (r *ticketRepository) FindByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*entity.Ticket, error) {
	query := `
		SELECT id, reservation_id, performance_id, seat_row, seat_number, created_at
		FROM tickets
		WHERE reservation_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, reservationID)
	if err != nil {
		r.log.Error("Failed to find tickets by reservation ID",
			zap.Error(err),
			zap.String("reservation_id", reservationID.String()),
		)
		return nil, fmt.Errorf("find tickets by reservation ID %s: %w", reservationID.String(), err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

func (r *ticketRepository) FindByPerformanceID(ctx context.Context, performanceID uuid.UUID) ([]*entity.Ticket, error) {
	query := `
		SELECT id, reservation_id, performance_id, seat_row, seat_number, created_at
		FROM tickets
		WHERE performance_id = $1
		ORDER BY seat_row, seat_number
	`

	rows, err := r.db.Query(ctx, query, performanceID)
	if err != nil {
		r.log.Error("Failed to find tickets by performance ID",
			zap.Error(err),
			zap.String("performance_id", performanceID.String()),
		)
		return nil, fmt.Errorf("find tickets by performance ID %s: %w", performanceID.String(), err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

func (r *ticketRepository) CountByPerformanceID(ctx context.Context, performanceID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM tickets WHERE performance_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, performanceID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count tickets by performance ID",
			zap.Error(err),
			zap.String("performance_id", performanceID.String()),
		)
		return 0, fmt.Errorf("count tickets by performance ID %s: %w", performanceID.String(), err)
	}

	return count, nil
}

func (r *ticketRepository) scanRows(rows pgx.Rows) ([]*entity.Ticket, error) {
	var tickets []*entity.Ticket
	for rows.Next() {
		var ticket entity.Ticket
		err := rows.Scan(
			&ticket.ID,
			&ticket.ReservationID,
			&ticket.PerformanceID,
			&ticket.SeatRow,
			&ticket.SeatNumber,
			&ticket.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan ticket row", zap.Error(err))
			return nil, fmt.Errorf("scan ticket row: %w", err)
		}
		tickets = append(tickets, &ticket)
	}

	return tickets, nil
}
