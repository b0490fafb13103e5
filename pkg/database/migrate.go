package database

import (
	"context"
	"fmt"
)

// Schema statements are idempotent so they can run on every startup.
// The unique index on tickets is the authority for the no-double-booking
// invariant: a concurrent conflicting insert is rejected by the database,
// not by an application-level pre-check.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		username VARCHAR(255) NOT NULL UNIQUE,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(20) NOT NULL DEFAULT 'customer',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS genres (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL UNIQUE CHECK (name <> ''),
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS actors (
		id UUID PRIMARY KEY,
		first_name VARCHAR(255) NOT NULL,
		last_name VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS plays (
		id UUID PRIMARY KEY,
		title VARCHAR(255) NOT NULL CHECK (title <> ''),
		description TEXT,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS play_genres (
		id UUID PRIMARY KEY,
		play_id UUID NOT NULL REFERENCES plays(id) ON DELETE CASCADE,
		genre_id UUID NOT NULL REFERENCES genres(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL,
		UNIQUE (play_id, genre_id)
	)`,
	`CREATE TABLE IF NOT EXISTS play_actors (
		id UUID PRIMARY KEY,
		play_id UUID NOT NULL REFERENCES plays(id) ON DELETE CASCADE,
		actor_id UUID NOT NULL REFERENCES actors(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL,
		UNIQUE (play_id, actor_id)
	)`,
	`CREATE TABLE IF NOT EXISTS theatre_halls (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		seat_rows INT NOT NULL CHECK (seat_rows > 0),
		seats_in_row INT NOT NULL CHECK (seats_in_row > 0),
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS performances (
		id UUID PRIMARY KEY,
		play_id UUID NOT NULL REFERENCES plays(id) ON DELETE CASCADE,
		hall_id UUID NOT NULL REFERENCES theatre_halls(id) ON DELETE CASCADE,
		show_time TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS reservations (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS tickets (
		id UUID PRIMARY KEY,
		reservation_id UUID NOT NULL REFERENCES reservations(id) ON DELETE CASCADE,
		performance_id UUID NOT NULL REFERENCES performances(id) ON DELETE CASCADE,
		seat_row INT NOT NULL CHECK (seat_row > 0),
		seat_number INT NOT NULL CHECK (seat_number > 0),
		created_at TIMESTAMPTZ NOT NULL,
		CONSTRAINT tickets_performance_seat_key UNIQUE (performance_id, seat_row, seat_number)
	)`,
}

// Migrate creates the schema.
func Migrate(ctx context.Context, db PgxIface) error {
	for _, stmt := range migrations {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("run migration: %w", err)
		}
	}
	return nil
}
