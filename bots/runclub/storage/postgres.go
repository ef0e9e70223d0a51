package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/m3rciful/runclub/core/logger"
)

const (
	insertBooking = `INSERT INTO bookings
	(id, user_id, chat_id, display_name, username, contact, day, slot_id, slot_label, instructor, level, location, confirmed_at)
	VALUES
	(:id, :user_id, :chat_id, :display_name, :username, :contact, :day, :slot_id, :slot_label, :instructor, :level, :location, :confirmed_at)
	ON CONFLICT (id) DO NOTHING`

	selectRecent = `SELECT id, user_id, chat_id, display_name, username, contact, day, slot_id, slot_label, instructor, level, location, confirmed_at
	FROM bookings ORDER BY confirmed_at DESC LIMIT $1`

	maxRecent = 50
)

// Postgres is a Journal backed by the bookings table.
type Postgres struct {
	db *sqlx.DB
}

// NewPostgres wraps an open database handle.
func NewPostgres(db *sqlx.DB) (*Postgres, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	return &Postgres{db: db}, nil
}

// Record inserts e; a repeated id is ignored.
func (p *Postgres) Record(ctx context.Context, e Entry) error {
	start := time.Now()
	res, err := p.db.NamedExecContext(ctx, insertBooking, e)
	if err != nil {
		logger.Error(ctx, "db", "journal.insert",
			slog.String("status", "fail"),
			slog.String("booking_id", e.ID),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("insert booking %s: %w", e.ID, err)
	}
	rows, _ := res.RowsAffected()
	logger.Debug(ctx, "db", "journal.insert",
		slog.String("status", "ok"),
		slog.String("booking_id", e.ID),
		slog.Int64("rows", rows),
		slog.Duration("duration", logger.RoundMS(time.Since(start))),
	)
	return nil
}

// Recent returns up to limit newest entries.
func (p *Postgres) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 || limit > maxRecent {
		limit = maxRecent
	}
	var out []Entry
	if err := p.db.SelectContext(ctx, &out, selectRecent, limit); err != nil {
		return nil, fmt.Errorf("select recent bookings: %w", err)
	}
	return out, nil
}
