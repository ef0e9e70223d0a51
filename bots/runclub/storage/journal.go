// Package storage keeps a journal of confirmed bookings.
package storage

import (
	"context"
	"time"

	"github.com/m3rciful/runclub/bots/runclub/booking"
)

// Entry is one journaled booking.
type Entry struct {
	ID          string    `db:"id"`
	UserID      int64     `db:"user_id"`
	ChatID      int64     `db:"chat_id"`
	DisplayName string    `db:"display_name"`
	Username    string    `db:"username"`
	Contact     string    `db:"contact"`
	Day         string    `db:"day"`
	SlotID      string    `db:"slot_id"`
	SlotLabel   string    `db:"slot_label"`
	Instructor  string    `db:"instructor"`
	Level       string    `db:"level"`
	Location    string    `db:"location"`
	ConfirmedAt time.Time `db:"confirmed_at"`
}

// Journal records confirmed bookings. Record must be idempotent per entry id.
type Journal interface {
	Record(ctx context.Context, e Entry) error
	Recent(ctx context.Context, limit int) ([]Entry, error)
}

// Who identifies the Telegram user behind a booking.
type Who struct {
	UserID      int64
	ChatID      int64
	DisplayName string
	Username    string
}

// EntryFrom flattens a confirmed booking into a journal entry.
func EntryFrom(b booking.Finalized, who Who) Entry {
	return Entry{
		ID:          b.ID,
		UserID:      who.UserID,
		ChatID:      who.ChatID,
		DisplayName: who.DisplayName,
		Username:    who.Username,
		Contact:     b.Contact,
		Day:         b.DayLabel,
		SlotID:      b.Slot.ID,
		SlotLabel:   b.SlotLabel,
		Instructor:  b.Instructor,
		Level:       string(b.Level),
		Location:    b.Location,
		ConfirmedAt: b.ConfirmedAt,
	}
}

// Noop is the journal used when no database is configured.
type Noop struct{}

func (Noop) Record(context.Context, Entry) error { return nil }

func (Noop) Recent(context.Context, int) ([]Entry, error) { return nil, nil }
