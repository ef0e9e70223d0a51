package state

import (
	"log/slog"

	"github.com/m3rciful/runclub/core/logger"
	tghelpers "github.com/m3rciful/runclub/core/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

// Manager routes free text of users with an active session to the handler
// registered for their current state.
type Manager[T any] struct {
	store    *Store[T]
	handlers map[State]tele.HandlerFunc
	fallback tele.HandlerFunc
}

// NewManager binds a manager to a session store.
func NewManager[T any](store *Store[T]) *Manager[T] {
	return &Manager[T]{store: store, handlers: make(map[State]tele.HandlerFunc)}
}

// Handle associates a state with its text handler.
func (m *Manager[T]) Handle(st State, h tele.HandlerFunc) {
	if h != nil {
		m.handlers[st] = h
	}
}

// Otherwise sets the handler used for states that expect no free text.
func (m *Manager[T]) Otherwise(h tele.HandlerFunc) {
	m.fallback = h
}

// Store exposes the underlying session store.
func (m *Manager[T]) Store() *Store[T] {
	return m.store
}

// InProgress reports whether the user currently has an active dialogue.
func (m *Manager[T]) InProgress(userID int64) bool {
	return m.store.InProgress(userID)
}

// ManagerHandler executes the handler registered for the user's current state.
func (m *Manager[T]) ManagerHandler(c tele.Context) error {
	userID := tghelpers.SenderID(c)
	current := m.store.Get(userID).State
	ctx := tghelpers.BuildContext(c)

	h, ok := m.handlers[current]
	logger.Debug(ctx, "tg", "fsm.manager",
		slog.String("status", "ok"),
		slog.String("stage", string(current)),
		slog.Bool("matched", ok),
	)
	if ok {
		return h(c)
	}
	if m.fallback != nil {
		return m.fallback(c)
	}
	return nil
}
