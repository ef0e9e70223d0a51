package state

import (
	"sync"
	"time"
)

// State identifies a dialogue step.
type State string

// StateIdle indicates there is no active conversation with the user.
const StateIdle State = "idle"

// Session stores the dialogue state and its typed payload for one user.
type Session[T any] struct {
	State   State
	Data    T
	Updated time.Time
}

// Store is an in-memory, per-user session table. T should be a value type:
// Get hands out copies and only Update mutates stored data.
type Store[T any] struct {
	mu       sync.Mutex
	sessions map[int64]*Session[T]
	now      func() time.Time
}

// NewStore constructs an empty session store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{sessions: make(map[int64]*Session[T]), now: time.Now}
}

// Get returns a copy of the user's session or an idle zero session.
func (s *Store[T]) Get(userID int64) Session[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[userID]; ok {
		return *sess
	}
	return Session[T]{State: StateIdle}
}

// Put replaces the user's session.
func (s *Store[T]) Put(userID int64, st State, data T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = &Session[T]{State: st, Data: data, Updated: s.now()}
}

// Update runs fn on the user's session under the store lock and returns the result.
// Returning an error leaves the stored session untouched.
func (s *Store[T]) Update(userID int64, fn func(*Session[T]) error) (Session[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := Session[T]{State: StateIdle}
	if sess, ok := s.sessions[userID]; ok {
		cur = *sess
	}
	next := cur
	if err := fn(&next); err != nil {
		return cur, err
	}
	if next.State == StateIdle {
		delete(s.sessions, userID)
		return next, nil
	}
	next.Updated = s.now()
	s.sessions[userID] = &next
	return next, nil
}

// Clear discards the user's session.
func (s *Store[T]) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// InProgress reports whether the user has a non-idle session.
func (s *Store[T]) InProgress(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	return ok && sess.State != StateIdle
}

// Len returns the number of active sessions.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
