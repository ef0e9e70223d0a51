package state

import (
	"errors"
	"sync"
	"testing"

	"github.com/m3rciful/runclub/core/telegram/teletest"

	tele "gopkg.in/telebot.v4"
)

type draft struct{ Day string }

func TestStoreUpdateIsolatesUsers(t *testing.T) {
	s := NewStore[draft]()
	if _, err := s.Update(1, func(sess *Session[draft]) error {
		sess.State = "day"
		sess.Data.Day = "wed"
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	if got := s.Get(2); got.State != StateIdle || got.Data.Day != "" {
		t.Fatalf("user 2 sees foreign session: %+v", got)
	}
	if got := s.Get(1); got.Data.Day != "wed" || !s.InProgress(1) {
		t.Fatalf("user 1 session = %+v", got)
	}
}

func TestStoreUpdateErrorKeepsSession(t *testing.T) {
	s := NewStore[draft]()
	s.Put(1, "slot", draft{Day: "mon"})
	boom := errors.New("boom")
	_, err := s.Update(1, func(sess *Session[draft]) error {
		sess.Data.Day = "fri"
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
	if got := s.Get(1).Data.Day; got != "mon" {
		t.Fatalf("failed update leaked: %q", got)
	}
}

func TestStoreIdleDeletes(t *testing.T) {
	s := NewStore[draft]()
	s.Put(1, "slot", draft{Day: "mon"})
	_, _ = s.Update(1, func(sess *Session[draft]) error {
		sess.State = StateIdle
		return nil
	})
	if s.Len() != 0 || s.InProgress(1) {
		t.Fatal("idle session must be dropped")
	}
}

func TestStoreConcurrentUsers(t *testing.T) {
	s := NewStore[draft]()
	var wg sync.WaitGroup
	for i := int64(1); i <= 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			s.Put(id, "day", draft{})
			s.Clear(id)
		}(i)
	}
	wg.Wait()
	if s.Len() != 0 {
		t.Fatalf("Len = %d", s.Len())
	}
}

func TestManagerDispatchesByState(t *testing.T) {
	s := NewStore[draft]()
	m := NewManager(s)
	var hit, fell int
	m.Handle("contact", func(tele.Context) error { hit++; return nil })
	m.Otherwise(func(tele.Context) error { fell++; return nil })

	user := teletest.User(5, "Ivan", "", "")
	s.Put(5, "contact", draft{})
	_ = m.ManagerHandler(teletest.NewMessage(user, "Ivan, +375"))
	s.Put(5, "level", draft{})
	_ = m.ManagerHandler(teletest.NewMessage(user, "hello"))
	if hit != 1 || fell != 1 {
		t.Fatalf("hit=%d fell=%d", hit, fell)
	}
}
