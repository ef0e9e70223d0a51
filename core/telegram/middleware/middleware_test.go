package middleware

import (
	"testing"
	"time"

	"github.com/m3rciful/runclub/core/telegram/teletest"

	tele "gopkg.in/telebot.v4"
)

func okHandler(calls *int) tele.HandlerFunc {
	return func(tele.Context) error {
		*calls++
		return nil
	}
}

func TestRateLimitTokenBucket(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	limited := 0
	mw := RateLimitMiddleware(RateLimitOptions{
		Interval:  time.Second,
		Burst:     2,
		OnLimited: func(tele.Context) error { limited++; return nil },
		now:       func() time.Time { return now },
	})
	calls := 0
	h := mw(okHandler(&calls))
	user := teletest.User(7, "Ivan", "", "")

	for i := 0; i < 3; i++ {
		if err := h(teletest.NewMessage(user, "hi")); err != nil {
			t.Fatal(err)
		}
	}
	if calls != 2 || limited != 1 {
		t.Fatalf("calls=%d limited=%d, want 2/1", calls, limited)
	}

	now = now.Add(time.Second)
	_ = h(teletest.NewMessage(user, "again"))
	if calls != 3 {
		t.Fatalf("token not refilled after interval: calls=%d", calls)
	}

	other := teletest.User(8, "Olga", "", "")
	_ = h(teletest.NewMessage(other, "hi"))
	if calls != 4 {
		t.Fatalf("users must not share buckets: calls=%d", calls)
	}
}

func TestRateLimitExclusions(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	mw := RateLimitMiddleware(RateLimitOptions{
		Interval: time.Hour,
		Exclude:  map[string]struct{}{"callback": {}},
		now:      func() time.Time { return now },
	})
	calls := 0
	h := mw(okHandler(&calls))
	user := teletest.User(7, "Ivan", "", "")
	for i := 0; i < 5; i++ {
		_ = h(teletest.NewCallback(user, "menu", "main"))
	}
	if calls != 5 {
		t.Fatalf("excluded callbacks were limited: calls=%d", calls)
	}
}

func TestAdminOnlyMiddleware(t *testing.T) {
	rejected := 0
	mw := AdminOnlyMiddleware(AdminOptions{
		AdminID:  1,
		OnReject: func(tele.Context) error { rejected++; return nil },
	})
	calls := 0
	h := mw(okHandler(&calls))

	_ = h(teletest.NewMessage(teletest.User(1, "Admin", "", ""), "/bookings"))
	_ = h(teletest.NewMessage(teletest.User(2, "Guest", "", ""), "/bookings"))
	if calls != 1 || rejected != 1 {
		t.Fatalf("calls=%d rejected=%d", calls, rejected)
	}

	calls = 0
	open := AdminOnlyMiddleware(AdminOptions{})(okHandler(&calls))
	_ = open(teletest.NewMessage(teletest.User(1, "Admin", "", ""), "/bookings"))
	if calls != 0 {
		t.Fatal("without a configured admin nobody passes")
	}
}

func TestRecoverMiddlewareReturnsError(t *testing.T) {
	h := RecoverMiddleware(func(tele.Context) error { panic("boom") })
	if err := h(teletest.NewMessage(teletest.User(1, "A", "", ""), "x")); err == nil {
		t.Fatal("expected error from recovered panic")
	}
}

func TestMessageCounters(t *testing.T) {
	c := teletest.NewMessage(teletest.User(1, "A", "", ""), "x")
	h := MessageCountersMiddleware(func(c tele.Context) error {
		_ = c.Send("one")
		return c.Send("two", &tele.SendOptions{ReplyMarkup: &tele.ReplyMarkup{}})
	})
	if err := h(c); err != nil {
		t.Fatal(err)
	}
	msgs, kb := GetCounters(c)
	if msgs != 2 || !kb {
		t.Fatalf("msgs=%d kb=%v", msgs, kb)
	}
}
