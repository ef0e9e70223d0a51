package notify

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/m3rciful/runclub/bots/runclub/booking"
	"github.com/m3rciful/runclub/bots/runclub/catalog"
	"github.com/m3rciful/runclub/bots/runclub/confirm"
	"github.com/m3rciful/runclub/bots/runclub/storage"
	"github.com/m3rciful/runclub/core/telegram/sender"
	"github.com/m3rciful/runclub/core/telegram/teletest"

	tele "gopkg.in/telebot.v4"
)

type memJournal struct {
	mu      sync.Mutex
	entries []storage.Entry
}

func (j *memJournal) Record(_ context.Context, e storage.Entry) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, e)
	return nil
}

func (j *memJournal) Recent(context.Context, int) ([]storage.Entry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]storage.Entry(nil), j.entries...), nil
}

func fixture(t *testing.T) (*booking.Machine, *confirm.Formatter, booking.Finalized) {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatal(err)
	}
	m, err := booking.NewMachine(cat, booking.Options{NewID: func() string { return "b-1" }})
	if err != nil {
		t.Fatal(err)
	}
	fin, err := m.Finalize(booking.Draft{Day: "fri", Slot: "fri_gym", Level: booking.LevelBeginner, Contact: "+375 29"})
	if err != nil {
		t.Fatal(err)
	}
	return m, confirm.New(m, confirm.Options{}), fin
}

var who = storage.Who{UserID: 42, ChatID: 42, DisplayName: "Anna <A>", Username: "anna"}

func TestBookingConfirmedNotifiesOperatorAndJournal(t *testing.T) {
	_, f, fin := fixture(t)
	bot := teletest.NewBot()
	q := sender.NewDispatcher(sender.Options{Workers: 1})
	j := &memJournal{}
	n := New(Deps{Sender: bot, Queue: q, Journal: j, Formatter: f}, Options{OperatorChatID: 900})

	n.BookingConfirmed(context.Background(), fin, who)
	q.Close()

	out := bot.Messages()
	if len(out) != 1 {
		t.Fatalf("operator messages = %d", len(out))
	}
	if out[0].To.Recipient() != "900" {
		t.Fatalf("sent to %s", out[0].To.Recipient())
	}
	if !strings.Contains(out[0].Text, "👤 Имя: Anna <A>") || !strings.Contains(out[0].Text, "Силовая (зал)") {
		t.Fatalf("operator text = %q", out[0].Text)
	}
	entries, _ := j.Recent(context.Background(), 10)
	if len(entries) != 1 || entries[0].ID != "b-1" || entries[0].UserID != 42 {
		t.Fatalf("journal = %+v", entries)
	}
}

func TestUnconfiguredNotifierIsSilent(t *testing.T) {
	_, f, fin := fixture(t)
	bot := teletest.NewBot()
	q := sender.NewDispatcher(sender.Options{Workers: 1})
	n := New(Deps{Sender: bot, Queue: q, Formatter: f}, Options{})

	n.BookingConfirmed(context.Background(), fin, who)
	n.ForwardQuestion(context.Background(), who, "когда старт?")
	n.MirrorMessage(context.Background(), who, "привет")
	q.Close()

	if n.HasOperator() {
		t.Fatal("operator should be disabled")
	}
	if got := len(bot.Messages()); got != 0 {
		t.Fatalf("unexpected sends: %d", got)
	}
	if q.SentCount() != 0 {
		t.Fatalf("queue ran %d jobs", q.SentCount())
	}
}

func TestSendFailureStaysInternal(t *testing.T) {
	_, f, fin := fixture(t)
	bot := teletest.NewBot()
	bot.Err = teletest.ErrSend
	q := sender.NewDispatcher(sender.Options{Workers: 1, MaxRetries: 0})
	n := New(Deps{Sender: bot, Queue: q, Formatter: f}, Options{OperatorChatID: 1})

	done := make(chan struct{})
	go func() {
		n.BookingConfirmed(context.Background(), fin, who)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("BookingConfirmed blocked on delivery")
	}
	q.Close()
	if q.ErrorCount() != 1 {
		t.Fatalf("errors = %d", q.ErrorCount())
	}
}

func TestForwardQuestionEscapesHTML(t *testing.T) {
	bot := teletest.NewBot()
	q := sender.NewDispatcher(sender.Options{Workers: 1})
	n := New(Deps{Sender: bot, Queue: q}, Options{OperatorChatID: 5})

	n.ForwardQuestion(context.Background(), who, "  <i>где</i> старт?  ")
	q.Close()

	out := bot.Messages()
	if len(out) != 1 {
		t.Fatalf("messages = %d", len(out))
	}
	want := "📩 <b>Вопрос от пользователя:</b>\nИмя: Anna &lt;A&gt;\nUsername: @anna\nchat_id: 42\n\nТекст: &lt;i&gt;где&lt;/i&gt; старт?"
	if out[0].Text != want {
		t.Fatalf("text = %q", out[0].Text)
	}
	opts, ok := out[0].Opts[0].(*tele.SendOptions)
	if !ok || opts.ParseMode != tele.ModeHTML {
		t.Fatalf("opts = %+v", out[0].Opts)
	}
}

func TestMirrorNeedsFlag(t *testing.T) {
	bot := teletest.NewBot()
	q := sender.NewDispatcher(sender.Options{Workers: 1})
	off := New(Deps{Sender: bot, Queue: q}, Options{OperatorChatID: 5})
	on := New(Deps{Sender: bot, Queue: q}, Options{OperatorChatID: 5, MirrorMessages: true})

	off.MirrorMessage(context.Background(), storage.Who{UserID: 1}, "hi")
	on.MirrorMessage(context.Background(), storage.Who{UserID: 1}, "hi")
	on.MirrorMessage(context.Background(), storage.Who{UserID: 1}, "   ")
	q.Close()

	out := bot.Messages()
	if len(out) != 1 || !strings.HasPrefix(out[0].Text, "📩 <b>От пользователя:</b>") || !strings.Contains(out[0].Text, "Username: —") {
		t.Fatalf("mirror = %+v", out)
	}
}

type slowJournal struct {
	memJournal
	deadline chan time.Duration
}

func (j *slowJournal) Record(ctx context.Context, e storage.Entry) error {
	dl, ok := ctx.Deadline()
	if !ok {
		j.deadline <- 0
		return nil
	}
	j.deadline <- time.Until(dl)
	<-ctx.Done()
	return j.memJournal.Record(context.Background(), e)
}

func TestJournalWriteIsBounded(t *testing.T) {
	_, f, fin := fixture(t)
	q := sender.NewDispatcher(sender.Options{Workers: 1})
	j := &slowJournal{deadline: make(chan time.Duration, 1)}
	n := New(Deps{Queue: q, Journal: j, Formatter: f}, Options{JournalTimeout: 20 * time.Millisecond})

	n.BookingConfirmed(context.Background(), fin, who)
	select {
	case left := <-j.deadline:
		if left <= 0 || left > 20*time.Millisecond {
			t.Fatalf("journal deadline in %v", left)
		}
	case <-time.After(time.Second):
		t.Fatal("journal write not started")
	}
	q.Close()
	if entries, _ := j.Recent(context.Background(), 10); len(entries) != 1 {
		t.Fatalf("journal = %+v", entries)
	}
}
