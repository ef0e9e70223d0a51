// Package notify delivers side effects of the dialogue that the user never
// waits for: operator messages and journal writes. Every method returns
// immediately; delivery happens on the async sender.
package notify

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/m3rciful/runclub/bots/runclub/booking"
	"github.com/m3rciful/runclub/bots/runclub/confirm"
	"github.com/m3rciful/runclub/bots/runclub/storage"
	"github.com/m3rciful/runclub/core/logger"
	"github.com/m3rciful/runclub/core/telegram/format"

	tele "gopkg.in/telebot.v4"
)

// Sender pushes a message to an arbitrary chat. *tele.Bot satisfies it.
type Sender interface {
	Send(to tele.Recipient, what any, opts ...any) (*tele.Message, error)
}

// Queue runs jobs asynchronously. *sender.Dispatcher satisfies it.
type Queue interface {
	Enqueue(ctx context.Context, action, endpoint string, run func() error) error
}

// Options configure the operator destination.
type Options struct {
	// OperatorChatID is where summaries go; zero disables operator messages.
	OperatorChatID int64
	// MirrorMessages copies every free-text message to the operator.
	MirrorMessages bool
	// JournalTimeout bounds a single journal write. Defaults to 10s.
	JournalTimeout time.Duration
}

// Deps are the collaborators of a Notifier.
type Deps struct {
	Sender    Sender
	Queue     Queue
	Journal   storage.Journal
	Formatter *confirm.Formatter
}

// Notifier fans booking events out to the operator and the journal.
type Notifier struct {
	deps     Deps
	operator tele.ChatID
	mirror   bool
	jtimeout time.Duration
}

// New builds a Notifier. A nil Journal disables journaling.
func New(deps Deps, opts Options) *Notifier {
	if deps.Journal == nil {
		deps.Journal = storage.Noop{}
	}
	if opts.JournalTimeout <= 0 {
		opts.JournalTimeout = 10 * time.Second
	}
	n := &Notifier{
		deps:     deps,
		operator: tele.ChatID(opts.OperatorChatID),
		mirror:   opts.MirrorMessages,
		jtimeout: opts.JournalTimeout,
	}
	if deps.Sender == nil {
		n.operator = 0
	}
	return n
}

// HasOperator reports whether operator messages are delivered.
func (n *Notifier) HasOperator() bool {
	return n != nil && n.operator != 0 && n.deps.Queue != nil
}

func (n *Notifier) journaling() bool {
	if n == nil || n.deps.Queue == nil {
		return false
	}
	_, noop := n.deps.Journal.(storage.Noop)
	return !noop
}

// BookingConfirmed sends the operator summary and journals the booking.
// Both are skipped silently when not configured.
func (n *Notifier) BookingConfirmed(ctx context.Context, b booking.Finalized, who storage.Who) {
	if n.HasOperator() && n.deps.Formatter != nil {
		text := n.deps.Formatter.Operator(b, who.DisplayName)
		n.enqueue(ctx, "booking.operator", func() error {
			_, err := n.deps.Sender.Send(n.operator, text)
			return err
		}, slog.String("booking_id", b.ID))
	}
	if n.journaling() {
		entry := storage.EntryFrom(b, who)
		jctx := context.WithoutCancel(ctx)
		n.enqueue(ctx, "booking.journal", func() error {
			wctx, cancel := context.WithTimeout(jctx, n.jtimeout)
			defer cancel()
			return n.deps.Journal.Record(wctx, entry)
		}, slog.String("booking_id", b.ID))
	}
	if !n.HasOperator() && !n.journaling() {
		logger.LogEvent(ctx, logger.Notify, slog.LevelDebug, "notify.booking",
			slog.String("status", "skip"),
			slog.String("reason", "not_configured"),
		)
	}
}

// ForwardQuestion passes a user's free-form question to the operator.
func (n *Notifier) ForwardQuestion(ctx context.Context, who storage.Who, text string) {
	if !n.HasOperator() {
		return
	}
	msg := userCard("📩 <b>Вопрос от пользователя:</b>", who, text)
	n.enqueue(ctx, "question.forward", func() error {
		_, err := n.deps.Sender.Send(n.operator, msg, &tele.SendOptions{ParseMode: tele.ModeHTML})
		return err
	})
}

// MirrorMessage copies a free-text message to the operator when mirroring is on.
func (n *Notifier) MirrorMessage(ctx context.Context, who storage.Who, text string) {
	if !n.HasOperator() || !n.mirror || strings.TrimSpace(text) == "" {
		return
	}
	msg := userCard("📩 <b>От пользователя:</b>", who, text)
	n.enqueue(ctx, "message.mirror", func() error {
		_, err := n.deps.Sender.Send(n.operator, msg, &tele.SendOptions{ParseMode: tele.ModeHTML})
		return err
	})
}

func (n *Notifier) enqueue(ctx context.Context, action string, run func() error, attrs ...slog.Attr) {
	err := n.deps.Queue.Enqueue(ctx, action, "", run)
	status := "ok"
	if err != nil {
		status = "fail"
		attrs = append(attrs, slog.String("err", err.Error()))
	}
	attrs = append([]slog.Attr{slog.String("status", status), slog.String("action", action)}, attrs...)
	level := slog.LevelDebug
	if err != nil {
		level = slog.LevelWarn
	}
	logger.LogEvent(ctx, logger.Notify, level, "notify.enqueue", attrs...)
}

func userCard(title string, who storage.Who, text string) string {
	username := booking.Placeholder
	if who.Username != "" {
		username = "@" + who.Username
	}
	return title + "\n" +
		"Имя: " + format.Escape(who.DisplayName) + "\n" +
		"Username: " + format.Escape(username) + "\n" +
		"chat_id: " + strconv.FormatInt(who.UserID, 10) + "\n\n" +
		"Текст: " + format.Escape(strings.TrimSpace(text))
}
