package handlers

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/m3rciful/runclub/bots/runclub/booking"
	"github.com/m3rciful/runclub/bots/runclub/content"
	"github.com/m3rciful/runclub/core/logger"
	"github.com/m3rciful/runclub/core/telegram/callbacks"
	tghelpers "github.com/m3rciful/runclub/core/telegram/helpers"
	"github.com/m3rciful/runclub/core/telegram/state"

	tele "gopkg.in/telebot.v4"
)

func sessionState(d booking.Draft) state.State {
	if !d.Active() {
		return state.StateIdle
	}
	return state.State(d.Stage)
}

// startBooking replaces any dialogue with a fresh draft and asks for a day.
func (h *Handlers) startBooking(c tele.Context) error {
	d := h.machine.Start()
	h.sessions.Put(tghelpers.SenderID(c), sessionState(d), d)
	logger.LogEvent(tghelpers.BuildContext(c), logger.Booking, slog.LevelDebug, "booking.start",
		slog.String("status", "ok"),
		slog.String("stage", string(d.Stage)),
	)
	return h.render(c, d)
}

// step feeds one event to the user's draft and shows the next screen.
func (h *Handlers) step(c tele.Context, ev booking.Event) error {
	ctx := tghelpers.BuildContext(c)
	uid := tghelpers.SenderID(c)

	var (
		res  booking.Result
		from booking.Stage
	)
	_, err := h.sessions.Update(uid, func(s *state.Session[booking.Draft]) error {
		from = s.Data.Stage
		r, err := h.machine.Apply(s.Data, ev)
		if err != nil {
			return err
		}
		res = r
		s.Data = r.Draft
		s.State = sessionState(r.Draft)
		return nil
	})
	if err != nil {
		logger.LogEvent(ctx, logger.Booking, slog.LevelDebug, "booking.transition",
			slog.String("status", "rejected"),
			slog.String("stage", string(from)),
			slog.String("input", booking.EventName(ev)),
			slog.String("err", err.Error()),
		)
		if errors.Is(err, booking.ErrEmptyContact) {
			if sendErr := tghelpers.SendText(c, content.ContactReprompt, exitKeyboard()); sendErr != nil {
				return sendErr
			}
			return outcomeReprompt
		}
		if sendErr := tghelpers.Show(c, content.Unexpected, unexpectedKeyboard()); sendErr != nil {
			return sendErr
		}
		return outcomeUnexpected
	}

	logger.LogEvent(ctx, logger.Booking, slog.LevelInfo, "booking.transition",
		slog.String("status", "ok"),
		slog.String("stage", string(res.Draft.Stage)),
		slog.String("from", string(from)),
		slog.String("input", booking.EventName(ev)),
	)

	switch res.Exit {
	case booking.ExitMenu:
		return tghelpers.Show(c, content.MainMenu, mainMenuKeyboard())
	case booking.ExitRestart:
		return tghelpers.Show(c, content.RestartGreeting, startKeyboard())
	case booking.ExitDone:
		return h.finish(c, *res.Booking)
	}
	return h.render(c, res.Draft)
}

// render shows the screen of the draft's current stage.
func (h *Handlers) render(c tele.Context, d booking.Draft) error {
	cat := h.machine.Catalog()
	switch d.Stage {
	case booking.StageDay:
		return tghelpers.Show(c, content.ChooseDay, dayKeyboard(cat))
	case booking.StageSlot:
		return tghelpers.Show(c, content.ChooseSlot, slotKeyboard(cat, d.Day))
	case booking.StageInstructor:
		return tghelpers.Show(c, content.ChooseInstructor, instructorKeyboard(cat))
	case booking.StageLevel:
		return tghelpers.Show(c, content.ChooseLevel, levelKeyboard())
	case booking.StageContact:
		return tghelpers.Show(c, content.ContactPrompt, exitKeyboard())
	case booking.StageConfirm:
		w := who(c)
		card, err := h.format.Review(d, w.DisplayName)
		if err != nil {
			return err
		}
		return tghelpers.ShowHTML(c, card, confirmKeyboard())
	}
	return tghelpers.Show(c, content.MainMenu, mainMenuKeyboard())
}

func (h *Handlers) finish(c tele.Context, b booking.Finalized) error {
	ctx := tghelpers.BuildContext(c)
	logger.LogEvent(ctx, logger.Booking, slog.LevelInfo, "booking.confirmed",
		slog.String("status", "ok"),
		slog.String("booking_id", b.ID),
		slog.String("slot_id", b.Slot.ID),
		slog.String("level", string(b.Level)),
	)
	h.notifier.BookingConfirmed(ctx, b, who(c))
	return tghelpers.ShowHTML(c, h.format.Final(b), exitKeyboard())
}

func (h *Handlers) onDay(c tele.Context) error {
	return h.step(c, booking.DaySelected{Day: callbacks.CallbackPayload(c)})
}

func (h *Handlers) onSlot(c tele.Context) error {
	return h.step(c, booking.SlotSelected{Slot: callbacks.CallbackPayload(c)})
}

func (h *Handlers) onInstructor(c tele.Context) error {
	return h.step(c, booking.InstructorSelected{Instructor: callbacks.CallbackPayload(c)})
}

func (h *Handlers) onLevel(c tele.Context) error {
	return h.step(c, booking.LevelSelected{Level: callbacks.CallbackPayload(c)})
}

func (h *Handlers) onConfirm(c tele.Context) error {
	return h.step(c, booking.Decision{Choice: booking.Choice(callbacks.CallbackPayload(c))})
}

// onContact takes the contact line. Unregistered commands arrive as text
// too and never count as a contact.
func (h *Handlers) onContact(c tele.Context) error {
	if isCommand(c.Text()) {
		return h.onUnexpectedText(c)
	}
	return h.step(c, booking.ContactSubmitted{Text: c.Text()})
}

// onUnexpectedText answers text sent while the dialogue waits for a button.
// The draft stays as it was.
func (h *Handlers) onUnexpectedText(c tele.Context) error {
	if err := tghelpers.SendText(c, content.Unexpected, unexpectedKeyboard()); err != nil {
		return err
	}
	return outcomeUnexpected
}

// onQuestion forwards a free-form question to the operator.
func (h *Handlers) onQuestion(c tele.Context) error {
	if isCommand(c.Text()) {
		return h.onUnexpectedText(c)
	}
	h.sessions.Clear(tghelpers.SenderID(c))
	h.notifier.ForwardQuestion(tghelpers.BuildContext(c), who(c), c.Text())
	return tghelpers.SendText(c, content.QuestionThanks, exitKeyboard())
}

func isCommand(text string) bool {
	return strings.HasPrefix(strings.TrimSpace(text), "/")
}
