// Package handlers is the dialogue router of the bot: it binds commands,
// inline buttons and free text to the booking machine and the static screens.
package handlers

import (
	"errors"
	"strconv"

	"github.com/m3rciful/runclub/bots/runclub/booking"
	"github.com/m3rciful/runclub/bots/runclub/confirm"
	"github.com/m3rciful/runclub/bots/runclub/content"
	"github.com/m3rciful/runclub/bots/runclub/notify"
	"github.com/m3rciful/runclub/bots/runclub/storage"
	tg "github.com/m3rciful/runclub/core/telegram"
	"github.com/m3rciful/runclub/core/telegram/commands"
	tghelpers "github.com/m3rciful/runclub/core/telegram/helpers"
	"github.com/m3rciful/runclub/core/telegram/state"

	tele "gopkg.in/telebot.v4"
)

// stateQuestion waits for the text of a free-form question.
const stateQuestion state.State = "question"

// Club carries venue settings rendered on static screens.
type Club struct {
	Address     string
	MapLink     string
	CoachHandle string
}

// Deps are the collaborators of Handlers.
type Deps struct {
	Machine   *booking.Machine
	Formatter *confirm.Formatter
	Notifier  *notify.Notifier
	Journal   storage.Journal
	Club      Club
}

// Handlers owns the per-user sessions and every bot entry point.
type Handlers struct {
	machine  *booking.Machine
	format   *confirm.Formatter
	notifier *notify.Notifier
	journal  storage.Journal
	club     Club

	sessions *state.Store[booking.Draft]
	fsm      *state.Manager[booking.Draft]
}

// New wires handlers with a fresh in-memory session store.
func New(deps Deps) (*Handlers, error) {
	if deps.Machine == nil || deps.Formatter == nil {
		return nil, errors.New("handlers: machine and formatter are required")
	}
	if deps.Notifier == nil {
		deps.Notifier = notify.New(notify.Deps{}, notify.Options{})
	}
	if deps.Journal == nil {
		deps.Journal = storage.Noop{}
	}
	sessions := state.NewStore[booking.Draft]()
	h := &Handlers{
		machine:  deps.Machine,
		format:   deps.Formatter,
		notifier: deps.Notifier,
		journal:  deps.Journal,
		club:     deps.Club,
		sessions: sessions,
		fsm:      state.NewManager(sessions),
	}
	h.fsm.Handle(state.State(booking.StageContact), h.onContact)
	h.fsm.Handle(stateQuestion, h.onQuestion)
	h.fsm.Otherwise(h.onUnexpectedText)
	return h, nil
}

// FSM routes text of users with an active dialogue.
func (h *Handlers) FSM() *state.Manager[booking.Draft] {
	return h.fsm
}

// Sessions exposes the session store.
func (h *Handlers) Sessions() *state.Store[booking.Draft] {
	return h.sessions
}

// Register adds every command, callback and the text fallback to reg.
func (h *Handlers) Register(reg *tg.Registry) error {
	cmds := []struct {
		name string
		cmd  commands.Command
	}{
		{"/start", commands.Command{Handler: h.cmdStart, Description: "Начать", Aliases: []string{"старт"}}},
		{"/menu", commands.Command{Handler: h.cmdMenu, Description: "Главное меню", Aliases: []string{"меню"}}},
		{"/register", commands.Command{Handler: h.cmdRegister, Description: "Записаться на тренировку"}},
		{"/prices", commands.Command{Handler: h.cmdPrices, Description: "Цены"}},
		{"/schedule", commands.Command{Handler: h.cmdSchedule, Description: "Расписание"}},
		{"/location", commands.Command{Handler: h.cmdLocation, Description: "Локации"}},
		{"/question", commands.Command{Handler: h.cmdQuestion, Description: "Задать вопрос"}},
		{"/restart", commands.Command{Handler: h.cmdRestart, Description: "Начать заново"}},
		{"/myid", commands.Command{Handler: h.cmdMyID, Description: "Показать chat_id", Hidden: true}},
		{"/bookings", commands.Command{Handler: h.cmdBookings, Description: "Последние записи", AdminOnly: true, Hidden: true}},
	}
	var errs []error
	for _, c := range cmds {
		errs = append(errs, reg.RegisterCommand(c.name, c.cmd))
	}

	cbs := map[string]tele.HandlerFunc{
		cbMenu:       h.onMenu,
		cbDay:        h.onDay,
		cbSlot:       h.onSlot,
		cbInstructor: h.onInstructor,
		cbLevel:      h.onLevel,
		cbConfirm:    h.onConfirm,
		cbPrice:      h.onPrice,
		cbAddress:    h.onAddress,
		cbLocation:   h.onLocation,
		cbForm:       h.onForm,
		cbWeather:    h.onWeather,
		cbQuestion:   h.onQuestionTopic,
		cbHow:        h.onHow,
	}
	for key, fn := range cbs {
		errs = append(errs, reg.RegisterCallback(key, fn))
	}
	reg.SetTextFallback(h.onText)
	return errors.Join(errs...)
}

// UnknownText answers text nobody claimed.
func (h *Handlers) UnknownText() tele.HandlerFunc {
	return h.onText
}

// UnknownDocument answers uploads.
func (h *Handlers) UnknownDocument() tele.HandlerFunc {
	return func(c tele.Context) error {
		return tghelpers.SendText(c, content.Unexpected, unexpectedKeyboard())
	}
}

// UnknownCallback answers buttons of an older bot version.
func (h *Handlers) UnknownCallback() tele.HandlerFunc {
	return func(c tele.Context) error {
		return tghelpers.Show(c, content.Unsupported, exitKeyboard())
	}
}

// RateLimited answers messages dropped by the rate limiter. Button presses
// are only acknowledged.
func (h *Handlers) RateLimited(c tele.Context) error {
	if c.Callback() != nil {
		return nil
	}
	return tghelpers.SendText(c, content.SlowDown)
}

// AfterText mirrors free text to the operator when enabled.
func (h *Handlers) AfterText(c tele.Context) {
	text := c.Text()
	if text == "" || isCommand(text) {
		return
	}
	h.notifier.MirrorMessage(tghelpers.BuildContext(c), who(c), text)
}

// outcome marks a handled dialogue miss in handler summaries.
type outcome string

func (o outcome) Error() string   { return string(o) }
func (o outcome) Outcome() string { return string(o) }

const (
	outcomeReprompt   outcome = "reprompt"
	outcomeUnexpected outcome = "unexpected"
)

func who(c tele.Context) storage.Who {
	w := storage.Who{ChatID: tghelpers.ChatID(c)}
	if u := c.Sender(); u != nil {
		w.UserID = u.ID
		w.Username = u.Username
		w.DisplayName = confirm.DisplayName(u.FirstName, u.LastName, u.Username)
	} else {
		w.DisplayName = booking.Placeholder
	}
	return w
}

func chatIDString(c tele.Context) string {
	return strconv.FormatInt(tghelpers.ChatID(c), 10)
}
