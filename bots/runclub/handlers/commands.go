package handlers

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/m3rciful/runclub/bots/runclub/content"
	"github.com/m3rciful/runclub/bots/runclub/storage"
	"github.com/m3rciful/runclub/core/logger"
	tghelpers "github.com/m3rciful/runclub/core/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

const recentBookings = 10

func (h *Handlers) cmdStart(c tele.Context) error {
	h.clearSession(c)
	return tghelpers.SendText(c, content.Greeting, startKeyboard())
}

func (h *Handlers) cmdMenu(c tele.Context) error {
	h.clearSession(c)
	return tghelpers.SendText(c, content.MainMenu, mainMenuKeyboard())
}

func (h *Handlers) cmdRegister(c tele.Context) error {
	return h.startBooking(c)
}

func (h *Handlers) cmdPrices(c tele.Context) error {
	return h.static(c, "prices", (*Handlers).showPriceChoice)
}

func (h *Handlers) cmdSchedule(c tele.Context) error {
	return h.static(c, "schedule", (*Handlers).showSchedule)
}

func (h *Handlers) cmdLocation(c tele.Context) error {
	return h.static(c, "location", (*Handlers).showLocations)
}

func (h *Handlers) cmdQuestion(c tele.Context) error {
	return h.static(c, "question", (*Handlers).showTopics)
}

func (h *Handlers) cmdRestart(c tele.Context) error {
	h.clearSession(c)
	return tghelpers.SendText(c, content.RestartGreeting, startKeyboard())
}

func (h *Handlers) cmdMyID(c tele.Context) error {
	return tghelpers.SendHTML(c, content.MyID(chatIDString(c)))
}

// cmdBookings lists the latest journal entries to the admin.
func (h *Handlers) cmdBookings(c tele.Context) error {
	if _, off := h.journal.(storage.Noop); off {
		return tghelpers.SendText(c, "Журнал записей отключён.")
	}
	ctx := tghelpers.BuildContext(c)
	entries, err := h.journal.Recent(ctx, recentBookings)
	if err != nil {
		logger.Error(ctx, "db", "journal.recent",
			slog.String("status", "fail"),
			slog.String("err", err.Error()),
		)
		return tghelpers.SendText(c, "Не удалось загрузить журнал.")
	}
	if len(entries) == 0 {
		return tghelpers.SendText(c, "Записей пока нет.")
	}
	return tghelpers.SendText(c, formatEntries(entries))
}

func formatEntries(entries []storage.Entry) string {
	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, fmt.Sprintf("Последние записи (%d):", len(entries)))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("• %s %s | %s | %s | %s",
			e.ConfirmedAt.Format("02.01 15:04"), e.SlotLabel, e.Instructor, e.DisplayName, e.Contact))
	}
	return strings.Join(lines, "\n")
}

// trigger maps a free-text phrase to a screen.
type trigger struct {
	name    string
	pattern *regexp.Regexp
	handle  func(h *Handlers, c tele.Context) error
}

// triggers are checked in order; the first match wins.
var triggers = []trigger{
	{"register", regexp.MustCompile(`(?i)(записаться|хочу\s+на\s+тренировку|записать|запиши)`), (*Handlers).startBooking},
	{"price", regexp.MustCompile(`(?i)(цена|сколько\s+стоит|стоимость)`), (*Handlers).cmdPrices},
	{"address", regexp.MustCompile(`(?i)(адрес|где\s+находится|как\s+добраться)`), func(h *Handlers, c tele.Context) error {
		return h.static(c, "address", (*Handlers).showAddress)
	}},
	{"locations", regexp.MustCompile(`(?i)(локаци[ия]|локации|адреса)`), (*Handlers).cmdLocation},
	{"form", regexp.MustCompile(`(?i)(форма|что\s+надеть|экипировка|кроссовки)`), func(h *Handlers, c tele.Context) error {
		return h.static(c, "form", (*Handlers).showFormChoice)
	}},
	{"schedule", regexp.MustCompile(`(?i)(расписание|когда\s+тренировки)`), (*Handlers).cmdSchedule},
}

func matchTrigger(text string) (trigger, bool) {
	text = strings.TrimSpace(text)
	for _, t := range triggers {
		if t.pattern.MatchString(text) {
			return t, true
		}
	}
	return trigger{}, false
}

// onText answers free text outside any dialogue.
func (h *Handlers) onText(c tele.Context) error {
	if t, ok := matchTrigger(c.Text()); ok {
		logger.Debug(tghelpers.BuildContext(c), "tg", "text.trigger",
			slog.String("status", "ok"),
			slog.String("trigger", t.name),
		)
		return t.handle(h, c)
	}
	if err := tghelpers.SendText(c, content.Unexpected, idleUnexpectedKeyboard()); err != nil {
		return err
	}
	return outcomeUnexpected
}
