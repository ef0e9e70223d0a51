// Package confirm renders booking cards: the review shown before
// confirmation, the final message after it and the operator summary.
package confirm

import (
	"strings"

	"github.com/m3rciful/runclub/bots/runclub/booking"
	"github.com/m3rciful/runclub/bots/runclub/catalog"
	"github.com/m3rciful/runclub/core/telegram/format"
)

const (
	newBookingTitle = "📝 Новая запись на тренировку"
	navigatorLabel  = "Открыть локацию"
)

// Options carry club settings shown in the final message.
type Options struct {
	PaymentInfo  string
	ContactAdmin string
	// CoachHandle is the head coach's Telegram handle for follow-up questions.
	CoachHandle string
}

// Formatter renders booking messages. Its output depends only on its inputs.
type Formatter struct {
	machine *booking.Machine
	opts    Options
}

// New builds a Formatter that resolves drafts through m.
func New(m *booking.Machine, opts Options) *Formatter {
	return &Formatter{machine: m, opts: opts}
}

// DisplayName picks how a Telegram user is addressed: full name, then
// @username, then a placeholder.
func DisplayName(first, last, username string) string {
	name := strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
	if name == "" && username != "" {
		name = "@" + username
	}
	if name == "" {
		name = booking.Placeholder
	}
	return name
}

// Review renders the HTML card that asks the user to check the draft.
func (f *Formatter) Review(d booking.Draft, name string) (string, error) {
	det, err := f.machine.Resolve(d)
	if err != nil {
		return "", err
	}
	return strings.Join([]string{
		"Проверьте, пожалуйста, правильно ли заполнены данные:",
		"",
		newBookingTitle,
		"",
		"👤 Имя: " + format.Escape(name),
		"📞 Контакт: " + format.Escape(orPlaceholder(det.Contact)),
		"📅 День: " + format.Escape(det.DayLabel),
		"🏃‍♂️ Тренировка: " + format.Escape(det.CardLabel),
		"⏰ Время: " + format.Escape(det.Time.String()),
		"🎯 Уровень: " + format.Escape(levelLabel(det.Level)),
		"📍 Локация: " + format.Escape(det.Location),
		navigator(det.GeoURL),
		"",
		"Всё верно? 👇",
	}, "\n"), nil
}

// Final renders the HTML success message.
func (f *Formatter) Final(b booking.Finalized) string {
	lines := []string{
		"Записали вас ✅",
		"",
		"📅 День: " + format.Escape(b.DayLabel),
		"🏃‍♂️ Тренировка: " + format.Escape(b.CardLabel),
		"⏰ Время: " + format.Escape(b.Time.Prose()),
		"🎯 Уровень: " + format.Escape(levelLabel(b.Level)),
		"📍 Локация: " + format.Escape(b.Location),
		navigator(b.GeoURL),
		"👤 Тренер: " + format.Escape(b.Instructor),
		"",
		format.Escape(AfterVisit(b.Address)),
	}
	if f.opts.CoachHandle != "" {
		lines = append(lines, "", format.Escape("Если остались вопросы — напишите руководителю: "+f.opts.CoachHandle))
	}
	if f.opts.PaymentInfo != "" {
		lines = append(lines, "Оплата: "+format.Escape(f.opts.PaymentInfo))
	}
	if f.opts.ContactAdmin != "" {
		lines = append(lines, "Контакт: "+format.Escape(f.opts.ContactAdmin))
	}
	return strings.Join(lines, "\n")
}

// Operator renders the plain-text summary sent to the operator chat.
func (f *Formatter) Operator(b booking.Finalized, name string) string {
	return strings.Join([]string{
		newBookingTitle,
		"",
		"👤 Имя: " + name,
		"📞 Контакт: " + orPlaceholder(b.Contact),
		"📅 День: " + b.DayLabel,
		"🏃‍♂️ Тренировка: " + b.OperatorLabel,
		"⏰ Время: " + b.Time.String(),
		"🎯 Уровень: " + levelLabel(b.Level),
		"📍 Локация: " + b.Location,
	}, "\n")
}

// AfterVisit is the "what to bring" block for the venue type.
func AfterVisit(t catalog.AddressType) string {
	if t == catalog.AddressGym {
		return afterGym
	}
	return afterRun
}

func navigator(geoURL string) string {
	return "🧭 Навигатор: " + format.Link(geoURL, navigatorLabel)
}

func levelLabel(l booking.Level) string {
	if l == "" {
		return booking.Placeholder
	}
	return l.Label()
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return booking.Placeholder
	}
	return s
}

const afterRun = "🏃‍♂️ Что взять с собой на тренировку\n\n" +
	"• Бутылку воды\n" +
	"• Кроссовки по погоде\n" +
	"• Одежду по погоде\n\n" +
	"🚿 После тренировки можно помыться — возьмите вещи для душа: полотенце, шампунь, гель."

const afterGym = "🏋️‍♂️ Что взять с собой на тренировку\n\n" +
	"• Удобную спортивную одежду для зала\n" +
	"• Кроссовки для зала\n" +
	"• Бутылку воды\n\n" +
	"🚿 После тренировки можно помыться — возьмите вещи для душа: полотенце, шампунь, гель."
