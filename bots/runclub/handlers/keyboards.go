package handlers

import (
	"github.com/m3rciful/runclub/bots/runclub/booking"
	"github.com/m3rciful/runclub/bots/runclub/catalog"
	"github.com/m3rciful/runclub/bots/runclub/content"
	kb "github.com/m3rciful/runclub/core/telegram/keyboard"

	tele "gopkg.in/telebot.v4"
)

// Callback namespaces.
const (
	cbMenu       = "menu"
	cbDay        = "reg_day"
	cbSlot       = "reg_slot"
	cbInstructor = "reg_trainer"
	cbLevel      = "reg_level"
	cbConfirm    = "reg_confirm"
	cbPrice      = "price"
	cbAddress    = "addr"
	cbLocation   = "loc"
	cbForm       = "form"
	cbWeather    = "weather"
	cbQuestion   = "question"
	cbHow        = "how"
)

// Payloads of the menu namespace.
const (
	menuStart     = "start"
	menuMain      = "main"
	menuRestart   = "restart"
	menuRegister  = "register"
	menuSchedule  = "schedule"
	menuPrice     = "price"
	menuLocations = "locations"
	menuAddress   = "address"
	menuForm      = "form"
	menuQuestion  = "question"
)

var (
	btnBackToMenu = kb.InlineBtn{Text: "⬅️ Назад в меню", Unique: cbMenu, Data: menuMain}
	btnRestart    = kb.InlineBtn{Text: "🔄 Начать заново", Unique: cbMenu, Data: menuRestart}
	btnRegister   = kb.InlineBtn{Text: "📝 Записаться", Unique: cbMenu, Data: menuRegister}
	btnLocations  = kb.InlineBtn{Text: "📍 Адрес", Unique: cbMenu, Data: menuLocations}
)

func exitRow() []kb.InlineBtn {
	return kb.Row(btnBackToMenu, btnRestart)
}

func startKeyboard() *tele.ReplyMarkup {
	return kb.InlineButtonsRows(kb.Row(kb.InlineBtn{Text: "🚀 Старт", Unique: cbMenu, Data: menuStart}))
}

func mainMenuKeyboard() *tele.ReplyMarkup {
	return kb.InlineButtonsRows(
		kb.Row(btnRegister, kb.InlineBtn{Text: "🗓 Расписание", Unique: cbMenu, Data: menuSchedule}),
		kb.Row(
			kb.InlineBtn{Text: "💰 Цены", Unique: cbMenu, Data: menuPrice},
			kb.InlineBtn{Text: "📍 Локации", Unique: cbMenu, Data: menuLocations},
		),
		kb.Row(kb.InlineBtn{Text: "❓ Задать вопрос", Unique: cbMenu, Data: menuQuestion}, btnRestart),
	)
}

func exitKeyboard() *tele.ReplyMarkup {
	return kb.InlineButtonsRows(exitRow())
}

// unexpectedKeyboard offers a way out of any dialogue step.
func unexpectedKeyboard() *tele.ReplyMarkup {
	return kb.InlineButtonsRows(kb.Row(btnBackToMenu), kb.Row(btnRestart))
}

// idleUnexpectedKeyboard is shown for text outside any dialogue.
func idleUnexpectedKeyboard() *tele.ReplyMarkup {
	return kb.InlineButtonsRows(
		kb.Row(kb.InlineBtn{Text: "Записаться", Unique: cbMenu, Data: menuRegister}, btnBackToMenu),
		kb.Row(btnRestart),
	)
}

func registerBackRestartKeyboard() *tele.ReplyMarkup {
	return kb.InlineButtonsRows(kb.Row(btnRegister, btnBackToMenu), kb.Row(btnRestart))
}

func navigationKeyboard() *tele.ReplyMarkup {
	return kb.InlineButtonsRows(kb.Row(btnRegister, btnLocations), exitRow())
}

func dayKeyboard(cat *catalog.Catalog) *tele.ReplyMarkup {
	rows := make([][]kb.InlineBtn, 0, len(cat.Days())+1)
	for _, d := range cat.Days() {
		rows = append(rows, kb.Row(kb.InlineBtn{Text: d.Button, Unique: cbDay, Data: string(d.Key)}))
	}
	return kb.InlineButtonsRows(append(rows, exitRow())...)
}

func slotKeyboard(cat *catalog.Catalog, day catalog.Day) *tele.ReplyMarkup {
	slots := cat.SlotsFor(day)
	rows := make([][]kb.InlineBtn, 0, len(slots)+1)
	for _, s := range slots {
		rows = append(rows, kb.Row(kb.InlineBtn{Text: s.Button, Unique: cbSlot, Data: s.ID}))
	}
	return kb.InlineButtonsRows(append(rows, exitRow())...)
}

func instructorKeyboard(cat *catalog.Catalog) *tele.ReplyMarkup {
	var row []kb.InlineBtn
	for _, in := range cat.Instructors() {
		row = append(row, kb.InlineBtn{Text: in.Name, Unique: cbInstructor, Data: in.Key})
	}
	return kb.InlineButtonsRows(row, exitRow())
}

func levelKeyboard() *tele.ReplyMarkup {
	btns := make([]kb.InlineBtn, 0, len(booking.Levels))
	for _, l := range booking.Levels {
		btns = append(btns, kb.InlineBtn{Text: l.Label(), Unique: cbLevel, Data: string(l)})
	}
	return kb.InlineButtonsRows(btns[:2], btns[2:], exitRow())
}

func confirmKeyboard() *tele.ReplyMarkup {
	return kb.InlineButtonsRows(
		kb.Row(kb.InlineBtn{Text: "✅ Да", Unique: cbConfirm, Data: string(booking.ChoiceYes)}),
		kb.Row(kb.InlineBtn{Text: "Изменить", Unique: cbConfirm, Data: string(booking.ChoiceChange)}),
		exitRow(),
	)
}

func priceChoiceKeyboard() *tele.ReplyMarkup {
	return kb.InlineButtonsRows(
		kb.Row(kb.InlineBtn{Text: "Максим | Даша", Unique: cbPrice, Data: pricePair}),
		kb.Row(kb.InlineBtn{Text: "Виталик", Unique: cbPrice, Data: priceHead}),
		exitRow(),
	)
}

func addressKeyboard(hasRoutes bool) *tele.ReplyMarkup {
	if !hasRoutes {
		return kb.InlineButtonsRows(kb.Row(kb.InlineBtn{Text: "Записаться", Unique: cbMenu, Data: menuRegister}), exitRow())
	}
	return kb.InlineButtonsRows(
		kb.Row(kb.InlineBtn{Text: "На машине", Unique: cbAddress, Data: addrCar}),
		kb.Row(kb.InlineBtn{Text: "Пешком/транспорт", Unique: cbAddress, Data: addrWalk}),
		exitRow(),
	)
}

func locationsKeyboard() *tele.ReplyMarkup {
	return kb.InlineButtonsRows(
		kb.Row(kb.InlineBtn{Text: "🏃‍♂️ Беговые тренировки", Unique: cbLocation, Data: string(catalog.AddressRun)}),
		kb.Row(kb.InlineBtn{Text: "🏋️‍♂️ Силовые тренировки", Unique: cbLocation, Data: string(catalog.AddressGym)}),
		kb.Row(kb.InlineBtn{Text: "🏃‍♂️ Длительная (Раубичи)", Unique: cbLocation, Data: string(catalog.AddressLong)}),
		kb.Row(btnRegister, btnBackToMenu),
		kb.Row(btnRestart),
	)
}

func locationKeyboard(geoURL string) *tele.ReplyMarkup {
	return kb.InlineButtonsRows(
		kb.Row(kb.InlineBtn{Text: "🧭 Открыть локацию", URL: geoURL}),
		kb.Row(btnRegister, btnLocations),
		exitRow(),
	)
}

func formPlaceKeyboard() *tele.ReplyMarkup {
	return kb.InlineButtonsRows(
		kb.Row(kb.InlineBtn{Text: "Зал", Unique: cbForm, Data: formGym}),
		kb.Row(kb.InlineBtn{Text: "Манеж", Unique: cbForm, Data: formManege}),
		kb.Row(kb.InlineBtn{Text: "Улица", Unique: cbForm, Data: formStreet}),
		exitRow(),
	)
}

func weatherKeyboard() *tele.ReplyMarkup {
	w := func(text, key string) kb.InlineBtn { return kb.InlineBtn{Text: text, Unique: cbWeather, Data: key} }
	return kb.InlineButtonsRows(
		kb.Row(w("Тепло", content.WeatherWarm), w("Прохладно", content.WeatherCool)),
		kb.Row(w("Холодно", content.WeatherCold), w("Дождь", content.WeatherRain)),
		exitRow(),
	)
}

func topicsKeyboard() *tele.ReplyMarkup {
	q := func(text, key string) []kb.InlineBtn {
		return kb.Row(kb.InlineBtn{Text: text, Unique: cbQuestion, Data: key})
	}
	return kb.InlineButtonsRows(
		q("Что надеть?", topicForm),
		q("Что взять с собой?", topicTake),
		q("Как проходят тренировки?", topicHow),
		q("Задать свой вопрос", topicCustom),
		exitRow(),
	)
}

func howKeyboard() *tele.ReplyMarkup {
	h := func(text, key string) []kb.InlineBtn {
		return kb.Row(kb.InlineBtn{Text: text, Unique: cbHow, Data: key})
	}
	return kb.InlineButtonsRows(
		h("🏃‍♂️ Беговые", content.HowRun),
		h("🏋️‍♂️ Силовые", content.HowStrength),
		h("🏃‍♂️ Длительные", content.HowLong),
		kb.Row(btnBackToMenu),
	)
}
