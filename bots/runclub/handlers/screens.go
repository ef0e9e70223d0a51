package handlers

import (
	"log/slog"

	"github.com/m3rciful/runclub/bots/runclub/booking"
	"github.com/m3rciful/runclub/bots/runclub/catalog"
	"github.com/m3rciful/runclub/bots/runclub/content"
	"github.com/m3rciful/runclub/core/logger"
	"github.com/m3rciful/runclub/core/telegram/callbacks"
	tghelpers "github.com/m3rciful/runclub/core/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

// Payloads of the information screens.
const (
	pricePair = "pair"
	priceHead = "head"

	addrCar  = "car"
	addrWalk = "walk"

	formGym    = "gym"
	formManege = "manege"
	formStreet = "street"

	topicForm   = "form"
	topicTake   = "what_to_take"
	topicHow    = "how"
	topicCustom = "custom"
)

// screen renders a static screen. Every screen drops an unfinished booking.
type screen func(h *Handlers, c tele.Context) error

var menuScreens = map[string]screen{
	menuStart:     (*Handlers).showMainMenu,
	menuSchedule:  (*Handlers).showSchedule,
	menuPrice:     (*Handlers).showPriceChoice,
	menuLocations: (*Handlers).showLocations,
	menuAddress:   (*Handlers).showAddress,
	menuForm:      (*Handlers).showFormChoice,
	menuQuestion:  (*Handlers).showTopics,
}

// onMenu handles the navigation namespace.
func (h *Handlers) onMenu(c tele.Context) error {
	switch payload := callbacks.CallbackPayload(c); payload {
	case menuMain:
		return h.step(c, booking.Menu{})
	case menuRestart:
		return h.step(c, booking.Restart{})
	case menuRegister:
		return h.startBooking(c)
	default:
		s, ok := menuScreens[payload]
		if !ok {
			return h.UnknownCallback()(c)
		}
		return h.static(c, payload, s)
	}
}

func (h *Handlers) static(c tele.Context, name string, s screen) error {
	uid := tghelpers.SenderID(c)
	if h.sessions.InProgress(uid) {
		h.sessions.Clear(uid)
		logger.LogEvent(tghelpers.BuildContext(c), logger.Booking, slog.LevelDebug, "booking.discard",
			slog.String("status", "ok"),
			slog.String("screen", name),
		)
	}
	return s(h, c)
}

func (h *Handlers) showMainMenu(c tele.Context) error {
	return tghelpers.Show(c, content.MainMenu, mainMenuKeyboard())
}

func (h *Handlers) showSchedule(c tele.Context) error {
	return tghelpers.Show(c, content.Schedule, navigationKeyboard())
}

func (h *Handlers) showPriceChoice(c tele.Context) error {
	return tghelpers.Show(c, content.ChooseCoachForPrice, priceChoiceKeyboard())
}

func (h *Handlers) showLocations(c tele.Context) error {
	return tghelpers.Show(c, content.LocationsChoice, locationsKeyboard())
}

func (h *Handlers) showAddress(c tele.Context) error {
	text, hasRoutes := content.Address(h.club.Address, h.club.MapLink)
	return tghelpers.Show(c, text, addressKeyboard(hasRoutes))
}

func (h *Handlers) showFormChoice(c tele.Context) error {
	return tghelpers.Show(c, content.FormChoice, formPlaceKeyboard())
}

func (h *Handlers) showTopics(c tele.Context) error {
	return tghelpers.Show(c, content.ChooseTopic, topicsKeyboard())
}

func (h *Handlers) onPrice(c tele.Context) error {
	return h.static(c, cbPrice, func(h *Handlers, c tele.Context) error {
		if callbacks.CallbackPayload(c) == priceHead {
			return tghelpers.Show(c, content.HeadCoachInfo(h.club.CoachHandle), registerBackRestartKeyboard())
		}
		return tghelpers.Show(c, content.Prices, registerBackRestartKeyboard())
	})
}

func (h *Handlers) onAddress(c tele.Context) error {
	return h.static(c, cbAddress, func(h *Handlers, c tele.Context) error {
		text := content.OnFoot
		if callbacks.CallbackPayload(c) == addrCar {
			text = content.ByCar
		}
		return tghelpers.Show(c, text, navigationKeyboard())
	})
}

func (h *Handlers) onLocation(c tele.Context) error {
	return h.static(c, cbLocation, func(h *Handlers, c tele.Context) error {
		addrs := h.machine.Catalog().Addresses()
		t := catalog.AddressType(callbacks.CallbackPayload(c))
		if !addrs.Has(t) {
			t = catalog.AddressGym
		}
		return tghelpers.Show(c, "📍 Локация: "+addrs.Location(t), locationKeyboard(addrs.GeoURL(t)))
	})
}

func (h *Handlers) onForm(c tele.Context) error {
	return h.static(c, cbForm, func(h *Handlers, c tele.Context) error {
		switch callbacks.CallbackPayload(c) {
		case formGym:
			return tghelpers.Show(c, content.WearGym, exitKeyboard())
		case formManege:
			return tghelpers.Show(c, content.WearManege, exitKeyboard())
		}
		return tghelpers.Show(c, content.WeatherChoice, weatherKeyboard())
	})
}

func (h *Handlers) onWeather(c tele.Context) error {
	return h.static(c, cbWeather, func(h *Handlers, c tele.Context) error {
		return tghelpers.Show(c, content.StreetWear(callbacks.CallbackPayload(c)), exitKeyboard())
	})
}

func (h *Handlers) onQuestionTopic(c tele.Context) error {
	switch callbacks.CallbackPayload(c) {
	case topicForm:
		return h.static(c, cbQuestion, (*Handlers).showFormChoice)
	case topicTake:
		return h.static(c, cbQuestion, func(_ *Handlers, c tele.Context) error {
			return tghelpers.Show(c, content.WhatToTake, registerBackRestartKeyboard())
		})
	case topicHow:
		return h.static(c, cbQuestion, func(_ *Handlers, c tele.Context) error {
			return tghelpers.Show(c, content.ChooseTrainingType, howKeyboard())
		})
	case topicCustom:
		return h.askQuestion(c)
	}
	return h.static(c, cbQuestion, (*Handlers).showTopics)
}

func (h *Handlers) onHow(c tele.Context) error {
	return h.static(c, cbHow, func(_ *Handlers, c tele.Context) error {
		return tghelpers.Show(c, content.HowTrainingsGo(callbacks.CallbackPayload(c)), exitKeyboard())
	})
}

// askQuestion waits for the next text message and forwards it.
func (h *Handlers) askQuestion(c tele.Context) error {
	h.sessions.Put(tghelpers.SenderID(c), stateQuestion, booking.Draft{})
	return tghelpers.Show(c, content.QuestionPrompt, exitKeyboard())
}

// clearSession drops whatever dialogue the user had.
func (h *Handlers) clearSession(c tele.Context) {
	h.sessions.Clear(tghelpers.SenderID(c))
}
