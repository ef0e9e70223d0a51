package helpers

import (
	"errors"
	"log/slog"

	"github.com/m3rciful/runclub/core/logger"

	tele "gopkg.in/telebot.v4"
)

func markupOf(markup []*tele.ReplyMarkup) *tele.ReplyMarkup {
	if len(markup) > 0 {
		return markup[0]
	}
	return nil
}

// SendText sends raw text (no parse mode) to the current recipient.
func SendText(c tele.Context, text string, markup ...*tele.ReplyMarkup) error {
	return c.Send(text, &tele.SendOptions{ReplyMarkup: markupOf(markup)})
}

// SendHTML sends a message with HTML parse mode and optional reply markup.
func SendHTML(c tele.Context, text string, markup ...*tele.ReplyMarkup) error {
	return c.Send(text, &tele.SendOptions{ParseMode: tele.ModeHTML, ReplyMarkup: markupOf(markup)})
}

// Show replaces the message under a pressed inline button, or sends a new one for
// text and command updates.
func Show(c tele.Context, text string, markup ...*tele.ReplyMarkup) error {
	return show(c, text, &tele.SendOptions{ReplyMarkup: markupOf(markup)})
}

// ShowHTML is Show with HTML parse mode.
func ShowHTML(c tele.Context, text string, markup ...*tele.ReplyMarkup) error {
	return show(c, text, &tele.SendOptions{ParseMode: tele.ModeHTML, ReplyMarkup: markupOf(markup)})
}

func show(c tele.Context, text string, opts *tele.SendOptions) error {
	if c.Callback() == nil {
		return c.Send(text, opts)
	}
	err := c.EditOrSend(text, opts)
	if errors.Is(err, tele.ErrSameMessageContent) {
		logger.Debug(BuildContext(c), "tg", "edit.unchanged",
			slog.String("status", "skip"),
		)
		return nil
	}
	return err
}
