package router

import (
	"time"

	tg "github.com/m3rciful/runclub/core/telegram"
	tghelpers "github.com/m3rciful/runclub/core/telegram/helpers"
	"github.com/m3rciful/runclub/core/telegram/middleware"

	tele "gopkg.in/telebot.v4"
)

// FSM defines the minimal interface for a dialogue manager.
type FSM interface {
	InProgress(userID int64) bool
	ManagerHandler(c tele.Context) error
}

// TextOptions controls fallback behaviour for text/document updates.
type TextOptions struct {
	UnknownText     tele.HandlerFunc
	UnknownDocument tele.HandlerFunc
	// AfterText observes every text message once routing has finished.
	AfterText func(c tele.Context)
}

// TextHandler routes free text: active dialogue first, then command aliases,
// then the registry text fallback, then UnknownText.
func TextHandler(fsmMgr FSM, reg *tg.Registry, opts TextOptions) tele.HandlerFunc {
	return func(c tele.Context) error {
		start := time.Now()
		if opts.AfterText != nil {
			defer opts.AfterText(c)
		}

		if fsmMgr != nil && fsmMgr.InProgress(tghelpers.SenderID(c)) {
			return handleWithSummary(c, "fsm", start, func() error {
				return fsmMgr.ManagerHandler(c)
			})
		}

		if reg != nil {
			if key, cmd, ok := reg.LookupCommand(c.Text()); ok && cmd.Handler != nil && !cmd.AdminOnly {
				return handleWithSummary(c, normalizeHandlerName(key), start, func() error {
					return cmd.Handler(c)
				})
			}
			if fb := reg.TextFallback(); fb != nil {
				return handleWithSummary(c, "fallback", start, func() error {
					return fb(c)
				})
			}
		}

		if opts.UnknownText != nil {
			return handleWithSummary(c, "unknown_text", start, func() error {
				return opts.UnknownText(c)
			})
		}

		logHandlerSummary(c, "unknown_text", start, "skip", "ok", nil)
		return nil
	}
}

// DocumentHandler answers uploads, which no dialogue step expects.
func DocumentHandler(opts TextOptions) tele.HandlerFunc {
	return func(c tele.Context) error {
		start := time.Now()
		if opts.UnknownDocument != nil {
			return handleWithSummary(c, "unexpected_document", start, func() error {
				return opts.UnknownDocument(c)
			})
		}
		logHandlerSummary(c, "unexpected_document", start, "skip", "ok", nil)
		return nil
	}
}

// TextRoutes builds the OnText and OnDocument routes.
func TextRoutes(fsmMgr FSM, reg *tg.Registry, opts TextOptions) []tg.Route {
	return []tg.Route{
		{
			Endpoint: tele.OnText,
			Handler:  middleware.RecoverMiddleware(middleware.LoggerMiddleware(TextHandler(fsmMgr, reg, opts))),
		},
		{
			Endpoint: tele.OnDocument,
			Handler:  middleware.RecoverMiddleware(middleware.LoggerMiddleware(DocumentHandler(opts))),
		},
	}
}
