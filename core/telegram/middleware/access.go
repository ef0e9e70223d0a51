package middleware

import (
	"log/slog"

	"github.com/m3rciful/runclub/core/logger"
	tghelpers "github.com/m3rciful/runclub/core/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

// AdminOptions defines how admin-only checks should behave.
type AdminOptions struct {
	AdminID  int64
	OnReject tele.HandlerFunc
}

// AdminOnlyMiddleware ensures that only the admin user can invoke downstream handlers.
// With no admin configured every caller is rejected.
func AdminOnlyMiddleware(opts AdminOptions) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if uid := tghelpers.SenderID(c); opts.AdminID == 0 || uid != opts.AdminID {
				logger.Warn(tghelpers.BuildContext(c), "tg", "access.rejected",
					slog.String("status", "rejected"),
					slog.Int64("user_id", uid),
				)
				if opts.OnReject != nil {
					return opts.OnReject(c)
				}
				return nil
			}
			return next(c)
		}
	}
}
