package middleware

import (
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/m3rciful/runclub/core/logger"
	tghelpers "github.com/m3rciful/runclub/core/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

// RateLimitOptions configures behaviour of the rate limit middleware.
// Each user gets a token bucket refilled with one token per Interval holding up to Burst tokens.
type RateLimitOptions struct {
	Interval  time.Duration
	Burst     int
	Exclude   map[string]struct{}
	OnLimited tele.HandlerFunc
	// IdleTTL drops buckets of users silent for longer than this; 0 means 10 minutes.
	IdleTTL time.Duration

	now func() time.Time
}

type userBucket struct {
	lim  *rate.Limiter
	seen time.Time
}

type limiterSet struct {
	mu      sync.Mutex
	buckets map[int64]*userBucket
	every   rate.Limit
	burst   int
	ttl     time.Duration
	lastGC  time.Time
}

func (s *limiterSet) allow(userID int64, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.lastGC) > s.ttl {
		for id, b := range s.buckets {
			if now.Sub(b.seen) > s.ttl {
				delete(s.buckets, id)
			}
		}
		s.lastGC = now
	}

	b, ok := s.buckets[userID]
	if !ok {
		b = &userBucket{lim: rate.NewLimiter(s.every, s.burst)}
		s.buckets[userID] = b
	}
	b.seen = now
	return b.lim.AllowN(now, 1)
}

// UpdateKind classifies an update for rate-limit exclusions.
func UpdateKind(upd tele.Update) string {
	switch {
	case upd.Callback != nil:
		return "callback"
	case upd.Message != nil:
		return "message"
	case upd.Query != nil:
		return "inline_query"
	}
	return "other"
}

// RateLimitMiddleware returns a middleware that throttles each user with a token bucket.
func RateLimitMiddleware(opts RateLimitOptions) tele.MiddlewareFunc {
	if opts.Burst <= 0 {
		opts.Burst = 1
	}
	if opts.IdleTTL <= 0 {
		opts.IdleTTL = 10 * time.Minute
	}
	now := opts.now
	if now == nil {
		now = time.Now
	}
	set := &limiterSet{
		buckets: make(map[int64]*userBucket),
		every:   rate.Every(opts.Interval),
		burst:   opts.Burst,
		ttl:     opts.IdleTTL,
	}

	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			user := c.Sender()
			if user == nil || opts.Interval <= 0 {
				return next(c)
			}
			kind := UpdateKind(c.Update())
			if _, skip := opts.Exclude[kind]; skip {
				return next(c)
			}

			if set.allow(user.ID, now()) {
				return next(c)
			}

			logger.Warn(tghelpers.BuildContext(c), "tg", "tg.rate_limit",
				slog.String("status", "rate_limited"),
				slog.String("kind", kind),
				slog.Int64("user_id", user.ID),
			)
			if kind == "callback" {
				_ = c.Respond()
			}
			if opts.OnLimited != nil {
				_ = opts.OnLimited(c)
			}
			return nil
		}
	}
}
