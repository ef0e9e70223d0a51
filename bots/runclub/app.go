// Package runclub wires the run-club booking bot onto the shared core.
package runclub

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/m3rciful/runclub/bots/runclub/booking"
	"github.com/m3rciful/runclub/bots/runclub/catalog"
	botconfig "github.com/m3rciful/runclub/bots/runclub/config"
	"github.com/m3rciful/runclub/bots/runclub/confirm"
	"github.com/m3rciful/runclub/bots/runclub/handlers"
	"github.com/m3rciful/runclub/bots/runclub/notify"
	"github.com/m3rciful/runclub/bots/runclub/storage"
	"github.com/m3rciful/runclub/core/bootstrap"
	corecmd "github.com/m3rciful/runclub/core/cmd"
	"github.com/m3rciful/runclub/core/logger"
	tg "github.com/m3rciful/runclub/core/telegram"
	"github.com/m3rciful/runclub/core/telegram/router"
	"github.com/m3rciful/runclub/core/telegram/sender"

	tele "gopkg.in/telebot.v4"
)

// App holds the assembled bot.
type App struct {
	cfg      *botconfig.Config
	infra    *bootstrap.Result
	handlers *handlers.Handlers
	registry *tg.Registry
	queue    *sender.Dispatcher
	bot      *lateBot
}

// LoadConfig adapts botconfig.Load for the core runner.
func LoadConfig(path string) (corecmd.ConfigCarrier, error) {
	return botconfig.Load(path)
}

// Bootstrap builds the app from a loaded configuration.
func Bootstrap(carrier corecmd.ConfigCarrier) (corecmd.TelegramApp, error) {
	cfg, ok := carrier.(*botconfig.Config)
	if !ok {
		return nil, fmt.Errorf("runclub: unexpected config type %T", carrier)
	}
	return New(cfg, bootstrap.Options{})
}

// New runs the bootstrap pipeline and assembles every component.
// Zero-valued fields of bo use the production defaults.
func New(cfg *botconfig.Config, bo bootstrap.Options) (*App, error) {
	if cfg == nil {
		return nil, errors.New("runclub: nil config")
	}
	bo.Config = cfg.CoreConfig()
	bo.Database = cfg.Database
	infra, err := bootstrap.Run(bo)
	if err != nil {
		return nil, err
	}

	app, err := assemble(cfg, infra)
	if err != nil {
		_ = infra.Close()
		return nil, err
	}
	return app, nil
}

func assemble(cfg *botconfig.Config, infra *bootstrap.Result) (*App, error) {
	ctx := context.Background()

	cat, err := catalog.Default()
	if err != nil {
		logger.LogEvent(ctx, logger.Catalog, slog.LevelError, "catalog.validate",
			slog.String("status", "fail"),
			slog.String("err", err.Error()),
		)
		return nil, err
	}
	logger.LogEvent(ctx, logger.Catalog, slog.LevelInfo, "catalog.validate",
		slog.String("status", "ok"),
		slog.Int("days", len(cat.Days())),
		slog.Int("slots", len(cat.SlotIDs())),
	)

	machine, err := booking.NewMachine(cat, booking.Options{KeepDraftOnChange: cfg.Booking.KeepDraftOnChange})
	if err != nil {
		return nil, err
	}
	formatter := confirm.New(machine, confirm.Options{
		PaymentInfo:  cfg.Club.PaymentInfo,
		ContactAdmin: cfg.Club.ContactAdmin,
		CoachHandle:  cfg.Club.CoachHandle,
	})

	var journal storage.Journal = storage.Noop{}
	if infra.DB != nil {
		pg, err := storage.NewPostgres(infra.DB)
		if err != nil {
			return nil, err
		}
		journal = pg
	}

	queue := sender.NewDispatcher(sender.Options{
		QueueSize:    256,
		Workers:      2,
		MaxRetries:   3,
		RetryBackoff: 500 * time.Millisecond,
		MaxDuration:  30 * time.Second,
	})
	bot := &lateBot{}
	notifier := notify.New(notify.Deps{
		Sender:    bot,
		Queue:     queue,
		Journal:   journal,
		Formatter: formatter,
	}, notify.Options{
		OperatorChatID: cfg.Operator.ChatID,
		MirrorMessages: cfg.Operator.MirrorMessages,
	})

	h, err := handlers.New(handlers.Deps{
		Machine:   machine,
		Formatter: formatter,
		Notifier:  notifier,
		Journal:   journal,
		Club: handlers.Club{
			Address:     cfg.Club.Address,
			MapLink:     cfg.Club.MapLink,
			CoachHandle: cfg.Club.CoachHandle,
		},
	})
	if err != nil {
		queue.Close()
		return nil, err
	}
	reg := tg.NewRegistry()
	if err := h.Register(reg); err != nil {
		queue.Close()
		return nil, fmt.Errorf("runclub: register handlers: %w", err)
	}

	logger.LogEvent(ctx, logger.Notify, slog.LevelInfo, "notify.configured",
		slog.String("status", "ok"),
		slog.Bool("operator", notifier.HasOperator()),
		slog.Bool("journal", infra.DB != nil),
		slog.Bool("mirror", cfg.Operator.MirrorMessages),
	)

	return &App{cfg: cfg, infra: infra, handlers: h, registry: reg, queue: queue, bot: bot}, nil
}

// TelegramRunOptions describes the runtime: middlewares, routes and lifecycle hooks.
func (a *App) TelegramRunOptions() (tg.RunOptions, error) {
	core := a.cfg.CoreConfig()
	textOpts, cbOpts := router.FallbackOptions(a.handlers)
	textOpts.AfterText = a.handlers.AfterText

	routes := router.CommandRoutes(a.registry, router.CommandRouteOptions{AdminID: core.Telegram.AdminID})
	routes = append(routes, router.CallbackRoute(a.registry, cbOpts))
	routes = append(routes, router.TextRoutes(a.handlers.FSM(), a.registry, textOpts)...)

	return tg.RunOptions{
		Config:      core,
		Registry:    a.registry,
		Dispatcher:  a.queue,
		Middlewares: tg.DefaultMiddlewares(core, a.handlers.RateLimited),
		Routes:      routes,
		OnBot: func(b *tele.Bot) error {
			a.bot.set(b)
			return nil
		},
		OnStop: func(ctx context.Context, rt tg.Runtime) error {
			logger.Info(ctx, "app", "sessions.drop",
				slog.String("status", "ok"),
				slog.Int("active", a.handlers.Sessions().Len()),
			)
			return a.infra.Close()
		},
	}, nil
}

var errBotNotReady = errors.New("runclub: bot not started")

// lateBot lets the notifier exist before the runtime creates the bot.
type lateBot struct {
	p atomic.Pointer[tele.Bot]
}

func (l *lateBot) set(b *tele.Bot) { l.p.Store(b) }

func (l *lateBot) Send(to tele.Recipient, what any, opts ...any) (*tele.Message, error) {
	b := l.p.Load()
	if b == nil {
		return nil, errBotNotReady
	}
	return b.Send(to, what, opts...)
}
