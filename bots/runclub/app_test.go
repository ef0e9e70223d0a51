package runclub

import (
	"context"
	"errors"
	"testing"

	botconfig "github.com/m3rciful/runclub/bots/runclub/config"
	"github.com/m3rciful/runclub/core/bootstrap"
	coreconfig "github.com/m3rciful/runclub/core/config"
	tg "github.com/m3rciful/runclub/core/telegram"

	tele "gopkg.in/telebot.v4"
)

func testConfig() *botconfig.Config {
	cfg := &botconfig.Config{}
	cfg.Telegram.Token = "t"
	cfg.Telegram.AdminID = 7
	cfg.Operator.ChatID = 7
	return cfg
}

func noLogger(*coreconfig.Config) error { return nil }

func TestNewWithoutDatabase(t *testing.T) {
	app, err := New(testConfig(), bootstrap.Options{LoggerInit: noLogger})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer app.queue.Close()

	opts, err := app.TelegramRunOptions()
	if err != nil {
		t.Fatal(err)
	}
	if opts.Config.Telegram.Token != "t" || opts.Registry == nil || opts.Dispatcher != app.queue {
		t.Fatalf("run options: %+v", opts)
	}
	endpoints := map[any]bool{}
	for _, r := range opts.Routes {
		endpoints[r.Endpoint] = true
	}
	for _, want := range []any{"/start", "/bookings", tele.OnCallback, tele.OnText} {
		if !endpoints[want] {
			t.Errorf("route %v missing", want)
		}
	}
	if err := opts.OnStop(context.Background(), tg.Runtime{}); err != nil {
		t.Fatalf("stop: %v", err)
	}
}

func TestNewFailsOnBootstrapError(t *testing.T) {
	boom := errors.New("boom")
	_, err := New(testConfig(), bootstrap.Options{LoggerInit: func(*coreconfig.Config) error { return boom }})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
}

func TestBootstrapRejectsForeignConfig(t *testing.T) {
	if _, err := Bootstrap(foreign{}); err == nil {
		t.Fatal("expected type error")
	}
}

type foreign struct{}

func (foreign) CoreConfig() *coreconfig.Config { return &coreconfig.Config{} }

func TestLateBotBeforeStart(t *testing.T) {
	var b lateBot
	if _, err := b.Send(tele.ChatID(1), "hi"); !errors.Is(err, errBotNotReady) {
		t.Fatalf("err = %v", err)
	}
}
