package cmd

import (
	"context"
	"errors"
	"testing"

	coreconfig "github.com/m3rciful/runclub/core/config"
	coretelegram "github.com/m3rciful/runclub/core/telegram"
	"github.com/m3rciful/runclub/core/telegram/sender"
)

type stubConfig struct{ core *coreconfig.Config }

func (s stubConfig) CoreConfig() *coreconfig.Config { return s.core }

type stubApp struct{ opts coretelegram.RunOptions }

func (a stubApp) TelegramRunOptions() (coretelegram.RunOptions, error) { return a.opts, nil }

func TestRunUsesEnvPathAndWrapsHooks(t *testing.T) {
	t.Setenv("RUNCLUB_TEST_CONFIG", "/etc/runclub.yaml")
	var (
		gotPath     string
		stopped     bool
		loggerFlush bool
	)
	err := Run(Options{
		ConfigEnvVar:      "RUNCLUB_TEST_CONFIG",
		DefaultConfigPath: "config.yaml",
		LoadConfig: func(path string) (ConfigCarrier, error) {
			gotPath = path
			return stubConfig{core: &coreconfig.Config{}}, nil
		},
		Bootstrap: func(ConfigCarrier) (TelegramApp, error) {
			return stubApp{opts: coretelegram.RunOptions{
				OnStop: func(context.Context, coretelegram.Runtime) error {
					stopped = true
					return nil
				},
			}}, nil
		},
		ShutdownLogger: func() error {
			loggerFlush = true
			return nil
		},
		RunTelegram: func(ctx context.Context, opts coretelegram.RunOptions) error {
			if opts.OnStart == nil || opts.OnStop == nil {
				t.Fatal("lifecycle hooks not wrapped")
			}
			q := sender.NewDispatcher(sender.Options{})
			defer q.Close()
			rt := coretelegram.Runtime{Registry: coretelegram.NewRegistry(), Dispatcher: q}
			if err := opts.OnStart(ctx, rt); err != nil {
				return err
			}
			return opts.OnStop(ctx, rt)
		},
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if gotPath != "/etc/runclub.yaml" {
		t.Fatalf("config path = %q", gotPath)
	}
	if !stopped || !loggerFlush {
		t.Fatalf("stopped=%v loggerFlush=%v", stopped, loggerFlush)
	}
}

func TestRunRequiresCallbacks(t *testing.T) {
	if err := Run(Options{}); err == nil {
		t.Fatal("expected error without LoadConfig")
	}
	boom := errors.New("boom")
	err := Run(Options{
		DefaultConfigPath: "config.yaml",
		LoadConfig:        func(string) (ConfigCarrier, error) { return nil, boom },
		Bootstrap:         func(ConfigCarrier) (TelegramApp, error) { return nil, nil },
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
}
