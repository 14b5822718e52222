package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"tramibot/cmd/scheduler/services"
	"tramibot/config"
	"tramibot/eventbus"
	"tramibot/scanner"
	"tramibot/scheduler"
)

func main() {
	config.InitApp()
	cfg := config.GetConfig()
	config.InitLogger(cfg.Logging)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	secrets := config.LoadSecrets()

	scan, _, err := scanner.NewFromConfig(ctx, cfg, secrets)
	if err != nil {
		config.Logger.Errorf("failed to build scanner: %v", err)
		os.Exit(1)
	}

	if secrets.KafkaBrokers != "" {
		if err := eventbus.EnsureTopics(ctx, secrets.KafkaBrokers, eventbus.AllTopics, 1); err != nil {
			config.Logger.Errorf("failed to ensure eventbus topics: %v", err)
		}
	}
	publisher, err := eventbus.New(secrets)
	if err != nil {
		config.Logger.Errorf("failed to create event bus: %v", err)
		os.Exit(1)
	}
	defer publisher.Close()

	next, err := scheduler.FromConfig(cfg.Scheduler)
	if err != nil {
		config.Logger.Errorf("invalid scheduler config: %v", err)
		os.Exit(1)
	}

	svc := NewScanService(scan, services.NewEventService(publisher), cfg.Scanner.DisplayLimit)
	trigger := scheduler.New(svc.RunOnce, next,
		scheduler.WithName("bulletin-scan"),
		scheduler.WithRunOnStart(cfg.Scheduler.RunOnStart),
	)

	config.Logger.Infof("scheduler started: daily at %s (%s)", cfg.Scheduler.DailyAt, cfg.Scheduler.Timezone)
	if err := trigger.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		config.Logger.Errorf("scheduler stopped: %v", err)
		return
	}
	config.Logger.Info("scheduler stopped")
}
