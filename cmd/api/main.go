package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"tramibot/cmd/api/router"
	"tramibot/cmd/api/services"
	"tramibot/config"
	"tramibot/guidance"
	"tramibot/scanner"
)

const shutdownTimeout = 10 * time.Second

// @title           tramibot API
// @version         1.0
// @description     Spanish immigration bulletin monitor: scan, impact analysis and procedure guidance
// @BasePath        /api/v1
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	config.InitLogger(cfg.Logging)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scan, sum, err := scanner.NewFromConfig(ctx, cfg, config.LoadSecrets())
	if err != nil {
		config.Logger.Errorf("failed to build scanner: %v", err)
		os.Exit(1)
	}

	engine := router.New(router.Deps{
		Updates:  services.NewUpdateService(scan, cfg.Scanner.DisplayLimit),
		Guidance: services.NewGuidanceService(guidance.NewService(sum)),
		Backends: sum.Backends(),
	})

	srv := &http.Server{
		Addr:              cfg.API.Addr,
		Handler:           router.WithCORS(engine, cfg.API.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		config.Logger.Infof("api listening on %s", cfg.API.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		config.Logger.Info("api shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		config.Logger.Errorf("api stopped with error: %v", err)
		os.Exit(1)
	}
}
