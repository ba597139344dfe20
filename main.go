package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"serverless-crud/config"
	"serverless-crud/config/setup"
)

// Local gateway: serves the users handlers over HTTP the way API Gateway would invoke them.
func main() {
	config.Load()
	cfg := config.AppConfig

	logger := setup.NewLogger(cfg, os.Stdout)
	slog.SetDefault(logger)

	factory := setup.InitDatabase(cfg, logger)

	application, err := setup.InitApp(cfg, factory, logger)
	if err != nil {
		logger.Error("failed to initialize application", "error", err)
		os.Exit(1)
	}

	app := setup.NewFiberApp(cfg, logger)
	setup.ApplyMiddleware(app, logger)
	setup.RegisterRoutes(app, application)

	logger.Info("starting server", "port", cfg.Port, "env", cfg.Env, "db", factory.Kind())

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	setup.Shutdown(factory, logger)
	logger.Info("server stopped")
}
