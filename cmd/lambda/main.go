package main

import (
	"log/slog"
	"os"

	"serverless-crud/config"
	"serverless-crud/config/setup"
	"serverless-crud/handlers"

	"github.com/aws/aws-lambda-go/lambda"
)

// One binary for every function: HANDLER picks which users handler this
// deployment serves, the proxy router when unset.
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

	h, ok := handlers.ByName(application, cfg.Handler)
	if !ok {
		logger.Error("unknown handler", "handler", cfg.Handler)
		os.Exit(1)
	}

	logger.Info("starting lambda", "handler", cfg.Handler, "db", factory.Kind())
	lambda.Start(h)
}
