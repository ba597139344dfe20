package app

import (
	"log/slog"

	"serverless-crud/database"
	"serverless-crud/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Users     database.Repository
	Validator *validator.Validator
	Logger    *slog.Logger
}

// New creates a new App instance with all dependencies
func New(users database.Repository, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		Users:     users,
		Validator: validator.New(),
		Logger:    logger,
	}
}
