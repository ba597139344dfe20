package setup

import (
	"log/slog"

	"serverless-crud/app"
	"serverless-crud/config"
	"serverless-crud/database"
)

// InitDatabase creates the factory owning the process-wide connection.
// The connection itself is opened lazily by the first repository Init.
func InitDatabase(cfg *config.Config, logger *slog.Logger) *database.Factory {
	factory := database.NewFactory(cfg.DatabaseOptions(), logger)
	logger.Info("database factory configured", "kind", factory.Kind(), "table", cfg.TableName)
	return factory
}

// InitApp initializes the application with all dependencies
func InitApp(cfg *config.Config, factory *database.Factory, logger *slog.Logger) (*app.App, error) {
	users, err := database.NewUserRepository(factory, cfg.TableName)
	if err != nil {
		return nil, err
	}

	application := app.New(users, logger)
	logger.Info("application initialized with dependency injection")

	return application, nil
}

// Shutdown performs graceful shutdown of all services
func Shutdown(factory *database.Factory, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if factory != nil {
		if err := factory.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
			return
		}
		logger.Info("database closed")
	}
}
