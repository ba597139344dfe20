package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// Factory owns the process-wide database connection. It is created once at
// startup and handed to every repository that needs the backend.
type Factory struct {
	opts   Options
	logger *slog.Logger
	open   func(context.Context, Options) (*DB, error)

	mu sync.Mutex
	db *DB
}

func NewFactory(opts Options, logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{
		opts:   opts,
		logger: logger,
		open:   New,
	}
}

// Kind reports which backend the factory was configured for.
func (f *Factory) Kind() Kind {
	return f.opts.Kind
}

// CreateDatabase returns the shared connection, opening it on the first call.
// A failed open is not cached; the next call tries again.
func (f *Factory) CreateDatabase(ctx context.Context) (*DB, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.db != nil {
		return f.db, nil
	}

	db, err := f.open(ctx, f.opts)
	if err != nil {
		if errors.Is(err, ErrBackendNotSupported) {
			f.logger.Error("database backend not supported", "kind", f.opts.Kind)
			return nil, err
		}
		f.logger.Error("failed to connect to the database", "kind", f.opts.Kind, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrConnectionUnavailable, err)
	}

	f.logger.Info("connected to the database", "kind", f.opts.Kind)
	f.db = db
	return db, nil
}

// Close releases the shared connection if one was opened.
func (f *Factory) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.db == nil {
		return nil
	}
	err := f.db.Close()
	f.db = nil
	return err
}
