package database

import (
	"context"
	"fmt"
	"regexp"
	"sync"

	"serverless-crud/models"
)

// Repository is the capability set the users handlers depend on.
type Repository interface {
	Init(ctx context.Context) error
	CreateTable(ctx context.Context) error
	GetAllItems(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Create(ctx context.Context, name string) (int64, error)
	Update(ctx context.Context, user models.User) error
	Delete(ctx context.Context, id int64) error
}

// Connector hands out the shared backend connection. *Factory implements it.
type Connector interface {
	CreateDatabase(ctx context.Context) (*DB, error)
}

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,63}$`)

// UserRepository stores users in a relational table whose name is fixed at construction.
type UserRepository struct {
	connector Connector
	table     string

	mu sync.RWMutex
	db *DB
}

var _ Repository = (*UserRepository)(nil)

func NewUserRepository(connector Connector, table string) (*UserRepository, error) {
	// The table name is interpolated into SQL text, so only plain identifiers are accepted
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTableName, table)
	}
	return &UserRepository{connector: connector, table: table}, nil
}

// Table returns the configured table name.
func (r *UserRepository) Table() string {
	return r.table
}

// Init obtains the backend connection. It must succeed before any other operation.
func (r *UserRepository) Init(ctx context.Context) error {
	db, err := r.connector.CreateDatabase(ctx)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.db = db
	r.mu.Unlock()
	return nil
}

func (r *UserRepository) conn() (*DB, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.db == nil {
		return nil, ErrNotInitialized
	}
	return r.db, nil
}
