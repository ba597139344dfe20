package database

import (
	"context"
	"database/sql"
	"fmt"

	"serverless-crud/models"
)

// ==================== USER OPERATIONS ====================

// CreateTable creates the users table if it does not exist yet
func (r *UserRepository) CreateTable(ctx context.Context) error {
	db, err := r.conn()
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, fmt.Sprintf(db.dialect.createTable, r.table)); err != nil {
		return fmt.Errorf("failed to create table %s: %w", r.table, err)
	}
	return nil
}

// GetAllItems returns every user in the table
func (r *UserRepository) GetAllItems(ctx context.Context) ([]models.User, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, fmt.Sprintf("SELECT id, name FROM %s", r.table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Initialize with empty slice to avoid returning nil
	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Name); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// GetByID retrieves a user by ID. A missing row yields (nil, nil).
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}

	var user models.User
	query := db.dialect.rebind(fmt.Sprintf("SELECT id, name FROM %s WHERE id = ?", r.table))
	err = db.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.Name)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Create inserts a user and returns the id assigned by the store
func (r *UserRepository) Create(ctx context.Context, name string) (int64, error) {
	db, err := r.conn()
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf("INSERT INTO %s (name) VALUES (?)", r.table)

	if db.dialect.returningID {
		var id int64
		if err := db.QueryRowContext(ctx, db.dialect.rebind(query+" RETURNING id"), name).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}

	result, err := db.ExecContext(ctx, db.dialect.rebind(query), name)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// Update renames a user. Updating a missing id is a no-op.
func (r *UserRepository) Update(ctx context.Context, user models.User) error {
	db, err := r.conn()
	if err != nil {
		return err
	}

	query := db.dialect.rebind(fmt.Sprintf("UPDATE %s SET name = ? WHERE id = ?", r.table))
	_, err = db.ExecContext(ctx, query, user.Name, user.ID)
	return err
}

// Delete removes a user. Deleting a missing id is a no-op.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	db, err := r.conn()
	if err != nil {
		return err
	}

	query := db.dialect.rebind(fmt.Sprintf("DELETE FROM %s WHERE id = ?", r.table))
	_, err = db.ExecContext(ctx, query, id)
	return err
}
