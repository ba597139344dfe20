package database

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

const pingTimeout = 10 * time.Second

type DB struct {
	*sql.DB
	Kind    Kind
	dialect dialect
}

// New opens a connection to the backend described by opts and pings it.
func New(ctx context.Context, opts Options) (*DB, error) {
	if opts.Kind == "" {
		opts.Kind = KindMySQL
	}
	if opts.Kind == KindDynamoDB {
		return nil, fmt.Errorf("%w: %s", ErrBackendNotSupported, opts.Kind)
	}

	d, ok := dialects[opts.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBackendNotSupported, opts.Kind)
	}

	var (
		db  *sql.DB
		err error
	)
	switch opts.Kind {
	case KindMySQL:
		db, err = sql.Open(d.driver, mysqlDSN(opts))
	case KindPostgres:
		db, err = openPostgres(opts)
	case KindSQLite:
		db, err = openSQLite(opts.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One shared connection unless configured otherwise
	maxOpen := opts.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 1
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxOpen)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}

	return &DB{DB: db, Kind: opts.Kind, dialect: d}, nil
}

func mysqlDSN(opts Options) string {
	port := opts.Port
	if port == 0 {
		port = 3306
	}

	cfg := mysql.NewConfig()
	cfg.User = opts.User
	cfg.Passwd = opts.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(opts.Host, strconv.Itoa(port))
	cfg.DBName = opts.Name
	return cfg.FormatDSN()
}

func openPostgres(opts Options) (*sql.DB, error) {
	connConfig, err := pgx.ParseConfig(postgresDSN(opts))
	if err != nil {
		return nil, err
	}
	return stdlib.OpenDB(*connConfig), nil
}

func postgresDSN(opts Options) string {
	port := opts.Port
	if port == 0 {
		port = 5432
	}
	sslMode := opts.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(opts.User, opts.Password),
		Host:     net.JoinHostPort(opts.Host, strconv.Itoa(port)),
		Path:     "/" + opts.Name,
		RawPath:  "/" + url.PathEscape(opts.Name),
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}
	return u.String()
}

func openSQLite(path string) (*sql.DB, error) {
	if path != ":memory:" {
		// Ensure directory exists
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if path != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	return db, nil
}
