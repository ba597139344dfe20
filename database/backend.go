package database

import (
	"errors"
	"strconv"
	"strings"
)

// Kind names a storage backend. The set is closed: anything else parses as KindMySQL.
type Kind string

const (
	KindMySQL    Kind = "mysql"
	KindPostgres Kind = "postgres"
	KindSQLite   Kind = "sqlite"
	// KindDynamoDB is the document store variant. It has no implementation yet.
	KindDynamoDB Kind = "dynamodb"
)

var (
	ErrBackendNotSupported   = errors.New("database backend not supported yet")
	ErrConnectionUnavailable = errors.New("database connection unavailable")
	ErrNotInitialized        = errors.New("repository not initialized")
	ErrInvalidTableName      = errors.New("invalid table name")
)

// ParseKind maps a DB_TYPE value onto a Kind. Empty and unknown values fall back to MySQL.
func ParseKind(s string) Kind {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindPostgres, "postgresql", "pg":
		return KindPostgres
	case KindSQLite, "sqlite3":
		return KindSQLite
	case KindDynamoDB:
		return KindDynamoDB
	default:
		return KindMySQL
	}
}

// Options holds what is needed to open a backend connection.
type Options struct {
	Kind     Kind
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string

	// Path is the database file for KindSQLite. ":memory:" is accepted.
	Path string

	// MaxOpenConns caps the pool; zero means a single shared connection.
	MaxOpenConns int
}

type dialect struct {
	driver      string
	createTable string
	numbered    bool
	returningID bool
}

var dialects = map[Kind]dialect{
	KindMySQL: {
		driver: "mysql",
		createTable: `CREATE TABLE IF NOT EXISTS %s (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL
		)`,
	},
	KindPostgres: {
		driver: "pgx",
		createTable: `CREATE TABLE IF NOT EXISTS %s (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL
		)`,
		numbered:    true,
		returningID: true,
	},
	KindSQLite: {
		driver: "sqlite3",
		createTable: `CREATE TABLE IF NOT EXISTS %s (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL
		)`,
	},
}

// rebind rewrites ? placeholders into $1, $2, ... for drivers that need numbered ones.
func (d dialect) rebind(query string) string {
	if !d.numbered {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
