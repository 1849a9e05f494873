package db

import (
	"database/sql"
	_ "embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var migrationsSQL string

// Options configures how the SQLite database is opened.
type Options struct {
	// Path is the database file. ":memory:" opens a private in-memory database
	// and always uses a single connection.
	Path string
	// MaxOpenConns caps the connection pool. SQLite allows a single writer, so
	// the default of 1 serialises writers inside the pool instead of surfacing
	// SQLITE_BUSY to callers.
	MaxOpenConns int
	// BusyTimeout is how long SQLite waits on a locked database file.
	BusyTimeout time.Duration
}

// Open opens the database described by opts and runs migrations.
func Open(opts Options) (*sqlx.DB, error) {
	if opts.Path == "" {
		return nil, fmt.Errorf("database path must be non-empty")
	}
	// Every connection to ":memory:" is a separate empty database.
	if opts.MaxOpenConns <= 0 || opts.Path == ":memory:" {
		opts.MaxOpenConns = 1
	}
	if opts.BusyTimeout <= 0 {
		opts.BusyTimeout = 5 * time.Second
	}

	if opts.Path != ":memory:" {
		if dir := filepath.Dir(opts.Path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create database directory: %w", err)
			}
		}
	}

	conn, err := sqlx.Open("sqlite3", dsn(opts))
	if err != nil {
		return nil, fmt.Errorf("sqlx.Open: %w", err)
	}
	conn.SetMaxOpenConns(opts.MaxOpenConns)

	if err := InitDB(conn.DB); err != nil {
		conn.Close()
		return nil, fmt.Errorf("init db: %w", err)
	}
	return conn, nil
}

func dsn(opts Options) string {
	params := url.Values{}
	params.Set("_busy_timeout", fmt.Sprintf("%d", opts.BusyTimeout.Milliseconds()))
	params.Set("_foreign_keys", "on")
	if opts.Path != ":memory:" {
		params.Set("_journal_mode", "WAL")
	}
	return "file:" + opts.Path + "?" + params.Encode()
}

// InitDB runs migrations on the given DB connection using the embedded SQL.
func InitDB(db *sql.DB) error {
	stmts := strings.Split(migrationsSQL, ";")
	for _, s := range stmts {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}
