// Package database contains the logic for establishing
// the connection to the SQLite database.
//
// It owns the single process-wide handle every repository
// shares, and it normalizes query results into field-named
// row maps (column name -> value) so entity factories never
// touch *sql.Rows directly.
//
// It handles:
//   - building the SQLite DSN from config
//   - opening the database file and pinning it to one connection
//   - pinging with a timeout so startup fails fast
//   - lifecycle logging (connect/close)
package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	// Registers the "sqlite3" driver with database/sql.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/deppfellow/questions/internal/config"
)

// Database wraps the sql.DB handle and a logger.
// It provides a simple object you can pass around the app.
type Database struct {
	DB  *sql.DB
	log *zerolog.Logger
}

// DatabasePingTimeout defines the number of seconds to wait for a ping
// before considering the database unreachable.
const DatabasePingTimeout = 10

// New opens the SQLite database described by cfg.
//
// The handle is restricted to a single connection: SQLite is a
// single-writer engine and every repository in the process is meant to
// share one connection for the process lifetime. Foreign key enforcement
// and the busy timeout are applied through DSN parameters so they hold
// for the connection's whole life.
func New(cfg *config.Config, logger *zerolog.Logger) (*Database, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=%d&_foreign_keys=%s",
		cfg.Database.Path,
		cfg.Database.BusyTimeout,
		strconv.FormatBool(cfg.Database.ForeignKeys),
	)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One shared connection for the process. This also keeps ":memory:"
	// databases coherent, since each new connection would otherwise get
	// its own empty in-memory database.
	db.SetMaxOpenConns(1)

	database := &Database{
		DB:  db,
		log: logger,
	}

	// Ping with a timeout, so startup fails fast if the file is unusable.
	ctx, cancel := context.WithTimeout(context.Background(), DatabasePingTimeout*time.Second)
	defer cancel()
	if err = db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().Str("path", cfg.Database.Path).Msg("connected to the database")

	return database, nil
}

// Select runs a read query and returns every result row as a field-named
// Row map. A query matching nothing returns an empty, non-nil slice.
func (db *Database) Select(ctx context.Context, query string, args ...any) ([]Row, error) {
	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	results := make([]Row, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}

		row := make(Row, len(columns))
		for i, column := range columns {
			row[column] = values[i]
		}
		results = append(results, row)
	}

	return results, rows.Err()
}

// Get runs a read query expected to match at most one row and returns it,
// or nil when nothing matched.
func (db *Database) Get(ctx context.Context, query string, args ...any) (Row, error) {
	rows, err := db.Select(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// Insert executes an INSERT statement and returns the id storage assigned
// to the new row.
func (db *Database) Insert(ctx context.Context, query string, args ...any) (int64, error) {
	result, err := db.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// Exec executes a write statement and returns the number of affected rows.
func (db *Database) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	result, err := db.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// Close closes the database handle.
func (db *Database) Close() error {
	db.log.Info().Msg("closing database connection")
	return db.DB.Close()
}
