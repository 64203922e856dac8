// Package dbtest provides shared test fixtures for packages that need a
// real database: an in-memory SQLite handle with the schema this layer
// assumes to exist.
//
// The schema lives here, in test support code, on purpose: the layer
// itself never creates or migrates tables.
package dbtest

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/questions/internal/config"
	"github.com/deppfellow/questions/internal/database"
)

// Schema mirrors the tables described in the storage contract.
var Schema = []string{
	`CREATE TABLE users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		fname TEXT NOT NULL,
		lname TEXT NOT NULL
	)`,
	`CREATE TABLE questions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		body TEXT NOT NULL,
		associated_author_id INTEGER NOT NULL REFERENCES users(id)
	)`,
	`CREATE TABLE replies (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		subject_question_id INTEGER NOT NULL REFERENCES questions(id),
		parent_reply_id INTEGER REFERENCES replies(id),
		user_id INTEGER NOT NULL REFERENCES users(id),
		body TEXT NOT NULL
	)`,
	`CREATE TABLE question_followers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id),
		question_id INTEGER NOT NULL REFERENCES questions(id)
	)`,
	`CREATE TABLE question_likes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id),
		question_id INTEGER NOT NULL REFERENCES questions(id)
	)`,
}

// Config returns a config pointing at an in-memory database.
func Config() *config.Config {
	return &config.Config{
		Primary: config.Primary{Env: "test"},
		Database: config.DatabaseConfig{
			Path:        ":memory:",
			BusyTimeout: 1000,
			ForeignKeys: true,
		},
	}
}

// New opens an in-memory database and applies the schema. The handle's
// single-connection limit keeps the memory database alive and shared for
// the whole test; it is closed on cleanup.
func New(t *testing.T) *database.Database {
	t.Helper()

	log := zerolog.Nop()
	db, err := database.New(Config(), &log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	for _, statement := range Schema {
		_, err := db.Exec(context.Background(), statement)
		require.NoError(t, err)
	}

	return db
}
