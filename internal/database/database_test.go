package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/questions/internal/dbtest"
)

// TestSelectReturnsFieldNamedRows verifies rows come back keyed by column
// name with driver-native value types.
func TestSelectReturnsFieldNamedRows(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()

	_, err := db.Insert(ctx, `INSERT INTO users(fname, lname) VALUES (?, ?)`, "Ada", "Lovelace")
	require.NoError(t, err)

	rows, err := db.Select(ctx, `SELECT * FROM users`)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	id, err := rows[0].Int64("id")
	require.NoError(t, err)
	assert.EqualValues(t, 1, id)

	fname, err := rows[0].String("fname")
	require.NoError(t, err)
	assert.Equal(t, "Ada", fname)
}

// TestSelectEmpty verifies a query matching nothing yields an empty,
// non-nil slice.
func TestSelectEmpty(t *testing.T) {
	db := dbtest.New(t)

	rows, err := db.Select(context.Background(), `SELECT * FROM users`)
	require.NoError(t, err)
	require.NotNil(t, rows)
	assert.Empty(t, rows)
}

// TestGet verifies single-row retrieval and the nil result for no match.
func TestGet(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()

	_, err := db.Insert(ctx, `INSERT INTO users(fname, lname) VALUES (?, ?)`, "Ada", "Lovelace")
	require.NoError(t, err)

	row, err := db.Get(ctx, `SELECT * FROM users WHERE id = ?`, 1)
	require.NoError(t, err)
	require.NotNil(t, row)

	missing, err := db.Get(ctx, `SELECT * FROM users WHERE id = ?`, 42)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

// TestInsertAssignsSequentialIDs verifies storage hands out fresh ids.
func TestInsertAssignsSequentialIDs(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()

	first, err := db.Insert(ctx, `INSERT INTO users(fname, lname) VALUES (?, ?)`, "Ada", "Lovelace")
	require.NoError(t, err)
	second, err := db.Insert(ctx, `INSERT INTO users(fname, lname) VALUES (?, ?)`, "Alan", "Turing")
	require.NoError(t, err)

	assert.EqualValues(t, 1, first)
	assert.EqualValues(t, 2, second)
}

// TestExecReportsAffectedRows verifies Exec's affected-row count.
func TestExecReportsAffectedRows(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()

	_, err := db.Insert(ctx, `INSERT INTO users(fname, lname) VALUES (?, ?)`, "Ada", "Lovelace")
	require.NoError(t, err)

	affected, err := db.Exec(ctx, `UPDATE users SET lname = ? WHERE id = ?`, "Byron", 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	none, err := db.Exec(ctx, `UPDATE users SET lname = ? WHERE id = ?`, "Byron", 42)
	require.NoError(t, err)
	assert.EqualValues(t, 0, none)
}
