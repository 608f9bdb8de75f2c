package database

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Migrate(db))
	return db
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Migrate(db))

	_, err := db.Exec(`INSERT INTO teams (team_id, team_name) VALUES (2, 'India')`)
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM teams`).Scan(&count))
	assert.Equal(t, 1, count, "re-running migrations must not drop data")
}

func TestQueryScansRowsIntoTable(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO teams (team_id, team_name, team_sname) VALUES (2, 'India', 'IND'), (4, 'Australia', 'AUS')`)
	require.NoError(t, err)

	tbl, err := Query(ctx, db, `SELECT team_id, team_name FROM teams ORDER BY team_id`)
	require.NoError(t, err)
	assert.Equal(t, []string{"team_id", "team_name"}, tbl.Columns)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, int64(2), tbl.Rows[0][0])
	assert.Equal(t, "India", tbl.Rows[0][1])
}

func TestQueryConvertsBlobColumnsToStrings(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	tbl, err := Query(ctx, db, `SELECT CAST('raw bytes' AS BLOB) AS payload`)
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, "raw bytes", tbl.Rows[0][0])
}

func TestQueryDedupesDuplicateColumnNames(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	tbl, err := Query(ctx, db, `SELECT 1 AS n, 2 AS n, 3 AS n`)
	require.NoError(t, err)
	assert.Equal(t, []string{"n", "n_1", "n_2"}, tbl.Columns)
}

func TestQueryBindsArguments(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO teams (team_id, team_name) VALUES (2, 'India'), (4, 'Australia')`)
	require.NoError(t, err)

	tbl, err := Query(ctx, db, `SELECT team_name FROM teams WHERE team_id = ?`, 4)
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, "Australia", tbl.Rows[0][0])
}

func TestQueryRejectsBrokenSQL(t *testing.T) {
	db := newTestDB(t)

	_, err := Query(context.Background(), db, `SELEC nope`)
	assert.Error(t, err)
}
