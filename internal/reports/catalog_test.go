package reports

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubhanshu2113/CricBuzz/pkg/database"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// Every canned query must at least execute against the schema it was
// written for.
func TestCatalogQueriesExecute(t *testing.T) {
	db := newTestDB(t)

	for _, q := range Catalog {
		_, err := database.Query(context.Background(), db, q.SQL)
		assert.NoError(t, err, "query %s", q.Name)
	}
}

func TestCatalogNamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, q := range Catalog {
		assert.False(t, seen[q.Name], "duplicate name %s", q.Name)
		seen[q.Name] = true
	}
}

func TestLookup(t *testing.T) {
	q, ok := Lookup("team_wins")
	require.True(t, ok)
	assert.Equal(t, "team_wins", q.Name)

	_, ok = Lookup("no_such_query")
	assert.False(t, ok)
}

func TestTeamWinsQueryCountsParsedWinners(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Exec(`
		INSERT INTO matches (match_id, state, status, team1_name, team2_name)
		VALUES
		  (1, 'Complete', 'India won by 10 wkts', 'Sri Lanka', 'India'),
		  (2, 'Complete', 'India won by 6 runs', 'India', 'Australia'),
		  (3, 'In Progress', 'Day 2', 'England', 'India')
	`)
	require.NoError(t, err)

	table, err := database.Query(context.Background(), db, mustLookup(t, "team_wins").SQL)
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "India", table.Rows[0][0])
	assert.Equal(t, int64(2), table.Rows[0][1])
}

func mustLookup(t *testing.T, name string) NamedQuery {
	t.Helper()

	q, ok := Lookup(name)
	require.True(t, ok)
	return q
}
