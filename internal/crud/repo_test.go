package crud

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubhanshu2113/CricBuzz/pkg/database"
	"github.com/shubhanshu2113/CricBuzz/pkg/models"
)

func newTestRepo(t *testing.T) *Repo {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))
	return NewRepo(db)
}

func TestTeamLifecycle(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.InsertTeam(ctx, models.Team{TeamID: 2, TeamName: "India", TeamSName: "IND"}))

	teams, err := repo.ListTeams(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, "India", teams[0].TeamName)

	updated, err := repo.UpdateTeam(ctx, 2, "India Men", "INDM")
	require.NoError(t, err)
	assert.True(t, updated)

	teams, err = repo.ListTeams(ctx)
	require.NoError(t, err)
	assert.Equal(t, "India Men", teams[0].TeamName)

	deleted, err := repo.DeleteTeam(ctx, 2)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteTeam(ctx, 2)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestInsertDuplicateTeamSurfacesConstraint(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.InsertTeam(ctx, models.Team{TeamID: 3, TeamName: "Australia"}))
	err := repo.InsertTeam(ctx, models.Team{TeamID: 3, TeamName: "Again"})
	assert.Error(t, err)
}

func TestPlayerStatLifecycleByRowID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	runs := int64(450)
	avg := 45.0
	rowid, err := repo.InsertPlayerStat(ctx, models.PlayerStat{
		PlayerName: "Player A",
		Format:     "ODI",
		Scope:      "mostRuns",
		Runs:       &runs,
		Average:    &avg,
	})
	require.NoError(t, err)
	require.Positive(t, rowid)

	updated, err := repo.UpdatePlayerStat(ctx, rowid, 500, 50.0)
	require.NoError(t, err)
	assert.True(t, updated)

	stats, err := repo.ListPlayerStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	require.NotNil(t, stats[0].Runs)
	assert.Equal(t, int64(500), *stats[0].Runs)
	require.NotNil(t, stats[0].Average)
	assert.Equal(t, 50.0, *stats[0].Average)

	deleted, err := repo.DeletePlayerStat(ctx, rowid)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestRowsWhitelist(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, table := range Tables {
		tbl, err := repo.Rows(ctx, table)
		require.NoError(t, err, "table %s", table)
		assert.NotEmpty(t, tbl.Columns, "table %s", table)
	}

	_, err := repo.Rows(ctx, "sqlite_master")
	assert.Error(t, err)
}
