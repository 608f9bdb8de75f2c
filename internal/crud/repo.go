package crud

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shubhanshu2113/CricBuzz/pkg/database"
	"github.com/shubhanshu2113/CricBuzz/pkg/models"
)

// Tables lists every browsable table. Editing is limited to teams and
// player_stats; the rest is read-only through the browser.
var Tables = []string{"matches", "scores", "teams", "players", "series", "venues", "player_stats"}

func ValidTable(name string) bool {
	for _, t := range Tables {
		if t == name {
			return true
		}
	}
	return false
}

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

// Rows returns the full contents of a whitelisted table. player_stats
// rows are addressed by rowid in update/delete, so the browser exposes
// it.
func (r *Repo) Rows(ctx context.Context, table string) (*models.Table, error) {
	if !ValidTable(table) {
		return nil, fmt.Errorf("unknown table %q", table)
	}

	sel := "SELECT * FROM " + table
	if table == "player_stats" {
		sel = "SELECT rowid, * FROM player_stats"
	}
	return database.Query(ctx, r.DB, sel)
}

func (r *Repo) ListTeams(ctx context.Context) ([]models.Team, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT team_id, team_name, team_sname
		FROM teams
		ORDER BY team_id
	`)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	out := []models.Team{}
	for rows.Next() {
		var t models.Team
		var name, sname sql.NullString
		if err := rows.Scan(&t.TeamID, &name, &sname); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		t.TeamName = name.String
		t.TeamSName = sname.String
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

func (r *Repo) InsertTeam(ctx context.Context, t models.Team) error {
	if _, err := r.DB.ExecContext(ctx, `
		INSERT INTO teams (team_id, team_name, team_sname)
		VALUES (?, ?, ?)
	`, t.TeamID, t.TeamName, t.TeamSName); err != nil {
		return fmt.Errorf("insert team: %w", err)
	}
	return nil
}

func (r *Repo) UpdateTeam(ctx context.Context, id int64, name, sname string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE teams SET team_name = ?, team_sname = ? WHERE team_id = ?
	`, name, sname, id)
	if err != nil {
		return false, fmt.Errorf("update team: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

func (r *Repo) DeleteTeam(ctx context.Context, id int64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM teams WHERE team_id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete team: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

func (r *Repo) ListPlayerStats(ctx context.Context) ([]models.PlayerStat, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT rowid, player_id, player_name, format, scope, series_id,
		       matches, innings, runs, average
		FROM player_stats
		ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("list player stats: %w", err)
	}
	defer rows.Close()

	out := []models.PlayerStat{}
	for rows.Next() {
		var s models.PlayerStat
		var (
			playerID, seriesID, matches, innings, runs sql.NullInt64
			name, format, scope                        sql.NullString
			average                                    sql.NullFloat64
		)
		if err := rows.Scan(&s.RowID, &playerID, &name, &format, &scope,
			&seriesID, &matches, &innings, &runs, &average); err != nil {
			return nil, fmt.Errorf("scan player stat: %w", err)
		}
		if playerID.Valid {
			s.PlayerID = &playerID.Int64
		}
		s.PlayerName = name.String
		s.Format = format.String
		s.Scope = scope.String
		if seriesID.Valid {
			s.SeriesID = &seriesID.Int64
		}
		if matches.Valid {
			s.Matches = &matches.Int64
		}
		if innings.Valid {
			s.Innings = &innings.Int64
		}
		if runs.Valid {
			s.Runs = &runs.Int64
		}
		if average.Valid {
			s.Average = &average.Float64
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

func (r *Repo) InsertPlayerStat(ctx context.Context, s models.PlayerStat) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO player_stats
		(player_id, player_name, format, scope, series_id, matches, innings, runs, average)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, s.PlayerID, s.PlayerName, s.Format, s.Scope, s.SeriesID,
		s.Matches, s.Innings, s.Runs, s.Average)
	if err != nil {
		return 0, fmt.Errorf("insert player stat: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

func (r *Repo) UpdatePlayerStat(ctx context.Context, rowid, runs int64, average float64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE player_stats SET runs = ?, average = ? WHERE rowid = ?
	`, runs, average, rowid)
	if err != nil {
		return false, fmt.Errorf("update player stat: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

func (r *Repo) DeletePlayerStat(ctx context.Context, rowid int64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM player_stats WHERE rowid = ?`, rowid)
	if err != nil {
		return false, fmt.Errorf("delete player stat: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}
