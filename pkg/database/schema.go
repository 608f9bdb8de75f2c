package database

import (
	"database/sql"
	"fmt"
)

// schemaDDL declares the seven cricket tables. Every statement is
// CREATE IF NOT EXISTS: Migrate is safe to run on every process start
// and never drops or alters an existing table.
//
// Cross-table references (players.team_id, matches.venue_id, ...) are
// weak: rows are created lazily from partial payloads, so
// the referenced row may not exist yet and no FOREIGN KEY constraint is
// declared.
//
// scores carries no natural-key constraint, so re-ingesting the same
// snapshot duplicates innings rows. Same for venues, whose only key is
// the autoincrement id. player_stats does carry one, so insert-or-ignore
// is a real dedupe there.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS matches (
    match_id INTEGER PRIMARY KEY,
    series_id INTEGER,
    series_name TEXT,
    match_desc TEXT,
    match_format TEXT,
    start_date TEXT,
    end_date TEXT,
    state TEXT,
    status TEXT,
    team1_id INTEGER,
    team1_name TEXT,
    team2_id INTEGER,
    team2_name TEXT,
    venue TEXT,
    city TEXT,
    venue_id INTEGER,
    timezone TEXT
);

CREATE TABLE IF NOT EXISTS scores (
    match_id INTEGER,
    team_id INTEGER,
    innings_id INTEGER,
    runs INTEGER,
    wickets INTEGER,
    overs REAL
);

CREATE TABLE IF NOT EXISTS teams (
    team_id INTEGER PRIMARY KEY,
    team_name TEXT,
    team_sname TEXT
);

CREATE TABLE IF NOT EXISTS players (
    player_id INTEGER PRIMARY KEY,
    full_name TEXT,
    image_id TEXT,
    batting_style TEXT,
    bowling_style TEXT,
    team_id INTEGER,
    playing_role TEXT
);

CREATE TABLE IF NOT EXISTS series (
    series_id INTEGER PRIMARY KEY,
    series_name TEXT,
    start_date TEXT,
    end_date TEXT,
    month_group TEXT
);

CREATE TABLE IF NOT EXISTS venues (
    venue_id INTEGER PRIMARY KEY AUTOINCREMENT,
    venue_name TEXT,
    city TEXT,
    country TEXT,
    timezone TEXT,
    established INTEGER,
    capacity INTEGER,
    alt_name TEXT,
    end_names TEXT,
    home_teams TEXT,
    floodlights BOOLEAN,
    curator TEXT,
    profile TEXT,
    image_url TEXT,
    image_id TEXT
);

CREATE TABLE IF NOT EXISTS player_stats (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    player_id INTEGER,
    player_name TEXT,
    format TEXT,
    scope TEXT,
    series_id INTEGER,
    matches INTEGER,
    innings INTEGER,
    runs INTEGER,
    average REAL
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_player_stats_natural ON player_stats (
    scope,
    COALESCE(format, ''),
    COALESCE(player_id, -1),
    COALESCE(player_name, ''),
    COALESCE(series_id, -1)
);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(schemaDDL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
