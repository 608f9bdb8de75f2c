package ingest

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/shubhanshu2113/CricBuzz/pkg/models"
)

// LoadRosterFile ingests a flat player roster dump from disk.
func LoadRosterFile(ctx context.Context, db *sql.DB, path string) (int, int, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, fmt.Errorf("read %s: %w", path, err)
	}

	var entries []models.RosterEntry
	if err := json.Unmarshal(b, &entries); err != nil {
		return 0, 0, fmt.Errorf("parse %s: %w", path, err)
	}

	return LoadRoster(ctx, db, entries)
}

// LoadRoster upserts player rows from a roster list. Entries without an
// id are category headers ("BATSMEN", "ALL ROUNDER", ...) and are
// filtered out, not treated as errors. An id that fails integer coercion
// skips that entry only; the batch keeps going.
//
// Players use insert-or-ignore: the first write wins and later duplicate
// ids are silently skipped. When an entry carries a team id, a team row
// is side-inserted (insert-or-ignore, usually with a NULL name) so that
// team references resolve even if no team catalog was ever loaded.
//
// Returns (players written, entries skipped).
func LoadRoster(ctx context.Context, db *sql.DB, entries []models.RosterEntry) (int, int, error) {
	loaded, skipped := 0, 0

	for _, e := range entries {
		if e.ID == "" {
			// category header, not a player
			skipped++
			continue
		}

		playerID, err := strconv.ParseInt(e.ID.String(), 10, 64)
		if err != nil {
			log.Printf("[ingest] roster entry %q: bad id %q, skipping", e.Name, e.ID)
			skipped++
			continue
		}

		var teamID any
		if id, err := strconv.ParseInt(e.TeamID.String(), 10, 64); err == nil && id != 0 {
			teamID = id
		}

		if _, err := db.ExecContext(ctx, `
			INSERT OR IGNORE INTO players
			(player_id, full_name, image_id, batting_style, bowling_style, team_id, playing_role)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`,
			playerID,
			nullString(e.Name),
			nullString(e.ImageID.String()),
			nullString(e.BattingStyle),
			nullString(e.BowlingStyle),
			teamID,
			nullString(e.PlayingRole),
		); err != nil {
			return loaded, skipped, fmt.Errorf("insert player %d: %w", playerID, err)
		}

		if teamID != nil {
			if _, err := db.ExecContext(ctx, `
				INSERT OR IGNORE INTO teams (team_id, team_name, team_sname)
				VALUES (?, ?, ?)
			`, teamID, nullString(e.TeamName), nullString(e.TeamSName)); err != nil {
				return loaded, skipped, fmt.Errorf("insert team %v: %w", teamID, err)
			}
		}

		loaded++
	}

	return loaded, skipped, nil
}
