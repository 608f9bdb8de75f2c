package ingest

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/shubhanshu2113/CricBuzz/pkg/models"
)

// LoadTopStatsFile ingests a leaderboard snapshot keyed by stat-category
// name. Values that do not decode as stat blocks (index entries and
// similar) are skipped, not errors.
func LoadTopStatsFile(ctx context.Context, db *sql.DB, path string) (int, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, err)
	}

	blocks := make(map[string]models.StatBlock, len(raw))
	for scope, blob := range raw {
		var block models.StatBlock
		if err := json.Unmarshal(blob, &block); err != nil {
			continue
		}
		blocks[scope] = block
	}

	return LoadTopStats(ctx, db, blocks)
}

// LoadTopStats inserts player_stats rows from leaderboard blocks. The
// block key becomes the scope column; the block filter's selected match
// type becomes the format.
//
// Each row is a positional value list: position 0 is accepted as the
// player id only when it is all digits (numeric display names would
// misclassify, a known fragility of the source format, kept as is),
// position 1 is the display name, positions 2-4 are matches/innings/runs
// and position 5 the average, each independently NULL when unparsable.
// Rows with fewer than two values carry nothing useful and are skipped.
//
// Insert-or-ignore on the natural key: re-running the same ingestion
// neither duplicates rows nor updates changed numbers.
//
// Returns the number of rows actually inserted.
func LoadTopStats(ctx context.Context, db *sql.DB, blocks map[string]models.StatBlock) (int, error) {
	inserted := 0

	for scope, block := range blocks {
		format := nullString(block.Filter.SelectedMatchType)

		for _, row := range block.Values {
			vals := row.Values
			if len(vals) < 2 {
				continue
			}

			var playerID any
			if allDigits(vals[0].String()) {
				if id, err := strconv.ParseInt(vals[0].String(), 10, 64); err == nil {
					playerID = id
				}
			}

			var matches, innings, runs, average any
			if len(vals) > 2 {
				matches = intOrNull(vals[2].String())
			}
			if len(vals) > 3 {
				innings = intOrNull(vals[3].String())
			}
			if len(vals) > 4 {
				runs = intOrNull(vals[4].String())
			}
			if len(vals) > 5 {
				average = floatOrNull(vals[5].String())
			}

			res, err := db.ExecContext(ctx, `
				INSERT OR IGNORE INTO player_stats
				(player_id, player_name, format, scope, series_id, matches, innings, runs, average)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			`,
				playerID,
				nullString(vals[1].String()),
				format,
				scope,
				nil, // series id is not part of the top-stats feed
				matches,
				innings,
				runs,
				average,
			)
			if err != nil {
				return inserted, fmt.Errorf("insert stat scope=%s player=%s: %w", scope, vals[1], err)
			}
			if n, err := res.RowsAffected(); err == nil {
				inserted += int(n)
			}
		}
	}

	return inserted, nil
}
