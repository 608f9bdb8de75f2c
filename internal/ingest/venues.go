package ingest

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"github.com/shubhanshu2113/CricBuzz/pkg/models"
)

// LoadVenueFile ingests a venue dump from disk. The file is either a
// bare array of venues or the API envelope {"venueList": [...]}.
func LoadVenueFile(ctx context.Context, db *sql.DB, path string) (int, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}

	entries, err := decodeVenues(b)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, err)
	}

	return LoadVenues(ctx, db, entries)
}

func decodeVenues(b []byte) ([]models.VenueEntry, error) {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var entries []models.VenueEntry
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, err
		}
		return entries, nil
	}

	var envelope models.VenueList
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, err
	}
	return envelope.VenueList, nil
}

// LoadVenues inserts venue rows. Capacity and established year are
// coerced from free text; failures store NULL and never raise. All other
// fields map 1:1, absent ones become NULL.
//
// Rows are keyed only by the autoincrement id, so insert-or-ignore never
// actually ignores anything: re-ingesting the same list duplicates rows.
// Idempotent re-invocation has to be guarded by the caller.
func LoadVenues(ctx context.Context, db *sql.DB, entries []models.VenueEntry) (int, error) {
	count := 0

	for _, v := range entries {
		var capacity any
		if n, ok := ParseCapacity(v.Capacity.String()); ok {
			capacity = n
		}

		established := intOrNull(v.Established.String())

		if _, err := db.ExecContext(ctx, `
			INSERT OR IGNORE INTO venues
			(venue_name, city, country, timezone, established, capacity, alt_name,
			 end_names, home_teams, floodlights, curator, profile, image_url, image_id)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			nullString(v.Ground),
			nullString(v.City),
			nullString(v.Country),
			nullString(v.Timezone),
			established,
			capacity,
			nullString(v.KnownAs),
			nullString(v.Ends),
			nullString(v.HomeTeam),
			v.Floodlights,
			nullString(v.Curator),
			nullString(v.Profile),
			nullString(v.ImageURL),
			nullString(v.ImageID.String()),
		); err != nil {
			return count, fmt.Errorf("insert venue %q: %w", v.Ground, err)
		}
		count++
	}

	return count, nil
}
