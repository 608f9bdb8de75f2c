package ingest

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"github.com/shubhanshu2113/CricBuzz/pkg/models"
)

// LoadMatchFile ingests a batch match-feed snapshot from disk. A file
// that does not parse as JSON is fatal for the call; everything missing
// inside a parsed file just degrades to NULL columns.
func LoadMatchFile(ctx context.Context, db *sql.DB, path string) (int, int, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, fmt.Errorf("read %s: %w", path, err)
	}

	var feed models.MatchFeed
	if err := json.Unmarshal(b, &feed); err != nil {
		return 0, 0, fmt.Errorf("parse %s: %w", path, err)
	}

	return LoadMatchFeed(ctx, db, feed)
}

// LoadMatchFeed walks the match-type → series → matches forest and
// upserts every entry. Returns the number of match rows and score rows
// written.
func LoadMatchFeed(ctx context.Context, db *sql.DB, feed models.MatchFeed) (int, int, error) {
	matchCount, scoreCount := 0, 0

	for _, typeBlock := range feed.TypeMatches {
		for _, seriesBlock := range typeBlock.SeriesMatches {
			wrapper := seriesBlock.SeriesAdWrapper
			if wrapper == nil {
				// ad slots carry no matches
				continue
			}
			for _, entry := range wrapper.Matches {
				m, s, err := SaveLiveMatch(ctx, db, entry)
				if err != nil {
					return matchCount, scoreCount, err
				}
				matchCount += m
				scoreCount += s
			}
		}
	}

	return matchCount, scoreCount, nil
}

// SaveLiveMatch upserts a single match entry. This is the save-on-view
// path used by the live page; the batch loader funnels through it too so
// both apply identical normalization.
//
// The match row uses replace-on-conflict: the latest snapshot is
// authoritative, re-ingesting a seen match id overwrites the row
// wholesale. Score rows are keyed by (match, team, innings) only
// conceptually: the table has no unique constraint, so re-ingesting the
// same snapshot grows the scores table. Series and team rows are created
// lazily with insert-or-ignore, first write wins.
func SaveLiveMatch(ctx context.Context, db *sql.DB, entry models.MatchEntry) (int, int, error) {
	info := entry.MatchInfo
	if info == nil {
		info = &models.MatchInfo{}
	}

	if info.SeriesID != 0 {
		if _, err := db.ExecContext(ctx, `
			INSERT OR IGNORE INTO series (series_id, series_name)
			VALUES (?, ?)
		`, info.SeriesID, nullString(info.SeriesName)); err != nil {
			return 0, 0, fmt.Errorf("insert series %d: %w", info.SeriesID, err)
		}
	}

	for _, team := range []*models.FeedTeam{info.Team1, info.Team2} {
		if team == nil || team.TeamID == 0 {
			continue
		}
		if _, err := db.ExecContext(ctx, `
			INSERT OR IGNORE INTO teams (team_id, team_name, team_sname)
			VALUES (?, ?, ?)
		`, team.TeamID, nullString(team.TeamName), nullString(team.TeamSName)); err != nil {
			return 0, 0, fmt.Errorf("insert team %d: %w", team.TeamID, err)
		}
	}

	venue := info.VenueInfo
	if venue == nil {
		venue = &models.FeedVenue{}
	}
	team1 := info.Team1
	if team1 == nil {
		team1 = &models.FeedTeam{}
	}
	team2 := info.Team2
	if team2 == nil {
		team2 = &models.FeedTeam{}
	}

	if _, err := db.ExecContext(ctx, `
		INSERT OR REPLACE INTO matches
		(match_id, series_id, series_name, match_desc, match_format, start_date, end_date,
		 state, status, team1_id, team1_name, team2_id, team2_name, venue, city, venue_id, timezone)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		nullID(info.MatchID),
		nullID(info.SeriesID),
		nullString(info.SeriesName),
		nullString(info.MatchDesc),
		nullString(info.MatchFormat),
		nullString(info.StartDate),
		nullString(info.EndDate),
		nullString(info.State),
		nullString(info.Status),
		nullID(team1.TeamID),
		nullString(team1.TeamName),
		nullID(team2.TeamID),
		nullString(team2.TeamName),
		nullString(venue.Ground),
		nullString(venue.City),
		nullID(venue.ID),
		nullString(venue.Timezone),
	); err != nil {
		return 0, 0, fmt.Errorf("upsert match %d: %w", info.MatchID, err)
	}

	scoreCount := 0
	if entry.MatchScore != nil {
		slots := []struct {
			innings map[string]models.Innings
			teamID  int64
		}{
			{entry.MatchScore.Team1Score, team1.TeamID},
			{entry.MatchScore.Team2Score, team2.TeamID},
		}

		for _, slot := range slots {
			for _, inng := range slot.innings {
				if _, err := db.ExecContext(ctx, `
					INSERT OR REPLACE INTO scores (match_id, team_id, innings_id, runs, wickets, overs)
					VALUES (?, ?, ?, ?, ?, ?)
				`,
					nullID(info.MatchID),
					nullID(slot.teamID),
					inng.InningsID,
					inng.Runs,
					inng.Wickets,
					inng.Overs,
				); err != nil {
					return 1, scoreCount, fmt.Errorf("insert score match=%d innings=%d: %w", info.MatchID, inng.InningsID, err)
				}
				scoreCount++
			}
		}
	}

	return 1, scoreCount, nil
}
