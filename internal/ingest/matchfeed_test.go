package ingest

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubhanshu2113/CricBuzz/pkg/models"
)

const sampleFeed = `{
	"typeMatches": [
		{
			"matchType": "International",
			"seriesMatches": [
				{
					"seriesAdWrapper": {
						"seriesId": 7603,
						"seriesName": "Asia Cup 2023",
						"matches": [
							{
								"matchInfo": {
									"matchId": 66372,
									"seriesId": 7603,
									"seriesName": "Asia Cup 2023",
									"matchDesc": "Final",
									"matchFormat": "ODI",
									"startDate": "1694959200000",
									"endDate": "1694989800000",
									"state": "Complete",
									"status": "India won by 10 wkts",
									"team1": {"teamId": 5, "teamName": "Sri Lanka", "teamSName": "SL"},
									"team2": {"teamId": 2, "teamName": "India", "teamSName": "IND"},
									"venueInfo": {"id": 27, "ground": "R.Premadasa Stadium", "city": "Colombo", "timezone": "+05:30"}
								},
								"matchScore": {
									"team1Score": {
										"inngs1": {"inningsId": 1, "runs": 50, "wickets": 10, "overs": 15.2}
									},
									"team2Score": {
										"inngs1": {"inningsId": 1, "runs": 51, "wickets": 0, "overs": 6.1}
									}
								}
							}
						]
					}
				},
				{}
			]
		}
	]
}`

func decodeFeed(t *testing.T, raw string) models.MatchFeed {
	t.Helper()

	var feed models.MatchFeed
	require.NoError(t, json.Unmarshal([]byte(raw), &feed))
	return feed
}

func TestLoadMatchFeed(t *testing.T) {
	db := newTestDB(t)
	feed := decodeFeed(t, sampleFeed)

	matches, scores, err := LoadMatchFeed(context.Background(), db, feed)
	require.NoError(t, err)
	assert.Equal(t, 1, matches)
	assert.Equal(t, 2, scores)

	assert.Equal(t, 1, countRows(t, db, "matches"))
	assert.Equal(t, 2, countRows(t, db, "scores"))

	// lazy side rows
	assert.Equal(t, 2, countRows(t, db, "teams"))
	assert.Equal(t, 1, countRows(t, db, "series"))

	var status, venue string
	require.NoError(t, db.QueryRow(`SELECT status, venue FROM matches WHERE match_id = 66372`).Scan(&status, &venue))
	assert.Equal(t, "India won by 10 wkts", status)
	assert.Equal(t, "R.Premadasa Stadium", venue)
}

func TestLoadMatchFeedTwiceKeepsOneMatchRowButDuplicatesScores(t *testing.T) {
	db := newTestDB(t)
	feed := decodeFeed(t, sampleFeed)
	ctx := context.Background()

	_, _, err := LoadMatchFeed(ctx, db, feed)
	require.NoError(t, err)
	_, _, err = LoadMatchFeed(ctx, db, feed)
	require.NoError(t, err)

	// replace semantics: still exactly one row per match id
	assert.Equal(t, 1, countRows(t, db, "matches"))

	// scores have no natural-key constraint: re-ingestion grows the table
	// by the per-innings count. Known limitation, pinned here.
	assert.Equal(t, 4, countRows(t, db, "scores"))
}

func TestLoadMatchFeedReplaceUpdatesStatus(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	_, _, err := LoadMatchFeed(ctx, db, decodeFeed(t, sampleFeed))
	require.NoError(t, err)

	updated := decodeFeed(t, sampleFeed)
	updated.TypeMatches[0].SeriesMatches[0].SeriesAdWrapper.Matches[0].MatchInfo.Status = "Match abandoned"
	_, _, err = LoadMatchFeed(ctx, db, updated)
	require.NoError(t, err)

	var status string
	require.NoError(t, db.QueryRow(`SELECT status FROM matches WHERE match_id = 66372`).Scan(&status))
	assert.Equal(t, "Match abandoned", status)
}

func TestSaveLiveMatchWithoutScore(t *testing.T) {
	db := newTestDB(t)

	entry := models.MatchEntry{
		MatchInfo: &models.MatchInfo{
			MatchID: 101,
			State:   "Preview",
		},
	}

	matches, scores, err := SaveLiveMatch(context.Background(), db, entry)
	require.NoError(t, err)
	assert.Equal(t, 1, matches)
	assert.Equal(t, 0, scores)

	// absent fields land as NULL, present ones are kept
	var state string
	require.NoError(t, db.QueryRow(`SELECT state FROM matches WHERE match_id = 101`).Scan(&state))
	assert.Equal(t, "Preview", state)

	var nullStatus any
	require.NoError(t, db.QueryRow(`SELECT status FROM matches WHERE match_id = 101`).Scan(&nullStatus))
	assert.Nil(t, nullStatus)
}

func TestLoadMatchFeedSeriesRowIsFirstWriteWins(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	_, _, err := LoadMatchFeed(ctx, db, decodeFeed(t, sampleFeed))
	require.NoError(t, err)

	renamed := decodeFeed(t, sampleFeed)
	renamed.TypeMatches[0].SeriesMatches[0].SeriesAdWrapper.Matches[0].MatchInfo.SeriesName = "Renamed Cup"
	_, _, err = LoadMatchFeed(ctx, db, renamed)
	require.NoError(t, err)

	var name string
	require.NoError(t, db.QueryRow(`SELECT series_name FROM series WHERE series_id = 7603`).Scan(&name))
	assert.Equal(t, "Asia Cup 2023", name)
}
