package live

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shubhanshu2113/CricBuzz/pkg/models"
)

func TestSummarizeRendersScorelines(t *testing.T) {
	entry := models.MatchEntry{
		MatchInfo: &models.MatchInfo{
			SeriesName:  "Asia Cup 2023",
			MatchDesc:   "Final",
			MatchFormat: "ODI",
			Status:      "India won by 10 wkts",
			Team1:       &models.FeedTeam{TeamID: 5, TeamName: "Sri Lanka"},
			Team2:       &models.FeedTeam{TeamID: 2, TeamName: "India"},
			VenueInfo:   &models.FeedVenue{Ground: "R.Premadasa Stadium", City: "Colombo"},
		},
		MatchScore: &models.MatchScore{
			Team1Score: map[string]models.Innings{
				"inngs1": {InningsID: 1, Runs: 50, Wickets: 10, Overs: 15.2},
			},
			Team2Score: map[string]models.Innings{
				"inngs1": {InningsID: 1, Runs: 51, Wickets: 0, Overs: 6.1},
			},
		},
	}

	s := Summarize(entry)
	assert.Equal(t, "Asia Cup 2023", s.Series)
	assert.Equal(t, "R.Premadasa Stadium", s.Venue)
	assert.Equal(t, []string{
		"Sri Lanka: 50/10 in 15.2 overs",
		"India: 51/0 in 6.1 overs",
	}, s.Scorelines)
}

func TestSummarizeFallbacks(t *testing.T) {
	s := Summarize(models.MatchEntry{})
	assert.Equal(t, "Unknown Series", s.Series)
	assert.Equal(t, "Unknown Venue", s.Venue)
	assert.Equal(t, "Status not available", s.Status)
	assert.Empty(t, s.Scorelines)

	// team with an id but no name renders as "Team <id>"
	s = Summarize(models.MatchEntry{
		MatchInfo: &models.MatchInfo{
			Team1: &models.FeedTeam{TeamID: 9},
		},
		MatchScore: &models.MatchScore{
			Team1Score: map[string]models.Innings{
				"inngs1": {InningsID: 1, Runs: 120, Wickets: 3, Overs: 20.0},
			},
		},
	})
	assert.Equal(t, []string{"Team 9: 120/3 in 20.0 overs"}, s.Scorelines)
}
