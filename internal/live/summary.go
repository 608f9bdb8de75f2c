package live

import (
	"fmt"

	"github.com/shubhanshu2113/CricBuzz/pkg/models"
)

// MatchSummary is the rendered form of one live match: the header line,
// the venue line and one scoreline per innings.
type MatchSummary struct {
	Series     string   `json:"series"`
	Desc       string   `json:"desc,omitempty"`
	Format     string   `json:"format,omitempty"`
	Venue      string   `json:"venue"`
	City       string   `json:"city,omitempty"`
	Status     string   `json:"status"`
	Scorelines []string `json:"scorelines"`
}

func Summarize(entry models.MatchEntry) MatchSummary {
	info := entry.MatchInfo
	if info == nil {
		info = &models.MatchInfo{}
	}

	s := MatchSummary{
		Series:     info.SeriesName,
		Desc:       info.MatchDesc,
		Format:     info.MatchFormat,
		Status:     info.Status,
		Scorelines: []string{},
	}
	if s.Series == "" {
		s.Series = "Unknown Series"
	}
	if s.Status == "" {
		s.Status = "Status not available"
	}
	if info.VenueInfo != nil {
		s.Venue = info.VenueInfo.Ground
		s.City = info.VenueInfo.City
	}
	if s.Venue == "" {
		s.Venue = "Unknown Venue"
	}

	if entry.MatchScore != nil {
		s.Scorelines = append(s.Scorelines, scorelines(info.Team1, entry.MatchScore.Team1Score)...)
		s.Scorelines = append(s.Scorelines, scorelines(info.Team2, entry.MatchScore.Team2Score)...)
	}
	return s
}

func scorelines(team *models.FeedTeam, innings map[string]models.Innings) []string {
	if len(innings) == 0 {
		return nil
	}

	name := ""
	if team != nil {
		name = team.TeamName
		if name == "" {
			name = fmt.Sprintf("Team %d", team.TeamID)
		}
	}
	if name == "" {
		name = "Unknown Team"
	}

	out := make([]string, 0, len(innings))
	for _, inng := range innings {
		out = append(out, fmt.Sprintf("%s: %d/%d in %.1f overs", name, inng.Runs, inng.Wickets, inng.Overs))
	}
	return out
}
