package models

// MatchFeed is the raw shape of the Cricbuzz live/recent match feed: a
// forest of match-type groups, each holding series groups, each holding
// match entries. Both the live API response and the batch snapshot file
// use this layout.
//
// Every sub-object is optional in practice; the loaders treat missing
// pieces as nulls, never as errors.
type MatchFeed struct {
	TypeMatches []TypeMatch `json:"typeMatches"`
}

type TypeMatch struct {
	MatchType     string        `json:"matchType"`
	SeriesMatches []SeriesMatch `json:"seriesMatches"`
}

// SeriesMatch wraps one series group. Ad slots in the feed arrive as
// entries without a seriesAdWrapper, so the pointer may be nil.
type SeriesMatch struct {
	SeriesAdWrapper *SeriesWrapper `json:"seriesAdWrapper"`
}

type SeriesWrapper struct {
	SeriesID   int64        `json:"seriesId"`
	SeriesName string       `json:"seriesName"`
	Matches    []MatchEntry `json:"matches"`
}

type MatchEntry struct {
	MatchInfo  *MatchInfo  `json:"matchInfo"`
	MatchScore *MatchScore `json:"matchScore"`
}

type MatchInfo struct {
	MatchID     int64     `json:"matchId"`
	SeriesID    int64     `json:"seriesId"`
	SeriesName  string    `json:"seriesName"`
	MatchDesc   string    `json:"matchDesc"`
	MatchFormat string    `json:"matchFormat"`
	StartDate   string    `json:"startDate"` // epoch millis as text
	EndDate     string    `json:"endDate"`
	State       string    `json:"state"`
	Status      string    `json:"status"`
	Team1       *FeedTeam `json:"team1"`
	Team2       *FeedTeam `json:"team2"`
	VenueInfo   *FeedVenue `json:"venueInfo"`
}

type FeedTeam struct {
	TeamID    int64  `json:"teamId"`
	TeamName  string `json:"teamName"`
	TeamSName string `json:"teamSName"`
}

type FeedVenue struct {
	ID       int64  `json:"id"`
	Ground   string `json:"ground"`
	City     string `json:"city"`
	Timezone string `json:"timezone"`
}

// MatchScore holds the two team-score slots. Each slot is a map with
// arbitrary innings keys ("inngs1", "inngs2", ...); the key names carry
// no meaning, only the inningsId inside each value does.
type MatchScore struct {
	Team1Score map[string]Innings `json:"team1Score"`
	Team2Score map[string]Innings `json:"team2Score"`
}

type Innings struct {
	InningsID int64   `json:"inningsId"`
	Runs      int64   `json:"runs"`
	Wickets   int64   `json:"wickets"`
	Overs     float64 `json:"overs"`
}
