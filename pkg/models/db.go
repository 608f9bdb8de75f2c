package models

// Team is a row of the teams table. Name fields stay empty until a
// richer payload enriches them.
type Team struct {
	TeamID    int64  `json:"team_id"`
	TeamName  string `json:"team_name,omitempty"`
	TeamSName string `json:"team_sname,omitempty"`
}

// PlayerStat is a row of the player_stats table. The numeric columns are
// pointers because the source leaderboards routinely omit or garble
// individual fields and the stored value is then null.
type PlayerStat struct {
	RowID      int64    `json:"rowid"`
	PlayerID   *int64   `json:"player_id,omitempty"`
	PlayerName string   `json:"player_name,omitempty"`
	Format     string   `json:"format,omitempty"`
	Scope      string   `json:"scope,omitempty"`
	SeriesID   *int64   `json:"series_id,omitempty"`
	Matches    *int64   `json:"matches,omitempty"`
	Innings    *int64   `json:"innings,omitempty"`
	Runs       *int64   `json:"runs,omitempty"`
	Average    *float64 `json:"average,omitempty"`
}

// Table is a generic tabular query result, used by the ad-hoc runner,
// the canned query catalog and the table browser.
type Table struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}
