// Package reports exposes the analytical half of the query surface: a
// fixed catalog of named queries over the cricket schema, an ad-hoc SQL
// runner and the batch loader triggers.
package reports

// NamedQuery is one canned analytical query, runnable by name. The SQL
// is static text; parameters are not supported here.
type NamedQuery struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	SQL   string `json:"-"`
}

// Catalog is the fixed set of canned reports, roughly mirroring the
// questions the dashboard ships with.
var Catalog = []NamedQuery{
	{
		Name:  "india_players",
		Title: "Players representing India",
		SQL: `
			SELECT p.full_name, p.batting_style, p.bowling_style, t.team_name
			FROM players p
			JOIN teams t ON p.team_id = t.team_id
			WHERE p.team_id = 2;`,
	},
	{
		Name:  "recent_matches",
		Title: "Matches in the last 30 days",
		SQL: `
			SELECT m.match_desc,
			       m.team1_name AS team1,
			       m.team2_name AS team2,
			       m.venue,
			       m.city,
			       datetime(m.start_date / 1000, 'unixepoch') AS match_start,
			       datetime(m.end_date / 1000, 'unixepoch') AS match_end
			FROM matches m
			WHERE m.start_date IS NOT NULL
			  AND date(m.start_date / 1000, 'unixepoch') >= date('now', '-30 days')
			ORDER BY m.start_date DESC;`,
	},
	{
		Name:  "top_test_run_scorers",
		Title: "Top 10 Test run scorers",
		SQL: `
			SELECT s.player_name, s.matches, s.runs, s.average
			FROM player_stats s
			WHERE s.scope = 'mostRuns'
			  AND LOWER(COALESCE(s.format, '')) = 'test'
			ORDER BY s.runs DESC
			LIMIT 10;`,
	},
	{
		Name:  "big_venues",
		Title: "Venues with capacity over 50,000",
		SQL: `
			SELECT venue_name, city, country, capacity
			FROM venues
			WHERE capacity > 50000
			ORDER BY capacity DESC;`,
	},
	{
		Name:  "team_wins",
		Title: "Matches won by each team",
		SQL: `
			SELECT team_name, COUNT(*) AS wins
			FROM (
			    SELECT CASE
			        WHEN INSTR(m.status, m.team1_name) > 0 THEN m.team1_name
			        WHEN INSTR(m.status, m.team2_name) > 0 THEN m.team2_name
			    END AS team_name
			    FROM matches m
			    WHERE m.state = 'Complete'
			      AND m.status LIKE '%won by%'
			)
			WHERE team_name IS NOT NULL
			GROUP BY team_name
			ORDER BY wins DESC;`,
	},
	{
		Name:  "players_per_role",
		Title: "Player count per playing role",
		SQL: `
			SELECT playing_role, COUNT(*) AS total_players
			FROM players
			GROUP BY playing_role
			ORDER BY total_players DESC;`,
	},
	{
		Name:  "highest_runs_per_format",
		Title: "Highest recorded runs per format",
		SQL: `
			SELECT format, MAX(runs) AS highest_runs
			FROM player_stats
			GROUP BY format;`,
	},
	{
		Name:  "series_catalog",
		Title: "Series on record",
		SQL: `
			SELECT series_name, start_date, end_date, month_group
			FROM series
			ORDER BY series_name;`,
	},
	{
		Name:  "heavy_scorers",
		Title: "Players with over 1000 aggregate runs",
		SQL: `
			SELECT player_name, SUM(COALESCE(runs, 0)) AS total_runs
			FROM player_stats
			WHERE player_name IS NOT NULL
			GROUP BY player_name
			HAVING SUM(COALESCE(runs, 0)) > 1000
			ORDER BY total_runs DESC;`,
	},
	{
		Name:  "last_completed",
		Title: "Last 20 completed matches",
		SQL: `
			SELECT m.match_desc,
			       m.team1_name AS team1,
			       m.team2_name AS team2,
			       CASE WHEN INSTR(LOWER(m.status), 'won by') > 0
			            THEN TRIM(SUBSTR(m.status, INSTR(LOWER(m.status), 'won by') + 6))
			       END AS victory_margin,
			       m.venue
			FROM matches m
			WHERE m.state = 'Complete'
			ORDER BY CAST(m.end_date AS INTEGER) DESC
			LIMIT 20;`,
	},
	{
		Name:  "cross_format_runs",
		Title: "Run totals for players seen in at least two formats",
		SQL: `
			WITH per_format AS (
			    SELECT player_name, format, SUM(COALESCE(runs, 0)) AS runs_in_format
			    FROM player_stats
			    WHERE player_name IS NOT NULL
			    GROUP BY player_name, format
			)
			SELECT player_name,
			       MAX(CASE WHEN LOWER(format) = 'test' THEN runs_in_format END) AS test_runs,
			       MAX(CASE WHEN LOWER(format) = 'odi' THEN runs_in_format END) AS odi_runs,
			       MAX(CASE WHEN LOWER(format) = 't20' THEN runs_in_format END) AS t20_runs
			FROM per_format
			GROUP BY player_name
			HAVING COUNT(DISTINCT format) >= 2
			ORDER BY player_name;`,
	},
	{
		Name:  "venue_match_counts",
		Title: "Matches played per venue",
		SQL: `
			SELECT m.venue, m.city, COUNT(*) AS matches_played
			FROM matches m
			WHERE m.venue IS NOT NULL
			GROUP BY m.venue, m.city
			ORDER BY matches_played DESC;`,
	},
	{
		Name:  "highest_innings",
		Title: "Highest innings totals",
		SQL: `
			SELECT s.match_id, m.match_desc, s.team_id, s.innings_id, s.runs, s.wickets, s.overs
			FROM scores s
			LEFT JOIN matches m ON m.match_id = s.match_id
			ORDER BY s.runs DESC
			LIMIT 10;`,
	},
	{
		Name:  "venues_by_country",
		Title: "Venue count and average capacity per country",
		SQL: `
			SELECT country, COUNT(*) AS venues, AVG(capacity) AS avg_capacity
			FROM venues
			GROUP BY country
			ORDER BY venues DESC;`,
	},
	{
		Name:  "close_matches",
		Title: "Completed matches decided by under 50 runs or 5 wickets",
		SQL: `
			SELECT m.match_desc, m.team1_name, m.team2_name, m.status
			FROM matches m
			WHERE m.state = 'Complete'
			  AND (
			    (m.status LIKE '%won by%runs%'
			     AND CAST(TRIM(SUBSTR(m.status, INSTR(LOWER(m.status), 'won by') + 7,
			         INSTR(LOWER(m.status), 'runs') - INSTR(LOWER(m.status), 'won by') - 7)) AS INTEGER) < 50)
			    OR
			    (m.status LIKE '%won by%wkt%'
			     AND CAST(TRIM(SUBSTR(m.status, INSTR(LOWER(m.status), 'won by') + 7,
			         INSTR(LOWER(m.status), 'wkt') - INSTR(LOWER(m.status), 'won by') - 7)) AS INTEGER) < 5)
			  )
			ORDER BY CAST(m.end_date AS INTEGER) DESC;`,
	},
}

// Lookup finds a catalog entry by name.
func Lookup(name string) (NamedQuery, bool) {
	for _, q := range Catalog {
		if q.Name == name {
			return q, true
		}
	}
	return NamedQuery{}, false
}
