package models

// RosterEntry is one element of the flat team-roster list. The list mixes
// real players with category markers ("BATSMEN", "ALL ROUNDER", ...) that
// carry no id; the loader filters those out instead of treating them as
// errors. Identifiers arrive as strings in some dumps and numbers in
// others, hence FlexString.
type RosterEntry struct {
	ID           FlexString `json:"id"`
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	ImageID      FlexString `json:"img_id"`
	BattingStyle string     `json:"battingStyle"`
	BowlingStyle string     `json:"bowlingStyle"`
	TeamID       FlexString `json:"team_id"`
	PlayingRole  string     `json:"playing_role"`
	TeamName     string     `json:"teamName"`
	TeamSName    string     `json:"teamSName"`
}
