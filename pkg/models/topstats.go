package models

import (
	"bytes"
	"encoding/json"
)

// StatsCatalog lists the stat categories the top-stats endpoint knows
// about (batting, bowling, ...), each with its selectable stat types.
type StatsCatalog struct {
	StatsTypesList []StatsCategory `json:"statsTypesList"`
}

type StatsCategory struct {
	Category string      `json:"category"`
	Types    []StatsType `json:"types"`
}

type StatsType struct {
	Header   string `json:"header"`
	Value    string `json:"value"`
	Category string `json:"category"`
}

// StatBlock is one leaderboard block: a header list, a row list and the
// filter the block was generated under. The top-stats API returns a
// single block; the batch snapshot file maps stat-category name → block.
type StatBlock struct {
	Headers []string   `json:"headers"`
	Values  []StatRow  `json:"values"`
	Filter  StatFilter `json:"filter"`
}

type StatFilter struct {
	SelectedMatchType string `json:"selectedMatchType"`
}

// StatRow is a flat ordered list of string-typed values whose positional
// meaning (id, name, matches, innings, runs, average, ...) is fixed by
// convention but not self-describing. Rows arrive either wrapped as
// {"values": [...]} or as a bare array; both decode here. Elements that
// are bare numbers are kept as their string form.
type StatRow struct {
	Values []FlexString
}

func (r *StatRow) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		return json.Unmarshal(data, &r.Values)
	}

	var wrapped struct {
		Values []FlexString `json:"values"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	r.Values = wrapped.Values
	return nil
}
