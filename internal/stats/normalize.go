package stats

import (
	"fmt"

	"github.com/shubhanshu2113/CricBuzz/pkg/models"
)

// Normalize turns a leaderboard block into a display table. The source
// rows are ragged: header and value counts rarely line up, and many rows
// lead with an internal player id. Rows get their leading all-digits id
// dropped, headers are padded with ColN placeholders out to the widest
// row, and every row is padded or truncated to the header count.
func Normalize(block models.StatBlock) models.Table {
	rows := make([][]string, 0, len(block.Values))
	maxLen := 0

	for _, r := range block.Values {
		row := make([]string, 0, len(r.Values))
		for _, v := range r.Values {
			row = append(row, v.String())
		}
		if len(row) > 0 && isDigits(row[0]) {
			row = row[1:]
		}
		if len(row) == 0 {
			continue
		}
		if len(row) > maxLen {
			maxLen = len(row)
		}
		rows = append(rows, row)
	}

	headers := append([]string(nil), block.Headers...)
	for len(headers) < maxLen {
		headers = append(headers, fmt.Sprintf("Col%d", len(headers)+1))
	}

	table := models.Table{Columns: headers, Rows: make([][]any, 0, len(rows))}
	for _, row := range rows {
		normalized := make([]any, len(headers))
		for i := range headers {
			if i < len(row) {
				normalized[i] = row[i]
			} else {
				normalized[i] = ""
			}
		}
		table.Rows = append(table.Rows, normalized)
	}
	return table
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
