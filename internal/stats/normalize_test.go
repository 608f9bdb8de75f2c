package stats

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubhanshu2113/CricBuzz/pkg/models"
)

func decodeBlock(t *testing.T, raw string) models.StatBlock {
	t.Helper()

	var block models.StatBlock
	require.NoError(t, json.Unmarshal([]byte(raw), &block))
	return block
}

func TestNormalizeDropsLeadingIDColumn(t *testing.T) {
	block := decodeBlock(t, `{
		"headers": ["Player", "Matches", "Runs"],
		"values": [
			{"values": ["123", "Player A", "10", "450"]},
			{"values": ["Player B", "12", "600"]}
		]
	}`)

	table := Normalize(block)
	assert.Equal(t, []string{"Player", "Matches", "Runs"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []any{"Player A", "10", "450"}, table.Rows[0])
	assert.Equal(t, []any{"Player B", "12", "600"}, table.Rows[1])
}

func TestNormalizePadsHeadersAndRows(t *testing.T) {
	block := decodeBlock(t, `{
		"headers": ["Player"],
		"values": [
			{"values": ["Player A", "10", "450"]},
			{"values": ["Player B"]}
		]
	}`)

	table := Normalize(block)
	assert.Equal(t, []string{"Player", "Col2", "Col3"}, table.Columns)
	assert.Equal(t, []any{"Player A", "10", "450"}, table.Rows[0])
	assert.Equal(t, []any{"Player B", "", ""}, table.Rows[1])
}

func TestNormalizeAcceptsBareArrayRows(t *testing.T) {
	block := decodeBlock(t, `{
		"headers": ["Player", "Runs"],
		"values": [["Player A", "450"]]
	}`)

	table := Normalize(block)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []any{"Player A", "450"}, table.Rows[0])
}

func TestNormalizeEmptyBlock(t *testing.T) {
	table := Normalize(models.StatBlock{})
	assert.Empty(t, table.Rows)
}
