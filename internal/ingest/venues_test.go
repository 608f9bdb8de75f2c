package ingest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubhanshu2113/CricBuzz/pkg/models"
)

func TestParseCapacity(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"50,000", 50000, true},
		{"1,23,456", 123456, true}, // Indian grouping shows up in the source
		{"132000", 132000, true},
		{" 18,000 ", 18000, true},
		{"TBD", 0, false},
		{"", 0, false},
		{"50k", 0, false},
		{"-100", 0, false},
	}

	for _, tc := range cases {
		got, ok := ParseCapacity(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		if tc.ok {
			assert.Equal(t, tc.want, got, "input %q", tc.in)
		}
	}
}

func TestLoadVenuesCoercesCapacity(t *testing.T) {
	db := newTestDB(t)

	entries := []models.VenueEntry{
		{Ground: "X", Capacity: "50,000"},
		{Ground: "Y", Capacity: "TBD"},
	}

	count, err := LoadVenues(context.Background(), db, entries)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var capacity int64
	require.NoError(t, db.QueryRow(`SELECT capacity FROM venues WHERE venue_name = 'X'`).Scan(&capacity))
	assert.Equal(t, int64(50000), capacity)

	var nullCap any
	require.NoError(t, db.QueryRow(`SELECT capacity FROM venues WHERE venue_name = 'Y'`).Scan(&nullCap))
	assert.Nil(t, nullCap)
}

func TestLoadVenuesTwiceDuplicatesRows(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	entries := []models.VenueEntry{{Ground: "Eden Gardens", City: "Kolkata", Capacity: "66,000"}}

	_, err := LoadVenues(ctx, db, entries)
	require.NoError(t, err)
	_, err = LoadVenues(ctx, db, entries)
	require.NoError(t, err)

	// no natural key on venues: re-ingestion duplicates. Known limitation,
	// callers guard idempotency at a higher level.
	assert.Equal(t, 2, countRows(t, db, "venues"))
}

func TestDecodeVenuesAcceptsArrayAndEnvelope(t *testing.T) {
	array := []byte(`[{"ground": "A"}, {"ground": "B"}]`)
	envelope := []byte(`{"venueList": [{"ground": "A"}]}`)

	fromArray, err := decodeVenues(array)
	require.NoError(t, err)
	assert.Len(t, fromArray, 2)

	fromEnvelope, err := decodeVenues(envelope)
	require.NoError(t, err)
	assert.Len(t, fromEnvelope, 1)
}
