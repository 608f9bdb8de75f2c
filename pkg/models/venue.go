package models

// VenueEntry is one element of the flat venue list. Numeric-looking
// fields (capacity, established) are free text in the source (capacity
// in particular shows up as "50,000", "TBD" or not at all), so they stay
// strings here and are coerced by the loader.
type VenueEntry struct {
	Ground      string     `json:"ground"`
	City        string     `json:"city"`
	Country     string     `json:"country"`
	Timezone    string     `json:"timezone"`
	Established FlexString `json:"established"`
	Capacity    FlexString `json:"capacity"`
	KnownAs     string     `json:"knownAs"`
	Ends        string     `json:"ends"`
	HomeTeam    string     `json:"homeTeam"`
	Floodlights *bool      `json:"floodlights"`
	Curator     string     `json:"curator"`
	Profile     string     `json:"profile"`
	ImageURL    string     `json:"imageUrl"`
	ImageID     FlexString `json:"imageId"`
}

// VenueList is the envelope returned by the all-venues endpoint.
type VenueList struct {
	VenueList []VenueEntry `json:"venueList"`
}
