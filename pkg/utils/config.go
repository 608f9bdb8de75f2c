package utils

import (
	"os"
	"strconv"
)

type APIConfig struct {
	BaseURL           string
	APIKey            string
	Host              string
	RequestsPerMinute int
}

func LoadAPIConfig() APIConfig {
	base := os.Getenv("CRICSTATS_API_BASE_URL")
	if base == "" {
		base = "https://cricbuzz-cricket.p.rapidapi.com"
	}

	host := os.Getenv("CRICSTATS_API_HOST")
	if host == "" {
		host = "cricbuzz-cricket.p.rapidapi.com"
	}

	rpm := 30
	if v := os.Getenv("CRICSTATS_API_RPM"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			rpm = n
		}
	}

	return APIConfig{
		BaseURL:           base,
		APIKey:            os.Getenv("CRICSTATS_API_KEY"),
		Host:              host,
		RequestsPerMinute: rpm,
	}
}

// DataDir is where batch JSON snapshots live and where raw live feeds
// get archived.
func DataDir() string {
	if d := os.Getenv("CRICSTATS_DATA_DIR"); d != "" {
		return d
	}
	return "data"
}
