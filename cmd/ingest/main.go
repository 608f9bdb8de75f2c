package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/shubhanshu2113/CricBuzz/internal/ingest"
	"github.com/shubhanshu2113/CricBuzz/pkg/database"
	"github.com/shubhanshu2113/CricBuzz/pkg/utils"
)

func main() {
	dataDir := utils.DataDir()
	var (
		matchesIn = flag.String("matches", filepath.Join(dataDir, "recent_matches.json"), "input JSON path for the match feed")
		rosterIn  = flag.String("players", filepath.Join(dataDir, "all_team_players.json"), "input JSON path for the player roster")
		venuesIn  = flag.String("venues", filepath.Join(dataDir, "all_venues.json"), "input JSON path for the venue list")
		statsIn   = flag.String("stats", filepath.Join(dataDir, "player_stats.json"), "input JSON path for the stats leaderboards")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("could not load .env: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	runID := uuid.NewString()
	log.Printf("[ingest] run %s starting", runID)

	matches, scores, err := ingest.LoadMatchFile(ctx, db, *matchesIn)
	if err != nil {
		log.Fatalf("load matches failed: %v", err)
	}
	log.Printf("[ingest] matches: %d saved, %d score rows from %s", matches, scores, *matchesIn)

	players, skipped, err := ingest.LoadRosterFile(ctx, db, *rosterIn)
	if err != nil {
		log.Fatalf("load players failed: %v", err)
	}
	log.Printf("[ingest] players: %d saved, %d skipped from %s", players, skipped, *rosterIn)

	venues, err := ingest.LoadVenueFile(ctx, db, *venuesIn)
	if err != nil {
		log.Fatalf("load venues failed: %v", err)
	}
	log.Printf("[ingest] venues: %d saved from %s", venues, *venuesIn)

	stats, err := ingest.LoadTopStatsFile(ctx, db, *statsIn)
	if err != nil {
		log.Fatalf("load stats failed: %v", err)
	}
	log.Printf("[ingest] stats: %d rows saved from %s", stats, *statsIn)

	log.Printf("[ingest] run %s complete", runID)
}
