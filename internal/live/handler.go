package live

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shubhanshu2113/CricBuzz/internal/cricapi"
	"github.com/shubhanshu2113/CricBuzz/internal/ingest"
	"github.com/shubhanshu2113/CricBuzz/pkg/models"
)

type Handler struct {
	API     *cricapi.Client
	DB      *sql.DB
	DataDir string // empty disables raw feed archiving
}

func NewHandler(api *cricapi.Client, db *sql.DB, dataDir string) *Handler {
	return &Handler{API: api, DB: db, DataDir: dataDir}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.live)
}

// live fetches the current feed, persists every match on view and
// returns rendered summaries. An empty feed (which includes upstream
// failure) renders as an empty list, not an error.
func (h *Handler) live(c *gin.Context) {
	ctx := c.Request.Context()
	feed := h.API.LiveMatches(ctx)

	matchCount, scoreCount := 0, 0
	summaries := []MatchSummary{}

	for _, typeBlock := range feed.TypeMatches {
		for _, seriesBlock := range typeBlock.SeriesMatches {
			if seriesBlock.SeriesAdWrapper == nil {
				continue
			}
			for _, entry := range seriesBlock.SeriesAdWrapper.Matches {
				m, s, err := ingest.SaveLiveMatch(ctx, h.DB, entry)
				if err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
					return
				}
				matchCount += m
				scoreCount += s
				summaries = append(summaries, Summarize(entry))
			}
		}
	}

	if matchCount > 0 {
		h.archive(feed)
	}

	c.JSON(http.StatusOK, gin.H{
		"matches_saved": matchCount,
		"scores_saved":  scoreCount,
		"matches":       summaries,
	})
}

// archive keeps the raw feed alongside the other batch snapshots so a
// view can be replayed through cmd/ingest later.
func (h *Handler) archive(feed models.MatchFeed) {
	if h.DataDir == "" {
		return
	}
	if err := os.MkdirAll(h.DataDir, 0o755); err != nil {
		log.Printf("[live] archive dir: %v", err)
		return
	}

	b, err := json.MarshalIndent(feed, "", "  ")
	if err != nil {
		log.Printf("[live] marshal feed: %v", err)
		return
	}

	path := filepath.Join(h.DataDir, "live-"+uuid.NewString()+".json")
	if err := os.WriteFile(path, b, 0o644); err != nil {
		log.Printf("[live] write %s: %v", path, err)
	}
}
