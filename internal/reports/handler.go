package reports

import (
	"database/sql"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shubhanshu2113/CricBuzz/internal/ingest"
	"github.com/shubhanshu2113/CricBuzz/pkg/database"
)

// Snapshot file names the batch loaders expect inside the data dir.
const (
	rosterFile   = "all_team_players.json"
	matchesFile  = "recent_matches.json"
	venuesFile   = "all_venues.json"
	topStatsFile = "player_stats.json"
)

type Handler struct {
	DB      *sql.DB
	DataDir string
}

func NewHandler(db *sql.DB, dataDir string) *Handler {
	return &Handler{DB: db, DataDir: dataDir}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/queries", h.list)
	rg.POST("/queries/run", h.run)
	rg.POST("/queries/adhoc", h.adhoc)
	rg.POST("/ingest/:kind", h.ingestKind)
}

func (h *Handler) list(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"queries": Catalog})
}

type runReq struct {
	Name string `json:"name"`
}

func (h *Handler) run(c *gin.Context) {
	var req runReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	q, ok := Lookup(strings.TrimSpace(req.Name))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown query"})
		return
	}

	table, err := database.Query(c.Request.Context(), h.DB, q.SQL)
	if err != nil {
		// surfaced inline, the session survives
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": q.Name, "title": q.Title, "table": table})
}

type adhocReq struct {
	SQL string `json:"sql"`
}

func (h *Handler) adhoc(c *gin.Context) {
	var req adhocReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if strings.TrimSpace(req.SQL) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sql required"})
		return
	}

	table, err := database.Query(c.Request.Context(), h.DB, req.SQL)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"table": table})
}

// ingestKind runs one of the batch file loaders against the data dir.
func (h *Handler) ingestKind(c *gin.Context) {
	ctx := c.Request.Context()
	kind := c.Param("kind")

	switch kind {
	case "players":
		loaded, skipped, err := ingest.LoadRosterFile(ctx, h.DB, filepath.Join(h.DataDir, rosterFile))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"players": loaded, "skipped": skipped})

	case "matches":
		matches, scores, err := ingest.LoadMatchFile(ctx, h.DB, filepath.Join(h.DataDir, matchesFile))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"matches": matches, "scores": scores})

	case "venues":
		venues, err := ingest.LoadVenueFile(ctx, h.DB, filepath.Join(h.DataDir, venuesFile))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"venues": venues})

	case "stats":
		inserted, err := ingest.LoadTopStatsFile(ctx, h.DB, filepath.Join(h.DataDir, topStatsFile))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"stats": inserted})

	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown ingest kind"})
	}
}
