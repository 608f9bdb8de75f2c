package stats

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shubhanshu2113/CricBuzz/internal/cricapi"
	"github.com/shubhanshu2113/CricBuzz/internal/ingest"
	"github.com/shubhanshu2113/CricBuzz/pkg/models"
)

type Handler struct {
	API *cricapi.Client
	DB  *sql.DB
}

func NewHandler(api *cricapi.Client, db *sql.DB) *Handler {
	return &Handler{API: api, DB: db}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/types", h.types)
	rg.GET("/top", h.top)
	rg.POST("/top/save", h.save)
}

func (h *Handler) types(c *gin.Context) {
	catalog := h.API.StatsCatalog(c.Request.Context())

	resp := gin.H{"categories": catalog.StatsTypesList}
	if len(catalog.StatsTypesList) == 0 {
		// empty and failed are indistinguishable by contract
		resp["warning"] = "no stat types available"
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) top(c *gin.Context) {
	statsType := strings.TrimSpace(c.Query("statsType"))
	if statsType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "statsType required"})
		return
	}

	block := h.API.TopStats(c.Request.Context(), statsType, c.Query("formatType"))
	table := Normalize(block)

	resp := gin.H{"table": table}
	if len(table.Rows) == 0 {
		resp["warning"] = "no player rows for this selection"
	}
	c.JSON(http.StatusOK, resp)
}

// save fetches a leaderboard and persists it through the top-stats
// loader, keyed under the stat type it was requested as.
func (h *Handler) save(c *gin.Context) {
	statsType := strings.TrimSpace(c.Query("statsType"))
	if statsType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "statsType required"})
		return
	}

	ctx := c.Request.Context()
	block := h.API.TopStats(ctx, statsType, c.Query("formatType"))

	inserted, err := ingest.LoadTopStats(ctx, h.DB, map[string]models.StatBlock{statsType: block})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"inserted": inserted, "scope": statsType})
}
