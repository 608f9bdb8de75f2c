package crud

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shubhanshu2113/CricBuzz/pkg/models"
)

type Handler struct {
	Repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/tables", h.tables)
	rg.GET("/tables/:name/rows", h.rows)

	rg.GET("/teams", h.listTeams)
	rg.POST("/teams", h.createTeam)
	rg.PUT("/teams/:id", h.updateTeam)
	rg.DELETE("/teams/:id", h.deleteTeam)

	rg.GET("/playerstats", h.listPlayerStats)
	rg.POST("/playerstats", h.createPlayerStat)
	rg.PUT("/playerstats/:rowid", h.updatePlayerStat)
	rg.DELETE("/playerstats/:rowid", h.deletePlayerStat)
}

func (h *Handler) tables(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tables": Tables})
}

func (h *Handler) rows(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	if !ValidTable(name) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown table"})
		return
	}

	table, err := h.Repo.Rows(c.Request.Context(), name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"table": table})
}

func (h *Handler) listTeams(c *gin.Context) {
	teams, err := h.Repo.ListTeams(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": teams})
}

type teamReq struct {
	TeamID    int64  `json:"team_id"`
	TeamName  string `json:"team_name"`
	TeamSName string `json:"team_sname"`
}

func (h *Handler) createTeam(c *gin.Context) {
	var req teamReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if req.TeamID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "team_id required"})
		return
	}

	err := h.Repo.InsertTeam(c.Request.Context(), models.Team{
		TeamID:    req.TeamID,
		TeamName:  req.TeamName,
		TeamSName: req.TeamSName,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"team_id": req.TeamID})
}

func (h *Handler) updateTeam(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req teamReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	updated, err := h.Repo.UpdateTeam(c.Request.Context(), id, req.TeamName, req.TeamSName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"team_id": id})
}

func (h *Handler) deleteTeam(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	deleted, err := h.Repo.DeleteTeam(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) listPlayerStats(c *gin.Context) {
	stats, err := h.Repo.ListPlayerStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": stats})
}

func (h *Handler) createPlayerStat(c *gin.Context) {
	var req models.PlayerStat
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if strings.TrimSpace(req.PlayerName) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "player_name required"})
		return
	}

	rowid, err := h.Repo.InsertPlayerStat(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"rowid": rowid})
}

type statUpdateReq struct {
	Runs    int64   `json:"runs"`
	Average float64 `json:"average"`
}

func (h *Handler) updatePlayerStat(c *gin.Context) {
	rowid, ok := pathID(c, "rowid")
	if !ok {
		return
	}

	var req statUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	updated, err := h.Repo.UpdatePlayerStat(c.Request.Context(), rowid, req.Runs, req.Average)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rowid": rowid})
}

func (h *Handler) deletePlayerStat(c *gin.Context) {
	rowid, ok := pathID(c, "rowid")
	if !ok {
		return
	}

	deleted, err := h.Repo.DeletePlayerStat(c.Request.Context(), rowid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func pathID(c *gin.Context, param string) (int64, bool) {
	raw := strings.TrimSpace(c.Param(param))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + param})
		return 0, false
	}
	return id, true
}
