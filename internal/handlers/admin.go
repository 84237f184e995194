package handlers

import (
	"log"
	"net/http"

	"janamat/internal/models"
	"janamat/internal/services"
	"janamat/internal/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler covers administrative seeding: leaders and agendas are
// created here and never deleted in normal operation.
type AdminHandler struct {
	leaders *services.LeaderService
	agendas *services.AgendaService
	cache   *utils.Cache
}

func NewAdminHandler(leaders *services.LeaderService, agendas *services.AgendaService, cache *utils.Cache) *AdminHandler {
	return &AdminHandler{leaders: leaders, agendas: agendas, cache: cache}
}

type createLeaderRequest struct {
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	Manifesto   string `json:"manifesto"`
	PhotoURL    string `json:"photo_url"`
	Affiliation string `json:"affiliation"`
	Region      string `json:"region"`
	Verified    bool   `json:"verified"`
}

type createAgendaRequest struct {
	LeaderID    uint   `json:"leader_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// CreateLeader registers a new leader profile.
func (h *AdminHandler) CreateLeader(c *gin.Context) {
	var req createLeaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Name == "" {
		jsonError(c, http.StatusBadRequest, "name is required")
		return
	}

	leader := models.Leader{
		Name:        req.Name,
		Bio:         req.Bio,
		Manifesto:   req.Manifesto,
		PhotoURL:    req.PhotoURL,
		Affiliation: req.Affiliation,
		Region:      req.Region,
		Verified:    req.Verified,
	}
	if err := h.leaders.Create(&leader); err != nil {
		log.Printf("Failed to create leader: %v", err)
		jsonError(c, http.StatusInternalServerError, "create failed")
		return
	}

	h.cache.Delete("leaders:list")
	c.JSON(http.StatusCreated, leader)
}

// CreateAgenda attaches a new agenda to a leader.
func (h *AdminHandler) CreateAgenda(c *gin.Context) {
	var req createAgendaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Title == "" || req.LeaderID == 0 {
		jsonError(c, http.StatusBadRequest, "title and leader_id are required")
		return
	}

	agenda := models.Agenda{
		LeaderID:    req.LeaderID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	}
	if err := h.agendas.Create(&agenda); err != nil {
		log.Printf("Failed to create agenda: %v", err)
		jsonError(c, http.StatusInternalServerError, "create failed")
		return
	}

	h.cache.Delete("agendas:list")
	c.JSON(http.StatusCreated, agenda)
}
