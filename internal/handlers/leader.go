package handlers

import (
	"log"
	"net/http"
	"time"

	"janamat/internal/models"
	"janamat/internal/services"
	"janamat/internal/utils"

	"github.com/gin-gonic/gin"
)

type LeaderHandler struct {
	leaders  *services.LeaderService
	agendas  *services.AgendaService
	comments *services.CommentService
	cache    *utils.Cache
}

func NewLeaderHandler(leaders *services.LeaderService, agendas *services.AgendaService, comments *services.CommentService, cache *utils.Cache) *LeaderHandler {
	return &LeaderHandler{leaders: leaders, agendas: agendas, comments: comments, cache: cache}
}

// leaderDetail is the full profile payload: the leader row plus derived
// fields the client renders directly.
type leaderDetail struct {
	models.Leader
	BioHTML       string           `json:"bio_html"`
	ManifestoHTML string           `json:"manifesto_html"`
	Agendas       []models.Agenda  `json:"agendas"`
	Comments      []models.Comment `json:"comments"`
}

// List returns every leader with its tally.
func (h *LeaderHandler) List(c *gin.Context) {
	cacheKey := "leaders:list"
	if cached := h.cache.Get(cacheKey); cached != nil {
		if leaders, ok := cached.([]models.Leader); ok {
			c.JSON(http.StatusOK, leaders)
			return
		}
	}

	leaders, err := h.leaders.List()
	if err != nil {
		// Reads degrade to an empty payload when the store is down.
		log.Printf("Failed to list leaders: %v", err)
		c.JSON(http.StatusOK, []models.Leader{})
		return
	}

	h.cache.Set(cacheKey, leaders, 1*time.Minute)
	c.JSON(http.StatusOK, leaders)
}

// Detail returns one leader with tally, agendas and comments.
func (h *LeaderHandler) Detail(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	leader, err := h.leaders.Get(id)
	if err != nil {
		log.Printf("Failed to load leader %d: %v", id, err)
		c.JSON(http.StatusOK, nil)
		return
	}
	if leader == nil {
		jsonError(c, http.StatusNotFound, "leader not found")
		return
	}

	agendas, err := h.agendas.ByLeader(id)
	if err != nil {
		log.Printf("Failed to load agendas for leader %d: %v", id, err)
		agendas = []models.Agenda{}
	}

	comments, err := h.comments.List(&leader.ID, nil)
	if err != nil {
		log.Printf("Failed to load comments for leader %d: %v", id, err)
	}

	c.JSON(http.StatusOK, leaderDetail{
		Leader:        *leader,
		BioHTML:       utils.RenderMarkdown(leader.Bio),
		ManifestoHTML: utils.RenderMarkdown(leader.Manifesto),
		Agendas:       agendas,
		Comments:      displayComments(comments),
	})
}

// ListAgendas returns the agendas one leader runs on.
func (h *LeaderHandler) ListAgendas(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	agendas, err := h.agendas.ByLeader(id)
	if err != nil {
		log.Printf("Failed to load agendas for leader %d: %v", id, err)
		agendas = []models.Agenda{}
	}
	c.JSON(http.StatusOK, agendas)
}
