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

type AgendaHandler struct {
	agendas  *services.AgendaService
	comments *services.CommentService
	cache    *utils.Cache
}

func NewAgendaHandler(agendas *services.AgendaService, comments *services.CommentService, cache *utils.Cache) *AgendaHandler {
	return &AgendaHandler{agendas: agendas, comments: comments, cache: cache}
}

type agendaDetail struct {
	models.Agenda
	DescriptionHTML string           `json:"description_html"`
	Comments        []models.Comment `json:"comments"`
}

// List returns every agenda with its tally.
func (h *AgendaHandler) List(c *gin.Context) {
	cacheKey := "agendas:list"
	if cached := h.cache.Get(cacheKey); cached != nil {
		if agendas, ok := cached.([]models.Agenda); ok {
			c.JSON(http.StatusOK, agendas)
			return
		}
	}

	agendas, err := h.agendas.List()
	if err != nil {
		log.Printf("Failed to list agendas: %v", err)
		c.JSON(http.StatusOK, []models.Agenda{})
		return
	}

	h.cache.Set(cacheKey, agendas, 1*time.Minute)
	c.JSON(http.StatusOK, agendas)
}

// Detail returns one agenda with tally and comments.
func (h *AgendaHandler) Detail(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	agenda, err := h.agendas.Get(id)
	if err != nil {
		log.Printf("Failed to load agenda %d: %v", id, err)
		c.JSON(http.StatusOK, nil)
		return
	}
	if agenda == nil {
		jsonError(c, http.StatusNotFound, "agenda not found")
		return
	}

	comments, err := h.comments.List(nil, &agenda.ID)
	if err != nil {
		log.Printf("Failed to load comments for agenda %d: %v", id, err)
	}

	c.JSON(http.StatusOK, agendaDetail{
		Agenda:          *agenda,
		DescriptionHTML: utils.RenderMarkdown(agenda.Description),
		Comments:        displayComments(comments),
	})
}
