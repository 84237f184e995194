package handlers

import (
	"log"
	"net/http"

	"janamat/internal/models"
	"janamat/internal/services"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	leaders *services.LeaderService
	agendas *services.AgendaService
}

func NewSearchHandler(leaders *services.LeaderService, agendas *services.AgendaService) *SearchHandler {
	return &SearchHandler{leaders: leaders, agendas: agendas}
}

// Search filters leaders (default) or agendas by case-insensitive
// substring match. An empty query matches everything.
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("q")

	switch c.DefaultQuery("type", "leader") {
	case "agenda":
		agendas, err := h.agendas.Search(query)
		if err != nil {
			log.Printf("Failed to search agendas for %q: %v", query, err)
			agendas = []models.Agenda{}
		}
		c.JSON(http.StatusOK, agendas)
	default:
		leaders, err := h.leaders.Search(query)
		if err != nil {
			log.Printf("Failed to search leaders for %q: %v", query, err)
			leaders = []models.Leader{}
		}
		c.JSON(http.StatusOK, leaders)
	}
}
