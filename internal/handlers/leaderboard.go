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

// leaderboardCacheKey holds the full ranking; responses slice it per
// request, so one deletion on a vote cast covers every limit.
const leaderboardCacheKey = "leaderboard"

type LeaderboardHandler struct {
	leaderboard *services.LeaderboardService
	cache       *utils.Cache
}

func NewLeaderboardHandler(leaderboard *services.LeaderboardService, cache *utils.Cache) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboard: leaderboard, cache: cache}
}

// Top returns the ranked snapshot: leaders by net approval, default
// limit 10.
func (h *LeaderboardHandler) Top(c *gin.Context) {
	limit := utils.StringToInt(c.Query("limit"))
	if limit <= 0 {
		limit = services.DefaultLeaderboardLimit
	}

	var ranked []models.Leader
	if cached := h.cache.Get(leaderboardCacheKey); cached != nil {
		if leaders, ok := cached.([]models.Leader); ok {
			ranked = leaders
		}
	}

	if ranked == nil {
		leaders, err := h.leaderboard.RankAll()
		if err != nil {
			log.Printf("Failed to build leaderboard: %v", err)
			c.JSON(http.StatusOK, []models.Leader{})
			return
		}
		h.cache.Set(leaderboardCacheKey, leaders, 30*time.Second)
		ranked = leaders
	}

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	c.JSON(http.StatusOK, ranked)
}
