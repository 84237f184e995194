package handlers

import (
	"errors"
	"log"
	"net/http"

	"janamat/internal/middleware"
	"janamat/internal/services"
	"janamat/internal/utils"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	votes *services.VoteService
	cache *utils.Cache
}

func NewVoteHandler(votes *services.VoteService, cache *utils.Cache) *VoteHandler {
	return &VoteHandler{votes: votes, cache: cache}
}

type voteRequest struct {
	VoteType int `json:"vote_type"`
}

// VoteLeader casts a toggle vote on a leader and returns the fresh tally.
func (h *VoteHandler) VoteLeader(c *gin.Context) {
	h.cast(c, services.TargetLeader)
}

// VoteAgenda casts a toggle vote on an agenda and returns the fresh tally.
func (h *VoteHandler) VoteAgenda(c *gin.Context) {
	h.cast(c, services.TargetAgenda)
}

func (h *VoteHandler) cast(c *gin.Context, kind services.TargetKind) {
	id := utils.StringToUint(c.Param("id"))
	if id == 0 {
		jsonError(c, http.StatusBadRequest, "invalid id")
		return
	}

	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request")
		return
	}

	identity := middleware.CurrentIdentity(c)

	tally, err := h.votes.Cast(kind, id, identity.VoterKey(), req.VoteType)
	if errors.Is(err, services.ErrInvalidVoteType) {
		jsonError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		// Writes fail loudly; a dropped vote must never look accepted.
		log.Printf("Failed to cast %s vote on %d: %v", kind, id, err)
		jsonError(c, http.StatusInternalServerError, "vote failed")
		return
	}

	// Tallies feed the cached list and leaderboard payloads; drop the
	// stale keys so the new count shows up immediately.
	if kind == services.TargetLeader {
		h.cache.Delete("leaders:list")
		h.cache.Delete(leaderboardCacheKey)
	} else {
		h.cache.Delete("agendas:list")
	}

	c.JSON(http.StatusOK, tally)
}
