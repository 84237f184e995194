package handlers

import (
	"errors"
	"log"
	"net/http"

	"janamat/internal/middleware"
	"janamat/internal/models"
	"janamat/internal/services"
	"janamat/internal/utils"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	comments *services.CommentService
}

func NewCommentHandler(comments *services.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

type commentRequest struct {
	Body        string `json:"body"`
	DisplayName string `json:"display_name"`
}

// ListForLeader returns a leader's discussion thread, oldest first.
func (h *CommentHandler) ListForLeader(c *gin.Context) {
	h.list(c, services.TargetLeader)
}

// ListForAgenda returns an agenda's discussion thread, oldest first.
func (h *CommentHandler) ListForAgenda(c *gin.Context) {
	h.list(c, services.TargetAgenda)
}

// CreateForLeader appends a comment to a leader's thread.
func (h *CommentHandler) CreateForLeader(c *gin.Context) {
	h.create(c, services.TargetLeader)
}

// CreateForAgenda appends a comment to an agenda's thread.
func (h *CommentHandler) CreateForAgenda(c *gin.Context) {
	h.create(c, services.TargetAgenda)
}

func targetIDs(kind services.TargetKind, id uint) (leaderID, agendaID *uint) {
	if kind == services.TargetAgenda {
		return nil, &id
	}
	return &id, nil
}

func (h *CommentHandler) list(c *gin.Context, kind services.TargetKind) {
	id := utils.StringToUint(c.Param("id"))
	leaderID, agendaID := targetIDs(kind, id)

	comments, err := h.comments.List(leaderID, agendaID)
	if err != nil {
		log.Printf("Failed to list %s comments for %d: %v", kind, id, err)
		c.JSON(http.StatusOK, []models.Comment{})
		return
	}
	c.JSON(http.StatusOK, displayComments(comments))
}

func (h *CommentHandler) create(c *gin.Context, kind services.TargetKind) {
	id := utils.StringToUint(c.Param("id"))
	if id == 0 {
		jsonError(c, http.StatusBadRequest, "invalid id")
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request")
		return
	}

	identity := middleware.CurrentIdentity(c)
	displayName := req.DisplayName
	if displayName == "" {
		displayName = identity.DisplayName()
	}

	leaderID, agendaID := targetIDs(kind, id)
	comments, err := h.comments.Append(leaderID, agendaID, identity.VoterKey(), displayName, req.Body)
	switch {
	case errors.Is(err, services.ErrEmptyBody),
		errors.Is(err, services.ErrBodyTooLong),
		errors.Is(err, services.ErrInvalidTarget):
		jsonError(c, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		log.Printf("Failed to append %s comment on %d: %v", kind, id, err)
		jsonError(c, http.StatusInternalServerError, "comment failed")
		return
	}

	c.JSON(http.StatusCreated, displayComments(comments))
}
