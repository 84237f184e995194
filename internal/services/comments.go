package services

import (
	"errors"
	"unicode/utf8"

	"janamat/internal/models"

	"gorm.io/gorm"
)

// MaxCommentLength bounds comment bodies, counted in runes.
const MaxCommentLength = 1000

var (
	ErrEmptyBody     = errors.New("comment body must not be empty")
	ErrBodyTooLong   = errors.New("comment body exceeds 1000 characters")
	ErrInvalidTarget = errors.New("comment must attach to exactly one of leader or agenda")
)

// CommentService is the append-only discussion log. Comments are never
// edited or deleted.
type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// Append validates and stores a comment, then returns the updated list
// for its target.
func (s *CommentService) Append(leaderID, agendaID *uint, authorID, displayName, body string) ([]models.Comment, error) {
	if (leaderID == nil) == (agendaID == nil) {
		return nil, ErrInvalidTarget
	}
	if body == "" {
		return nil, ErrEmptyBody
	}
	if utf8.RuneCountInString(body) > MaxCommentLength {
		return nil, ErrBodyTooLong
	}

	comment := models.Comment{
		LeaderID:    leaderID,
		AgendaID:    agendaID,
		AuthorID:    authorID,
		DisplayName: displayName,
		Body:        body,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}

	return s.List(leaderID, agendaID)
}

// List returns the comments for one target ordered by creation time
// ascending. Every call re-reads current state; there is no cursor.
func (s *CommentService) List(leaderID, agendaID *uint) ([]models.Comment, error) {
	if (leaderID == nil) == (agendaID == nil) {
		return nil, ErrInvalidTarget
	}

	// Secondary id ordering keeps same-timestamp batches deterministic.
	query := s.db.Order("created_at ASC, id ASC")
	if leaderID != nil {
		query = query.Where("leader_id = ?", *leaderID)
	} else {
		query = query.Where("agenda_id = ?", *agendaID)
	}

	var comments []models.Comment
	if err := query.Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
