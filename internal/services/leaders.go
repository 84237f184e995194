package services

import (
	"errors"
	"strings"

	"janamat/internal/models"

	"gorm.io/gorm"
)

// LeaderService reads and seeds the leader directory.
type LeaderService struct {
	db    *gorm.DB
	votes *VoteService
}

func NewLeaderService(db *gorm.DB, votes *VoteService) *LeaderService {
	return &LeaderService{db: db, votes: votes}
}

// List returns all leaders with tallies, oldest first.
func (s *LeaderService) List() ([]models.Leader, error) {
	var leaders []models.Leader
	if err := s.db.Order("created_at ASC, id ASC").Find(&leaders).Error; err != nil {
		return nil, err
	}
	if err := s.votes.FillLeaderTallies(leaders); err != nil {
		return nil, err
	}
	return leaders, nil
}

// Get returns one leader with its tally, or nil when absent.
func (s *LeaderService) Get(id uint) (*models.Leader, error) {
	var leader models.Leader
	if err := s.db.First(&leader, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	tally, err := s.votes.Tally(TargetLeader, id)
	if err != nil {
		return nil, err
	}
	leader.Votes = tally
	return &leader, nil
}

// Search filters by case-insensitive substring on name, region or
// affiliation. LOWER/LIKE keeps the query portable between Postgres and
// the sqlite test store.
func (s *LeaderService) Search(query string) ([]models.Leader, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	var leaders []models.Leader
	if err := s.db.
		Where("LOWER(name) LIKE ? OR LOWER(region) LIKE ? OR LOWER(affiliation) LIKE ?", pattern, pattern, pattern).
		Order("id ASC").
		Find(&leaders).Error; err != nil {
		return nil, err
	}
	if err := s.votes.FillLeaderTallies(leaders); err != nil {
		return nil, err
	}
	return leaders, nil
}

// Create registers a new leader. Only the administrative seeding
// endpoint calls this; leaders are never deleted in normal operation.
func (s *LeaderService) Create(leader *models.Leader) error {
	return s.db.Create(leader).Error
}
