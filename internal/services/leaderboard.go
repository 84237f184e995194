package services

import (
	"sort"

	"janamat/internal/models"

	"gorm.io/gorm"
)

// DefaultLeaderboardLimit caps the snapshot when the caller passes no
// usable limit.
const DefaultLeaderboardLimit = 10

// LeaderboardService ranks leaders by net approval.
type LeaderboardService struct {
	db    *gorm.DB
	votes *VoteService
}

func NewLeaderboardService(db *gorm.DB, votes *VoteService) *LeaderboardService {
	return &LeaderboardService{db: db, votes: votes}
}

// RankAll returns every leader by net score, recomputed from scratch on
// every call. Ties on net order by ascending leader id, so repeated runs
// with the same ledger always produce the same sequence.
func (s *LeaderboardService) RankAll() ([]models.Leader, error) {
	var leaders []models.Leader
	if err := s.db.Find(&leaders).Error; err != nil {
		return nil, err
	}
	if err := s.votes.FillLeaderTallies(leaders); err != nil {
		return nil, err
	}

	sort.Slice(leaders, func(i, j int) bool {
		if leaders[i].Votes.Net != leaders[j].Votes.Net {
			return leaders[i].Votes.Net > leaders[j].Votes.Net
		}
		return leaders[i].ID < leaders[j].ID
	})
	return leaders, nil
}

// Rank is RankAll truncated to limit. A limit <= 0 falls back to the
// default; a limit past the candidate count returns everything.
func (s *LeaderboardService) Rank(limit int) ([]models.Leader, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}

	leaders, err := s.RankAll()
	if err != nil {
		return nil, err
	}
	if len(leaders) > limit {
		leaders = leaders[:limit]
	}
	return leaders, nil
}
