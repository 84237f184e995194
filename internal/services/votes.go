package services

import (
	"errors"

	"janamat/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrInvalidVoteType is returned when a cast is neither +1 nor -1.
var ErrInvalidVoteType = errors.New("vote type must be +1 or -1")

// TargetKind selects which vote ledger an operation runs against.
type TargetKind string

const (
	TargetLeader TargetKind = "leader"
	TargetAgenda TargetKind = "agenda"
)

func (k TargetKind) voteModel() (interface{}, string) {
	if k == TargetAgenda {
		return &models.AgendaVote{}, "agenda_id"
	}
	return &models.LeaderVote{}, "leader_id"
}

// VoteService owns the vote ledger: per-target tallies and the
// one-vote-per-voter toggle.
type VoteService struct {
	db *gorm.DB
}

func NewVoteService(db *gorm.DB) *VoteService {
	return &VoteService{db: db}
}

// Tally counts up and down votes for one target. Absent targets have no
// rows and yield a zero tally; retracted votes (vote_type 0) never count.
func (s *VoteService) Tally(kind TargetKind, targetID uint) (models.Tally, error) {
	model, col := kind.voteModel()

	var up int64
	if err := s.db.Model(model).Where(col+" = ? AND vote_type = ?", targetID, models.VoteUp).Count(&up).Error; err != nil {
		return models.Tally{}, err
	}
	var down int64
	if err := s.db.Model(model).Where(col+" = ? AND vote_type = ?", targetID, models.VoteDown).Count(&down).Error; err != nil {
		return models.Tally{}, err
	}

	return models.Tally{Upvotes: int(up), Downvotes: int(down), Net: int(up) - int(down)}, nil
}

// Cast applies toggle semantics for one voter on one target and returns
// the fresh tally. Repeating the stored vote retracts it; a different
// vote replaces it. The whole decision runs as a single upsert against
// the (target, voter) unique index, so a double-click from the same
// voter can never interleave a stale read with a write.
func (s *VoteService) Cast(kind TargetKind, targetID uint, voterID string, voteType int) (models.Tally, error) {
	if voteType != models.VoteUp && voteType != models.VoteDown {
		return models.Tally{}, ErrInvalidVoteType
	}

	// In the conflict branch the unqualified column is the stored row and
	// excluded is the incoming one; same vote zeroes out, different vote
	// replaces. Works on both Postgres and sqlite.
	toggle := clause.Assignments(map[string]interface{}{
		"vote_type": gorm.Expr("CASE WHEN vote_type = excluded.vote_type THEN 0 ELSE excluded.vote_type END"),
	})

	var err error
	switch kind {
	case TargetAgenda:
		vote := models.AgendaVote{AgendaID: targetID, VoterID: voterID, VoteType: voteType}
		err = s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "agenda_id"}, {Name: "voter_id"}},
			DoUpdates: toggle,
		}).Create(&vote).Error
	default:
		vote := models.LeaderVote{LeaderID: targetID, VoterID: voterID, VoteType: voteType}
		err = s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "leader_id"}, {Name: "voter_id"}},
			DoUpdates: toggle,
		}).Create(&vote).Error
	}
	if err != nil {
		return models.Tally{}, err
	}

	return s.Tally(kind, targetID)
}

type voteCount struct {
	TargetID uint
	VoteType int
	Count    int
}

// FillLeaderTallies computes tallies for a batch of leaders with one
// grouped query instead of two counts per row.
func (s *VoteService) FillLeaderTallies(leaders []models.Leader) error {
	if len(leaders) == 0 {
		return nil
	}

	ids := make([]uint, len(leaders))
	for i, l := range leaders {
		ids[i] = l.ID
	}

	var rows []voteCount
	if err := s.db.Model(&models.LeaderVote{}).
		Select("leader_id AS target_id, vote_type, COUNT(*) AS count").
		Where("leader_id IN ?", ids).
		Group("leader_id, vote_type").
		Scan(&rows).Error; err != nil {
		return err
	}

	tallies := tallyMap(rows)
	for i := range leaders {
		leaders[i].Votes = tallies[leaders[i].ID]
	}
	return nil
}

// FillAgendaTallies is FillLeaderTallies for the agenda ledger.
func (s *VoteService) FillAgendaTallies(agendas []models.Agenda) error {
	if len(agendas) == 0 {
		return nil
	}

	ids := make([]uint, len(agendas))
	for i, a := range agendas {
		ids[i] = a.ID
	}

	var rows []voteCount
	if err := s.db.Model(&models.AgendaVote{}).
		Select("agenda_id AS target_id, vote_type, COUNT(*) AS count").
		Where("agenda_id IN ?", ids).
		Group("agenda_id, vote_type").
		Scan(&rows).Error; err != nil {
		return err
	}

	tallies := tallyMap(rows)
	for i := range agendas {
		agendas[i].Votes = tallies[agendas[i].ID]
	}
	return nil
}

// tallyMap folds grouped count rows into per-target tallies.
func tallyMap(rows []voteCount) map[uint]models.Tally {
	tallies := make(map[uint]models.Tally)
	for _, r := range rows {
		t := tallies[r.TargetID]
		switch r.VoteType {
		case models.VoteUp:
			t.Upvotes = r.Count
		case models.VoteDown:
			t.Downvotes = r.Count
		}
		t.Net = t.Upvotes - t.Downvotes
		tallies[r.TargetID] = t
	}
	return tallies
}
