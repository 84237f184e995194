package services

import (
	"errors"
	"strings"

	"janamat/internal/models"

	"gorm.io/gorm"
)

// AgendaService reads and seeds policy agendas.
type AgendaService struct {
	db    *gorm.DB
	votes *VoteService
}

func NewAgendaService(db *gorm.DB, votes *VoteService) *AgendaService {
	return &AgendaService{db: db, votes: votes}
}

// List returns all agendas with tallies.
func (s *AgendaService) List() ([]models.Agenda, error) {
	var agendas []models.Agenda
	if err := s.db.Order("id ASC").Find(&agendas).Error; err != nil {
		return nil, err
	}
	if err := s.votes.FillAgendaTallies(agendas); err != nil {
		return nil, err
	}
	return agendas, nil
}

// Get returns one agenda with its tally, or nil when absent.
func (s *AgendaService) Get(id uint) (*models.Agenda, error) {
	var agenda models.Agenda
	if err := s.db.First(&agenda, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	tally, err := s.votes.Tally(TargetAgenda, id)
	if err != nil {
		return nil, err
	}
	agenda.Votes = tally
	return &agenda, nil
}

// ByLeader returns the agendas one leader runs on, with tallies.
func (s *AgendaService) ByLeader(leaderID uint) ([]models.Agenda, error) {
	var agendas []models.Agenda
	if err := s.db.Where("leader_id = ?", leaderID).Order("id ASC").Find(&agendas).Error; err != nil {
		return nil, err
	}
	if err := s.votes.FillAgendaTallies(agendas); err != nil {
		return nil, err
	}
	return agendas, nil
}

// Search filters by case-insensitive substring on title or category.
func (s *AgendaService) Search(query string) ([]models.Agenda, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	var agendas []models.Agenda
	if err := s.db.
		Where("LOWER(title) LIKE ? OR LOWER(category) LIKE ?", pattern, pattern).
		Order("id ASC").
		Find(&agendas).Error; err != nil {
		return nil, err
	}
	if err := s.votes.FillAgendaTallies(agendas); err != nil {
		return nil, err
	}
	return agendas, nil
}

// Create attaches a new agenda to a leader (administrative seeding).
func (s *AgendaService) Create(agenda *models.Agenda) error {
	return s.db.Create(agenda).Error
}
