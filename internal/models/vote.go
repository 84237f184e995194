package models

import (
	"time"
)

// Vote type values. A retracted vote is kept as VoteNone rather than
// deleted, so the toggle stays a single upsert; tallies count only ±1.
const (
	VoteUp   = 1
	VoteDown = -1
	VoteNone = 0
)

// Tally is the derived vote summary for a leader or agenda.
type Tally struct {
	Upvotes   int `json:"upvotes"`
	Downvotes int `json:"downvotes"`
	Net       int `json:"net"`
}

// One row per (leader, voter); the unique index backs the atomic upsert
// that makes double-clicks from the same voter safe.
type LeaderVote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	LeaderID  uint      `gorm:"not null;uniqueIndex:idx_leader_voter" json:"leader_id"`
	VoterID   string    `gorm:"size:255;not null;uniqueIndex:idx_leader_voter" json:"voter_id"`
	VoteType  int       `gorm:"not null" json:"vote_type"`
	CreatedAt time.Time `json:"created_at"`
}

type AgendaVote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AgendaID  uint      `gorm:"not null;uniqueIndex:idx_agenda_voter" json:"agenda_id"`
	VoterID   string    `gorm:"size:255;not null;uniqueIndex:idx_agenda_voter" json:"voter_id"`
	VoteType  int       `gorm:"not null" json:"vote_type"`
	CreatedAt time.Time `json:"created_at"`
}
