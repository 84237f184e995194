package models

import (
	"time"
)

// Comment attaches to exactly one of Leader or Agenda; the XOR is
// enforced at write time in the comment service. Append-only: comments
// are never edited or deleted.
type Comment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	LeaderID    *uint     `gorm:"index" json:"leader_id"`
	AgendaID    *uint     `gorm:"index" json:"agenda_id"`
	AuthorID    string    `gorm:"size:255;not null" json:"author_id"`
	DisplayName string    `gorm:"size:255" json:"display_name"`
	Body        string    `gorm:"type:text;not null" json:"body"`
	CreatedAt   time.Time `json:"created_at"`
}
