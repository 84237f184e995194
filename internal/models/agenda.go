package models

import (
	"time"
)

type Agenda struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	LeaderID    uint      `gorm:"not null;index" json:"leader_id"`
	Leader      Leader    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"size:100" json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// 非数据库字段，查询时填充
	Votes Tally `gorm:"-" json:"votes"`
}
