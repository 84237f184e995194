package models

import (
	"time"
)

type Leader struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Bio         string    `gorm:"type:text" json:"bio"`
	Manifesto   string    `gorm:"type:text" json:"manifesto"`
	PhotoURL    string    `gorm:"size:500" json:"photo_url"`
	Affiliation string    `gorm:"size:255" json:"affiliation"`
	Region      string    `gorm:"size:255" json:"region"`
	Verified    bool      `gorm:"default:false" json:"verified"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// 非数据库字段，查询时填充
	Votes Tally `gorm:"-" json:"votes"`
}
