package models

import "time"

type Training struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	UserID        uint       `gorm:"not null;index" json:"user_id"`
	Title         string     `gorm:"size:150" json:"title"`
	Provider      string     `gorm:"size:100" json:"provider"`
	CompletedDate *time.Time `gorm:"type:date" json:"completed_date,omitempty"`
	Rating        float64    `json:"rating"`
	Certificate   string     `gorm:"size:255" json:"certificate"`
}
