package models

import "time"

// Assessment is append-only: every submission creates a new row.
type Assessment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	Topic      string    `gorm:"size:50;not null" json:"topic"`
	Score      int       `json:"score"`
	Percentage float64   `json:"percentage"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}
