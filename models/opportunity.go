package models

import "time"

type Opportunity struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ConsultantID uint      `gorm:"not null;index" json:"consultant_id"`
	Title        string    `gorm:"size:100" json:"title"`
	Status       string    `gorm:"size:20" json:"status"` // active|completed
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}
