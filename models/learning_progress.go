package models

import "time"

type LearningProgress struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	UserID         uint       `gorm:"not null;index" json:"user_id"`
	ModuleName     string     `gorm:"size:150;not null" json:"module_name"`
	Completed      bool       `gorm:"default:false" json:"completed"`
	CompletionDate *time.Time `gorm:"type:date" json:"completion_date,omitempty"`
}
