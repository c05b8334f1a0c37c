package models

import "time"

// JobDescription stores the most recently submitted JD used for matching.
type JobDescription struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"jd_text"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
