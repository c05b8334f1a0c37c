package models

// Skill rows are replaced wholesale when a resume is (re)processed.
type Skill struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	UserID      uint   `gorm:"not null;index" json:"user_id"`
	Name        string `gorm:"size:100;not null" json:"skill"`
	Proficiency int    `json:"proficiency"` // 1-10
}
