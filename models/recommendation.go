package models

// Recommendation rows are regenerated each time the AI recommender runs.
type Recommendation struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	UserID      uint   `gorm:"not null;index" json:"user_id"`
	Skill       string `gorm:"size:100" json:"skill"`
	CourseTitle string `gorm:"size:150" json:"course_title"`
	Platform    string `gorm:"size:100" json:"platform"`
	Link        string `gorm:"size:255" json:"link"`
	Reason      string `gorm:"size:255" json:"reason"`
}
