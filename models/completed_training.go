package models

// CompletedTraining is populated from uploaded certificates. CompletedDate
// stays a string because it is taken verbatim from the parsed certificate.
type CompletedTraining struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	ConsultantID  uint   `gorm:"not null;index" json:"consultant_id"`
	Title         string `gorm:"size:150" json:"title"`
	Provider      string `gorm:"size:100" json:"provider"`
	CompletedDate string `gorm:"size:50" json:"completed_date"`
}
