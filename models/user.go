package models

import "time"

type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleConsultant UserRole = "consultant"
)

// Consultant engagement statuses.
const (
	StatusBench    = "bench"
	StatusAssigned = "assigned"
	StatusTraining = "training"
)

// Training workflow statuses, mapped to a progress percentage on the dashboard.
const (
	TrainingNotStarted = "not_started"
	TrainingInProgress = "in_progress"
	TrainingCompleted  = "completed"
)

type User struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Name           string     `gorm:"size:50;not null" json:"name"`
	Email          string     `gorm:"size:100;uniqueIndex;not null" json:"email"`
	HashedPassword string     `gorm:"size:255;not null" json:"-"`
	Role           UserRole   `gorm:"type:varchar(20);not null" json:"role"`
	Department     string     `gorm:"size:50" json:"department"`
	Status         string     `gorm:"size:20;default:'bench'" json:"status"`
	ResumeStatus   string     `gorm:"size:20;default:'pending'" json:"resume_status"`
	TrainingStatus string     `gorm:"size:20;default:'not_started'" json:"training_status"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	LastLogin      *time.Time `json:"last_login,omitempty"`

	Skills             []Skill             `gorm:"constraint:OnDelete:CASCADE" json:"skills,omitempty"`
	Assessments        []Assessment        `json:"assessments,omitempty"`
	Attendance         []Attendance        `json:"attendance,omitempty"`
	LearningProgress   []LearningProgress  `json:"learning_progress,omitempty"`
	Opportunities      []Opportunity       `gorm:"foreignKey:ConsultantID" json:"opportunities,omitempty"`
	CompletedTrainings []CompletedTraining `gorm:"foreignKey:ConsultantID;constraint:OnDelete:CASCADE" json:"completed_trainings,omitempty"`
}
