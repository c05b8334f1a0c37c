package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/poolhub/consultant-pool-backend/models"
)

// WorkflowProgress derives a percentage from the training workflow status.
func WorkflowProgress(trainingStatus string) int {
	switch trainingStatus {
	case models.TrainingNotStarted:
		return 20
	case models.TrainingInProgress:
		return 70
	case models.TrainingCompleted:
		return 100
	default:
		return 0
	}
}

// ConsultantDashboard aggregates everything the consultant home screen shows.
func ConsultantDashboard(c *gin.Context) {
	db := getDB(c)

	userID, ok := parseUintParam(c, "user_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
		return
	}
	if !requireSelfOrAdmin(c, userID) {
		return
	}

	var user models.User
	err := db.Preload("Skills").Preload("LearningProgress").
		First(&user, "id = ? AND role = ?", userID, models.RoleConsultant).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Consultant not found"})
		return
	}

	var attendance []models.Attendance
	if err := db.Where("user_id = ?", userID).Find(&attendance).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load attendance"})
		return
	}
	presentDays := 0
	for _, a := range attendance {
		if a.Status == models.AttendancePresent {
			presentDays++
		}
	}

	var opportunityCount int64
	if err := db.Model(&models.Opportunity{}).Where("consultant_id = ?", userID).Count(&opportunityCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load opportunities"})
		return
	}

	var trainings []models.Training
	if err := db.Where("user_id = ?", userID).Find(&trainings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load trainings"})
		return
	}

	var recommendations []models.Recommendation
	if err := db.Where("user_id = ?", userID).Find(&recommendations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load recommendations"})
		return
	}

	var completedTrainings []models.CompletedTraining
	if err := db.Where("consultant_id = ?", userID).Find(&completedTrainings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load completed trainings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":             user.ID,
		"name":                user.Name,
		"status":              user.Status,
		"resume_status":       user.ResumeStatus,
		"training_status":     user.TrainingStatus,
		"workflow_progress":   WorkflowProgress(user.TrainingStatus),
		"attendance_rate":     AttendanceRate(presentDays, len(attendance)),
		"opportunities_count": opportunityCount,
		"skills":              user.Skills,
		"trainings":           trainings,
		"recommendations":     recommendations,
		"completed_trainings": completedTrainings,
		"learning_progress":   user.LearningProgress,
	})
}
