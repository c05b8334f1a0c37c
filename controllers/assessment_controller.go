package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/poolhub/consultant-pool-backend/models"
)

// Answer keys per topic. Answers are compared positionally against the key.
var quizBank = map[string][]string{
	"python": {"a", "b", "c", "a", "d"},
	"aws":    {"b", "c", "a", "d", "b"},
}

type AssessmentSubmissionInput struct {
	UserID  uint     `json:"user_id" binding:"required"`
	Topic   string   `json:"topic" binding:"required"`
	Answers []string `json:"answers" binding:"required"`
}

// ScoreAnswers counts positional matches against the key; answers beyond the
// key's length are ignored. The percentage is score over key length.
func ScoreAnswers(answers, key []string) (score int, percentage float64) {
	for i, ans := range answers {
		if i >= len(key) {
			break
		}
		if ans == key[i] {
			score++
		}
	}
	percentage = float64(score) / float64(len(key)) * 100
	return score, percentage
}

// SubmitAssessment grades a submission and appends a new row; resubmissions
// keep history rather than overwriting.
func SubmitAssessment(c *gin.Context) {
	db := getDB(c)

	var input AssessmentSubmissionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !requireSelfOrAdmin(c, input.UserID) {
		return
	}

	var user models.User
	if err := db.First(&user, "id = ? AND role = ?", input.UserID, models.RoleConsultant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Consultant not found"})
		return
	}

	topic := strings.ToLower(input.Topic)
	key, ok := quizBank[topic]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("No quiz available for topic: %s", topic)})
		return
	}

	score, percentage := ScoreAnswers(input.Answers, key)

	assessment := models.Assessment{
		UserID:     input.UserID,
		Topic:      topic,
		Score:      score,
		Percentage: percentage,
	}
	if err := db.Create(&assessment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store assessment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":    input.UserID,
		"topic":      topic,
		"score":      score,
		"percentage": fmt.Sprintf("%.1f%%", percentage),
	})
}

func GetAssessments(c *gin.Context) {
	db := getDB(c)

	userID, ok := parseUintParam(c, "user_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
		return
	}
	if !requireSelfOrAdmin(c, userID) {
		return
	}

	var assessments []models.Assessment
	if err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&assessments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load assessments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":     userID,
		"assessments": assessments,
	})
}
