package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/poolhub/consultant-pool-backend/models"
	"github.com/poolhub/consultant-pool-backend/services"
	"github.com/poolhub/consultant-pool-backend/ws"
)

// Skills at or above this proficiency are considered solid enough to skip.
const proficiencyThreshold = 7

// BuildCourseRecommendationPrompt lists the consultant's skills and asks for
// courses covering the weak ones.
func BuildCourseRecommendationPrompt(skills []models.Skill) string {
	var b strings.Builder
	for _, s := range skills {
		fmt.Fprintf(&b, "- %s (proficiency %d/10)\n", s.Name, s.Proficiency)
	}

	return fmt.Sprintf(`You are a learning advisor for an IT consultancy.

A consultant has these skills:
%s
Recommend one online course for each skill with proficiency below %d.

Return a JSON array with this exact structure:
[
  {"skill": "AWS", "course_title": "AWS Certified Solutions Architect", "platform": "Coursera", "link": "https://...", "reason": "short reason"}
]

Return only valid JSON. Do not include explanations, markdown, or text before
or after the JSON.`, b.String(), proficiencyThreshold)
}

type recommendedCourse struct {
	Skill       string `json:"skill"`
	CourseTitle string `json:"course_title"`
	Platform    string `json:"platform"`
	Link        string `json:"link"`
	Reason      string `json:"reason"`
}

// GetTrainingRecommendations asks Gemini for courses targeting the
// consultant's weak skills and replaces the stored recommendation set.
func GetTrainingRecommendations(c *gin.Context) {
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
	if err := db.Preload("Skills").First(&user, "id = ? AND role = ?", userID, models.RoleConsultant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Consultant not found"})
		return
	}

	raw, err := services.GeminiGenerateText(BuildCourseRecommendationPrompt(user.Skills))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	clean := services.CleanJSONResponse(raw)
	var courses []recommendedCourse
	if err := json.Unmarshal([]byte(clean), &courses); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI response was not valid JSON"})
		return
	}

	recs := make([]models.Recommendation, 0, len(courses))
	for _, course := range courses {
		if course.CourseTitle == "" {
			continue
		}
		recs = append(recs, models.Recommendation{
			UserID:      userID,
			Skill:       course.Skill,
			CourseTitle: course.CourseTitle,
			Platform:    course.Platform,
			Link:        course.Link,
			Reason:      course.Reason,
		})
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.Recommendation{}).Error; err != nil {
			return err
		}
		if len(recs) > 0 {
			return tx.Create(&recs).Error
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store recommendations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":         userID,
		"recommendations": recs,
	})
}

// BuildCertificatePrompt asks for the three fields a completed-training row needs.
func BuildCertificatePrompt(certificateText string) string {
	return fmt.Sprintf(`Extract the course details from this training certificate text.

Return a JSON object with this exact structure:
{"title": "course title", "provider": "issuing organization", "completedDate": "date on the certificate"}

Return only valid JSON. Do not include explanations, markdown, or text before
or after the JSON.

Certificate:
%s`, certificateText)
}

type parsedCertificate struct {
	Title         string `json:"title"`
	Provider      string `json:"provider"`
	CompletedDate string `json:"completedDate"`
}

// UploadCertificate parses an uploaded certificate PDF via Gemini and stores
// the completed training.
func UploadCertificate(c *gin.Context) {
	db := getDB(c)

	user, ok := resolveConsultant(c, db)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file attached"})
		return
	}
	if !strings.EqualFold(filepath.Ext(file.Filename), ".pdf") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported file format"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file", "details": err.Error()})
		return
	}
	defer src.Close()

	text, err := services.ExtractTextFromPDF(src)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to extract document text", "details": err.Error()})
		return
	}

	raw, err := services.GeminiGenerateText(BuildCertificatePrompt(text))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	clean := services.CleanJSONResponse(raw)
	var cert parsedCertificate
	if err := json.Unmarshal([]byte(clean), &cert); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI response was not valid JSON"})
		return
	}
	if cert.Title == "" || cert.Provider == "" || cert.CompletedDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Certificate is missing title, provider or completion date"})
		return
	}

	completed := models.CompletedTraining{
		ConsultantID:  user.ID,
		Title:         cert.Title,
		Provider:      cert.Provider,
		CompletedDate: cert.CompletedDate,
	}
	if err := db.Create(&completed).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store completed training"})
		return
	}

	ws.BroadcastRosterChanged()

	c.JSON(http.StatusOK, gin.H{
		"message":  "Certificate processed",
		"user_id":  user.ID,
		"training": completed,
	})
}

// Role skill map used by the non-AI learning recommendation.
var roleSkillMap = map[string]struct {
	RequiredSkills  []string
	LearningModules map[string]string
}{
	"python_developer": {
		RequiredSkills: []string{"python", "flask", "sql", "git"},
		LearningModules: map[string]string{
			"python": "Intro to Python",
			"flask":  "Flask Crash Course",
			"sql":    "SQL for Developers",
			"git":    "Version Control with Git",
		},
	},
}

// MissingSkillsForRole compares a consultant's skills to a role's required
// list and returns the missing skills plus their module titles.
func MissingSkillsForRole(role string, skills []models.Skill) (missing []string, modules []string) {
	mapping, ok := roleSkillMap[role]
	if !ok {
		return nil, nil
	}

	have := make(map[string]bool, len(skills))
	for _, s := range skills {
		have[strings.ToLower(s.Name)] = true
	}
	for _, required := range mapping.RequiredSkills {
		if !have[required] {
			missing = append(missing, required)
			modules = append(modules, mapping.LearningModules[required])
		}
	}
	return missing, modules
}

// RecommendLearning builds a learning path from the role skill map and
// persists the modules as pending progress rows.
func RecommendLearning(c *gin.Context) {
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
	if err := db.Preload("Skills").First(&user, "id = ? AND role = ?", userID, models.RoleConsultant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Consultant not found"})
		return
	}

	missing, modules := MissingSkillsForRole("python_developer", user.Skills)

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, module := range modules {
			var existing models.LearningProgress
			if err := tx.Where("user_id = ? AND module_name = ?", userID, module).
				First(&existing).Error; err == nil {
				continue
			}
			progress := models.LearningProgress{UserID: userID, ModuleName: module}
			if err := tx.Create(&progress).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store learning path"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":              userID,
		"missing_skills":       missing,
		"recommended_learning": modules,
	})
}

type LearningProgressInput struct {
	UserID           uint     `json:"user_id" binding:"required"`
	CompletedModules []string `json:"completed_modules" binding:"required"`
}

// UpdateLearningProgress marks the named modules completed. Re-submitting an
// already-completed module is a no-op.
func UpdateLearningProgress(c *gin.Context) {
	db := getDB(c)

	var input LearningProgressInput
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

	now := time.Now()
	for _, module := range input.CompletedModules {
		err := db.Model(&models.LearningProgress{}).
			Where("user_id = ? AND module_name = ? AND completed = ?", input.UserID, module, false).
			Updates(map[string]interface{}{"completed": true, "completion_date": &now}).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update progress"})
			return
		}
	}

	var completed []models.LearningProgress
	if err := db.Where("user_id = ? AND completed = ?", input.UserID, true).Find(&completed).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load progress"})
		return
	}

	names := make([]string, 0, len(completed))
	for _, p := range completed {
		names = append(names, p.ModuleName)
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   fmt.Sprintf("Progress updated for %s", user.Name),
		"completed": names,
	})
}
