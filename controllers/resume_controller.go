package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/poolhub/consultant-pool-backend/config"
	"github.com/poolhub/consultant-pool-backend/models"
	"github.com/poolhub/consultant-pool-backend/services"
	"github.com/poolhub/consultant-pool-backend/utils"
	"github.com/poolhub/consultant-pool-backend/ws"
)

// Fixed vocabulary for the keyword extraction strategy.
var commonSkills = []string{
	"python", "java", "javascript", "react", "node", "aws", "docker",
	"sql", "mongodb", "kubernetes", "html", "css", "git", "linux",
	"tensorflow", "pytorch", "fastapi", "flask", "django",
}

// ExtractKeywordSkills returns every vocabulary entry that appears in the
// resume text (case-insensitive substring match).
func ExtractKeywordSkills(resumeText string, vocabulary []string) []string {
	lower := strings.ToLower(resumeText)
	var found []string
	for _, skill := range vocabulary {
		if strings.Contains(lower, skill) {
			found = append(found, skill)
		}
	}
	return found
}

// replaceSkills swaps the user's entire skill set and flips resume_status,
// all inside one transaction.
func replaceSkills(db *gorm.DB, userID uint, skills []models.Skill) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.Skill{}).Error; err != nil {
			return err
		}
		for i := range skills {
			skills[i].UserID = userID
		}
		if len(skills) > 0 {
			if err := tx.Create(&skills).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.User{}).Where("id = ?", userID).
			Update("resume_status", "updated").Error
	})
}

type ResumeTextInput struct {
	UserID     uint   `json:"user_id" binding:"required"`
	ResumeText string `json:"resume_text" binding:"required"`
}

// UploadResumeText is the non-AI path: match the fixed vocabulary against the
// raw resume text and replace the consultant's skills with the hits.
func UploadResumeText(c *gin.Context) {
	db := getDB(c)

	var input ResumeTextInput
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

	extracted := ExtractKeywordSkills(input.ResumeText, commonSkills)
	skills := make([]models.Skill, 0, len(extracted))
	for _, name := range extracted {
		skills = append(skills, models.Skill{Name: name})
	}

	if err := replaceSkills(db, user.ID, skills); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update skills"})
		return
	}

	ws.BroadcastRosterChanged()

	c.JSON(http.StatusOK, gin.H{
		"message":          "Resume processed",
		"user_id":          user.ID,
		"extracted_skills": extracted,
	})
}

func resolveConsultant(c *gin.Context, db *gorm.DB) (*models.User, bool) {
	idStr := c.Query("user_id")
	if idStr == "" {
		idStr = c.PostForm("user_id")
	}
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
		return nil, false
	}
	if !requireSelfOrAdmin(c, uint(id)) {
		return nil, false
	}

	var user models.User
	if err := db.First(&user, "id = ? AND role = ?", uint(id), models.RoleConsultant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Consultant not found"})
		return nil, false
	}
	return &user, true
}

// resumeInputType gates resume documents to PDF and DOCX; plain text files
// are accepted elsewhere but not as resumes.
func resumeInputType(filename string) (services.InputType, error) {
	inputType, err := utils.GetInputTypeFromExt(filepath.Ext(filename))
	if err != nil {
		return "", err
	}
	if inputType == services.InputTXT {
		return "", errors.New("unsupported file format")
	}
	return inputType, nil
}

// readStoredResume extracts text from a previously uploaded document on disk.
func readStoredResume(path string) (string, error) {
	inputType, err := resumeInputType(path)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err != nil {
		return "", err
	}
	if inputType == services.InputPDF {
		return services.ExtractTextFromPDFFile(path)
	}
	return services.ExtractTextFromDOCXFile(path)
}

// StoredResumePath reconstructs where an upload for a user lives on disk.
// The client filename is reduced to its base name so the join cannot escape
// the upload directory.
func StoredResumePath(userID uint, originalName string) string {
	return filepath.Join(config.UploadDir(), fmt.Sprintf("%d_%s", userID, filepath.Base(originalName)))
}

// UploadResumeFile stores the uploaded document under UPLOAD_DIR as
// {user_id}_{original_filename}.
func UploadResumeFile(c *gin.Context) {
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
	if file.Size > 20*1024*1024 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File exceeds 20MB"})
		return
	}

	if _, err := resumeInputType(file.Filename); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dst := StoredResumePath(user.ID, file.Filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Resume uploaded",
		"user_id":  user.ID,
		"filename": filepath.Base(dst),
	})
}

// BuildSkillExtractionPrompt asks the model for a strict JSON skill array.
func BuildSkillExtractionPrompt(resumeText string) string {
	return fmt.Sprintf(`You are an expert technical recruiter extracting skills from a resume.

Identify every technical skill in the resume below and estimate the candidate's
proficiency from 1 (beginner) to 10 (expert) based on experience described.

Return a JSON array with this exact structure:
[
  {"skill": "Python", "proficiency": 7}
]

Return only valid JSON. Do not include explanations, markdown, or text before
or after the JSON.

Resume:
%s`, resumeText)
}

type extractedSkill struct {
	Skill       string `json:"skill"`
	Proficiency int    `json:"proficiency"`
}

// ProcessResumeAI extracts the document text, asks Gemini for skills, and
// atomically replaces the consultant's skill set with the parsed result.
func ProcessResumeAI(c *gin.Context) {
	db := getDB(c)

	user, ok := resolveConsultant(c, db)
	if !ok {
		return
	}

	var text string
	if file, ferr := c.FormFile("file"); ferr == nil {
		inputType, err := resumeInputType(file.Filename)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		text, err = services.ExtractText(services.InputSource{Type: inputType, FileHeader: file})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to extract document text", "details": err.Error()})
			return
		}
	} else {
		// no file part: reprocess the document stored by upload-file
		filename := c.Query("filename")
		if filename == "" {
			filename = c.PostForm("filename")
		}
		if filename == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file attached and no stored filename given"})
			return
		}

		path := StoredResumePath(user.ID, filename)
		if _, err := os.Stat(path); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Stored resume not found"})
			return
		}

		var err error
		text, err = readStoredResume(path)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to extract document text", "details": err.Error()})
			return
		}
	}

	raw, err := services.GeminiGenerateText(BuildSkillExtractionPrompt(text))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	clean := services.CleanJSONResponse(raw)
	var parsed []extractedSkill
	if err := json.Unmarshal([]byte(clean), &parsed); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI response was not valid JSON"})
		return
	}

	skills := make([]models.Skill, 0, len(parsed))
	for _, s := range parsed {
		if s.Skill == "" {
			continue
		}
		skills = append(skills, models.Skill{Name: s.Skill, Proficiency: s.Proficiency})
	}

	if err := replaceSkills(db, user.ID, skills); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update skills"})
		return
	}

	ws.BroadcastRosterChanged()

	c.JSON(http.StatusOK, gin.H{
		"message": "Resume processed",
		"user_id": user.ID,
		"skills":  skills,
	})
}

// DownloadResume serves a previously uploaded resume by reconstructing its
// stored path.
func DownloadResume(c *gin.Context) {
	userID, ok := parseUintParam(c, "user_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
		return
	}
	if !requireSelfOrAdmin(c, userID) {
		return
	}
	filename := filepath.Base(c.Param("filename"))

	path := StoredResumePath(userID, filename)
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	c.FileAttachment(path, filename)
}
