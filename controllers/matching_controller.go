package controllers

import (
	"fmt"
	"net/http"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/poolhub/consultant-pool-backend/models"
	"github.com/poolhub/consultant-pool-backend/utils"
)

type JDInput struct {
	JDText string `json:"jd_text" binding:"required"`
}

// SubmitJD stores the job description used by the matcher.
func SubmitJD(c *gin.Context) {
	db := getDB(c)

	var input JDInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	jd := models.JobDescription{Text: input.JDText}
	if err := db.Create(&jd).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store JD"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "JD received", "jd_id": jd.ID})
}

var wordPattern = regexp.MustCompile(`\b\w+\b`)

// MatchScore counts how many of the consultant's skills appear as words in
// the JD text.
func MatchScore(jdText string, skills []models.Skill) int {
	words := make(map[string]bool)
	for _, w := range wordPattern.FindAllString(strings.ToLower(jdText), -1) {
		words[w] = true
	}

	score := 0
	for _, s := range skills {
		if words[strings.ToLower(s.Name)] {
			score++
		}
	}
	return score
}

type profileMatch struct {
	UserID     uint     `json:"user_id"`
	Name       string   `json:"name"`
	Skills     []string `json:"skills"`
	MatchScore int      `json:"match_score"`
}

// BuildMatchEmailBody renders the recruiter email listing the top matches.
func BuildMatchEmailBody(matches []profileMatch) string {
	var body strings.Builder
	body.WriteString("<h3>Top Matching Profiles</h3><ul>")
	for _, m := range matches {
		fmt.Fprintf(&body, "<li>%s (score %d): %s</li>", m.Name, m.MatchScore, strings.Join(m.Skills, ", "))
	}
	body.WriteString("</ul>")
	return body.String()
}

// MatchProfiles scores every consultant against the latest JD, emails the top
// three to the recruiter, and returns them.
func MatchProfiles(c *gin.Context) {
	db := getDB(c)

	var jd models.JobDescription
	if err := db.Order("created_at DESC").First(&jd).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "JD not submitted yet"})
		return
	}

	var consultants []models.User
	if err := db.Preload("Skills").Where("role = ?", models.RoleConsultant).Find(&consultants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load consultants"})
		return
	}
	if len(consultants) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No consultant profiles available"})
		return
	}

	matches := make([]profileMatch, 0, len(consultants))
	for _, u := range consultants {
		names := make([]string, 0, len(u.Skills))
		for _, s := range u.Skills {
			names = append(names, s.Name)
		}
		matches = append(matches, profileMatch{
			UserID:     u.ID,
			Name:       u.Name,
			Skills:     names,
			MatchScore: MatchScore(jd.Text, u.Skills),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
	if len(matches) > 3 {
		matches = matches[:3]
	}

	recruiter := os.Getenv("EMAIL_TO")

	if matches[0].MatchScore > 0 {
		go func(msg string) {
			if err := utils.SendEmail(recruiter, "Top Consultant Matches Found", msg); err != nil {
				logEmailFailure(err)
			}
		}(BuildMatchEmailBody(matches))

		c.JSON(http.StatusOK, gin.H{
			"status":      "Email sent with top matches",
			"top_matches": matches,
		})
		return
	}

	go func() {
		if err := utils.SendEmail(recruiter, "No Consultant Match Found",
			"No suitable candidates found for the submitted JD."); err != nil {
			logEmailFailure(err)
		}
	}()

	c.JSON(http.StatusOK, gin.H{"status": "No match found, email sent to recruiter"})
}

type NotificationInput struct {
	Email string `json:"email" binding:"required,email"`
}

// SendNotification fires a best-effort email in the background and returns
// immediately; a failure is only visible in the server logs.
func SendNotification(c *gin.Context) {
	var input NotificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	go func(to string) {
		body := "<h1>Attendance Submitted</h1><p>Your status was recorded</p>"
		if err := utils.SendEmail(to, "Your Attendance Report", body); err != nil {
			logEmailFailure(err)
		}
	}(input.Email)

	c.JSON(http.StatusOK, gin.H{"message": "Notification queued"})
}
