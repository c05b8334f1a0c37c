package controllers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/poolhub/consultant-pool-backend/models"
)

// ListConsultants is the admin roster view with optional filters.
func ListConsultants(c *gin.Context) {
	db := getDB(c)

	query := db.Model(&models.User{}).Where("role = ?", models.RoleConsultant)

	if department := c.Query("department"); department != "" {
		query = query.Where("department ILIKE ?", "%"+department+"%")
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if skill := c.Query("skill"); skill != "" {
		query = query.Where(
			"EXISTS (SELECT 1 FROM skills WHERE skills.user_id = users.id AND LOWER(skills.name) = LOWER(?))",
			skill,
		)
	}

	var consultants []models.User
	if err := query.Preload("Skills").Find(&consultants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load consultants"})
		return
	}

	result := make([]gin.H, 0, len(consultants))
	for _, u := range consultants {
		result = append(result, gin.H{
			"id":              u.ID,
			"name":            u.Name,
			"email":           u.Email,
			"department":      u.Department,
			"skills":          u.Skills,
			"status":          u.Status,
			"resume_status":   u.ResumeStatus,
			"training_status": u.TrainingStatus,
		})
	}

	c.JSON(http.StatusOK, gin.H{"consultants": result})
}

// GetConsultantDetail returns a consultant profile with nested assessment and
// attendance history.
func GetConsultantDetail(c *gin.Context) {
	db := getDB(c)

	userID, ok := parseUintParam(c, "user_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
		return
	}

	var user models.User
	err := db.Preload("Skills").Preload("CompletedTrainings").
		First(&user, "id = ? AND role = ?", userID, models.RoleConsultant).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Consultant not found"})
		return
	}

	var assessments []models.Assessment
	db.Where("user_id = ?", userID).Order("created_at DESC").Find(&assessments)

	var attendance []models.Attendance
	db.Where("user_id = ?", userID).Order("date").Find(&attendance)

	presentDays := 0
	for _, a := range attendance {
		if a.Status == models.AttendancePresent {
			presentDays++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"profile": gin.H{
			"id":              user.ID,
			"name":            user.Name,
			"email":           user.Email,
			"department":      user.Department,
			"skills":          user.Skills,
			"status":          user.Status,
			"resume_status":   user.ResumeStatus,
			"training_status": user.TrainingStatus,
		},
		"assessments": assessments,
		"attendance_summary": gin.H{
			"total_days":      len(attendance),
			"present_days":    presentDays,
			"attendance_rate": AttendanceRate(presentDays, len(attendance)),
		},
		"attendance_history":  attendance,
		"completed_trainings": user.CompletedTrainings,
	})
}

// ReportHeader is the fixed column order of the consultant report.
var ReportHeader = []string{
	"Name", "Email", "Department", "Status",
	"Resume Status", "Training Status", "Attendance Rate", "Skills",
}

// ReportRow flattens one consultant into the report column order.
func ReportRow(user *models.User, attendanceRate string) []string {
	skillNames := make([]string, 0, len(user.Skills))
	for _, s := range user.Skills {
		skillNames = append(skillNames, s.Name)
	}
	return []string{
		user.Name,
		user.Email,
		user.Department,
		user.Status,
		user.ResumeStatus,
		user.TrainingStatus,
		attendanceRate,
		strings.Join(skillNames, ", "),
	}
}

func loadConsultantForReport(c *gin.Context, db *gorm.DB) (*models.User, string, bool) {
	userID, ok := parseUintParam(c, "user_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
		return nil, "", false
	}

	var user models.User
	err := db.Preload("Skills").First(&user, "id = ? AND role = ?", userID, models.RoleConsultant).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Consultant not found"})
		return nil, "", false
	}

	var attendance []models.Attendance
	db.Where("user_id = ?", userID).Find(&attendance)
	presentDays := 0
	for _, a := range attendance {
		if a.Status == models.AttendancePresent {
			presentDays++
		}
	}

	return &user, AttendanceRate(presentDays, len(attendance)), true
}

// DownloadConsultantReportCSV emits the single-row CSV report.
func DownloadConsultantReportCSV(c *gin.Context) {
	db := getDB(c)

	user, rate, ok := loadConsultantForReport(c, db)
	if !ok {
		return
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(ReportHeader); err == nil {
		w.Write(ReportRow(user, rate))
	}
	w.Flush()
	if err := w.Error(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	filename := fmt.Sprintf("consultant_%d_report.csv", user.ID)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// DownloadConsultantReportXLSX is the styled spreadsheet variant of the report.
func DownloadConsultantReportXLSX(c *gin.Context) {
	db := getDB(c)

	user, rate, ok := loadConsultantForReport(c, db)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Report"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	for i, title := range ReportHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, title)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}
	for i, value := range ReportRow(user, rate) {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(sheet, cell, value)
	}
	f.SetColWidth(sheet, "A", "H", 22)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	filename := fmt.Sprintf("consultant_%d_report.xlsx", user.ID)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
