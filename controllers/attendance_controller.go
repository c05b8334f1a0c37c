package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/poolhub/consultant-pool-backend/models"
)

type AttendanceMarkInput struct {
	UserID uint   `json:"user_id" binding:"required"`
	Date   string `json:"date" binding:"required"` // YYYY-MM-DD
	Status string `json:"status" binding:"required,oneof=present absent excused"`
}

// MarkAttendance upserts the attendance row for (user, date): marking an
// already-recorded date overwrites the status instead of duplicating it.
func MarkAttendance(c *gin.Context) {
	db := getDB(c)

	var input AttendanceMarkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	day, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
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

	var existing models.Attendance
	err = db.Where("user_id = ? AND date = ?", input.UserID, day).First(&existing).Error
	if err == nil {
		if err := db.Model(&existing).Update("status", input.Status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update attendance"})
			return
		}
	} else {
		record := models.Attendance{
			UserID: input.UserID,
			Date:   day,
			Status: input.Status,
		}
		if err := db.Create(&record).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record attendance"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Attendance recorded for %s", user.Name)})
}

// AttendanceRate formats present/total as a percentage string. Zero records
// yield "0%", never a division error.
func AttendanceRate(presentDays, totalDays int) string {
	if totalDays == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", float64(presentDays)/float64(totalDays)*100)
}

func GetAttendanceSummary(c *gin.Context) {
	db := getDB(c)

	userID, ok := parseUintParam(c, "user_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
		return
	}
	if !requireSelfOrAdmin(c, userID) {
		return
	}

	query := db.Where("user_id = ?", userID)

	if start := c.Query("start_date"); start != "" {
		day, err := time.Parse("2006-01-02", start)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be YYYY-MM-DD"})
			return
		}
		query = query.Where("date >= ?", day)
	}
	if end := c.Query("end_date"); end != "" {
		day, err := time.Parse("2006-01-02", end)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be YYYY-MM-DD"})
			return
		}
		query = query.Where("date <= ?", day)
	}

	var records []models.Attendance
	if err := query.Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load attendance"})
		return
	}

	presentDays := 0
	for _, r := range records {
		if r.Status == models.AttendancePresent {
			presentDays++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":         userID,
		"total_days":      len(records),
		"present_days":    presentDays,
		"attendance_rate": AttendanceRate(presentDays, len(records)),
	})
}
