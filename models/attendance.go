package models

import "time"

// Attendance statuses.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceExcused = "excused"
)

// Attendance keeps exactly one row per (user, date); marking the same date
// again overwrites the status.
type Attendance struct {
	ID     uint      `gorm:"primaryKey" json:"id"`
	UserID uint      `gorm:"not null;uniqueIndex:idx_attendance_user_date" json:"user_id"`
	Date   time.Time `gorm:"type:date;not null;uniqueIndex:idx_attendance_user_date" json:"date"`
	Status string    `gorm:"size:20;default:'absent'" json:"status"`
}
