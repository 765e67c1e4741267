package model

import (
	"time"

	"gorm.io/datatypes"
)

// Satu baris per check-in tutor: unik per (sesi, student_number, tanggal).
type AttendanceModel struct {
	AttendanceID            int64          `gorm:"column:attendance_id;primaryKey;autoIncrement" json:"attendance_id"`
	AttendanceSessionID     int64          `gorm:"column:attendance_session_id;not null;uniqueIndex:uq_attendance" json:"attendance_session_id"`
	AttendanceCourseCode    string         `gorm:"column:attendance_course_code;type:varchar(16);not null;index" json:"attendance_course_code"`
	AttendanceStudentNumber string         `gorm:"column:attendance_student_number;type:varchar(9);not null;uniqueIndex:uq_attendance" json:"attendance_student_number"`
	AttendanceDate          datatypes.Date `gorm:"column:attendance_date;not null;uniqueIndex:uq_attendance" json:"attendance_date"`
	AttendanceCreatedAt     time.Time      `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
}

func (AttendanceModel) TableName() string {
	return "attendance_records"
}
