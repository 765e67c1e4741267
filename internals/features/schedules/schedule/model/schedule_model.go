package model

import (
	"time"
)

// Satu baris jadwal per (course_code, year). Dibuat otomatis saat pertama
// kali diminta.
type ScheduleModel struct {
	ScheduleID         int64     `gorm:"column:schedule_id;primaryKey;autoIncrement" json:"schedule_id"`
	ScheduleCourseCode string    `gorm:"column:schedule_course_code;type:varchar(16);not null;uniqueIndex:uq_schedule_course_year" json:"schedule_course_code"`
	ScheduleYear       int       `gorm:"column:schedule_year;not null;uniqueIndex:uq_schedule_course_year" json:"schedule_year"`
	ScheduleCreatedAt  time.Time `gorm:"column:schedule_created_at;autoCreateTime" json:"schedule_created_at"`
}

func (ScheduleModel) TableName() string {
	return "schedules"
}
