package model

import (
	"time"
)

// Sesi tutoring mingguan. Jam disimpan sebagai pecahan jam
// (14.5 = 14:30), hari sebagai nama hari kerja.
type TutoringSessionModel struct {
	TutoringSessionID           int64     `gorm:"column:tutoring_session_id;primaryKey;autoIncrement" json:"tutoring_session_id"`
	TutoringSessionScheduleID   int64     `gorm:"column:tutoring_session_schedule_id;not null;index" json:"tutoring_session_schedule_id"`
	TutoringSessionDay          string    `gorm:"column:tutoring_session_day;type:varchar(10);not null" json:"tutoring_session_day"`
	TutoringSessionStartTime    float64   `gorm:"column:tutoring_session_start_time;not null" json:"tutoring_session_start_time"`
	TutoringSessionEndTime      float64   `gorm:"column:tutoring_session_end_time;not null" json:"tutoring_session_end_time"`
	TutoringSessionLocation     string    `gorm:"column:tutoring_session_location;type:varchar(255);not null" json:"tutoring_session_location"`
	TutoringSessionWhatsappLink *string   `gorm:"column:tutoring_session_whatsapp_link;type:text" json:"tutoring_session_whatsapp_link"`
	TutoringSessionCapacity     int       `gorm:"column:tutoring_session_capacity;not null" json:"tutoring_session_capacity"`
	TutoringSessionCreatedAt    time.Time `gorm:"column:tutoring_session_created_at;autoCreateTime" json:"tutoring_session_created_at"`
	TutoringSessionUpdatedAt    time.Time `gorm:"column:tutoring_session_updated_at;autoUpdateTime" json:"tutoring_session_updated_at"`
}

func (TutoringSessionModel) TableName() string {
	return "tutoring_sessions"
}

// Roster tutor yang sudah sign up ke sebuah sesi.
type SessionTutorModel struct {
	SessionTutorID            int64     `gorm:"column:session_tutor_id;primaryKey;autoIncrement" json:"session_tutor_id"`
	SessionTutorSessionID     int64     `gorm:"column:session_tutor_session_id;not null;uniqueIndex:uq_session_tutor" json:"session_tutor_session_id"`
	SessionTutorStudentNumber string    `gorm:"column:session_tutor_student_number;type:varchar(9);not null;uniqueIndex:uq_session_tutor" json:"session_tutor_student_number"`
	SessionTutorCreatedAt     time.Time `gorm:"column:session_tutor_created_at;autoCreateTime" json:"session_tutor_created_at"`
}

func (SessionTutorModel) TableName() string {
	return "session_tutors"
}
