package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Course kampus. course_code adalah kunci bisnis yang dipakai semua
// relasi (jadwal, staf, attendance), bukan UUID internalnya.
type CourseModel struct {
	CourseID            uuid.UUID `gorm:"column:course_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"course_id"`
	CourseCode          string    `gorm:"column:course_code;type:varchar(16);not null;uniqueIndex" json:"course_code"`
	CourseName          string    `gorm:"column:course_name;type:varchar(255);not null" json:"course_name"`
	CourseTutorCapacity int       `gorm:"column:course_tutor_capacity;not null;default:0" json:"course_tutor_capacity"`
	CourseTACapacity    int       `gorm:"column:course_ta_capacity;not null;default:0" json:"course_ta_capacity"`
	CourseCreatedAt     time.Time `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt     time.Time `gorm:"column:course_updated_at;autoUpdateTime" json:"course_updated_at"`
}

func (CourseModel) TableName() string {
	return "courses"
}

func (c *CourseModel) BeforeCreate(tx *gorm.DB) error {
	if c.CourseID == uuid.Nil {
		c.CourseID = uuid.New()
	}
	return nil
}

// Penugasan staf per course per tahun: lecturer/convenor dari sisi
// pegawai, tutor/ta dari mahasiswa yang diterima.
type CourseStaffModel struct {
	CourseStaffID         int64     `gorm:"column:course_staff_id;primaryKey;autoIncrement" json:"course_staff_id"`
	CourseStaffCourseCode string    `gorm:"column:course_staff_course_code;type:varchar(16);not null;uniqueIndex:uq_course_staff" json:"course_staff_course_code"`
	CourseStaffYear       int       `gorm:"column:course_staff_year;not null;uniqueIndex:uq_course_staff" json:"course_staff_year"`
	CourseStaffUserID     uuid.UUID `gorm:"column:course_staff_user_id;type:uuid;not null;uniqueIndex:uq_course_staff" json:"course_staff_user_id"`
	CourseStaffRole       string    `gorm:"column:course_staff_role;type:varchar(10);not null;uniqueIndex:uq_course_staff" json:"course_staff_role"`
	CourseStaffCreatedAt  time.Time `gorm:"column:course_staff_created_at;autoCreateTime" json:"course_staff_created_at"`
}

func (CourseStaffModel) TableName() string {
	return "course_staff"
}

// Riwayat course yang sudah diselesaikan mahasiswa, dasar kelayakan
// melamar tutor/TA.
type CompletedCourseModel struct {
	CompletedCourseID            int64     `gorm:"column:completed_course_id;primaryKey;autoIncrement" json:"completed_course_id"`
	CompletedCourseStudentNumber string    `gorm:"column:completed_course_student_number;type:varchar(9);not null;uniqueIndex:uq_completed_course" json:"completed_course_student_number"`
	CompletedCourseCode          string    `gorm:"column:completed_course_code;type:varchar(16);not null;uniqueIndex:uq_completed_course" json:"completed_course_code"`
	CompletedCourseGrade         int       `gorm:"column:completed_course_grade;not null" json:"completed_course_grade"`
	CompletedCourseYear          int       `gorm:"column:completed_course_year;not null" json:"completed_course_year"`
	CompletedCourseCreatedAt     time.Time `gorm:"column:completed_course_created_at;autoCreateTime" json:"completed_course_created_at"`
}

func (CompletedCourseModel) TableName() string {
	return "completed_courses"
}
