package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Satu tabel untuk semua role. Kolom varian student/employee nullable;
// DTO yang memilih varian sesuai user_role.
type UserModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"user_id"`
	UserName     string    `gorm:"column:user_name;type:varchar(100);not null" json:"user_name"`
	UserEmail    string    `gorm:"column:user_email;type:varchar(255);not null;uniqueIndex" json:"user_email"`
	UserPassword string    `gorm:"column:user_password;type:varchar(255);not null" json:"-"`
	UserRole     string    `gorm:"column:user_role;type:varchar(20);not null;index" json:"user_role"`

	// Varian student
	UserStudentNumber      *string `gorm:"column:user_student_number;type:varchar(9);uniqueIndex" json:"user_student_number,omitempty"`
	UserQualificationLevel *string `gorm:"column:user_qualification_level;type:varchar(20)" json:"user_qualification_level,omitempty"`
	UserApplicationStatus  *string `gorm:"column:user_application_status;type:varchar(10)" json:"user_application_status,omitempty"`

	// Varian employee (lecturer/convenor/admin)
	UserDepartment *string `gorm:"column:user_department;type:varchar(100)" json:"user_department,omitempty"`
	UserFaculty    *string `gorm:"column:user_faculty;type:varchar(100)" json:"user_faculty,omitempty"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"-"`
}

func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate jaga-jaga untuk dialek tanpa gen_random_uuid (mis. MySQL).
func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	return nil
}
