package model

import (
	"time"
)

// Lamaran tutor/TA seorang mahasiswa. Status lamaran disimpan di baris
// user (user_application_status); tabel ini menyimpan motivasinya.
type ApplicationModel struct {
	ApplicationID            int64     `gorm:"column:application_id;primaryKey;autoIncrement" json:"application_id"`
	ApplicationStudentNumber string    `gorm:"column:application_student_number;type:varchar(9);not null;uniqueIndex" json:"application_student_number"`
	ApplicationMotivation    string    `gorm:"column:application_motivation;type:text;not null" json:"application_motivation"`
	ApplicationCreatedAt     time.Time `gorm:"column:application_created_at;autoCreateTime" json:"application_created_at"`
	ApplicationUpdatedAt     time.Time `gorm:"column:application_updated_at;autoUpdateTime" json:"application_updated_at"`
}

func (ApplicationModel) TableName() string {
	return "applications"
}
