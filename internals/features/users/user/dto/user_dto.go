package dto

import (
	"time"

	"github.com/google/uuid"

	"mytutor_backend/internals/constants"
	"mytutor_backend/internals/features/users/user/model"
)

// =======================
// Request DTO
// =======================

type CreateUserRequest struct {
	UserName  string `json:"user_name" validate:"required,min=2,max=100"`
	UserEmail string `json:"user_email" validate:"required,email,max=255"`
	UserRole  string `json:"user_role" validate:"required,oneof=admin lecturer convenor student"`

	// Varian student
	UserStudentNumber      string `json:"user_student_number" validate:"omitempty,len=9"`
	UserQualificationLevel string `json:"user_qualification_level" validate:"omitempty"`

	// Varian employee
	UserDepartment string `json:"user_department" validate:"omitempty,max=100"`
	UserFaculty    string `json:"user_faculty" validate:"omitempty,max=100"`
}

type UpdateUserRequest struct {
	UserName  *string `json:"user_name" validate:"omitempty,min=2,max=100"`
	UserEmail *string `json:"user_email" validate:"omitempty,email,max=255"`

	UserQualificationLevel *string `json:"user_qualification_level"`
	UserDepartment         *string `json:"user_department" validate:"omitempty,max=100"`
	UserFaculty            *string `json:"user_faculty" validate:"omitempty,max=100"`
}

func (r CreateUserRequest) ToModel(hashedPassword string) model.UserModel {
	m := model.UserModel{
		UserName:     r.UserName,
		UserEmail:    r.UserEmail,
		UserPassword: hashedPassword,
		UserRole:     r.UserRole,
	}
	switch r.UserRole {
	case constants.RoleStudent:
		sn := r.UserStudentNumber
		ql := r.UserQualificationLevel
		st := constants.ApplicationIdle
		m.UserStudentNumber = &sn
		m.UserQualificationLevel = &ql
		m.UserApplicationStatus = &st
	default:
		if r.UserDepartment != "" {
			m.UserDepartment = &r.UserDepartment
		}
		if r.UserFaculty != "" {
			m.UserFaculty = &r.UserFaculty
		}
	}
	return m
}

// =======================
// Response DTO
// =======================

type StudentInfo struct {
	StudentNumber      string `json:"student_number"`
	QualificationLevel string `json:"qualification_level"`
	ApplicationStatus  string `json:"application_status"`
}

type EmployeeInfo struct {
	Department string `json:"department"`
	Faculty    string `json:"faculty"`
}

type UserResponse struct {
	UserID        uuid.UUID     `json:"user_id"`
	UserName      string        `json:"user_name"`
	UserEmail     string        `json:"user_email"`
	UserRole      string        `json:"user_role"`
	Student       *StudentInfo  `json:"student,omitempty"`
	Employee      *EmployeeInfo `json:"employee,omitempty"`
	UserCreatedAt time.Time     `json:"user_created_at"`
}

// FromUserModel hanya expose varian yang sesuai role.
func FromUserModel(m model.UserModel) UserResponse {
	resp := UserResponse{
		UserID:        m.UserID,
		UserName:      m.UserName,
		UserEmail:     m.UserEmail,
		UserRole:      m.UserRole,
		UserCreatedAt: m.UserCreatedAt,
	}
	if m.UserRole == constants.RoleStudent {
		info := StudentInfo{}
		if m.UserStudentNumber != nil {
			info.StudentNumber = *m.UserStudentNumber
		}
		if m.UserQualificationLevel != nil {
			info.QualificationLevel = *m.UserQualificationLevel
		}
		if m.UserApplicationStatus != nil {
			info.ApplicationStatus = *m.UserApplicationStatus
		}
		resp.Student = &info
	} else {
		info := EmployeeInfo{}
		if m.UserDepartment != nil {
			info.Department = *m.UserDepartment
		}
		if m.UserFaculty != nil {
			info.Faculty = *m.UserFaculty
		}
		resp.Employee = &info
	}
	return resp
}

func FromUserModels(ms []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromUserModel(m))
	}
	return out
}
