package dto

import (
	"strings"

	"github.com/google/uuid"

	"mytutor_backend/internals/features/courses/course/model"
)

// =======================
// Request DTO
// =======================

type CreateCourseRequest struct {
	CourseCode          string `json:"course_code" validate:"required,max=16"`
	CourseName          string `json:"course_name" validate:"required,max=255"`
	CourseTutorCapacity int    `json:"course_tutor_capacity" validate:"gte=0"`
	CourseTACapacity    int    `json:"course_ta_capacity" validate:"gte=0"`
}

func (r CreateCourseRequest) ToModel() model.CourseModel {
	return model.CourseModel{
		CourseCode:          strings.ToUpper(strings.TrimSpace(r.CourseCode)),
		CourseName:          strings.TrimSpace(r.CourseName),
		CourseTutorCapacity: r.CourseTutorCapacity,
		CourseTACapacity:    r.CourseTACapacity,
	}
}

type UpdateCourseRequest struct {
	CourseName          *string `json:"course_name" validate:"omitempty,max=255"`
	CourseTutorCapacity *int    `json:"course_tutor_capacity" validate:"omitempty,gte=0"`
	CourseTACapacity    *int    `json:"course_ta_capacity" validate:"omitempty,gte=0"`
}

type AssignStaffRequest struct {
	CourseStaffYear   int       `json:"course_staff_year" validate:"required,gte=2000"`
	CourseStaffUserID uuid.UUID `json:"course_staff_user_id" validate:"required"`
	CourseStaffRole   string    `json:"course_staff_role" validate:"required,oneof=lecturer convenor tutor ta"`
}
