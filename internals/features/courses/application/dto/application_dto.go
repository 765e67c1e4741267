package dto

// =======================
// Request DTO
// =======================

type ApplyRequest struct {
	Motivation string `json:"motivation" validate:"required,min=10"`
}

type DecideApplicationsRequest struct {
	CourseCode     string   `json:"course_code" validate:"required,max=16"`
	Year           int      `json:"year" validate:"required,gte=2000"`
	StaffRole      string   `json:"staff_role" validate:"required,oneof=tutor ta"`
	StudentNumbers []string `json:"student_numbers" validate:"required,min=1,dive,len=9"`
}

type RejectApplicationsRequest struct {
	StudentNumbers []string `json:"student_numbers" validate:"required,min=1,dive,len=9"`
}

// =======================
// Response DTO
// =======================

type ApplicantResponse struct {
	StudentNumber      string `json:"student_number"`
	UserName           string `json:"user_name"`
	QualificationLevel string `json:"qualification_level"`
	Grade              int    `json:"grade"`
	Motivation         string `json:"motivation"`
}
