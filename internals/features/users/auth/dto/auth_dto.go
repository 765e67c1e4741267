package dto

// =======================
// Request DTO
// =======================

type CompletedCourseRequest struct {
	CourseCode string `json:"course_code" validate:"required,max=16"`
	Grade      int    `json:"grade" validate:"required,gte=0,lte=100"`
	Year       int    `json:"year" validate:"required,gte=2000"`
}

type RegisterRequest struct {
	UserName           string                   `json:"user_name" validate:"required,min=2,max=100"`
	UserEmail          string                   `json:"user_email" validate:"required,max=255"`
	StudentNumber      string                   `json:"student_number" validate:"required"`
	QualificationLevel string                   `json:"qualification_level" validate:"required"`
	Password           string                   `json:"password" validate:"required,min=8,max=72"`
	ConfirmPassword    string                   `json:"confirm_password" validate:"required"`
	CompletedCourses   []CompletedCourseRequest `json:"completed_courses" validate:"dive"`
}

type LoginRequest struct {
	UserEmail string `json:"user_email" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

// =======================
// Response DTO
// =======================

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id"`
	UserName    string `json:"user_name"`
	UserRole    string `json:"user_role"`
}
