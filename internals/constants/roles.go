package constants

import "fmt"

// Role pengguna portal tutoring
const (
	RoleAdmin    = "admin"
	RoleLecturer = "lecturer"
	RoleConvenor = "convenor"
	RoleStudent  = "student"
)

// Role staf per course (course_staff)
const (
	StaffLecturer = "lecturer"
	StaffConvenor = "convenor"
	StaffTutor    = "tutor"
	StaffTA       = "ta"
)

// Status aplikasi tutor/TA
const (
	ApplicationIdle     = "IDLE"
	ApplicationApplied  = "APPLIED"
	ApplicationAccepted = "ACCEPTED"
	ApplicationRejected = "REJECTED"
)

// Jenjang kualifikasi mahasiswa
const (
	QualFirstYear     = "first_year"
	QualSecondYear    = "second_year"
	QualThirdYear     = "third_year"
	QualHonours       = "honours"
	QualMasters       = "masters"
	QualPhD           = "phd"
	QualPostDoctorate = "post_doctorate"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyStaffCanAccess  = "❌ Hanya lecturer, convenor, atau admin yang boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleLecturer,
		RoleConvenor,
		RoleStudent,
	}

	EmployeeRoles = []string{
		RoleAdmin,
		RoleLecturer,
		RoleConvenor,
	}

	StaffAndAbove = []string{
		RoleLecturer,
		RoleConvenor,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	AllStaffRoles = []string{
		StaffLecturer,
		StaffConvenor,
		StaffTutor,
		StaffTA,
	}

	AllQualificationLevels = []string{
		QualFirstYear,
		QualSecondYear,
		QualThirdYear,
		QualHonours,
		QualMasters,
		QualPhD,
		QualPostDoctorate,
	}
)
