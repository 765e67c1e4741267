package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"mytutor_backend/internals/constants"
	"mytutor_backend/internals/features/courses/application/dto"
	applicationModel "mytutor_backend/internals/features/courses/application/model"
	applicationService "mytutor_backend/internals/features/courses/application/service"
	courseModel "mytutor_backend/internals/features/courses/course/model"
	userModel "mytutor_backend/internals/features/users/user/model"
	helper "mytutor_backend/internals/helpers"
)

type ApplicationController struct {
	DB *gorm.DB
}

func NewApplicationController(db *gorm.DB) *ApplicationController {
	return &ApplicationController{DB: db}
}

// =======================
// POST /api/u/applications
// =======================
// Mahasiswa mengirim lamaran tutor/TA. Tahun pertama ditolak; status
// user berubah IDLE -> APPLIED, motivasi disimpan terpisah.
func (ctrl *ApplicationController) Apply(c *fiber.Ctx) error {
	sn, err := helper.GetStudentNumberFromToken(c)
	if err != nil {
		return err
	}

	var req dto.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var user userModel.UserModel
	if err := ctrl.DB.Where("user_student_number = ?", sn).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Mahasiswa tidak ditemukan")
		}
		log.Printf("[ERROR] apply lookup: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Lamaran gagal")
	}

	qual := ""
	if user.UserQualificationLevel != nil {
		qual = *user.UserQualificationLevel
	}
	if err := applicationService.CanApply(qual); err != nil {
		return helper.JsonErrorCode(c, fiber.StatusForbidden, "QUALIFICATION_LEVEL_TOO_LOW", err.Error())
	}

	status := constants.ApplicationIdle
	if user.UserApplicationStatus != nil {
		status = *user.UserApplicationStatus
	}
	if status == constants.ApplicationApplied || status == constants.ApplicationAccepted {
		return helper.JsonErrorCode(c, fiber.StatusConflict, "ALREADY_APPLIED", applicationService.ErrAlreadyApplied.Error())
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		row := applicationModel.ApplicationModel{
			ApplicationStudentNumber: sn,
			ApplicationMotivation:    req.Motivation,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "application_student_number"}},
			DoUpdates: clause.AssignmentColumns([]string{"application_motivation"}),
		}).Create(&row).Error; err != nil {
			return err
		}
		return tx.Model(&userModel.UserModel{}).
			Where("user_student_number = ?", sn).
			Update("user_application_status", constants.ApplicationApplied).Error
	})
	if err != nil {
		log.Printf("[ERROR] simpan lamaran: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Lamaran gagal")
	}

	return helper.JsonCreated(c, "Lamaran terkirim", fiber.Map{
		"student_number":     sn,
		"application_status": constants.ApplicationApplied,
	})
}

// =======================
// GET /api/a/courses/:courseCode/applicants
// =======================
// Pelamar berstatus APPLIED yang pernah menyelesaikan course tersebut,
// beserta nilai dan motivasinya.
func (ctrl *ApplicationController) PendingApplicants(c *fiber.Ctx) error {
	courseCode := strings.ToUpper(strings.TrimSpace(c.Params("courseCode")))
	if courseCode == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Course code wajib diisi")
	}

	var rows []dto.ApplicantResponse
	err := ctrl.DB.Model(&userModel.UserModel{}).
		Select(`users.user_student_number AS student_number,
			users.user_name AS user_name,
			users.user_qualification_level AS qualification_level,
			completed_courses.completed_course_grade AS grade,
			applications.application_motivation AS motivation`).
		Joins("JOIN completed_courses ON completed_courses.completed_course_student_number = users.user_student_number").
		Joins("LEFT JOIN applications ON applications.application_student_number = users.user_student_number").
		Where("users.user_role = ?", constants.RoleStudent).
		Where("users.user_application_status = ?", constants.ApplicationApplied).
		Where("completed_courses.completed_course_code = ?", courseCode).
		Order("completed_courses.completed_course_grade DESC").
		Scan(&rows).Error
	if err != nil {
		log.Printf("[ERROR] pending applicants %s: %v", courseCode, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat pelamar")
	}

	return helper.JsonOK(c, "Pelamar course", rows)
}

// =======================
// GET /api/a/applications/:studentNumber/motivation
// =======================
func (ctrl *ApplicationController) Motivation(c *fiber.Ctx) error {
	sn := strings.ToUpper(strings.TrimSpace(c.Params("studentNumber")))
	if sn == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Student number wajib diisi")
	}

	var row applicationModel.ApplicationModel
	if err := ctrl.DB.Where("application_student_number = ?", sn).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Lamaran tidak ditemukan")
		}
		log.Printf("[ERROR] motivation %s: %v", sn, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat motivasi")
	}

	return helper.JsonOK(c, "Motivasi pelamar", fiber.Map{
		"student_number": sn,
		"motivation":     row.ApplicationMotivation,
	})
}

// =======================
// POST /api/a/applications/accept
// =======================
// Terima pelamar sebagai tutor/TA: baris course_staff dibuat per
// mahasiswa dan status user jadi ACCEPTED, satu transaksi. Kuota
// tutor/TA course adalah pertimbangan admin, tidak dipaksakan di sini.
func (ctrl *ApplicationController) Accept(c *fiber.Ctx) error {
	var req dto.DecideApplicationsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	courseCode := strings.ToUpper(strings.TrimSpace(req.CourseCode))

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		for _, raw := range req.StudentNumbers {
			sn := strings.ToUpper(strings.TrimSpace(raw))

			var user userModel.UserModel
			if err := tx.Where("user_student_number = ?", sn).First(&user).Error; err != nil {
				return err
			}

			staff := courseModel.CourseStaffModel{
				CourseStaffCourseCode: courseCode,
				CourseStaffYear:       req.Year,
				CourseStaffUserID:     user.UserID,
				CourseStaffRole:       req.StaffRole,
			}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&staff).Error; err != nil {
				return err
			}

			if err := tx.Model(&userModel.UserModel{}).
				Where("user_student_number = ?", sn).
				Update("user_application_status", constants.ApplicationAccepted).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Ada student number yang tidak terdaftar")
		}
		log.Printf("[ERROR] accept applicants: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menerima pelamar")
	}

	return helper.JsonUpdated(c, "Pelamar diterima", fiber.Map{
		"course_code":     courseCode,
		"year":            req.Year,
		"staff_role":      req.StaffRole,
		"student_numbers": req.StudentNumbers,
	})
}

// =======================
// POST /api/a/applications/reject
// =======================
func (ctrl *ApplicationController) Reject(c *fiber.Ctx) error {
	var req dto.RejectApplicationsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	numbers := make([]string, 0, len(req.StudentNumbers))
	for _, raw := range req.StudentNumbers {
		numbers = append(numbers, strings.ToUpper(strings.TrimSpace(raw)))
	}

	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("user_student_number IN ?", numbers).
		Update("user_application_status", constants.ApplicationRejected).Error; err != nil {
		log.Printf("[ERROR] reject applicants: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menolak pelamar")
	}

	return helper.JsonUpdated(c, "Pelamar ditolak", fiber.Map{"student_numbers": numbers})
}

// =======================
// POST /api/a/reset-system
// =======================
// Awal siklus rekrutmen baru: semua status lamaran mahasiswa kembali
// IDLE lewat satu bulk update.
func (ctrl *ApplicationController) ResetSystem(c *fiber.Ctx) error {
	res := ctrl.DB.Model(&userModel.UserModel{}).
		Where("user_role = ?", constants.RoleStudent).
		Update("user_application_status", constants.ApplicationIdle)
	if res.Error != nil {
		log.Printf("[ERROR] reset system: %v", res.Error)
		return fiber.NewError(fiber.StatusInternalServerError, "Reset sistem gagal")
	}

	return helper.JsonUpdated(c, "Sistem direset", fiber.Map{"students_reset": res.RowsAffected})
}
