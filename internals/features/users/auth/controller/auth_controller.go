package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mytutor_backend/internals/constants"
	courseModel "mytutor_backend/internals/features/courses/course/model"
	"mytutor_backend/internals/features/users/auth/dto"
	authService "mytutor_backend/internals/features/users/auth/service"
	userModel "mytutor_backend/internals/features/users/user/model"
	helper "mytutor_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// =======================
// POST /api/auth/register
// =======================
// Pendaftaran mahasiswa: validasi format email & student number, cek
// duplikat email, simpan hash bcrypt + riwayat course selesai dalam satu
// transaksi.
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	req.UserEmail = strings.TrimSpace(strings.ToLower(req.UserEmail))
	req.StudentNumber = strings.ToUpper(strings.TrimSpace(req.StudentNumber))

	if !authService.ValidEmail(req.UserEmail) {
		return helper.JsonErrorCode(c, fiber.StatusUnprocessableEntity, "INVALID_EMAIL", "Format email tidak valid")
	}
	if !authService.ValidStudentNumber(req.StudentNumber) {
		return helper.JsonErrorCode(c, fiber.StatusUnprocessableEntity, "INVALID_STUDENT_NUMBER", "Format student number tidak valid")
	}
	if req.Password != req.ConfirmPassword {
		return helper.JsonErrorCode(c, fiber.StatusUnprocessableEntity, "PASSWORD_MISMATCH", "Konfirmasi password tidak sama")
	}

	validQual := false
	for _, q := range constants.AllQualificationLevels {
		if q == req.QualificationLevel {
			validQual = true
			break
		}
	}
	if !validQual {
		return helper.JsonErrorCode(c, fiber.StatusUnprocessableEntity, "INVALID_QUALIFICATION", "Jenjang kualifikasi tidak dikenal")
	}

	var existing int64
	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("user_email = ?", req.UserEmail).
		Count(&existing).Error; err != nil {
		log.Printf("[ERROR] cek email: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Registrasi gagal")
	}
	if existing > 0 {
		return helper.JsonErrorCode(c, fiber.StatusConflict, "EMAIL_TAKEN", "Email sudah terdaftar")
	}

	hash, err := authService.HashPassword(req.Password)
	if err != nil {
		log.Printf("[ERROR] hash password: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Registrasi gagal")
	}

	status := constants.ApplicationIdle
	user := userModel.UserModel{
		UserName:               req.UserName,
		UserEmail:              req.UserEmail,
		UserPassword:           hash,
		UserRole:               constants.RoleStudent,
		UserStudentNumber:      &req.StudentNumber,
		UserQualificationLevel: &req.QualificationLevel,
		UserApplicationStatus:  &status,
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		for _, cc := range req.CompletedCourses {
			row := courseModel.CompletedCourseModel{
				CompletedCourseStudentNumber: req.StudentNumber,
				CompletedCourseCode:          strings.ToUpper(strings.TrimSpace(cc.CourseCode)),
				CompletedCourseGrade:         cc.Grade,
				CompletedCourseYear:          cc.Year,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("[ERROR] simpan registrasi: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Registrasi gagal")
	}

	return helper.JsonCreated(c, "Registrasi berhasil", fiber.Map{
		"user_id":        user.UserID,
		"student_number": req.StudentNumber,
	})
}

// =======================
// POST /api/auth/login
// =======================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	email := strings.TrimSpace(strings.ToLower(req.UserEmail))

	var user userModel.UserModel
	err := ctrl.DB.Where("user_email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonErrorCode(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "Email atau password salah")
		}
		log.Printf("[ERROR] login lookup: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Login gagal")
	}

	if !authService.CheckPassword(user.UserPassword, req.Password) {
		return helper.JsonErrorCode(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "Email atau password salah")
	}

	token, err := authService.CreateToken(user)
	if err != nil {
		log.Printf("[ERROR] create token: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Login gagal")
	}

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		AccessToken: token,
		UserID:      user.UserID.String(),
		UserName:    user.UserName,
		UserRole:    user.UserRole,
	})
}
