package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mytutor_backend/internals/constants"
	authService "mytutor_backend/internals/features/users/auth/service"
	"mytutor_backend/internals/features/users/user/dto"
	"mytutor_backend/internals/features/users/user/model"
	helper "mytutor_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// =======================
// GET /api/u/profile
// =======================
func (ctrl *UserController) GetProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user model.UserModel
	if err := ctrl.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
		}
		log.Printf("[ERROR] get profile: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat profil")
	}

	return helper.JsonOK(c, "Profil berhasil diambil", dto.FromUserModel(user))
}

// =======================
// GET /api/a/users?role=&page=&per_page=
// =======================
func (ctrl *UserController) ListUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.UserModel{})
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		q = q.Where("user_role = ?", role)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count users: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat daftar user")
	}

	var users []model.UserModel
	if err := q.Order("user_created_at ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&users).Error; err != nil {
		log.Printf("[ERROR] list users: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat daftar user")
	}

	return helper.JsonList(c, "Daftar user", dto.FromUserModels(users),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =======================
// POST /api/a/users
// =======================
// Akun dibuat admin dapat password generate; dikembalikan sekali di
// response ini saja.
func (ctrl *UserController) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	req.UserEmail = strings.TrimSpace(strings.ToLower(req.UserEmail))
	if req.UserRole == constants.RoleStudent {
		req.UserStudentNumber = strings.ToUpper(strings.TrimSpace(req.UserStudentNumber))
		if !authService.ValidStudentNumber(req.UserStudentNumber) {
			return helper.JsonErrorCode(c, fiber.StatusUnprocessableEntity, "INVALID_STUDENT_NUMBER", "Format student number tidak valid")
		}
		if req.UserQualificationLevel == "" {
			return helper.JsonErrorCode(c, fiber.StatusUnprocessableEntity, "INVALID_QUALIFICATION", "Jenjang kualifikasi wajib diisi untuk student")
		}
	}

	var existing int64
	if err := ctrl.DB.Model(&model.UserModel{}).
		Where("user_email = ?", req.UserEmail).
		Count(&existing).Error; err != nil {
		log.Printf("[ERROR] cek email: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat user")
	}
	if existing > 0 {
		return helper.JsonErrorCode(c, fiber.StatusConflict, "EMAIL_TAKEN", "Email sudah terdaftar")
	}

	plain, err := authService.GeneratePassword(12)
	if err != nil {
		log.Printf("[ERROR] generate password: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat user")
	}
	hash, err := authService.HashPassword(plain)
	if err != nil {
		log.Printf("[ERROR] hash password: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat user")
	}

	user := req.ToModel(hash)
	if err := ctrl.DB.Create(&user).Error; err != nil {
		log.Printf("[ERROR] create user: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat user")
	}

	return helper.JsonCreated(c, "User berhasil dibuat", fiber.Map{
		"user":             dto.FromUserModel(user),
		"initial_password": plain,
	})
}

// =======================
// PUT /api/a/users/:id
// =======================
func (ctrl *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "User ID tidak valid")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var user model.UserModel
	if err := ctrl.DB.Where("user_id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
		}
		log.Printf("[ERROR] get user: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat user")
	}

	updates := map[string]any{}
	if req.UserName != nil {
		updates["user_name"] = *req.UserName
	}
	if req.UserEmail != nil {
		updates["user_email"] = strings.TrimSpace(strings.ToLower(*req.UserEmail))
	}
	if req.UserQualificationLevel != nil && user.UserRole == constants.RoleStudent {
		updates["user_qualification_level"] = *req.UserQualificationLevel
	}
	if req.UserDepartment != nil && user.UserRole != constants.RoleStudent {
		updates["user_department"] = *req.UserDepartment
	}
	if req.UserFaculty != nil && user.UserRole != constants.RoleStudent {
		updates["user_faculty"] = *req.UserFaculty
	}
	if len(updates) == 0 {
		return helper.JsonUpdated(c, "Tidak ada perubahan", dto.FromUserModel(user))
	}

	if err := ctrl.DB.Model(&user).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] update user: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui user")
	}

	return helper.JsonUpdated(c, "User berhasil diperbarui", dto.FromUserModel(user))
}

// =======================
// DELETE /api/a/users/:id
// =======================
// Admin tidak boleh menghapus akunnya sendiri.
func (ctrl *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "User ID tidak valid")
	}

	selfID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	if selfID == id {
		return helper.JsonErrorCode(c, fiber.StatusConflict, "CANNOT_DELETE_SELF", "Tidak bisa menghapus akun sendiri")
	}

	res := ctrl.DB.Where("user_id = ?", id).Delete(&model.UserModel{})
	if res.Error != nil {
		log.Printf("[ERROR] delete user: %v", res.Error)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus user")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
	}

	return helper.JsonDeleted(c, "User berhasil dihapus", fiber.Map{"user_id": id})
}
