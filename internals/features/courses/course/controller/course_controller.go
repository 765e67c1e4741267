package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mytutor_backend/internals/features/courses/course/dto"
	"mytutor_backend/internals/features/courses/course/model"
	scheduleService "mytutor_backend/internals/features/schedules/schedule/service"
	helper "mytutor_backend/internals/helpers"
)

type CourseController struct {
	DB    *gorm.DB
	Store scheduleService.ScheduleStore
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{
		DB:    db,
		Store: scheduleService.NewGormScheduleStore(db),
	}
}

// =======================
// GET /api/a/courses
// =======================
func (ctrl *CourseController) ListCourses(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.CourseModel{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] count courses: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat daftar course")
	}

	var courses []model.CourseModel
	if err := ctrl.DB.Order("course_code ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&courses).Error; err != nil {
		log.Printf("[ERROR] list courses: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat daftar course")
	}

	return helper.JsonList(c, "Daftar course", courses,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =======================
// GET /api/a/courses/:courseCode
// =======================
func (ctrl *CourseController) GetCourse(c *fiber.Ctx) error {
	course, err := ctrl.findCourse(c.Params("courseCode"))
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Detail course", course)
}

// =======================
// POST /api/a/courses
// =======================
func (ctrl *CourseController) CreateCourse(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	course := req.ToModel()

	var existing int64
	if err := ctrl.DB.Model(&model.CourseModel{}).
		Where("course_code = ?", course.CourseCode).
		Count(&existing).Error; err != nil {
		log.Printf("[ERROR] cek course: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat course")
	}
	if existing > 0 {
		return helper.JsonErrorCode(c, fiber.StatusConflict, "COURSE_EXISTS", "Course code sudah terdaftar")
	}

	if err := ctrl.DB.Create(&course).Error; err != nil {
		log.Printf("[ERROR] create course: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat course")
	}

	return helper.JsonCreated(c, "Course berhasil dibuat", course)
}

// =======================
// PUT /api/a/courses/:courseCode
// =======================
func (ctrl *CourseController) UpdateCourse(c *fiber.Ctx) error {
	course, err := ctrl.findCourse(c.Params("courseCode"))
	if err != nil {
		return err
	}

	var req dto.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	updates := map[string]any{}
	if req.CourseName != nil {
		updates["course_name"] = strings.TrimSpace(*req.CourseName)
	}
	if req.CourseTutorCapacity != nil {
		updates["course_tutor_capacity"] = *req.CourseTutorCapacity
	}
	if req.CourseTACapacity != nil {
		updates["course_ta_capacity"] = *req.CourseTACapacity
	}
	if len(updates) == 0 {
		return helper.JsonUpdated(c, "Tidak ada perubahan", course)
	}

	if err := ctrl.DB.Model(&course).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] update course: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui course")
	}

	return helper.JsonUpdated(c, "Course berhasil diperbarui", course)
}

// =======================
// DELETE /api/a/courses/:courseCode
// =======================
// Hapus course berikut jadwal, sesi, roster, attendance, dan penugasan
// stafnya.
func (ctrl *CourseController) DeleteCourse(c *fiber.Ctx) error {
	course, err := ctrl.findCourse(c.Params("courseCode"))
	if err != nil {
		return err
	}

	if err := ctrl.Store.DeleteCourseData(course.CourseCode); err != nil {
		log.Printf("[ERROR] cascade jadwal course %s: %v", course.CourseCode, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus course")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_staff_course_code = ?", course.CourseCode).
			Delete(&model.CourseStaffModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&course).Error
	})
	if err != nil {
		log.Printf("[ERROR] delete course %s: %v", course.CourseCode, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus course")
	}

	return helper.JsonDeleted(c, "Course berhasil dihapus", fiber.Map{"course_code": course.CourseCode})
}

// =======================
// POST /api/a/courses/:courseCode/staff
// =======================
func (ctrl *CourseController) AssignStaff(c *fiber.Ctx) error {
	course, err := ctrl.findCourse(c.Params("courseCode"))
	if err != nil {
		return err
	}

	var req dto.AssignStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var existing int64
	if err := ctrl.DB.Model(&model.CourseStaffModel{}).
		Where("course_staff_course_code = ? AND course_staff_year = ? AND course_staff_user_id = ? AND course_staff_role = ?",
			course.CourseCode, req.CourseStaffYear, req.CourseStaffUserID, req.CourseStaffRole).
		Count(&existing).Error; err != nil {
		log.Printf("[ERROR] cek staff: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menugaskan staf")
	}
	if existing > 0 {
		return helper.JsonErrorCode(c, fiber.StatusConflict, "STAFF_EXISTS", "Staf sudah ditugaskan di course ini")
	}

	row := model.CourseStaffModel{
		CourseStaffCourseCode: course.CourseCode,
		CourseStaffYear:       req.CourseStaffYear,
		CourseStaffUserID:     req.CourseStaffUserID,
		CourseStaffRole:       req.CourseStaffRole,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		log.Printf("[ERROR] assign staff: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menugaskan staf")
	}

	return helper.JsonCreated(c, "Staf berhasil ditugaskan", row)
}

// =======================
// GET /api/a/courses/:courseCode/staff?year=&role=
// =======================
func (ctrl *CourseController) ListStaff(c *fiber.Ctx) error {
	course, err := ctrl.findCourse(c.Params("courseCode"))
	if err != nil {
		return err
	}

	q := ctrl.DB.Model(&model.CourseStaffModel{}).
		Where("course_staff_course_code = ?", course.CourseCode)
	if year := c.QueryInt("year", 0); year > 0 {
		q = q.Where("course_staff_year = ?", year)
	}
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		q = q.Where("course_staff_role = ?", role)
	}

	var rows []model.CourseStaffModel
	if err := q.Order("course_staff_id ASC").Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list staff: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat daftar staf")
	}

	return helper.JsonOK(c, "Daftar staf course", rows)
}

// =======================
// GET /api/u/my-courses?year=
// =======================
// Course yang terkait user login lewat baris course_staff miliknya.
func (ctrl *CourseController) MyCourses(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	year := c.QueryInt("year", time.Now().Year())

	var codes []string
	if err := ctrl.DB.Model(&model.CourseStaffModel{}).
		Where("course_staff_user_id = ? AND course_staff_year = ?", userID, year).
		Distinct().
		Pluck("course_staff_course_code", &codes).Error; err != nil {
		log.Printf("[ERROR] my courses: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat course")
	}

	courses := []model.CourseModel{}
	if len(codes) > 0 {
		if err := ctrl.DB.Where("course_code IN ?", codes).
			Order("course_code ASC").
			Find(&courses).Error; err != nil {
			log.Printf("[ERROR] my courses detail: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat course")
		}
	}

	return helper.JsonOK(c, "Course saya", courses)
}

// =======================
// GET /api/a/students/:studentNumber/completed-courses
// =======================
func (ctrl *CourseController) CompletedCourses(c *fiber.Ctx) error {
	sn := strings.ToUpper(strings.TrimSpace(c.Params("studentNumber")))
	if sn == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Student number wajib diisi")
	}

	var rows []model.CompletedCourseModel
	if err := ctrl.DB.Where("completed_course_student_number = ?", sn).
		Order("completed_course_year ASC, completed_course_code ASC").
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] completed courses: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat riwayat course")
	}

	return helper.JsonOK(c, "Riwayat course mahasiswa", rows)
}

func (ctrl *CourseController) findCourse(codeParam string) (model.CourseModel, error) {
	code := strings.ToUpper(strings.TrimSpace(codeParam))
	if code == "" {
		return model.CourseModel{}, fiber.NewError(fiber.StatusBadRequest, "Course code wajib diisi")
	}

	var course model.CourseModel
	if err := ctrl.DB.Where("course_code = ?", code).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.CourseModel{}, fiber.NewError(fiber.StatusNotFound, "Course tidak ditemukan")
		}
		log.Printf("[ERROR] find course %s: %v", code, err)
		return model.CourseModel{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat course")
	}
	return course, nil
}
