package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mytutor_backend/internals/constants"
	"mytutor_backend/internals/features/schedules/schedule/dto"
	"mytutor_backend/internals/features/schedules/schedule/service"
	helper "mytutor_backend/internals/helpers"
)

type ScheduleController struct {
	DB    *gorm.DB
	Store service.ScheduleStore
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{
		DB:    db,
		Store: service.NewGormScheduleStore(db),
	}
}

// =======================
// GET /courses/:courseCode/schedule?year=&grid=
// =======================
// Jadwal dibuat otomatis saat pertama diminta. Grid disusun ulang dari
// sesi setiap request, dengan sudut pandang tutor yang sedang login.
func (ctrl *ScheduleController) GetSchedule(c *fiber.Ctx) error {
	courseCode := c.Params("courseCode")
	if courseCode == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Course code wajib diisi")
	}
	year := c.QueryInt("year", time.Now().Year())

	sched, err := ctrl.Store.LoadSchedule(courseCode, year)
	if err != nil {
		log.Printf("[ERROR] load schedule %s/%d: %v", courseCode, year, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat jadwal")
	}

	var grid *service.TimeGrid
	if c.Query("grid", "1") != "0" {
		viewer := ""
		if role, err := helper.GetRoleFromToken(c); err == nil && role == constants.RoleStudent {
			if sn, err := helper.GetStudentNumberFromToken(c); err == nil {
				viewer = sn
			}
		}
		g := service.PopulateGrid(sched.Sessions, viewer)
		grid = &g
	}

	return helper.JsonOK(c, "Jadwal berhasil diambil", dto.FromSchedule(sched, grid))
}

// =======================
// PUT /courses/:courseCode/schedule
// =======================
// Terima baseline lama + daftar baru, reconcile jadi rencana
// create/update/delete, simpan satu transaksi. Kalau baseline tidak
// dikirim, keadaan tersimpan yang dipakai.
func (ctrl *ScheduleController) SaveSchedule(c *fiber.Ctx) error {
	courseCode := c.Params("courseCode")
	if courseCode == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Course code wajib diisi")
	}

	var req dto.SaveScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	newSessions := make([]service.Session, 0, len(req.NewSessions))
	for _, r := range req.NewSessions {
		s := r.ToSession()
		if err := service.ValidateSession(s); err != nil {
			return helper.JsonErrorCode(c, fiber.StatusUnprocessableEntity, "INVALID_SESSION", err.Error())
		}
		newSessions = append(newSessions, s)
	}

	sched, err := ctrl.Store.LoadSchedule(courseCode, req.ScheduleYear)
	if err != nil {
		log.Printf("[ERROR] load schedule %s/%d: %v", courseCode, req.ScheduleYear, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat jadwal")
	}

	oldSessions := sched.Sessions
	if req.OldSessions != nil {
		oldSessions = make([]service.Session, 0, len(req.OldSessions))
		for _, r := range req.OldSessions {
			oldSessions = append(oldSessions, r.ToSession())
		}
	}

	diff := service.Reconcile(oldSessions, newSessions)
	if err := ctrl.Store.SaveScheduleDiff(sched.ID, diff); err != nil {
		log.Printf("[ERROR] save schedule diff %s/%d: %v", courseCode, req.ScheduleYear, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan jadwal")
	}

	saved, err := ctrl.Store.LoadSchedule(courseCode, req.ScheduleYear)
	if err != nil {
		log.Printf("[ERROR] reload schedule %s/%d: %v", courseCode, req.ScheduleYear, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat jadwal tersimpan")
	}

	return helper.JsonUpdated(c, "Jadwal berhasil disimpan", dto.FromSchedule(saved, nil))
}
