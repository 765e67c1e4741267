package controller

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceService "mytutor_backend/internals/features/schedules/attendance/service"
	scheduleService "mytutor_backend/internals/features/schedules/schedule/service"
	helper "mytutor_backend/internals/helpers"
)

type AttendanceController struct {
	DB      *gorm.DB
	Manager *attendanceService.RosterManager
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		DB:      db,
		Manager: attendanceService.NewRosterManager(scheduleService.NewGormScheduleStore(db)),
	}
}

func sessionIDParam(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Session ID tidak valid")
	}
	return id, nil
}

// mapRosterErr petakan sentinel domain ke status + error_code HTTP.
func mapRosterErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, scheduleService.ErrSessionNotFound):
		return helper.JsonErrorCode(c, fiber.StatusNotFound, "SESSION_NOT_FOUND", err.Error())
	case errors.Is(err, scheduleService.ErrAlreadySignedUp):
		return helper.JsonErrorCode(c, fiber.StatusConflict, "ALREADY_SIGNED_UP", err.Error())
	case errors.Is(err, scheduleService.ErrCapacityExceeded):
		return helper.JsonErrorCode(c, fiber.StatusConflict, "CAPACITY_EXCEEDED", err.Error())
	case errors.Is(err, scheduleService.ErrAlreadyCheckedIn):
		return helper.JsonErrorCode(c, fiber.StatusConflict, "ALREADY_CHECKED_IN", err.Error())
	default:
		log.Printf("[ERROR] roster op: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Operasi roster gagal")
	}
}

// =======================
// POST /sessions/:id/signup
// =======================
func (ctrl *AttendanceController) SignUp(c *fiber.Ctx) error {
	id, err := sessionIDParam(c)
	if err != nil {
		return err
	}
	sn, err := helper.GetStudentNumberFromToken(c)
	if err != nil {
		return err
	}

	if err := ctrl.Manager.SignUp(id, sn); err != nil {
		return mapRosterErr(c, err)
	}
	return helper.JsonCreated(c, "Berhasil sign up ke sesi", fiber.Map{
		"session_id":     id,
		"student_number": sn,
	})
}

// =======================
// POST /sessions/:id/leave
// =======================
func (ctrl *AttendanceController) Leave(c *fiber.Ctx) error {
	id, err := sessionIDParam(c)
	if err != nil {
		return err
	}
	sn, err := helper.GetStudentNumberFromToken(c)
	if err != nil {
		return err
	}

	if err := ctrl.Manager.Leave(id, sn); err != nil {
		return mapRosterErr(c, err)
	}
	return helper.JsonDeleted(c, "Berhasil keluar dari sesi", fiber.Map{
		"session_id":     id,
		"student_number": sn,
	})
}

// =======================
// POST /sessions/:id/checkin
// =======================
func (ctrl *AttendanceController) CheckIn(c *fiber.Ctx) error {
	id, err := sessionIDParam(c)
	if err != nil {
		return err
	}
	sn, err := helper.GetStudentNumberFromToken(c)
	if err != nil {
		return err
	}

	now := time.Now()
	if err := ctrl.Manager.CheckIn(id, sn, now); err != nil {
		return mapRosterErr(c, err)
	}

	windowOpen, werr := ctrl.Manager.WindowOpen(id, now)
	if werr != nil {
		windowOpen = false
	}
	return helper.JsonCreated(c, "Check-in tercatat", fiber.Map{
		"session_id":     id,
		"student_number": sn,
		"window_open":    windowOpen,
	})
}

// =======================
// GET /sessions/:id/checked-in
// =======================
func (ctrl *AttendanceController) CheckedIn(c *fiber.Ctx) error {
	id, err := sessionIDParam(c)
	if err != nil {
		return err
	}
	sn, err := helper.GetStudentNumberFromToken(c)
	if err != nil {
		return err
	}

	ok, err := ctrl.Manager.HasCheckedIn(id, sn, time.Now())
	if err != nil {
		return mapRosterErr(c, err)
	}
	return helper.JsonOK(c, "Status check-in", fiber.Map{
		"session_id":     id,
		"student_number": sn,
		"checked_in":     ok,
	})
}

// =======================
// Statistik kehadiran (admin)
// =======================

func (ctrl *AttendanceController) SessionStats(c *fiber.Ctx) error {
	id, err := sessionIDParam(c)
	if err != nil {
		return err
	}
	count, err := ctrl.Manager.Store.SessionAttendanceCount(id)
	if err != nil {
		return mapRosterErr(c, err)
	}
	return helper.JsonOK(c, "Total kehadiran sesi", fiber.Map{
		"session_id": id,
		"count":      count,
	})
}

func (ctrl *AttendanceController) CourseStats(c *fiber.Ctx) error {
	courseCode := c.Params("courseCode")
	if courseCode == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Course code wajib diisi")
	}
	count, err := ctrl.Manager.Store.CourseAttendanceCount(courseCode)
	if err != nil {
		return mapRosterErr(c, err)
	}
	return helper.JsonOK(c, "Total kehadiran course", fiber.Map{
		"course_code": courseCode,
		"count":       count,
	})
}

func (ctrl *AttendanceController) TutorStats(c *fiber.Ctx) error {
	courseCode := c.Params("courseCode")
	sn := c.Params("studentNumber")
	if courseCode == "" || sn == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Course code dan student number wajib diisi")
	}
	count, err := ctrl.Manager.Store.TutorAttendanceCount(courseCode, sn)
	if err != nil {
		return mapRosterErr(c, err)
	}
	return helper.JsonOK(c, "Total kehadiran tutor", fiber.Map{
		"course_code":    courseCode,
		"student_number": sn,
		"count":          count,
	})
}
