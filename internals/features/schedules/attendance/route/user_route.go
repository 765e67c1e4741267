package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "mytutor_backend/internals/features/schedules/attendance/controller"
)

// Route roster & check-in untuk tutor (role student).
func AttendanceUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceController(db)

	router.Post("/sessions/:id/signup", ctrl.SignUp)
	router.Post("/sessions/:id/leave", ctrl.Leave)
	router.Post("/sessions/:id/checkin", ctrl.CheckIn)
	router.Get("/sessions/:id/checked-in", ctrl.CheckedIn)
}
