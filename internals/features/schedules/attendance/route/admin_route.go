package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "mytutor_backend/internals/features/schedules/attendance/controller"
)

// Statistik kehadiran untuk admin/staf.
func AttendanceAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceController(db)

	router.Get("/stats/sessions/:id/attendance", ctrl.SessionStats)
	router.Get("/stats/courses/:courseCode/attendance", ctrl.CourseStats)
	router.Get("/stats/courses/:courseCode/tutors/:studentNumber/attendance", ctrl.TutorStats)
}
