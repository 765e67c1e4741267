package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scheduleController "mytutor_backend/internals/features/schedules/schedule/controller"
)

// Route jadwal untuk semua user login (tutor lihat jadwal + grid).
func ScheduleUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := scheduleController.NewScheduleController(db)

	router.Get("/courses/:courseCode/schedule", ctrl.GetSchedule)
}
