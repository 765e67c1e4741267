package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scheduleController "mytutor_backend/internals/features/schedules/schedule/controller"
)

// Route jadwal khusus admin/staf (simpan hasil edit jadwal).
func ScheduleAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := scheduleController.NewScheduleController(db)

	router.Put("/courses/:courseCode/schedule", ctrl.SaveSchedule)
}
