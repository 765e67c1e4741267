package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "mytutor_backend/internals/features/schedules/attendance/route"
	scheduleRoute "mytutor_backend/internals/features/schedules/schedule/route"
)

func ScheduleUserRoutes(router fiber.Router, db *gorm.DB) {
	scheduleRoute.ScheduleUserRoutes(router, db)
	attendanceRoute.AttendanceUserRoutes(router, db)
}

func ScheduleAdminRoutes(router fiber.Router, db *gorm.DB) {
	scheduleRoute.ScheduleAdminRoutes(router, db)
	attendanceRoute.AttendanceAdminRoutes(router, db)
}
