package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	applicationRoute "mytutor_backend/internals/features/courses/application/route"
	courseRoute "mytutor_backend/internals/features/courses/course/route"
)

func CourseUserRoutes(router fiber.Router, db *gorm.DB) {
	courseRoute.CourseUserRoutes(router, db)
	applicationRoute.ApplicationUserRoutes(router, db)
}

func CourseAdminRoutes(router fiber.Router, db *gorm.DB) {
	courseRoute.CourseAdminRoutes(router, db)
	applicationRoute.ApplicationAdminRoutes(router, db)
}
