package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseController "mytutor_backend/internals/features/courses/course/controller"
)

// Route course untuk user login.
func CourseUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := courseController.NewCourseController(db)

	router.Get("/my-courses", ctrl.MyCourses)
}
