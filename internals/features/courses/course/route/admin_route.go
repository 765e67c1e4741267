package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseController "mytutor_backend/internals/features/courses/course/controller"
)

// CRUD course + penugasan staf khusus admin.
func CourseAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := courseController.NewCourseController(db)

	router.Get("/courses", ctrl.ListCourses)
	router.Post("/courses", ctrl.CreateCourse)
	router.Get("/courses/:courseCode", ctrl.GetCourse)
	router.Put("/courses/:courseCode", ctrl.UpdateCourse)
	router.Delete("/courses/:courseCode", ctrl.DeleteCourse)

	router.Get("/courses/:courseCode/staff", ctrl.ListStaff)
	router.Post("/courses/:courseCode/staff", ctrl.AssignStaff)

	router.Get("/students/:studentNumber/completed-courses", ctrl.CompletedCourses)
}
