package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	applicationController "mytutor_backend/internals/features/courses/application/controller"
)

// Seleksi pelamar + reset siklus rekrutmen, khusus admin.
func ApplicationAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := applicationController.NewApplicationController(db)

	router.Get("/courses/:courseCode/applicants", ctrl.PendingApplicants)
	router.Get("/applications/:studentNumber/motivation", ctrl.Motivation)
	router.Post("/applications/accept", ctrl.Accept)
	router.Post("/applications/reject", ctrl.Reject)
	router.Post("/reset-system", ctrl.ResetSystem)
}
