package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	applicationController "mytutor_backend/internals/features/courses/application/controller"
)

// Mahasiswa kirim lamaran tutor/TA.
func ApplicationUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := applicationController.NewApplicationController(db)

	router.Post("/applications", ctrl.Apply)
}
