package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "mytutor_backend/internals/features/users/user/controller"
)

// Route profil untuk user login.
func UserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	router.Get("/profile", ctrl.GetProfile)
}
