package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "mytutor_backend/internals/features/users/user/controller"
)

// CRUD user khusus admin.
func UserAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	router.Get("/users", ctrl.ListUsers)
	router.Post("/users", ctrl.CreateUser)
	router.Put("/users/:id", ctrl.UpdateUser)
	router.Delete("/users/:id", ctrl.DeleteUser)
}
