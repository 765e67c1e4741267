package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userRoute "mytutor_backend/internals/features/users/user/route"
)

func UserUserRoutes(router fiber.Router, db *gorm.DB) {
	userRoute.UserRoutes(router, db)
}

func UserAdminRoutes(router fiber.Router, db *gorm.DB) {
	userRoute.UserAdminRoutes(router, db)
}
