package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "mytutor_backend/internals/features/users/auth/controller"
	"mytutor_backend/internals/middlewares"
)

// Route publik: register & login dengan rate limiter masing-masing.
func AuthRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	router.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	router.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
}
