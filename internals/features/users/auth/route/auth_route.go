package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	authController "schoolku_backend/internals/features/users/auth/controller"
	"schoolku_backend/internals/middlewares"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// AuthRoutes: endpoint publik (login/register/google/refresh) tanpa AuthMiddleware.
func AuthRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	g := app.Group("/api/auth")
	g.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	g.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	g.Post("/google", middlewares.LoginRateLimiter(), ctrl.GoogleLogin)
	g.Post("/refresh-token", ctrl.RefreshToken)
}

// AuthProtectedRoutes: endpoint auth yang butuh access token valid.
func AuthProtectedRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	g := api.Group("/auth")
	g.Post("/logout", ctrl.Logout)

	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("accounts"), constants.RoleAdmin)
	g.Post("/create-account", adminOnly, ctrl.CreateAccount)
}
