package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	userController "schoolku_backend/internals/features/users/user/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	g := api.Group("/auth")
	g.Get("/me", ctrl.Me)

	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("users"), constants.RoleAdmin)
	g.Get("/users", adminOnly, ctrl.List)
	g.Get("/people-without-accounts", adminOnly, ctrl.PeopleWithoutAccounts)
}
