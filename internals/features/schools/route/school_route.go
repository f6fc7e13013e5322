package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	schoolController "schoolku_backend/internals/features/schools/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func SchoolRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := schoolController.NewSchoolController(db)

	g := api.Group("/schools")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)

	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("schools"), constants.RoleAdmin)
	g.Post("/", adminOnly, ctrl.Create)
	g.Put("/:id", adminOnly, ctrl.Update)
	g.Delete("/:id", adminOnly, ctrl.Delete)
}
