package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	activitiesController "schoolku_backend/internals/features/activities/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func ActivitiesRoutes(api fiber.Router, db *gorm.DB) {
	eventCtrl := activitiesController.NewEventController(db)
	announcementCtrl := activitiesController.NewAnnouncementController(db)

	staffOnly := authMiddleware.OnlyRoles(constants.RoleErrorTeacher("activities"),
		constants.RoleAdmin, constants.RoleTeacher)

	e := api.Group("/events")
	e.Get("/", eventCtrl.List)
	e.Get("/:id", eventCtrl.GetByID)
	e.Post("/", staffOnly, eventCtrl.Create)
	e.Put("/:id", staffOnly, eventCtrl.Update)
	e.Delete("/:id", staffOnly, eventCtrl.Delete)

	a := api.Group("/announcements")
	a.Get("/", announcementCtrl.List)
	a.Get("/:id", announcementCtrl.GetByID)
	a.Post("/", staffOnly, announcementCtrl.Create)
	a.Put("/:id", staffOnly, announcementCtrl.Update)
	a.Delete("/:id", staffOnly, announcementCtrl.Delete)
}
