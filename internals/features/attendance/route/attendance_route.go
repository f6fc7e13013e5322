package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	attendanceController "schoolku_backend/internals/features/attendance/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func AttendanceRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceController(db)

	staffOnly := authMiddleware.OnlyRoles(constants.RoleErrorTeacher("attendance"),
		constants.RoleAdmin, constants.RoleTeacher)

	g := api.Group("/attendance")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Post("/", staffOnly, ctrl.Create)
	g.Put("/:id", staffOnly, ctrl.Update)
	g.Delete("/:id", staffOnly, ctrl.Delete)
}
