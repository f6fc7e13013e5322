package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	assessController "schoolku_backend/internals/features/assessments/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func AssessmentsRoutes(api fiber.Router, db *gorm.DB) {
	examCtrl := assessController.NewExamController(db)
	assignmentCtrl := assessController.NewAssignmentController(db)
	resultCtrl := assessController.NewResultController(db)

	staffOnly := authMiddleware.OnlyRoles(constants.RoleErrorTeacher("assessments"),
		constants.RoleAdmin, constants.RoleTeacher)

	e := api.Group("/exams")
	e.Get("/", examCtrl.List)
	e.Get("/:id", examCtrl.GetByID)
	e.Post("/", staffOnly, examCtrl.Create)
	e.Put("/:id", staffOnly, examCtrl.Update)
	e.Delete("/:id", staffOnly, examCtrl.Delete)

	a := api.Group("/assignments")
	a.Get("/", assignmentCtrl.List)
	a.Get("/:id", assignmentCtrl.GetByID)
	a.Post("/", staffOnly, assignmentCtrl.Create)
	a.Put("/:id", staffOnly, assignmentCtrl.Update)
	a.Delete("/:id", staffOnly, assignmentCtrl.Delete)

	r := api.Group("/results")
	r.Get("/", resultCtrl.List)
	r.Get("/:id", resultCtrl.GetByID)
	r.Post("/", staffOnly, resultCtrl.Create)
	r.Put("/:id", staffOnly, resultCtrl.Update)
	r.Delete("/:id", staffOnly, resultCtrl.Delete)
}
