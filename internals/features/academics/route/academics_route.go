package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	academicsController "schoolku_backend/internals/features/academics/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func AcademicsRoutes(api fiber.Router, db *gorm.DB) {
	gradeCtrl := academicsController.NewGradeController(db)
	classCtrl := academicsController.NewClassController(db)
	subjectCtrl := academicsController.NewSubjectController(db)
	lessonCtrl := academicsController.NewLessonController(db)

	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("academics"), constants.RoleAdmin)

	g := api.Group("/grades")
	g.Get("/", gradeCtrl.List)
	g.Get("/:id", gradeCtrl.GetByID)
	g.Post("/", adminOnly, gradeCtrl.Create)
	g.Put("/:id", adminOnly, gradeCtrl.Update)
	g.Delete("/:id", adminOnly, gradeCtrl.Delete)

	cl := api.Group("/classes")
	cl.Get("/", classCtrl.List)
	cl.Get("/:id", classCtrl.GetByID)
	cl.Post("/", adminOnly, classCtrl.Create)
	cl.Put("/:id", adminOnly, classCtrl.Update)
	cl.Delete("/:id", adminOnly, classCtrl.Delete)

	sub := api.Group("/subjects")
	sub.Get("/", subjectCtrl.List)
	sub.Get("/:id", subjectCtrl.GetByID)
	sub.Post("/", adminOnly, subjectCtrl.Create)
	sub.Put("/:id", adminOnly, subjectCtrl.Update)
	sub.Delete("/:id", adminOnly, subjectCtrl.Delete)

	le := api.Group("/lessons")
	le.Get("/", lessonCtrl.List)
	le.Get("/:id", lessonCtrl.GetByID)
	le.Post("/", adminOnly, lessonCtrl.Create)
	le.Put("/:id", adminOnly, lessonCtrl.Update)
	le.Delete("/:id", adminOnly, lessonCtrl.Delete)
}
