package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	peopleController "schoolku_backend/internals/features/people/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func PeopleRoutes(api fiber.Router, db *gorm.DB) {
	teacherCtrl := peopleController.NewTeacherController(db)
	studentCtrl := peopleController.NewStudentController(db)
	parentCtrl := peopleController.NewParentController(db)

	staffOnly := authMiddleware.OnlyRoles(constants.RoleErrorTeacher("people"),
		constants.RoleAdmin, constants.RoleTeacher)
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("people"), constants.RoleAdmin)

	t := api.Group("/teachers")
	t.Get("/", staffOnly, teacherCtrl.List)
	t.Get("/:id", staffOnly, teacherCtrl.GetByID)
	t.Post("/", adminOnly, teacherCtrl.Create)
	t.Put("/:id", adminOnly, teacherCtrl.Update)
	t.Delete("/:id", adminOnly, teacherCtrl.Delete)

	s := api.Group("/students")
	s.Get("/", staffOnly, studentCtrl.List)
	s.Get("/:id", staffOnly, studentCtrl.GetByID)
	s.Post("/", adminOnly, studentCtrl.Create)
	s.Put("/:id", adminOnly, studentCtrl.Update)
	s.Delete("/:id", adminOnly, studentCtrl.Delete)

	p := api.Group("/parents")
	p.Get("/", staffOnly, parentCtrl.List)
	p.Get("/:id", staffOnly, parentCtrl.GetByID)
	p.Post("/", adminOnly, parentCtrl.Create)
	p.Put("/:id", adminOnly, parentCtrl.Update)
	p.Delete("/:id", adminOnly, parentCtrl.Delete)
}
