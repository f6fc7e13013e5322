package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	financeController "schoolku_backend/internals/features/finance/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func FinanceRoutes(api fiber.Router, db *gorm.DB) {
	feeCtrl := financeController.NewFeeController(db)
	studentFeeCtrl := financeController.NewStudentFeeController(db)
	paymentCtrl := financeController.NewPaymentController(db)

	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("finance"), constants.RoleAdmin)

	f := api.Group("/fees")
	f.Get("/", feeCtrl.List)
	f.Get("/:id", feeCtrl.GetByID)
	f.Post("/", adminOnly, feeCtrl.Create)
	f.Put("/:id", adminOnly, feeCtrl.Update)
	f.Delete("/:id", adminOnly, feeCtrl.Delete)

	sf := api.Group("/student-fees")
	sf.Get("/", studentFeeCtrl.List)
	sf.Post("/assign", adminOnly, studentFeeCtrl.Assign)
	sf.Get("/:id", studentFeeCtrl.GetByID)
	sf.Post("/:id/checkout", studentFeeCtrl.Checkout)
	sf.Post("/", adminOnly, studentFeeCtrl.Create)
	sf.Put("/:id", adminOnly, studentFeeCtrl.Update)
	sf.Delete("/:id", adminOnly, studentFeeCtrl.Delete)

	p := api.Group("/payments")
	p.Get("/", paymentCtrl.List)
	p.Get("/:id", paymentCtrl.GetByID)
	p.Post("/", adminOnly, paymentCtrl.Create)
	p.Delete("/:id", adminOnly, paymentCtrl.Delete)
}

// PaymentWebhookRoutes dipasang SEBELUM AuthMiddleware (path juga ada di skip-list).
func PaymentWebhookRoutes(app fiber.Router, db *gorm.DB) {
	paymentCtrl := financeController.NewPaymentController(db)
	app.Post("/api/payments/notification", paymentCtrl.MidtransWebhook)
}
