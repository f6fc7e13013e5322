package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	academicsRoute "schoolku_backend/internals/features/academics/route"
	activitiesRoute "schoolku_backend/internals/features/activities/route"
	assessmentsRoute "schoolku_backend/internals/features/assessments/route"
	attendanceRoute "schoolku_backend/internals/features/attendance/route"
	dashboardRoute "schoolku_backend/internals/features/dashboard/route"
	financeRoute "schoolku_backend/internals/features/finance/route"
	peopleRoute "schoolku_backend/internals/features/people/route"
	schoolsRoute "schoolku_backend/internals/features/schools/route"
	authRoute "schoolku_backend/internals/features/users/auth/route"
	userRoute "schoolku_backend/internals/features/users/user/route"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// SetupRoutes pasang semua route aplikasi.
// Urutan penting: webhook & auth publik dulu, baru group ber-token.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Publik: login/register/google/refresh + webhook midtrans
	authRoute.AuthRoutes(app, db)
	financeRoute.PaymentWebhookRoutes(app, db)

	// Semua di bawah /api wajib access token valid
	api := app.Group("/api", authMiddleware.AuthMiddleware(db))

	authRoute.AuthProtectedRoutes(api, db)
	userRoute.UserRoutes(api, db)
	schoolsRoute.SchoolRoutes(api, db)

	// Fitur per-tenant di bawah /api/a
	a := api.Group("/a")
	peopleRoute.PeopleRoutes(a, db)
	academicsRoute.AcademicsRoutes(a, db)
	assessmentsRoute.AssessmentsRoutes(a, db)
	attendanceRoute.AttendanceRoutes(a, db)
	financeRoute.FinanceRoutes(a, db)
	activitiesRoute.ActivitiesRoutes(a, db)
	dashboardRoute.DashboardRoutes(a, db)
}
