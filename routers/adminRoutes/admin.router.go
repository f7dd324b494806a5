package adminRoutes

import (
	controllers "techverse/controllers/admin"
	"techverse/middleware"
	enrollmentValidators "techverse/validators/enrollment"
	inquiryValidators "techverse/validators/inquiry"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up the admin management routes
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.AdminOnly)

	adminGroup.Get("/enrollments", enrollmentValidators.ListQuery(), controllers.GetEnrollments)
	adminGroup.Get("/enrollments/stats", controllers.GetEnrollmentStats)
	adminGroup.Patch("/enrollment/:id/status", enrollmentValidators.EnrollmentID(), enrollmentValidators.SetStatus(), controllers.SetEnrollmentStatus)

	adminGroup.Get("/inquiries", controllers.GetInquiries)
	adminGroup.Patch("/inquiry/:id/status", inquiryValidators.InquiryID(), inquiryValidators.SetStatus(), controllers.SetInquiryStatus)
	adminGroup.Get("/health/inquiries", controllers.InquiriesHealth)
}
