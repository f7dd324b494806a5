package courseRoutes

import (
	courseControllers "techverse/controllers/course"
	enrollmentControllers "techverse/controllers/enrollment"
	"techverse/middleware"
	validators "techverse/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the catalog and enrollment routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Public catalog
	courseGroup.Get("/list", courseControllers.GetCourses)
	courseGroup.Get("/:id", courseControllers.GetCourseDetails)

	// Enrollment
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.EnrollCourse(), enrollmentControllers.EnrollInCourse)
	courseGroup.Get("/:id/enrolled", middleware.JWTMiddleware, validators.EnrollCourse(), enrollmentControllers.IsEnrolled)

	// User enrollments and self-service payment completion
	userGroup := app.Group("/user")
	userGroup.Get("/enrollments", middleware.JWTMiddleware, enrollmentControllers.GetUserEnrollments)
	userGroup.Post("/enrollment/:id/complete", middleware.JWTMiddleware, validators.EnrollmentID(), enrollmentControllers.MarkCompleted)
}
